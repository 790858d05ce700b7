package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title          string
	Description    string
	CompanyID      string
	Location       string
	SalaryRange    string
	SkillsRequired []string
	Status         string
}

// UpdateJobInput carries a partial job update. Nil fields are left untouched.
type UpdateJobInput struct {
	Title          *string
	Description    *string
	Location       *string
	SalaryRange    *string
	SkillsRequired *[]string
	Status         *string
}

// ListJobsResult is one page of jobs plus pagination metadata.
type ListJobsResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type JobService interface {
	Create(ctx context.Context, in CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) (*ListJobsResult, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
