package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// ListJobsFilter carries all query parameters for listing jobs.
type ListJobsFilter struct {
	Status   string // optional: filter by job status
	Location string // optional: filter by location
	Search   string // optional: partial match on title or skills
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by service)
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of jobs matching filter and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
}
