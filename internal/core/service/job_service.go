package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/api/metrics"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// JobService implements job posting management. Role checks happen in the
// transport layer; the service assumes an authorized caller.
type JobService struct {
	repo      ports.JobRepository
	companies ports.CompanyRepository
	logger    zerolog.Logger
}

func NewJobService(repo ports.JobRepository, companies ports.CompanyRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, companies: companies, logger: logger}
}

func (s *JobService) Create(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || in.CompanyID == "" {
		return nil, domain.ErrValidation
	}

	status, err := domain.ParseJobStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// The company reference must resolve before the posting is accepted.
	if _, err := s.companies.FindByID(ctx, in.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &domain.Job{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		CompanyID:      in.CompanyID,
		Location:       strings.TrimSpace(in.Location),
		SalaryRange:    strings.TrimSpace(in.SalaryRange),
		SkillsRequired: in.SkillsRequired,
		Status:         status,
		PostedAt:       now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.logger.Info().Str("job_id", created.ID).Str("company_id", created.CompanyID).Msg("job posted")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, filter ports.ListJobsFilter) (*ports.ListJobsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if filter.Status != "" {
		if _, err := domain.ParseJobStatus(filter.Status); err != nil {
			return nil, err
		}
	}

	jobs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListJobsResult{
		Items:      jobs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial update; setting Status to "closed" is how a
// posting gets closed.
func (s *JobService) Update(ctx context.Context, id string, in ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		job.Description = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil {
		job.Location = strings.TrimSpace(*in.Location)
	}
	if in.SalaryRange != nil {
		job.SalaryRange = strings.TrimSpace(*in.SalaryRange)
	}
	if in.SkillsRequired != nil {
		job.SkillsRequired = *in.SkillsRequired
	}
	if in.Status != nil {
		status, err := domain.ParseJobStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		job.Status = status
	}
	job.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, job)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
