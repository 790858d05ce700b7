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

// NotificationQueue abstracts the async dispatcher. Enqueue must not block
// the request path beyond channel buffering.
type NotificationQueue interface {
	Enqueue(in ports.NotificationInput)
}

// ApplicationService implements the application lifecycle with ownership and
// role checks against the request identity context.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	jobs   ports.JobRepository
	queue  NotificationQueue
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, jobs ports.JobRepository, queue NotificationQueue, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, queue: queue, logger: logger}
}

// Create submits an application on behalf of the requester. The target job
// must exist and still be open; one application per (job, user) is enforced
// by the store's compound index.
func (s *ApplicationService) Create(ctx context.Context, in ports.CreateApplicationInput) (*domain.Application, error) {
	if in.JobID == "" {
		return nil, domain.ErrValidation
	}

	job, err := s.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobOpen {
		return nil, domain.ErrJobClosed
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:       in.JobID,
		UserID:      in.Requester.UserID,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		Status:      domain.ApplicationApplied,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.logger.Info().Str("application_id", created.ID).Str("job_id", created.JobID).Msg("application submitted")

	s.queue.Enqueue(ports.NotificationInput{
		UserID:        created.UserID,
		ApplicationID: created.ID,
		JobID:         created.JobID,
		Type:          domain.NotificationApplicationReceived,
		Status:        created.Status,
		Timestamp:     now,
	})

	return created, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string, req ports.Requester) (*domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewApplication(req.Role, app.UserID, req.UserID) {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

// List returns every application for reviewers and only the requester's own
// submissions for jobseekers.
func (s *ApplicationService) List(ctx context.Context, req ports.Requester) ([]*domain.Application, error) {
	if domain.CanReviewApplications(req.Role) {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, req.UserID)
}

// UpdateStatus advances an application through its review states. Reviewer
// roles only, and only along valid transitions.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status string, req ports.Requester) (*domain.Application, error) {
	if !domain.CanReviewApplications(req.Role) {
		return nil, domain.ErrForbidden
	}

	next, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", id).
		Str("from", string(app.Status)).
		Str("to", string(next)).
		Msg("application status updated")

	s.queue.Enqueue(ports.NotificationInput{
		UserID:        updated.UserID,
		ApplicationID: updated.ID,
		JobID:         updated.JobID,
		Type:          domain.NotificationStatusChanged,
		Status:        next,
		Timestamp:     time.Now().UTC(),
	})

	return updated, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string, req ports.Requester) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanViewApplication(req.Role, app.UserID, req.UserID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
