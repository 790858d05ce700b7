package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// Requester identifies the verified caller of an application operation,
// taken from the request identity context populated by the auth middleware.
type Requester struct {
	UserID string
	Role   domain.Role
}

// CreateApplicationInput carries all data needed to apply to a job. The
// applicant is always the requester.
type CreateApplicationInput struct {
	JobID       string
	ResumeURL   string
	CoverLetter string
	Requester   Requester
}

type ApplicationService interface {
	Create(ctx context.Context, in CreateApplicationInput) (*domain.Application, error)
	Get(ctx context.Context, id string, req Requester) (*domain.Application, error)
	List(ctx context.Context, req Requester) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status string, req Requester) (*domain.Application, error)
	Delete(ctx context.Context, id string, req Requester) error
}
