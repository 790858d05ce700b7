package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
// The store enforces one application per (job, user) pair.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	// ListByUser returns applications submitted by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Application, error)
	// ListAll returns every application, newest first (reviewer view).
	ListAll(ctx context.Context) ([]*domain.Application, error)
}
