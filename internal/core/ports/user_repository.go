package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence. Emails are
// stored lowercased; uniqueness is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
