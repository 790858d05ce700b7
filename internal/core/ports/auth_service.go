package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// RegisterInput carries the signup payload. Role is the raw boundary string;
// the service normalizes it via domain.ParseRole.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
