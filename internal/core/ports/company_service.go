package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// CreateCompanyInput carries all data needed to create a company profile.
type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Location    string
}

// UpdateCompanyInput carries a partial company update. Nil fields are left untouched.
type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
}

type CompanyService interface {
	Create(ctx context.Context, in CreateCompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, id string, in UpdateCompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}
