package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// CompanyRepository defines persistence operations for company profiles.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByName(ctx context.Context, name string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Company, error)
}
