package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// CompanyService implements company profile management.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrValidation
	}

	// Fast pre-check; the unique index on name is the real guarantee.
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrCompanyExists
	} else if err != nil && !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		Location:    strings.TrimSpace(in.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.ID).Str("name", created.Name).Msg("company created")
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]*domain.Company, error) {
	return s.repo.List(ctx)
}

func (s *CompanyService) Update(ctx context.Context, id string, in ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		company.Description = strings.TrimSpace(*in.Description)
	}
	if in.Website != nil {
		company.Website = strings.TrimSpace(*in.Website)
	}
	if in.Location != nil {
		company.Location = strings.TrimSpace(*in.Location)
	}
	company.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, company)
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
