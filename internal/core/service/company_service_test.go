package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

func newCompanyService() *CompanyService {
	return NewCompanyService(newStubCompanyRepo(), zerolog.Nop())
}

func TestCompanyService_Create(t *testing.T) {
	svc := newCompanyService()

	company, err := svc.Create(context.Background(), ports.CreateCompanyInput{
		Name:        "  Acme  ",
		Description: "We build things",
		Website:     "https://acme.example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if company.Name != "Acme" {
		t.Fatalf("name not trimmed: %q", company.Name)
	}
	if company.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestCompanyService_Create_Validation(t *testing.T) {
	svc := newCompanyService()

	if _, err := svc.Create(context.Background(), ports.CreateCompanyInput{Description: "d"}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCompanyInput{Name: "Acme"}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for missing description, got %v", err)
	}
}

func TestCompanyService_Create_DuplicateName(t *testing.T) {
	svc := newCompanyService()

	if _, err := svc.Create(context.Background(), ports.CreateCompanyInput{Name: "Acme", Description: "d"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCompanyInput{Name: "Acme", Description: "other"}); err != domain.ErrCompanyExists {
		t.Fatalf("expected ErrCompanyExists, got %v", err)
	}
}

func TestCompanyService_Update_Partial(t *testing.T) {
	svc := newCompanyService()

	company, err := svc.Create(context.Background(), ports.CreateCompanyInput{Name: "Acme", Description: "old", Location: "Berlin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	desc := "new description"
	updated, err := svc.Update(context.Background(), company.ID, ports.UpdateCompanyInput{Description: &desc})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "new description" {
		t.Fatalf("description not updated: %q", updated.Description)
	}
	if updated.Location != "Berlin" {
		t.Fatalf("untouched field changed: %q", updated.Location)
	}

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateCompanyInput{Description: &desc}); err != domain.ErrCompanyNotFound {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
