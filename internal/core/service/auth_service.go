package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobboard-api/internal/api/metrics"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new identity with a bcrypt-hashed password. Emails are
// compared case-insensitively: the lowercased form is what gets stored, and
// the unique index on it yields domain.ErrUserExists on a second signup.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(created.Role)).Inc()
	return created, nil
}

// Login verifies credentials and issues a bearer token. A missing user and a
// wrong password both surface as domain.ErrInvalidCredentials so callers
// cannot enumerate registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

// Profile returns the identity for a verified user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
