package domain

import (
	"errors"
	"time"
)

// Role is the closed set of identity roles.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("invalid input")

// ParseRole normalizes a role string supplied at the API boundary.
// "company" is accepted as a legacy alias for employer; an empty string
// falls back to the default jobseeker role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleJobSeeker, nil
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return Role(s), nil
	case "company":
		return RoleEmployer, nil
	}
	return "", ErrInvalidRole
}

// CanManageJobs reports whether the role may create, update, or delete jobs.
func CanManageJobs(r Role) bool {
	return r == RoleEmployer || r == RoleAdmin
}

// CanManageCompanies reports whether the role may create, update, or delete
// company records.
func CanManageCompanies(r Role) bool {
	return r == RoleEmployer || r == RoleAdmin
}

// CanReviewApplications reports whether the role may see every application
// and move applications through their review states.
func CanReviewApplications(r Role) bool {
	return r == RoleEmployer || r == RoleAdmin
}

// CanViewApplication reports whether the requester may read or delete an
// application owned by ownerID.
func CanViewApplication(r Role, ownerID, requesterID string) bool {
	return requesterID == ownerID || CanReviewApplications(r)
}

// User models an authenticated actor in the system. The password hash is
// excluded from every JSON representation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
