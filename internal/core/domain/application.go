package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a job application.
type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// validTransitions defines the allowed review state transitions.
// Accepted and rejected are terminal.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:  {ApplicationReviewed, ApplicationRejected},
	ApplicationReviewed: {ApplicationAccepted, ApplicationRejected},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("application already exists")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseApplicationStatus validates a status supplied at the API boundary.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationApplied, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return ApplicationStatus(s), nil
	}
	return "", ErrInvalidTransition
}

// Application records a user applying to a job. A user may apply to a given
// job at most once.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	UserID      string            `json:"user_id"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
