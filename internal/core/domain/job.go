package domain

import (
	"errors"
	"time"
)

// JobStatus represents the publication state of a job posting.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

var ErrJobNotFound = errors.New("job not found")
var ErrJobClosed = errors.New("job is closed")
var ErrInvalidJobStatus = errors.New("invalid job status")

// ParseJobStatus validates a job status supplied at the API boundary.
// An empty string defaults to open.
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case "":
		return JobOpen, nil
	case JobOpen, JobClosed:
		return JobStatus(s), nil
	}
	return "", ErrInvalidJobStatus
}

// Job is a posting attached to a company.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CompanyID      string    `json:"company_id"`
	Location       string    `json:"location,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	SkillsRequired []string  `json:"skills_required,omitempty"`
	Status         JobStatus `json:"status"`
	PostedAt       time.Time `json:"posted_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
