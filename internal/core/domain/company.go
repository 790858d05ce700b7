package domain

import (
	"errors"
	"time"
)

var ErrCompanyNotFound = errors.New("company not found")
var ErrCompanyExists = errors.New("company already exists")

// Company is an employer profile that jobs are posted under.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
