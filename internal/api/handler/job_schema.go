package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createJobRequest struct {
	Title          string   `json:"title"           validate:"required"`
	Description    string   `json:"description"     validate:"required"`
	CompanyID      string   `json:"company_id"      validate:"required"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salary_range"`
	SkillsRequired []string `json:"skills_required"`
	Status         string   `json:"status"          validate:"omitempty,oneof=open closed"`
}

type updateJobRequest struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Location       *string   `json:"location"`
	SalaryRange    *string   `json:"salary_range"`
	SkillsRequired *[]string `json:"skills_required"`
	Status         *string   `json:"status" validate:"omitempty,oneof=open closed"`
}

type jobResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CompanyID      string    `json:"company_id"`
	Location       string    `json:"location,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	SkillsRequired []string  `json:"skills_required,omitempty"`
	Status         string    `json:"status"`
	PostedAt       time.Time `json:"posted_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []jobResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
