package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs. Public; supports status/location/search
// filters and pagination.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        status    query     string  false  "Filter by status (open|closed)"
// @Param        location  query     string  false  "Filter by location"
// @Param        search    query     string  false  "Partial match on title or skills"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listJobsResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListJobsFilter{
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	items := make([]jobResponse, len(result.Items))
	for i, job := range result.Items {
		items[i] = toJobResponse(job)
	}

	return c.JSON(http.StatusOK, listJobsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /api/jobs. Employer or admin role required.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		CompanyID:      req.CompanyID,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		SkillsRequired: req.SkillsRequired,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /api/jobs/:id. Employer or admin role required; setting
// status to closed is how a posting is closed.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  jobResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		SkillsRequired: req.SkillsRequired,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /api/jobs/:id. Employer or admin role required.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		CompanyID:      job.CompanyID,
		Location:       job.Location,
		SalaryRange:    job.SalaryRange,
		SkillsRequired: job.SkillsRequired,
		Status:         string(job.Status),
		PostedAt:       job.PostedAt.UTC(),
		UpdatedAt:      job.UpdatedAt.UTC(),
	}
}
