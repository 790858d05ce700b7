package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications. Every route
// requires authentication; ownership checks live in the service.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type createApplicationRequest struct {
	JobID       string `json:"job_id"       validate:"required"`
	ResumeURL   string `json:"resume_url"   validate:"omitempty,url"`
	CoverLetter string `json:"cover_letter"`
}

type updateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewed accepted rejected"`
}

// Create handles POST /api/applications. The applicant is the caller.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	var body createApplicationRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.service.Create(c.Request().Context(), ports.CreateApplicationInput{
		JobID:       body.JobID,
		ResumeURL:   body.ResumeURL,
		CoverLetter: body.CoverLetter,
		Requester:   req,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, app)
}

// List handles GET /api/applications. Jobseekers see their own submissions;
// employer and admin see everything.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Application
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	apps, err := h.service.List(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/applications/:id. Owner or reviewer roles only.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	app, err := h.service.Get(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Update handles PUT /api/applications/:id — a status transition by a
// reviewer (employer or admin).
//
// @Summary      Update an application's review status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application ID"
// @Param        body  body      updateApplicationRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	var body updateApplicationRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), body.Status, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/applications/:id. Owner or reviewer roles only.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
