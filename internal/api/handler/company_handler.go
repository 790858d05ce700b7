package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company profiles.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type createCompanyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Website     string `json:"website"     validate:"omitempty,url"`
	Location    string `json:"location"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Location    *string `json:"location"`
}

// List handles GET /api/companies. Public.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  domain.Company
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /api/companies/:id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create handles POST /api/companies. Employer or admin role required.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	company, err := h.service.Create(c.Request().Context(), ports.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, company)
}

// Update handles PUT /api/companies/:id. Employer or admin role required.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Company ID"
// @Param        body  body      updateCompanyRequest  true  "Fields to update"
// @Success      200   {object}  domain.Company
// @Failure      404   {object}  errorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:id. Employer or admin role required.
//
// @Summary      Delete a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id  path  string  true  "Company ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
