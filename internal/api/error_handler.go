package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Credential and token
	// failure kinds are deliberately collapsed so responses leak nothing
	// about which check failed.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenSignature),
		errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, domain.ErrInvalidJobStatus):
		return http.StatusUnprocessableEntity, "invalid job status"
	case errors.Is(err, domain.ErrJobClosed):
		return http.StatusConflict, "job is closed"
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "company not found"
	case errors.Is(err, domain.ErrCompanyExists):
		return http.StatusConflict, "company already exists"
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, domain.ErrDuplicateApplication):
		return http.StatusConflict, "already applied to this job"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
