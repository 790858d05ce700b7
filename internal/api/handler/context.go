package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// ctxRequester extracts the identity claims injected by the Auth middleware.
// A missing user id or role means the middleware did not run; reject before
// any service call.
func ctxRequester(c echo.Context) (ports.Requester, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Requester{UserID: userID, Role: domain.Role(role)}, nil
}
