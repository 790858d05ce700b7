package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// NotificationHandler serves the caller's notification feed.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/notifications.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Failure      401  {object}  errorResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	req, err := ctxRequester(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.ListForUser(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}
