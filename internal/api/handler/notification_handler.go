package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListByUser returns a user's notification feed, newest first, capped at the
// feed limit. Only the feed owner or an admin may read it.
//
// @Summary      List a user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200     {array}   domain.Notification
// @Failure      403     {object}  map[string]string
// @Router       /api/users/{id}/notifications [get]
func (h *NotificationHandler) ListByUser(c echo.Context) error {
	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID := c.Param("id")
	if actorID != userID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	notifications, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead marks a notification as read. Re-marking is idempotent.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  map[string]string
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notification, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}
