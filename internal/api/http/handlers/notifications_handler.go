package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/dto"
	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/service"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// NotificationsHandler serves the authenticated user's inbox.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notificationService}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	rows, err := h.notifications.ListForUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	views := make([]dto.NotificationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.NewNotificationView(row))
	}
	return c.JSON(views)
}
