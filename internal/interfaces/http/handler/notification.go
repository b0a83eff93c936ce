package handler

import (
	"github.com/gin-gonic/gin"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *appmonitoring.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *appmonitoring.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Create queues a notification for an incident
func (h *NotificationHandler) Create(c *gin.Context) {
	var req appmonitoring.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, notification)
}
