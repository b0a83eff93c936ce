package handler

import (
	"github.com/gin-gonic/gin"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

// IncidentHandler handles incident endpoints
type IncidentHandler struct {
	BaseHandler
	incidentService     *appmonitoring.IncidentService
	notificationService *appmonitoring.NotificationService
}

// NewIncidentHandler creates a new IncidentHandler
func NewIncidentHandler(incidentService *appmonitoring.IncidentService, notificationService *appmonitoring.NotificationService) *IncidentHandler {
	return &IncidentHandler{
		incidentService:     incidentService,
		notificationService: notificationService,
	}
}

// List returns all incidents, newest first
func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.incidentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, incidents, len(incidents))
}

// Get returns a single incident by id
func (h *IncidentHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	incident, err := h.incidentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, incident)
}

// Create records a newly detected incident
func (h *IncidentHandler) Create(c *gin.Context) {
	var req appmonitoring.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	incident, err := h.incidentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, incident)
}

// Review marks an incident as reviewed
func (h *IncidentHandler) Review(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	incident, err := h.incidentService.Review(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, incident)
}

// ListNotifications returns the notifications queued for an incident
func (h *IncidentHandler) ListNotifications(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListByIncident(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, notifications, len(notifications))
}
