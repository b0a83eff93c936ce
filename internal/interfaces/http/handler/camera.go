package handler

import (
	"github.com/gin-gonic/gin"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

// CameraHandler handles camera endpoints
type CameraHandler struct {
	BaseHandler
	cameraService *appmonitoring.CameraService
}

// NewCameraHandler creates a new CameraHandler
func NewCameraHandler(cameraService *appmonitoring.CameraService) *CameraHandler {
	return &CameraHandler{cameraService: cameraService}
}

// List returns all registered cameras
func (h *CameraHandler) List(c *gin.Context) {
	cameras, err := h.cameraService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, cameras, len(cameras))
}

// Get returns a single camera by id
func (h *CameraHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	camera, err := h.cameraService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, camera)
}

// Create registers a new camera
func (h *CameraHandler) Create(c *gin.Context) {
	var req appmonitoring.CreateCameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	camera, err := h.cameraService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, camera)
}

// UpdateStatus changes a camera's monitoring status
func (h *CameraHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req appmonitoring.UpdateCameraStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	camera, err := h.cameraService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, camera)
}

// ListIncidents returns the incidents recorded for a camera
func (h *CameraHandler) ListIncidents(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	incidents, err := h.cameraService.ListIncidents(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, incidents, len(incidents))
}
