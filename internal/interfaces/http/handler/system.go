package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

// SystemHandler handles health and system statistics endpoints
type SystemHandler struct {
	BaseHandler
	statService *appmonitoring.SystemStatService
	startTime   time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(statService *appmonitoring.SystemStatService) *SystemHandler {
	return &SystemHandler{
		statService: statService,
		startTime:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// LatestStats returns the most recent statistics sample, or a success
// envelope without data when no sample has been recorded yet.
func (h *SystemHandler) LatestStats(c *gin.Context) {
	stat, err := h.statService.Latest(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	// A typed-nil *SystemStatResponse would serialize as "data":null.
	if stat == nil {
		h.Success(c, nil)
		return
	}
	h.Success(c, stat)
}

// RecordStats stores a statistics sample
func (h *SystemHandler) RecordStats(c *gin.Context) {
	var req appmonitoring.RecordSystemStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	stat, err := h.statService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stat)
}
