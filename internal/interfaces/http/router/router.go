package router

import (
	"github.com/gin-gonic/gin"

	"github.com/roadwatch/backend/internal/interfaces/http/handler"
)

// Handlers holds the handler set registered by Setup
type Handlers struct {
	Users         *handler.UserHandler
	Cameras       *handler.CameraHandler
	Incidents     *handler.IncidentHandler
	Notifications *handler.NotificationHandler
	System        *handler.SystemHandler
	Videos        *handler.VideoHandler
}

// StaticDirs are the media directories served directly
type StaticDirs struct {
	Uploads   string
	Processed string
}

// Setup registers all API routes, the health check, and the static
// media directories on the engine.
func Setup(engine *gin.Engine, h Handlers, static StaticDirs) {
	engine.GET("/health", h.System.Health)

	api := engine.Group("/api")
	{
		api.GET("/users", h.Users.List)
		api.GET("/users/:id", h.Users.Get)
		api.POST("/users", h.Users.Create)

		api.GET("/cameras", h.Cameras.List)
		api.GET("/cameras/:id", h.Cameras.Get)
		api.POST("/cameras", h.Cameras.Create)
		api.PATCH("/cameras/:id/status", h.Cameras.UpdateStatus)
		api.GET("/cameras/:id/incidents", h.Cameras.ListIncidents)

		api.GET("/incidents", h.Incidents.List)
		api.GET("/incidents/:id", h.Incidents.Get)
		api.POST("/incidents", h.Incidents.Create)
		api.PATCH("/incidents/:id/review", h.Incidents.Review)
		api.GET("/incidents/:id/notifications", h.Incidents.ListNotifications)

		api.POST("/notifications", h.Notifications.Create)

		api.GET("/system/stats", h.System.LatestStats)
		api.POST("/system/stats", h.System.RecordStats)

		api.POST("/videos/upload", h.Videos.Upload)
		// Alias kept for clients that post to the detection service's path.
		api.POST("/upload", h.Videos.Upload)
		api.GET("/videos", h.Videos.List)
		api.GET("/videos/:filename", h.Videos.Stream)
		api.GET("/videos/:filename/archive", h.Videos.ArchiveLink)
	}

	if static.Uploads != "" {
		engine.Static("/uploads", static.Uploads)
	}
	if static.Processed != "" {
		engine.Static("/processed", static.Processed)
	}
}
