package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
	"github.com/roadwatch/backend/internal/infrastructure/config"
	"github.com/roadwatch/backend/internal/infrastructure/media"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/memory"
	"github.com/roadwatch/backend/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, static StaticDirs) *gin.Engine {
	t.Helper()

	logger := zap.NewNop()
	store := memory.NewStore()

	userRepo := memory.NewUserRepository(store)
	cameraRepo := memory.NewCameraRepository(store)
	incidentRepo := memory.NewIncidentRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	statRepo := memory.NewSystemStatRepository(store)

	userService := appmonitoring.NewUserService(userRepo, logger)
	cameraService := appmonitoring.NewCameraService(cameraRepo, incidentRepo, logger)
	incidentService := appmonitoring.NewIncidentService(incidentRepo, cameraRepo, logger)
	notificationService := appmonitoring.NewNotificationService(notificationRepo, incidentRepo, logger)
	statService := appmonitoring.NewSystemStatService(statRepo, logger)

	mediaStore, err := media.NewStore(config.MediaConfig{
		UploadDir:     t.TempDir(),
		ProcessedDir:  t.TempDir(),
		MaxUploadSize: 1 << 20,
	}, logger)
	require.NoError(t, err)

	engine := gin.New()
	Setup(engine, Handlers{
		Users:         handler.NewUserHandler(userService),
		Cameras:       handler.NewCameraHandler(cameraService),
		Incidents:     handler.NewIncidentHandler(incidentService, notificationService),
		Notifications: handler.NewNotificationHandler(notificationService),
		System:        handler.NewSystemHandler(statService),
		Videos:        handler.NewVideoHandler(mediaStore, nil, logger),
	}, static)
	return engine
}

func TestRouteRegistration(t *testing.T) {
	engine := newEngine(t, StaticDirs{})

	routes := make(map[string]bool)
	for _, route := range engine.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /api/users",
		"GET /api/users/:id",
		"POST /api/users",
		"GET /api/cameras",
		"GET /api/cameras/:id",
		"POST /api/cameras",
		"PATCH /api/cameras/:id/status",
		"GET /api/cameras/:id/incidents",
		"GET /api/incidents",
		"GET /api/incidents/:id",
		"POST /api/incidents",
		"PATCH /api/incidents/:id/review",
		"GET /api/incidents/:id/notifications",
		"POST /api/notifications",
		"GET /api/system/stats",
		"POST /api/system/stats",
		"POST /api/videos/upload",
		"POST /api/upload",
		"GET /api/videos",
		"GET /api/videos/:filename",
		"GET /api/videos/:filename/archive",
	}
	for _, want := range expected {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestStaticDirsServed(t *testing.T) {
	uploads := t.TempDir()
	processed := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "clip.mp4"), []byte("raw"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "clip.mp4"), []byte("annotated"), 0o644))

	engine := newEngine(t, StaticDirs{Uploads: uploads, Processed: processed})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/clip.mp4", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/processed/clip.mp4", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "annotated", w.Body.String())
}
