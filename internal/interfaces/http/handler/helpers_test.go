package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
	"github.com/roadwatch/backend/internal/infrastructure/config"
	"github.com/roadwatch/backend/internal/infrastructure/media"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/memory"
	"github.com/roadwatch/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires handlers over the in-memory store for endpoint tests.
type testEnv struct {
	router *gin.Engine
	store  *memory.Store

	users     *appmonitoring.UserService
	cameras   *appmonitoring.CameraService
	incidents *appmonitoring.IncidentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	middleware.SetupValidator()

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
		MaxUploadSize: 100 << 20,
	}, logger)
	require.NoError(t, err)

	userHandler := NewUserHandler(userService)
	cameraHandler := NewCameraHandler(cameraService)
	incidentHandler := NewIncidentHandler(incidentService, notificationService)
	notificationHandler := NewNotificationHandler(notificationService)
	systemHandler := NewSystemHandler(statService)
	videoHandler := NewVideoHandler(mediaStore, nil, logger)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.POST("/users", userHandler.Create)

		api.GET("/cameras", cameraHandler.List)
		api.GET("/cameras/:id", cameraHandler.Get)
		api.POST("/cameras", cameraHandler.Create)
		api.PATCH("/cameras/:id/status", cameraHandler.UpdateStatus)
		api.GET("/cameras/:id/incidents", cameraHandler.ListIncidents)

		api.GET("/incidents", incidentHandler.List)
		api.GET("/incidents/:id", incidentHandler.Get)
		api.POST("/incidents", incidentHandler.Create)
		api.PATCH("/incidents/:id/review", incidentHandler.Review)
		api.GET("/incidents/:id/notifications", incidentHandler.ListNotifications)

		api.POST("/notifications", notificationHandler.Create)

		api.GET("/system/stats", systemHandler.LatestStats)
		api.POST("/system/stats", systemHandler.RecordStats)

		api.POST("/videos/upload", videoHandler.Upload)
		api.POST("/upload", videoHandler.Upload)
		api.GET("/videos", videoHandler.List)
		api.GET("/videos/:filename", videoHandler.Stream)
		api.GET("/videos/:filename/archive", videoHandler.ArchiveLink)
	}
	r.GET("/health", systemHandler.Health)

	return &testEnv{
		router:    r,
		store:     store,
		users:     userService,
		cameras:   cameraService,
		incidents: incidentService,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got %s", w.Body.String())

	var out T
	require.NoError(t, json.Unmarshal(envelope.Data, &out))
	return out
}

func (e *testEnv) seedCamera(t *testing.T) *appmonitoring.CameraResponse {
	t.Helper()
	camera, err := e.cameras.Create(t.Context(), appmonitoring.CreateCameraRequest{
		Name:     "Gate Cam",
		Location: "North Gate",
		Type:     "fixed",
	})
	require.NoError(t, err)
	return camera
}

func (e *testEnv) seedIncident(t *testing.T, cameraID int64) *appmonitoring.IncidentResponse {
	t.Helper()
	incident, err := e.incidents.Create(t.Context(), appmonitoring.CreateIncidentRequest{
		CameraID: cameraID,
		Type:     "collision",
		Severity: "high",
		Location: "North Gate",
	})
	require.NoError(t, err)
	return incident
}

func multipartVideo(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func doRaw(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
