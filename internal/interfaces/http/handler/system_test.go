package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

func TestSystemEndpoints(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		health := decodeData[HealthResponse](t, w)
		assert.Equal(t, "ok", health.Status)
		assert.NotEmpty(t, health.GoVersion)
	})

	t.Run("latest stats empty store has no data", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodGet, "/api/system/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool            `json:"success"`
			Data    json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Empty(t, envelope.Data)
		assert.NotContains(t, w.Body.String(), `"data":null`)
	})

	t.Run("record then fetch latest", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/system/stats", map[string]any{
			"cpu":    41.5,
			"memory": 63.0,
			"storage": map[string]any{
				"used":       "120.0 GB",
				"total":      "500.0 GB",
				"percentage": 24.0,
			},
			"network":  "48 Mbps",
			"services": map[string]string{"backend": "running"},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodGet, "/api/system/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		latest := decodeData[appmonitoring.SystemStatResponse](t, w)
		assert.Equal(t, 41.5, latest.CPU)
		assert.Equal(t, "120.0 GB", latest.Storage.Used)
		assert.Equal(t, "running", latest.Services["backend"])
	})

	t.Run("out of range cpu rejected", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/system/stats", map[string]any{
			"cpu":    140.0,
			"memory": 10.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
