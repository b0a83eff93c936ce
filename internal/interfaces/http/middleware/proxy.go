package middleware

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roadwatch/backend/internal/interfaces/http/dto"
)

// detectionPathPrefixes are the path prefixes relayed to the detection service.
var detectionPathPrefixes = []string{
	"/api/status",
	"/api/system-stats",
	"/api/cameras",
	"/api/incidents",
	"/api/upload",
	"/api/videos",
	"/uploads/",
	"/processed/",
}

// hopHeaders are stripped when relaying in either direction.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// DetectorGate blocks until the detection service is ready to accept
// connections, or the bounded wait elapses.
type DetectorGate interface {
	EnsureReady(ctx context.Context) error
}

// ProxyConfig configures the detection service proxy middleware
type ProxyConfig struct {
	// Target is the base URL of the detection service, e.g. http://127.0.0.1:5001
	Target string
	Gate   DetectorGate
	Client *http.Client
	Logger *zap.Logger
}

// IsDetectionPath reports whether a request path is relayed to the
// detection service. Camera and incident subresource paths under /api
// match even when not covered by a listed prefix.
func IsDetectionPath(path string) bool {
	for _, prefix := range detectionPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if strings.Contains(path, "/cameras/") && strings.Contains(path, "/api") {
		return true
	}
	if strings.Contains(path, "/incidents/") && strings.Contains(path, "/api") {
		return true
	}
	return false
}

// DetectionProxy relays matching requests to the detection service and
// answers 502 when the upstream cannot be reached. Multipart uploads
// fall through to the local handlers, which own file persistence.
func DetectionProxy(cfg ProxyConfig) gin.HandlerFunc {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	target := strings.TrimRight(cfg.Target, "/")

	return func(c *gin.Context) {
		if !IsDetectionPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		if cfg.Gate != nil {
			if err := cfg.Gate.EnsureReady(c.Request.Context()); err != nil {
				logger.Warn("detection service readiness wait aborted",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
				respondUpstreamError(c)
				return
			}
		}

		upstreamURL := target + c.Request.URL.RequestURI()
		req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, upstreamURL, c.Request.Body)
		if err != nil {
			logger.Error("failed to build upstream request",
				zap.String("url", upstreamURL),
				zap.Error(err))
			respondUpstreamError(c)
			return
		}
		copyHeaders(req.Header, c.Request.Header)
		req.ContentLength = c.Request.ContentLength

		resp, err := client.Do(req)
		if err != nil {
			logger.Warn("detection service unreachable",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			respondUpstreamError(c)
			return
		}
		defer resp.Body.Close()

		copyHeaders(c.Writer.Header(), resp.Header)
		c.Writer.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(c.Writer, resp.Body); err != nil {
			logger.Warn("relaying upstream body failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		c.Abort()
	}
}

func respondUpstreamError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadGateway, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUpstream,
		"Detection service unavailable",
		getRequestIDFromContext(c),
	))
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if isHopHeader(key) {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func isHopHeader(key string) bool {
	for _, h := range hopHeaders {
		if http.CanonicalHeaderKey(key) == h {
			return true
		}
	}
	return false
}
