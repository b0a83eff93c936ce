package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roadwatch/backend/internal/infrastructure/archive"
	"github.com/roadwatch/backend/internal/infrastructure/media"
)

// VideoHandler handles video upload, listing, and range streaming
type VideoHandler struct {
	BaseHandler
	store    *media.Store
	archiver archive.Archiver
	logger   *zap.Logger
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(store *media.Store, archiver archive.Archiver, logger *zap.Logger) *VideoHandler {
	if archiver == nil {
		archiver = archive.NewNoopArchiver()
	}
	return &VideoHandler{
		store:    store,
		archiver: archiver,
		logger:   logger.Named("video"),
	}
}

// Upload accepts a single multipart video file
func (h *VideoHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("video")
	if err != nil {
		h.BadRequest(c, "Missing video file field")
		return
	}

	video, err := h.store.SaveUpload(fh)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.logger.Info("video uploaded",
		zap.String("filename", video.Filename),
		zap.Int64("size", video.Size))

	go h.archiveVideo(video.Filename)

	h.Created(c, video)
}

// archiveVideo copies an uploaded file to the archive bucket.
// Runs detached from the request; failures are logged only.
func (h *VideoHandler) archiveVideo(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	f, _, err := h.store.Open(name)
	if err != nil {
		h.logger.Warn("archive skipped, file not readable", zap.String("filename", name), zap.Error(err))
		return
	}
	defer f.Close()

	if err := h.archiver.Archive(ctx, name, f, "video/mp4"); err != nil && err != archive.ErrDisabled {
		h.logger.Warn("archive upload failed", zap.String("filename", name), zap.Error(err))
	}
}

// ArchiveLinkResponse carries a time-limited download link for
// archived footage
type ArchiveLinkResponse struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ArchiveLink returns a presigned download URL for an archived video.
// 404 when the object was never archived or archiving is disabled.
func (h *VideoHandler) ArchiveLink(c *gin.Context) {
	name := c.Param("filename")

	exists, err := h.archiver.Exists(c.Request.Context(), name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !exists {
		h.NotFound(c, "Archived video not found")
		return
	}

	url, expiresAt, err := h.archiver.DownloadURL(c.Request.Context(), name, 15*time.Minute)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ArchiveLinkResponse{
		Filename:  name,
		URL:       url,
		ExpiresAt: expiresAt,
	})
}

// List returns the videos present in the upload directory
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.store.List()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, videos, len(videos))
}

// Stream serves a stored video, honoring Range requests
func (h *VideoHandler) Stream(c *gin.Context) {
	name := c.Param("filename")

	f, info, err := h.store.Open(name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "video/mp4")
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
