// Package media manages uploaded video files on local disk: naming,
// validation, listing and readers for byte-range streaming.
package media

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/roadwatch/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// allowedExtensions is the set of video container formats accepted for upload.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// Video describes a stored video file.
type Video struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	URL        string    `json:"url"`
}

// Store persists uploaded videos under a local directory.
type Store struct {
	uploadDir    string
	processedDir string
	maxSize      int64
	logger       *zap.Logger
}

// NewStore creates a Store and ensures its directories exist.
func NewStore(cfg config.MediaConfig, logger *zap.Logger) (*Store, error) {
	for _, dir := range []string{cfg.UploadDir, cfg.ProcessedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
		}
	}
	return &Store{
		uploadDir:    cfg.UploadDir,
		processedDir: cfg.ProcessedDir,
		maxSize:      cfg.MaxUploadSize,
		logger:       logger,
	}, nil
}

// UploadDir returns the directory holding raw uploads.
func (s *Store) UploadDir() string {
	return s.uploadDir
}

// ProcessedDir returns the directory holding processed footage.
func (s *Store) ProcessedDir() string {
	return s.processedDir
}

// MaxSize returns the upload size cap in bytes.
func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// SaveUpload validates and stores an uploaded video file. The stored name
// is generated from the upload time and a random suffix; the client's
// file name only contributes its extension.
func (s *Store) SaveUpload(fh *multipart.FileHeader) (*Video, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return nil, shared.NewDomainError("INVALID_FILE_TYPE", "Only video files are allowed (mp4, mov, avi, mkv, webm)")
	}
	if fh.Size > s.maxSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", fmt.Sprintf("File exceeds the %d byte upload limit", s.maxSize))
	}

	name := fmt.Sprintf("video-%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	dst := filepath.Join(s.uploadDir, name)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	s.logger.Info("video stored",
		zap.String("filename", name),
		zap.Int64("size", written))

	return &Video{
		Filename:   name,
		Size:       written,
		UploadedAt: time.Now(),
		URL:        "/uploads/" + name,
	}, nil
}

// List returns the stored videos, newest first.
func (s *Store) List() ([]Video, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.uploadDir, err)
	}

	videos := make([]Video, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !allowedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		videos = append(videos, Video{
			Filename:   entry.Name(),
			Size:       info.Size(),
			UploadedAt: info.ModTime(),
			URL:        "/uploads/" + entry.Name(),
		})
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].UploadedAt.After(videos[j].UploadedAt) })
	return videos, nil
}

// Open returns a reader and file info for a stored video. The name must
// be a bare file name; anything resembling a path is rejected.
func (s *Store) Open(name string) (*os.File, os.FileInfo, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, nil, shared.NewDomainError("INVALID_FILENAME", "Invalid video file name")
	}

	path := filepath.Join(s.uploadDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, shared.ErrNotFound
		}
		return nil, nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, nil, shared.ErrNotFound
	}
	return file, info, nil
}
