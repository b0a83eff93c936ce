package archive

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrDisabled is returned by NoopArchiver for operations that need a
// configured backend.
var ErrDisabled = errors.New("archiving is disabled")

// NoopArchiver is the Archiver used when archiving is disabled. Uploads
// are silently discarded; lookups report absence.
type NoopArchiver struct{}

var _ Archiver = (*NoopArchiver)(nil)

// NewNoopArchiver creates a NoopArchiver
func NewNoopArchiver() *NoopArchiver {
	return &NoopArchiver{}
}

// Archive discards the object.
func (*NoopArchiver) Archive(ctx context.Context, key string, body io.Reader, contentType string) error {
	return nil
}

// DownloadURL reports that archiving is disabled.
func (*NoopArchiver) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	return "", time.Time{}, ErrDisabled
}

// Exists always reports absence.
func (*NoopArchiver) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}
