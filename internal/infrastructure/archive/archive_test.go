package archive

import (
	"context"
	"strings"
	"testing"
	"time"

	infraconfig "github.com/roadwatch/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewS3Archiver(t *testing.T) {
	t.Run("requires configuration", func(t *testing.T) {
		_, err := NewS3Archiver(nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("requires bucket", func(t *testing.T) {
		_, err := NewS3Archiver(&infraconfig.ArchiveConfig{Region: "us-east-1"}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket")
	})

	t.Run("creates client with static credentials", func(t *testing.T) {
		archiver, err := NewS3Archiver(&infraconfig.ArchiveConfig{
			Bucket:          "footage",
			Region:          "us-east-1",
			Endpoint:        "localhost:9000",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			UsePathStyle:    true,
		}, zap.NewNop())

		require.NoError(t, err)
		assert.NotNil(t, archiver.client)
		assert.NotNil(t, archiver.presignClient)
	})
}

func TestS3Archiver_DownloadURL(t *testing.T) {
	archiver, err := NewS3Archiver(&infraconfig.ArchiveConfig{
		Bucket:          "footage",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	}, zap.NewNop())
	require.NoError(t, err)

	t.Run("requires key", func(t *testing.T) {
		_, _, err := archiver.DownloadURL(context.Background(), "", time.Minute)
		assert.Error(t, err)
	})

	t.Run("presigns without contacting the backend", func(t *testing.T) {
		url, expiresAt, err := archiver.DownloadURL(context.Background(), "video-1.mp4", time.Minute)

		require.NoError(t, err)
		assert.Contains(t, url, "footage")
		assert.Contains(t, url, "video-1.mp4")
		assert.True(t, expiresAt.After(time.Now()))
	})
}

func TestNoopArchiver(t *testing.T) {
	archiver := NewNoopArchiver()

	assert.NoError(t, archiver.Archive(context.Background(), "k", strings.NewReader("data"), "video/mp4"))

	exists, err := archiver.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = archiver.DownloadURL(context.Background(), "k", time.Minute)
	assert.ErrorIs(t, err, ErrDisabled)
}
