package sysmon

import (
	"context"
	"errors"
	"testing"
	"time"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCollector(t *testing.T, fn SampleFunc) (*Collector, *memory.SystemStatRepository) {
	t.Helper()
	repo := memory.NewSystemStatRepository(memory.NewStore())
	svc := appmonitoring.NewSystemStatService(repo, zap.NewNop())
	return NewCollector(svc, 10*time.Millisecond, zap.NewNop()).WithSampleFunc(fn), repo
}

func TestCollector_RecordsSamples(t *testing.T) {
	collector, repo := newTestCollector(t, func(ctx context.Context) (Sample, error) {
		return Sample{
			CPU:         42.5,
			Memory:      61.0,
			StorageUsed: 120 << 30,
			StorageAll:  500 << 30,
			StoragePct:  24,
		}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		collector.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, err := repo.FindLatest(context.Background())
		return err == nil
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	latest, err := repo.FindLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42.5, latest.CPU)
	assert.Equal(t, 61.0, latest.Memory)
	assert.Equal(t, "120.0 GB", latest.Storage.Used)
	assert.Equal(t, "500.0 GB", latest.Storage.Total)
	assert.Equal(t, 24.0, latest.Storage.Percentage)
	assert.Equal(t, "running", latest.Services["backend"])
}

func TestCollector_SampleFailureIsNonFatal(t *testing.T) {
	collector, repo := newTestCollector(t, func(ctx context.Context) (Sample, error) {
		return Sample{}, errors.New("sensor offline")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	collector.Run(ctx)

	_, err := repo.FindLatest(context.Background())
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in       uint64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 << 20, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatBytes(tt.in))
	}
}
