package detector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/roadwatch/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeScript writes a shell script the supervisor can spawn, returning
// the command line for it.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detector.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return "sh " + path
}

func newTestSupervisor(t *testing.T, command string, readyTimeout time.Duration) *Supervisor {
	t.Helper()
	s := NewSupervisor(config.DetectorConfig{
		Command:      command,
		Host:         "127.0.0.1",
		Port:         5001,
		ReadyMarker:  "Running on",
		ReadyTimeout: readyTimeout,
		RestartDelay: 10 * time.Millisecond,
	}, zap.NewNop())
	t.Cleanup(s.Shutdown)
	return s
}

func TestSupervisor_EnsureReady(t *testing.T) {
	t.Run("becomes ready when marker is printed", func(t *testing.T) {
		cmd := writeScript(t, `echo "* Running on http://127.0.0.1:5001"; sleep 10`)
		s := newTestSupervisor(t, cmd, 5*time.Second)

		start := time.Now()
		require.NoError(t, s.EnsureReady(context.Background()))

		assert.Equal(t, StateReady, s.State())
		assert.Less(t, time.Since(start), 3*time.Second)
	})

	t.Run("marker on stderr counts", func(t *testing.T) {
		cmd := writeScript(t, `echo "* Running on http://127.0.0.1:5001" 1>&2; sleep 10`)
		s := newTestSupervisor(t, cmd, 5*time.Second)

		require.NoError(t, s.EnsureReady(context.Background()))
		assert.Equal(t, StateReady, s.State())
	})

	t.Run("proceeds without error when readiness times out", func(t *testing.T) {
		cmd := writeScript(t, `sleep 10`)
		s := newTestSupervisor(t, cmd, 50*time.Millisecond)

		require.NoError(t, s.EnsureReady(context.Background()))
		assert.Equal(t, StateStarting, s.State())
	})

	t.Run("spawn failure is soft", func(t *testing.T) {
		s := newTestSupervisor(t, "/nonexistent-binary-12345", 50*time.Millisecond)

		require.NoError(t, s.EnsureReady(context.Background()))
		assert.Equal(t, StateStopped, s.State())
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		cmd := writeScript(t, `sleep 10`)
		s := newTestSupervisor(t, cmd, 5*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := s.EnsureReady(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("concurrent callers share one start", func(t *testing.T) {
		counter := filepath.Join(t.TempDir(), "starts")
		cmd := writeScript(t, fmt.Sprintf(`echo x >> %s; echo "Running on"; sleep 10`, counter))
		s := newTestSupervisor(t, cmd, 5*time.Second)

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.EnsureReady(context.Background()))
			}()
		}
		wg.Wait()

		data, err := os.ReadFile(counter)
		require.NoError(t, err)
		assert.Equal(t, "x\n", string(data))
	})
}

func TestSupervisor_ProcessExitClearsState(t *testing.T) {
	cmd := writeScript(t, `echo "Running on"; sleep 0.1`)
	s := newTestSupervisor(t, cmd, 5*time.Second)

	require.NoError(t, s.EnsureReady(context.Background()))
	assert.Equal(t, StateReady, s.State())

	assert.Eventually(t, func() bool {
		return s.State() == StateStopped
	}, 3*time.Second, 20*time.Millisecond)
}

func TestSupervisor_Shutdown(t *testing.T) {
	cmd := writeScript(t, `echo "Running on"; sleep 60`)
	s := newTestSupervisor(t, cmd, 5*time.Second)

	require.NoError(t, s.EnsureReady(context.Background()))
	s.Shutdown()

	assert.Equal(t, StateStopped, s.State())

	// Shutdown twice is harmless
	s.Shutdown()
	assert.Equal(t, StateStopped, s.State())
}

func TestSupervisor_Restart(t *testing.T) {
	cmd := writeScript(t, `echo "Running on"; sleep 60`)
	s := newTestSupervisor(t, cmd, 5*time.Second)

	require.NoError(t, s.EnsureReady(context.Background()))
	require.NoError(t, s.Restart(context.Background()))

	require.NoError(t, s.EnsureReady(context.Background()))
	assert.Equal(t, StateReady, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "starting", StateStarting.String())
	assert.Equal(t, "ready", StateReady.String())
}
