// Package detector supervises the external detection service as a child
// process: spawning, readiness tracking and teardown.
package detector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/roadwatch/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// State describes the supervised process lifecycle.
type State int

const (
	// StateStopped means no live child process exists.
	StateStopped State = iota
	// StateStarting means the process was spawned but has not reported readiness.
	StateStarting
	// StateReady means the process printed its readiness marker.
	StateReady
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	default:
		return "stopped"
	}
}

// Supervisor owns the detection service child process. All state
// transitions go through its mutex; concurrent callers of EnsureReady
// share a single in-flight start.
type Supervisor struct {
	cfg    config.DetectorConfig
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	cmd     *exec.Cmd
	readyCh chan struct{}
}

// NewSupervisor creates a Supervisor. The child is not spawned until
// EnsureReady or Start is called.
func NewSupervisor(cfg config.DetectorConfig, logger *zap.Logger) *Supervisor {
	return &Supervisor{
		cfg:    cfg,
		logger: logger.Named("detector"),
		state:  StateStopped,
	}
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EnsureReady makes sure the detection service is running, spawning it
// when necessary, and waits up to the configured readiness timeout for
// its readiness marker. A timeout is not an error: the caller proceeds
// and the upstream request surfaces any real failure.
func (s *Supervisor) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateReady:
		s.mu.Unlock()
		return nil
	case StateStopped:
		if err := s.startLocked(); err != nil {
			s.mu.Unlock()
			s.logger.Error("failed to start detection service", zap.Error(err))
			// Soft failure: the proxied request will report the outage.
			return nil
		}
	}
	readyCh := s.readyCh
	s.mu.Unlock()

	select {
	case <-readyCh:
		return nil
	case <-time.After(s.cfg.ReadyTimeout):
		s.logger.Warn("detection service not ready before timeout, proceeding",
			zap.Duration("timeout", s.cfg.ReadyTimeout))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start spawns the child process if none is running.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStopped {
		return nil
	}
	return s.startLocked()
}

// Restart kills any live child, waits for the listen port to be
// released, and spawns a fresh process.
func (s *Supervisor) Restart(ctx context.Context) error {
	s.Shutdown()

	select {
	case <-time.After(s.cfg.RestartDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return s.Start()
}

// Shutdown kills any live child process. Safe to call repeatedly.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil && s.cmd.Process != nil {
		s.logger.Info("killing detection service", zap.Int("pid", s.cmd.Process.Pid))
		_ = s.cmd.Process.Kill()
	}
	s.clearLocked()
}

// startLocked spawns the child and its watcher goroutines. Caller must
// hold the mutex.
func (s *Supervisor) startLocked() error {
	parts := strings.Fields(s.cfg.Command)
	if len(parts) == 0 {
		return fmt.Errorf("detector command is empty")
	}

	cmd := exec.Command(parts[0], parts[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to spawn %q: %w", s.cfg.Command, err)
	}

	s.logger.Info("detection service spawned",
		zap.String("command", s.cfg.Command),
		zap.Int("pid", cmd.Process.Pid))

	s.cmd = cmd
	s.state = StateStarting
	s.readyCh = make(chan struct{})

	// Flask-style servers report readiness on stderr, so watch both streams.
	go s.watchOutput(cmd, stdout, "stdout")
	go s.watchOutput(cmd, stderr, "stderr")
	go s.waitForExit(cmd)

	return nil
}

// watchOutput scans one output stream for the readiness marker and logs
// every line.
func (s *Supervisor) watchOutput(cmd *exec.Cmd, pipe io.Reader, stream string) {
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		line := scanner.Text()
		s.logger.Debug("detection service output",
			zap.String("stream", stream),
			zap.String("line", line))

		if strings.Contains(line, s.cfg.ReadyMarker) {
			s.markReady(cmd)
		}
	}
}

// markReady promotes Starting to Ready for the given process handle.
func (s *Supervisor) markReady(cmd *exec.Cmd) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != cmd || s.state != StateStarting {
		return
	}
	s.state = StateReady
	close(s.readyCh)
	s.logger.Info("detection service ready")
}

// waitForExit reaps the child and clears supervisor state when it dies,
// whatever the reason.
func (s *Supervisor) waitForExit(cmd *exec.Cmd) {
	err := cmd.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != cmd {
		return
	}
	if err != nil {
		s.logger.Warn("detection service exited", zap.Error(err))
	} else {
		s.logger.Info("detection service exited")
	}
	s.clearLocked()
}

// clearLocked resets to Stopped. Caller must hold the mutex.
func (s *Supervisor) clearLocked() {
	s.cmd = nil
	s.state = StateStopped
	s.readyCh = nil
}
