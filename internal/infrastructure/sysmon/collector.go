// Package sysmon periodically samples host metrics and records them as
// system statistics so the dashboard has data even when the external
// detection service is down.
package sysmon

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
	"go.uber.org/zap"
)

// Sample is one host metrics snapshot.
type Sample struct {
	CPU         float64
	Memory      float64
	StorageUsed uint64
	StorageAll  uint64
	StoragePct  float64
}

// SampleFunc produces a Sample. The default implementation reads the
// host via gopsutil; tests inject their own.
type SampleFunc func(ctx context.Context) (Sample, error)

// Collector runs a sampling loop that persists system statistics.
type Collector struct {
	stats    *appmonitoring.SystemStatService
	interval time.Duration
	sample   SampleFunc
	logger   *zap.Logger
}

// NewCollector creates a Collector using the host sampler.
func NewCollector(stats *appmonitoring.SystemStatService, interval time.Duration, logger *zap.Logger) *Collector {
	return &Collector{
		stats:    stats,
		interval: interval,
		sample:   hostSample,
		logger:   logger.Named("sysmon"),
	}
}

// WithSampleFunc replaces the sampler. For tests.
func (c *Collector) WithSampleFunc(fn SampleFunc) *Collector {
	c.sample = fn
	return c
}

// Run samples on the configured interval until the context is cancelled.
// An initial sample is taken immediately.
func (c *Collector) Run(ctx context.Context) {
	c.collect(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// collect takes one sample and persists it. Failures are logged, never fatal.
func (c *Collector) collect(ctx context.Context) {
	sample, err := c.sample(ctx)
	if err != nil {
		c.logger.Warn("failed to sample host metrics", zap.Error(err))
		return
	}

	_, err = c.stats.Record(ctx, appmonitoring.RecordSystemStatRequest{
		CPU:    sample.CPU,
		Memory: sample.Memory,
		Storage: appmonitoring.StorageSummaryDTO{
			Used:       formatBytes(sample.StorageUsed),
			Total:      formatBytes(sample.StorageAll),
			Percentage: sample.StoragePct,
		},
		Services: map[string]string{"backend": "running"},
	})
	if err != nil {
		c.logger.Warn("failed to record system stats", zap.Error(err))
	}
}

// hostSample reads cpu, memory and root filesystem usage from the host.
func hostSample(ctx context.Context) (Sample, error) {
	percentages, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Sample{}, fmt.Errorf("cpu sample: %w", err)
	}
	var cpuPct float64
	if len(percentages) > 0 {
		cpuPct = percentages[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("memory sample: %w", err)
	}

	usage, err := disk.UsageWithContext(ctx, "/")
	if err != nil {
		return Sample{}, fmt.Errorf("disk sample: %w", err)
	}

	return Sample{
		CPU:         cpuPct,
		Memory:      vm.UsedPercent,
		StorageUsed: usage.Used,
		StorageAll:  usage.Total,
		StoragePct:  usage.UsedPercent,
	}, nil
}

// formatBytes renders a byte count in binary units, e.g. "1.5 GB".
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
