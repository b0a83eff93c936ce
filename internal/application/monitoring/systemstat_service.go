package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SystemStatService handles system statistics records
type SystemStatService struct {
	statRepo monitoring.SystemStatRepository
	logger   *zap.Logger
}

// NewSystemStatService creates a new SystemStatService
func NewSystemStatService(statRepo monitoring.SystemStatRepository, logger *zap.Logger) *SystemStatService {
	return &SystemStatService{
		statRepo: statRepo,
		logger:   logger,
	}
}

// Record stores a new stats sample
func (s *SystemStatService) Record(ctx context.Context, req RecordSystemStatRequest) (*SystemStatResponse, error) {
	var timestamp time.Time
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	stat, err := monitoring.NewSystemStat(
		timestamp,
		req.CPU,
		req.Memory,
		monitoring.StorageSummary(req.Storage),
		req.Network,
		req.Services,
	)
	if err != nil {
		return nil, err
	}

	if err := s.statRepo.Save(ctx, stat); err != nil {
		return nil, err
	}

	s.logger.Debug("system stats recorded",
		zap.Int64("stat_id", stat.ID),
		zap.Float64("cpu", stat.CPU),
		zap.Float64("memory", stat.Memory))

	return ToSystemStatResponse(stat), nil
}

// Latest returns the most recent stats record, or nil when none have
// been recorded yet.
func (s *SystemStatService) Latest(ctx context.Context) (*SystemStatResponse, error) {
	stat, err := s.statRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToSystemStatResponse(stat), nil
}
