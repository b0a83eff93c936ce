package monitoring

import "context"

// SystemStatRepository defines persistence operations for system stats.
// FindLatest returns the record with the maximum timestamp, or
// shared.ErrNotFound when no observation exists yet.
type SystemStatRepository interface {
	FindLatest(ctx context.Context) (*SystemStat, error)
	Save(ctx context.Context, stat *SystemStat) error
}
