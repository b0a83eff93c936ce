package memory

import (
	"context"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
)

var _ monitoring.SystemStatRepository = (*SystemStatRepository)(nil)

// SystemStatRepository is an in-memory SystemStatRepository
type SystemStatRepository struct {
	store *Store
}

// NewSystemStatRepository creates a new in-memory SystemStatRepository
func NewSystemStatRepository(store *Store) *SystemStatRepository {
	return &SystemStatRepository{store: store}
}

// FindLatest returns the most recent stats record
func (r *SystemStatRepository) FindLatest(ctx context.Context) (*monitoring.SystemStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *monitoring.SystemStat
	for id := range r.store.stats {
		stat := r.store.stats[id]
		if latest == nil ||
			stat.Timestamp.After(latest.Timestamp) ||
			(stat.Timestamp.Equal(latest.Timestamp) && stat.ID > latest.ID) {
			out := cloneStat(stat)
			latest = &out
		}
	}
	if latest == nil {
		return nil, shared.ErrNotFound
	}
	return latest, nil
}

// Save persists a stats record, assigning the next serial ID on first insert
func (r *SystemStatRepository) Save(ctx context.Context, stat *monitoring.SystemStat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if stat.ID == 0 {
		r.store.nextStatID++
		stat.ID = r.store.nextStatID
	}
	r.store.stats[stat.ID] = cloneStat(*stat)
	return nil
}
