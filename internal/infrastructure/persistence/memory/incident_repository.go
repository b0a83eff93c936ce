package memory

import (
	"context"
	"sort"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
)

var _ monitoring.IncidentRepository = (*IncidentRepository)(nil)

// IncidentRepository is an in-memory IncidentRepository
type IncidentRepository struct {
	store *Store
}

// NewIncidentRepository creates a new in-memory IncidentRepository
func NewIncidentRepository(store *Store) *IncidentRepository {
	return &IncidentRepository{store: store}
}

// FindByID finds an incident by its ID
func (r *IncidentRepository) FindByID(ctx context.Context, id int64) (*monitoring.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	incident, ok := r.store.incidents[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	out := cloneIncident(incident)
	return &out, nil
}

// FindAll returns every incident, newest first
func (r *IncidentRepository) FindAll(ctx context.Context) ([]*monitoring.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(monitoring.Incident) bool { return true }), nil
}

// FindByCameraID returns the incidents recorded for one camera, newest first
func (r *IncidentRepository) FindByCameraID(ctx context.Context, cameraID int64) ([]*monitoring.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(in monitoring.Incident) bool { return in.CameraID == cameraID }), nil
}

// Save persists an incident, assigning the next serial ID on first insert
func (r *IncidentRepository) Save(ctx context.Context, incident *monitoring.Incident) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if incident.ID == 0 {
		r.store.nextIncidentID++
		incident.ID = r.store.nextIncidentID
	}
	r.store.incidents[incident.ID] = cloneIncident(*incident)
	return nil
}

// MarkReviewed flags an incident as reviewed and returns the updated incident
func (r *IncidentRepository) MarkReviewed(ctx context.Context, id int64) (*monitoring.Incident, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	incident, ok := r.store.incidents[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	incident.Reviewed = true
	r.store.incidents[id] = incident
	out := cloneIncident(incident)
	return &out, nil
}

// collect returns matching incidents sorted newest first. Incidents with
// equal timestamps fall back to descending ID order. Caller must hold
// the store lock.
func (r *IncidentRepository) collect(match func(monitoring.Incident) bool) []*monitoring.Incident {
	incidents := make([]*monitoring.Incident, 0, len(r.store.incidents))
	for id := range r.store.incidents {
		incident := r.store.incidents[id]
		if !match(incident) {
			continue
		}
		out := cloneIncident(incident)
		incidents = append(incidents, &out)
	}
	sort.Slice(incidents, func(i, j int) bool {
		if !incidents[i].Timestamp.Equal(incidents[j].Timestamp) {
			return incidents[i].Timestamp.After(incidents[j].Timestamp)
		}
		return incidents[i].ID > incidents[j].ID
	})
	return incidents
}
