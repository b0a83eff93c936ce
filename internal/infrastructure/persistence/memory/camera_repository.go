package memory

import (
	"context"
	"sort"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
)

var _ monitoring.CameraRepository = (*CameraRepository)(nil)

// CameraRepository is an in-memory CameraRepository
type CameraRepository struct {
	store *Store
}

// NewCameraRepository creates a new in-memory CameraRepository
func NewCameraRepository(store *Store) *CameraRepository {
	return &CameraRepository{store: store}
}

// FindByID finds a camera by its ID
func (r *CameraRepository) FindByID(ctx context.Context, id int64) (*monitoring.Camera, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	camera, ok := r.store.cameras[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &camera, nil
}

// FindAll returns every camera ordered by ID
func (r *CameraRepository) FindAll(ctx context.Context) ([]*monitoring.Camera, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cameras := make([]*monitoring.Camera, 0, len(r.store.cameras))
	for id := range r.store.cameras {
		camera := r.store.cameras[id]
		cameras = append(cameras, &camera)
	}
	sort.Slice(cameras, func(i, j int) bool { return cameras[i].ID < cameras[j].ID })
	return cameras, nil
}

// Save persists a camera, assigning the next serial ID on first insert
func (r *CameraRepository) Save(ctx context.Context, camera *monitoring.Camera) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if camera.ID == 0 {
		r.store.nextCameraID++
		camera.ID = r.store.nextCameraID
	}
	r.store.cameras[camera.ID] = *camera
	return nil
}

// UpdateStatus changes a camera's status and returns the updated camera
func (r *CameraRepository) UpdateStatus(ctx context.Context, id int64, status monitoring.CameraStatus) (*monitoring.Camera, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	camera, ok := r.store.cameras[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	camera.Status = status
	r.store.cameras[id] = camera
	return &camera, nil
}
