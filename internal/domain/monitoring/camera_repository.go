package monitoring

import "context"

// CameraRepository defines persistence operations for cameras
type CameraRepository interface {
	FindByID(ctx context.Context, id int64) (*Camera, error)
	FindAll(ctx context.Context) ([]*Camera, error)
	Save(ctx context.Context, camera *Camera) error
	UpdateStatus(ctx context.Context, id int64, status CameraStatus) (*Camera, error)
}
