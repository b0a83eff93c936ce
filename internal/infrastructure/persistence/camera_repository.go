package persistence

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var _ monitoring.CameraRepository = (*GormCameraRepository)(nil)

// GormCameraRepository implements CameraRepository using GORM
type GormCameraRepository struct {
	db *gorm.DB
}

// NewGormCameraRepository creates a new GormCameraRepository
func NewGormCameraRepository(db *gorm.DB) *GormCameraRepository {
	return &GormCameraRepository{db: db}
}

// FindByID finds a camera by its ID
func (r *GormCameraRepository) FindByID(ctx context.Context, id int64) (*monitoring.Camera, error) {
	var model models.CameraModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every camera ordered by ID
func (r *GormCameraRepository) FindAll(ctx context.Context) ([]*monitoring.Camera, error) {
	var cameraModels []models.CameraModel
	if err := r.db.WithContext(ctx).Order("id").Find(&cameraModels).Error; err != nil {
		return nil, err
	}

	cameras := make([]*monitoring.Camera, len(cameraModels))
	for i := range cameraModels {
		cameras[i] = cameraModels[i].ToDomain()
	}
	return cameras, nil
}

// Save persists a camera, assigning its ID on first insert
func (r *GormCameraRepository) Save(ctx context.Context, camera *monitoring.Camera) error {
	var model models.CameraModel
	model.FromDomain(camera)

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	camera.ID = model.ID
	return nil
}

// UpdateStatus changes a camera's status and returns the updated camera
func (r *GormCameraRepository) UpdateStatus(ctx context.Context, id int64, status monitoring.CameraStatus) (*monitoring.Camera, error) {
	var model models.CameraModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		model.Status = string(status)
		return tx.Model(&model).Update("status", model.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}
