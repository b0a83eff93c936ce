package persistence

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var _ monitoring.IncidentRepository = (*GormIncidentRepository)(nil)

// GormIncidentRepository implements IncidentRepository using GORM
type GormIncidentRepository struct {
	db *gorm.DB
}

// NewGormIncidentRepository creates a new GormIncidentRepository
func NewGormIncidentRepository(db *gorm.DB) *GormIncidentRepository {
	return &GormIncidentRepository{db: db}
}

// FindByID finds an incident by its ID
func (r *GormIncidentRepository) FindByID(ctx context.Context, id int64) (*monitoring.Incident, error) {
	var model models.IncidentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll returns every incident, newest first
func (r *GormIncidentRepository) FindAll(ctx context.Context) ([]*monitoring.Incident, error) {
	var incidentModels []models.IncidentModel
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&incidentModels).Error; err != nil {
		return nil, err
	}
	return toIncidents(incidentModels)
}

// FindByCameraID returns the incidents recorded for one camera, newest first
func (r *GormIncidentRepository) FindByCameraID(ctx context.Context, cameraID int64) ([]*monitoring.Incident, error) {
	var incidentModels []models.IncidentModel
	if err := r.db.WithContext(ctx).
		Where("camera_id = ?", cameraID).
		Order("timestamp DESC").
		Find(&incidentModels).Error; err != nil {
		return nil, err
	}
	return toIncidents(incidentModels)
}

// Save persists an incident, assigning its ID on first insert
func (r *GormIncidentRepository) Save(ctx context.Context, incident *monitoring.Incident) error {
	var model models.IncidentModel
	if err := model.FromDomain(incident); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	incident.ID = model.ID
	return nil
}

// MarkReviewed flags an incident as reviewed and returns the updated incident
func (r *GormIncidentRepository) MarkReviewed(ctx context.Context, id int64) (*monitoring.Incident, error) {
	var model models.IncidentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if model.Reviewed {
			return nil
		}
		model.Reviewed = true
		return tx.Model(&model).Update("reviewed", true).Error
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain()
}

func toIncidents(incidentModels []models.IncidentModel) ([]*monitoring.Incident, error) {
	incidents := make([]*monitoring.Incident, len(incidentModels))
	for i := range incidentModels {
		incident, err := incidentModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		incidents[i] = incident
	}
	return incidents, nil
}
