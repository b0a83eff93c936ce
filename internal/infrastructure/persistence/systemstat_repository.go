package persistence

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var _ monitoring.SystemStatRepository = (*GormSystemStatRepository)(nil)

// GormSystemStatRepository implements SystemStatRepository using GORM
type GormSystemStatRepository struct {
	db *gorm.DB
}

// NewGormSystemStatRepository creates a new GormSystemStatRepository
func NewGormSystemStatRepository(db *gorm.DB) *GormSystemStatRepository {
	return &GormSystemStatRepository{db: db}
}

// FindLatest returns the most recent stats record
func (r *GormSystemStatRepository) FindLatest(ctx context.Context) (*monitoring.SystemStat, error) {
	var model models.SystemStatModel
	if err := r.db.WithContext(ctx).Order("timestamp DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Save persists a stats record, assigning its ID on first insert
func (r *GormSystemStatRepository) Save(ctx context.Context, stat *monitoring.SystemStat) error {
	var model models.SystemStatModel
	if err := model.FromDomain(stat); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	stat.ID = model.ID
	return nil
}
