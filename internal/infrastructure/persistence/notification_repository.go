package persistence

import (
	"context"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var _ monitoring.NotificationRepository = (*GormNotificationRepository)(nil)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByIncidentID returns the notifications recorded for one incident
func (r *GormNotificationRepository) FindByIncidentID(ctx context.Context, incidentID int64) ([]*monitoring.Notification, error) {
	var notificationModels []models.NotificationModel
	if err := r.db.WithContext(ctx).
		Where("incident_id = ?", incidentID).
		Order("id").
		Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*monitoring.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToDomain()
	}
	return notifications, nil
}

// Save persists a notification, assigning its ID on first insert
func (r *GormNotificationRepository) Save(ctx context.Context, notification *monitoring.Notification) error {
	var model models.NotificationModel
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	notification.ID = model.ID
	return nil
}
