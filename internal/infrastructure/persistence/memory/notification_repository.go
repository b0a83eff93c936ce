package memory

import (
	"context"
	"sort"

	"github.com/roadwatch/backend/internal/domain/monitoring"
)

var _ monitoring.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository is an in-memory NotificationRepository
type NotificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a new in-memory NotificationRepository
func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// FindByIncidentID returns the notifications recorded for one incident
func (r *NotificationRepository) FindByIncidentID(ctx context.Context, incidentID int64) ([]*monitoring.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notifications := make([]*monitoring.Notification, 0)
	for id := range r.store.notifications {
		notification := r.store.notifications[id]
		if notification.IncidentID != incidentID {
			continue
		}
		notifications = append(notifications, &notification)
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })
	return notifications, nil
}

// Save persists a notification, assigning the next serial ID on first insert
func (r *NotificationRepository) Save(ctx context.Context, notification *monitoring.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if notification.ID == 0 {
		r.store.nextNotificationID++
		notification.ID = r.store.nextNotificationID
	}
	r.store.notifications[notification.ID] = *notification
	return nil
}
