package monitoring

import "context"

// NotificationRepository defines persistence operations for notifications
type NotificationRepository interface {
	FindByIncidentID(ctx context.Context, incidentID int64) ([]*Notification, error)
	Save(ctx context.Context, notification *Notification) error
}
