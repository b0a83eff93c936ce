package monitoring

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NotificationService handles incident notification records
type NotificationService struct {
	notificationRepo monitoring.NotificationRepository
	incidentRepo     monitoring.IncidentRepository
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo monitoring.NotificationRepository, incidentRepo monitoring.IncidentRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		incidentRepo:     incidentRepo,
		logger:           logger,
	}
}

// Create queues a notification for an incident. The referenced incident
// must exist.
func (s *NotificationService) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	if _, err := s.incidentRepo.FindByID(ctx, req.IncidentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Incident not found")
		}
		return nil, err
	}

	notification, err := monitoring.NewNotification(req.IncidentID, req.Recipient, req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		return nil, err
	}

	s.logger.Info("notification queued",
		zap.Int64("notification_id", notification.ID),
		zap.Int64("incident_id", notification.IncidentID),
		zap.String("type", notification.Type))

	return ToNotificationResponse(notification), nil
}

// ListByIncident returns the notifications recorded for one incident
func (s *NotificationService) ListByIncident(ctx context.Context, incidentID int64) ([]*NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByIncidentID(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(notifications), nil
}
