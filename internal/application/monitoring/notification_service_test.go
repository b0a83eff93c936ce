package monitoring

import (
	"context"
	"testing"
	"time"

	domain "github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationService_Create(t *testing.T) {
	t.Run("queues notification for existing incident", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		incidentRepo := new(MockIncidentRepository)
		svc := NewNotificationService(notificationRepo, incidentRepo, zap.NewNop())

		incident, _ := domain.NewIncident(5, time.Now(), "collision", domain.SeverityHigh, "Mile 44", nil)
		incident.ID = 20
		incidentRepo.On("FindByID", mock.Anything, int64(20)).Return(incident, nil)
		notificationRepo.On("Save", mock.Anything, mock.AnythingOfType("*monitoring.Notification")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Notification).ID = 31
		}).Return(nil)

		resp, err := svc.Create(context.Background(), CreateNotificationRequest{
			IncidentID: 20,
			Recipient:  "dispatch@example.com",
			Type:       "email",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(31), resp.ID)
		assert.False(t, resp.Sent)
		assert.Nil(t, resp.SentAt)
	})

	t.Run("fails when incident does not exist", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		incidentRepo := new(MockIncidentRepository)
		svc := NewNotificationService(notificationRepo, incidentRepo, zap.NewNop())

		incidentRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), CreateNotificationRequest{
			IncidentID: 404,
			Recipient:  "dispatch@example.com",
			Type:       "email",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		notificationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_ListByIncident(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	svc := NewNotificationService(notificationRepo, new(MockIncidentRepository), zap.NewNop())

	notification, _ := domain.NewNotification(20, "dispatch@example.com", "email")
	notification.ID = 31
	notificationRepo.On("FindByIncidentID", mock.Anything, int64(20)).Return([]*domain.Notification{notification}, nil)

	resp, err := svc.ListByIncident(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "dispatch@example.com", resp[0].Recipient)
}
