package monitoring

import (
	"context"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*monitoring.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*monitoring.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*monitoring.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*monitoring.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *monitoring.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCameraRepository struct {
	mock.Mock
}

func (m *MockCameraRepository) FindByID(ctx context.Context, id int64) (*monitoring.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Camera), args.Error(1)
}

func (m *MockCameraRepository) FindAll(ctx context.Context) ([]*monitoring.Camera, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*monitoring.Camera), args.Error(1)
}

func (m *MockCameraRepository) Save(ctx context.Context, camera *monitoring.Camera) error {
	args := m.Called(ctx, camera)
	return args.Error(0)
}

func (m *MockCameraRepository) UpdateStatus(ctx context.Context, id int64, status monitoring.CameraStatus) (*monitoring.Camera, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Camera), args.Error(1)
}

type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) FindByID(ctx context.Context, id int64) (*monitoring.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Incident), args.Error(1)
}

func (m *MockIncidentRepository) FindAll(ctx context.Context) ([]*monitoring.Incident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*monitoring.Incident), args.Error(1)
}

func (m *MockIncidentRepository) FindByCameraID(ctx context.Context, cameraID int64) ([]*monitoring.Incident, error) {
	args := m.Called(ctx, cameraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*monitoring.Incident), args.Error(1)
}

func (m *MockIncidentRepository) Save(ctx context.Context, incident *monitoring.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *MockIncidentRepository) MarkReviewed(ctx context.Context, id int64) (*monitoring.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Incident), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByIncidentID(ctx context.Context, incidentID int64) ([]*monitoring.Notification, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*monitoring.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *monitoring.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockSystemStatRepository struct {
	mock.Mock
}

func (m *MockSystemStatRepository) FindLatest(ctx context.Context) (*monitoring.SystemStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.SystemStat), args.Error(1)
}

func (m *MockSystemStatRepository) Save(ctx context.Context, stat *monitoring.SystemStat) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}
