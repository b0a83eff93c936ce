package monitoring

import (
	"context"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"go.uber.org/zap"
)

// CameraService handles camera registration and status tracking
type CameraService struct {
	cameraRepo   monitoring.CameraRepository
	incidentRepo monitoring.IncidentRepository
	logger       *zap.Logger
}

// NewCameraService creates a new CameraService
func NewCameraService(cameraRepo monitoring.CameraRepository, incidentRepo monitoring.IncidentRepository, logger *zap.Logger) *CameraService {
	return &CameraService{
		cameraRepo:   cameraRepo,
		incidentRepo: incidentRepo,
		logger:       logger,
	}
}

// Create registers a new camera. Status defaults to offline when the
// request leaves it empty.
func (s *CameraService) Create(ctx context.Context, req CreateCameraRequest) (*CameraResponse, error) {
	camera, err := monitoring.NewCamera(req.Name, req.Location, req.Type, req.StreamURL)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		if err := camera.ChangeStatus(monitoring.CameraStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.cameraRepo.Save(ctx, camera); err != nil {
		return nil, err
	}

	s.logger.Info("camera registered",
		zap.Int64("camera_id", camera.ID),
		zap.String("name", camera.Name),
		zap.String("location", camera.Location))

	return ToCameraResponse(camera), nil
}

// GetByID retrieves a single camera
func (s *CameraService) GetByID(ctx context.Context, id int64) (*CameraResponse, error) {
	camera, err := s.cameraRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCameraResponse(camera), nil
}

// List returns every registered camera
func (s *CameraService) List(ctx context.Context) ([]*CameraResponse, error) {
	cameras, err := s.cameraRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCameraResponses(cameras), nil
}

// UpdateStatus changes a camera's operational status
func (s *CameraService) UpdateStatus(ctx context.Context, id int64, req UpdateCameraStatusRequest) (*CameraResponse, error) {
	status := monitoring.CameraStatus(req.Status)
	if err := monitoring.ValidateCameraStatus(status); err != nil {
		return nil, err
	}

	camera, err := s.cameraRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("camera status changed",
		zap.Int64("camera_id", camera.ID),
		zap.String("status", string(camera.Status)))

	return ToCameraResponse(camera), nil
}

// ListIncidents returns the incidents recorded for one camera,
// newest first
func (s *CameraService) ListIncidents(ctx context.Context, cameraID int64) ([]*IncidentResponse, error) {
	if _, err := s.cameraRepo.FindByID(ctx, cameraID); err != nil {
		return nil, err
	}

	incidents, err := s.incidentRepo.FindByCameraID(ctx, cameraID)
	if err != nil {
		return nil, err
	}
	return ToIncidentResponses(incidents), nil
}
