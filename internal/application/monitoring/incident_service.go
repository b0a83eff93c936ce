package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// IncidentService handles detected incident records
type IncidentService struct {
	incidentRepo monitoring.IncidentRepository
	cameraRepo   monitoring.CameraRepository
	logger       *zap.Logger
}

// NewIncidentService creates a new IncidentService
func NewIncidentService(incidentRepo monitoring.IncidentRepository, cameraRepo monitoring.CameraRepository, logger *zap.Logger) *IncidentService {
	return &IncidentService{
		incidentRepo: incidentRepo,
		cameraRepo:   cameraRepo,
		logger:       logger,
	}
}

// Create records a new incident. The referenced camera must exist.
func (s *IncidentService) Create(ctx context.Context, req CreateIncidentRequest) (*IncidentResponse, error) {
	if _, err := s.cameraRepo.FindByID(ctx, req.CameraID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Camera not found")
		}
		return nil, err
	}

	var timestamp time.Time
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	incident, err := monitoring.NewIncident(
		req.CameraID,
		timestamp,
		req.Type,
		monitoring.IncidentSeverity(req.Severity),
		req.Location,
		fromDetectionDTOs(req.Detections),
	)
	if err != nil {
		return nil, err
	}
	incident.SetMedia(req.ImageURL, req.VideoURL)

	if err := s.incidentRepo.Save(ctx, incident); err != nil {
		return nil, err
	}

	s.logger.Info("incident recorded",
		zap.Int64("incident_id", incident.ID),
		zap.Int64("camera_id", incident.CameraID),
		zap.String("type", incident.Type),
		zap.String("severity", string(incident.Severity)))

	return ToIncidentResponse(incident), nil
}

// GetByID retrieves a single incident
func (s *IncidentService) GetByID(ctx context.Context, id int64) (*IncidentResponse, error) {
	incident, err := s.incidentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToIncidentResponse(incident), nil
}

// List returns every incident, newest first
func (s *IncidentService) List(ctx context.Context) ([]*IncidentResponse, error) {
	incidents, err := s.incidentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToIncidentResponses(incidents), nil
}

// Review marks an incident as reviewed. Reviewing an already reviewed
// incident leaves it unchanged.
func (s *IncidentService) Review(ctx context.Context, id int64) (*IncidentResponse, error) {
	incident, err := s.incidentRepo.MarkReviewed(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("incident reviewed", zap.Int64("incident_id", incident.ID))
	return ToIncidentResponse(incident), nil
}
