package monitoring

import (
	"strings"

	"github.com/roadwatch/backend/internal/domain/shared"
)

// CameraStatus represents the monitoring state of a camera
type CameraStatus string

const (
	CameraStatusOffline    CameraStatus = "offline"
	CameraStatusMonitoring CameraStatus = "monitoring"
	CameraStatusWarning    CameraStatus = "warning"
	CameraStatusIncident   CameraStatus = "incident"
)

// Camera represents a monitored traffic camera
type Camera struct {
	shared.BaseEntity
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	Type      string       `json:"type"`
	StreamURL *string      `json:"stream_url"`
	Status    CameraStatus `json:"status"`
}

// NewCamera creates a new camera. Cameras always start offline; the detection
// pipeline moves them to monitoring once a feed is attached.
func NewCamera(name, location, cameraType string, streamURL *string) (*Camera, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Camera name cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Camera location cannot be empty")
	}
	if strings.TrimSpace(cameraType) == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Camera type cannot be empty")
	}

	return &Camera{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Location:   location,
		Type:       cameraType,
		StreamURL:  streamURL,
		Status:     CameraStatusOffline,
	}, nil
}

// ChangeStatus moves the camera to a new status
func (c *Camera) ChangeStatus(status CameraStatus) error {
	if err := ValidateCameraStatus(status); err != nil {
		return err
	}
	c.Status = status
	return nil
}

// ValidateCameraStatus reports whether the status is one of the enumerated set
func ValidateCameraStatus(status CameraStatus) error {
	switch status {
	case CameraStatusOffline, CameraStatusMonitoring, CameraStatusWarning, CameraStatusIncident:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: offline, monitoring, warning, incident")
	}
}
