package monitoring

import (
	"time"

	"github.com/roadwatch/backend/internal/domain/shared"
)

// IncidentSeverity represents how serious a detected incident is
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

// Detection is a single labeled bounding region reported by the detection
// service for an incident frame.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Incident represents an accident or hazard detected on a camera feed
type Incident struct {
	shared.BaseEntity
	CameraID   int64            `json:"camera_id"`
	Timestamp  time.Time        `json:"timestamp"`
	Type       string           `json:"type"`
	Severity   IncidentSeverity `json:"severity"`
	Location   string           `json:"location"`
	Detections []Detection      `json:"detections"`
	ImageURL   *string          `json:"image_url"`
	VideoURL   *string          `json:"video_url"`
	Reviewed   bool             `json:"reviewed"`
}

// NewIncident creates a new incident for a camera. Incidents always start
// unreviewed; a zero timestamp defaults to the creation time.
func NewIncident(cameraID int64, timestamp time.Time, incidentType string, severity IncidentSeverity, location string, detections []Detection) (*Incident, error) {
	if cameraID <= 0 {
		return nil, shared.NewDomainError("INVALID_CAMERA", "Incident must reference a camera")
	}
	if incidentType == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Incident type cannot be empty")
	}
	if err := ValidateSeverity(severity); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Incident location cannot be empty")
	}

	entity := shared.NewBaseEntity()
	if timestamp.IsZero() {
		timestamp = entity.CreatedAt
	}

	return &Incident{
		BaseEntity: entity,
		CameraID:   cameraID,
		Timestamp:  timestamp,
		Type:       incidentType,
		Severity:   severity,
		Location:   location,
		Detections: detections,
		Reviewed:   false,
	}, nil
}

// MarkReviewed acknowledges the incident. The transition is one-way and
// idempotent: reviewing an already-reviewed incident is a no-op.
func (i *Incident) MarkReviewed() {
	i.Reviewed = true
}

// SetMedia attaches snapshot and clip URLs produced by the detection service
func (i *Incident) SetMedia(imageURL, videoURL *string) {
	i.ImageURL = imageURL
	i.VideoURL = videoURL
}

// ValidateSeverity reports whether the severity is one of the enumerated set
func ValidateSeverity(severity IncidentSeverity) error {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return shared.NewDomainError("INVALID_SEVERITY", "Severity must be one of: low, medium, high, critical")
	}
}
