package monitoring

import (
	"time"

	"github.com/roadwatch/backend/internal/domain/monitoring"
)

// UserResponse represents a user in API responses. The password hash is
// never included.
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=1"`
	Password string `json:"password" binding:"required,min=1"`
	FullName string `json:"full_name" binding:"required,min=1"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,userrole"`
}

// CameraResponse represents a camera in API responses
type CameraResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	StreamURL *string   `json:"stream_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCameraRequest represents a request to register a camera
type CreateCameraRequest struct {
	Name      string  `json:"name" binding:"required,min=1"`
	Location  string  `json:"location" binding:"required,min=1"`
	Type      string  `json:"type" binding:"required,min=1"`
	StreamURL *string `json:"stream_url"`
	Status    string  `json:"status" binding:"omitempty,camerastatus"`
}

// UpdateCameraStatusRequest represents a request to change a camera's status
type UpdateCameraStatusRequest struct {
	Status string `json:"status" binding:"required,camerastatus"`
}

// DetectionDTO represents a single detected object within an incident
type DetectionDTO struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// IncidentResponse represents an incident in API responses
type IncidentResponse struct {
	ID         int64          `json:"id"`
	CameraID   int64          `json:"camera_id"`
	Timestamp  time.Time      `json:"timestamp"`
	Type       string         `json:"type"`
	Severity   string         `json:"severity"`
	Location   string         `json:"location"`
	Detections []DetectionDTO `json:"detections"`
	ImageURL   *string        `json:"image_url"`
	VideoURL   *string        `json:"video_url"`
	Reviewed   bool           `json:"reviewed"`
	CreatedAt  time.Time      `json:"created_at"`
}

// CreateIncidentRequest represents a request to record a detected incident
type CreateIncidentRequest struct {
	CameraID   int64          `json:"camera_id" binding:"required,gt=0"`
	Timestamp  *time.Time     `json:"timestamp"`
	Type       string         `json:"type" binding:"required,min=1"`
	Severity   string         `json:"severity" binding:"required,severity"`
	Location   string         `json:"location" binding:"required,min=1"`
	Detections []DetectionDTO `json:"detections"`
	ImageURL   *string        `json:"image_url"`
	VideoURL   *string        `json:"video_url"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID         int64      `json:"id"`
	IncidentID int64      `json:"incident_id"`
	Recipient  string     `json:"recipient"`
	Type       string     `json:"type"`
	Sent       bool       `json:"sent"`
	SentAt     *time.Time `json:"sent_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateNotificationRequest represents a request to queue a notification
// for an incident
type CreateNotificationRequest struct {
	IncidentID int64  `json:"incident_id" binding:"required,gt=0"`
	Recipient  string `json:"recipient" binding:"required,min=1"`
	Type       string `json:"type" binding:"required,min=1"`
}

// StorageSummaryDTO represents disk usage figures inside a stats record
type StorageSummaryDTO struct {
	Used       string  `json:"used"`
	Total      string  `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SystemStatResponse represents a system statistics record in API responses
type SystemStatResponse struct {
	ID        int64             `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	CPU       float64           `json:"cpu"`
	Memory    float64           `json:"memory"`
	Storage   StorageSummaryDTO `json:"storage"`
	Network   string            `json:"network"`
	Services  map[string]string `json:"services"`
	CreatedAt time.Time         `json:"created_at"`
}

// RecordSystemStatRequest represents a request to record a stats sample
type RecordSystemStatRequest struct {
	Timestamp *time.Time        `json:"timestamp"`
	CPU       float64           `json:"cpu" binding:"min=0,max=100"`
	Memory    float64           `json:"memory" binding:"min=0,max=100"`
	Storage   StorageSummaryDTO `json:"storage"`
	Network   string            `json:"network"`
	Services  map[string]string `json:"services"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *monitoring.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []*monitoring.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}

// ToCameraResponse converts a domain camera to a response DTO
func ToCameraResponse(c *monitoring.Camera) *CameraResponse {
	return &CameraResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		Type:      c.Type,
		StreamURL: c.StreamURL,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

// ToCameraResponses converts a slice of domain cameras
func ToCameraResponses(cameras []*monitoring.Camera) []*CameraResponse {
	out := make([]*CameraResponse, len(cameras))
	for i, c := range cameras {
		out[i] = ToCameraResponse(c)
	}
	return out
}

func toDetectionDTOs(detections []monitoring.Detection) []DetectionDTO {
	out := make([]DetectionDTO, len(detections))
	for i, d := range detections {
		out[i] = DetectionDTO(d)
	}
	return out
}

func fromDetectionDTOs(detections []DetectionDTO) []monitoring.Detection {
	out := make([]monitoring.Detection, len(detections))
	for i, d := range detections {
		out[i] = monitoring.Detection(d)
	}
	return out
}

// ToIncidentResponse converts a domain incident to a response DTO
func ToIncidentResponse(in *monitoring.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:         in.ID,
		CameraID:   in.CameraID,
		Timestamp:  in.Timestamp,
		Type:       in.Type,
		Severity:   string(in.Severity),
		Location:   in.Location,
		Detections: toDetectionDTOs(in.Detections),
		ImageURL:   in.ImageURL,
		VideoURL:   in.VideoURL,
		Reviewed:   in.Reviewed,
		CreatedAt:  in.CreatedAt,
	}
}

// ToIncidentResponses converts a slice of domain incidents
func ToIncidentResponses(incidents []*monitoring.Incident) []*IncidentResponse {
	out := make([]*IncidentResponse, len(incidents))
	for i, in := range incidents {
		out[i] = ToIncidentResponse(in)
	}
	return out
}

// ToNotificationResponse converts a domain notification to a response DTO
func ToNotificationResponse(n *monitoring.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID,
		IncidentID: n.IncidentID,
		Recipient:  n.Recipient,
		Type:       n.Type,
		Sent:       n.Sent,
		SentAt:     n.SentAt,
		CreatedAt:  n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain notifications
func ToNotificationResponses(notifications []*monitoring.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = ToNotificationResponse(n)
	}
	return out
}

// ToSystemStatResponse converts a domain stats record to a response DTO
func ToSystemStatResponse(s *monitoring.SystemStat) *SystemStatResponse {
	return &SystemStatResponse{
		ID:        s.ID,
		Timestamp: s.Timestamp,
		CPU:       s.CPU,
		Memory:    s.Memory,
		Storage:   StorageSummaryDTO(s.Storage),
		Network:   s.Network,
		Services:  s.Services,
		CreatedAt: s.CreatedAt,
	}
}
