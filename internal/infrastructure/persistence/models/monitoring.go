package models

import (
	"encoding/json"
	"time"

	"github.com/roadwatch/backend/internal/domain/monitoring"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username  string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Password  string     `gorm:"type:varchar(200);not null"`
	FullName  string     `gorm:"type:varchar(200);not null"`
	Email     string     `gorm:"type:varchar(200)"`
	Role      string     `gorm:"type:varchar(20);not null;default:'viewer'"`
	LastLogin *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *monitoring.User {
	return &monitoring.User{
		BaseEntity: m.BaseModel.ToDomain(),
		Username:   m.Username,
		Password:   m.Password,
		FullName:   m.FullName,
		Email:      m.Email,
		Role:       monitoring.UserRole(m.Role),
		LastLogin:  m.LastLogin,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *monitoring.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.Password = u.Password
	m.FullName = u.FullName
	m.Email = u.Email
	m.Role = string(u.Role)
	m.LastLogin = u.LastLogin
}

// CameraModel is the persistence model for the Camera domain entity.
type CameraModel struct {
	BaseModel
	Name      string  `gorm:"type:varchar(200);not null"`
	Location  string  `gorm:"type:varchar(200);not null"`
	Type      string  `gorm:"type:varchar(50);not null"`
	StreamURL *string `gorm:"type:varchar(500)"`
	Status    string  `gorm:"type:varchar(20);not null;default:'offline'"`
}

// TableName returns the table name for GORM
func (CameraModel) TableName() string {
	return "cameras"
}

// ToDomain converts the persistence model to a domain Camera entity.
func (m *CameraModel) ToDomain() *monitoring.Camera {
	return &monitoring.Camera{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Location:   m.Location,
		Type:       m.Type,
		StreamURL:  m.StreamURL,
		Status:     monitoring.CameraStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Camera entity.
func (m *CameraModel) FromDomain(c *monitoring.Camera) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Location = c.Location
	m.Type = c.Type
	m.StreamURL = c.StreamURL
	m.Status = string(c.Status)
}

// IncidentModel is the persistence model for the Incident domain entity.
// Detections are stored as a JSON document.
type IncidentModel struct {
	BaseModel
	CameraID   int64     `gorm:"not null;index"`
	Timestamp  time.Time `gorm:"not null;index"`
	Type       string    `gorm:"type:varchar(100);not null"`
	Severity   string    `gorm:"type:varchar(20);not null"`
	Location   string    `gorm:"type:varchar(200);not null"`
	Detections string    `gorm:"type:jsonb;default:'[]'"`
	ImageURL   *string   `gorm:"type:varchar(500)"`
	VideoURL   *string   `gorm:"type:varchar(500)"`
	Reviewed   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (IncidentModel) TableName() string {
	return "incidents"
}

// ToDomain converts the persistence model to a domain Incident entity.
func (m *IncidentModel) ToDomain() (*monitoring.Incident, error) {
	var detections []monitoring.Detection
	if m.Detections != "" {
		if err := json.Unmarshal([]byte(m.Detections), &detections); err != nil {
			return nil, err
		}
	}

	return &monitoring.Incident{
		BaseEntity: m.BaseModel.ToDomain(),
		CameraID:   m.CameraID,
		Timestamp:  m.Timestamp,
		Type:       m.Type,
		Severity:   monitoring.IncidentSeverity(m.Severity),
		Location:   m.Location,
		Detections: detections,
		ImageURL:   m.ImageURL,
		VideoURL:   m.VideoURL,
		Reviewed:   m.Reviewed,
	}, nil
}

// FromDomain populates the persistence model from a domain Incident entity.
func (m *IncidentModel) FromDomain(in *monitoring.Incident) error {
	detections := in.Detections
	if detections == nil {
		detections = []monitoring.Detection{}
	}
	raw, err := json.Marshal(detections)
	if err != nil {
		return err
	}

	m.FromDomainBaseEntity(in.BaseEntity)
	m.CameraID = in.CameraID
	m.Timestamp = in.Timestamp
	m.Type = in.Type
	m.Severity = string(in.Severity)
	m.Location = in.Location
	m.Detections = string(raw)
	m.ImageURL = in.ImageURL
	m.VideoURL = in.VideoURL
	m.Reviewed = in.Reviewed
	return nil
}

// NotificationModel is the persistence model for the Notification domain entity.
type NotificationModel struct {
	BaseModel
	IncidentID int64      `gorm:"not null;index"`
	Recipient  string     `gorm:"type:varchar(200);not null"`
	Type       string     `gorm:"type:varchar(50);not null"`
	Sent       bool       `gorm:"not null;default:false"`
	SentAt     *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *monitoring.Notification {
	return &monitoring.Notification{
		BaseEntity: m.BaseModel.ToDomain(),
		IncidentID: m.IncidentID,
		Recipient:  m.Recipient,
		Type:       m.Type,
		Sent:       m.Sent,
		SentAt:     m.SentAt,
	}
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *monitoring.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.IncidentID = n.IncidentID
	m.Recipient = n.Recipient
	m.Type = n.Type
	m.Sent = n.Sent
	m.SentAt = n.SentAt
}

// SystemStatModel is the persistence model for the SystemStat domain entity.
// Storage and Services are stored as JSON documents.
type SystemStatModel struct {
	BaseModel
	Timestamp time.Time `gorm:"not null;index"`
	CPU       float64   `gorm:"not null"`
	Memory    float64   `gorm:"not null"`
	Storage   string    `gorm:"type:jsonb;default:'{}'"`
	Network   string    `gorm:"type:varchar(100)"`
	Services  string    `gorm:"type:jsonb;default:'{}'"`
}

// TableName returns the table name for GORM
func (SystemStatModel) TableName() string {
	return "system_stats"
}

// ToDomain converts the persistence model to a domain SystemStat entity.
func (m *SystemStatModel) ToDomain() (*monitoring.SystemStat, error) {
	var storage monitoring.StorageSummary
	if m.Storage != "" {
		if err := json.Unmarshal([]byte(m.Storage), &storage); err != nil {
			return nil, err
		}
	}
	services := map[string]string{}
	if m.Services != "" {
		if err := json.Unmarshal([]byte(m.Services), &services); err != nil {
			return nil, err
		}
	}

	return &monitoring.SystemStat{
		BaseEntity: m.BaseModel.ToDomain(),
		Timestamp:  m.Timestamp,
		CPU:        m.CPU,
		Memory:     m.Memory,
		Storage:    storage,
		Network:    m.Network,
		Services:   services,
	}, nil
}

// FromDomain populates the persistence model from a domain SystemStat entity.
func (m *SystemStatModel) FromDomain(s *monitoring.SystemStat) error {
	storage, err := json.Marshal(s.Storage)
	if err != nil {
		return err
	}
	services := s.Services
	if services == nil {
		services = map[string]string{}
	}
	rawServices, err := json.Marshal(services)
	if err != nil {
		return err
	}

	m.FromDomainBaseEntity(s.BaseEntity)
	m.Timestamp = s.Timestamp
	m.CPU = s.CPU
	m.Memory = s.Memory
	m.Storage = string(storage)
	m.Network = s.Network
	m.Services = string(rawServices)
	return nil
}
