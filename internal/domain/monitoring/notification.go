package monitoring

import (
	"time"

	"github.com/roadwatch/backend/internal/domain/shared"
)

// Notification represents an alert dispatched for an incident
type Notification struct {
	shared.BaseEntity
	IncidentID int64      `json:"incident_id"`
	Recipient  string     `json:"recipient"`
	Type       string     `json:"type"`
	Sent       bool       `json:"sent"`
	SentAt     *time.Time `json:"sent_at"`
}

// NewNotification creates a new, not-yet-sent notification for an incident
func NewNotification(incidentID int64, recipient, notificationType string) (*Notification, error) {
	if incidentID <= 0 {
		return nil, shared.NewDomainError("INVALID_INCIDENT", "Notification must reference an incident")
	}
	if recipient == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Notification recipient cannot be empty")
	}
	if notificationType == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Notification type cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		IncidentID: incidentID,
		Recipient:  recipient,
		Type:       notificationType,
		Sent:       false,
	}, nil
}

// MarkSent records the delivery. SentAt is stamped only on the first
// transition; re-sending an already-sent notification is a no-op.
func (n *Notification) MarkSent() {
	if n.Sent {
		return
	}
	now := time.Now()
	n.Sent = true
	n.SentAt = &now
}
