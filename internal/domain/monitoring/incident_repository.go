package monitoring

import "context"

// IncidentRepository defines persistence operations for incidents.
// FindAll returns incidents newest-first by detection timestamp.
type IncidentRepository interface {
	FindByID(ctx context.Context, id int64) (*Incident, error)
	FindAll(ctx context.Context) ([]*Incident, error)
	FindByCameraID(ctx context.Context, cameraID int64) ([]*Incident, error)
	Save(ctx context.Context, incident *Incident) error
	MarkReviewed(ctx context.Context, id int64) (*Incident, error)
}
