// Package memory provides in-memory repository implementations backed by
// maps and serial counters. It serves development and test setups where
// no database is available; contents are lost on restart.
package memory

import (
	"sync"

	"github.com/roadwatch/backend/internal/domain/monitoring"
)

// Store holds all in-memory collections behind a single lock.
type Store struct {
	mu sync.RWMutex

	users         map[int64]monitoring.User
	cameras       map[int64]monitoring.Camera
	incidents     map[int64]monitoring.Incident
	notifications map[int64]monitoring.Notification
	stats         map[int64]monitoring.SystemStat

	nextUserID         int64
	nextCameraID       int64
	nextIncidentID     int64
	nextNotificationID int64
	nextStatID         int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:         make(map[int64]monitoring.User),
		cameras:       make(map[int64]monitoring.Camera),
		incidents:     make(map[int64]monitoring.Incident),
		notifications: make(map[int64]monitoring.Notification),
		stats:         make(map[int64]monitoring.SystemStat),
	}
}

// cloneIncident deep-copies an incident so callers cannot alias the
// stored detections slice.
func cloneIncident(in monitoring.Incident) monitoring.Incident {
	out := in
	if in.Detections != nil {
		out.Detections = make([]monitoring.Detection, len(in.Detections))
		copy(out.Detections, in.Detections)
	}
	return out
}

// cloneStat deep-copies a stats record so callers cannot alias the
// stored services map.
func cloneStat(s monitoring.SystemStat) monitoring.SystemStat {
	out := s
	if s.Services != nil {
		out.Services = make(map[string]string, len(s.Services))
		for k, v := range s.Services {
			out.Services[k] = v
		}
	}
	return out
}
