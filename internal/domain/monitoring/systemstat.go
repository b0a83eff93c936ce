package monitoring

import (
	"time"

	"github.com/roadwatch/backend/internal/domain/shared"
)

// StorageSummary describes disk usage at sample time
type StorageSummary struct {
	Used       string  `json:"used"`
	Total      string  `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SystemStat is one observation of host and service health backing the
// dashboard's system status panel. "Latest" always means the record with the
// maximum timestamp.
type SystemStat struct {
	shared.BaseEntity
	Timestamp time.Time         `json:"timestamp"`
	CPU       float64           `json:"cpu"`
	Memory    float64           `json:"memory"`
	Storage   StorageSummary    `json:"storage"`
	Network   string            `json:"network"`
	Services  map[string]string `json:"services"`
}

// NewSystemStat creates a new observation. A zero timestamp defaults to the
// creation time.
func NewSystemStat(timestamp time.Time, cpu, memory float64, storage StorageSummary, network string, services map[string]string) (*SystemStat, error) {
	if cpu < 0 || cpu > 100 {
		return nil, shared.NewDomainError("INVALID_CPU", "CPU percentage must be between 0 and 100")
	}
	if memory < 0 || memory > 100 {
		return nil, shared.NewDomainError("INVALID_MEMORY", "Memory percentage must be between 0 and 100")
	}

	entity := shared.NewBaseEntity()
	if timestamp.IsZero() {
		timestamp = entity.CreatedAt
	}
	if services == nil {
		services = map[string]string{}
	}

	return &SystemStat{
		BaseEntity: entity,
		Timestamp:  timestamp,
		CPU:        cpu,
		Memory:     memory,
		Storage:    storage,
		Network:    network,
		Services:   services,
	}, nil
}
