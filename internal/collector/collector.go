package collector

import (
	"context"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

// Collector defines the interface for reading site records from the CMS
type Collector interface {
	// GetEvents retrieves every event record, mapped but not yet filtered
	GetEvents(ctx context.Context) ([]domain.Event, error)

	// GetMembers retrieves every team member record
	GetMembers(ctx context.Context) ([]domain.Member, error)
}
