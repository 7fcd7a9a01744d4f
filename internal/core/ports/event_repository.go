package ports

import (
	"context"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// EventRepository defines persistence for live pitch events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns events sorted ascending by event date. When after is
	// non-zero only events strictly later than it are returned.
	List(ctx context.Context, after time.Time) ([]*domain.Event, error)
}
