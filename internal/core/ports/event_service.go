package ports

import (
	"context"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// CreateEventInput carries the data for a new live pitch event.
type CreateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	Duration    int
	MeetingLink string
}

// EventService defines use-case operations for live pitch events.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	// List returns all events, or only upcoming ones, ascending by date.
	List(ctx context.Context, upcomingOnly bool) ([]*domain.Event, error)
}
