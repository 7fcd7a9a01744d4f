package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// EventService implements use cases for live pitch events. Events are
// platform-curated: created by the admin flow, read-only to everyone else.
type EventService struct {
	events ports.EventRepository
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, log: log}
}

func (s *EventService) Create(ctx context.Context, input ports.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate.UTC(),
		Duration:    input.Duration,
		MeetingLink: input.MeetingLink,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().Str("event_id", created.ID).Time("event_date", created.EventDate).Msg("event created")
	return created, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

// List returns events ascending by date. Upcoming filtering is derived from
// the clock at query time, never from a stored flag.
func (s *EventService) List(ctx context.Context, upcomingOnly bool) ([]*domain.Event, error) {
	var after time.Time
	if upcomingOnly {
		after = time.Now().UTC()
	}
	return s.events.List(ctx, after)
}
