package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/memory"
)

func TestEventService_ListOrderingAndUpcoming(t *testing.T) {
	store := memory.NewStore()
	svc := NewEventService(store.Events(), zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	dates := []time.Time{
		now.Add(48 * time.Hour),
		now.Add(-24 * time.Hour),
		now.Add(2 * time.Hour),
	}
	for i, d := range dates {
		if _, err := svc.Create(ctx, ports.CreateEventInput{
			Title:     "Demo Day " + string(rune('A'+i)),
			EventDate: d,
			Duration:  60,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].EventDate.Before(all[i-1].EventDate) {
			t.Fatalf("events not in ascending date order")
		}
	}

	upcoming, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(upcoming))
	}
	for _, e := range upcoming {
		if !e.EventDate.After(now) {
			t.Fatalf("past event %q in upcoming list", e.Title)
		}
	}
}

func TestEventService_CreateNormalizesToUTC(t *testing.T) {
	store := memory.NewStore()
	svc := NewEventService(store.Events(), zerolog.Nop())

	loc := time.FixedZone("UTC+5", 5*3600)
	created, err := svc.Create(context.Background(), ports.CreateEventInput{
		Title:     "Pitch Night",
		EventDate: time.Date(2026, 10, 1, 18, 0, 0, 0, loc),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.EventDate.Location() != time.UTC {
		t.Fatalf("expected UTC event date, got %v", created.EventDate.Location())
	}
}
