// Package memory provides an in-process implementation of the repository
// ports, used as a test double behind the same interfaces as the MongoDB
// repositories. It is single-process by construction and loses all state on
// restart; it is not a second production path.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// Store holds every collection behind one mutex. Ids are opaque uuids so
// callers cannot come to depend on any particular id format.
type Store struct {
	mu sync.Mutex

	users         map[string]*domain.User
	startups      map[string]*domain.Startup
	interests     map[string]*domain.Interest
	events        map[string]*domain.Event
	feedback      map[string]*domain.PitchFeedback
	notifications map[string]*domain.Notification

	dedup map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]*domain.User),
		startups:      make(map[string]*domain.Startup),
		interests:     make(map[string]*domain.Interest),
		events:        make(map[string]*domain.Event),
		feedback:      make(map[string]*domain.PitchFeedback),
		notifications: make(map[string]*domain.Notification),
		dedup:         make(map[string]struct{}),
	}
}

func newID() string { return uuid.NewString() }

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s} }

// Startups returns the startup repository view of the store.
func (s *Store) Startups() *StartupRepository { return &StartupRepository{s} }

// Interests returns the interest repository view of the store.
func (s *Store) Interests() *InterestRepository { return &InterestRepository{s} }

// Events returns the event repository view of the store.
func (s *Store) Events() *EventRepository { return &EventRepository{s} }

// Feedback returns the AI feedback repository view of the store.
func (s *Store) Feedback() *FeedbackRepository { return &FeedbackRepository{s} }

// Notifications returns the notification repository view of the store.
func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{s} }

// Dedup returns the fan-out dedup view of the store.
func (s *Store) Dedup() *FanoutDedup { return &FanoutDedup{s} }

// FanoutDedup is the in-process counterpart of the Redis fan-out dedup.
type FanoutDedup struct {
	store *Store
}

func (d *FanoutDedup) IsDuplicate(_ context.Context, kind, triggerID string) (bool, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	_, ok := d.store.dedup[kind+":"+triggerID]
	return ok, nil
}

func (d *FanoutDedup) Mark(_ context.Context, kind, triggerID string) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.dedup[kind+":"+triggerID] = struct{}{}
	return nil
}
