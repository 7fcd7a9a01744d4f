package memory

import (
	"context"
	"sort"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository over the shared store.
type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = newID()
	r.store.users[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if update.Email != nil && *update.Email != u.Email {
		for _, other := range r.store.users {
			if other.ID != id && other.Email == *update.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *update.Email
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	if update.ProfileImage != nil {
		u.ProfileImage = *update.ProfileImage
	}
	if update.Interests != nil {
		u.Interests = *update.Interests
	}
	if update.Expertise != nil {
		u.Expertise = *update.Expertise
	}

	clone := *u
	return &clone, nil
}

// StartupRepository implements ports.StartupRepository over the shared store.
type StartupRepository struct {
	store *Store
}

func (r *StartupRepository) Create(_ context.Context, s *domain.Startup) (*domain.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *s
	stored.ID = newID()
	r.store.startups[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *StartupRepository) GetByID(_ context.Context, id string) (*domain.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.startups[id]
	if !ok {
		return nil, domain.ErrStartupNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *StartupRepository) List(_ context.Context, filter ports.StartupFilter) ([]*domain.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched := make([]*domain.Startup, 0)
	for _, s := range r.store.startups {
		if matchesFilter(s, filter) {
			clone := *s
			matched = append(matched, &clone)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func (r *StartupRepository) ListByOwner(_ context.Context, userID string) ([]*domain.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	owned := make([]*domain.Startup, 0)
	for _, s := range r.store.startups {
		if s.UserID == userID {
			clone := *s
			owned = append(owned, &clone)
		}
	}
	sortNewestFirst(owned)
	return owned, nil
}

func (r *StartupRepository) Update(_ context.Context, id string, update ports.StartupUpdate) (*domain.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.startups[id]
	if !ok {
		return nil, domain.ErrStartupNotFound
	}

	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Tagline != nil {
		s.Tagline = *update.Tagline
	}
	if update.Description != nil {
		s.Description = *update.Description
	}
	if update.Industry != nil {
		s.Industry = *update.Industry
	}
	if update.FundingMin != nil {
		s.FundingMin = *update.FundingMin
	}
	if update.FundingMax != nil {
		s.FundingMax = *update.FundingMax
	}
	if update.FundingStage != nil {
		s.FundingStage = *update.FundingStage
	}
	if update.Location != nil {
		s.Location = *update.Location
	}
	if update.Website != nil {
		s.Website = *update.Website
	}
	if update.PitchDeck != nil {
		s.PitchDeck = *update.PitchDeck
	}
	if update.PitchVideo != nil {
		s.PitchVideo = *update.PitchVideo
	}
	if update.Logo != nil {
		s.Logo = *update.Logo
	}
	if update.CoverImage != nil {
		s.CoverImage = *update.CoverImage
	}
	if update.Tags != nil {
		s.Tags = *update.Tags
	}
	if update.TeamMembers != nil {
		s.TeamMembers = *update.TeamMembers
	}
	now := time.Now().UTC()
	s.UpdatedAt = &now

	clone := *s
	return &clone, nil
}

func (r *StartupRepository) Delete(_ context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.startups[id]; !ok {
		return false, nil
	}
	delete(r.store.startups, id)
	return true, nil
}

func matchesFilter(s *domain.Startup, f ports.StartupFilter) bool {
	if f.Industry != "" && s.Industry != f.Industry {
		return false
	}
	if f.FundingStage != "" && s.FundingStage != f.FundingStage {
		return false
	}
	if f.Location != "" && s.Location != f.Location {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range s.Tags {
				if want == have {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if f.FundingMin > 0 && s.FundingMax < f.FundingMin {
		return false
	}
	if f.FundingMax > 0 && s.FundingMin > f.FundingMax {
		return false
	}
	return true
}

func sortNewestFirst(startups []*domain.Startup) {
	sort.SliceStable(startups, func(i, j int) bool {
		return startups[i].CreatedAt.After(startups[j].CreatedAt)
	})
}

// InterestRepository implements ports.InterestRepository over the shared store.
type InterestRepository struct {
	store *Store
}

func (r *InterestRepository) Create(_ context.Context, i *domain.Interest) (*domain.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.interests {
		if existing.InvestorID == i.InvestorID && existing.StartupID == i.StartupID {
			return nil, domain.ErrInterestExists
		}
	}

	stored := *i
	stored.ID = newID()
	r.store.interests[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *InterestRepository) GetByID(_ context.Context, id string) (*domain.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *InterestRepository) GetByPair(_ context.Context, investorID, startupID string) (*domain.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, i := range r.store.interests {
		if i.InvestorID == investorID && i.StartupID == startupID {
			clone := *i
			return &clone, nil
		}
	}
	return nil, domain.ErrInterestNotFound
}

func (r *InterestRepository) ListByInvestor(_ context.Context, investorID string) ([]*domain.Interest, error) {
	return r.list(func(i *domain.Interest) bool { return i.InvestorID == investorID })
}

func (r *InterestRepository) ListByStartup(_ context.Context, startupID string) ([]*domain.Interest, error) {
	return r.list(func(i *domain.Interest) bool { return i.StartupID == startupID })
}

func (r *InterestRepository) Update(_ context.Context, id string, update ports.InterestUpdate) (*domain.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}

	if update.Notes != nil {
		i.Notes = *update.Notes
	}
	if update.Feedback != nil {
		i.Feedback = *update.Feedback
	}
	if update.Status != nil {
		i.Status = *update.Status
	}

	clone := *i
	return &clone, nil
}

func (r *InterestRepository) Delete(_ context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.interests[id]; !ok {
		return false, nil
	}
	delete(r.store.interests, id)
	return true, nil
}

func (r *InterestRepository) DeleteByStartup(_ context.Context, startupID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var removed int64
	for id, i := range r.store.interests {
		if i.StartupID == startupID {
			delete(r.store.interests, id)
			removed++
		}
	}
	return removed, nil
}

func (r *InterestRepository) list(match func(*domain.Interest) bool) ([]*domain.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched := make([]*domain.Interest, 0)
	for _, i := range r.store.interests {
		if match(i) {
			clone := *i
			matched = append(matched, &clone)
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})
	return matched, nil
}

// EventRepository implements ports.EventRepository over the shared store.
type EventRepository struct {
	store *Store
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *e
	stored.ID = newID()
	r.store.events[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *EventRepository) List(_ context.Context, after time.Time) ([]*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := make([]*domain.Event, 0)
	for _, e := range r.store.events {
		if after.IsZero() || e.EventDate.After(after) {
			clone := *e
			events = append(events, &clone)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
	return events, nil
}

// FeedbackRepository implements ports.FeedbackRepository over the shared store.
type FeedbackRepository struct {
	store *Store
}

func (r *FeedbackRepository) Upsert(_ context.Context, f *domain.PitchFeedback) (*domain.PitchFeedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *f
	for id, existing := range r.store.feedback {
		if existing.StartupID == f.StartupID {
			stored.ID = id
			r.store.feedback[id] = &stored
			clone := stored
			return &clone, nil
		}
	}

	stored.ID = newID()
	r.store.feedback[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *FeedbackRepository) GetByStartup(_ context.Context, startupID string) (*domain.PitchFeedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.feedback {
		if f.StartupID == startupID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFeedbackNotFound
}

func (r *FeedbackRepository) DeleteByStartup(_ context.Context, startupID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, f := range r.store.feedback {
		if f.StartupID == startupID {
			delete(r.store.feedback, id)
			return true, nil
		}
	}
	return false, nil
}

// NotificationRepository implements ports.NotificationRepository over the
// shared store.
type NotificationRepository struct {
	store *Store
}

func (r *NotificationRepository) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *n
	stored.ID = newID()
	r.store.notifications[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *NotificationRepository) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notifications := make([]*domain.Notification, 0)
	for _, n := range r.store.notifications {
		if n.UserID == userID {
			clone := *n
			notifications = append(notifications, &clone)
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notifications[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	n.Read = true
	clone := *n
	return &clone, nil
}
