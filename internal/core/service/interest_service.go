package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/api/metrics"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// InterestService implements use cases for investor interest records.
type InterestService struct {
	interests ports.InterestRepository
	startups  ports.StartupRepository
	users     ports.UserRepository
	fanout    *NotificationFanout
	log       zerolog.Logger
}

func NewInterestService(
	interests ports.InterestRepository,
	startups ports.StartupRepository,
	users ports.UserRepository,
	fanout *NotificationFanout,
	log zerolog.Logger,
) *InterestService {
	return &InterestService{
		interests: interests,
		startups:  startups,
		users:     users,
		fanout:    fanout,
		log:       log,
	}
}

// Create records an investor's interest in a startup and notifies the owner.
// One record per (investor, startup) pair; a second create conflicts.
func (s *InterestService) Create(ctx context.Context, input ports.CreateInterestInput) (*domain.Interest, error) {
	startup, err := s.startups.GetByID(ctx, input.StartupID)
	if err != nil {
		return nil, err
	}

	investor, err := s.users.GetByID(ctx, input.InvestorID)
	if err != nil {
		return nil, err
	}
	if investor.Role == domain.RoleEntrepreneur {
		return nil, domain.ErrForbidden
	}

	if _, err := s.interests.GetByPair(ctx, investor.ID, startup.ID); err == nil {
		return nil, domain.ErrInterestExists
	} else if !errors.Is(err, domain.ErrInterestNotFound) {
		return nil, err
	}

	interest := &domain.Interest{
		InvestorID: investor.ID,
		StartupID:  startup.ID,
		Notes:      input.Notes,
		Feedback:   input.Feedback,
		Status:     domain.InterestPending,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.interests.Create(ctx, interest)
	if err != nil {
		return nil, err
	}

	metrics.InterestsCreatedTotal.Inc()
	s.log.Info().Str("interest_id", created.ID).Str("investor_id", investor.ID).Str("startup_id", startup.ID).Msg("interest created")

	// Best-effort side effect; never fails the write.
	s.fanout.InterestCreated(ctx, created, startup, investor)

	return created, nil
}

func (s *InterestService) ListByInvestor(ctx context.Context, investorID string) ([]*domain.Interest, error) {
	return s.interests.ListByInvestor(ctx, investorID)
}

func (s *InterestService) ListByStartup(ctx context.Context, startupID string) ([]*domain.Interest, error) {
	return s.interests.ListByStartup(ctx, startupID)
}

// Update patches an interest. The investor who registered it, the owner of
// the targeted startup, and admins may update; anyone else is rejected.
func (s *InterestService) Update(ctx context.Context, id, actorID, actorRole string, update ports.InterestUpdate) (*domain.Interest, error) {
	existing, err := s.interests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeActor(ctx, existing, actorID, actorRole); err != nil {
		return nil, err
	}

	if update.Status != nil {
		if !domain.ValidInterestStatus(*update.Status) || !existing.Status.CanTransitionTo(*update.Status) {
			return nil, domain.ErrInvalidTransition
		}
	}

	return s.interests.Update(ctx, id, update)
}

// Delete withdraws an interest under the same actor scoping as Update. The
// bool reports whether the record existed.
func (s *InterestService) Delete(ctx context.Context, id, actorID, actorRole string) (bool, error) {
	existing, err := s.interests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInterestNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.authorizeActor(ctx, existing, actorID, actorRole); err != nil {
		return false, err
	}
	return s.interests.Delete(ctx, id)
}

func (s *InterestService) authorizeActor(ctx context.Context, interest *domain.Interest, actorID, actorRole string) error {
	if actorRole == domain.RoleAdmin || actorID == interest.InvestorID {
		return nil
	}
	startup, err := s.startups.GetByID(ctx, interest.StartupID)
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if startup.UserID == actorID {
		return nil
	}
	return domain.ErrForbidden
}
