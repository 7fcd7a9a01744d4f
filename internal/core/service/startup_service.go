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

// StartupService implements use cases for pitch listings.
type StartupService struct {
	startups  ports.StartupRepository
	users     ports.UserRepository
	interests ports.InterestRepository
	feedback  ports.FeedbackRepository
	log       zerolog.Logger
}

func NewStartupService(
	startups ports.StartupRepository,
	users ports.UserRepository,
	interests ports.InterestRepository,
	feedback ports.FeedbackRepository,
	log zerolog.Logger,
) *StartupService {
	return &StartupService{
		startups:  startups,
		users:     users,
		interests: interests,
		feedback:  feedback,
		log:       log,
	}
}

func (s *StartupService) Create(ctx context.Context, input ports.CreateStartupInput) (*domain.Startup, error) {
	if !domain.ValidFundingRange(input.FundingMin, input.FundingMax) {
		return nil, domain.ErrInvalidFundingRange
	}

	owner, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if owner.Role == domain.RoleInvestor {
		return nil, domain.ErrForbidden
	}

	startup := &domain.Startup{
		UserID:       owner.ID,
		Name:         input.Name,
		Tagline:      input.Tagline,
		Description:  input.Description,
		Industry:     input.Industry,
		FundingMin:   input.FundingMin,
		FundingMax:   input.FundingMax,
		FundingStage: input.FundingStage,
		Location:     input.Location,
		Website:      input.Website,
		PitchDeck:    input.PitchDeck,
		PitchVideo:   input.PitchVideo,
		Logo:         input.Logo,
		CoverImage:   input.CoverImage,
		Tags:         input.Tags,
		TeamMembers:  input.TeamMembers,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.startups.Create(ctx, startup)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create startup")
		return nil, err
	}

	metrics.StartupsCreatedTotal.WithLabelValues(created.FundingStage).Inc()
	s.log.Info().Str("startup_id", created.ID).Str("user_id", created.UserID).Msg("startup created")
	return created, nil
}

func (s *StartupService) Get(ctx context.Context, id string) (*domain.Startup, error) {
	return s.startups.GetByID(ctx, id)
}

func (s *StartupService) List(ctx context.Context, filter ports.StartupFilter) ([]*domain.Startup, error) {
	return s.startups.List(ctx, filter)
}

func (s *StartupService) ListByOwner(ctx context.Context, userID string) ([]*domain.Startup, error) {
	return s.startups.ListByOwner(ctx, userID)
}

func (s *StartupService) Update(ctx context.Context, id, actorID, actorRole string, update ports.StartupUpdate) (*domain.Startup, error) {
	existing, err := s.startups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != actorID && actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	min := existing.FundingMin
	max := existing.FundingMax
	if update.FundingMin != nil {
		min = *update.FundingMin
	}
	if update.FundingMax != nil {
		max = *update.FundingMax
	}
	if !domain.ValidFundingRange(min, max) {
		return nil, domain.ErrInvalidFundingRange
	}

	return s.startups.Update(ctx, id, update)
}

// Delete removes the startup and cascades over its dependents. The cascade is
// best-effort: a failed dependent delete is logged, not propagated, so the
// primary delete stands.
func (s *StartupService) Delete(ctx context.Context, id, actorID, actorRole string) (bool, error) {
	existing, err := s.startups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			return false, nil
		}
		return false, err
	}
	if existing.UserID != actorID && actorRole != domain.RoleAdmin {
		return false, domain.ErrForbidden
	}

	deleted, err := s.startups.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if n, err := s.interests.DeleteByStartup(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("startup_id", id).Msg("cascade delete of interests failed")
	} else if n > 0 {
		s.log.Info().Str("startup_id", id).Int64("count", n).Msg("cascaded interest deletion")
	}
	if _, err := s.feedback.DeleteByStartup(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("startup_id", id).Msg("cascade delete of ai feedback failed")
	}

	s.log.Info().Str("startup_id", id).Msg("startup deleted")
	return true, nil
}
