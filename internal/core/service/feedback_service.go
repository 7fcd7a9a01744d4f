package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// FeedbackService stores AI pitch feedback and notifies the pitch owner.
type FeedbackService struct {
	feedback ports.FeedbackRepository
	startups ports.StartupRepository
	fanout   *NotificationFanout
	log      zerolog.Logger
}

func NewFeedbackService(
	feedback ports.FeedbackRepository,
	startups ports.StartupRepository,
	fanout *NotificationFanout,
	log zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{feedback: feedback, startups: startups, fanout: fanout, log: log}
}

// Save clamps scores to the 0-100 scale, replaces any existing feedback for
// the startup, and notifies the owner. A zero overall score is filled with
// the mean of the three sub-scores.
func (s *FeedbackService) Save(ctx context.Context, input ports.SaveFeedbackInput) (*domain.PitchFeedback, error) {
	startup, err := s.startups.GetByID(ctx, input.StartupID)
	if err != nil {
		return nil, err
	}

	clarity := domain.ClampScore(input.Clarity)
	marketNeed := domain.ClampScore(input.MarketNeed)
	teamStrength := domain.ClampScore(input.TeamStrength)
	overall := input.OverallScore
	if overall == 0 {
		overall = (clarity + marketNeed + teamStrength) / 3
	}
	overall = domain.ClampScore(overall)

	record := &domain.PitchFeedback{
		StartupID:    startup.ID,
		Clarity:      clarity,
		MarketNeed:   marketNeed,
		TeamStrength: teamStrength,
		OverallScore: overall,
		Suggestion:   input.Suggestion,
		Swot:         normalizeSwot(input.Swot),
		CreatedAt:    time.Now().UTC(),
	}

	saved, err := s.feedback.Upsert(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Str("startup_id", startup.ID).Msg("failed to save ai feedback")
		return nil, err
	}

	s.log.Info().Str("startup_id", startup.ID).Int("overall_score", saved.OverallScore).Msg("ai feedback saved")

	// Best-effort side effect; never fails the write.
	s.fanout.FeedbackSaved(ctx, saved, startup)

	return saved, nil
}

func (s *FeedbackService) GetByStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error) {
	return s.feedback.GetByStartup(ctx, startupID)
}

// normalizeSwot replaces nil quadrants with empty lists so serialized
// feedback always carries four arrays.
func normalizeSwot(in domain.SwotAnalysis) domain.SwotAnalysis {
	if in.Strengths == nil {
		in.Strengths = []string{}
	}
	if in.Weaknesses == nil {
		in.Weaknesses = []string{}
	}
	if in.Opportunities == nil {
		in.Opportunities = []string{}
	}
	if in.Threats == nil {
		in.Threats = []string{}
	}
	return in
}
