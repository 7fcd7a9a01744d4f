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

// AnalyzerService runs an AI analysis for a stored startup and persists the
// outcome as its pitch feedback. Scoring happens entirely in the external
// model; this service only shuttles data between the store and the adapter.
type AnalyzerService struct {
	startups ports.StartupRepository
	feedback ports.FeedbackService
	analyzer ports.PitchAnalyzer
	log      zerolog.Logger
}

func NewAnalyzerService(
	startups ports.StartupRepository,
	feedback ports.FeedbackService,
	analyzer ports.PitchAnalyzer,
	log zerolog.Logger,
) *AnalyzerService {
	return &AnalyzerService{startups: startups, feedback: feedback, analyzer: analyzer, log: log}
}

func (s *AnalyzerService) AnalyzeStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error) {
	startup, err := s.startups.GetByID(ctx, startupID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, ports.PitchInput{
		Name:         startup.Name,
		Tagline:      startup.Tagline,
		Description:  startup.Description,
		Industry:     startup.Industry,
		FundingStage: startup.FundingStage,
		FundingMin:   startup.FundingMin,
		FundingMax:   startup.FundingMax,
	})
	metrics.PitchAnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PitchAnalysesTotal.WithLabelValues(analysisResultLabel(err)).Inc()
		s.log.Error().Err(err).Str("startup_id", startupID).Msg("pitch analysis failed")
		return nil, err
	}

	saved, err := s.feedback.Save(ctx, ports.SaveFeedbackInput{
		StartupID:    startup.ID,
		Clarity:      result.Clarity,
		MarketNeed:   result.MarketNeed,
		TeamStrength: result.TeamStrength,
		OverallScore: result.OverallScore,
		Suggestion:   result.Suggestion,
		Swot:         result.Swot,
	})
	if err != nil {
		metrics.PitchAnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PitchAnalysesTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("startup_id", startupID).Int("overall_score", saved.OverallScore).Msg("pitch analyzed")
	return saved, nil
}

func analysisResultLabel(err error) string {
	var parseErr *ports.AnalysisParseError
	switch {
	case errors.Is(err, ports.ErrUpstream):
		return "upstream_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	default:
		return "error"
	}
}
