package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// SaveFeedbackInput carries externally produced scores for a startup. Scores
// are clamped to the 0-100 scale on the way in.
type SaveFeedbackInput struct {
	StartupID    string
	Clarity      int
	MarketNeed   int
	TeamStrength int
	OverallScore int
	Suggestion   string
	Swot         domain.SwotAnalysis
}

// FeedbackService stores and retrieves AI pitch feedback. Saving feedback
// notifies the startup owner as a best-effort side effect.
type FeedbackService interface {
	Save(ctx context.Context, input SaveFeedbackInput) (*domain.PitchFeedback, error)
	GetByStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error)
}
