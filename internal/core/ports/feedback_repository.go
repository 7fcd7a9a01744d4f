package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// FeedbackRepository defines persistence for AI pitch feedback.
// A startup holds at most one active record; Upsert replaces any existing one.
type FeedbackRepository interface {
	Upsert(ctx context.Context, f *domain.PitchFeedback) (*domain.PitchFeedback, error)
	GetByStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error)
	// DeleteByStartup removes the startup's feedback (cascade on startup
	// deletion).
	DeleteByStartup(ctx context.Context, startupID string) (bool, error)
}
