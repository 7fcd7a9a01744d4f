package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// CreateInterestInput carries the data for a new interest record.
type CreateInterestInput struct {
	InvestorID string
	StartupID  string
	Notes      string
	Feedback   string
}

// InterestService defines use-case operations for investor interest.
// Creating an interest notifies the startup owner as a best-effort side
// effect.
type InterestService interface {
	Create(ctx context.Context, input CreateInterestInput) (*domain.Interest, error)
	ListByInvestor(ctx context.Context, investorID string) ([]*domain.Interest, error)
	ListByStartup(ctx context.Context, startupID string) ([]*domain.Interest, error)
	// Update patches notes, feedback or status. The registering investor,
	// the owner of the targeted startup and admins may update.
	Update(ctx context.Context, id, actorID, actorRole string, update InterestUpdate) (*domain.Interest, error)
	// Delete withdraws an interest under the same actor scoping as Update.
	// The bool reports whether the record existed.
	Delete(ctx context.Context, id, actorID, actorRole string) (bool, error)
}
