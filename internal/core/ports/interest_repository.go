package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// InterestUpdate carries the mutable fields of an interest record.
// Nil fields are left untouched.
type InterestUpdate struct {
	Notes    *string
	Feedback *string
	Status   *domain.InterestStatus
}

// InterestRepository defines persistence for investor interest records.
type InterestRepository interface {
	// Create persists a new interest. Returns domain.ErrInterestExists when
	// the (investor, startup) pair already has a record.
	Create(ctx context.Context, i *domain.Interest) (*domain.Interest, error)
	GetByID(ctx context.Context, id string) (*domain.Interest, error)
	GetByPair(ctx context.Context, investorID, startupID string) (*domain.Interest, error)
	// ListByInvestor returns the investor's interests, newest first.
	ListByInvestor(ctx context.Context, investorID string) ([]*domain.Interest, error)
	// ListByStartup returns interests against the startup, newest first.
	ListByStartup(ctx context.Context, startupID string) ([]*domain.Interest, error)
	Update(ctx context.Context, id string, update InterestUpdate) (*domain.Interest, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteByStartup removes all interests against a startup (cascade on
	// startup deletion) and returns how many were removed.
	DeleteByStartup(ctx context.Context, startupID string) (int64, error)
}
