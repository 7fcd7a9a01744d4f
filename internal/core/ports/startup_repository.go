package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// StartupFilter carries the browse query parameters. All supplied keys are
// ANDed together; zero values are ignored, not treated as "match nothing".
type StartupFilter struct {
	Industry     string
	FundingStage string
	Location     string
	Tags         []string // matches startups carrying any of these tags
	FundingMin   int64    // startups whose range reaches at least this amount
	FundingMax   int64    // startups whose range starts at or below this amount
}

// StartupUpdate carries the mutable pitch fields for a partial update.
// Nil fields are left untouched. UserID and id are absent:
// ownership never transfers through the update path.
type StartupUpdate struct {
	Name         *string
	Tagline      *string
	Description  *string
	Industry     *string
	FundingMin   *int64
	FundingMax   *int64
	FundingStage *string
	Location     *string
	Website      *string
	PitchDeck    *string
	PitchVideo   *string
	Logo         *string
	CoverImage   *string
	Tags         *[]string
	TeamMembers  *[]domain.TeamMember
}

// StartupRepository defines persistence for pitch listings.
type StartupRepository interface {
	Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error)
	GetByID(ctx context.Context, id string) (*domain.Startup, error)
	// List returns startups matching filter, newest first.
	List(ctx context.Context, filter StartupFilter) ([]*domain.Startup, error)
	// ListByOwner returns the owner's startups, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Startup, error)
	// Update merges the non-nil fields and refreshes updated_at.
	Update(ctx context.Context, id string, update StartupUpdate) (*domain.Startup, error)
	// Delete removes the startup. Deleting an absent record is not an
	// error; the bool reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
