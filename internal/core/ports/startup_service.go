package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// CreateStartupInput carries all data needed to create a pitch listing.
type CreateStartupInput struct {
	UserID       string
	Name         string
	Tagline      string
	Description  string
	Industry     string
	FundingMin   int64
	FundingMax   int64
	FundingStage string
	Location     string
	Website      string
	PitchDeck    string
	PitchVideo   string
	Logo         string
	CoverImage   string
	Tags         []string
	TeamMembers  []domain.TeamMember
}

// StartupService defines use-case operations for pitch listings.
type StartupService interface {
	Create(ctx context.Context, input CreateStartupInput) (*domain.Startup, error)
	Get(ctx context.Context, id string) (*domain.Startup, error)
	List(ctx context.Context, filter StartupFilter) ([]*domain.Startup, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Startup, error)
	// Update applies a partial update. actorID must own the startup (or be
	// an admin).
	Update(ctx context.Context, id, actorID, actorRole string, update StartupUpdate) (*domain.Startup, error)
	// Delete removes the startup and cascades over its interests and AI
	// feedback. The bool reports whether the startup existed.
	Delete(ctx context.Context, id, actorID, actorRole string) (bool, error)
}
