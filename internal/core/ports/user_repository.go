package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields for a partial update.
// Nil fields are left untouched. Password, username, role and id are
// absent: the generic update path drops them.
type UserUpdate struct {
	FullName     *string
	Email        *string
	Bio          *string
	Location     *string
	ProfileImage *string
	Interests    *[]string
	Expertise    *[]string
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create persists a new user and returns the stored record with its
	// assigned id. Returns domain.ErrUserExists on a username or email
	// uniqueness violation.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update merges the non-nil fields into the stored record.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
}
