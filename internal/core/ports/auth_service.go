package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. Password is
// plaintext here and only here; it is hashed before it reaches any repository.
type RegisterInput struct {
	Username     string
	Password     string
	FullName     string
	Email        string
	Role         string
	Bio          string
	Location     string
	ProfileImage string
	Interests    []string
	Expertise    []string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token with the
	// user. Unknown usernames and wrong passwords are indistinguishable to
	// the caller: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
