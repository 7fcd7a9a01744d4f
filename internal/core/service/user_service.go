package service

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// UserService implements profile reads and updates. Password changes do not
// travel through here: UserUpdate has no password field, so a stray password
// key in a request is dropped before it can reach storage.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	return s.users.Update(ctx, id, update)
}
