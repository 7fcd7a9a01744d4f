package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/memory"
)

func newAuthService(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewAuthService(store.Users(), "test-secret", time.Hour, zerolog.Nop()), store
}

func registerInput(username, email, role string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Password: "hunter2hunter2",
		FullName: "Alice Example",
		Email:    email,
		Role:     role,
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("alice", "alice@example.com", domain.RoleEntrepreneur))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "hunter2hunter2" {
		t.Fatalf("password stored in clear")
	}

	token, logged, err := svc.Login(ctx, "alice", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected same user, got %s", logged.ID)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != user.ID || claims["role"] != domain.RoleEntrepreneur {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("alice", "alice@example.com", domain.RoleInvestor)); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, registerInput("alice", "other@example.com", domain.RoleInvestor))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("alice", "alice@example.com", domain.RoleInvestor)); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, registerInput("alice2", "alice@example.com", domain.RoleInvestor))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), registerInput("bob", "bob@example.com", "superuser"))
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown username and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("alice", "alice@example.com", domain.RoleInvestor)); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPassword := svc.Login(ctx, "alice", "not-the-password")
	_, _, unknownUser := svc.Login(ctx, "ghost", "hunter2hunter2")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}
