package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/memory"
)

type marketplaceFixture struct {
	store    *memory.Store
	fanout   *NotificationFanout
	owner    *domain.User
	investor *domain.User
	startup  *domain.Startup
}

// seedMarketplace creates an entrepreneur, an investor and one startup owned
// by the entrepreneur.
func seedMarketplace(t *testing.T) *marketplaceFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	owner, err := store.Users().Create(ctx, &domain.User{
		Username: "founder", Email: "founder@example.com",
		FullName: "Frida Founder", Role: domain.RoleEntrepreneur,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	investor, err := store.Users().Create(ctx, &domain.User{
		Username: "angel", Email: "angel@example.com",
		FullName: "Ivan Investor", Role: domain.RoleInvestor,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed investor: %v", err)
	}

	startup, err := store.Startups().Create(ctx, &domain.Startup{
		UserID: owner.ID, Name: "Acme Robotics",
		Description: "Robots", Industry: "robotics",
		FundingMin: 100_000, FundingMax: 500_000, FundingStage: "seed",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed startup: %v", err)
	}

	return &marketplaceFixture{
		store:    store,
		fanout:   NewNotificationFanout(store.Notifications(), store.Dedup(), zerolog.Nop()),
		owner:    owner,
		investor: investor,
		startup:  startup,
	}
}

func newInterestService(f *marketplaceFixture) *InterestService {
	return NewInterestService(f.store.Interests(), f.store.Startups(), f.store.Users(), f.fanout, zerolog.Nop())
}

func TestInterestService_Create_NotifiesOwner(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	interest, err := svc.Create(ctx, ports.CreateInterestInput{
		InvestorID: f.investor.ID,
		StartupID:  f.startup.ID,
		Notes:      "keen on the robotics angle",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if interest.Status != domain.InterestPending {
		t.Fatalf("expected pending status, got %s", interest.Status)
	}

	feed, err := f.store.Notifications().ListByUser(ctx, f.owner.ID, domain.NotificationFeedLimit)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(feed))
	}
	n := feed[0]
	if n.Title != "New Interest in Your Startup" {
		t.Fatalf("unexpected title %q", n.Title)
	}
	if n.Message != `Ivan Investor has shown interest in your startup "Acme Robotics"` {
		t.Fatalf("unexpected message %q", n.Message)
	}
	if n.Link != "/startup/"+f.startup.ID {
		t.Fatalf("unexpected link %q", n.Link)
	}
	if n.Type != domain.NotificationInterest || n.Read {
		t.Fatalf("unexpected notification state: %+v", n)
	}
}

// Re-processing the same trigger must not produce a second notification.
func TestInterestService_Create_FanoutDedup(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	interest, err := svc.Create(ctx, ports.CreateInterestInput{
		InvestorID: f.investor.ID,
		StartupID:  f.startup.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.fanout.InterestCreated(ctx, interest, f.startup, f.investor)

	feed, err := f.store.Notifications().ListByUser(ctx, f.owner.ID, domain.NotificationFeedLimit)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected dedup to keep one notification, got %d", len(feed))
	}
}

func TestInterestService_Create_DuplicatePair(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	input := ports.CreateInterestInput{InvestorID: f.investor.ID, StartupID: f.startup.ID}
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, input)
	if !errors.Is(err, domain.ErrInterestExists) {
		t.Fatalf("expected ErrInterestExists, got %v", err)
	}
}

func TestInterestService_Create_EntrepreneurForbidden(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)

	_, err := svc.Create(context.Background(), ports.CreateInterestInput{
		InvestorID: f.owner.ID,
		StartupID:  f.startup.ID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInterestService_Update_StatusTransitions(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	interest, err := svc.Create(ctx, ports.CreateInterestInput{
		InvestorID: f.investor.ID,
		StartupID:  f.startup.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The startup owner accepts.
	accepted := domain.InterestAccepted
	updated, err := svc.Update(ctx, interest.ID, f.owner.ID, domain.RoleEntrepreneur, ports.InterestUpdate{Status: &accepted})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if updated.Status != domain.InterestAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	// Accepted is terminal.
	rejected := domain.InterestRejected
	if _, err := svc.Update(ctx, interest.ID, f.owner.ID, domain.RoleEntrepreneur, ports.InterestUpdate{Status: &rejected}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// Only the registering investor, the startup owner or an admin may touch an
// interest record.
func TestInterestService_UpdateDelete_ActorScoping(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	stranger, err := f.store.Users().Create(ctx, &domain.User{
		Username: "lurker", Email: "lurker@example.com",
		FullName: "Lou Lurker", Role: domain.RoleInvestor,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed stranger: %v", err)
	}

	interest, err := svc.Create(ctx, ports.CreateInterestInput{
		InvestorID: f.investor.ID,
		StartupID:  f.startup.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "not yours"
	if _, err := svc.Update(ctx, interest.ID, stranger.ID, domain.RoleInvestor, ports.InterestUpdate{Notes: &notes}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if _, err := svc.Delete(ctx, interest.ID, stranger.ID, domain.RoleInvestor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	// The registering investor may still withdraw.
	deleted, err := svc.Delete(ctx, interest.ID, f.investor.ID, domain.RoleInvestor)
	if err != nil || !deleted {
		t.Fatalf("expected investor delete to succeed, got (%v, %v)", deleted, err)
	}
}

func TestInterestService_Delete(t *testing.T) {
	f := seedMarketplace(t)
	svc := newInterestService(f)
	ctx := context.Background()

	interest, err := svc.Create(ctx, ports.CreateInterestInput{
		InvestorID: f.investor.ID,
		StartupID:  f.startup.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, interest.ID, f.investor.ID, domain.RoleInvestor)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got (%v, %v)", deleted, err)
	}
	deleted, err = svc.Delete(ctx, interest.ID, f.investor.ID, domain.RoleInvestor)
	if err != nil || deleted {
		t.Fatalf("expected repeat delete to report absence, got (%v, %v)", deleted, err)
	}
}
