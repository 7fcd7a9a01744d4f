package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type stubAnalyzer struct {
	analyzeFn func(ctx context.Context, pitch ports.PitchInput) (*ports.AnalysisResult, error)
}

func (s *stubAnalyzer) Analyze(ctx context.Context, pitch ports.PitchInput) (*ports.AnalysisResult, error) {
	return s.analyzeFn(ctx, pitch)
}

func TestAnalyzerService_AnalyzeStartup(t *testing.T) {
	f := seedMarketplace(t)
	feedbackSvc := newFeedbackService(f)
	analyzer := &stubAnalyzer{
		analyzeFn: func(_ context.Context, pitch ports.PitchInput) (*ports.AnalysisResult, error) {
			if pitch.Name != f.startup.Name {
				t.Fatalf("expected startup fields in pitch, got %+v", pitch)
			}
			return &ports.AnalysisResult{
				Clarity: 72, MarketNeed: 64, TeamStrength: 81, OverallScore: 72,
				Suggestion: "expand the team slide",
				Swot: domain.SwotAnalysis{
					Strengths:     []string{"strong team"},
					Weaknesses:    []string{},
					Opportunities: []string{},
					Threats:       []string{},
				},
			}, nil
		},
	}
	svc := NewAnalyzerService(f.store.Startups(), feedbackSvc, analyzer, zerolog.Nop())

	saved, err := svc.AnalyzeStartup(context.Background(), f.startup.ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if saved.OverallScore != 72 || saved.Suggestion != "expand the team slide" {
		t.Fatalf("unexpected feedback: %+v", saved)
	}

	// The analysis must land in the feedback store and notify the owner.
	stored, err := f.store.Feedback().GetByStartup(context.Background(), f.startup.ID)
	if err != nil {
		t.Fatalf("stored feedback: %v", err)
	}
	if stored.Clarity != 72 {
		t.Fatalf("unexpected stored feedback: %+v", stored)
	}
	feed, err := f.store.Notifications().ListByUser(context.Background(), f.owner.ID, domain.NotificationFeedLimit)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected one notification, got %d", len(feed))
	}
}

func TestAnalyzerService_UpstreamErrorPropagates(t *testing.T) {
	f := seedMarketplace(t)
	feedbackSvc := newFeedbackService(f)
	analyzer := &stubAnalyzer{
		analyzeFn: func(context.Context, ports.PitchInput) (*ports.AnalysisResult, error) {
			return nil, fmt.Errorf("status 503: %w", ports.ErrUpstream)
		},
	}
	svc := NewAnalyzerService(f.store.Startups(), feedbackSvc, analyzer, zerolog.Nop())

	_, err := svc.AnalyzeStartup(context.Background(), f.startup.ID)
	if !errors.Is(err, ports.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	// No partial feedback may be written on failure.
	if _, err := f.store.Feedback().GetByStartup(context.Background(), f.startup.ID); !errors.Is(err, domain.ErrFeedbackNotFound) {
		t.Fatalf("expected no stored feedback, got %v", err)
	}
}

func TestAnalyzerService_UnknownStartup(t *testing.T) {
	f := seedMarketplace(t)
	svc := NewAnalyzerService(f.store.Startups(), newFeedbackService(f), &stubAnalyzer{
		analyzeFn: func(context.Context, ports.PitchInput) (*ports.AnalysisResult, error) {
			t.Fatalf("analyzer should not be called")
			return nil, nil
		},
	}, zerolog.Nop())

	_, err := svc.AnalyzeStartup(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrStartupNotFound) {
		t.Fatalf("expected ErrStartupNotFound, got %v", err)
	}
}
