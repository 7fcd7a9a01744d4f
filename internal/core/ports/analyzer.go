package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// ErrUpstream indicates the external AI endpoint was unreachable or returned
// a non-2xx response.
var ErrUpstream = errors.New("analysis service unavailable")

// AnalysisParseError indicates the AI endpoint answered but its output could
// not be turned into an analysis result. Raw carries the unusable text for
// diagnostics.
type AnalysisParseError struct {
	Raw string
	Err error
}

func (e *AnalysisParseError) Error() string {
	return fmt.Sprintf("unparseable analysis response: %v", e.Err)
}

func (e *AnalysisParseError) Unwrap() error { return e.Err }

// PitchInput is the slice of a startup fed to the analyzer.
type PitchInput struct {
	Name         string
	Tagline      string
	Description  string
	Industry     string
	FundingStage string
	FundingMin   int64
	FundingMax   int64
}

// AnalysisResult is the fixed-shape outcome of a pitch analysis. Scores are
// on the 0-100 scale.
type AnalysisResult struct {
	Clarity      int
	MarketNeed   int
	TeamStrength int
	OverallScore int
	Suggestion   string
	Swot         domain.SwotAnalysis
}

// PitchAnalyzer produces a fixed-shape analysis for a pitch. It implements no
// scoring itself; it shapes a prompt for an external generative model and
// defends against its output. Two calls with identical input may differ.
type PitchAnalyzer interface {
	Analyze(ctx context.Context, pitch PitchInput) (*AnalysisResult, error)
}

// AnalyzerService runs an analysis for a stored startup and persists the
// outcome as its pitch feedback.
type AnalyzerService interface {
	AnalyzeStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error)
}
