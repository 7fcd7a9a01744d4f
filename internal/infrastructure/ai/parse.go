package ai

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSONRe   = regexp.MustCompile(`(?s)\{.*\}`)

	errNoJSON = errors.New("no JSON object in model output")
)

// rawAnalysis mirrors the JSON the prompt asks for. Pointer numerics
// distinguish "absent" from a genuine zero score.
type rawAnalysis struct {
	Clarity      *float64 `json:"clarity"`
	MarketNeed   *float64 `json:"marketNeed"`
	TeamStrength *float64 `json:"teamStrength"`
	OverallScore *float64 `json:"overallScore"`
	Suggestion   string   `json:"suggestion"`
	Swot         *rawSwot `json:"swotAnalysis"`
}

type rawSwot struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// parseAnalysis extracts an AnalysisResult from whatever the model produced.
// It tries, in order: the whole text as JSON, a fenced ```json block, and the
// outermost brace-delimited substring. Missing scores default to the scale
// midpoint; a missing overall score is the mean of the other three.
func parseAnalysis(text string) (*ports.AnalysisResult, error) {
	candidates := []string{text}
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := bareJSONRe.FindString(text); m != "" {
		candidates = append(candidates, m)
	}

	var (
		raw     rawAnalysis
		decoded bool
		lastErr error = errNoJSON
	)
	for _, c := range candidates {
		var attempt rawAnalysis
		if err := json.Unmarshal([]byte(c), &attempt); err != nil {
			lastErr = err
			continue
		}
		raw = attempt
		decoded = true
		break
	}
	if !decoded {
		return nil, &ports.AnalysisParseError{Raw: text, Err: lastErr}
	}
	return normalize(raw), nil
}

// normalize applies scale detection, defaults and clamping. Some models answer
// on a 0-10 scale despite the prompt; when every present score fits 0-10 the
// values are multiplied by 10 before clamping.
func normalize(raw rawAnalysis) *ports.AnalysisResult {
	scale := 1.0
	if legacyScale(raw.Clarity, raw.MarketNeed, raw.TeamStrength, raw.OverallScore) {
		scale = 10.0
	}

	const midpoint = (domain.ScoreMin + domain.ScoreMax) / 2
	clarity := scoreOrDefault(raw.Clarity, scale, midpoint)
	market := scoreOrDefault(raw.MarketNeed, scale, midpoint)
	team := scoreOrDefault(raw.TeamStrength, scale, midpoint)
	overall := scoreOrDefault(raw.OverallScore, scale, (clarity+market+team)/3)

	suggestion := raw.Suggestion
	if suggestion == "" {
		suggestion = "No suggestions provided"
	}

	swot := domain.SwotAnalysis{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}
	if raw.Swot != nil {
		if raw.Swot.Strengths != nil {
			swot.Strengths = raw.Swot.Strengths
		}
		if raw.Swot.Weaknesses != nil {
			swot.Weaknesses = raw.Swot.Weaknesses
		}
		if raw.Swot.Opportunities != nil {
			swot.Opportunities = raw.Swot.Opportunities
		}
		if raw.Swot.Threats != nil {
			swot.Threats = raw.Swot.Threats
		}
	}

	return &ports.AnalysisResult{
		Clarity:      clarity,
		MarketNeed:   market,
		TeamStrength: team,
		OverallScore: overall,
		Suggestion:   suggestion,
		Swot:         swot,
	}
}

// legacyScale reports whether every present score fits the old 0-10 scale.
// It never fires when no score is present at all.
func legacyScale(scores ...*float64) bool {
	present := false
	for _, s := range scores {
		if s == nil {
			continue
		}
		present = true
		if *s > 10 {
			return false
		}
	}
	return present
}

func scoreOrDefault(v *float64, scale float64, def int) int {
	if v == nil {
		return domain.ClampScore(def)
	}
	return domain.ClampScore(int(*v * scale))
}
