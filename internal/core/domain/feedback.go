package domain

import "time"

// Pitch score scale. All scores are normalized to 0-100.
const (
	ScoreMin = 0
	ScoreMax = 100
)

// ClampScore forces a score into the [ScoreMin, ScoreMax] range.
func ClampScore(v int) int {
	if v < ScoreMin {
		return ScoreMin
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return v
}

// SwotAnalysis holds the four SWOT quadrants as free-text bullet lists.
type SwotAnalysis struct {
	Strengths     []string `json:"strengths" bson:"strengths"`
	Weaknesses    []string `json:"weaknesses" bson:"weaknesses"`
	Opportunities []string `json:"opportunities" bson:"opportunities"`
	Threats       []string `json:"threats" bson:"threats"`
}

// PitchFeedback is the AI-generated assessment of a startup pitch.
// At most one active record exists per startup; reanalysis replaces it.
type PitchFeedback struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	StartupID    string       `json:"startup_id" bson:"startup_id"`
	Clarity      int          `json:"clarity" bson:"clarity"`
	MarketNeed   int          `json:"market_need" bson:"market_need"`
	TeamStrength int          `json:"team_strength" bson:"team_strength"`
	OverallScore int          `json:"overall_score" bson:"overall_score"`
	Suggestion   string       `json:"suggestion" bson:"suggestion"`
	Swot         SwotAnalysis `json:"swot_analysis" bson:"swot_analysis"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
}
