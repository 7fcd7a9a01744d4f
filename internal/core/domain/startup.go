package domain

import "time"

// TeamMember is an entry in a startup's founding team list.
type TeamMember struct {
	Name string `json:"name" bson:"name"`
	Role string `json:"role" bson:"role"`
	Bio  string `json:"bio,omitempty" bson:"bio,omitempty"`
}

// Startup is a pitch listing owned by exactly one entrepreneur.
// FundingMin/FundingMax normalize the two funding representations found in
// the wild (single fundingNeeded vs. a range) into one range.
type Startup struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	UserID       string       `json:"user_id" bson:"user_id"`
	Name         string       `json:"name" bson:"name"`
	Tagline      string       `json:"tagline" bson:"tagline"`
	Description  string       `json:"description" bson:"description"`
	Industry     string       `json:"industry" bson:"industry"`
	FundingMin   int64        `json:"funding_min" bson:"funding_min"`
	FundingMax   int64        `json:"funding_max" bson:"funding_max"`
	FundingStage string       `json:"funding_stage" bson:"funding_stage"`
	Location     string       `json:"location,omitempty" bson:"location,omitempty"`
	Website      string       `json:"website,omitempty" bson:"website,omitempty"`
	PitchDeck    string       `json:"pitch_deck,omitempty" bson:"pitch_deck,omitempty"`
	PitchVideo   string       `json:"pitch_video,omitempty" bson:"pitch_video,omitempty"`
	Logo         string       `json:"logo,omitempty" bson:"logo,omitempty"`
	CoverImage   string       `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Tags         []string     `json:"tags,omitempty" bson:"tags,omitempty"`
	TeamMembers  []TeamMember `json:"team_members,omitempty" bson:"team_members,omitempty"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ValidFundingRange reports whether min/max form a usable funding range.
func ValidFundingRange(min, max int64) bool {
	return min >= 0 && max >= 0 && min <= max
}
