package handler

import "github.com/pitchbridge/pitchbridge-api/internal/core/domain"

type teamMemberRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

type createStartupRequest struct {
	Name         string              `json:"name"          validate:"required"`
	Tagline      string              `json:"tagline"`
	Description  string              `json:"description"   validate:"required"`
	Industry     string              `json:"industry"      validate:"required"`
	FundingMin   int64               `json:"funding_min"   validate:"gte=0"`
	FundingMax   int64               `json:"funding_max"   validate:"gte=0"`
	FundingStage string              `json:"funding_stage" validate:"required"`
	Location     string              `json:"location"`
	Website      string              `json:"website"`
	PitchDeck    string              `json:"pitch_deck"`
	PitchVideo   string              `json:"pitch_video"`
	Logo         string              `json:"logo"`
	CoverImage   string              `json:"cover_image"`
	Tags         []string            `json:"tags"`
	TeamMembers  []teamMemberRequest `json:"team_members" validate:"dive"`
}

type updateStartupRequest struct {
	Name         *string              `json:"name"`
	Tagline      *string              `json:"tagline"`
	Description  *string              `json:"description"`
	Industry     *string              `json:"industry"`
	FundingMin   *int64               `json:"funding_min"   validate:"omitempty,gte=0"`
	FundingMax   *int64               `json:"funding_max"   validate:"omitempty,gte=0"`
	FundingStage *string              `json:"funding_stage"`
	Location     *string              `json:"location"`
	Website      *string              `json:"website"`
	PitchDeck    *string              `json:"pitch_deck"`
	PitchVideo   *string              `json:"pitch_video"`
	Logo         *string              `json:"logo"`
	CoverImage   *string              `json:"cover_image"`
	Tags         *[]string            `json:"tags"`
	TeamMembers  *[]teamMemberRequest `json:"team_members" validate:"omitempty,dive"`
}

func toTeamMembers(reqs []teamMemberRequest) []domain.TeamMember {
	if reqs == nil {
		return nil
	}
	members := make([]domain.TeamMember, 0, len(reqs))
	for _, r := range reqs {
		members = append(members, domain.TeamMember{Name: r.Name, Role: r.Role, Bio: r.Bio})
	}
	return members
}
