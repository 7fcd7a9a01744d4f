package domain

import "time"

const (
	RoleEntrepreneur = "entrepreneur"
	RoleInvestor     = "investor"
	RoleAdmin        = "admin"
)

// ValidRole reports whether role is one of the recognized platform roles.
func ValidRole(role string) bool {
	return role == RoleEntrepreneur || role == RoleInvestor || role == RoleAdmin
}

// User models an account on the platform: an entrepreneur pitching startups,
// an investor browsing them, or an admin.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Interests    []string  `json:"interests,omitempty"`
	Expertise    []string  `json:"expertise,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
