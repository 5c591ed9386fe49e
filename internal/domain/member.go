package domain

// IconType distinguishes an inline symbol from an image URL
type IconType string

const (
	IconTypeEmoji IconType = "emoji"
	IconTypeURL   IconType = "url"
)

// Icon is a member's avatar: either an emoji or an image URL.
type Icon struct {
	Type  IconType `json:"type" yaml:"type"`
	Value string   `json:"value" yaml:"value"`
}

// DefaultRole is assigned when no club position is selected.
const DefaultRole = "Member"

// AlumniRole is the club position that marks a member as Hall of Fame.
const AlumniRole = "Alumni"

// Member represents a normalized team member
type Member struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Year        string `json:"year,omitempty" yaml:"year"`
	Major       string `json:"major,omitempty" yaml:"major"`
	Minor       string `json:"minor,omitempty" yaml:"minor"`
	Email       string `json:"email,omitempty" yaml:"email"`
	Phone       string `json:"phone,omitempty" yaml:"phone"`
	Icon        *Icon  `json:"icon,omitempty" yaml:"icon"`
	URL         string `json:"url" yaml:"url"`
	LinkedInURL string `json:"linkedinUrl,omitempty" yaml:"linkedinUrl"`
	HallOfFame  bool   `json:"hallOfFame" yaml:"hallOfFame"`
	Quote       string `json:"quote,omitempty" yaml:"quote"`
}

// IsAlumni derives alumni status from the role label only.
func IsAlumni(role string) bool {
	return role == AlumniRole
}
