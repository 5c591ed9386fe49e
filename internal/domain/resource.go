package domain

// ResourceCategory is one of the fixed resource sections
type ResourceCategory string

const (
	CategoryInterviewPrep     ResourceCategory = "Interview Prep"
	CategoryClasses           ResourceCategory = "Classes"
	CategoryCareerGrowth      ResourceCategory = "Career Growth"
	CategoryWebDevelopment    ResourceCategory = "Web Development"
	CategoryMobileDevelopment ResourceCategory = "Mobile Development"
	CategoryDataScience       ResourceCategory = "Data Science"
	CategorySystemDesign      ResourceCategory = "System Design"
	CategoryLeadership        ResourceCategory = "Leadership"
)

// ResourceCategories lists the categories in display order.
var ResourceCategories = []ResourceCategory{
	CategoryInterviewPrep,
	CategoryClasses,
	CategoryCareerGrowth,
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryDataScience,
	CategorySystemDesign,
	CategoryLeadership,
}

// IsResourceCategory reports whether c is a known category
func IsResourceCategory(c string) bool {
	for _, known := range ResourceCategories {
		if string(known) == c {
			return true
		}
	}
	return false
}

// Resource represents one curated link from resources.json
type Resource struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Link          string   `json:"link"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	DateAdded     string   `json:"dateAdded"`
	ContributedBy string   `json:"contributedBy,omitempty"`
}

// Roster is the team page payload
type Roster struct {
	Leadership []Member `json:"leadership" yaml:"leadership"`
	Core       []Member `json:"core" yaml:"core"`
	HallOfFame []Member `json:"hallOfFame" yaml:"hallOfFame"`
}
