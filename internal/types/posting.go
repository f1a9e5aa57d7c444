// Package types provides type definitions for structured data used throughout the internmatch system.
package types

// Posting categories. Anything other than CategoryGovernment is treated
// as "other" by the quota logic in the recommendation selector.
const (
	CategoryGovernment = "government"
	CategoryPrivate    = "private-based"
)

// Posting represents a single internship opportunity from the candidate pool.
// Constructed fresh per ranking request and never persisted by the engine.
type Posting struct {
	Company        string   `json:"company"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Sector         string   `json:"sector"`
	RequiredSkills []string `json:"required_skills"`
	Duration       string   `json:"duration"`
	Location       string   `json:"location"`
	Stipend        string   `json:"stipend"`
	Description    string   `json:"description"`
}

// ScoredPosting is a Posting with the derived 0-100 skill match score attached.
type ScoredPosting struct {
	Posting
	SkillMatchScore float64 `json:"skill_match_score"`
}

// RecommendationsResponse is the JSON envelope returned by the recommendation endpoints.
type RecommendationsResponse struct {
	Success         bool            `json:"success"`
	Recommendations []ScoredPosting `json:"recommendations"`
}
