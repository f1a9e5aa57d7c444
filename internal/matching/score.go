// Package matching computes compatibility scores between user skill sets and posting requirements.
package matching

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/internmatch/internal/types"
)

// Per-rule score constants for a single required skill.
const (
	exactMatchScore     = 1.0
	synonymMatchScore   = 0.95
	substringMatchScore = 0.9
	similarityThreshold = 0.8
)

// Profile bonus points, each independently applicable.
const (
	technicalQualificationBonus = 5.0
	interestSectorBonus         = 3.0
	priorInternshipBonus        = 7.0
)

// Score computes a 0-100 compatibility score between a user's comma-separated
// skill text and a posting's required skills, plus profile-derived bonus
// points. A nil profile contributes no bonus. Pure function of its inputs;
// the result is rounded to one decimal place and clamped to [0, 100].
func Score(userSkillsText string, requiredSkills []string, profile *types.UserProfile) float64 {
	userSkills := splitSkills(userSkillsText)
	required := normalizeSkills(requiredSkills)
	if len(userSkills) == 0 || len(required) == 0 {
		return 0
	}

	lev := metrics.NewLevenshtein()

	total := 0.0
	for _, r := range required {
		total += scoreRequiredSkill(userSkills, r, lev)
	}
	base := total / float64(len(required)) * 100

	final := base + bonusPoints(profile)
	if final > 100 {
		final = 100
	}
	return math.Round(final*10) / 10
}

// scoreRequiredSkill returns the per-skill score in [0, 1] for one required
// skill. An exact match wins immediately; otherwise the maximum candidate
// score across all user skills and all rules is taken.
func scoreRequiredSkill(userSkills []string, r string, lev *metrics.Levenshtein) float64 {
	for _, u := range userSkills {
		if u == r {
			return exactMatchScore
		}
	}

	best := 0.0
	for _, u := range userSkills {
		candidate := 0.0

		if ratio := strutil.Similarity(u, r, lev); ratio > similarityThreshold {
			candidate = ratio
		}
		if strings.Contains(u, r) || strings.Contains(r, u) {
			if substringMatchScore > candidate {
				candidate = substringMatchScore
			}
		}
		// Synonyms are checked even after a substring hit; the rules are
		// combined with max, not short-circuited.
		if isSynonymPair(u, r) {
			if synonymMatchScore > candidate {
				candidate = synonymMatchScore
			}
		}

		if candidate > best {
			best = candidate
		}
	}
	return best
}

// bonusPoints computes the additive profile bonus.
func bonusPoints(profile *types.UserProfile) float64 {
	if profile == nil {
		return 0
	}

	bonus := 0.0
	if containsAny(profile.Qualification, technicalQualificationKeywords) {
		bonus += technicalQualificationBonus
	}
	if containsAny(profile.AreaOfInterest, interestSectorKeywords) {
		bonus += interestSectorBonus
	}
	if strings.EqualFold(strings.TrimSpace(profile.PriorInternship), types.PriorInternshipYes) {
		bonus += priorInternshipBonus
	}
	return bonus
}

// splitSkills splits comma-separated free text into normalized skill tokens.
// Empty tokens are dropped.
func splitSkills(text string) []string {
	parts := strings.Split(text, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToLower(strings.TrimSpace(p)); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// normalizeSkills lower-cases and trims each skill, dropping empties.
func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := strings.ToLower(strings.TrimSpace(s)); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}

// containsAny reports whether the lower-cased text contains any of the keywords.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
