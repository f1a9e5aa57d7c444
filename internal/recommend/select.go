// Package recommend assembles quota-balanced recommendation slates from scored postings.
package recommend

import (
	"sort"

	"github.com/jonathan/internmatch/internal/matching"
	"github.com/jonathan/internmatch/internal/types"
)

const (
	// maxResults caps the returned slate.
	maxResults = 5
	// categoryQuota is how many candidates each category bucket contributes
	// before overflow fills the remaining slots.
	categoryQuota = 3
	// governmentBoost is added to government postings before ranking, capped at 100.
	governmentBoost = 10.0
)

// Select scores every candidate against the profile, applies the government
// category boost, and assembles a quota-balanced top-5 slate sorted
// descending by final score. An empty candidate list yields an empty slate;
// a nil profile yields all-zero scores, so order falls back to input order.
func Select(candidates []types.Posting, profile *types.UserProfile) []types.ScoredPosting {
	if len(candidates) == 0 {
		return []types.ScoredPosting{}
	}

	userSkills := ""
	if profile != nil {
		userSkills = profile.Skills
	}

	government := make([]types.ScoredPosting, 0, len(candidates))
	other := make([]types.ScoredPosting, 0, len(candidates))
	for _, candidate := range candidates {
		score := matching.Score(userSkills, candidate.RequiredSkills, profile)
		if candidate.Category == types.CategoryGovernment {
			score += governmentBoost
			if score > 100 {
				score = 100
			}
			government = append(government, types.ScoredPosting{Posting: candidate, SkillMatchScore: score})
		} else {
			other = append(other, types.ScoredPosting{Posting: candidate, SkillMatchScore: score})
		}
	}

	// Stable sort keeps original input order on ties.
	sortByScore(government)
	sortByScore(other)

	result := make([]types.ScoredPosting, 0, maxResults)
	govTaken, otherTaken := 0, 0

	for govTaken < categoryQuota && govTaken < len(government) && len(result) < maxResults {
		result = append(result, government[govTaken])
		govTaken++
	}
	for otherTaken < categoryQuota && otherTaken < len(other) && len(result) < maxResults {
		result = append(result, other[otherTaken])
		otherTaken++
	}

	// Under-fill: government overflow first, then remaining other candidates.
	for govTaken < len(government) && len(result) < maxResults {
		result = append(result, government[govTaken])
		govTaken++
	}
	for otherTaken < len(other) && len(result) < maxResults {
		result = append(result, other[otherTaken])
		otherTaken++
	}

	// Present the merged slate in pure quality order regardless of which
	// bucket contributed each entry.
	sortByScore(result)

	return result
}

func sortByScore(postings []types.ScoredPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		return postings[i].SkillMatchScore > postings[j].SkillMatchScore
	})
}
