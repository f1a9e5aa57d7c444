package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internmatch/internal/types"
)

// Profile whose skills produce predictable match scores:
// ["python"] -> 100, ["python","java"] -> 50, ["java"] -> 0.
var testProfile = &types.UserProfile{Skills: "python, sql"}

func posting(company, category string, skills ...string) types.Posting {
	return types.Posting{
		Company:        company,
		Title:          "Intern",
		Category:       category,
		Sector:         "Testing",
		RequiredSkills: skills,
	}
}

func TestSelect_EmptyCandidates(t *testing.T) {
	assert.Empty(t, Select(nil, testProfile))
	assert.Empty(t, Select([]types.Posting{}, testProfile))
}

func TestSelect_QuotaBalance(t *testing.T) {
	candidates := []types.Posting{
		posting("GovA", types.CategoryGovernment, "python"),
		posting("GovB", types.CategoryGovernment, "python", "java"),
		posting("GovC", types.CategoryGovernment, "java"),
		posting("PrivA", types.CategoryPrivate, "python"),
		posting("PrivB", types.CategoryPrivate, "python", "java"),
		posting("PrivC", types.CategoryPrivate, "java"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 5)

	gov, other := 0, 0
	for _, r := range result {
		if r.Category == types.CategoryGovernment {
			gov++
		} else {
			other++
		}
	}
	assert.GreaterOrEqual(t, gov, 2)
	assert.GreaterOrEqual(t, other, 2)
}

func TestSelect_SortedDescending(t *testing.T) {
	candidates := []types.Posting{
		posting("GovA", types.CategoryGovernment, "java"),
		posting("PrivA", types.CategoryPrivate, "python"),
		posting("GovB", types.CategoryGovernment, "python"),
		posting("PrivB", types.CategoryPrivate, "python", "java"),
	}

	result := Select(candidates, testProfile)
	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].SkillMatchScore, result[i].SkillMatchScore)
	}
}

func TestSelect_GovernmentBoost(t *testing.T) {
	candidates := []types.Posting{
		posting("Gov", types.CategoryGovernment, "python", "java"),
		posting("Priv", types.CategoryPrivate, "python", "java"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 2)

	// Both match at 50; the government posting gets +10 and ranks first
	assert.Equal(t, "Gov", result[0].Company)
	assert.Equal(t, 60.0, result[0].SkillMatchScore)
	assert.Equal(t, "Priv", result[1].Company)
	assert.Equal(t, 50.0, result[1].SkillMatchScore)
}

func TestSelect_BoostCappedAt100(t *testing.T) {
	candidates := []types.Posting{
		posting("Gov", types.CategoryGovernment, "python"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 1)
	assert.Equal(t, 100.0, result[0].SkillMatchScore)
}

func TestSelect_GovernmentOverflowBeforeOther(t *testing.T) {
	// Five government candidates and one other: quota takes 3 gov + 1 other,
	// then government overflow fills the remaining slot.
	candidates := []types.Posting{
		posting("Gov1", types.CategoryGovernment, "python"),
		posting("Gov2", types.CategoryGovernment, "python"),
		posting("Gov3", types.CategoryGovernment, "python"),
		posting("Gov4", types.CategoryGovernment, "python", "java"),
		posting("Gov5", types.CategoryGovernment, "java"),
		posting("Priv1", types.CategoryPrivate, "python"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 5)

	gov := 0
	for _, r := range result {
		if r.Category == types.CategoryGovernment {
			gov++
		}
	}
	assert.Equal(t, 4, gov)
}

func TestSelect_UnderFill(t *testing.T) {
	// Fewer than five candidates total: the slate under-fills rather than
	// inventing entries.
	candidates := []types.Posting{
		posting("Gov1", types.CategoryGovernment, "python"),
		posting("Priv1", types.CategoryPrivate, "python"),
		posting("Priv2", types.CategoryPrivate, "java"),
	}

	result := Select(candidates, testProfile)
	assert.Len(t, result, 3)
}

func TestSelect_TruncatesToFive(t *testing.T) {
	candidates := make([]types.Posting, 0, 12)
	for i := 0; i < 6; i++ {
		candidates = append(candidates, posting("Gov", types.CategoryGovernment, "python"))
		candidates = append(candidates, posting("Priv", types.CategoryPrivate, "python"))
	}

	result := Select(candidates, testProfile)
	assert.Len(t, result, 5)
}

func TestSelect_NilProfile(t *testing.T) {
	candidates := []types.Posting{
		posting("Priv1", types.CategoryPrivate, "python"),
		posting("Gov1", types.CategoryGovernment, "python"),
		posting("Priv2", types.CategoryPrivate, "sql"),
	}

	result := Select(candidates, nil)
	require.Len(t, result, 3)

	// Without a profile every match score is zero except the category boost
	for _, r := range result {
		if r.Category == types.CategoryGovernment {
			assert.Equal(t, 10.0, r.SkillMatchScore)
		} else {
			assert.Equal(t, 0.0, r.SkillMatchScore)
		}
	}
	assert.Equal(t, "Gov1", result[0].Company)
}

func TestSelect_MissingRequiredSkillsScoresZero(t *testing.T) {
	// A malformed entry degrades to score 0 instead of failing the call
	candidates := []types.Posting{
		{Company: "Broken", Category: types.CategoryPrivate},
		posting("Priv1", types.CategoryPrivate, "python"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 2)
	assert.Equal(t, "Priv1", result[0].Company)
	assert.Equal(t, 0.0, result[1].SkillMatchScore)
}

func TestSelect_Idempotent(t *testing.T) {
	candidates := []types.Posting{
		posting("Gov1", types.CategoryGovernment, "python"),
		posting("Gov2", types.CategoryGovernment, "python", "java"),
		posting("Priv1", types.CategoryPrivate, "python"),
		posting("Priv2", types.CategoryPrivate, "sql"),
		posting("Priv3", types.CategoryPrivate, "java"),
	}

	first := Select(candidates, testProfile)
	second := Select(candidates, testProfile)
	assert.Equal(t, first, second)
}

func TestSelect_StableTieBreakByInputOrder(t *testing.T) {
	candidates := []types.Posting{
		posting("PrivA", types.CategoryPrivate, "python"),
		posting("PrivB", types.CategoryPrivate, "python"),
		posting("PrivC", types.CategoryPrivate, "python"),
	}

	result := Select(candidates, testProfile)
	require.Len(t, result, 3)
	assert.Equal(t, "PrivA", result[0].Company)
	assert.Equal(t, "PrivB", result[1].Company)
	assert.Equal(t, "PrivC", result[2].Company)
}
