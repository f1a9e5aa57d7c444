package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/internmatch/internal/types"
)

func TestScore_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Score("", []string{"python"}, nil))
	assert.Equal(t, 0.0, Score("python, sql", nil, nil))
	assert.Equal(t, 0.0, Score("python, sql", []string{}, nil))
	assert.Equal(t, 0.0, Score("", nil, nil))
}

func TestScore_WhitespaceOnlyInputs(t *testing.T) {
	// Normalization drops empty tokens, leaving nothing to match
	assert.Equal(t, 0.0, Score(" , , ", []string{"python"}, nil))
	assert.Equal(t, 0.0, Score("python", []string{"", "  "}, nil))
}

func TestScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 100.0, Score("python, sql", []string{"python"}, nil))
}

func TestScore_ExactMatchNormalized(t *testing.T) {
	// Case and surrounding whitespace must not affect matching
	assert.Equal(t, 100.0, Score("  PYTHON , sql ", []string{" Python "}, nil))
}

func TestScore_SynonymMatch(t *testing.T) {
	assert.Equal(t, 95.0, Score("js", []string{"javascript"}, nil))
	assert.Equal(t, 95.0, Score("javascript", []string{"react"}, nil))
	assert.Equal(t, 95.0, Score("ml", []string{"machine learning"}, nil))
}

func TestScore_SubstringMatch(t *testing.T) {
	// "python programming" is also a synonym variant of python, so the
	// max-of-rules logic lands on 0.95 rather than the 0.9 substring score.
	assert.GreaterOrEqual(t, Score("python programming", []string{"python"}, nil), 90.0)

	// Pure substring containment without a synonym entry
	assert.Equal(t, 90.0, Score("advanced golang", []string{"golang"}, nil))
}

func TestScore_FuzzyMatch(t *testing.T) {
	// One edit away: similarity 1 - 1/11 ≈ 0.909, above the 0.8 threshold
	score := Score("javascripts", []string{"javascript"}, nil)
	assert.InDelta(t, 90.9, score, 0.05)
}

func TestScore_FuzzyBelowThresholdContributesZero(t *testing.T) {
	assert.Equal(t, 0.0, Score("cooking", []string{"python"}, nil))
}

func TestScore_MultipleRequiredSkills(t *testing.T) {
	// One exact match out of two required skills
	assert.Equal(t, 50.0, Score("python", []string{"python", "java"}, nil))
}

func TestScore_QualificationBonus(t *testing.T) {
	profile := &types.UserProfile{Qualification: "BTech in Computer Science"}
	// 50 base + 5 qualification bonus
	assert.Equal(t, 55.0, Score("python", []string{"python", "java"}, profile))
}

func TestScore_InterestBonus(t *testing.T) {
	profile := &types.UserProfile{AreaOfInterest: "Finance"}
	assert.Equal(t, 53.0, Score("python", []string{"python", "java"}, profile))
}

func TestScore_PriorInternshipBonus(t *testing.T) {
	profile := &types.UserProfile{PriorInternship: "yes"}
	assert.Equal(t, 57.0, Score("python", []string{"python", "java"}, profile))

	profile.PriorInternship = "no"
	assert.Equal(t, 50.0, Score("python", []string{"python", "java"}, profile))
}

func TestScore_AllBonusesStack(t *testing.T) {
	profile := &types.UserProfile{
		Qualification:   "BTech",
		AreaOfInterest:  "Technology",
		PriorInternship: "yes",
	}
	// 50 base + 5 + 3 + 7
	assert.Equal(t, 65.0, Score("python", []string{"python", "java"}, profile))
}

func TestScore_ClampedAt100(t *testing.T) {
	profile := &types.UserProfile{
		Qualification:   "BTech",
		AreaOfInterest:  "Technology",
		PriorInternship: "yes",
	}
	assert.Equal(t, 100.0, Score("python, sql", []string{"python", "sql"}, profile))
}

func TestScore_BonusMonotonicity(t *testing.T) {
	user := "python, communication"
	required := []string{"python", "java", "communication"}

	base := Score(user, required, nil)
	withQual := Score(user, required, &types.UserProfile{Qualification: "Engineering"})
	withAll := Score(user, required, &types.UserProfile{
		Qualification:   "Engineering",
		AreaOfInterest:  "Healthcare",
		PriorInternship: "yes",
	})

	assert.GreaterOrEqual(t, withQual, base)
	assert.GreaterOrEqual(t, withAll, withQual)
	assert.LessOrEqual(t, withAll, 100.0)
}

func TestScore_AlwaysInRange(t *testing.T) {
	profiles := []*types.UserProfile{
		nil,
		{},
		{Qualification: "BTech", AreaOfInterest: "Technology", PriorInternship: "yes"},
	}
	userSkills := []string{"", "python", "python, sql, js, ml, excel", "nonsense, gibberish"}
	required := [][]string{nil, {}, {"python"}, {"java", "sql"}, {"machine learning", "communication", "cad"}}

	for _, p := range profiles {
		for _, u := range userSkills {
			for _, r := range required {
				score := Score(u, r, p)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	profile := &types.UserProfile{Qualification: "BTech", PriorInternship: "yes"}
	first := Score("python, js", []string{"python", "javascript", "sql"}, profile)
	second := Score("python, js", []string{"python", "javascript", "sql"}, profile)
	assert.Equal(t, first, second)
}
