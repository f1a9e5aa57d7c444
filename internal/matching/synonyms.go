// Package matching computes compatibility scores between user skill sets and posting requirements.
package matching

// skillSynonyms maps a canonical skill name to accepted variant spellings
// and closely related terms. A pair (u, r) matches when either side equals
// the canonical term and the other side is among its variants.
var skillSynonyms = map[string][]string{
	"python":           {"py", "python3", "python programming"},
	"javascript":       {"js", "node.js", "nodejs", "react", "angular", "vue"},
	"java":             {"core java", "java programming", "java se"},
	"sql":              {"mysql", "postgresql", "postgres", "database"},
	"machine learning": {"ml", "deep learning", "ai", "artificial intelligence"},
	"data analysis":    {"data analytics", "analytics", "pandas", "excel"},
	"web development":  {"web dev", "html", "css", "frontend", "backend"},
	"communication":    {"communication skills", "verbal communication", "public speaking"},
}

// technicalQualificationKeywords mark a profile's qualification text as
// technical education for the +5 bonus.
var technicalQualificationKeywords = []string{
	"engineering", "btech", "computer", "it", "technology",
}

// interestSectorKeywords mark a profile's area of interest as one of the
// recognized sectors for the +3 bonus.
var interestSectorKeywords = []string{
	"technology", "finance", "healthcare", "engineering", "management",
}

// isSynonymPair reports whether u and r form a known synonym pair.
// Both inputs must already be normalized (trimmed, lower-cased).
func isSynonymPair(u, r string) bool {
	if variants, ok := skillSynonyms[r]; ok {
		for _, v := range variants {
			if u == v {
				return true
			}
		}
	}
	if variants, ok := skillSynonyms[u]; ok {
		for _, v := range variants {
			if r == v {
				return true
			}
		}
	}
	return false
}
