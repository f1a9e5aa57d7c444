package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/internmatch/internal/types"
)

// postingsSchema validates the shape of generated posting arrays before they
// enter the ranking path. required_skills is deliberately not required here:
// a malformed entry scores 0 downstream instead of failing the whole pool.
const postingsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["company", "title", "category"],
		"properties": {
			"company": {"type": "string", "minLength": 1},
			"title": {"type": "string", "minLength": 1},
			"category": {"type": "string", "minLength": 1},
			"sector": {"type": "string"},
			"required_skills": {"type": "array", "items": {"type": "string"}},
			"duration": {"type": "string"},
			"location": {"type": "string"},
			"stipend": {"type": "string"},
			"description": {"type": "string"}
		}
	}
}`

// ParsePostings parses a model response into postings. It tolerates markdown
// code fences and surrounding prose, validates the payload against the
// postings schema, and keeps at most six entries.
func ParsePostings(text string) ([]types.Posting, error) {
	raw, err := extractJSONArray(cleanJSONBlock(text))
	if err != nil {
		return nil, err
	}

	if err := validatePostingsJSON(raw); err != nil {
		return nil, err
	}

	var postings []types.Posting
	if err := json.Unmarshal([]byte(raw), &postings); err != nil {
		return nil, fmt.Errorf("failed to parse postings JSON: %w", err)
	}

	if len(postings) > maxPostings {
		postings = postings[:maxPostings]
	}
	return postings, nil
}

// validatePostingsJSON validates the raw array against the postings schema.
func validatePostingsJSON(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(postingsSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to validate postings: %w", err)
	}

	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("generated postings failed validation:")
		for _, desc := range result.Errors() {
			sb.WriteString(fmt.Sprintf(" %s: %s;", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("%s", sb.String())
	}
	return nil
}

// extractJSONArray returns the outermost JSON array in the text.
// Models often wrap the payload in prose even when asked not to.
func extractJSONArray(text string) (string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return text[start : end+1], nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
