// Package generator produces candidate internship postings from an external
// generative model. All failures are returned to the caller, which is
// expected to fall back to the static catalog; the ranking engine itself
// never sees this fallback path.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/internmatch/internal/types"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-1.5-flash"

	// maxPostings bounds how many candidates a single generation contributes.
	maxPostings = 6

	generationTemperature = 0.7
	maxOutputTokens       = 800
)

// Generator produces a candidate posting pool for a user profile.
type Generator interface {
	// Generate returns up to six candidate postings for the profile.
	Generate(ctx context.Context, profile *types.UserProfile) ([]types.Posting, error)
	// Close releases any resources held by the generator.
	Close() error
}

// GeminiGenerator implements Generator using Google Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate asks the model for candidate postings and parses its JSON output.
func (g *GeminiGenerator) Generate(ctx context.Context, profile *types.UserProfile) ([]types.Posting, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(maxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(profile)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidates: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return ParsePostings(text)
}

// Close releases resources held by the generator.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// buildPrompt builds a compact generation prompt from the profile.
// Short and focused keeps latency down for interactive requests.
func buildPrompt(profile *types.UserProfile) string {
	skills := "General"
	interest := "IT"
	qualification := "Graduate"
	if profile != nil {
		if profile.Skills != "" {
			skills = profile.Skills
		}
		if profile.AreaOfInterest != "" {
			interest = profile.AreaOfInterest
		}
		if profile.Qualification != "" {
			qualification = profile.Qualification
		}
	}

	return fmt.Sprintf(`Generate 6 internship recommendations for:
- Skills: %s
- Interest: %s
- Education: %s

JSON format: [{"company":"Name","title":"Position","category":"government|private-based","sector":"Sector","required_skills":["skill1","skill2"],"duration":"X Months","location":"City","stipend":"₹X/month","description":"Brief desc"}]

Respond with the JSON array only.`, skills, interest, qualification)
}

// extractTextFromResponse extracts text content from a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
