package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/internmatch/internal/catalog"
	"github.com/jonathan/internmatch/internal/generator"
	"github.com/jonathan/internmatch/internal/recommend"
	"github.com/jonathan/internmatch/internal/types"
)

var (
	recommendProfilePath    string
	recommendCandidatesPath string
	recommendUseAI          bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank internship postings for a profile",
	Long: `Rank a candidate pool against a user profile and print the top-5
recommendation slate as JSON. The pool comes from a candidates file, the
AI generator (--ai), or the built-in catalog, in that order of preference.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendProfilePath, "profile", "", "Path to user profile JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendCandidatesPath, "candidates", "", "Path to candidate postings JSON file")
	recommendCmd.Flags().BoolVar(&recommendUseAI, "ai", false, "Generate candidates with Gemini (requires GEMINI_API_KEY)")
	_ = recommendCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(recommendProfilePath)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(cmd, profile)
	if err != nil {
		return err
	}

	ranked := recommend.Select(candidates, profile)

	out, err := json.MarshalIndent(types.RecommendationsResponse{
		Success:         true,
		Recommendations: ranked,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

// loadCandidates resolves the candidate pool: explicit file first, then the
// AI generator, then the built-in catalog. Generation failures fall back to
// the catalog rather than aborting the run.
func loadCandidates(cmd *cobra.Command, profile *types.UserProfile) ([]types.Posting, error) {
	if recommendCandidatesPath != "" {
		data, err := os.ReadFile(recommendCandidatesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates file: %w", err)
		}
		var candidates []types.Posting
		if err := json.Unmarshal(data, &candidates); err != nil {
			return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
		}
		return candidates, nil
	}

	if recommendUseAI {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required with --ai")
		}

		gen, err := generator.NewGeminiGenerator(cmd.Context(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, err
		}
		defer func() { _ = gen.Close() }()

		generated, err := gen.Generate(cmd.Context(), profile)
		if err == nil && len(generated) > 0 {
			return generated, nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Candidate generation failed, using catalog: %v\n", err)
		}
	}

	return catalog.Candidates(profile), nil
}
