package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/resume-recommender/internal/config"
	"github.com/jonathan/resume-recommender/internal/llm"
	"github.com/jonathan/resume-recommender/internal/loading"
	"github.com/jonathan/resume-recommender/internal/model"
	"github.com/jonathan/resume-recommender/internal/observability"
	"github.com/jonathan/resume-recommender/internal/recommend"
	"github.com/jonathan/resume-recommender/internal/schemas"
	"github.com/jonathan/resume-recommender/internal/types"
	"github.com/spf13/cobra"
)

var recommendBulletsCmd = &cobra.Command{
	Use:   "recommend-bullets",
	Short: "Rank resume bullets against a job description",
	Long:  "Ranks pre-written resume bullets per role against a job description using embedding retrieval, LLM re-ranking, and priority phrase boosting, producing a RankedBullets JSON.",
	RunE:  runRecommendBullets,
}

var (
	recBulletsJob      string
	recBulletsJobURL   string
	recBulletsPool     string
	recBulletsRole     string
	recBulletsTopN     int
	recBulletsOutput   string
	recBulletsAPIKey   string
	recBulletsEmbModel string
	recBulletsJudge    string
	recBulletsConfig   string
	recBulletsVerbose  bool
)

func init() {
	recommendBulletsCmd.Flags().StringVarP(&recBulletsJob, "job", "j", "", "Path to job description text file")
	recommendBulletsCmd.Flags().StringVarP(&recBulletsJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	recommendBulletsCmd.Flags().StringVarP(&recBulletsPool, "bullets", "b", "", "Path to bullet pool JSON file (required)")
	recommendBulletsCmd.Flags().StringVarP(&recBulletsRole, "role", "r", "", "Only rank bullets for this role")
	recommendBulletsCmd.Flags().IntVarP(&recBulletsTopN, "top-n", "n", 0, "Bullets returned per role (0 ranks the whole pool)")
	recommendBulletsCmd.Flags().StringVarP(&recBulletsOutput, "out", "o", "", "Path to output RankedBullets JSON file (stdout if omitted)")
	recommendBulletsCmd.Flags().StringVar(&recBulletsAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	recommendBulletsCmd.Flags().StringVar(&recBulletsEmbModel, "embedding-model", "", "Gemini embedding model name")
	recommendBulletsCmd.Flags().StringVar(&recBulletsJudge, "judge-model", "", "Gemini relevance judge model name")
	recommendBulletsCmd.Flags().StringVarP(&recBulletsConfig, "config", "c", "", "Path to JSON config file with flag defaults")
	recommendBulletsCmd.Flags().BoolVarP(&recBulletsVerbose, "verbose", "v", false, "Print ranked bullets to stderr")

	if err := recommendBulletsCmd.MarkFlagRequired("bullets"); err != nil {
		panic(fmt.Sprintf("failed to mark bullets flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendBulletsCmd)
}

func runRecommendBullets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigDefaults(recBulletsConfig, config.Config{
		Job:            recBulletsJob,
		JobURL:         recBulletsJobURL,
		Bullets:        recBulletsPool,
		TopN:           recBulletsTopN,
		APIKey:         recBulletsAPIKey,
		EmbeddingModel: recBulletsEmbModel,
		JudgeModel:     recBulletsJudge,
	})
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	pool, err := loading.LoadBulletPool(cfg.Bullets)
	if err != nil {
		return fmt.Errorf("failed to load bullet pool: %w", err)
	}

	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return err
	}

	embedder, err := model.NewGeminiEmbedder(ctx, apiKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	judgeClient, err := llm.NewGeminiClient(ctx, apiKey, cfg.JudgeModel)
	if err != nil {
		return fmt.Errorf("failed to create judge client: %w", err)
	}
	defer func() { _ = judgeClient.Close() }()

	recommender := recommend.New(embedder, llm.NewRelevanceJudge(judgeClient))

	roles := make([]string, 0, len(pool.Roles))
	for role := range pool.Roles {
		if recBulletsRole != "" && role != recBulletsRole {
			continue
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return fmt.Errorf("role %q not found in bullet pool", recBulletsRole)
	}
	sort.Strings(roles)

	results := make([]types.RankedBullets, 0, len(roles))
	for _, role := range roles {
		ranked, err := recommender.RecommendWithMatches(ctx, pool.Roles[role], jobText, cfg.TopN)
		if err != nil {
			return fmt.Errorf("failed to rank bullets for role %q: %w", role, err)
		}
		results = append(results, types.RankedBullets{Role: role, Ranked: ranked})
	}

	if recBulletsVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, result := range results {
			printer.PrintRankedBullets(result)
		}
	}

	if err := writeJSONOutput(recBulletsOutput, results); err != nil {
		return err
	}

	// Validate output against schema (optional - non-fatal)
	if recBulletsOutput != "" {
		if schemaPath := schemas.ResolveSchemaPath("schemas/ranked_bullets.schema.json"); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, recBulletsOutput); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked bullets for %d roles to %s\n", len(results), recBulletsOutput)
	}

	return nil
}
