package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-recommender/internal/config"
	"github.com/jonathan/resume-recommender/internal/formatting"
	"github.com/jonathan/resume-recommender/internal/loading"
	"github.com/jonathan/resume-recommender/internal/observability"
	"github.com/jonathan/resume-recommender/internal/schemas"
	"github.com/jonathan/resume-recommender/internal/skills"
	"github.com/jonathan/resume-recommender/internal/types"
	"github.com/spf13/cobra"
)

// defaultNumCategories is how many skill categories are recommended when the
// caller does not override it.
const defaultNumCategories = 4

var recommendSkillsCmd = &cobra.Command{
	Use:   "recommend-skills",
	Short: "Recommend skill categories for a job description",
	Long:  "Scores taxonomy skills against a job description lexically, selects diverse top categories, and emits formatted skill lines that fit the template's character budget.",
	RunE:  runRecommendSkills,
}

var (
	recSkillsJob       string
	recSkillsJobURL    string
	recSkillsTaxonomy  string
	recSkillsNumCats   int
	recSkillsCharLimit int
	recSkillsOutput    string
	recSkillsConfig    string
	recSkillsVerbose   bool
)

func init() {
	recommendSkillsCmd.Flags().StringVarP(&recSkillsJob, "job", "j", "", "Path to job description text file")
	recommendSkillsCmd.Flags().StringVarP(&recSkillsJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	recommendSkillsCmd.Flags().StringVarP(&recSkillsTaxonomy, "taxonomy", "t", "", "Path to skill taxonomy JSON file (required)")
	recommendSkillsCmd.Flags().IntVarP(&recSkillsNumCats, "num-categories", "n", 0, "Number of skill categories to recommend")
	recommendSkillsCmd.Flags().IntVar(&recSkillsCharLimit, "char-limit", 0, "Character budget per formatted skill line")
	recommendSkillsCmd.Flags().StringVarP(&recSkillsOutput, "out", "o", "", "Path to output SkillRecommendations JSON file (stdout if omitted)")
	recommendSkillsCmd.Flags().StringVarP(&recSkillsConfig, "config", "c", "", "Path to JSON config file with flag defaults")
	recommendSkillsCmd.Flags().BoolVarP(&recSkillsVerbose, "verbose", "v", false, "Print formatted skill lines to stderr")

	if err := recommendSkillsCmd.MarkFlagRequired("taxonomy"); err != nil {
		panic(fmt.Sprintf("failed to mark taxonomy flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendSkillsCmd)
}

func runRecommendSkills(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigDefaults(recSkillsConfig, config.Config{
		Job:            recSkillsJob,
		JobURL:         recSkillsJobURL,
		Taxonomy:       recSkillsTaxonomy,
		NumCategories:  recSkillsNumCats,
		SkillCharLimit: recSkillsCharLimit,
	})
	if err != nil {
		return err
	}
	if cfg.NumCategories == 0 {
		cfg.NumCategories = defaultNumCategories
	}
	if cfg.SkillCharLimit == 0 {
		cfg.SkillCharLimit = formatting.DefaultLimit
	}

	jobText, err := resolveJobText(ctx, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	taxonomy, err := loading.LoadSkillTaxonomy(cfg.Taxonomy)
	if err != nil {
		return fmt.Errorf("failed to load skill taxonomy: %w", err)
	}

	recommender := skills.NewRecommender(taxonomy)
	categories := recommender.RecommendSkills(jobText, cfg.NumCategories)
	recs := types.SkillRecommendations{Categories: categories}

	if recSkillsVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillGroups(recs, cfg.SkillCharLimit)
	}

	if err := writeJSONOutput(recSkillsOutput, recs); err != nil {
		return err
	}

	if recSkillsOutput != "" {
		if schemaPath := schemas.ResolveSchemaPath("schemas/skill_recommendations.schema.json"); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, recSkillsOutput); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully recommended %d skill categories to %s\n", len(categories), recSkillsOutput)
	}

	return nil
}
