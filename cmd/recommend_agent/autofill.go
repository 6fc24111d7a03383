package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-recommender/internal/observability"
	"github.com/jonathan/resume-recommender/internal/selection"
	"github.com/jonathan/resume-recommender/internal/types"
	"github.com/spf13/cobra"
)

var autofillCmd = &cobra.Command{
	Use:   "autofill",
	Short: "Fill a resume plan from ranked bullets under line budgets",
	Long:  "Greedily selects top-ranked bullets per role from a RankedBullets JSON while respecting a per-role bullet cap and a total line budget, producing a resume plan.",
	RunE:  runAutofill,
}

var (
	autofillRanked     string
	autofillMaxBullets int
	autofillMaxLines   int
	autofillOutput     string
	autofillVerbose    bool
)

func init() {
	autofillCmd.Flags().StringVarP(&autofillRanked, "ranked", "r", "", "Path to RankedBullets JSON file from recommend-bullets (required)")
	autofillCmd.Flags().IntVar(&autofillMaxBullets, "max-bullets", 0, "Maximum bullets per role")
	autofillCmd.Flags().IntVar(&autofillMaxLines, "max-lines", 0, "Total line budget (0 for unlimited)")
	autofillCmd.Flags().StringVarP(&autofillOutput, "out", "o", "", "Path to output plan JSON file (stdout if omitted)")
	autofillCmd.Flags().BoolVarP(&autofillVerbose, "verbose", "v", false, "Print the plan to stderr")

	if err := autofillCmd.MarkFlagRequired("ranked"); err != nil {
		panic(fmt.Sprintf("failed to mark ranked flag as required: %v", err))
	}

	rootCmd.AddCommand(autofillCmd)
}

func runAutofill(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(autofillRanked)
	if err != nil {
		return fmt.Errorf("failed to read ranked bullets file %s: %w", autofillRanked, err)
	}

	var ranked []types.RankedBullets
	if err := json.Unmarshal(content, &ranked); err != nil {
		return fmt.Errorf("failed to unmarshal ranked bullets JSON: %w", err)
	}

	plan, err := selection.Autofill(ranked, autofillMaxBullets, autofillMaxLines)
	if err != nil {
		return fmt.Errorf("failed to fill plan: %w", err)
	}

	if autofillVerbose {
		observability.NewPrinter(os.Stderr).PrintPlan(plan)
	}

	return writeJSONOutput(autofillOutput, plan)
}
