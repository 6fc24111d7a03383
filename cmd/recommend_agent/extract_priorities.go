package main

import (
	"os"

	"github.com/jonathan/resume-recommender/internal/observability"
	"github.com/jonathan/resume-recommender/internal/priorities"
	"github.com/spf13/cobra"
)

var extractPrioritiesCmd = &cobra.Command{
	Use:   "extract-priorities",
	Short: "Extract must-have and nice-to-have phrases from a job description",
	Long:  "Segments a job description, detects requirement section headers, and extracts the prioritized phrases used for score boosting, producing a PrioritySet JSON.",
	RunE:  runExtractPriorities,
}

var (
	extractJob     string
	extractJobURL  string
	extractOutput  string
	extractVerbose bool
)

func init() {
	extractPrioritiesCmd.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job description text file")
	extractPrioritiesCmd.Flags().StringVarP(&extractJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	extractPrioritiesCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output PrioritySet JSON file (stdout if omitted)")
	extractPrioritiesCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print extracted priorities to stderr")

	rootCmd.AddCommand(extractPrioritiesCmd)
}

func runExtractPriorities(cmd *cobra.Command, _ []string) error {
	jobText, err := resolveJobText(cmd.Context(), extractJob, extractJobURL)
	if err != nil {
		return err
	}

	prioritySet := priorities.Extract(jobText)

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintPrioritySet(prioritySet)
	}

	return writeJSONOutput(extractOutput, prioritySet)
}
