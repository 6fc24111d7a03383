package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-recommender/internal/config"
	"github.com/jonathan/resume-recommender/internal/fetch"
)

// resolveJobText loads the job description from a text file or a URL.
// Exactly one of the two must be provided.
func resolveJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		content, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", jobFile, err)
		}
		text := string(content)
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("job file %s is empty", jobFile)
		}
		return text, nil
	}

	text, err := fetch.JobPostingText(ctx, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// resolveAPIKey returns the flag value when set, otherwise the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(flagValue string) (string, error) {
	apiKey := flagValue
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}

// loadConfigDefaults loads a config file when a path is given and returns
// it merged over the supplied flag values.
func loadConfigDefaults(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return flags, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return flags, err
	}
	return merged, nil
}

// writeJSONOutput marshals v with indentation and writes it to outPath,
// creating parent directories as needed. An empty outPath writes to stdout.
func writeJSONOutput(outPath string, v interface{}) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if outPath == "" {
		fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}
