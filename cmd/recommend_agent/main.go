// Package main implements the recommend_agent CLI for job-tailored bullet
// and skill recommendations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recommend_agent",
	Short: "Resume bullet and skill recommendation engine",
	Long:  "Recommend Agent ranks pre-written resume bullets and skill categories against a job description using semantic retrieval, LLM re-ranking, and lexical scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
