package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RelevanceJudge scores (query, candidate) pairs with a generative model in
// the manner of a cross-encoder. It satisfies the engine's RelevanceScorer
// port.
type RelevanceJudge struct {
	client Client
}

// NewRelevanceJudge creates a judge backed by the given client.
func NewRelevanceJudge(client Client) *RelevanceJudge {
	return &RelevanceJudge{client: client}
}

// ScorePairs returns one relevance score per candidate, in candidate order,
// on a 0-1 scale. A malformed or miscounted model response is an error; the
// caller decides whether to retry the whole recommendation call.
func (j *RelevanceJudge) ScorePairs(ctx context.Context, query string, candidates []string) ([]float64, error) {
	if len(candidates) == 0 {
		return []float64{}, nil
	}

	raw, err := j.client.GenerateJSON(ctx, buildRelevancePrompt(query, candidates))
	if err != nil {
		return nil, fmt.Errorf("relevance judging failed: %w", err)
	}

	var scores []float64
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, fmt.Errorf("failed to parse relevance scores: %w", err)
	}
	if len(scores) != len(candidates) {
		return nil, fmt.Errorf("relevance score count mismatch: got %d, want %d", len(scores), len(candidates))
	}

	for i, s := range scores {
		if s < 0 || s > 1 {
			return nil, fmt.Errorf("relevance score %d out of range: %f", i, s)
		}
	}

	return scores, nil
}

// buildRelevancePrompt constructs the pairwise scoring prompt.
func buildRelevancePrompt(query string, candidates []string) string {
	var sb strings.Builder

	sb.WriteString("You are a relevance judge for resume content. ")
	sb.WriteString("Given a job description and a numbered list of resume statements, ")
	sb.WriteString("score how relevant each statement is to the job on a 0.0-1.0 scale.\n\n")
	sb.WriteString("Job description:\n")
	sb.WriteString(query)
	sb.WriteString("\n\nStatements:\n")
	for i, candidate := range candidates {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidate))
	}
	sb.WriteString("\nReturn ONLY a JSON array of numbers, one score per statement, in order. ")
	sb.WriteString(fmt.Sprintf("The array must contain exactly %d values.", len(candidates)))

	return sb.String()
}
