// Package rerank refines a retrieval shortlist with pairwise relevance
// scores from an injected cross-encoder-style capability.
package rerank

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/resume-recommender/internal/model"
)

// scoreScale puts the 0-1 pairwise scores on the same 0-100-ish scale the
// retrieval stage uses.
const scoreScale = 100.0

// Scored is one candidate with its working score. IDs are the stable
// identifiers assigned before retrieval.
type Scored struct {
	ID    string
	Text  string
	Score float64
}

// Rerank replaces every candidate's score with a scaled pairwise relevance
// score, sorts descending (ties keep input order), and shifts all scores so
// the minimum is exactly 1. The positive baseline matters downstream:
// priority boosts are additive and presentation layers assume non-negative
// scores. Empty input yields empty output without touching the scorer.
func Rerank(ctx context.Context, scorer model.RelevanceScorer, jobText string, in []Scored) ([]Scored, error) {
	if len(in) == 0 {
		return []Scored{}, nil
	}

	texts := make([]string, len(in))
	for i, s := range in {
		texts[i] = s.Text
	}

	scores, err := scorer.ScorePairs(ctx, jobText, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to rerank candidates: %w", err)
	}
	if len(scores) != len(in) {
		return nil, fmt.Errorf("rerank score count mismatch: got %d, want %d", len(scores), len(in))
	}

	out := make([]Scored, len(in))
	for i, s := range in {
		out[i] = Scored{ID: s.ID, Text: s.Text, Score: scores[i] * scoreScale}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	// Shift so the minimum score becomes exactly 1.
	minScore := out[len(out)-1].Score
	for i := range out {
		out[i].Score = out[i].Score - minScore + 1
	}

	return out, nil
}
