// Package model defines the external model capabilities the recommendation
// engine depends on, plus production implementations backed by Gemini. The
// engine never owns model lifecycle: hosts construct these once and pass them
// in.
package model

import "context"

// Embedder produces vector embeddings for a batch of texts. Implementations
// must return one embedding per input text, in input order. Batch and
// one-at-a-time calls must rank identically; batching is purely a
// performance concern.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// RelevanceScorer computes pairwise (query, candidate) relevance scores in
// the manner of a cross-encoder. Implementations return one score per
// candidate, in candidate order, on a roughly 0-1 scale.
type RelevanceScorer interface {
	ScorePairs(ctx context.Context, query string, candidates []string) ([]float64, error)
}
