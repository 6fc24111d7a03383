// Package retrieval implements two-tower semantic retrieval: the job
// description and every candidate text are embedded independently, then
// ranked by cosine similarity.
package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/resume-recommender/internal/model"
)

// Candidate is one retrievable text. The ID is a caller-supplied stable
// identifier carried through every stage, so duplicate texts never collapse
// into one another.
type Candidate struct {
	ID   string
	Text string
}

// Match is a retrieved candidate with its cosine similarity to the job text.
type Match struct {
	ID         string
	Text       string
	Similarity float64
}

// Retriever ranks candidates against a query using an injected embedding
// capability.
type Retriever struct {
	embedder model.Embedder
}

// New creates a Retriever using the given embedder.
func New(embedder model.Embedder) *Retriever {
	return &Retriever{embedder: embedder}
}

// Retrieve embeds the job text and all candidates in a single batch, ranks
// by cosine similarity descending (ties keep input order), and returns at
// most topN matches. An empty candidate list yields an empty result, never
// an error; embedding failures propagate.
func (r *Retriever) Retrieve(ctx context.Context, jobText string, candidates []Candidate, topN int) ([]Match, error) {
	if len(candidates) == 0 || topN <= 0 {
		return []Match{}, nil
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, jobText)
	for _, c := range candidates {
		texts = append(texts, c.Text)
	}

	embeddings, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidates: %w", err)
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(texts))
	}

	jobEmbedding := embeddings[0]
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{
			ID:         c.ID,
			Text:       c.Text,
			Similarity: CosineSimilarity(jobEmbedding, embeddings[i+1]),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}
