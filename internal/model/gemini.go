package model

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

const (
	// DefaultEmbeddingModel is the Gemini embedding model used when none is
	// configured.
	DefaultEmbeddingModel = "text-embedding-004"

	// embedBatchSize caps how many texts go into one BatchEmbedContents call.
	embedBatchSize = 100

	// embedConcurrency bounds in-flight batch requests for large pools.
	embedConcurrency = 4
)

// GeminiEmbedder implements Embedder using the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder bound to the given embedding model.
// An empty model name selects DefaultEmbeddingModel.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// EmbedTexts embeds all texts, batching requests and preserving input order.
func (e *GeminiEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	embeddings := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)

	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))
		start, end := start, end

		g.Go(func() error {
			em := e.client.EmbeddingModel(e.model)
			batch := em.NewBatch()
			for _, text := range texts[start:end] {
				batch = batch.AddContent(genai.Text(text))
			}

			resp, err := em.BatchEmbedContents(gctx, batch)
			if err != nil {
				return fmt.Errorf("failed to embed batch [%d:%d]: %w", start, end, err)
			}
			if len(resp.Embeddings) != end-start {
				return fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), end-start)
			}

			for i, emb := range resp.Embeddings {
				if emb == nil {
					return fmt.Errorf("nil embedding at index %d", start+i)
				}
				embeddings[start+i] = emb.Values
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return embeddings, nil
}

// Close releases the underlying Gemini client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
