// Package recommend orchestrates the bullet recommendation pipeline:
// semantic retrieval, cross-encoder re-ranking, and priority boosting with
// matched-phrase evidence.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-recommender/internal/model"
	"github.com/jonathan/resume-recommender/internal/parsing"
	"github.com/jonathan/resume-recommender/internal/phrases"
	"github.com/jonathan/resume-recommender/internal/priorities"
	"github.com/jonathan/resume-recommender/internal/rerank"
	"github.com/jonathan/resume-recommender/internal/retrieval"
	"github.com/jonathan/resume-recommender/internal/types"
)

const (
	// similarityScale puts raw cosine similarities on a 0-100-ish scale.
	similarityScale = 100.0

	// Additive boosts for bullets containing extracted priority phrases.
	mustHaveBoost   = 20.0
	niceToHaveBoost = 10.0

	// Matched-phrase evidence: at most this many phrases per bullet, and
	// only those above the similarity floor.
	matchedPhraseLimit    = 3
	phraseSimilarityFloor = 0.1
)

// Recommender runs the full bullet pipeline against injected model
// capabilities. It holds no mutable state and is safe for concurrent use.
type Recommender struct {
	embedder model.Embedder
	scorer   model.RelevanceScorer
}

// New creates a Recommender from the given capabilities.
func New(embedder model.Embedder, scorer model.RelevanceScorer) *Recommender {
	return &Recommender{embedder: embedder, scorer: scorer}
}

// RecommendWithMatches ranks bullets against the job text, returning at most
// topN results ordered by strictly non-increasing integer score with
// matched-phrase evidence. topN <= 0 ranks the entire pool. Empty inputs
// yield an empty result; capability failures propagate as errors.
func (r *Recommender) RecommendWithMatches(ctx context.Context, bullets []types.BulletRecord, jobText string, topN int) ([]types.RankedBullet, error) {
	if len(bullets) == 0 || strings.TrimSpace(jobText) == "" {
		return []types.RankedBullet{}, nil
	}
	if topN <= 0 {
		topN = len(bullets)
	}

	// Assign stable identifiers so duplicate or identically-normalized texts
	// never lose their identity across the string-based stages.
	records := make(map[string]types.BulletRecord, len(bullets))
	candidates := make([]retrieval.Candidate, len(bullets))
	for i, b := range bullets {
		id := b.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		records[id] = b
		candidates[i] = retrieval.Candidate{ID: id, Text: parsing.NormalizeText(b.Text)}
	}

	matches, err := retrieval.New(r.embedder).Retrieve(ctx, jobText, candidates, topN)
	if err != nil {
		return nil, fmt.Errorf("retrieval stage failed: %w", err)
	}

	shortlist := make([]rerank.Scored, len(matches))
	for i, m := range matches {
		shortlist[i] = rerank.Scored{ID: m.ID, Text: m.Text, Score: m.Similarity * similarityScale}
	}

	reranked, err := rerank.Rerank(ctx, r.scorer, jobText, shortlist)
	if err != nil {
		return nil, fmt.Errorf("rerank stage failed: %w", err)
	}

	evidence, err := r.matchPhrases(ctx, jobText, reranked)
	if err != nil {
		return nil, fmt.Errorf("phrase matching failed: %w", err)
	}

	prioritySet := priorities.Extract(jobText)

	ranked := make([]types.RankedBullet, len(reranked))
	for i, s := range reranked {
		score := s.Score + priorityBoost(s.Text, prioritySet)
		ranked[i] = types.RankedBullet{
			Bullet:         records[s.ID],
			Score:          int(score),
			MatchedPhrases: evidence[s.ID],
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

// priorityBoost adds the additive score bonus for every extracted priority
// phrase literally contained in the bullet text.
func priorityBoost(normalizedText string, set types.PrioritySet) float64 {
	boost := 0.0
	for _, phrase := range set.MustHave {
		if strings.Contains(normalizedText, strings.ToLower(phrase)) {
			boost += mustHaveBoost
		}
	}
	for _, phrase := range set.NiceToHave {
		if strings.Contains(normalizedText, strings.ToLower(phrase)) {
			boost += niceToHaveBoost
		}
	}
	return boost
}

// matchPhrases records, per bullet, the top phrases from the job description
// whose embedding similarity to the bullet clears the floor. This is
// explanation material only; it never affects scores. Phrases and bullet
// texts go to the embedder in one batch.
func (r *Recommender) matchPhrases(ctx context.Context, jobText string, shortlist []rerank.Scored) (map[string][]string, error) {
	evidence := make(map[string][]string, len(shortlist))

	jobPhrases := phrases.Extract(jobText, phrases.DefaultTopK)
	if len(jobPhrases) == 0 || len(shortlist) == 0 {
		return evidence, nil
	}

	texts := make([]string, 0, len(jobPhrases)+len(shortlist))
	texts = append(texts, jobPhrases...)
	for _, s := range shortlist {
		texts = append(texts, s.Text)
	}

	embeddings, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(texts))
	}

	phraseEmbeddings := embeddings[:len(jobPhrases)]
	for i, s := range shortlist {
		bulletEmbedding := embeddings[len(jobPhrases)+i]

		type phraseSim struct {
			phrase     string
			similarity float64
		}
		sims := make([]phraseSim, len(jobPhrases))
		for j, p := range jobPhrases {
			sims[j] = phraseSim{
				phrase:     p,
				similarity: retrieval.CosineSimilarity(bulletEmbedding, phraseEmbeddings[j]),
			}
		}
		sort.SliceStable(sims, func(a, b int) bool {
			return sims[a].similarity > sims[b].similarity
		})

		var matched []string
		for _, ps := range sims {
			if len(matched) == matchedPhraseLimit {
				break
			}
			if ps.similarity > phraseSimilarityFloor {
				matched = append(matched, ps.phrase)
			}
		}
		evidence[s.ID] = matched
	}

	return evidence, nil
}
