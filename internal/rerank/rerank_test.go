package rerank

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScorer returns preset scores keyed by candidate text.
type stubScorer struct {
	scores map[string]float64
	err    error
}

func (s *stubScorer) ScorePairs(_ context.Context, _ string, candidates []string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		out[i] = s.scores[c]
	}
	return out, nil
}

func TestRerank_ReordersAndNormalizes(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{
		"weak": 0.1, "strong": 0.9, "middle": 0.5,
	}}

	out, err := Rerank(context.Background(), scorer, "job", []Scored{
		{ID: "1", Text: "weak", Score: 80},
		{ID: "2", Text: "strong", Score: 10},
		{ID: "3", Text: "middle", Score: 50},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// retrieval scores are discarded entirely
	assert.Equal(t, "2", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
	assert.Equal(t, "1", out[2].ID)

	// minimum shifted to exactly 1, spacing preserved
	assert.InDelta(t, 1.0, out[2].Score, 1e-9)
	assert.InDelta(t, 41.0, out[1].Score, 1e-9)
	assert.InDelta(t, 81.0, out[0].Score, 1e-9)
}

func TestRerank_AllScoresStrictlyPositive(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{"a": 0, "b": 0.2}}

	out, err := Rerank(context.Background(), scorer, "job", []Scored{
		{ID: "a", Text: "a"}, {ID: "b", Text: "b"},
	})
	require.NoError(t, err)
	for _, s := range out {
		assert.GreaterOrEqual(t, s.Score, 1.0)
	}
}

func TestRerank_TiesKeepInputOrder(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{"x": 0.5, "y": 0.5}}

	out, err := Rerank(context.Background(), scorer, "job", []Scored{
		{ID: "first", Text: "x"}, {ID: "second", Text: "y"},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", out[0].ID)
	assert.Equal(t, "second", out[1].ID)
}

func TestRerank_EmptyInput(t *testing.T) {
	out, err := Rerank(context.Background(), &stubScorer{}, "job", nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRerank_ScorerErrorPropagates(t *testing.T) {
	scorer := &stubScorer{err: errors.New("model unavailable")}

	_, err := Rerank(context.Background(), scorer, "job", []Scored{{ID: "1", Text: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}
