package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response without touching the network.
type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestRelevanceJudge_ScorePairs(t *testing.T) {
	stub := &stubClient{response: "[0.9, 0.2, 0.5]"}
	judge := NewRelevanceJudge(stub)

	scores, err := judge.ScorePairs(context.Background(), "Go backend role", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.2, 0.5}, scores)
	assert.Contains(t, stub.prompt, "Go backend role")
	assert.Contains(t, stub.prompt, "exactly 3 values")
}

func TestRelevanceJudge_EmptyCandidates(t *testing.T) {
	judge := NewRelevanceJudge(&stubClient{})

	scores, err := judge.ScorePairs(context.Background(), "query", nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestRelevanceJudge_CountMismatch(t *testing.T) {
	judge := NewRelevanceJudge(&stubClient{response: "[0.9]"})

	_, err := judge.ScorePairs(context.Background(), "query", []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count mismatch")
}

func TestRelevanceJudge_OutOfRangeScore(t *testing.T) {
	judge := NewRelevanceJudge(&stubClient{response: "[1.5]"})

	_, err := judge.ScorePairs(context.Background(), "query", []string{"a"})
	assert.Error(t, err)
}

func TestRelevanceJudge_ClientErrorPropagates(t *testing.T) {
	judge := NewRelevanceJudge(&stubClient{err: errors.New("backend unavailable")})

	_, err := judge.ScorePairs(context.Background(), "query", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `[0.1]`, CleanJSONBlock("```json\n[0.1]\n```"))
	assert.Equal(t, `[0.1]`, CleanJSONBlock("[0.1]"))
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```\n{\"a\": 1}\n```"))
}
