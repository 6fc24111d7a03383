package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-recommender/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutofillCommand_MissingRankedFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "autofill",
		"--max-lines", "45")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAutofillCommand_ProducesPlan(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	rankedFile := filepath.Join(tmpDir, "ranked.json")
	outputFile := filepath.Join(tmpDir, "plan.json")

	ranked := `[
		{
			"role": "backend",
			"ranked": [
				{"bullet": {"id": "b1", "bullet": "Built a payments API", "lines": 2}, "score": 81, "matched_phrases": []},
				{"bullet": {"id": "b2", "bullet": "Cut deploy time in half", "lines": 1}, "score": 41, "matched_phrases": []}
			]
		}
	]`
	require.NoError(t, os.WriteFile(rankedFile, []byte(ranked), 0644))

	cmd := exec.Command(binaryPath, "autofill",
		"--ranked", rankedFile,
		"--max-bullets", "2",
		"--max-lines", "45",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var plan selection.Plan
	require.NoError(t, json.Unmarshal(data, &plan))
	require.Len(t, plan.Roles, 1)
	assert.Equal(t, "backend", plan.Roles[0].Role)
	assert.Equal(t, 3, plan.TotalLines)
}

func TestAutofillCommand_InvalidJSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	rankedFile := filepath.Join(tmpDir, "ranked.json")

	require.NoError(t, os.WriteFile(rankedFile, []byte(`{ not json `), 0644))

	cmd := exec.Command(binaryPath, "autofill", "--ranked", rankedFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unmarshal")
}
