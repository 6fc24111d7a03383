package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrioritiesCommand_NoInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-priorities")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --job or --job-url")
}

func TestExtractPrioritiesCommand_FromFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	jobFile := filepath.Join(tmpDir, "job.txt")
	outputFile := filepath.Join(tmpDir, "priorities.json")

	job := "Must have: Python experience. Nice to have: Docker knowledge."
	require.NoError(t, os.WriteFile(jobFile, []byte(job), 0644))

	cmd := exec.Command(binaryPath, "extract-priorities",
		"--job", jobFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var priorities types.PrioritySet
	require.NoError(t, json.Unmarshal(data, &priorities))
	assert.Equal(t, []string{"Python experience"}, priorities.MustHave)
	assert.Equal(t, []string{"Docker knowledge"}, priorities.NiceToHave)
}
