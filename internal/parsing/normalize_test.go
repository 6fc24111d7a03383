package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Built CI/CD Pipelines", expected: "built ci/cd pipelines"},
		{name: "collapses whitespace", input: "  led\t a  team\n of five ", expected: "led a team of five"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \t\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestTokenize_MinLength(t *testing.T) {
	tokens := Tokenize("Go is a fast, compiled language", 3)
	assert.Equal(t, []string{"fast", "compiled", "language"}, tokens)
}

func TestTokenize_NoMinimum(t *testing.T) {
	tokens := Tokenize("Go is fast", 0)
	assert.Equal(t, []string{"go", "is", "fast"}, tokens)
}

func TestContainsToken(t *testing.T) {
	job := "we need a python developer with django and javascript experience"

	assert.True(t, ContainsToken(job, "python"))
	assert.True(t, ContainsToken(job, "javascript experience"))
	assert.False(t, ContainsToken(job, "java"), "substring of a longer token must not match")
	assert.False(t, ContainsToken(job, "velop"))
	assert.False(t, ContainsToken(job, ""))
}
