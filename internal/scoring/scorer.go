// Package scoring provides lexical relevance scoring of candidate strings
// against a job description.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-recommender/internal/parsing"
)

// Scoring weights for the lexical signals
const (
	directMentionWeight = 10.0
	wordBoundaryWeight  = 5.0
	candidateWordWeight = 1.0
	relatedTermWeight   = 0.5
)

// Score computes a non-negative lexical relevance score for a candidate
// string (a skill or bullet fragment) against a job description. It is a pure
// function of its inputs and the static related-terms table.
//
// Signals, all of which stack:
//   - direct substring mention of the candidate in the job text
//   - word-boundary-exact mention of the candidate
//   - each candidate word appearing as a standalone token in the job text
//   - related technology terms from the synonym table appearing in the job text
func Score(candidate, jobText string) float64 {
	cand := strings.TrimSpace(strings.ToLower(candidate))
	job := strings.ToLower(jobText)
	if cand == "" || job == "" {
		return 0.0
	}

	score := 0.0

	if strings.Contains(job, cand) {
		score += directMentionWeight
	}
	if parsing.ContainsToken(job, cand) {
		score += wordBoundaryWeight
	}

	score += semanticScore(cand, job)

	return score
}

// semanticScore adds the per-word and related-term bonuses.
func semanticScore(candidate, job string) float64 {
	score := 0.0

	for _, word := range strings.Fields(candidate) {
		if parsing.ContainsToken(job, word) {
			score += candidateWordWeight
		}
	}

	for _, group := range relatedTerms {
		if !strings.Contains(candidate, group.base) {
			continue
		}
		for _, term := range group.terms {
			if strings.Contains(job, term) {
				score += relatedTermWeight
			}
		}
	}

	return score
}
