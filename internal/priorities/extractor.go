// Package priorities extracts must-have and nice-to-have requirement phrases
// from job description text using structural section cues. It is a heuristic
// parse: headers it does not recognize are simply skipped, and no phrases are
// collected before the first recognized header.
package priorities

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-recommender/internal/types"
)

type section int

const (
	sectionNone section = iota
	sectionMustHave
	sectionNiceToHave
)

// Header phrases matched as exact token sequences, case-insensitive.
// Hyphenated forms survive tokenization as single tokens.
var (
	mustHaveHeaders = [][]string{
		{"must", "have"},
		{"must-have"},
		{"required"},
		{"essential"},
	}
	niceToHaveHeaders = [][]string{
		{"nice", "to", "have"},
		{"nice-to-have"},
		{"preferred"},
		{"might", "also", "have"},
	}
)

var headerTokenPattern = regexp.MustCompile(`[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*`)

// Extract parses jobText into priority-tiered requirement phrases. A sentence
// matching a header switches the active section and contributes no phrases
// itself. Sentences inside an active section contribute their noun-phrase
// chunks verbatim. Both lists are deduplicated preserving first-seen order.
func Extract(jobText string) types.PrioritySet {
	set := types.PrioritySet{
		MustHave:   []string{},
		NiceToHave: []string{},
	}

	current := sectionNone
	for _, sentence := range splitSentences(jobText) {
		tokens := headerTokenPattern.FindAllString(strings.ToLower(sentence), -1)

		if matchesAnyHeader(tokens, mustHaveHeaders) {
			current = sectionMustHave
			continue
		}
		if matchesAnyHeader(tokens, niceToHaveHeaders) {
			current = sectionNiceToHave
			continue
		}
		if current == sectionNone {
			continue
		}

		chunks := nounChunks(sentence)
		switch current {
		case sectionMustHave:
			set.MustHave = append(set.MustHave, chunks...)
		case sectionNiceToHave:
			set.NiceToHave = append(set.NiceToHave, chunks...)
		}
	}

	set.MustHave = dedupPreservingOrder(set.MustHave)
	set.NiceToHave = dedupPreservingOrder(set.NiceToHave)
	return set
}

// matchesAnyHeader reports whether tokens contain any of the header token
// sequences contiguously.
func matchesAnyHeader(tokens []string, headers [][]string) bool {
	for _, header := range headers {
		if containsSequence(tokens, header) {
			return true
		}
	}
	return false
}

func containsSequence(tokens, seq []string) bool {
	if len(seq) == 0 || len(tokens) < len(seq) {
		return false
	}
	for i := 0; i+len(seq) <= len(tokens); i++ {
		match := true
		for j, want := range seq {
			if tokens[i+j] != want {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func dedupPreservingOrder(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := phrases[:0]
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
