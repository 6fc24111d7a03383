package priorities

import "strings"

// sentenceBoundary reports whether r terminates a sentence-like unit. Colons
// count as boundaries so that inline headers ("Must have: ...") are separated
// from the requirements that follow them.
func sentenceBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', ':', ';', '\n':
		return true
	}
	return false
}

// splitSentences segments text into trimmed sentence-like units.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		if sentenceBoundary(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}
