// Package parsing provides text normalization and tokenization shared by the
// recommendation pipeline stages.
package parsing

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// NormalizeText lowercases text and collapses all whitespace runs to single
// spaces. Bullet texts are normalized this way before retrieval so that
// formatting differences do not affect matching.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits text into lowercase word tokens of at least minLen characters.
func Tokenize(text string, minLen int) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if minLen <= 1 {
		return words
	}
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= minLen {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// ContainsToken reports whether needle occurs in haystack as a standalone
// token, bounded by non-word characters or the text edges.
func ContainsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	start := 0
	for {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		if (idx == 0 || !isWordChar(haystack[idx-1])) &&
			(end == len(haystack) || !isWordChar(haystack[end])) {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
