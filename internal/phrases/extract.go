// Package phrases extracts salient skill-like candidate phrases from job
// description text. The extractor feeds both bullet evidence matching and
// standalone keyword listing.
package phrases

import (
	"sort"

	"github.com/jonathan/resume-recommender/internal/parsing"
)

const (
	// DefaultTopK is the default number of candidate phrases returned.
	DefaultTopK = 40

	// minTokenLength filters out trivial short tokens before n-gram building.
	minTokenLength = 3
)

// Extract returns the top candidate phrases (unigrams, bigrams and trigrams)
// from jobText, ranked by descending frequency and then descending phrase
// length. Ties beyond that keep first-occurrence order. Returns nil when the
// text has no usable tokens.
func Extract(jobText string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	words := filterStopwords(parsing.Tokenize(jobText, minTokenLength))
	if len(words) == 0 {
		return nil
	}

	// Unique unigrams preserving first occurrence, then all adjacent bigrams
	// and trigrams over the unfiltered token sequence.
	candidates := uniqueStrings(words)
	for i := 0; i+1 < len(words); i++ {
		candidates = append(candidates, words[i]+" "+words[i+1])
	}
	for i := 0; i+2 < len(words); i++ {
		candidates = append(candidates, words[i]+" "+words[i+1]+" "+words[i+2])
	}

	freq := make(map[string]int, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, seen := freq[c]; !seen {
			order = append(order, c)
		}
		freq[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return len(order[i]) > len(order[j])
	})

	if len(order) > topK {
		order = order[:topK]
	}
	return order
}

func filterStopwords(words []string) []string {
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stopwords[w]; !ok {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
