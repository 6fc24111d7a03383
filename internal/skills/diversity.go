package skills

import (
	"sort"
	"strings"
)

// Coarse category types used for the diversity pass.
const (
	typeProgramming    = "programming"
	typeInfrastructure = "infrastructure"
	typeData           = "data"
	typeTools          = "tools"
	typeOther          = "other"
)

// typeRule maps name fragments to a coarse type. Rules are checked in order;
// the first match wins.
type typeRule struct {
	categoryType string
	fragments    []string
}

var typeRules = []typeRule{
	{typeProgramming, []string{"programming", "language", "framework"}},
	{typeInfrastructure, []string{"cloud", "infrastructure", "devops"}},
	{typeData, []string{"data", "analytics", "machine learning", "ai"}},
	{typeTools, []string{"tool", "software", "platform"}},
}

// categoryType classifies a category name by case-insensitive substring
// sniffing.
func categoryType(category string) string {
	lower := strings.ToLower(category)
	for _, rule := range typeRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(lower, fragment) {
				return rule.categoryType
			}
		}
	}
	return typeOther
}

// selectTopCategories picks up to numCategories category names by score with
// a two-pass diversity policy. Pass 1 walks categories in descending score
// order and accepts a category when its type is new or fewer than two
// categories are accepted so far (the first two picks are unconditional).
// Pass 2 fills any remaining slots purely by score.
func selectTopCategories(categoryScores map[string]float64, numCategories int) []string {
	ordered := make([]string, 0, len(categoryScores))
	for category := range categoryScores {
		ordered = append(ordered, category)
	}
	// Alphabetical tie-break keeps selection deterministic across runs.
	sort.SliceStable(ordered, func(i, j int) bool {
		if categoryScores[ordered[i]] != categoryScores[ordered[j]] {
			return categoryScores[ordered[i]] > categoryScores[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	selected := make([]string, 0, numCategories)
	acceptedTypes := make(map[string]struct{})
	isSelected := make(map[string]struct{})

	for _, category := range ordered {
		if len(selected) >= numCategories {
			break
		}
		ct := categoryType(category)
		if _, seen := acceptedTypes[ct]; !seen || len(selected) < 2 {
			selected = append(selected, category)
			acceptedTypes[ct] = struct{}{}
			isSelected[category] = struct{}{}
		}
	}

	if len(selected) < numCategories {
		for _, category := range ordered {
			if len(selected) >= numCategories {
				break
			}
			if _, ok := isSelected[category]; ok {
				continue
			}
			selected = append(selected, category)
			isSelected[category] = struct{}{}
		}
	}

	return selected
}