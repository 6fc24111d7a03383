// Package skills recommends skill categories and the top skills within them
// for a job description, using lexical scoring over a skill taxonomy.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-recommender/internal/scoring"
	"github.com/jonathan/resume-recommender/internal/types"
)

// maxSkillsPerCategory caps how many skills one category contributes to the
// resume template.
const maxSkillsPerCategory = 4

// Recommender scores taxonomy skills against job descriptions. The reverse
// category index is built once at construction and read-only afterwards, so
// a Recommender is safe for concurrent reads.
type Recommender struct {
	taxonomy      types.SkillTaxonomy
	categoryIndex map[string][]string
}

// NewRecommender builds a Recommender from a skill taxonomy. Skills with an
// empty category set are excluded from the reverse index rather than treated
// as errors. Index skill lists are sorted so recommendation output is
// deterministic regardless of map iteration order.
func NewRecommender(taxonomy types.SkillTaxonomy) *Recommender {
	index := make(map[string][]string)
	for skill, categories := range taxonomy {
		for _, category := range categories {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			index[category] = append(index[category], skill)
		}
	}
	for _, memberSkills := range index {
		sort.Strings(memberSkills)
	}

	return &Recommender{taxonomy: taxonomy, categoryIndex: index}
}

// RecommendSkills returns up to numCategories (category, skills) groups for
// the job text, each with at most four skills sorted by descending relevance.
// Output order follows category selection order. A selected category whose
// member skills all scored zero is dropped entirely, so fewer than
// numCategories entries can come back even when more categories exist.
func (r *Recommender) RecommendSkills(jobText string, numCategories int) []types.CategorySkills {
	if numCategories <= 0 || strings.TrimSpace(jobText) == "" {
		return []types.CategorySkills{}
	}

	skillScores := r.scoreSkills(jobText)
	categoryScores := r.scoreCategories(skillScores)
	selected := selectTopCategories(categoryScores, numCategories)

	result := make([]types.CategorySkills, 0, len(selected))
	for _, category := range selected {
		relevant := r.topCategorySkills(category, skillScores)
		if len(relevant) == 0 {
			continue
		}
		result = append(result, types.CategorySkills{Category: category, Skills: relevant})
	}

	return result
}

// scoreSkills scores every taxonomy skill against the job text, keeping only
// skills with a positive score.
func (r *Recommender) scoreSkills(jobText string) map[string]float64 {
	scores := make(map[string]float64)
	for skill := range r.taxonomy {
		if score := scoring.Score(skill, jobText); score > 0 {
			scores[skill] = score
		}
	}
	return scores
}

// scoreCategories sums member-skill scores into category aggregates.
func (r *Recommender) scoreCategories(skillScores map[string]float64) map[string]float64 {
	categoryScores := make(map[string]float64)
	for skill, score := range skillScores {
		for _, category := range r.taxonomy[skill] {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			categoryScores[category] += score
		}
	}
	return categoryScores
}

// topCategorySkills returns the category's positively-scored member skills,
// sorted by descending score (alphabetical on ties), capped at
// maxSkillsPerCategory.
func (r *Recommender) topCategorySkills(category string, skillScores map[string]float64) []string {
	var relevant []string
	for _, skill := range r.categoryIndex[category] {
		if _, ok := skillScores[skill]; ok {
			relevant = append(relevant, skill)
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return skillScores[relevant[i]] > skillScores[relevant[j]]
	})

	if len(relevant) > maxSkillsPerCategory {
		relevant = relevant[:maxSkillsPerCategory]
	}
	return relevant
}
