package loading

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-recommender/internal/types"
)

// LoadSkillTaxonomy loads a skill-to-categories map from a JSON file and
// normalizes it.
func LoadSkillTaxonomy(path string) (types.SkillTaxonomy, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var taxonomy types.SkillTaxonomy
	if err := json.Unmarshal(content, &taxonomy); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeTaxonomy(taxonomy); err != nil {
		return nil, err
	}
	return taxonomy, nil
}

// NormalizeTaxonomy trims category names and deduplicates them per skill.
// Skills whose names are blank are rejected; skills left with no categories
// are kept and simply never recommended.
func NormalizeTaxonomy(taxonomy types.SkillTaxonomy) error {
	if len(taxonomy) == 0 {
		return &NormalizationError{Message: "skill taxonomy is empty"}
	}

	for skill, categories := range taxonomy {
		if strings.TrimSpace(skill) == "" {
			return &NormalizationError{Message: "taxonomy contains a blank skill name"}
		}

		normalized := make([]string, 0, len(categories))
		seen := make(map[string]struct{})
		for _, category := range categories {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			if _, exists := seen[category]; !exists {
				normalized = append(normalized, category)
				seen[category] = struct{}{}
			}
		}
		taxonomy[skill] = normalized
	}
	return nil
}
