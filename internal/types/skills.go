package types

// SkillTaxonomy maps a skill name to the resume categories it belongs to.
// A skill may belong to multiple categories. Loaded once per session and
// treated as read-only during recommendation.
type SkillTaxonomy map[string][]string

// CategorySkills represents one recommended category with its selected skills
type CategorySkills struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillRecommendations represents the ordered skill recommendation result
type SkillRecommendations struct {
	Categories []CategorySkills `json:"categories"`
}
