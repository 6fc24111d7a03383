// Package types provides type definitions for structured data used throughout the resume-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletRecord represents a single pre-written resume accomplishment statement.
// Records are owned by the caller and passed by value into the engine.
type BulletRecord struct {
	ID       string   `json:"id,omitempty"`
	Role     string   `json:"role,omitempty"`
	Text     string   `json:"bullet" validate:"required,min=1"`
	Lines    int      `json:"lines"`
	Category string   `json:"category,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// BulletPool maps role names to their ordered bullet records
type BulletPool struct {
	Roles map[string][]BulletRecord `json:"roles"`
}

// RankedBullet represents a bullet with its final integer score and
// the job-description phrases that matched it (evidence only)
type RankedBullet struct {
	Bullet         BulletRecord `json:"bullet"`
	Score          int          `json:"score"`
	MatchedPhrases []string     `json:"matched_phrases"`
}

// RankedBullets represents the ordered recommendation result for one role
type RankedBullets struct {
	Role   string         `json:"role,omitempty"`
	Ranked []RankedBullet `json:"ranked"`
}
