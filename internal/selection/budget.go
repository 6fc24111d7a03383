// Package selection fills a resume plan from ranked bullet lists under
// per-role count limits and a total line budget.
package selection

import (
	"math"

	"github.com/jonathan/resume-recommender/internal/types"
)

const (
	// charsPerLine is the estimated number of characters per rendered resume
	// line, used when a bullet record carries no line count of its own.
	charsPerLine = 100
	// DefaultMaxPerRole caps how many bullets one role contributes when the
	// caller does not override it.
	DefaultMaxPerRole = 4
)

// RolePlan holds the bullets selected for one role, in rank order.
type RolePlan struct {
	Role    string               `json:"role"`
	Bullets []types.RankedBullet `json:"bullets"`
	Lines   int                  `json:"lines"`
}

// Plan is a complete autofill result across all roles.
type Plan struct {
	Roles      []RolePlan `json:"roles"`
	TotalLines int        `json:"total_lines"`
}

// Autofill greedily fills a plan from ranked bullets. Roles are visited in
// input order; within a role, bullets are taken in rank order while the role
// stays under maxPerRole and the plan stays under maxLines. A bullet that
// would overflow the line budget is skipped rather than ending the role, so a
// shorter lower-ranked bullet can still use remaining space.
//
// maxLines <= 0 means no line budget. maxPerRole <= 0 falls back to
// DefaultMaxPerRole. Roles that contribute no bullets are omitted from the
// plan.
func Autofill(ranked []types.RankedBullets, maxPerRole, maxLines int) (*Plan, error) {
	if len(ranked) == 0 {
		return nil, &Error{Message: "no ranked bullets to select from"}
	}
	if maxPerRole <= 0 {
		maxPerRole = DefaultMaxPerRole
	}

	plan := &Plan{Roles: make([]RolePlan, 0, len(ranked))}
	for _, role := range ranked {
		rp := RolePlan{Role: role.Role}
		for _, rb := range role.Ranked {
			if len(rp.Bullets) >= maxPerRole {
				break
			}
			lines := bulletLines(rb.Bullet)
			if maxLines > 0 && plan.TotalLines+lines > maxLines {
				continue
			}
			rp.Bullets = append(rp.Bullets, rb)
			rp.Lines += lines
			plan.TotalLines += lines
		}
		if len(rp.Bullets) > 0 {
			plan.Roles = append(plan.Roles, rp)
		}
	}

	if len(plan.Roles) == 0 {
		return nil, &Error{Message: "line budget too small for any bullet"}
	}
	return plan, nil
}

// bulletLines returns the bullet's declared line count, estimating from text
// length when the record does not carry one.
func bulletLines(b types.BulletRecord) int {
	if b.Lines > 0 {
		return b.Lines
	}
	if len(b.Text) == 0 {
		return 1
	}
	return int(math.Ceil(float64(len(b.Text)) / charsPerLine))
}
