// Package formatting renders skill category groups into bounded display
// strings for resume templates.
package formatting

import (
	"fmt"
	"strings"
)

// DefaultLimit is the default character budget for one formatted skill line.
const DefaultLimit = 50

// Truncation policy constants. These define the exact visual contract of a
// skill line and are covered by boundary tests; do not tune them casually.
const (
	// bracketOverhead accounts for the space and brackets around the skill
	// list: `" ["` plus `"]"` plus the cursor position.
	bracketOverhead = 4
	// minTruncatedSkill is the smallest budget worth truncating a single
	// skill into.
	minTruncatedSkill = 10
	// ellipsisLen reserves room for the trailing "..." marker.
	ellipsisLen = 3
	// droppedSuffixRoom reserves room for the `" +N]"` dropped-count marker.
	droppedSuffixRoom = 5
)

// Format renders a category and its skills as `"<category> [<skill>, ...]"`
// with no length constraint applied.
func Format(category string, skills []string) string {
	return fmt.Sprintf("%s [%s]", category, strings.Join(skills, ", "))
}

// FormatWithLimit renders the skill line and enforces the character budget:
//
//   - a fitting line is returned unchanged (the policy is idempotent)
//   - a single over-budget skill is truncated with a "..." marker when
//     enough room remains to be useful
//   - multiple skills are dropped from the end until the line fits, with a
//     " +N]" suffix recording the dropped count when room allows
//   - the terminal fallback is `"<category> [...]"`; this function never
//     fails
func FormatWithLimit(category string, skills []string, limit int) string {
	if len(skills) == 0 {
		return ""
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	formatted := Format(category, skills)
	if len(formatted) <= limit {
		return formatted
	}

	if len(skills) == 1 {
		available := limit - len(category) - bracketOverhead
		if available > minTruncatedSkill {
			truncated := skills[0]
			if len(truncated) > available-ellipsisLen {
				truncated = truncated[:available-ellipsisLen]
			}
			return fmt.Sprintf("%s [%s...]", category, truncated)
		}
	} else {
		working := make([]string, len(skills))
		copy(working, skills)
		for len(working) > 0 && len(Format(category, working)) > limit {
			working = working[:len(working)-1]
		}

		if len(working) > 0 {
			formatted = Format(category, working)
			dropped := len(skills) - len(working)
			if dropped > 0 && len(formatted)+droppedSuffixRoom <= limit {
				return fmt.Sprintf("%s +%d]", formatted[:len(formatted)-1], dropped)
			}
			return formatted
		}
	}

	return fmt.Sprintf("%s [...]", category)
}
