// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-recommender/internal/formatting"
	"github.com/jonathan/resume-recommender/internal/selection"
	"github.com/jonathan/resume-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPrioritySet outputs the must-have and nice-to-have phrases extracted
// from the job description.
func (p *Printer) PrintPrioritySet(priorities types.PrioritySet) {
	if len(priorities.MustHave) == 0 && len(priorities.NiceToHave) == 0 {
		p.printBox("JOB PRIORITIES", "No priority sections detected")
		return
	}

	var sb strings.Builder

	if len(priorities.MustHave) > 0 {
		sb.WriteString("Must-have:\n")
		for _, phrase := range priorities.MustHave {
			sb.WriteString(fmt.Sprintf("  • %s\n", phrase))
		}
	}
	if len(priorities.NiceToHave) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Nice-to-have:\n")
		for _, phrase := range priorities.NiceToHave {
			sb.WriteString(fmt.Sprintf("  • %s\n", phrase))
		}
	}

	p.printBox("JOB PRIORITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedBullets outputs the top bullets for one role with scores and
// matched phrases.
func (p *Printer) PrintRankedBullets(result types.RankedBullets) {
	if len(result.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	title := "RANKED BULLETS"
	if result.Role != "" {
		title = fmt.Sprintf("RANKED BULLETS — %s", strings.ToUpper(result.Role))
	}
	sb.WriteString(fmt.Sprintf("Total bullets ranked: %d\n\n", len(result.Ranked)))

	count := min(len(result.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rb := result.Ranked[i]
		text := rb.Bullet.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rb.Score))
		if len(rb.MatchedPhrases) > 0 {
			phrases := strings.Join(rb.MatchedPhrases, ", ")
			if len(phrases) > 40 {
				phrases = phrases[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", phrases))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(result.Ranked)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}

// PrintSkillGroups outputs recommended skill lines with their character
// counts against the template budget.
func (p *Printer) PrintSkillGroups(recs types.SkillRecommendations, charLimit int) {
	if len(recs.Categories) == 0 {
		p.printBox("RECOMMENDED SKILLS", "No relevant skill categories found")
		return
	}
	if charLimit <= 0 {
		charLimit = formatting.DefaultLimit
	}

	var sb strings.Builder
	for i, cs := range recs.Categories {
		line := formatting.FormatWithLimit(cs.Category, cs.Skills, charLimit)
		sb.WriteString(fmt.Sprintf("%s\n", line))
		sb.WriteString(fmt.Sprintf("  (%d/%d chars)\n", len(line), charLimit))
		if i < len(recs.Categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs an autofill plan with per-role line usage.
func (p *Printer) PrintPlan(plan *selection.Plan) {
	if plan == nil || len(plan.Roles) == 0 {
		return
	}

	var sb strings.Builder
	for _, role := range plan.Roles {
		sb.WriteString(fmt.Sprintf("%s (%d lines):\n", role.Role, role.Lines))
		for _, rb := range role.Bullets {
			text := rb.Bullet.Text
			if len(text) > 48 {
				text = text[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Total lines used: %d", plan.TotalLines))

	p.printBox("RESUME PLAN", sb.String())
}
