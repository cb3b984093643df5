// Package report renders persisted assessments into shareable formats:
// markdown summaries, HTML reports and Gherkin feature skeletons.
package report

import (
	"fmt"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

// RenderMarkdown produces the full assessment report as markdown.
func RenderMarkdown(a *assessment.Assessment) string {
	var b strings.Builder

	b.WriteString("# Test Strategy Assessment\n\n")
	fmt.Fprintf(&b, "**Primary theme:** %s\n\n", a.PrimaryTheme)
	if len(a.SecondaryThemes) > 0 {
		fmt.Fprintf(&b, "**Secondary themes:** %s\n\n", strings.Join(a.SecondaryThemes, ", "))
	}
	fmt.Fprintf(&b, "**Overall coverage:** %d%%\n\n", a.OverallCoverage)
	fmt.Fprintf(&b, "Generated %s over document set `%s`.\n\n",
		a.GeneratedAt.Format("2006-01-02 15:04"), shortHash(a.DocumentHash))

	b.WriteString("## Coverage by category\n\n")
	b.WriteString("| Category | Coverage | Opportunities | Uncovered subareas |\n")
	b.WriteString("|----------|---------:|--------------:|--------------------|\n")
	for _, cat := range assessment.Categories() {
		ca, ok := a.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d%% | %d | %s |\n",
			cat, ca.Coverage.CoveragePercent, len(ca.TestOpportunities),
			joinSubcategories(ca.Coverage.UncoveredSubareas))
	}
	b.WriteString("\n")

	for _, cat := range assessment.Categories() {
		ca, ok := a.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(string(cat)))

		if len(ca.TestOpportunities) > 0 {
			b.WriteString("### Test opportunities\n\n")
			for _, op := range ca.TestOpportunities {
				fmt.Fprintf(&b, "- **[%s]** %s *(%s, %s)*\n",
					op.Priority, op.Description, op.Subcategory, op.Technique)
			}
			b.WriteString("\n")
		}

		if len(ca.Questions) > 0 {
			b.WriteString("### Open questions\n\n")
			for _, q := range ca.Questions {
				if len(q.Questions) == 0 {
					continue
				}
				fmt.Fprintf(&b, "**%s** - %s\n\n", q.Subcategory, q.Rationale)
				for _, question := range q.Questions {
					fmt.Fprintf(&b, "- %s\n", question)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func joinSubcategories(subs []assessment.Subcategory) string {
	if len(subs) == 0 {
		return "-"
	}
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
