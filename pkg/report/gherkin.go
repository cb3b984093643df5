package report

import (
	"fmt"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

// RenderGherkin turns the assessment's test opportunities into Gherkin
// feature skeletons, one Feature per category. Scenarios are stubs; the
// Given/When/Then bodies are starting points for a test author, not
// executable steps.
func RenderGherkin(a *assessment.Assessment) string {
	var b strings.Builder

	for _, cat := range assessment.Categories() {
		ca, ok := a.Categories[cat]
		if !ok || len(ca.TestOpportunities) == 0 {
			continue
		}

		fmt.Fprintf(&b, "Feature: %s test opportunities\n", titleCase(string(cat)))
		fmt.Fprintf(&b, "  Coverage for this category is %d%%.\n\n", ca.Coverage.CoveragePercent)

		for _, op := range ca.TestOpportunities {
			fmt.Fprintf(&b, "  @%s @%s @%s\n", op.Subcategory, op.Technique, strings.ToLower(string(op.Priority)))
			fmt.Fprintf(&b, "  Scenario: %s\n", scenarioName(op))
			b.WriteString("    Given the system described in the requirement documents\n")
			fmt.Fprintf(&b, "    When the %s aspect is exercised\n", op.Subcategory)
			fmt.Fprintf(&b, "    Then verify: %s\n\n", op.Description)
		}
	}

	return b.String()
}

// scenarioName derives a readable scenario title from the opportunity
// description, truncated to keep feature files scannable.
func scenarioName(op assessment.TestOpportunity) string {
	desc := op.Description
	if idx := strings.IndexAny(desc, ".;"); idx > 0 {
		desc = desc[:idx]
	}
	if len(desc) > 80 {
		desc = desc[:80]
	}
	return strings.TrimSpace(desc)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
