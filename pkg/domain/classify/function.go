package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reSecurity    = regexp.MustCompile(`(?i)\b(security|authenticat|authoriz|encrypt|permission|token|credential|injection|xss)`)
	reCalculation = regexp.MustCompile(`(?i)\b(calculat|comput|total|sum|tax|price|percentage|score|round)`)
	reTransform   = regexp.MustCompile(`(?i)\b(transform|convert|format|render|encode|decode|serializ|normaliz)`)
	reErrorWords  = regexp.MustCompile(`(?i)\b(error|fail|reject|invalid|retry|recover)`)
	reInteraction = regexp.MustCompile(`(?i)\b(integrat|sync|notif|webhook|publish|subscribe|email|message)`)
	reMultimedia  = regexp.MustCompile(`(?i)\b(image|video|audio|media|photo|thumbnail|stream)`)
	reTestability = regexp.MustCompile(`(?i)\b(log|audit|trace|observab|debug|diagnostic|metric)`)
)

// classifyFunction covers what the product does. Acceptance criteria are
// the richest source here: each becomes a business-rule opportunity with
// a technique picked from its wording, and criteria of security-tagged
// stories additionally get a security opportunity at the story's priority.
func classifyFunction(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	for _, f := range in.Fragments {
		switch f.Kind {
		case assessment.FragmentCondition:
			b.derived(assessment.CategoryFunction, assessment.SubBusinessRules, f,
				fmt.Sprintf("Verify the business rule: %s", f.Text),
				SelectTechnique(f.Text), f.Priority)
		case assessment.FragmentAction:
			if f.SourceType == "story" {
				b.derived(assessment.CategoryFunction, assessment.SubCoreWorkflows, f,
					fmt.Sprintf("Walk the end-to-end workflow: %s", f.Text),
					assessment.TechniqueExploratory, f.Priority)
			}
		}

		securityTagged := hasSecurityTag(f.Tags)
		if securityTagged || reSecurity.MatchString(f.Text) {
			prio := f.Priority
			if securityTagged && prio != assessment.PriorityP0 {
				prio = assessment.PriorityP1
			}
			b.derived(assessment.CategoryFunction, assessment.SubSecurityRelated, f,
				fmt.Sprintf("Probe the security behavior of: %s", f.Text),
				assessment.TechniqueSecurityTesting, prio)
		}

		if reCalculation.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubCalculation, f,
				fmt.Sprintf("Check the calculation at its boundaries: %s", f.Text),
				assessment.TechniqueBoundaryValueAnalysis, f.Priority)
		}
		if reTransform.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubTransformations, f,
				fmt.Sprintf("Verify the transformation round-trips cleanly: %s", f.Text),
				assessment.TechniqueEquivalencePartitioning, f.Priority)
		}
		if reErrorWords.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubErrorHandling, f,
				fmt.Sprintf("Force the failure path in: %s", f.Text),
				assessment.TechniqueErrorGuessing, f.Priority)
		}
		if reInteraction.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubInteractions, f,
				fmt.Sprintf("Exercise the interaction between features in: %s", f.Text),
				assessment.TechniquePairwise, f.Priority)
		}
		if reMultimedia.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubMultimedia, f,
				fmt.Sprintf("Check media handling in: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
		if reTestability.MatchString(f.Text) {
			b.derived(assessment.CategoryFunction, assessment.SubTestability, f,
				fmt.Sprintf("Confirm observability supports verifying: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
	}

	b.synthetic(assessment.CategoryFunction, assessment.SubErrorHandling,
		"Verify invalid operations produce actionable error messages and leave no partial state",
		assessment.TechniqueErrorGuessing, assessment.PriorityP1)
	b.synthetic(assessment.CategoryFunction, assessment.SubStartupShutdown,
		"Verify clean startup from an empty state and graceful shutdown mid-operation",
		assessment.TechniqueStateTransition, assessment.PriorityP2)

	return b.opps
}

func hasSecurityTag(tags []string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, "security") {
			return true
		}
	}
	return false
}
