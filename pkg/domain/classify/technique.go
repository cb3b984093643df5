package classify

import (
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

// techniqueRules are checked in declared order; the first match wins. The
// families are disjoint in practice, but order makes the result defined
// even if a description matches several.
var techniqueRules = []struct {
	re        *regexp.Regexp
	technique assessment.Technique
}{
	{regexp.MustCompile(`(?i)\b(validat|format|range|limit|length|boundar|minimum|maximum)`), assessment.TechniqueBoundaryValueAnalysis},
	{regexp.MustCompile(`(?i)\b(if\b|when\b|condition|unless|depending|rule)`), assessment.TechniqueDecisionTable},
	{regexp.MustCompile(`(?i)\b(state|status|transition|lifecycle|phase)`), assessment.TechniqueStateTransition},
	{regexp.MustCompile(`(?i)\b(combination|multiple|variant|permutation|matrix)`), assessment.TechniquePairwise},
}

// SelectTechnique maps a business-rule description to the test design
// technique that fits it best, defaulting to equivalence partitioning.
func SelectTechnique(description string) assessment.Technique {
	for _, r := range techniqueRules {
		if r.re.MatchString(description) {
			return r.technique
		}
	}
	return assessment.TechniqueEquivalencePartitioning
}
