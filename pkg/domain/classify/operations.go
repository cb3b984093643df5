package classify

import (
	"fmt"
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reUsers       = regexp.MustCompile(`(?i)\b(user|admin|operator|role|persona|customer|guest|staff)`)
	reEnvironment = regexp.MustCompile(`(?i)\b(environment|staging|production|region|locale|timezone|offline)`)
	reSupport     = regexp.MustCompile(`(?i)\b(support|maintain|backup|restore|upgrade|migrat|troubleshoot)`)
)

// classifyOperations covers how the product will actually be used, and
// misused. Hostile input, extreme load, and supportability baselines fire
// unconditionally since every deployed product faces them.
func classifyOperations(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	for _, f := range in.Fragments {
		if reUsers.MatchString(f.Text) {
			b.derived(assessment.CategoryOperations, assessment.SubUsers, f,
				fmt.Sprintf("Exercise this as each distinct user role: %s", f.Text),
				assessment.TechniquePairwise, f.Priority)
		}
		if reEnvironment.MatchString(f.Text) {
			b.derived(assessment.CategoryOperations, assessment.SubEnvironment, f,
				fmt.Sprintf("Repeat under each target environment for: %s", f.Text),
				assessment.TechniquePairwise, f.Priority)
		}
		if f.Kind == assessment.FragmentAction && f.SourceType == "story" {
			b.derived(assessment.CategoryOperations, assessment.SubCommonUse, f,
				fmt.Sprintf("Run the most common real-world path through: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
		if reSupport.MatchString(f.Text) {
			b.derived(assessment.CategoryOperations, assessment.SubSupportability, f,
				fmt.Sprintf("Verify operability tasks around: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
	}

	b.synthetic(assessment.CategoryOperations, assessment.SubDisfavoredUse,
		"Attempt injection, cross-site scripting, and other hostile input at every boundary",
		assessment.TechniqueSecurityTesting, assessment.PriorityP1)
	b.synthetic(assessment.CategoryOperations, assessment.SubExtremeUse,
		"Drive the product at peak expected load and beyond until it degrades",
		assessment.TechniquePerformanceTesting, assessment.PriorityP2)
	b.synthetic(assessment.CategoryOperations, assessment.SubSupportability,
		"Confirm logs and diagnostics are sufficient to troubleshoot a failed operation",
		assessment.TechniqueExploratory, assessment.PriorityP2)

	return b.opps
}
