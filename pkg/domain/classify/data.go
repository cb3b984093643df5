package classify

import (
	"fmt"
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reInputOutput = regexp.MustCompile(`(?i)\b(input|output|form|field|upload|download|entry|submission)`)
	rePersistent  = regexp.MustCompile(`(?i)\b(stor|database|persist|save|record|repository)`)
	rePreset      = regexp.MustCompile(`(?i)\b(default|preset|seed|initial data|reference data|lookup table)`)
	reInterdep    = regexp.MustCompile(`(?i)\b(depend|derived|linked|related record|foreign|aggregate)`)
	reSequence    = regexp.MustCompile(`(?i)\b(sequence|ordering|combination|batch|series|step.by.step)`)
	reLifecycleKw = regexp.MustCompile(`(?i)\b(retention|archiv|purge|expir|lifecycle|soft.?delete)`)
)

// classifyData covers everything the product processes. Three baseline
// checks always fire: cardinality, invalid input, and size extremes exist
// for every product no matter how thin the documents are.
func classifyData(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	for _, f := range in.Fragments {
		if f.Kind == assessment.FragmentData || reInputOutput.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubInputOutput, f,
				fmt.Sprintf("Vary the inputs and inspect the outputs of: %s", f.Text),
				assessment.TechniqueEquivalencePartitioning, f.Priority)
		}
		if rePersistent.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubPersistent, f,
				fmt.Sprintf("Verify persisted state survives restart for: %s", f.Text),
				assessment.TechniqueStateTransition, f.Priority)
		}
		if rePreset.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubPreset, f,
				fmt.Sprintf("Check preset and default data behind: %s", f.Text),
				assessment.TechniqueEquivalencePartitioning, f.Priority)
		}
		if reInterdep.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubInterdependent, f,
				fmt.Sprintf("Mutate one side of the dependent data in: %s", f.Text),
				assessment.TechniqueDecisionTable, f.Priority)
		}
		if reSequence.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubSequencesAndCombinations, f,
				fmt.Sprintf("Reorder and combine the data operations in: %s", f.Text),
				assessment.TechniquePairwise, f.Priority)
		}
		if reLifecycleKw.MatchString(f.Text) {
			b.derived(assessment.CategoryData, assessment.SubLifecycle, f,
				fmt.Sprintf("Trace create-through-delete for the data in: %s", f.Text),
				assessment.TechniqueStateTransition, f.Priority)
		}
	}

	b.synthetic(assessment.CategoryData, assessment.SubCardinality,
		"Exercise zero, one, and many items in every collection the product handles",
		assessment.TechniqueBoundaryValueAnalysis, assessment.PriorityP1)
	b.synthetic(assessment.CategoryData, assessment.SubInvalid,
		"Feed malformed, truncated, and wrongly-typed data at every input point",
		assessment.TechniqueErrorGuessing, assessment.PriorityP1)
	b.synthetic(assessment.CategoryData, assessment.SubBigAndLittle,
		"Try empty payloads and payloads at or beyond the documented size limits",
		assessment.TechniqueBoundaryValueAnalysis, assessment.PriorityP2)

	return b.opps
}
