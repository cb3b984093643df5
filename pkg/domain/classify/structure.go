package classify

import (
	"fmt"
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reHardware      = regexp.MustCompile(`(?i)\b(hardware|device|sensor|printer|scanner|terminal|kiosk|gpu)`)
	reNonExecutable = regexp.MustCompile(`(?i)\b(config|yaml|json file|template|migration|schema file|feature flag)`)
	reCollateral    = regexp.MustCompile(`(?i)\b(documentation|help text|readme|manual|tutorial|onboarding guide)`)
	reDependency    = regexp.MustCompile(`(?i)\b(dependenc|librar|third.?party|sdk version|framework)`)
)

// classifyStructure covers what the product is made of: code units,
// supporting files, and the dependency surface.
func classifyStructure(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	if in.Set != nil && in.Set.Architecture != nil {
		for _, comp := range in.Set.Architecture.Components {
			frag := findArchFragment(in.Fragments, comp.Name)
			desc := fmt.Sprintf("Review the %s component for unit-level testability and build integrity", comp.Name)
			if frag != nil {
				b.derived(assessment.CategoryStructure, assessment.SubSourceCode, *frag, desc, assessment.TechniqueExploratory, assessment.PriorityP2)
			}
		}
		for _, tech := range in.Set.Architecture.Technologies {
			frag := findArchFragment(in.Fragments, tech.Name)
			desc := fmt.Sprintf("Verify the pinned version and upgrade path of %s", tech.Name)
			if frag != nil {
				b.derived(assessment.CategoryStructure, assessment.SubDependencies, *frag, desc, assessment.TechniqueErrorGuessing, assessment.PriorityP2)
			}
		}
	}

	for _, f := range in.Fragments {
		switch {
		case reHardware.MatchString(f.Text):
			b.derived(assessment.CategoryStructure, assessment.SubHardware, f,
				fmt.Sprintf("Exercise the hardware touchpoint described by: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		case reNonExecutable.MatchString(f.Text):
			b.derived(assessment.CategoryStructure, assessment.SubNonExecutableFiles, f,
				fmt.Sprintf("Check the non-executable artifacts behind: %s", f.Text),
				assessment.TechniqueErrorGuessing, f.Priority)
		case reCollateral.MatchString(f.Text):
			b.derived(assessment.CategoryStructure, assessment.SubCollateral, f,
				fmt.Sprintf("Review user-facing collateral for: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		case reDependency.MatchString(f.Text):
			b.derived(assessment.CategoryStructure, assessment.SubDependencies, f,
				fmt.Sprintf("Assess the dependency risk in: %s", f.Text),
				assessment.TechniqueErrorGuessing, f.Priority)
		}
	}

	// Every product ships with a dependency surface even when no document
	// mentions one.
	b.synthetic(assessment.CategoryStructure, assessment.SubDependencies,
		"Verify third-party dependencies are pinned, licensed, and free of known vulnerabilities",
		assessment.TechniqueErrorGuessing, assessment.PriorityP2)

	return b.opps
}

// findArchFragment locates the architecture fragment whose text mentions
// the given name. Returns nil when extraction produced no such fragment,
// in which case no opportunity is emitted rather than fabricating one.
func findArchFragment(frags []assessment.Fragment, name string) *assessment.Fragment {
	for i := range frags {
		if frags[i].SourceType == "architecture" && containsFold(frags[i].Text, name) {
			return &frags[i]
		}
	}
	return nil
}
