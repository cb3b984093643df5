package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reExtHardware = regexp.MustCompile(`(?i)\b(device|sensor|printer|scanner|camera|reader|beacon)`)
	reExecEnv     = regexp.MustCompile(`(?i)\b(browser|mobile|ios|android|docker|kubernetes|cloud|serverless|on.?prem)`)
	// The component pattern is deliberately strict: platform claims are
	// only made on explicit architectural vocabulary, never on loose
	// thematic hints.
	reComponentSignal = regexp.MustCompile(`(?i)\b(service|database|api|frontend|backend|queue|cache)\b`)
)

// classifyPlatform covers what the product depends on. With an explicit
// architecture, components and technologies drive the pass. Without one,
// components are inferred only from fragments that use unambiguous
// architectural vocabulary; if no fragment does, the pass emits nothing
// at all rather than invent a platform.
func classifyPlatform(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	if in.Set != nil && in.Set.Architecture != nil && len(in.Set.Architecture.Components) > 0 {
		for _, comp := range in.Set.Architecture.Components {
			frag := findArchFragment(in.Fragments, comp.Name)
			if frag == nil {
				continue
			}
			b.derived(assessment.CategoryPlatform, assessment.SubInternalComponents, *frag,
				fmt.Sprintf("Test the %s component in isolation and against its declared dependencies", comp.Name),
				assessment.TechniqueExploratory, assessment.PriorityP2)
		}
		for _, tech := range in.Set.Architecture.Technologies {
			frag := findArchFragment(in.Fragments, tech.Name)
			if frag == nil {
				continue
			}
			b.derived(assessment.CategoryPlatform, assessment.SubExternalSoftware, *frag,
				fmt.Sprintf("Verify behavior against the supported versions of %s", tech.Name),
				assessment.TechniquePairwise, assessment.PriorityP2)
		}
	} else {
		for _, f := range in.Fragments {
			if reComponentSignal.MatchString(f.Text) {
				b.derived(assessment.CategoryPlatform, assessment.SubInternalComponents, f,
					fmt.Sprintf("Identify and isolate the component implied by: %s", f.Text),
					assessment.TechniqueExploratory, f.Priority)
			}
		}
	}

	for _, f := range in.Fragments {
		if reExtHardware.MatchString(f.Text) {
			b.derived(assessment.CategoryPlatform, assessment.SubExternalHardware, f,
				fmt.Sprintf("Test against the external hardware named in: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
		if reExecEnv.MatchString(f.Text) {
			b.derived(assessment.CategoryPlatform, assessment.SubExecutionEnvironment, f,
				fmt.Sprintf("Vary the execution environment for: %s", f.Text),
				assessment.TechniquePairwise, f.Priority)
		}
	}

	for _, integration := range themeIntegrations(in) {
		// Integrations detected by theme inference are external software
		// the product leans on.
		f := firstFragment(in.Fragments)
		if f == nil {
			break
		}
		b.derived(assessment.CategoryPlatform, assessment.SubExternalSoftware, *f,
			fmt.Sprintf("Stub and fault-inject the %s dependency", integration),
			assessment.TechniqueErrorGuessing, assessment.PriorityP1)
	}

	return b.opps
}

func themeIntegrations(in Input) []string {
	if in.Theme == nil {
		return nil
	}
	return in.Theme.Integrations
}

func firstFragment(frags []assessment.Fragment) *assessment.Fragment {
	if len(frags) == 0 {
		return nil
	}
	return &frags[0]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
