package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reUserInterface = regexp.MustCompile(`(?i)\b(ui\b|screen|page|button|display|click|dropdown|dialog|menu|navigation)`)
	reAPI           = regexp.MustCompile(`(?i)\b(api|endpoint|sdk|rest|graphql|grpc)`)
	reSystemIface   = regexp.MustCompile(`(?i)\b(webhook|queue|message bus|file transfer|integration point|callback)`)
	reImportExport  = regexp.MustCompile(`(?i)\b(import|export|csv|upload|download|bulk load)`)
)

// classifyInterfaces covers the boundaries through which the product is
// exercised. Architecture-declared interfaces produce one opportunity
// each; everything else derives from fragment wording.
func classifyInterfaces(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	if in.Set != nil && in.Set.Architecture != nil {
		for _, iface := range in.Set.Architecture.Interfaces {
			frag := findArchFragment(in.Fragments, iface.Name)
			if frag == nil {
				continue
			}
			sub := assessment.SubSystemInterface
			switch strings.ToLower(iface.Type) {
			case "rest", "graphql", "grpc", "api":
				sub = assessment.SubAPISDK
			case "ui", "web", "mobile":
				sub = assessment.SubUserInterface
			case "file", "batch":
				sub = assessment.SubImportExport
			}
			b.derived(assessment.CategoryInterfaces, sub, *frag,
				fmt.Sprintf("Exercise the %s interface contract, including its failure responses", iface.Name),
				assessment.TechniqueEquivalencePartitioning, assessment.PriorityP1)
		}
	}

	for _, f := range in.Fragments {
		if reUserInterface.MatchString(f.Text) {
			b.derived(assessment.CategoryInterfaces, assessment.SubUserInterface, f,
				fmt.Sprintf("Walk the user-facing surface in: %s", f.Text),
				assessment.TechniqueExploratory, f.Priority)
		}
		if reAPI.MatchString(f.Text) {
			b.derived(assessment.CategoryInterfaces, assessment.SubAPISDK, f,
				fmt.Sprintf("Verify the programmatic contract in: %s", f.Text),
				assessment.TechniqueEquivalencePartitioning, f.Priority)
		}
		if reSystemIface.MatchString(f.Text) {
			b.derived(assessment.CategoryInterfaces, assessment.SubSystemInterface, f,
				fmt.Sprintf("Test the system-to-system hand-off in: %s", f.Text),
				assessment.TechniqueErrorGuessing, f.Priority)
		}
		if reImportExport.MatchString(f.Text) {
			b.derived(assessment.CategoryInterfaces, assessment.SubImportExport, f,
				fmt.Sprintf("Round-trip data through the import/export path in: %s", f.Text),
				assessment.TechniqueBoundaryValueAnalysis, f.Priority)
		}
	}

	return b.opps
}
