package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var interfaceTemplates = map[assessment.Subcategory]Template{
	assessment.SubUserInterface: {
		Definition: "Screens and controls humans interact with",
		Flavors: map[string]Text{
			FlavorAccessibility: {
				Rationale: "The user interface is where accessibility commitments become testable facts.",
				Questions: []string{
					"Which WCAG level is the target, and which pages have been audited against it?",
					"Can every workflow be completed with keyboard only, and with a screen reader?",
					"Are color-contrast and focus-order requirements written down per screen?",
				},
			},
			FlavorSustainability: {
				Rationale: "Sustainability options influence purchase decisions; how they are presented is a fairness and clarity question.",
				Questions: []string{
					"How is the offset option presented at checkout, and is it opt-in or opt-out?",
					"What does the shopper see about where their offset money actually goes?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "UI behavior under resize, localization, and slow networks is rarely specified.",
				Questions: []string{
					fmt.Sprintf("Which screens matter most to a %s, and on which devices?", ctx.PrimaryActor()),
					"How should the UI behave while data is loading or a request has failed?",
					"Which locales and text lengths must layouts survive?",
				},
			}
		},
	},
	assessment.SubSystemInterface: {
		Definition: "Boundaries where other systems connect",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "System-to-system boundaries fail asynchronously and invisibly unless contracts are pinned.",
				Questions: []string{
					fmt.Sprintf("What is the contract with %s, and is it versioned?", ctx.PrimaryIntegration()),
					"How are duplicate and out-of-order messages handled at each boundary?",
				},
			}
		},
	},
	assessment.SubAPISDK: {
		Definition: "Programmatic surfaces the product exposes",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "A public API is a promise; undocumented behavior becomes the contract by accident.",
				Questions: []string{
					"Which endpoints exist, and does each have documented status codes for failure cases?",
					"What authentication and rate limiting applies to API consumers?",
					"How are breaking API changes communicated and versioned?",
				},
			}
		},
	},
	assessment.SubImportExport: {
		Definition: "Bulk data paths in and out of the product",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Import and export move the most data with the least supervision.",
				Questions: []string{
					fmt.Sprintf("What formats must %s import and export support, and are they round-trip safe?", ctx.PrimaryDataType()),
					"What happens to a half-failed import: rollback, partial apply, or resume?",
				},
			}
		},
	},
}
