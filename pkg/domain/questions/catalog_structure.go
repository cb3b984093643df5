package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var structureTemplates = map[assessment.Subcategory]Template{
	assessment.SubSourceCode: {
		Definition: "Everything that must be compiled or interpreted for the product to run",
		Flavors: map[string]Text{
			FlavorInfrastructure: {
				Rationale: "Performance-critical code paths deserve structural review before load testing has anything meaningful to measure.",
				Questions: []string{
					"Which modules sit on the hot path, and do they have isolated unit coverage?",
					"Are performance-sensitive algorithms documented well enough to test against a spec rather than against current behavior?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "No requirements describe the code units themselves, so structural testability is unknown.",
				Questions: []string{
					"Which modules or services make up the product, and can each be tested in isolation?",
					fmt.Sprintf("Is there code handling %s that has no requirement describing it?", ctx.PrimaryDataType()),
					"Are builds reproducible enough that a test failure means a product change?",
				},
			}
		},
	},
	assessment.SubHardware: {
		Definition: "Physical equipment the product includes or directly drives",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Nothing in the documents mentions hardware, which either means there is none or it has been overlooked.",
				Questions: []string{
					"Does the product touch any physical devices (printers, scanners, sensors, card readers)?",
					"If hardware is involved, which models and firmware versions must be tested?",
				},
			}
		},
	},
	assessment.SubNonExecutableFiles: {
		Definition: "Configuration, templates, migrations, and other files that ship but do not execute",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Configuration and data files fail differently from code and are rarely covered by requirements.",
				Questions: []string{
					"Which configuration files or feature flags change product behavior, and who owns their correctness?",
					"Are database migrations tested against production-shaped data?",
					"What happens when a required file is missing or malformed at startup?",
				},
			}
		},
	},
	assessment.SubCollateral: {
		Definition: "Documentation, help text, and other user-facing material shipped with the product",
		Flavors: map[string]Text{
			FlavorAccessibility: {
				Rationale: "Help content is part of the accessible experience; inaccessible documentation undermines an otherwise accessible product.",
				Questions: []string{
					"Is the help content itself screen-reader friendly and keyboard navigable?",
					"Do error messages and help text use plain language consistent with WCAG guidance?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Out-of-date collateral misleads users even when the product behaves correctly.",
				Questions: []string{
					"Does shipped documentation match current behavior, including screenshots and examples?",
					fmt.Sprintf("Is there onboarding material for a new %s, and has anyone followed it end to end?", ctx.PrimaryActor()),
				},
			}
		},
	},
	assessment.SubDependencies: {
		Definition: "Third-party components the product needs to build or run",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Sustainability claims often rest on third-party emission factors and offset registries whose data quality is outside your control.",
				Questions: []string{
					"Which external data sources feed the carbon and offset calculations, and what happens when they are stale?",
					"Are offset-provider APIs versioned, and is there a contract test against each?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Dependency behavior changes under upgrades and outages in ways requirement documents rarely anticipate.",
				Questions: []string{
					fmt.Sprintf("What happens to the product when %s is unavailable or slow?", ctx.PrimaryIntegration()),
					"Are dependency versions pinned, and is there a rehearsed upgrade path?",
					"Which licenses apply to shipped dependencies, and has anyone checked compatibility?",
				},
			}
		},
	},
}
