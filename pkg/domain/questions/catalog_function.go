package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var functionTemplates = map[assessment.Subcategory]Template{
	assessment.SubBusinessRules: {
		Definition: "The domain rules the product enforces",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Sustainability rules (offset eligibility, emission thresholds) are regulatory-adjacent and need precise, testable definitions.",
				Questions: []string{
					"What exactly qualifies a purchase for a carbon offset, and who owns that rule?",
					"Which emission factors apply per product category, and how often do they change?",
					"Is there a rule for what happens when an offset provider rejects a transaction?",
				},
			},
			FlavorML: {
				Rationale: "When rules are learned rather than written, the boundary between business rule and model output must still be testable.",
				Questions: []string{
					"Which decisions are hard rules and which are model suggestions that users can override?",
					"What are the guardrails when the model produces a recommendation that violates a business constraint?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Undocumented business rules surface as production disputes rather than test failures.",
				Questions: []string{
					fmt.Sprintf("What rules govern how a %s may act on %s?", ctx.PrimaryActor(), ctx.PrimaryDataType()),
					"Which rules have exceptions, and who is authorized to trigger them?",
					"Are any rules time- or region-dependent?",
				},
			}
		},
	},
	assessment.SubCoreWorkflows: {
		Definition: "The end-to-end paths users take to get value",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Requirements describe steps, but rarely the complete journey including interruptions and resumption.",
				Questions: []string{
					fmt.Sprintf("What is the single most important journey for a %s, start to finish?", ctx.PrimaryActor()),
					"Can every workflow be abandoned midway and resumed safely?",
					"Which workflows span more than one session or device?",
				},
			}
		},
	},
	assessment.SubCalculation: {
		Definition: "Arithmetic the product performs",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Emission arithmetic is the product's credibility; rounding and unit errors here are public-facing.",
				Questions: []string{
					"What are the exact formulas and units for emission calculations, and what precision is promised?",
					"How are conversions between weight, distance, and monetary offset amounts rounded?",
				},
			},
			FlavorML: {
				Rationale: "Scores and rankings are calculations too, and their edge behavior (ties, missing features) is rarely specified.",
				Questions: []string{
					"How are relevance scores combined, and what happens on ties?",
					"What score does an item with missing features receive?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Calculations fail at boundaries: zero, negative, maximum, and rounding edges.",
				Questions: []string{
					"Which calculations exist, and what are their documented formulas?",
					"How is rounding handled, and is it consistent across display, storage, and export?",
					"What are the maximum values each calculation must support?",
				},
			}
		},
	},
	assessment.SubTransformations: {
		Definition: "Conversions between data representations",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Transformations silently lose information unless round-trips are tested.",
				Questions: []string{
					fmt.Sprintf("Where is %s converted between formats, and is the conversion lossless?", ctx.PrimaryDataType()),
					"Which character encodings, locales, and units must conversions preserve?",
				},
			}
		},
	},
	assessment.SubErrorHandling: {
		Definition: "How the product detects, reports, and recovers from failure",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Error paths get a fraction of the design attention of happy paths and most of the production incidents.",
				Questions: []string{
					"What should a user see when an operation fails halfway?",
					fmt.Sprintf("When %s fails mid-operation, is the operation rolled back, retried, or left partial?", ctx.PrimaryIntegration()),
					"Are error messages specific enough to act on without contacting support?",
				},
			}
		},
	},
	assessment.SubSecurityRelated: {
		Definition: "Functions that protect the product and its data",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Security behavior is rarely stated as requirements yet is always a requirement.",
				Questions: []string{
					fmt.Sprintf("What may an unauthenticated visitor do, and what must a %s role never do?", ctx.PrimaryActor()),
					fmt.Sprintf("How is %s protected at rest and in transit?", ctx.PrimaryDataType()),
					"Is there a threat model, and which attacks has it ruled in scope?",
					"How are sessions expired, and what invalidates them early?",
				},
			}
		},
	},
	assessment.SubStartupShutdown: {
		Definition: "Behavior when the product starts, stops, or restarts",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "First-run and restart behavior is invisible in feature requirements but visible in every deployment.",
				Questions: []string{
					"What must work on a completely fresh install with no data?",
					"What happens to in-flight operations during a restart or deploy?",
				},
			}
		},
	},
	assessment.SubInteractions: {
		Definition: "Features affecting each other",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Features tested in isolation can still fail in combination.",
				Questions: []string{
					"Which features share state or data, and what happens when they act on it simultaneously?",
					"Are there feature pairs that have never been exercised together?",
				},
			}
		},
	},
	assessment.SubMultimedia: {
		Definition: "Images, audio, video, and other rich media the product handles",
		Flavors: map[string]Text{
			FlavorAccessibility: {
				Rationale: "Media without text alternatives excludes users and breaches accessibility commitments.",
				Questions: []string{
					"Does every image, chart, and video have a meaningful text alternative?",
					"Are captions and transcripts required for audio and video content?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Media handling involves codecs, sizes, and formats the requirements rarely enumerate.",
				Questions: []string{
					"Which media formats and maximum sizes must be supported?",
					"What happens with corrupt or unsupported media files?",
				},
			}
		},
	},
	assessment.SubTestability: {
		Definition: "Product features that make testing itself possible",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "A product that cannot be observed cannot be verified.",
				Questions: []string{
					"Can test environments be seeded to a known state quickly?",
					"Do logs carry enough context to confirm that an operation did what the requirement says?",
				},
			}
		},
	},
}
