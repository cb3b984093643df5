package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var platformTemplates = map[assessment.Subcategory]Template{
	assessment.SubExternalHardware: {
		Definition: "Hardware the product runs on or talks to but does not ship",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "External hardware variation is a test matrix nobody has written down yet.",
				Questions: []string{
					"Which devices, screen sizes, and input methods must be supported?",
					"Is there a minimum hardware specification, and what happens below it?",
				},
			}
		},
	},
	assessment.SubExternalSoftware: {
		Definition: "Software the product depends on but does not control",
		Flavors: map[string]Text{
			FlavorML: {
				Rationale: "Model runtimes and feature stores are external software with their own failure modes and version drift.",
				Questions: []string{
					"Which model runtime versions are supported, and what happens on a version mismatch?",
					"How does the product behave when the inference service is slow or down: fallback ranking, cached results, or error?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Third-party software changes on its own schedule, not yours.",
				Questions: []string{
					fmt.Sprintf("Which versions of %s are supported, and which are actually tested?", ctx.PrimaryIntegration()),
					"What external services can take the product down, and is each failure mode rehearsed?",
				},
			}
		},
	},
	assessment.SubInternalComponents: {
		Definition: "The product's own building blocks and their seams",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Component boundaries are where integration defects hide; the documents name few or none.",
				Questions: []string{
					"What are the product's major components, and which seams between them carry the most traffic?",
					"Can components be deployed or restarted independently, and what breaks when one lags behind?",
				},
			}
		},
	},
	assessment.SubExecutionEnvironment: {
		Definition: "Where the product runs",
		Flavors: map[string]Text{
			FlavorInfrastructure: {
				Rationale: "Performance targets are meaningless without a pinned execution environment to measure them in.",
				Questions: []string{
					"What instance sizes, regions, and autoscaling rules define the performance baseline?",
					"Is production topology reproducible in a test environment, and at what fidelity?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Environment differences explain most works-on-my-machine defects.",
				Questions: []string{
					"Which operating systems, browsers, or runtimes are in scope, with which versions?",
					"How do staging and production differ, and which differences have bitten before?",
				},
			}
		},
	},
}
