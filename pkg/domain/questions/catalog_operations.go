package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var operationsTemplates = map[assessment.Subcategory]Template{
	assessment.SubUsers: {
		Definition: "Who uses the product and with what intent",
		Flavors: map[string]Text{
			FlavorAccessibility: {
				Rationale: "User descriptions that omit assistive-technology users leave the largest accessibility gaps undiscovered.",
				Questions: []string{
					"Which assistive technologies do real users rely on, and are they represented in test personas?",
					"Who on the team exercises the product with a screen reader before release?",
				},
			},
			FlavorML: {
				Rationale: "Personalized products behave differently per user; testing with one profile tests almost nothing.",
				Questions: []string{
					"What user cohorts does the model distinguish, and does each have a test persona with realistic history?",
					"What does a brand-new user with no history see?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Requirements name features; they rarely name the people and their differing privileges.",
				Questions: []string{
					fmt.Sprintf("Beyond the %s, which roles exist and what may each see and do?", ctx.PrimaryActor()),
					"Which users are experts running at speed, and which are first-timers who will misread the UI?",
				},
			}
		},
	},
	assessment.SubEnvironment: {
		Definition: "The real-world setting the product is used in",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Usage environment (network, locale, interruptions) shapes behavior more than lab conditions suggest.",
				Questions: []string{
					"What network conditions are realistic for users, and is offline or flaky connectivity in scope?",
					"Which time zones and locales do real users operate in?",
				},
			}
		},
	},
	assessment.SubCommonUse: {
		Definition: "What most users do most of the time",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "The highest-traffic paths deserve coverage proportional to their traffic.",
				Questions: []string{
					"Which three operations account for most real usage, and are they tested daily?",
					"What does the typical session look like from login to exit?",
				},
			}
		},
	},
	assessment.SubDisfavoredUse: {
		Definition: "Misuse, abuse, and hostile input",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Someone will use the product in ways the requirements assume nobody would.",
				Questions: []string{
					"What can a malicious or merely careless user gain by manipulating requests directly?",
					fmt.Sprintf("How is bulk scraping or automated abuse of %s prevented?", ctx.PrimaryDataType()),
					"Which injection classes (SQL, script, template) have been explicitly tested at each input?",
				},
			}
		},
	},
	assessment.SubExtremeUse: {
		Definition: "Peak and beyond-peak demand",
		Flavors: map[string]Text{
			FlavorInfrastructure: {
				Rationale: "Stated performance goals imply load profiles that should be written down and rehearsed, not assumed.",
				Questions: []string{
					"What is the target peak load in requests per second, and what is the degradation plan past it?",
					"Which operations are allowed to slow down first under pressure?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Every product has a busiest day; the question is whether it was tested before it happened.",
				Questions: []string{
					"What is the expected peak concurrency, and has it been generated in a test?",
					"What user-visible behavior is acceptable when the product is saturated?",
				},
			}
		},
	},
	assessment.SubSupportability: {
		Definition: "Keeping the product healthy in production",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Operability requirements are invisible until the first incident.",
				Questions: []string{
					"When a user reports a failure, what information lets support reproduce it?",
					"Which backups exist, and when was a restore last rehearsed?",
					"Can the product be upgraded without downtime, and rolled back?",
				},
			}
		},
	},
}
