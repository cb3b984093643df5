package questions

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

var timeTemplates = map[assessment.Subcategory]Template{
	assessment.SubSchedules: {
		Definition: "Things that happen on a calendar or clock",
		Flavors: map[string]Text{
			FlavorSustainability: {
				Rationale: "Offset purchases and emission-factor refreshes typically run on schedules whose failure is silent.",
				Questions: []string{
					"When are offsets actually purchased from the provider: per order, batched nightly, or monthly?",
					"What happens when a scheduled emission-factor refresh fails or runs twice?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Scheduled behavior fails on the boundaries: DST shifts, month ends, missed windows.",
				Questions: []string{
					"What runs on a schedule, and what happens when a run is missed or doubled?",
					"How do schedules behave across daylight-saving transitions and month boundaries?",
				},
			}
		},
	},
	assessment.SubRatesAndFrequency: {
		Definition: "How often things happen and how fast they arrive",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Rate assumptions are baked into designs and rarely surfaced as testable limits.",
				Questions: []string{
					fmt.Sprintf("What arrival rate of %s is assumed, and what happens at ten times that?", ctx.PrimaryDataType()),
					"Are there rate limits per user or per client, and what does hitting one look like?",
				},
			}
		},
	},
	assessment.SubConcurrency: {
		Definition: "Simultaneous activity on shared state",
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Concurrent edits and double submissions are certainties at scale, not edge cases.",
				Questions: []string{
					fmt.Sprintf("What happens when two %ss modify the same record at once?", ctx.PrimaryActor()),
					"Is a double-clicked submit idempotent everywhere it matters?",
				},
			}
		},
	},
	assessment.SubTimeouts: {
		Definition: "Deadlines the product imposes and honors",
		Flavors: map[string]Text{
			FlavorInfrastructure: {
				Rationale: "Timeout budgets compose; without an end-to-end budget, individual timeouts add up to user-visible hangs.",
				Questions: []string{
					"What is the end-to-end latency budget per request, and how is it divided among dependencies?",
					"Which calls have no timeout today?",
				},
			},
		},
		Generic: func(ctx *theme.ThemeContext) Text {
			return Text{
				Rationale: "Operations without deadlines hang; deadlines without requirements are guesses.",
				Questions: []string{
					fmt.Sprintf("How long may a call to %s take before the product gives up, and what does the user see then?", ctx.PrimaryIntegration()),
					"Do sessions and tokens expire at well-defined moments, including mid-operation?",
				},
			}
		},
	},
}
