package classify

import (
	"fmt"
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

var (
	reSchedule = regexp.MustCompile(`(?i)\b(schedul|cron|daily|hourly|weekly|monthly|nightly|recurring)`)
	reRates    = regexp.MustCompile(`(?i)\b(rate|frequency|per second|per minute|throughput|burst|quota)`)
	reTimeout  = regexp.MustCompile(`(?i)\b(timeout|deadline|expir|latency|slow|within \d)`)
)

// classifyTime covers when things happen. Concurrency and timeout
// baselines always fire; scheduled and rate-sensitive behavior derives
// from fragment wording.
func classifyTime(in Input) []assessment.TestOpportunity {
	b := newBuilder()

	for _, f := range in.Fragments {
		if reSchedule.MatchString(f.Text) {
			b.derived(assessment.CategoryTime, assessment.SubSchedules, f,
				fmt.Sprintf("Trigger the scheduled behavior early, late, and twice: %s", f.Text),
				assessment.TechniqueStateTransition, f.Priority)
		}
		if reRates.MatchString(f.Text) {
			b.derived(assessment.CategoryTime, assessment.SubRatesAndFrequency, f,
				fmt.Sprintf("Push the rate and frequency limits of: %s", f.Text),
				assessment.TechniquePerformanceTesting, f.Priority)
		}
		if reTimeout.MatchString(f.Text) {
			b.derived(assessment.CategoryTime, assessment.SubTimeouts, f,
				fmt.Sprintf("Hold the dependency past its deadline in: %s", f.Text),
				assessment.TechniqueErrorGuessing, f.Priority)
		}
	}

	b.synthetic(assessment.CategoryTime, assessment.SubConcurrency,
		"Run the same operation concurrently from multiple sessions and look for races",
		assessment.TechniqueErrorGuessing, assessment.PriorityP1)
	b.synthetic(assessment.CategoryTime, assessment.SubTimeouts,
		"Stall each external dependency and verify the product times out rather than hangs",
		assessment.TechniqueErrorGuessing, assessment.PriorityP2)

	return b.opps
}
