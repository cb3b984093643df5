package assessment

import "math"

// CoverageResult summarizes how well one category's subcategory space is
// touched by the generated opportunities.
type CoverageResult struct {
	Category          Category            `json:"category"`
	TestCount         int                 `json:"test_count"`
	SubcategoryCounts map[Subcategory]int `json:"subcategory_counts"`
	CoveragePercent   int                 `json:"coverage_percent"`
	UncoveredSubareas []Subcategory       `json:"uncovered_subareas,omitempty"`
}

// Score computes coverage for one category over the opportunities that
// belong to it. The denominator is the declared subcategory count, never
// the number of subcategories that happen to appear, so an empty category
// scores 0 rather than dividing by zero.
func Score(cat Category, opps []TestOpportunity) CoverageResult {
	counts := make(map[Subcategory]int)
	total := 0
	for _, op := range opps {
		if op.Category != cat {
			continue
		}
		counts[op.Subcategory]++
		total++
	}

	declared := DeclaredSubcategoryCount(cat)
	touched := 0
	var uncovered []Subcategory
	for _, sub := range Subcategories(cat) {
		if counts[sub] > 0 {
			touched++
		} else {
			uncovered = append(uncovered, sub)
		}
	}

	percent := 0
	if declared > 0 {
		percent = int(math.Round(100 * float64(touched) / float64(declared)))
	}

	return CoverageResult{
		Category:          cat,
		TestCount:         total,
		SubcategoryCounts: counts,
		CoveragePercent:   percent,
		UncoveredSubareas: uncovered,
	}
}

// OverallCoverage is the flat average of the seven category percentages,
// rounded. Every category weighs the same regardless of subcategory count.
func OverallCoverage(results map[Category]CoverageResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	n := 0
	for _, cat := range Categories() {
		r, ok := results[cat]
		if !ok {
			continue
		}
		sum += r.CoveragePercent
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
