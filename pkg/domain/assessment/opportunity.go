package assessment

import (
	"fmt"
	"strings"
)

// Technique is a named test design technique.
type Technique string

const (
	TechniqueBoundaryValueAnalysis   Technique = "boundary-value-analysis"
	TechniqueDecisionTable           Technique = "decision-table"
	TechniqueStateTransition         Technique = "state-transition"
	TechniquePairwise                Technique = "pairwise"
	TechniqueEquivalencePartitioning Technique = "equivalence-partitioning"
	TechniqueExploratory             Technique = "exploratory"
	TechniqueErrorGuessing           Technique = "error-guessing"
	TechniquePerformanceTesting      Technique = "performance-testing"
	TechniqueSecurityTesting         Technique = "security-testing"
)

// Priority ranks a test opportunity, P0 highest.
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// ParsePriority maps story priority vocabulary onto P-levels. Unknown or
// empty values default to P2.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical", "p0":
		return PriorityP0
	case "high", "p1":
		return PriorityP1
	case "medium", "p2":
		return PriorityP2
	case "low", "p3":
		return PriorityP3
	default:
		return PriorityP2
	}
}

// TestOpportunity is a concrete, prioritized thing worth testing, anchored
// to a category/subcategory and traceable to the source artifact that
// produced it. Source is "baseline" for synthetic opportunities.
type TestOpportunity struct {
	ID                string      `json:"id"`
	Category          Category    `json:"category"`
	Subcategory       Subcategory `json:"subcategory"`
	Description       string      `json:"description"`
	Technique         Technique   `json:"technique"`
	Priority          Priority    `json:"priority"`
	Source            string      `json:"source"`
	SourceFragmentIDs []string    `json:"source_fragment_ids,omitempty"`
}

// OpportunityID builds the deterministic identifier for an opportunity.
// Identity derives from placement and provenance, not description text, so
// rewording a description does not change identity across runs.
func OpportunityID(cat Category, sub Subcategory, source string) string {
	return fmt.Sprintf("op-%s-%s-%s", cat, sub, source)
}

// ValidateOpportunities checks cross-opportunity integrity. Duplicate IDs
// indicate a generator bug and fail the whole assessment.
func ValidateOpportunities(opps []TestOpportunity) error {
	seen := make(map[string]bool, len(opps))
	for _, op := range opps {
		if op.ID == "" {
			return fmt.Errorf("opportunity with empty ID (%s/%s from %s)", op.Category, op.Subcategory, op.Source)
		}
		if seen[op.ID] {
			return fmt.Errorf("duplicate opportunity ID: %s", op.ID)
		}
		seen[op.ID] = true
		if !op.Category.IsValid() {
			return fmt.Errorf("opportunity %s has unknown category %q", op.ID, op.Category)
		}
		if CategoryOf(op.Subcategory) != op.Category {
			return fmt.Errorf("opportunity %s subcategory %q does not belong to category %q", op.ID, op.Subcategory, op.Category)
		}
	}
	return nil
}
