package assessment

// FragmentKind tells what sort of statement a fragment is.
type FragmentKind string

const (
	FragmentAction     FragmentKind = "action"
	FragmentCondition  FragmentKind = "condition"
	FragmentConstraint FragmentKind = "constraint"
	FragmentInterface  FragmentKind = "interface"
	FragmentData       FragmentKind = "data"
)

// Fragment is one testable statement pulled out of a requirement artifact.
// CandidateCategories is a non-binding hint; the category passes make the
// final call.
type Fragment struct {
	ID                  string       `json:"id"`
	Text                string       `json:"text"`
	Kind                FragmentKind `json:"kind"`
	SourceID            string       `json:"source_id"`
	SourceType          string       `json:"source_type"` // story | criterion | spec | architecture
	CandidateCategories []Category   `json:"candidate_categories,omitempty"`
	Priority            Priority     `json:"priority"`
	Tags                []string     `json:"tags,omitempty"`
}
