package assessment

import "time"

// CategoryAssessment is the full result for one category.
type CategoryAssessment struct {
	Category          Category             `json:"category"`
	Elements          []Fragment           `json:"elements"`
	TestOpportunities []TestOpportunity    `json:"test_opportunities"`
	Coverage          CoverageResult       `json:"coverage"`
	Questions         []ClarifyingQuestion `json:"questions,omitempty"`
}

// Assessment is the complete output of one run over a document set.
type Assessment struct {
	DocumentHash    string                          `json:"document_hash"`
	GeneratedAt     time.Time                       `json:"generated_at"`
	PrimaryTheme    string                          `json:"primary_theme"`
	SecondaryThemes []string                        `json:"secondary_themes,omitempty"`
	Categories      map[Category]CategoryAssessment `json:"categories"`
	OverallCoverage int                             `json:"overall_coverage"`
}

// TotalOpportunities counts opportunities across all categories.
func (a *Assessment) TotalOpportunities() int {
	n := 0
	for _, ca := range a.Categories {
		n += len(ca.TestOpportunities)
	}
	return n
}

// TotalFragments counts extracted fragments across all categories. A
// fragment with several candidate categories appears in each, so this is
// a placement count, not a distinct-fragment count.
func (a *Assessment) TotalFragments() int {
	n := 0
	for _, ca := range a.Categories {
		n += len(ca.Elements)
	}
	return n
}

// OpenQuestionCount counts subcategories that produced at least one
// clarifying question.
func (a *Assessment) OpenQuestionCount() int {
	n := 0
	for _, ca := range a.Categories {
		for _, q := range ca.Questions {
			if len(q.Questions) > 0 {
				n++
			}
		}
	}
	return n
}

// RunStatus is the lifecycle state of an assessment run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// AssessmentRun records one invocation of the engine for historical
// analytics. Runs append to the workspace; failures carry Error.
type AssessmentRun struct {
	ID              string    `json:"id"`
	Status          RunStatus `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at,omitempty"`
	DocumentHash    string    `json:"document_hash,omitempty"`
	OverallCoverage int       `json:"overall_coverage,omitempty"`
	Opportunities   int       `json:"opportunities,omitempty"`
	Error           string    `json:"error,omitempty"`
}
