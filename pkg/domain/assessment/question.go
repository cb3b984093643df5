package assessment

// ClarifyingQuestion is the output of gap analysis for one weakly covered
// subcategory. Questions is empty when the subcategory is well covered.
type ClarifyingQuestion struct {
	Category    Category    `json:"category"`
	Subcategory Subcategory `json:"subcategory"`
	Rationale   string      `json:"rationale,omitempty"`
	Questions   []string    `json:"questions,omitempty"`
}

// CategoryQuestions groups the clarifying questions of one category under
// an optional preamble for rendering.
type CategoryQuestions struct {
	Category  Category             `json:"category"`
	Preamble  string               `json:"preamble,omitempty"`
	Questions []ClarifyingQuestion `json:"questions"`
}
