package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/heuristiq/strategist/pkg/domain/ai"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

// enrichmentSchemaJSON validates the shape a completion provider must
// return before its text replaces the deterministic template.
const enrichmentSchemaJSON = `{
	"type": "object",
	"required": ["rationale", "questions"],
	"properties": {
		"rationale": {"type": "string", "minLength": 1},
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

var enrichmentSchemaLoader = gojsonschema.NewStringLoader(enrichmentSchemaJSON)

// Synthesizer turns coverage results into clarifying questions. The
// provider is optional; when nil (or failing) the deterministic catalog
// renders every question.
type Synthesizer struct {
	provider ai.Provider
	warnW    io.Writer
}

func NewSynthesizer(provider ai.Provider) *Synthesizer {
	return &Synthesizer{provider: provider, warnW: os.Stderr}
}

// SetWarningWriter redirects fallback warnings, used by tests.
func (s *Synthesizer) SetWarningWriter(w io.Writer) {
	s.warnW = w
}

// Synthesize applies the suppression rules per subcategory:
// zero opportunities get the full question set, one or two get the
// rationale plus the first question only, three or more get nothing.
func (s *Synthesizer) Synthesize(ctx context.Context, coverage map[assessment.Category]assessment.CoverageResult, themeCtx *theme.ThemeContext, corpus string) map[assessment.Category]assessment.CategoryQuestions {
	catalog := Catalog()
	out := make(map[assessment.Category]assessment.CategoryQuestions, len(catalog))

	for _, cat := range assessment.Categories() {
		cov := coverage[cat]
		cq := assessment.CategoryQuestions{
			Category: cat,
			Preamble: Preamble(cat),
		}

		for _, sub := range assessment.Subcategories(cat) {
			n := cov.SubcategoryCounts[sub]
			if n >= 3 {
				continue
			}

			tmpl, ok := catalog[cat][sub]
			if !ok {
				continue
			}
			text := s.renderEnriched(ctx, cat, sub, tmpl, themeCtx, corpus)

			q := assessment.ClarifyingQuestion{
				Category:    cat,
				Subcategory: sub,
				Rationale:   text.Rationale,
			}
			if n == 0 {
				q.Questions = text.Questions
			} else if len(text.Questions) > 0 {
				q.Questions = text.Questions[:1]
			}
			cq.Questions = append(cq.Questions, q)
		}

		out[cat] = cq
	}
	return out
}

// renderEnriched asks the provider for subcategory-specific wording and
// falls back to the catalog template on any failure. The fallback path is
// the contract; enrichment is best-effort.
func (s *Synthesizer) renderEnriched(ctx context.Context, cat assessment.Category, sub assessment.Subcategory, tmpl Template, themeCtx *theme.ThemeContext, corpus string) Text {
	fallback := tmpl.Render(themeCtx)
	if s.provider == nil {
		return fallback
	}

	prompt := s.buildPrompt(cat, sub, tmpl.Definition, themeCtx, corpus)
	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		System:      "You are a senior test strategist. Return a single JSON object with a 'rationale' string and a 'questions' string array. No other text.",
		Temperature: 0.3,
		MaxTokens:   600,
	})
	if err != nil {
		fmt.Fprintf(s.warnW, "warning: question enrichment for %s/%s failed, using template: %v\n", cat, sub, err)
		return fallback
	}

	text, err := parseEnrichment(resp.Text)
	if err != nil {
		fmt.Fprintf(s.warnW, "warning: question enrichment for %s/%s returned malformed output, using template: %v\n", cat, sub, err)
		return fallback
	}
	return text
}

func (s *Synthesizer) buildPrompt(cat assessment.Category, sub assessment.Subcategory, definition string, themeCtx *theme.ThemeContext, corpus string) string {
	var b strings.Builder
	b.WriteString("The product documents below have weak test coverage in one assessment area.\n\n")
	fmt.Fprintf(&b, "Area: %s / %s (%s)\n", cat, sub, definition)
	fmt.Fprintf(&b, "Product domain: %s\n\n", themeCtx.PrimaryTheme)
	b.WriteString("Write a short rationale for why this area matters for THIS product, and 2-4 clarifying questions a tester should ask. ")
	b.WriteString("Ground every question in the document text; do not invent features.\n\nDocuments:\n")

	// Bound the prompt; the corpus can be large.
	const maxCorpus = 4000
	if len(corpus) > maxCorpus {
		corpus = corpus[:maxCorpus]
	}
	b.WriteString(corpus)
	return b.String()
}

// parseEnrichment extracts and validates the provider's JSON payload.
func parseEnrichment(raw string) (Text, error) {
	clean := extractJSONPayload(raw)
	if clean == "" {
		return Text{}, fmt.Errorf("empty response")
	}

	result, err := gojsonschema.Validate(enrichmentSchemaLoader, gojsonschema.NewStringLoader(clean))
	if err != nil {
		return Text{}, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return Text{}, fmt.Errorf("schema violations: %s", strings.Join(issues, "; "))
	}

	var payload struct {
		Rationale string   `json:"rationale"`
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return Text{}, err
	}
	return Text{Rationale: payload.Rationale, Questions: payload.Questions}, nil
}

// extractJSONPayload strips code fences and surrounding prose, keeping the
// first JSON object or array in the response.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return clean
	}

	startArray := strings.Index(clean, "[")
	startObject := strings.Index(clean, "{")
	start := -1
	if startArray == -1 {
		start = startObject
	} else if startObject == -1 || startArray < startObject {
		start = startArray
	} else {
		start = startObject
	}
	if start == -1 {
		return clean
	}

	endArray := strings.LastIndex(clean, "]")
	endObject := strings.LastIndex(clean, "}")
	end := -1
	if endArray == -1 {
		end = endObject
	} else if endObject == -1 || endArray > endObject {
		end = endArray
	} else {
		end = endObject
	}
	if end == -1 || end <= start {
		return clean
	}

	return strings.TrimSpace(clean[start : end+1])
}
