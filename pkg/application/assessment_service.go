package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heuristiq/strategist/pkg/ai"
	"github.com/heuristiq/strategist/pkg/domain"
	domainai "github.com/heuristiq/strategist/pkg/domain/ai"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/classify"
	"github.com/heuristiq/strategist/pkg/domain/extract"
	"github.com/heuristiq/strategist/pkg/domain/questions"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

// AssessmentService orchestrates one assessment run: load documents,
// extract fragments, infer the theme, classify, score coverage and
// synthesize clarifying questions.
type AssessmentService struct {
	repo     domain.WorkspaceRepository
	provider domainai.Provider
	audit    domain.AuditLogger
	usage    *UsageService
	warnW    io.Writer
}

func NewAssessmentService(repo domain.WorkspaceRepository, provider domainai.Provider, audit domain.AuditLogger) *AssessmentService {
	return &AssessmentService{
		repo:     repo,
		provider: provider,
		audit:    audit,
		usage:    NewUsageService(repo),
		warnW:    os.Stderr,
	}
}

// SetWarningWriter redirects non-fatal warnings, mainly for tests.
func (s *AssessmentService) SetWarningWriter(w io.Writer) {
	s.warnW = w
}

// Assess runs the full engine over the workspace documents and persists
// the resulting assessment.
func (s *AssessmentService) Assess(ctx context.Context) (*assessment.Assessment, error) {
	set, err := NewIntakeService(s.repo).LoadDocumentSet()
	if err != nil {
		return nil, err
	}
	if set.IsEmpty() {
		return nil, fmt.Errorf("no requirement documents in workspace; import stories or specs first")
	}
	if errs := set.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("document set is invalid: %w", errors.Join(errs...))
	}

	runID := "run-" + uuid.New().String()
	sm, err := assessment.NewRunStateMachine(runID)
	if err != nil {
		return nil, err
	}
	startedAt := time.Now().UTC()
	if err := sm.Transition("start"); err != nil {
		return nil, err
	}

	result, err := s.analyze(ctx, set)
	if err != nil {
		s.finishRun(sm, runID, startedAt, set.Hash(), nil, err)
		return nil, err
	}

	if err := s.repo.SaveAssessment(result); err != nil {
		saveErr := fmt.Errorf("failed to save assessment: %w", err)
		s.finishRun(sm, runID, startedAt, set.Hash(), nil, saveErr)
		return nil, saveErr
	}

	s.finishRun(sm, runID, startedAt, set.Hash(), result, nil)
	s.recordActivity(result)
	return result, nil
}

// analyze is the pure pipeline: no persistence, no side effects beyond
// optional AI calls for question enrichment.
func (s *AssessmentService) analyze(ctx context.Context, set *requirements.DocumentSet) (*assessment.Assessment, error) {
	fragments := extract.NewExtractor().Extract(set)
	corpus := set.CorpusText()
	themeCtx := theme.NewInferer().Infer(corpus)

	opportunities := classify.NewClassifier().ClassifyAll(classify.Input{
		Set:       set,
		Fragments: fragments,
		Theme:     themeCtx,
	})

	var all []assessment.TestOpportunity
	for _, cat := range assessment.Categories() {
		all = append(all, opportunities[cat]...)
	}
	if err := assessment.ValidateOpportunities(all); err != nil {
		return nil, fmt.Errorf("classification produced invalid opportunities: %w", err)
	}

	coverage := make(map[assessment.Category]assessment.CoverageResult, len(assessment.Categories()))
	for _, cat := range assessment.Categories() {
		coverage[cat] = assessment.Score(cat, opportunities[cat])
	}

	synth := questions.NewSynthesizer(s.enrichmentProvider())
	synth.SetWarningWriter(s.warnW)
	questionsByCat := synth.Synthesize(ctx, coverage, themeCtx, corpus)

	result := &assessment.Assessment{
		DocumentHash:    set.Hash(),
		GeneratedAt:     time.Now().UTC(),
		PrimaryTheme:    themeCtx.PrimaryTheme,
		SecondaryThemes: themeCtx.SecondaryThemes,
		Categories:      make(map[assessment.Category]assessment.CategoryAssessment, len(assessment.Categories())),
		OverallCoverage: assessment.OverallCoverage(coverage),
	}
	for _, cat := range assessment.Categories() {
		result.Categories[cat] = assessment.CategoryAssessment{
			Category:          cat,
			Elements:          fragmentsFor(cat, fragments),
			TestOpportunities: opportunities[cat],
			Coverage:          coverage[cat],
			Questions:         questionsByCat[cat].Questions,
		}
	}
	return result, nil
}

// Latest returns the most recently persisted assessment.
func (s *AssessmentService) Latest() (*assessment.Assessment, error) {
	return s.repo.LoadAssessment()
}

// History returns all recorded runs, oldest first.
func (s *AssessmentService) History() ([]assessment.AssessmentRun, error) {
	return s.repo.LoadRuns()
}

// EnrichQuestions re-synthesizes the clarifying questions of the latest
// assessment with AI enrichment and persists the result. When cat is
// empty every category is enriched. Fails when policy disables AI or no
// provider is configured; the original assessment stays untouched.
func (s *AssessmentService) EnrichQuestions(ctx context.Context, cat assessment.Category) ([]assessment.ClarifyingQuestion, error) {
	provider := s.enrichmentProvider()
	if provider == nil {
		return nil, fmt.Errorf("AI enrichment unavailable: policy disables AI or no provider is configured")
	}
	if cat != "" && !cat.IsValid() {
		return nil, fmt.Errorf("unknown category %q", cat)
	}

	result, err := s.repo.LoadAssessment()
	if err != nil {
		return nil, err
	}
	set, err := NewIntakeService(s.repo).LoadDocumentSet()
	if err != nil {
		return nil, err
	}

	corpus := set.CorpusText()
	themeCtx := theme.NewInferer().Infer(corpus)
	coverage := make(map[assessment.Category]assessment.CoverageResult, len(result.Categories))
	for c, ca := range result.Categories {
		coverage[c] = ca.Coverage
	}

	synth := questions.NewSynthesizer(provider)
	synth.SetWarningWriter(s.warnW)
	enriched := synth.Synthesize(ctx, coverage, themeCtx, corpus)

	var out []assessment.ClarifyingQuestion
	for _, c := range assessment.Categories() {
		if cat != "" && c != cat {
			continue
		}
		ca, ok := result.Categories[c]
		if !ok {
			continue
		}
		ca.Questions = enriched[c].Questions
		result.Categories[c] = ca
		out = append(out, ca.Questions...)
	}

	if err := s.repo.SaveAssessment(result); err != nil {
		return nil, fmt.Errorf("failed to save enriched assessment: %w", err)
	}
	return out, nil
}

// enrichmentProvider returns the AI provider to use for question
// enrichment, or nil when policy disables AI or no provider is wired.
// The provider is wrapped with retry and timeout handling.
func (s *AssessmentService) enrichmentProvider() domainai.Provider {
	if s.provider == nil {
		return nil
	}
	policy, err := s.repo.LoadPolicy()
	if err != nil || !policy.AllowAI {
		return nil
	}
	return ai.NewResilientProvider(s.provider)
}

// finishRun drives the run state machine to its terminal state and
// appends the run record. Run history is best-effort and never fails an
// assessment that already produced a result.
func (s *AssessmentService) finishRun(sm *assessment.RunStateMachine, runID string, startedAt time.Time, hash string, result *assessment.Assessment, runErr error) {
	run := assessment.AssessmentRun{
		ID:           runID,
		StartedAt:    startedAt,
		FinishedAt:   time.Now().UTC(),
		DocumentHash: hash,
	}

	if runErr != nil {
		_ = sm.Transition("fail")
		run.Error = runErr.Error()
	} else {
		_ = sm.Transition("complete")
		run.OverallCoverage = result.OverallCoverage
		run.Opportunities = result.TotalOpportunities()
	}
	run.Status = sm.CurrentStatus()

	if err := s.repo.AppendRun(run); err != nil {
		fmt.Fprintf(s.warnW, "warning: failed to record run: %v\n", err)
	}
}

// recordActivity writes the audit event and usage counters for a
// completed assessment. Both are best-effort.
func (s *AssessmentService) recordActivity(result *assessment.Assessment) {
	actor := "human"
	providerID := "template"
	if p := s.enrichmentProvider(); p != nil {
		actor = "ai"
		providerID = p.ID()
	}

	if s.audit != nil {
		err := s.audit.Log("assessment.completed", actor, map[string]interface{}{
			"document_hash":    result.DocumentHash,
			"overall_coverage": result.OverallCoverage,
			"opportunities":    result.TotalOpportunities(),
			"open_questions":   result.OpenQuestionCount(),
			"primary_theme":    result.PrimaryTheme,
		})
		if err != nil {
			fmt.Fprintf(s.warnW, "warning: failed to write audit event: %v\n", err)
		}
	}

	if err := s.usage.RecordAssessment(providerID); err != nil {
		fmt.Fprintf(s.warnW, "warning: failed to update usage: %v\n", err)
	}
}

// fragmentsFor selects the fragments whose candidate categories include
// the given category.
func fragmentsFor(cat assessment.Category, fragments []assessment.Fragment) []assessment.Fragment {
	var out []assessment.Fragment
	for _, f := range fragments {
		for _, c := range f.CandidateCategories {
			if c == cat {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
