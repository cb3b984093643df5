package application_test

import (
	"context"
	"io"
	"testing"

	"github.com/heuristiq/strategist/pkg/ai"
	"github.com/heuristiq/strategist/pkg/application"
	"github.com/heuristiq/strategist/pkg/domain"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

func sampleStories() []requirements.UserStory {
	return []requirements.UserStory{
		{
			ID:     "story-001",
			Title:  "Carbon offset at checkout",
			AsA:    "shopper",
			IWant:  "to add a carbon offset to my order",
			SoThat: "my purchase is climate neutral",
			AcceptanceCriteria: []requirements.AcceptanceCriterion{
				{ID: "story-001-ac-1", Description: "When the cart total changes, the offset price is recalculated"},
				{ID: "story-001-ac-2", Description: "Offset data is stored with the order record"},
			},
			Priority: "high",
			Tags:     []string{"sustainability"},
		},
	}
}

// newAssessmentService wires a service against the mock repo. A nil
// provider must stay a nil interface, hence the explicit branch.
func newAssessmentService(repo *MockRepo, provider *ai.MockProvider) *application.AssessmentService {
	audit := application.NewAuditService(repo)
	var svc *application.AssessmentService
	if provider == nil {
		svc = application.NewAssessmentService(repo, nil, audit)
	} else {
		svc = application.NewAssessmentService(repo, provider, audit)
	}
	svc.SetWarningWriter(io.Discard)
	return svc
}

func TestAssessEmptyWorkspaceFails(t *testing.T) {
	repo := &MockRepo{}
	svc := newAssessmentService(repo, nil)

	if _, err := svc.Assess(context.Background()); err == nil {
		t.Fatal("expected error for empty workspace")
	}
}

func TestAssessRejectsInvalidDocuments(t *testing.T) {
	repo := &MockRepo{
		Stories: []requirements.UserStory{
			{ID: "dup", Title: "One"},
			{ID: "dup", Title: "Two"},
		},
	}
	svc := newAssessmentService(repo, nil)

	if _, err := svc.Assess(context.Background()); err == nil {
		t.Fatal("expected validation error for duplicate story IDs")
	}
}

func TestAssessProducesAllCategories(t *testing.T) {
	repo := &MockRepo{Stories: sampleStories()}
	svc := newAssessmentService(repo, nil)

	result, err := svc.Assess(context.Background())
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if len(result.Categories) != 7 {
		t.Errorf("expected 7 categories, got %d", len(result.Categories))
	}
	for _, cat := range assessment.Categories() {
		ca, ok := result.Categories[cat]
		if !ok {
			t.Errorf("missing category %s", cat)
			continue
		}
		if ca.Coverage.Category != cat {
			t.Errorf("category %s has coverage for %s", cat, ca.Coverage.Category)
		}
	}

	if result.PrimaryTheme == "" {
		t.Error("expected a primary theme")
	}
	if result.OverallCoverage <= 0 || result.OverallCoverage > 100 {
		t.Errorf("overall coverage out of range: %d", result.OverallCoverage)
	}
	if result.DocumentHash == "" {
		t.Error("expected a document hash")
	}
}

func TestAssessPersistsResultAndRun(t *testing.T) {
	repo := &MockRepo{Stories: sampleStories()}
	svc := newAssessmentService(repo, nil)

	result, err := svc.Assess(context.Background())
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if repo.Assessment == nil {
		t.Fatal("expected assessment to be saved")
	}
	if repo.Assessment.DocumentHash != result.DocumentHash {
		t.Error("saved assessment does not match returned result")
	}

	if len(repo.Runs) != 1 {
		t.Fatalf("expected 1 run record, got %d", len(repo.Runs))
	}
	run := repo.Runs[0]
	if run.Status != assessment.RunCompleted {
		t.Errorf("expected completed run, got %s", run.Status)
	}
	if run.OverallCoverage != result.OverallCoverage {
		t.Errorf("run coverage %d does not match result %d", run.OverallCoverage, result.OverallCoverage)
	}
	if run.Opportunities == 0 {
		t.Error("expected run to record opportunity count")
	}
}

func TestAssessRecordsAuditEventAndUsage(t *testing.T) {
	repo := &MockRepo{Stories: sampleStories()}
	svc := newAssessmentService(repo, nil)

	if _, err := svc.Assess(context.Background()); err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if len(repo.Events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(repo.Events))
	}
	event := repo.Events[0]
	if event.Action != "assessment.completed" {
		t.Errorf("expected assessment.completed, got %s", event.Action)
	}
	if event.Actor != "human" {
		t.Errorf("expected human actor without AI, got %s", event.Actor)
	}
	if event.Hash == "" {
		t.Error("expected audit event to carry its hash")
	}

	if repo.Usage == nil {
		t.Fatal("expected usage stats to be updated")
	}
	if repo.Usage.TotalAssessments != 1 {
		t.Errorf("expected 1 assessment in usage, got %d", repo.Usage.TotalAssessments)
	}
	if repo.Usage.ProviderStats["template"] != 1 {
		t.Errorf("expected template provider count 1, got %d", repo.Usage.ProviderStats["template"])
	}
}

func TestAssessUsesProviderWhenPolicyAllows(t *testing.T) {
	repo := &MockRepo{
		Stories: sampleStories(),
		Policy:  &domain.PolicyConfig{AllowAI: true},
	}
	provider := &ai.MockProvider{Model: "test-model"}
	svc := newAssessmentService(repo, provider)

	if _, err := svc.Assess(context.Background()); err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if provider.Calls == 0 {
		t.Error("expected provider to be called for question enrichment")
	}
	if len(repo.Events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(repo.Events))
	}
	if repo.Events[0].Actor != "ai" {
		t.Errorf("expected ai actor, got %s", repo.Events[0].Actor)
	}
}

func TestAssessPolicyDisablesProvider(t *testing.T) {
	repo := &MockRepo{
		Stories: sampleStories(),
		Policy:  &domain.PolicyConfig{AllowAI: false},
	}
	provider := &ai.MockProvider{Model: "test-model"}
	svc := newAssessmentService(repo, provider)

	if _, err := svc.Assess(context.Background()); err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if provider.Calls != 0 {
		t.Errorf("expected no provider calls under restrictive policy, got %d", provider.Calls)
	}
	if repo.Events[0].Actor != "human" {
		t.Errorf("expected human actor when AI disabled, got %s", repo.Events[0].Actor)
	}
}

func TestEnrichQuestionsRequiresProvider(t *testing.T) {
	repo := &MockRepo{Stories: sampleStories()}
	svc := newAssessmentService(repo, nil)

	if _, err := svc.Assess(context.Background()); err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if _, err := svc.EnrichQuestions(context.Background(), ""); err == nil {
		t.Fatal("expected error without a provider")
	}
}

func TestEnrichQuestionsUpdatesAssessment(t *testing.T) {
	repo := &MockRepo{
		Stories: sampleStories(),
		Policy:  &domain.PolicyConfig{AllowAI: true},
	}
	provider := &ai.MockProvider{
		Model:    "test-model",
		Response: `{"rationale": "enriched rationale", "questions": ["enriched question?"]}`,
	}
	svc := newAssessmentService(repo, provider)

	if _, err := svc.Assess(context.Background()); err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if _, err := svc.EnrichQuestions(context.Background(), "nonsense"); err == nil {
		t.Error("expected error for unknown category")
	}

	enriched, err := svc.EnrichQuestions(context.Background(), assessment.CategoryTime)
	if err != nil {
		t.Fatalf("EnrichQuestions: %v", err)
	}
	for _, q := range enriched {
		if q.Category != assessment.CategoryTime {
			t.Errorf("expected only time questions, got %s", q.Category)
		}
	}
	if repo.Assessment == nil {
		t.Fatal("expected enriched assessment to be saved")
	}
}

func TestLatestReturnsSavedAssessment(t *testing.T) {
	repo := &MockRepo{Stories: sampleStories()}
	svc := newAssessmentService(repo, nil)

	result, err := svc.Assess(context.Background())
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	latest, err := svc.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.DocumentHash != result.DocumentHash {
		t.Error("Latest returned a different assessment")
	}
}
