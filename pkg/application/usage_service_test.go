package application_test

import (
	"os"
	"testing"

	"github.com/heuristiq/strategist/pkg/application"
	"github.com/heuristiq/strategist/pkg/storage"
)

func TestUsageService_RecordAssessment(t *testing.T) {
	tempDir, _ := os.MkdirTemp("", "strategist-usage-*")
	defer func() { _ = os.RemoveAll(tempDir) }()

	repo := storage.NewFilesystemRepository(tempDir)
	_ = repo.Initialize()
	svc := application.NewUsageService(repo)

	if err := svc.RecordAssessment("template"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.RecordAssessment("ollama:llama3"); err != nil {
		t.Fatalf("record 2: %v", err)
	}

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}
	if stats.TotalAssessments != 2 {
		t.Errorf("expected 2 assessments, got %d", stats.TotalAssessments)
	}
	if stats.ProviderStats["template"] != 1 {
		t.Errorf("expected 1 template assessment, got %d", stats.ProviderStats["template"])
	}
	if stats.LastAssessmentAt.IsZero() {
		t.Error("expected last assessment time to be set")
	}
}

func TestUsageService_RecordTokenUsage(t *testing.T) {
	tempDir, _ := os.MkdirTemp("", "strategist-usage-tokens-*")
	defer func() { _ = os.RemoveAll(tempDir) }()

	repo := storage.NewFilesystemRepository(tempDir)
	_ = repo.Initialize()
	svc := application.NewUsageService(repo)

	if err := svc.RecordTokenUsage("gpt-4o-mini", 100, 50); err != nil {
		t.Fatalf("record tokens: %v", err)
	}
	if err := svc.RecordTokenUsage("gpt-4o-mini", 200, 100); err != nil {
		t.Fatalf("record tokens 2: %v", err)
	}

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}

	if got := stats.ProviderStats["gpt-4o-mini:input"]; got != 300 {
		t.Errorf("expected 300 input tokens, got %d", got)
	}
	if got := stats.ProviderStats["gpt-4o-mini:output"]; got != 150 {
		t.Errorf("expected 150 output tokens, got %d", got)
	}

	total, err := svc.GetTotalTokens()
	if err != nil {
		t.Fatalf("total tokens: %v", err)
	}
	if total != 450 {
		t.Errorf("expected 450 total tokens, got %d", total)
	}
}

func TestUsageService_WithinBudget(t *testing.T) {
	repo := &MockRepo{}
	svc := application.NewUsageService(repo)

	if err := svc.RecordTokenUsage("gpt-4o-mini", 400, 100); err != nil {
		t.Fatalf("record tokens: %v", err)
	}

	ok, err := svc.WithinBudget(1000)
	if err != nil {
		t.Fatalf("WithinBudget: %v", err)
	}
	if !ok {
		t.Error("expected usage under limit")
	}

	ok, err = svc.WithinBudget(500)
	if err != nil {
		t.Fatalf("WithinBudget: %v", err)
	}
	if ok {
		t.Error("expected usage at limit to be over budget")
	}

	ok, err = svc.WithinBudget(0)
	if err != nil {
		t.Fatalf("WithinBudget: %v", err)
	}
	if !ok {
		t.Error("expected zero limit to mean unlimited")
	}
}

func TestUsageService_GetUsageEmptyWorkspace(t *testing.T) {
	repo := &MockRepo{}
	svc := application.NewUsageService(repo)

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}
	if stats.TotalAssessments != 0 {
		t.Errorf("expected zero assessments, got %d", stats.TotalAssessments)
	}
	if stats.ProviderStats == nil {
		t.Error("expected non-nil provider stats")
	}
}
