package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("STRATEGIST_AI_PROVIDER", "mock")
	t.Setenv("STRATEGIST_AI_MODEL", "")

	root := t.TempDir()
	s, err := NewServer(root)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func importSampleDocs(t *testing.T, s *Server) {
	t.Helper()
	if err := s.repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	stories := `# Stories

## Carbon offset at checkout
As a shopper
I want to add a carbon offset to my order
So that my purchase is climate neutral

Acceptance Criteria:
- Offset price is displayed before payment
`
	path := filepath.Join(t.TempDir(), "stories.md")
	if err := os.WriteFile(path, []byte(stories), 0600); err != nil {
		t.Fatalf("write stories: %v", err)
	}
	if _, err := s.handleImportDocs(context.Background(), ImportArgs{Path: path, Kind: "stories"}); err != nil {
		t.Fatalf("import stories: %v", err)
	}
}

func TestHandleInit(t *testing.T) {
	s := newTestServer(t)

	msg, err := s.handleInit(context.Background(), struct{}{})
	if err != nil {
		t.Fatalf("handleInit: %v", err)
	}
	if !strings.Contains(msg, "initialized") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !s.repo.IsInitialized() {
		t.Error("workspace should be initialized")
	}
}

func TestHandleImportDocsRequiresPath(t *testing.T) {
	s := newTestServer(t)

	if _, err := s.handleImportDocs(context.Background(), ImportArgs{}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestHandleImportDocsUnknownKind(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleImportDocs(context.Background(), ImportArgs{Path: "docs.md", Kind: "poems"})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestHandleAssessWithoutDocuments(t *testing.T) {
	s := newTestServer(t)

	if _, err := s.handleAssess(context.Background(), struct{}{}); err == nil {
		t.Error("expected error when no documents imported")
	}
}

func TestHandleAssessAndRetrieve(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)

	result, err := s.handleAssess(context.Background(), struct{}{})
	if err != nil {
		t.Fatalf("handleAssess: %v", err)
	}
	summary, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if _, ok := summary["overall_coverage"]; !ok {
		t.Error("summary missing overall_coverage")
	}

	if _, err := s.handleGetAssessment(context.Background(), struct{}{}); err != nil {
		t.Errorf("handleGetAssessment: %v", err)
	}

	cov, err := s.handleGetCoverage(context.Background(), CoverageArgs{Uncovered: true})
	if err != nil {
		t.Fatalf("handleGetCoverage: %v", err)
	}
	data, err := json.Marshal(cov)
	if err != nil {
		t.Fatalf("marshal coverage: %v", err)
	}
	if !strings.Contains(string(data), `"categories"`) {
		t.Errorf("coverage response missing categories: %s", data)
	}
}

func TestHandleGetAssessmentBeforeAssess(t *testing.T) {
	s := newTestServer(t)

	if _, err := s.handleGetAssessment(context.Background(), struct{}{}); err == nil {
		t.Error("expected error before any assessment")
	}
}

func TestHandleGetQuestionsRejectsUnknownCategory(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)
	if _, err := s.handleAssess(context.Background(), struct{}{}); err != nil {
		t.Fatalf("handleAssess: %v", err)
	}

	if _, err := s.handleGetQuestions(context.Background(), QuestionsArgs{Category: "velocity"}); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := s.handleGetQuestions(context.Background(), QuestionsArgs{Category: "function"}); err != nil {
		t.Errorf("handleGetQuestions(function): %v", err)
	}
}

func TestHandleStatus(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)

	result, err := s.handleStatus(context.Background(), struct{}{})
	if err != nil {
		t.Fatalf("handleStatus: %v", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal status: %v", err)
	}
	if !strings.Contains(string(data), `"stories":1`) {
		t.Errorf("status missing story count: %s", data)
	}
}

func TestHandleExport(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)
	if _, err := s.handleAssess(context.Background(), struct{}{}); err != nil {
		t.Fatalf("handleAssess: %v", err)
	}

	md, err := s.handleExport(context.Background(), ExportArgs{Format: "markdown"})
	if err != nil {
		t.Fatalf("export markdown: %v", err)
	}
	if !strings.Contains(md, "# Test Strategy Assessment") {
		t.Errorf("unexpected markdown output: %.80s", md)
	}

	gherkin, err := s.handleExport(context.Background(), ExportArgs{Format: "gherkin"})
	if err != nil {
		t.Fatalf("export gherkin: %v", err)
	}
	if !strings.Contains(gherkin, "Feature:") {
		t.Errorf("unexpected gherkin output: %.80s", gherkin)
	}

	if _, err := s.handleExport(context.Background(), ExportArgs{Format: "pdf"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHandleGetRunsLimit(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)
	for i := 0; i < 3; i++ {
		if _, err := s.handleAssess(context.Background(), struct{}{}); err != nil {
			t.Fatalf("handleAssess: %v", err)
		}
	}

	result, err := s.handleGetRuns(context.Background(), RunsArgs{Limit: 2})
	if err != nil {
		t.Fatalf("handleGetRuns: %v", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal runs: %v", err)
	}
	var runs []map[string]any
	if err := json.Unmarshal(data, &runs); err != nil {
		t.Fatalf("unmarshal runs: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("runs = %d, want 2", len(runs))
	}
}

func TestHandleAuditVerify(t *testing.T) {
	s := newTestServer(t)
	importSampleDocs(t, s)
	if _, err := s.handleAssess(context.Background(), struct{}{}); err != nil {
		t.Fatalf("handleAssess: %v", err)
	}

	result, err := s.handleAuditVerify(context.Background(), struct{}{})
	if err != nil {
		t.Fatalf("handleAuditVerify: %v", err)
	}
	msg, ok := result.(string)
	if !ok || !strings.Contains(msg, "intact") {
		t.Errorf("unexpected verify result: %v", result)
	}
}
