package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupWorkspace(t *testing.T) (string, func()) {
	t.Helper()
	t.Setenv("STRATEGIST_AI_PROVIDER", "mock")
	t.Setenv("STRATEGIST_AI_MODEL", "")

	dir, cleanup := withTempDir(t)
	if err := runCommand(t, "init"); err != nil {
		cleanup()
		t.Fatalf("init: %v", err)
	}
	return dir, cleanup
}

func TestInitCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	if _, err := os.Stat(filepath.Join(dir, ".strategist")); err != nil {
		t.Errorf("expected .strategist directory: %v", err)
	}
}

func TestImportAndAssessCmds(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "assess"); err != nil {
			t.Errorf("assess: %v", err)
		}
	})
	if !strings.Contains(out, "Overall coverage:") {
		t.Errorf("assess output missing coverage: %s", out)
	}

	if _, err := os.Stat(filepath.Join(dir, ".strategist", "assessment.json")); err != nil {
		t.Errorf("expected assessment.json: %v", err)
	}
}

func TestImportCmdUnknownKind(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "poems"); err == nil {
		t.Error("expected error for unknown kind")
	}
	importKind = "stories"
}

func TestAnalyzeCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	writeDoc(t, dir, filepath.Join("docs", "stories.md"), testStoriesDoc)

	out := captureStdout(t, func() {
		if err := runCommand(t, "analyze"); err != nil {
			t.Errorf("analyze: %v", err)
		}
	})
	if !strings.Contains(out, "Imported 1 stories") {
		t.Errorf("analyze output: %s", out)
	}
}

func TestAssessCmdWithoutDocuments(t *testing.T) {
	_, cleanup := setupWorkspace(t)
	defer cleanup()

	if err := runCommand(t, "assess"); err == nil {
		t.Error("expected error with no documents")
	}
}

func TestStatusCmdJSON(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "status", "--json"); err != nil {
			t.Errorf("status: %v", err)
		}
	})
	if !strings.Contains(out, `"overall_coverage"`) {
		t.Errorf("status JSON missing coverage: %s", out)
	}
	statusJSON = false
}

func TestQuestionsCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "questions"); err != nil {
			t.Errorf("questions: %v", err)
		}
	})
	if out == "" {
		t.Error("expected questions output")
	}

	if err := runCommand(t, "questions", "--category", "velocity"); err == nil {
		t.Error("expected error for unknown category")
	}
	questionsCategory = ""
}

func TestReportCmdFormats(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	outFile := filepath.Join(dir, "report.md")
	if err := runCommand(t, "report", "--out", outFile); err != nil {
		t.Fatalf("report: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "# Test Strategy Assessment") {
		t.Errorf("unexpected report content: %.80s", data)
	}

	featureFile := filepath.Join(dir, "opps.feature")
	if err := runCommand(t, "report", "--format", "gherkin", "--out", featureFile); err != nil {
		t.Fatalf("report gherkin: %v", err)
	}
	data, err = os.ReadFile(featureFile)
	if err != nil {
		t.Fatalf("read feature: %v", err)
	}
	if !strings.Contains(string(data), "Feature:") {
		t.Errorf("unexpected gherkin content: %.80s", data)
	}

	htmlFile := filepath.Join(dir, "report.html")
	if err := runCommand(t, "report", "--format", "html", "--out", htmlFile); err != nil {
		t.Fatalf("report html: %v", err)
	}

	reportFormat = "markdown"
	reportOut = ""
}

func TestAuditVerifyCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "audit", "verify"); err != nil {
			t.Errorf("audit verify: %v", err)
		}
	})
	if !strings.Contains(out, "intact") {
		t.Errorf("audit verify output: %s", out)
	}
}

func TestUsageCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "status", "usage"); err != nil {
			t.Errorf("status usage: %v", err)
		}
	})
	if !strings.Contains(out, "Total Assessments: 1") {
		t.Errorf("usage output: %s", out)
	}
}

func TestTimelineCmd(t *testing.T) {
	dir, cleanup := setupWorkspace(t)
	defer cleanup()

	path := writeDoc(t, dir, "stories.md", testStoriesDoc)
	if err := runCommand(t, "import", path, "--kind", "stories"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := runCommand(t, "assess"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runCommand(t, "audit", "timeline"); err != nil {
			t.Errorf("audit timeline: %v", err)
		}
	})
	if !strings.Contains(out, "assessment.completed") {
		t.Errorf("timeline output: %s", out)
	}
}

func TestDashboardCmdSkipped(t *testing.T) {
	t.Setenv("STRATEGIST_SKIP_DASHBOARD_RUN", "true")
	_, cleanup := setupWorkspace(t)
	defer cleanup()

	if err := runCommand(t, "dashboard"); err != nil {
		t.Errorf("dashboard: %v", err)
	}
}

func TestMCPCmdSkipped(t *testing.T) {
	t.Setenv("STRATEGIST_SKIP_MCP_START", "true")
	_, cleanup := setupWorkspace(t)
	defer cleanup()

	if err := runCommand(t, "mcp"); err != nil {
		t.Errorf("mcp: %v", err)
	}
}

func TestServeCmdSkipped(t *testing.T) {
	t.Setenv("STRATEGIST_SKIP_SERVE_RUN", "true")
	_, cleanup := setupWorkspace(t)
	defer cleanup()

	if err := runCommand(t, "serve"); err != nil {
		t.Errorf("serve: %v", err)
	}
}
