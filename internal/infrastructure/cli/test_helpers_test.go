package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return buf.String()
}

func withTempDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "strategist-cli-test-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	return dir, func() {
		_ = os.Chdir(old)
		_ = os.RemoveAll(dir)
	}
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

const testStoriesDoc = `# Stories

## Carbon offset at checkout
As a shopper
I want to add a carbon offset to my order
So that my purchase is climate neutral

Acceptance Criteria:
- Offset price is displayed before payment
`
