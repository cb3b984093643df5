package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heuristiq/strategist/pkg/application"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const storiesMarkdown = `# Checkout Stories

## Carbon offset at checkout
As a shopper
I want to add a carbon offset to my order
So that my purchase is climate neutral

Priority: high
Tags: sustainability, payments
Epic: epic-green

Acceptance Criteria:
- Offset price is displayed before payment
- Offset is stored with the order record

## Order history
As a shopper
I want to see my past orders
So that I can track my purchases
`

const specMarkdown = `# Offset Calculation

The offset engine converts cart contents into a carbon estimate.

## Requirements
- The system calculates the offset from item weight and shipping distance
- NFR: Offset calculation completes within 200ms

## Constraints
- Emission factors come from the registry dataset

## Assumptions
- Shipping distance is known at checkout
`

const architectureMarkdown = `# System Architecture

## Components
- checkout-service (service): payment-gateway, offset-engine
- offset-engine (service)

## Interfaces
- Checkout API (rest): /checkout, /offsets

## Data Flows
- order data flows from checkout to fulfillment

## Technologies
- PostgreSQL (database): 16
`

func TestImportStoriesFromMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "stories.md", storiesMarkdown)

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	stories, err := svc.ImportStories(path)
	if err != nil {
		t.Fatalf("ImportStories: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(stories))
	}

	first := stories[0]
	if first.ID != "story-carbon-offset-at-checkout" {
		t.Errorf("unexpected story ID: %s", first.ID)
	}
	if first.AsA != "shopper" {
		t.Errorf("expected shopper, got %q", first.AsA)
	}
	if first.SoThat != "my purchase is climate neutral" {
		t.Errorf("unexpected so-that: %q", first.SoThat)
	}
	if first.Priority != "high" {
		t.Errorf("expected high priority, got %q", first.Priority)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "sustainability" {
		t.Errorf("unexpected tags: %v", first.Tags)
	}
	if first.EpicID != "epic-green" {
		t.Errorf("unexpected epic: %q", first.EpicID)
	}
	if len(first.AcceptanceCriteria) != 2 {
		t.Fatalf("expected 2 criteria, got %d", len(first.AcceptanceCriteria))
	}
	if first.AcceptanceCriteria[0].ID != "story-carbon-offset-at-checkout-ac-1" {
		t.Errorf("unexpected criterion ID: %s", first.AcceptanceCriteria[0].ID)
	}

	if len(repo.Stories) != 2 {
		t.Error("expected stories to be saved to the workspace")
	}
}

func TestImportSpecsFromMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "spec.md", specMarkdown)

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	specs, err := svc.ImportSpecs(path)
	if err != nil {
		t.Fatalf("ImportSpecs: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(specs))
	}

	spec := specs[0]
	if spec.ID != "spec-offset-calculation" {
		t.Errorf("unexpected spec ID: %s", spec.ID)
	}
	if spec.Overview == "" {
		t.Error("expected overview text")
	}
	if len(spec.Requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(spec.Requirements))
	}
	if spec.Requirements[0].Type != "functional" {
		t.Errorf("expected functional requirement, got %s", spec.Requirements[0].Type)
	}
	if spec.Requirements[1].Type != "non-functional" {
		t.Errorf("expected non-functional requirement, got %s", spec.Requirements[1].Type)
	}
	if len(spec.Constraints) != 1 {
		t.Errorf("expected 1 constraint, got %d", len(spec.Constraints))
	}
	if len(spec.Assumptions) != 1 {
		t.Errorf("expected 1 assumption, got %d", len(spec.Assumptions))
	}
}

func TestImportArchitectureFromMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "architecture.md", architectureMarkdown)

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	arch, err := svc.ImportArchitecture(path)
	if err != nil {
		t.Fatalf("ImportArchitecture: %v", err)
	}

	if len(arch.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(arch.Components))
	}
	first := arch.Components[0]
	if first.Name != "checkout-service" || first.Type != "service" {
		t.Errorf("unexpected component: %+v", first)
	}
	if len(first.Dependencies) != 2 || first.Dependencies[1] != "offset-engine" {
		t.Errorf("unexpected dependencies: %v", first.Dependencies)
	}

	if len(arch.Interfaces) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(arch.Interfaces))
	}
	iface := arch.Interfaces[0]
	if iface.Type != "rest" || len(iface.Endpoints) != 2 {
		t.Errorf("unexpected interface: %+v", iface)
	}

	if len(arch.DataFlows) != 1 {
		t.Errorf("expected 1 data flow, got %d", len(arch.DataFlows))
	}
	if len(arch.Technologies) != 1 || arch.Technologies[0].Category != "database" {
		t.Errorf("unexpected technologies: %v", arch.Technologies)
	}
}

func TestAnalyzeDirectoryClassifiesDocuments(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "stories.md", storiesMarkdown)
	writeTempFile(t, dir, "spec.md", specMarkdown)
	writeTempFile(t, dir, "architecture.md", architectureMarkdown)
	writeTempFile(t, dir, "notes.txt", "not markdown, ignored")

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	set, err := svc.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}

	if len(set.Stories) != 2 {
		t.Errorf("expected 2 stories, got %d", len(set.Stories))
	}
	if len(set.Specs) != 1 {
		t.Errorf("expected 1 spec, got %d", len(set.Specs))
	}
	if set.Architecture == nil {
		t.Fatal("expected architecture to be detected")
	}
	if len(set.Architecture.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(set.Architecture.Components))
	}
}

func TestAnalyzeDirectoryEmptyFails(t *testing.T) {
	dir := t.TempDir()

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	if _, err := svc.AnalyzeDirectory(dir); err == nil {
		t.Fatal("expected error for directory without documents")
	}
}

func TestImportStoriesFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := `- id: story-001
  title: Carbon offset at checkout
  as_a: shopper
  i_want: to add a carbon offset
  so_that: my purchase is climate neutral
  acceptance_criteria:
    - id: story-001-ac-1
      description: Offset price is displayed
`
	path := writeTempFile(t, dir, "stories.yaml", content)

	repo := &MockRepo{}
	svc := application.NewIntakeService(repo)

	stories, err := svc.ImportStories(path)
	if err != nil {
		t.Fatalf("ImportStories: %v", err)
	}
	if len(stories) != 1 || stories[0].ID != "story-001" {
		t.Fatalf("unexpected stories: %+v", stories)
	}
}
