package wiring

import (
	"testing"

	"github.com/heuristiq/strategist/pkg/domain"
)

// clearProviderEnv neutralizes environment overrides; the factory treats
// empty values as unset.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STRATEGIST_AI_PROVIDER", "")
	t.Setenv("STRATEGIST_AI_MODEL", "")
}

func TestBuildAppServices(t *testing.T) {
	clearProviderEnv(t)
	root := t.TempDir()

	services, err := BuildAppServices(root)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}

	if services.Intake == nil || services.Assessment == nil || services.Audit == nil || services.Usage == nil {
		t.Error("expected all services to be wired")
	}
	if services.Provider == nil {
		t.Error("expected a default provider when AI is allowed")
	}
}

func TestBuildAppServicesAIDisabled(t *testing.T) {
	clearProviderEnv(t)
	root := t.TempDir()

	workspace := NewWorkspace(root)
	if err := workspace.Repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := workspace.Repo.SavePolicy(&domain.PolicyConfig{AllowAI: false}); err != nil {
		t.Fatalf("SavePolicy: %v", err)
	}

	services, err := BuildAppServices(root)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}
	if services.Provider != nil {
		t.Error("expected no provider when policy disables AI")
	}
}

func TestLoadAIProviderHonorsPolicyModel(t *testing.T) {
	clearProviderEnv(t)
	root := t.TempDir()

	workspace := NewWorkspace(root)
	if err := workspace.Repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	policy := &domain.PolicyConfig{AllowAI: true, AIProvider: "mock", AIModel: "test-model"}
	if err := workspace.Repo.SavePolicy(policy); err != nil {
		t.Fatalf("SavePolicy: %v", err)
	}

	provider, err := LoadAIProvider(workspace.Repo)
	if err != nil {
		t.Fatalf("LoadAIProvider: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if provider.ID() != "mock:test-model" {
		t.Errorf("unexpected provider ID: %s", provider.ID())
	}
}
