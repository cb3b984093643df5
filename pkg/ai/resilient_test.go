package ai_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	infraAI "github.com/heuristiq/strategist/pkg/ai"
	domainAI "github.com/heuristiq/strategist/pkg/domain/ai"
)

func completionRequest(prompt string) domainAI.CompletionRequest {
	return domainAI.CompletionRequest{Prompt: prompt, MaxTokens: 100}
}

func TestResilientProviderIDDelegates(t *testing.T) {
	inner := &infraAI.MockProvider{Model: "test-model"}
	p := infraAI.NewResilientProvider(inner)
	if p.ID() != "mock:test-model" {
		t.Errorf("expected ID 'mock:test-model', got %q", p.ID())
	}
}

func TestDefaultResilienceConfig(t *testing.T) {
	cfg := infraAI.DefaultResilienceConfig()
	if cfg.MaxAttempts != 2 {
		t.Errorf("expected MaxAttempts 2, got %d", cfg.MaxAttempts)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("expected RetryDelay 1s, got %v", cfg.RetryDelay)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected Timeout 60s, got %v", cfg.Timeout)
	}
}

func TestZeroConfigGetsDefaults(t *testing.T) {
	inner := &infraAI.MockProvider{Model: "test"}
	p := infraAI.NewResilientProviderWithConfig(inner, infraAI.ResilienceConfig{})
	if p.ID() != "mock:test" {
		t.Errorf("expected ID 'mock:test', got %q", p.ID())
	}
}

func TestResilientProviderPassesThrough(t *testing.T) {
	inner := &infraAI.MockProvider{Model: "test", Response: "hello"}
	p := infraAI.NewResilientProvider(inner)

	resp, err := p.Complete(context.Background(), completionRequest("hi"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("Text = %q, want hello", resp.Text)
	}
}

func TestResilientProviderRetriesThenFails(t *testing.T) {
	inner := &infraAI.MockProvider{Model: "test", Err: fmt.Errorf("boom")}
	p := infraAI.NewResilientProviderWithConfig(inner, infraAI.ResilienceConfig{
		MaxAttempts: 2,
		RetryDelay:  time.Millisecond,
		Timeout:     time.Second,
	})

	_, err := p.Complete(context.Background(), completionRequest("hi"))
	if err == nil {
		t.Fatal("expected error from always-failing provider")
	}
	if inner.Calls != 2 {
		t.Errorf("inner calls = %d, want 2 (one retry)", inner.Calls)
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	if _, err := infraAI.NewProvider("smoke-signals", ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestFactoryDefaultsToOllama(t *testing.T) {
	p, err := infraAI.NewProvider("", "")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ID() != "ollama:llama3" {
		t.Errorf("ID = %q, want ollama:llama3", p.ID())
	}
}
