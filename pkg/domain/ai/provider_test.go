package ai

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// stubProvider is a canned-answer Provider for contract tests. Unlike the
// HTTP-backed providers it honors context cancellation synchronously.
type stubProvider struct {
	name   string
	answer string
	err    error
}

func (s *stubProvider) ID() string { return "stub:" + s.name }

func (s *stubProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &CompletionResponse{
		Text:  s.answer,
		Model: s.name,
		Usage: TokenUsage{InputTokens: len(req.Prompt), OutputTokens: len(s.answer)},
	}, nil
}

func TestStubProviderSatisfiesInterface(t *testing.T) {
	var _ Provider = &stubProvider{}
}

func TestCompleteReturnsEnrichedQuestions(t *testing.T) {
	answer := `{"rationale": "no data validation coverage", "questions": ["What happens on malformed input?"]}`
	p := &stubProvider{name: "strategist-test", answer: answer}

	if p.ID() != "stub:strategist-test" {
		t.Errorf("ID() = %s, want stub:strategist-test", p.ID())
	}

	resp, err := p.Complete(context.Background(), CompletionRequest{
		Prompt:      "The data category has no opportunities for input validation.",
		System:      "You are a senior test strategist.",
		Temperature: 0.3,
		MaxTokens:   600,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(resp.Text, "malformed input") {
		t.Errorf("Text = %q, want enriched question", resp.Text)
	}
	if resp.Usage.InputTokens == 0 || resp.Usage.OutputTokens == 0 {
		t.Errorf("usage not reported: %+v", resp.Usage)
	}
}

func TestCompletePropagatesProviderError(t *testing.T) {
	p := &stubProvider{name: "down", err: fmt.Errorf("provider unavailable")}

	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "anything"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "provider unavailable" {
		t.Errorf("error = %v, want provider unavailable", err)
	}
}

func TestCompleteHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &stubProvider{name: "slow", answer: "never delivered"}
	if _, err := p.Complete(ctx, CompletionRequest{Prompt: "anything"}); err == nil {
		t.Fatal("expected context error")
	}
}
