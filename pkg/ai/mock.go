package ai

import (
	"context"

	"github.com/heuristiq/strategist/pkg/domain/ai"
)

// MockProvider returns canned responses, used in tests and for offline
// demo runs.
type MockProvider struct {
	Model    string
	Response string
	Err      error
	Calls    int
}

func (p *MockProvider) ID() string {
	return "mock:" + p.Model
}

func (p *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	text := p.Response
	if text == "" {
		text = `{"rationale": "mock rationale", "questions": ["mock question?"]}`
	}
	return &ai.CompletionResponse{
		Text:  text,
		Model: p.Model,
		Usage: ai.TokenUsage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(text) / 4},
	}, nil
}
