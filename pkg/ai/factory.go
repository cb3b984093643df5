package ai

import (
	"fmt"
	"os"

	"github.com/heuristiq/strategist/pkg/domain/ai"
)

// NewProvider builds a provider by name. API keys come from the
// environment; an empty name means local Ollama.
func NewProvider(providerName string, modelName string) (ai.Provider, error) {
	switch providerName {
	case "ollama", "":
		return NewOllamaProvider(modelName), nil
	case "mock":
		return &MockProvider{Model: modelName}, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		return NewOpenAIProvider(modelName, apiKey), nil
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		return NewAnthropicProvider(modelName, apiKey), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		return NewGeminiProvider(modelName, apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}

// GetDefaultProvider resolves the provider from environment overrides
// first, then the given policy defaults.
func GetDefaultProvider(providerName, modelName string) (ai.Provider, error) {
	if env := os.Getenv("STRATEGIST_AI_PROVIDER"); env != "" {
		providerName = env
	}
	if env := os.Getenv("STRATEGIST_AI_MODEL"); env != "" {
		modelName = env
	}
	return NewProvider(providerName, modelName)
}
