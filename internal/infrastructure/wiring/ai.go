package wiring

import (
	infraai "github.com/heuristiq/strategist/pkg/ai"
	domainai "github.com/heuristiq/strategist/pkg/domain/ai"
	"github.com/heuristiq/strategist/pkg/storage"
)

// LoadAIProvider resolves the AI provider for a workspace. The policy
// file picks provider and model; environment variables fill the gaps.
// A workspace with AI disabled gets no provider at all.
func LoadAIProvider(repo *storage.FilesystemRepository) (domainai.Provider, error) {
	policy, err := repo.LoadPolicy()
	if err != nil {
		return nil, err
	}
	if !policy.AllowAI {
		return nil, nil
	}

	base, err := infraai.GetDefaultProvider(policy.AIProvider, policy.AIModel)
	if err != nil {
		return nil, err
	}
	return infraai.NewResilientProvider(base), nil
}
