package domain

import (
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

// WorkspaceRepository handles the persistence of strategist artifacts in
// the .strategist/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveStories(stories []requirements.UserStory) error
	LoadStories() ([]requirements.UserStory, error)
	SaveSpecs(specs []requirements.FunctionalSpec) error
	LoadSpecs() ([]requirements.FunctionalSpec, error)
	SaveArchitecture(arch *requirements.TechnicalArchitecture) error
	LoadArchitecture() (*requirements.TechnicalArchitecture, error)
	SaveAssessment(a *assessment.Assessment) error
	LoadAssessment() (*assessment.Assessment, error)
	AppendRun(run assessment.AssessmentRun) error
	LoadRuns() ([]assessment.AssessmentRun, error)
	SavePolicy(cfg *PolicyConfig) error
	LoadPolicy() (*PolicyConfig, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
	UpdateUsage(stats UsageStats) error
	LoadUsage() (*UsageStats, error)
}

// PolicyConfig is the serialized representation of policy.yaml.
type PolicyConfig struct {
	AllowAI    bool   `yaml:"allow_ai"`
	TokenLimit int    `yaml:"token_limit"`
	AIProvider string `yaml:"ai_provider"`
	AIModel    string `yaml:"ai_model"`
}
