package application_test

import (
	"github.com/heuristiq/strategist/pkg/domain"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

type MockRepo struct {
	Stories      []requirements.UserStory
	Specs        []requirements.FunctionalSpec
	Architecture *requirements.TechnicalArchitecture
	Assessment   *assessment.Assessment
	Runs         []assessment.AssessmentRun
	Policy       *domain.PolicyConfig
	Events       []domain.Event
	Usage        *domain.UsageStats
	Initialized  bool
	SaveError    error
	LoadError    error
}

func (m *MockRepo) Initialize() error   { m.Initialized = true; return nil }
func (m *MockRepo) IsInitialized() bool { return m.Initialized }

func (m *MockRepo) SaveStories(s []requirements.UserStory) error { m.Stories = s; return m.SaveError }
func (m *MockRepo) LoadStories() ([]requirements.UserStory, error) {
	return m.Stories, m.LoadError
}
func (m *MockRepo) SaveSpecs(s []requirements.FunctionalSpec) error { m.Specs = s; return m.SaveError }
func (m *MockRepo) LoadSpecs() ([]requirements.FunctionalSpec, error) {
	return m.Specs, m.LoadError
}
func (m *MockRepo) SaveArchitecture(a *requirements.TechnicalArchitecture) error {
	m.Architecture = a
	return m.SaveError
}
func (m *MockRepo) LoadArchitecture() (*requirements.TechnicalArchitecture, error) {
	return m.Architecture, m.LoadError
}
func (m *MockRepo) SaveAssessment(a *assessment.Assessment) error {
	m.Assessment = a
	return m.SaveError
}
func (m *MockRepo) LoadAssessment() (*assessment.Assessment, error) {
	return m.Assessment, m.LoadError
}
func (m *MockRepo) AppendRun(r assessment.AssessmentRun) error {
	m.Runs = append(m.Runs, r)
	return m.SaveError
}
func (m *MockRepo) LoadRuns() ([]assessment.AssessmentRun, error) { return m.Runs, m.LoadError }
func (m *MockRepo) SavePolicy(c *domain.PolicyConfig) error       { m.Policy = c; return m.SaveError }
func (m *MockRepo) LoadPolicy() (*domain.PolicyConfig, error) {
	if m.Policy == nil {
		return &domain.PolicyConfig{AllowAI: true}, m.LoadError
	}
	return m.Policy, m.LoadError
}
func (m *MockRepo) RecordEvent(e domain.Event) error {
	m.Events = append(m.Events, e)
	return m.SaveError
}
func (m *MockRepo) LoadEvents() ([]domain.Event, error) { return m.Events, m.LoadError }
func (m *MockRepo) UpdateUsage(u domain.UsageStats) error {
	m.Usage = &u
	return m.SaveError
}
func (m *MockRepo) LoadUsage() (*domain.UsageStats, error) {
	if m.Usage == nil {
		return &domain.UsageStats{ProviderStats: map[string]int{}}, m.LoadError
	}
	return m.Usage, m.LoadError
}
