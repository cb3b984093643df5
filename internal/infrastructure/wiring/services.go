package wiring

import (
	"fmt"

	"github.com/heuristiq/strategist/pkg/application"
	domainai "github.com/heuristiq/strategist/pkg/domain/ai"
)

// AppServices exposes the application layer services wired together with
// a workspace.
type AppServices struct {
	Workspace  *Workspace
	Intake     *application.IntakeService
	Assessment *application.AssessmentService
	Audit      *application.AuditService
	Usage      *application.UsageService
	Provider   domainai.Provider
}

// BuildAppServices constructs the services and AI provider wiring for a
// workspace root. A provider resolution failure degrades to template-only
// question synthesis instead of failing the build; the error is returned
// so callers can surface a warning.
func BuildAppServices(root string) (*AppServices, error) {
	workspace := NewWorkspace(root)

	provider, err := LoadAIProvider(workspace.Repo)
	var loadErr error
	if err != nil {
		loadErr = fmt.Errorf("AI provider unavailable, using template questions: %w", err)
		provider = nil
	}

	return &AppServices{
		Workspace:  workspace,
		Intake:     application.NewIntakeService(workspace.Repo),
		Assessment: application.NewAssessmentService(workspace.Repo, provider, workspace.Audit),
		Audit:      workspace.Audit,
		Usage:      workspace.Usage,
		Provider:   provider,
	}, loadErr
}
