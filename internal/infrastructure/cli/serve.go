package cli

import (
	"fmt"
	"os"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/infrastructure/dashboard"
	"github.com/spf13/cobra"
)

var serveAddr string

// workspaceDataProvider adapts the assessment service to the dashboard's
// data interface.
type workspaceDataProvider struct {
	latest  func() (*assessment.Assessment, error)
	history func() ([]assessment.AssessmentRun, error)
}

func (p *workspaceDataProvider) GetAssessment() (*assessment.Assessment, error) {
	return p.latest()
}

func (p *workspaceDataProvider) GetRuns() ([]assessment.AssessmentRun, error) {
	return p.history()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web report with live refresh",
	Long: `Serve the web report with live refresh.

The server renders the latest assessment, exposes a JSON API and pushes an
update notification over a websocket whenever the workspace assessment
changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("STRATEGIST_SKIP_SERVE_RUN") == "true" {
			return nil
		}

		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}

		provider := &workspaceDataProvider{
			latest:  services.Assessment.Latest,
			history: services.Assessment.History,
		}
		server, err := dashboard.NewServer(serveAddr, root, provider)
		if err != nil {
			return fmt.Errorf("failed to create dashboard server: %w", err)
		}

		fmt.Printf("Serving assessment dashboard on %s\n", serveAddr)
		return server.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "Listen address for the dashboard server")
	RootCmd.AddCommand(serveCmd)
}
