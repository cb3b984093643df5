package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a high-level summary of the workspace state",
	Long: `Show a high-level summary of the workspace state.

Reports the imported document counts, the latest assessment coverage and
whether the documents changed since the assessment was generated.

Examples:
  strategist status
  strategist status --json`,
	RunE: runStatusCmd,
}

// statusJSONOutput represents the JSON output format for status
type statusJSONOutput struct {
	Initialized     bool                  `json:"initialized"`
	Stories         int                   `json:"stories"`
	Specs           int                   `json:"specs"`
	HasArchitecture bool                  `json:"has_architecture"`
	Assessment      *assessmentJSONOutput `json:"assessment,omitempty"`
}

type assessmentJSONOutput struct {
	OverallCoverage int            `json:"overall_coverage"`
	PrimaryTheme    string         `json:"primary_theme"`
	Opportunities   int            `json:"opportunities"`
	OpenQuestions   int            `json:"open_questions"`
	Categories      map[string]int `json:"categories"`
	Stale           bool           `json:"stale"`
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	set, err := services.Intake.LoadDocumentSet()
	if err != nil {
		return err
	}

	latest, assessErr := services.Assessment.Latest()

	if statusJSON {
		output := statusJSONOutput{
			Initialized:     services.Workspace.Repo.IsInitialized(),
			Stories:         len(set.Stories),
			Specs:           len(set.Specs),
			HasArchitecture: set.Architecture != nil,
		}
		if assessErr == nil {
			categories := make(map[string]int, len(latest.Categories))
			for cat, ca := range latest.Categories {
				categories[string(cat)] = ca.Coverage.CoveragePercent
			}
			output.Assessment = &assessmentJSONOutput{
				OverallCoverage: latest.OverallCoverage,
				PrimaryTheme:    latest.PrimaryTheme,
				Opportunities:   latest.TotalOpportunities(),
				OpenQuestions:   latest.OpenQuestionCount(),
				Categories:      categories,
				Stale:           latest.DocumentHash != set.Hash(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	fmt.Println("Workspace Status")
	fmt.Println("----------------")
	fmt.Printf("Stories:      %d\n", len(set.Stories))
	fmt.Printf("Specs:        %d\n", len(set.Specs))
	fmt.Printf("Architecture: %v\n", set.Architecture != nil)

	if assessErr != nil {
		fmt.Println("\nNo assessment yet. Run 'strategist assess'.")
		return nil
	}

	fmt.Printf("\nPrimary theme:    %s\n", latest.PrimaryTheme)
	fmt.Printf("Overall coverage: %d%%\n", latest.OverallCoverage)
	fmt.Printf("Opportunities:    %d\n", latest.TotalOpportunities())
	fmt.Printf("Open questions:   %d\n\n", latest.OpenQuestionCount())

	for _, cat := range assessment.Categories() {
		ca, ok := latest.Categories[cat]
		if !ok {
			continue
		}
		fmt.Printf("- %-11s %3d%%\n", cat, ca.Coverage.CoveragePercent)
	}

	if latest.DocumentHash != set.Hash() {
		fmt.Println("\nDocuments changed since the last assessment. Run 'strategist assess' to refresh.")
	}

	fmt.Printf("\nAudit Trail: .strategist/events.jsonl\n")
	return nil
}

// Status subcommands - consolidated views
var statusUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show workspace usage and AI token statistics",
	RunE:  RunUsage,
}

var statusTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a chronological view of workspace activity",
	RunE:  RunTimeline,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")

	statusCmd.AddCommand(statusUsageCmd)
	statusCmd.AddCommand(statusTimelineCmd)

	RootCmd.AddCommand(statusCmd)
}
