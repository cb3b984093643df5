package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/heuristiq/strategist/pkg/report"
	"github.com/spf13/cobra"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the latest assessment as markdown, gherkin or HTML",
	Long: `Render the latest assessment as markdown, gherkin or HTML.

Formats:
  markdown  human-readable strategy report (default)
  gherkin   feature skeletons for the generated test opportunities
  html      standalone styled report

Examples:
  strategist report
  strategist report --format gherkin --out opportunities.feature
  strategist report --format html --out report.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		latest, err := services.Assessment.Latest()
		if err != nil {
			return fmt.Errorf("no assessment found, run 'strategist assess' first: %w", err)
		}

		out := os.Stdout
		if reportOut != "" {
			f, err := os.Create(reportOut) // #nosec G304 -- user-chosen output path
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", reportOut, err)
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		switch strings.ToLower(reportFormat) {
		case "markdown", "md", "":
			fmt.Fprint(out, report.RenderMarkdown(latest))
		case "gherkin", "feature":
			fmt.Fprint(out, report.RenderGherkin(latest))
		case "html":
			renderer, err := report.NewHTMLRenderer()
			if err != nil {
				return fmt.Errorf("failed to build HTML renderer: %w", err)
			}
			if err := renderer.Render(out, latest); err != nil {
				return fmt.Errorf("failed to render HTML report: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (use markdown, gherkin or html)", reportFormat)
		}

		if reportOut != "" {
			fmt.Printf("Report written to %s\n", reportOut)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "markdown", "Output format (markdown, gherkin, html)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to a file instead of stdout")
	RootCmd.AddCommand(reportCmd)
}
