package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/spf13/cobra"
)

var assessJSON bool

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the assessment over the imported documents",
	Long: `Run the assessment over the imported documents.

The engine extracts testable fragments, infers the domain theme, classifies
fragments into the seven product-factor categories, scores coverage and
synthesizes clarifying questions for weakly covered subcategories. The result
is written to .strategist/assessment.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		result, err := services.Assessment.Assess(cmd.Context())
		if err != nil {
			return fmt.Errorf("assessment failed: %w", err)
		}

		if assessJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Assessment complete.\n\n")
		fmt.Printf("Primary theme:   %s\n", result.PrimaryTheme)
		fmt.Printf("Overall coverage: %d%%\n", result.OverallCoverage)
		fmt.Printf("Opportunities:    %d\n", result.TotalOpportunities())
		fmt.Printf("Open questions:   %d\n\n", result.OpenQuestionCount())

		for _, cat := range assessment.Categories() {
			ca, ok := result.Categories[cat]
			if !ok {
				continue
			}
			fmt.Printf("- %-11s %3d%% (%d opportunities)\n",
				cat, ca.Coverage.CoveragePercent, len(ca.TestOpportunities))
		}

		fmt.Println("\nRun 'strategist questions' to review the open questions.")
		return nil
	},
}

func init() {
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Output the full assessment as JSON")
	RootCmd.AddCommand(assessCmd)
}
