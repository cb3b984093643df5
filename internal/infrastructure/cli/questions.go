package cli

import (
	"fmt"
	"strings"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/spf13/cobra"
)

var (
	questionsCategory string
	questionsEnrich   bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Show the open clarifying questions from the latest assessment",
	Long: `Show the open clarifying questions from the latest assessment.

Questions are raised for subcategories with weak coverage. Use --category to
filter and --enrich to re-synthesize them with the configured AI provider.

Examples:
  strategist questions
  strategist questions --category data
  strategist questions --enrich`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		filter := assessment.Category(strings.ToLower(questionsCategory))
		if questionsCategory != "" && !filter.IsValid() {
			return fmt.Errorf("unknown category %q (use structure, function, data, interfaces, platform, operations or time)", questionsCategory)
		}

		if questionsEnrich {
			enriched, err := services.Assessment.EnrichQuestions(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("enrichment failed: %w", err)
			}
			printQuestions(enriched)
			return nil
		}

		latest, err := services.Assessment.Latest()
		if err != nil {
			return fmt.Errorf("no assessment found, run 'strategist assess' first: %w", err)
		}

		var out []assessment.ClarifyingQuestion
		for _, cat := range assessment.Categories() {
			if questionsCategory != "" && cat != filter {
				continue
			}
			ca, ok := latest.Categories[cat]
			if !ok {
				continue
			}
			for _, q := range ca.Questions {
				if len(q.Questions) > 0 {
					out = append(out, q)
				}
			}
		}
		printQuestions(out)
		return nil
	},
}

func printQuestions(qs []assessment.ClarifyingQuestion) {
	if len(qs) == 0 {
		fmt.Println("No open questions. Coverage looks healthy.")
		return
	}

	current := assessment.Category("")
	for _, q := range qs {
		if q.Category != current {
			current = q.Category
			fmt.Printf("\n%s\n", strings.ToUpper(string(current)))
		}
		fmt.Printf("  [%s]", q.Subcategory)
		if q.Rationale != "" {
			fmt.Printf(" %s", q.Rationale)
		}
		fmt.Println()
		for _, question := range q.Questions {
			fmt.Printf("    - %s\n", question)
		}
	}
}

func init() {
	questionsCmd.Flags().StringVar(&questionsCategory, "category", "",
		"Limit to one category (structure, function, data, interfaces, platform, operations, time)")
	questionsCmd.Flags().BoolVar(&questionsEnrich, "enrich", false,
		"Re-synthesize the questions with the configured AI provider")
	RootCmd.AddCommand(questionsCmd)
}
