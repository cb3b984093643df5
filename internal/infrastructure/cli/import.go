package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var importKind string

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a requirement document into the workspace",
	Long: `Import a requirement document into the workspace.

The document kind is picked with --kind:
  stories       user story stanzas (markdown or YAML)
  specs         functional specification (markdown or YAML)
  architecture  technical architecture description (markdown or YAML)

Examples:
  strategist import docs/stories.md --kind stories
  strategist import docs/architecture.yaml --kind architecture`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		intake := services.Intake

		switch strings.ToLower(importKind) {
		case "stories":
			stories, err := intake.ImportStories(args[0])
			if err != nil {
				return fmt.Errorf("failed to import stories: %w", err)
			}
			fmt.Printf("Imported %d user stories.\n", len(stories))
		case "specs":
			specs, err := intake.ImportSpecs(args[0])
			if err != nil {
				return fmt.Errorf("failed to import specs: %w", err)
			}
			fmt.Printf("Imported %d specifications.\n", len(specs))
		case "architecture":
			arch, err := intake.ImportArchitecture(args[0])
			if err != nil {
				return fmt.Errorf("failed to import architecture: %w", err)
			}
			fmt.Printf("Imported architecture with %d components.\n", len(arch.Components))
		default:
			return fmt.Errorf("unknown document kind %q (use stories, specs or architecture)", importKind)
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Analyze a documentation directory and import everything it contains",
	Long: `Analyze a documentation directory and import everything it contains.

Each markdown or YAML file is classified by content: story stanzas become
user stories, component lists become architecture, everything else becomes
a functional spec. Defaults to ./docs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		set, err := services.Intake.AnalyzeDirectory(dir)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", dir, err)
		}

		fmt.Printf("Imported %d stories, %d specs", len(set.Stories), len(set.Specs))
		if set.Architecture != nil {
			fmt.Printf(", architecture with %d components", len(set.Architecture.Components))
		}
		fmt.Println(".")
		fmt.Println("Run 'strategist assess' to generate the assessment.")
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importKind, "kind", "stories",
		"Document kind (stories, specs, architecture)")
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(analyzeCmd)
}
