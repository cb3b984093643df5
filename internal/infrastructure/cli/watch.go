package cli

import (
	"fmt"
	"time"

	"github.com/heuristiq/strategist/internal/infrastructure/watch"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a documentation directory and re-assess on changes",
	Long: `Watch a documentation directory and re-assess on changes.

Markdown and YAML changes are debounced, re-imported and re-assessed
automatically. Defaults to ./docs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		onChange := func(event watch.ChangeEvent) {
			fmt.Printf("\nDocument change detected (%s %s) at %s\n",
				event.ChangeType, event.Path, time.Now().Format("15:04:05"))

			if _, err := services.Intake.AnalyzeDirectory(dir); err != nil {
				fmt.Printf("Re-import failed: %v\n", err)
				return
			}
			result, err := services.Assessment.Assess(cmd.Context())
			if err != nil {
				fmt.Printf("Re-assessment failed: %v\n", err)
				return
			}
			fmt.Printf("Assessment refreshed: %d%% overall coverage, %d open questions.\n",
				result.OverallCoverage, result.OpenQuestionCount())
		}

		watcher, err := watch.NewDocumentWatcher(watchDebounce, onChange)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := watcher.WatchRecursive(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}

		fmt.Printf("Watching %s for changes... (Ctrl+C to stop)\n", dir)
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"Quiet period before a change triggers a reassessment")
	RootCmd.AddCommand(watchCmd)
}
