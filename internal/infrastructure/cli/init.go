package cli

import (
	"fmt"

	"github.com/heuristiq/strategist/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a strategist workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		workspace := wiring.NewWorkspace(root)
		if err := workspace.Repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		fmt.Println("Initialized strategist workspace (.strategist/)")
		fmt.Println("Next: import requirement documents with 'strategist import <path>'")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
