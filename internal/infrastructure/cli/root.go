package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "strategist",
	Version: Version,
	Short:   "Requirement classification and coverage-gap analysis for test strategy",
	Long: `Strategist ingests requirement artifacts (user stories, functional specs,
architecture descriptions), classifies every testable fragment into the seven
SFDIPOT product-factor categories, scores coverage, and raises clarifying
questions where coverage is weak.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "project", "",
		"Path to the project root (defaults to the working directory)")
}
