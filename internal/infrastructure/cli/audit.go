package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/heuristiq/strategist/internal/infrastructure/wiring"
	"github.com/heuristiq/strategist/pkg/application"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit and verify workspace history",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the workspace audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve project path: %w", err)
		}
		workspace := wiring.NewWorkspace(cwd)
		service := application.NewAuditService(workspace.Repo)

		fmt.Println("Verifying audit trail integrity...")
		violations, err := service.VerifyIntegrity()
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail is intact and verified.")
			return nil
		}

		fmt.Printf("Found %d integrity violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
		os.Exit(1)
		return nil
	},
}

var auditCadenceCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Show the average assessment cadence",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve project path: %w", err)
		}
		workspace := wiring.NewWorkspace(cwd)
		service := application.NewAuditService(workspace.Repo)

		cadence, err := service.GetAssessmentCadence()
		if err != nil {
			return fmt.Errorf("failed to compute cadence: %w", err)
		}
		if cadence == 0 {
			fmt.Println("No completed assessments recorded yet.")
			return nil
		}
		fmt.Printf("Average assessments per day: %.2f\n", cadence)
		return nil
	},
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cwd, err := getProjectRoot()
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}
	workspace := wiring.NewWorkspace(cwd)
	service := application.NewAuditService(workspace.Repo)

	events, err := service.GetTimeline()
	if err != nil {
		return fmt.Errorf("failed to load timeline: %w", err)
	}

	fmt.Println("Workspace Timeline")
	fmt.Println("------------------")
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		ts := e.Timestamp.Format(time.RFC822)
		fmt.Printf("[%s] %-10s | %-22s", ts, e.Actor, e.Action)
		if len(e.Metadata) > 0 {
			fmt.Printf(" (%v)", e.Metadata)
		}
		fmt.Println()
	}
	return nil
}

// RunTimeline is the exported RunE function for use as a subcommand
var RunTimeline = runTimeline

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a chronological view of workspace activity",
	RunE:  runTimeline,
}

func init() {
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTimelineCmd)
	auditCmd.AddCommand(auditCadenceCmd)
	RootCmd.AddCommand(auditCmd)
}
