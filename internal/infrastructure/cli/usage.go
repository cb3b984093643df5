package cli

import (
	"fmt"
	"sort"

	"github.com/heuristiq/strategist/internal/infrastructure/wiring"
	"github.com/heuristiq/strategist/pkg/application"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show workspace usage and AI token statistics",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	cwd, err := getProjectRoot()
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}
	workspace := wiring.NewWorkspace(cwd)
	usageService := application.NewUsageService(workspace.Repo)

	stats, err := usageService.GetUsage()
	if err != nil {
		return fmt.Errorf("failed to load usage stats: %w", err)
	}

	fmt.Println("Workspace Usage Metrics")
	fmt.Println("-----------------------")
	fmt.Printf("Total Assessments: %d\n", stats.TotalAssessments)
	if !stats.LastAssessmentAt.IsZero() {
		fmt.Printf("Last Assessment:   %s\n", stats.LastAssessmentAt.Format("2006-01-02 15:04:05"))
	}

	// Calculate total tokens and show budget alerts
	totalTokens := 0
	if len(stats.ProviderStats) > 0 {
		fmt.Println("\nProvider Activity")

		// Sort keys for stable output
		keys := make([]string, 0, len(stats.ProviderStats))
		for k := range stats.ProviderStats {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("- %-25s: %d\n", k, stats.ProviderStats[k])
		}

		totalTokens, err = usageService.GetTotalTokens()
		if err != nil {
			return fmt.Errorf("failed to compute token totals: %w", err)
		}
		if totalTokens > 0 {
			fmt.Printf("\nTotal Tokens Used: %d\n", totalTokens)
		}
	}

	// Check policy token limits and show budget alerts
	policy, policyErr := workspace.Repo.LoadPolicy()
	if policyErr == nil && policy != nil && policy.TokenLimit > 0 {
		limit := policy.TokenLimit
		usagePercent := float64(totalTokens) / float64(limit) * 100

		fmt.Println("\nBudget Status")
		fmt.Printf("Token Limit:    %d\n", limit)
		fmt.Printf("Usage:          %.1f%%\n", usagePercent)

		// Alert thresholds
		switch {
		case usagePercent >= 100:
			fmt.Println("\n[CRITICAL] Token budget EXCEEDED! AI enrichment may be blocked.")
			fmt.Println("           Consider increasing token_limit in policy.yaml.")
		case usagePercent >= 90:
			fmt.Println("\n[WARNING] Token budget at 90%+. Approaching limit.")
		case usagePercent >= 75:
			fmt.Println("\n[INFO] Token budget at 75%+. Monitor usage.")
		}
	}

	return nil
}

// RunUsage is the exported RunE function for use as a subcommand
var RunUsage = runUsage

func init() {
	usageCmd.Hidden = true // Hide from top-level help, available via `status usage`
	RootCmd.AddCommand(usageCmd)
}
