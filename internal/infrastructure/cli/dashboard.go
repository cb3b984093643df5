package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI coverage dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("STRATEGIST_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var coverageHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var coverageMid = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var coverageLow = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

type model struct {
	table   table.Model
	theme   string
	overall int
	stale   bool
	gaps    []string
	openQs  int
	err     error
}

func initialModel() model {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return model{err: err}
	}

	latest, err := services.Assessment.Latest()
	if err != nil {
		return model{err: fmt.Errorf("no assessment found, run 'strategist assess' first: %w", err)}
	}

	set, err := services.Intake.LoadDocumentSet()
	if err != nil {
		return model{err: err}
	}

	// Setup Table
	columns := []table.Column{
		{Title: "Category", Width: 12},
		{Title: "Coverage", Width: 10},
		{Title: "Opportunities", Width: 14},
		{Title: "Open Questions", Width: 15},
		{Title: "Uncovered", Width: 10},
	}

	rows := []table.Row{}
	var gaps []string
	openQs := 0
	for _, cat := range assessment.Categories() {
		ca, ok := latest.Categories[cat]
		if !ok {
			continue
		}
		catQs := 0
		for _, q := range ca.Questions {
			if len(q.Questions) > 0 {
				catQs++
			}
		}
		openQs += catQs
		rows = append(rows, table.Row{
			string(cat),
			fmt.Sprintf("%d%%", ca.Coverage.CoveragePercent),
			fmt.Sprintf("%d", len(ca.TestOpportunities)),
			fmt.Sprintf("%d", catQs),
			fmt.Sprintf("%d", len(ca.Coverage.UncoveredSubareas)),
		})
		for _, sub := range ca.Coverage.UncoveredSubareas {
			gaps = append(gaps, fmt.Sprintf("%s / %s", cat, sub))
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(9),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	return model{
		table:   t,
		theme:   latest.PrimaryTheme,
		overall: latest.OverallCoverage,
		stale:   latest.DocumentHash != set.Hash(),
		gaps:    gaps,
		openQs:  openQs,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("Test Strategy: %s", m.theme))

	overallStyle := coverageLow
	switch {
	case m.overall >= 80:
		overallStyle = coverageHigh
	case m.overall >= 50:
		overallStyle = coverageMid
	}
	overallView := fmt.Sprintf("Overall coverage: %s    Open questions: %d",
		overallStyle.Render(fmt.Sprintf("%d%%", m.overall)), m.openQs)

	staleView := ""
	if m.stale {
		staleView = coverageMid.Render("Documents changed since this assessment; run 'strategist assess'.")
	}

	gapView := coverageHigh.Render("No uncovered subcategories.")
	if len(m.gaps) > 0 {
		shown := m.gaps
		if len(shown) > 5 {
			shown = shown[:5]
		}
		gapView = coverageLow.Render("Top gaps:") + "\n- " + strings.Join(shown, "\n- ")
		if len(m.gaps) > len(shown) {
			gapView += fmt.Sprintf("\n  ... and %d more", len(m.gaps)-len(shown))
		}
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			overallView,
			staleView,
			"\nCategory Coverage:",
			m.table.View(),
			"\n"+gapView,
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
