package tui

import "github.com/charmbracelet/lipgloss"

// Global styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C00")). // Orange
			PaddingLeft(1)
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00BFFF")). // Deep Sky Blue
			PaddingLeft(1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Light Gray
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	scoreGoodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	scoreWarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00"))
	scoreBadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4040"))

	issueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4040"))
	recStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))

	reportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2)
)
