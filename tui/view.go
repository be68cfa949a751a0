package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/stain-win/passaudit/audit"
)

func (m *model) View() string {
	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6A5ACD")).
		Align(lipgloss.Center).
		Render(passauditLogo)

	var screenView string
	switch m.activeScreen {
	case mainMenu:
		screenView = lipgloss.JoinVertical(lipgloss.Center, logo, m.mainMenu.View())
	case auditForm:
		screenView = lipgloss.JoinVertical(lipgloss.Center, logo, m.auditFormModel.View())
	case auditReport:
		var report string
		if m.result != nil {
			report = Report(*m.result, m.config.ReportWidth)
		}
		screenView = lipgloss.JoinVertical(lipgloss.Center, logo, report, helpStyle.Render(m.help.View(keys)))
	case generateView:
		screenView = lipgloss.JoinVertical(lipgloss.Center, logo, m.suggestionView(), helpStyle.Render(m.help.View(keys)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, screenView)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}),
	)
}

func (m *model) suggestionView() string {
	if m.suggestionErr != nil {
		return reportStyle.Render(scoreBadStyle.Render("generation failed: " + m.suggestionErr.Error()))
	}

	classes := audit.Classify(m.suggestion)
	return reportStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Suggested password:"),
		"",
		promptStyle.Render(m.suggestion),
		"",
		fmt.Sprintf("length: %d, classes: %s", utf8.RuneCountInString(m.suggestion), strings.Join(classes.Active(), ", ")),
	))
}
