package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stain-win/passaudit/audit"
	"github.com/stain-win/passaudit/auditlog"
	"github.com/stain-win/passaudit/suggest"
)

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global handling for messages that apply to all screens
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := lipgloss.NewStyle().Margin(8, 2).GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// 'q' is regular input while the form has focus.
			if m.activeScreen != auditForm {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.activeScreen != mainMenu {
				m.activeScreen = mainMenu
				return m, nil
			}
		}

	case AuditSubmittedMsg:
		result := audit.Analyze(msg.Password, msg.FirstName, msg.LastName, msg.DateOfBirth)
		m.result = &result
		m.activeScreen = auditReport
		auditlog.Get().Info("password audited",
			"score", result.Score,
			"issues", len(result.Issues),
		)
		return m, nil
	}

	// Screen-specific updates
	switch m.activeScreen {
	case mainMenu:
		return updateMainMenu(m, msg)
	case auditForm:
		return updateAuditForm(m, msg)
	case auditReport:
		return updateReport(m, msg)
	case generateView:
		return updateGenerate(m, msg)
	}

	return m, nil
}

func updateMainMenu(m *model, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		switch item := m.mainMenu.SelectedItem().(menuItem); item.title {
		case "Audit a Password":
			// A fresh form each time; a completed huh form cannot be reused.
			m.auditFormModel = newAuditFormModel()
			m.activeScreen = auditForm
			return m, m.auditFormModel.Init()
		case "Generate a Password":
			m.regenerate()
			m.activeScreen = generateView
			return m, nil
		case "Quit":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.mainMenu, cmd = m.mainMenu.Update(msg)
	return m, cmd
}

func updateAuditForm(m *model, msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedForm, cmd := m.auditFormModel.Update(msg)
	if f, ok := updatedForm.(*auditFormModel); ok {
		m.auditFormModel = f
	}
	return m, cmd
}

func updateReport(m *model, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.activeScreen = mainMenu
	}
	return m, nil
}

func updateGenerate(m *model, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
		m.regenerate()
	}
	return m, nil
}

func (m *model) regenerate() {
	m.suggestion, m.suggestionErr = suggest.Password(m.config.GenerateLength, m.config.MinEntropyBits)
	if m.suggestionErr != nil {
		auditlog.Get().Error("password generation failed", "error", m.suggestionErr)
	}
}
