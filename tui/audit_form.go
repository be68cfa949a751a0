package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AuditSubmittedMsg is a message that signals the main TUI that the audit
// form was completed.
type AuditSubmittedMsg struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Password    string
}

// auditFormModel represents the state of the form collecting audit inputs.
type auditFormModel struct {
	form   *huh.Form
	width  int
	height int
}

func newAuditFormModel() *auditFormModel {
	var firstName, lastName, dob, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("firstName").
				Title(lipgloss.NewStyle().Bold(true).Render("First name")).
				Prompt(lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Render(">")).
				Placeholder("as it might appear in the password").
				Value(&firstName),
			huh.NewInput().
				Key("lastName").
				Title(lipgloss.NewStyle().Bold(true).Render("Last name")).
				Prompt(lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Render(">")).
				Placeholder("as it might appear in the password").
				Value(&lastName),
			huh.NewInput().
				Key("dob").
				Title(lipgloss.NewStyle().Bold(true).Render("Date of birth")).
				Prompt(lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Render(">")).
				Placeholder("DD.MM.YYYY").
				Value(&dob),
			huh.NewInput().
				Key("password").
				Title(lipgloss.NewStyle().Bold(true).Render("Password to check")).
				Prompt(lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Render(">")).
				EchoMode(huh.EchoMode(textinput.EchoPassword)).
				Value(&password),
		),
	).WithWidth(48)

	return &auditFormModel{
		form: form,
	}
}

func (m *auditFormModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *auditFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var updatedForm tea.Model

	updatedForm, cmd = m.form.Update(msg)
	if f, ok := updatedForm.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		// When the form is submitted, send a message to the main TUI.
		return m, func() tea.Msg {
			return AuditSubmittedMsg{
				FirstName:   strings.TrimSpace(m.form.GetString("firstName")),
				LastName:    strings.TrimSpace(m.form.GetString("lastName")),
				DateOfBirth: strings.TrimSpace(m.form.GetString("dob")),
				Password:    strings.TrimSpace(m.form.GetString("password")),
			}
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, cmd
}

func (m *auditFormModel) View() string {
	return m.form.View()
}
