package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"

	"github.com/stain-win/passaudit/audit"
	"github.com/stain-win/passaudit/config"
)

type screen int

const (
	mainMenu screen = iota
	auditForm
	auditReport
	generateView
)

// A custom item type for our list.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// model holds the state for the main TUI application.
type model struct {
	activeScreen   screen
	mainMenu       list.Model
	auditFormModel *auditFormModel
	result         *audit.Result
	suggestion     string
	suggestionErr  error
	help           help.Model
	width          int
	height         int
	quitting       bool
	config         *config.Config
}

// menuItems defines the items for the main menu.
var menuItems = []list.Item{
	menuItem{"Audit a Password", "Check a password against your personal data"},
	menuItem{"Generate a Password", "Suggest a strong random replacement"},
	menuItem{"Quit", "Exit passaudit (q)"},
}

// initialModel creates the starting state of the TUI.
func initialModel(cfg *config.Config) *model {
	mainList := list.New(menuItems, list.NewDefaultDelegate(), 0, 0)
	mainList.Title = titleStyle.Render("Main Menu")
	mainList.SetShowStatusBar(false)
	mainList.SetFilteringEnabled(false)

	return &model{
		activeScreen:   mainMenu,
		mainMenu:       mainList,
		auditFormModel: newAuditFormModel(),
		help:           help.New(),
		config:         cfg,
	}
}
