package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stain-win/passaudit/config"
)

// Global ASCII art for the passaudit logo.
const passauditLogo = `
 ___  _   ___ ___  _  _   _ ___  ___ _____
| _ \/_\ / __/ __|/_\| | | |   \|_ _|_   _|
|  _/ _ \\__ \__ \/ _ \ |_| | |) || |  | |
|_|/_/ \_\___/___/_/ \_\___/|___/|___| |_|

`

// Run initializes and runs the TUI application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
