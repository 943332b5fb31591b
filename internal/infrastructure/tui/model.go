// Package tui is the terminal front-end for the setup wizard. It owns
// rendering and key handling only; all wizard logic lives in
// internal/wizard and is driven through intents.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/semanticos/semantic/internal/wizard"
)

// Model wraps a wizard session for Bubble Tea.
type Model struct {
	session    *wizard.Session
	keys       KeyMap
	configPath string

	width  int
	height int
}

// NewModel builds the wizard model. configPath is shown on the welcome and
// summary screens.
func NewModel(session *wizard.Session, configPath string) Model {
	return Model{
		session:    session,
		keys:       DefaultKeyMap(),
		configPath: configPath,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run drives the wizard to completion in the alternate screen and reports
// whether the session committed.
func Run(session *wizard.Session, configPath string) (bool, error) {
	p := tea.NewProgram(NewModel(session, configPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return false, err
	}
	return session.Done(), nil
}
