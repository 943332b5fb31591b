package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/semanticos/semantic/internal/wizard"
)

// Update handles events. Key presses map to wizard intents; everything else
// is a Noop so a single logical press never advances twice.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.session.Apply(m.intentFor(msg))
		if m.session.Done() || m.session.Quitting() {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) intentFor(msg tea.KeyMsg) wizard.Intent {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return wizard.IntentQuit
	case key.Matches(msg, m.keys.Confirm):
		return wizard.IntentConfirm
	case key.Matches(msg, m.keys.Back):
		return wizard.IntentBack
	case key.Matches(msg, m.keys.Up):
		return wizard.IntentUp
	case key.Matches(msg, m.keys.Down):
		return wizard.IntentDown
	default:
		return wizard.IntentNoop
	}
}
