package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/semanticos/semantic/internal/wizard"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("14")) // Cyan

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")) // White

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("14")) // Black on cyan

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // Yellow

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")) // Red

	dotDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	dotCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dotFutureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the progress dots, the current step's content, and the help
// bar, vertically centered in the window.
func (m Model) View() string {
	if m.session.Done() || m.session.Quitting() {
		return ""
	}

	sections := []string{
		m.viewProgress(),
		"",
		m.viewContent(),
		"",
		m.viewHelp(),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// viewProgress renders one dot per visible step: done steps green, the
// current one cyan, the rest grey.
func (m Model) viewProgress() string {
	current := m.session.Step().Index()
	var b strings.Builder
	for i := 0; i < wizard.VisibleSteps; i++ {
		switch {
		case i < current:
			b.WriteString(dotDoneStyle.Render(" ● "))
		case i == current:
			b.WriteString(dotCurrentStyle.Render(" ● "))
		default:
			b.WriteString(dotFutureStyle.Render(" ○ "))
		}
	}
	return b.String()
}

func (m Model) viewContent() string {
	switch step := m.session.Step(); step {
	case wizard.StepWelcome:
		return m.viewWelcome()
	case wizard.StepShell:
		return m.viewSelection("Which shell do you use?", step)
	case wizard.StepCommandStyle:
		return m.viewSelection("Pick a command style:", step)
	case wizard.StepFolderStyle:
		return m.viewSelection("Pick a folder style:", step)
	case wizard.StepNewShellBehavior:
		return m.viewSelection("When a new shell is installed:", step)
	case wizard.StepSummary:
		return m.viewSummary()
	default:
		return ""
	}
}

func (m Model) viewWelcome() string {
	lines := []string{
		titleStyle.Render("SemanticOS"),
		"",
		"Welcome to the SemanticOS setup wizard.",
		"",
		"This will configure how you interact with your system.",
		"You can change everything later in:",
		pathStyle.Render("  " + m.configPath),
		"",
		dimStyle.Render("Press Enter to get started."),
	}
	return strings.Join(lines, "\n")
}

// viewSelection renders the prompt and the option list for a selection
// step, with a marker on the highlighted row.
func (m Model) viewSelection(prompt string, step wizard.Step) string {
	cursor := m.session.Cursor(step)

	var b strings.Builder
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString("\n\n")

	for i, opt := range m.session.Options(step) {
		row := opt.Value
		if opt.Description != "" {
			row += "  " + opt.Description
		}
		if i == cursor {
			b.WriteString(selectedRowStyle.Render("  ▸ " + row))
		} else {
			line := optionStyle.Render("    " + opt.Value)
			if opt.Description != "" {
				line += descStyle.Render("  " + opt.Description)
			}
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewSummary() string {
	rows := []struct {
		label string
		step  wizard.Step
	}{
		{"Shell:          ", wizard.StepShell},
		{"Command style:  ", wizard.StepCommandStyle},
		{"Folder style:   ", wizard.StepFolderStyle},
		{"New shell:      ", wizard.StepNewShellBehavior},
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("Review your choices:"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render("  " + row.label))
		b.WriteString(valueStyle.Render(m.session.Selected(row.step).Value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press Enter to save, or Backspace to go back."))

	if err := m.session.CommitError(); err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(err))
	}
	return b.String()
}

func (m Model) viewHelp() string {
	var help string
	switch m.session.Step() {
	case wizard.StepWelcome:
		help = "Enter: continue  •  q: quit"
	case wizard.StepSummary:
		help = "Enter: save config  •  Backspace: back  •  q: quit"
	default:
		help = "↑/↓: select  •  Enter: continue  •  Backspace: back  •  q: quit"
	}
	return dimStyle.Render(help)
}
