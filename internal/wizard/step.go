// Package wizard implements the setup wizard's interaction state machine:
// a linear sequence of selection steps with bidirectional navigation,
// wrapped cursor movement, and a single-shot commit on the summary step.
//
// The package is independent of any terminal framework; the TUI adapter in
// internal/infrastructure/tui drives it through Apply, and tests drive it
// with scripted intent sequences.
package wizard

// Step identifies one screen of the wizard. Steps form a strict linear
// chain; Next and Prev are total and act as identity at the ends.
type Step int

const (
	StepWelcome Step = iota
	StepShell
	StepCommandStyle
	StepFolderStyle
	StepNewShellBehavior
	StepSummary
	StepDone
)

// VisibleSteps is the number of steps shown in the progress indicator
// (Welcome through Summary).
const VisibleSteps = 6

// Next returns the following step. Done is terminal.
func (s Step) Next() Step {
	switch s {
	case StepWelcome:
		return StepShell
	case StepShell:
		return StepCommandStyle
	case StepCommandStyle:
		return StepFolderStyle
	case StepFolderStyle:
		return StepNewShellBehavior
	case StepNewShellBehavior:
		return StepSummary
	case StepSummary:
		return StepDone
	default:
		return StepDone
	}
}

// Prev returns the preceding step. Welcome is the floor.
func (s Step) Prev() Step {
	switch s {
	case StepShell:
		return StepWelcome
	case StepCommandStyle:
		return StepShell
	case StepFolderStyle:
		return StepCommandStyle
	case StepNewShellBehavior:
		return StepFolderStyle
	case StepSummary:
		return StepNewShellBehavior
	case StepDone:
		return StepDone
	default:
		return StepWelcome
	}
}

// Index returns the 0-based position for the progress indicator.
func (s Step) Index() int { return int(s) }

// HasOptions reports whether the step carries a selection list.
func (s Step) HasOptions() bool {
	switch s {
	case StepShell, StepCommandStyle, StepFolderStyle, StepNewShellBehavior:
		return true
	default:
		return false
	}
}

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepShell:
		return "shell"
	case StepCommandStyle:
		return "command-style"
	case StepFolderStyle:
		return "folder-style"
	case StepNewShellBehavior:
		return "new-shell-behavior"
	case StepSummary:
		return "summary"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}
