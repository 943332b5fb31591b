package wizard

import (
	"fmt"

	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/ports"
)

// Option is one selectable entry in a step's list.
type Option struct {
	Value       string
	Description string
}

// stepOptions holds the fixed option tables, indexed by step. These are
// configuration constants; the wizard never derives options at runtime.
func stepOptions() map[Step][]Option {
	return map[Step][]Option{
		StepShell: {
			{Value: "fish"},
			{Value: "bash"},
			{Value: "zsh"},
		},
		StepCommandStyle: {
			{Value: "natural", Description: "goto, list, install, delete"},
			{Value: "traditional", Description: "cd, ls, pacman, rm"},
			{Value: "verbose", Description: "go-to, list-files, install-package"},
		},
		StepFolderStyle: {
			{Value: "natural", Description: "/apps, /settings, /logs"},
			{Value: "traditional", Description: "/usr/bin, /etc, /var/log"},
			{Value: "verbose", Description: "/user/applications, /configuration"},
		},
		StepNewShellBehavior: {
			{Value: "auto-setup", Description: "Automatically configure new shells"},
			{Value: "notify", Description: "Notify when a new shell is detected"},
			{Value: "ignore", Description: "Do nothing"},
		},
	}
}

// Session is the wizard's mutable state. All mutation happens on the single
// control goroutine that feeds it intents.
type Session struct {
	step    Step
	options map[Step][]Option
	cursors map[Step]int

	saver ports.ConfigSaver

	commitErr string
	quitting  bool
}

// NewSession starts a fresh session on Welcome with every cursor at 0.
func NewSession(saver ports.ConfigSaver) *Session {
	opts := stepOptions()
	cursors := make(map[Step]int, len(opts))
	for step := range opts {
		cursors[step] = 0
	}
	return &Session{
		step:    StepWelcome,
		options: opts,
		cursors: cursors,
		saver:   saver,
	}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Options returns the option list for a step (nil for non-selection steps).
func (s *Session) Options(step Step) []Option { return s.options[step] }

// Cursor returns the cursor index for a selection step.
func (s *Session) Cursor(step Step) int { return s.cursors[step] }

// Selected returns the option the cursor points to on a selection step.
func (s *Session) Selected(step Step) Option {
	opts := s.options[step]
	if len(opts) == 0 {
		return Option{}
	}
	return opts[s.cursors[step]]
}

// CommitError returns the message from the last failed commit attempt, or
// the empty string.
func (s *Session) CommitError() string { return s.commitErr }

// Done reports whether the session committed successfully.
func (s *Session) Done() bool { return s.step == StepDone }

// Quitting reports whether the user abandoned the session.
func (s *Session) Quitting() bool { return s.quitting }

// MoveUp moves the cursor up with wraparound. No-op on steps without a
// selection list.
func (s *Session) MoveUp() {
	if !s.step.HasOptions() {
		return
	}
	n := len(s.options[s.step])
	s.cursors[s.step] = (s.cursors[s.step] - 1 + n) % n
}

// MoveDown moves the cursor down with wraparound. No-op on steps without a
// selection list.
func (s *Session) MoveDown() {
	if !s.step.HasOptions() {
		return
	}
	n := len(s.options[s.step])
	s.cursors[s.step] = (s.cursors[s.step] + 1) % n
}

// Advance moves forward one step. On Summary it commits instead: the store
// built from the current selections is handed to the saver exactly once per
// confirm. A failed commit records the error and stays on Summary so the
// user can retry or go back; state is not corrupted by the failure.
func (s *Session) Advance() {
	if s.step != StepSummary {
		s.step = s.step.Next()
		return
	}

	store := s.Store()
	if err := s.saver.Save(store); err != nil {
		s.commitErr = fmt.Sprintf("Failed to write config: %v", err)
		return
	}
	s.commitErr = ""
	s.step = StepDone
}

// GoBack clears any commit error and moves back one step. Cursor positions
// survive navigation in both directions.
func (s *Session) GoBack() {
	s.commitErr = ""
	s.step = s.step.Prev()
}

// Quit abandons the session without persisting.
func (s *Session) Quit() {
	s.quitting = true
}

// Store builds the mapping store the current selections describe.
func (s *Session) Store() domain.MappingStore {
	return domain.FromSelections(
		s.Selected(StepShell).Value,
		s.Selected(StepCommandStyle).Value,
		s.Selected(StepFolderStyle).Value,
		s.Selected(StepNewShellBehavior).Value,
	)
}
