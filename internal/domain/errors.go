package domain

import (
	"errors"
	"fmt"
)

// Config collaborator failures. The config store wraps the underlying cause
// with one of these so callers can distinguish "no config yet" from "config
// present but broken".
var (
	ErrConfigUnreadable = errors.New("config unreadable")
	ErrConfigMalformed  = errors.New("config malformed")
)

// UnknownCommandError reports a translation request for a token that is not
// in the command map.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown semantic command: %s", e.Token)
}

// MalformedMappingError reports a command map entry whose resolved value is
// empty. Presets never produce this; it indicates a hand-edited config.
type MalformedMappingError struct {
	Token string
}

func (e *MalformedMappingError) Error() string {
	return fmt.Sprintf("mapping for %q resolves to an empty command", e.Token)
}

// ExecutionError reports that the resolved program could not be spawned.
type ExecutionError struct {
	Program string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to run %q: %v", e.Program, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// ExitError forwards a child process exit status through the CLI layer to
// main, which uses it as the tool's own exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
