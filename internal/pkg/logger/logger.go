// Package logger provides colored, leveled diagnostics for the CLI paths.
// The wizard renders its own screen and never writes through here.
package logger

import (
	"github.com/fatih/color"
)

// ColorLogger writes leveled messages to stderr via fatih/color. Debug
// output is emitted only when verbose is set.
type ColorLogger struct {
	verbose bool

	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
}

// New creates a ColorLogger.
func New(verbose bool) *ColorLogger {
	return &ColorLogger{
		verbose: verbose,
		debug:   color.New(color.FgCyan),
		info:    color.New(color.FgGreen),
		warn:    color.New(color.FgHiMagenta),
		err:     color.New(color.FgRed),
	}
}

func (l *ColorLogger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.debug.Fprintf(color.Error, format+"\n", args...)
}

func (l *ColorLogger) Info(format string, args ...any) {
	l.info.Fprintf(color.Error, format+"\n", args...)
}

func (l *ColorLogger) Warn(format string, args ...any) {
	l.warn.Fprintf(color.Error, format+"\n", args...)
}

func (l *ColorLogger) Error(format string, args ...any) {
	l.err.Fprintf(color.Error, format+"\n", args...)
}
