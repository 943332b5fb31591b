// Package shell provides shell detection, init-text generation, and
// integration hook management for fish, bash, and zsh.
package shell

import (
	"path/filepath"
	"strings"

	"github.com/semanticos/semantic/internal/domain"
)

// Normalize maps a shell name or $SHELL path onto a known shell.
func Normalize(shell string) domain.ShellName {
	switch strings.ToLower(filepath.Base(shell)) {
	case "fish":
		return domain.ShellFish
	case "bash":
		return domain.ShellBash
	case "zsh":
		return domain.ShellZsh
	default:
		return domain.ShellUnknown
	}
}

// Supported lists the shells the tool integrates with, in wizard order.
func Supported() []domain.ShellName {
	return []domain.ShellName{domain.ShellFish, domain.ShellBash, domain.ShellZsh}
}
