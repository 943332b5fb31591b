// Package ports defines the interfaces between the application core and the
// infrastructure adapters.
//
// The wizard and translation engine depend only on these abstractions, so
// tests can drive them with scripted savers and fake runners while
// production wires in the YAML store, the process runner, and the real
// shell integrator.
package ports

import (
	"context"

	"github.com/semanticos/semantic/internal/domain"
)

// ConfigLoader loads a previously persisted mapping store.
type ConfigLoader interface {
	Load() (domain.MappingStore, error)
}

// ConfigSaver durably persists a mapping store, creating any missing parent
// directories and overwriting existing content. The wizard commits through
// this exactly once per successful session.
type ConfigSaver interface {
	Save(domain.MappingStore) error
}

// ConfigStore combines load and save with a display path.
type ConfigStore interface {
	ConfigLoader
	ConfigSaver
	Path() string
}

// Runner spawns the program named by an execution plan and waits for it,
// returning the child's exit code.
type Runner interface {
	Run(ctx context.Context, plan domain.ExecutionPlan) (int, error)
}

// ShellIntegrator manages shell integration hooks (fish, bash, zsh).
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// Logger provides leveled diagnostics for the CLI command paths.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
