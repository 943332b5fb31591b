// Package infrastructure hosts the process-spawning adapter.
package infrastructure

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/ports"
)

// ProcessRunner spawns the program named by an execution plan with the
// caller's stdio and waits for it.
type ProcessRunner struct{}

// NewProcessRunner builds a runner.
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{}
}

// Run implements ports.Runner. The child's exit code is returned so the CLI
// can forward it; a non-zero exit is not itself an error. Only a failure to
// spawn at all yields an ExecutionError.
func (r *ProcessRunner) Run(ctx context.Context, plan domain.ExecutionPlan) (int, error) {
	cmd := exec.CommandContext(ctx, plan.Program, plan.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, &domain.ExecutionError{Program: plan.Program, Err: err}
}

var _ ports.Runner = (*ProcessRunner)(nil)
