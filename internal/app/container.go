package app

import (
	"github.com/semanticos/semantic/internal/infrastructure"
	"github.com/semanticos/semantic/internal/infrastructure/config"
	"github.com/semanticos/semantic/internal/infrastructure/shell"
	"github.com/semanticos/semantic/internal/pkg/logger"
	"github.com/semanticos/semantic/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	Store      ports.ConfigStore
	Runner     ports.Runner
	Integrator ports.ShellIntegrator
	Logger     ports.Logger
}

// BuildContainer constructs the dependency graph. Config is loaded lazily by
// the commands that need it, so the wizard can run on a fresh machine.
func BuildContainer(verbose bool) *Container {
	log := logger.New(verbose)
	return &Container{
		Store:      config.NewFileStore(""),
		Runner:     infrastructure.NewProcessRunner(),
		Integrator: shell.NewInstaller(log, "", ""),
		Logger:     log,
	}
}
