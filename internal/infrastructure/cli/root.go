// Package cli wires the cobra command surface: the bare command launches
// the setup wizard, subcommands cover init, translate, shell integration,
// and version.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticos/semantic/internal/app"
	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/infrastructure/tui"
	"github.com/semanticos/semantic/internal/wizard"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	container := app.BuildContainer(opts.Verbose)

	root := &cobra.Command{
		Use:   "semantic",
		Short: "Semantic aliases for shell commands and paths",
		Long: "Semantic replaces standard shell commands and filesystem paths with\n" +
			"user-chosen aliases. Run without arguments to launch the setup wizard,\n" +
			"then `semantic init` in your shell profile to enable the aliases.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, container)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCommand(container))
	root.AddCommand(newTranslateCommand(container))
	root.AddCommand(newShellCommand(container))
	root.AddCommand(newVersionCommand())
	return root
}

func runWizard(cmd *cobra.Command, container *app.Container) error {
	session := wizard.NewSession(container.Store)
	done, err := tui.Run(session, container.Store.Path())
	if err != nil {
		return err
	}
	if !done {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to %s\n", container.Store.Path())
	fmt.Fprintln(out, "Run `semantic init` to generate shell aliases.")

	store := session.Store()
	if store.Shells.OnNewShell == string(domain.PolicyAutoSetup) {
		res, err := container.Integrator.Install(store.Shells.Default, false)
		if err != nil {
			container.Logger.Warn("shell integration not installed: %v", err)
			return nil
		}
		fmt.Fprintf(out, "Shell integration installed for %s (%s).\n", res.Shell, res.RCFile)
	}
	return nil
}
