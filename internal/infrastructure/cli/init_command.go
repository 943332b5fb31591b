package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticos/semantic/internal/app"
	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/infrastructure/shell"
)

// newInitCommand prints shell init code to stdout. Users eval it from their
// shell profile; the installed hook scripts do the same.
func newInitCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print alias definitions for your shell",
		Long: "Load the config and print alias definitions to stdout.\n\n" +
			"Add `eval \"$(semantic init)\"` to your shell profile, or let\n" +
			"`semantic shell install` manage the hook for you.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := container.Store.Load()
			if err != nil {
				return withSetupHint(container, err)
			}

			// configured default shell wins, then the flag, then $SHELL
			name := store.Shells.Default
			if shellFlag != "" {
				name = shellFlag
			}
			if name == "" {
				name = container.Integrator.DetectShell()
			}

			text, err := shell.GenerateInit(store, shell.Normalize(name))
			if err != nil {
				return fmt.Errorf("%w: %s", err, name)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Generate for a specific shell (fish|bash|zsh)")
	return cmd
}

// withSetupHint decorates config load failures with actionable guidance.
func withSetupHint(container *app.Container, err error) error {
	if errors.Is(err, domain.ErrConfigUnreadable) {
		container.Logger.Error("Run `semantic` (no args) to set up your config first.")
	}
	return fmt.Errorf("failed to load config: %w", err)
}
