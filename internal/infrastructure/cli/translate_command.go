package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/semanticos/semantic/internal/app"
	"github.com/semanticos/semantic/internal/domain"
)

// newTranslateCommand resolves a semantic command against the config and
// executes the real one, forwarding the child's exit status.
func newTranslateCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <command> [args...]",
		Short: "Run the real command behind a semantic alias",
		// Trailing args belong to the child program; -la and friends must
		// not be parsed as our flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("usage: semantic translate <command> [args...]")
			}

			store, err := container.Store.Load()
			if err != nil {
				return withSetupHint(container, err)
			}

			plan, err := domain.Translate(store, args[0], args[1:])
			if err != nil {
				return err
			}
			container.Logger.Debug("resolved %q to %q", args[0], plan.CommandLine())

			code, err := container.Runner.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}
			if code != 0 {
				return &domain.ExitError{Code: code}
			}
			return nil
		},
	}
	return cmd
}
