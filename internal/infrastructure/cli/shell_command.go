package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticos/semantic/internal/app"
	"github.com/semanticos/semantic/internal/infrastructure/shell"
)

// newShellCommand groups shell integration management.
func newShellCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Manage shell integration hooks",
	}

	var shellFlag string
	var force bool

	install := &cobra.Command{
		Use:   "install",
		Short: "Install the integration hook for a shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := container.Integrator.Install(shellFlag, force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hook script: %s\n", res.ScriptPath)
			if res.RCUpdated {
				fmt.Fprintf(out, "Added source line to %s\n", res.RCFile)
			} else {
				fmt.Fprintf(out, "%s already sources the hook\n", res.RCFile)
			}
			return nil
		},
	}

	uninstall := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the integration hook from a shell's rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := container.Integrator.Uninstall(shellFlag)
			if err != nil {
				return err
			}
			if res.RCUpdated {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed source line from %s\n", res.RCFile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove in %s\n", res.RCFile)
			}
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show integration state (all shells unless --shell is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := []string{shellFlag}
			if shellFlag == "" {
				targets = targets[:0]
				for _, name := range shell.Supported() {
					targets = append(targets, string(name))
				}
			}

			out := cmd.OutOrStdout()
			for i, target := range targets {
				if i > 0 {
					fmt.Fprintln(out)
				}
				st := container.Integrator.Status(target)
				if st.Error != "" {
					return fmt.Errorf("%s: %s", st.Shell, st.Error)
				}
				fmt.Fprintf(out, "Shell:        %s\n", st.Shell)
				fmt.Fprintf(out, "Hook script:  %s (present: %v)\n", st.ScriptPath, st.ScriptExists)
				fmt.Fprintf(out, "RC file:      %s (sourced: %v)\n", st.RCFile, st.LinePresent)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&shellFlag, "shell", "", "Target shell (defaults to $SHELL)")
	install.Flags().BoolVar(&force, "force", false, "Rewrite the rc source line even if present")

	cmd.AddCommand(install, uninstall, status)
	return cmd
}
