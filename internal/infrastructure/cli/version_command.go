package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"
)

// Version is stamped at release time.
const Version = "0.1.0"

func newVersionCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "semantic version %s\n", Version)
			if check {
				checkUpdate(cmd, Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}

func checkUpdate(cmd *cobra.Command, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "semanticos",
		Repository: "semantic",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // network failures stay silent, version was already printed
	}

	out := cmd.OutOrStdout()
	if res.Outdated {
		fmt.Fprintf(out, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintln(out, "Download it from https://github.com/semanticos/semantic/releases")
	} else {
		fmt.Fprintf(out, "You are using the latest version: %s\n", currentVer)
	}
}
