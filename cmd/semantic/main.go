package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		// forwarded child exit status, already reported by the child itself
		var exit *domain.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("SEMANTIC_DEBUG"), "1") || strings.EqualFold(os.Getenv("SEMANTIC_DEBUG"), "true")
}
