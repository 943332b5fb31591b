package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/semanticos/semantic/internal/domain"
)

// GenerateInit renders the alias definitions for a shell. The output is
// meant to be evaluated by the shell (`eval "$(semantic init)"`, or piped to
// `source` under fish); the integration hook scripts do exactly that.
//
// Aliases expand in-shell, so mappings like goto -> cd change the caller's
// working directory. Path-token substitution is not expressible as an alias
// and stays with `semantic translate`.
func GenerateInit(store domain.MappingStore, sh domain.ShellName) (string, error) {
	if sh == domain.ShellUnknown {
		return "", fmt.Errorf("unsupported shell")
	}

	tokens := make([]string, 0, len(store.Commands))
	for token := range store.Commands {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var b strings.Builder
	fmt.Fprintf(&b, "# Generated by semantic init (%s style). Do not edit.\n", store.General.CommandStyle)
	for _, token := range tokens {
		real := store.Commands[token]
		if sh == domain.ShellFish {
			fmt.Fprintf(&b, "alias %s %s\n", token, singleQuote(real))
			continue
		}
		fmt.Fprintf(&b, "alias %s=%s\n", token, singleQuote(real))
	}
	return b.String(), nil
}

// singleQuote wraps s for shell consumption, escaping embedded quotes the
// POSIX way.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
