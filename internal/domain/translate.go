package domain

import "strings"

// ExecutionPlan is the concrete invocation a semantic command resolves to.
type ExecutionPlan struct {
	Program string
	Args    []string
}

// CommandLine renders the plan for diagnostics.
func (p ExecutionPlan) CommandLine() string {
	if len(p.Args) == 0 {
		return p.Program
	}
	return p.Program + " " + strings.Join(p.Args, " ")
}

// Translate resolves one semantic invocation against the store.
//
// The token is looked up in the command map; the resolved value may carry
// fixed arguments (e.g. "sudo pacman -S"), which are split on whitespace.
// Each trailing argument is then substituted through the path map by
// whole-string match only, with no partial substitution and no recursion.
// Unmapped arguments pass through unchanged, in order.
func Translate(store MappingStore, token string, args []string) (ExecutionPlan, error) {
	real, ok := store.Commands[token]
	if !ok {
		return ExecutionPlan{}, &UnknownCommandError{Token: token}
	}

	parts := strings.Fields(real)
	if len(parts) == 0 {
		return ExecutionPlan{}, &MalformedMappingError{Token: token}
	}
	program, fixed := parts[0], parts[1:]

	planArgs := make([]string, 0, len(fixed)+len(args))
	planArgs = append(planArgs, fixed...)
	for _, arg := range args {
		if mapped, ok := store.Paths[arg]; ok {
			planArgs = append(planArgs, mapped)
			continue
		}
		planArgs = append(planArgs, arg)
	}

	return ExecutionPlan{Program: program, Args: planArgs}, nil
}
