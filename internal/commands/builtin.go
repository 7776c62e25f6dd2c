package commands

import (
	"context"
	"fmt"
	"strings"
)

// BuiltinGroup owns the commands every console provides.
const BuiltinGroup = "Console"

// ClearCommand is intercepted by the session before resolution.
const ClearCommand = "clear"

// builtinSource declares clear, help, help <name> and exit. Help reads the
// registry's current snapshot when invoked.
func builtinSource(r *Registry) Source {
	return StaticSource{
		{
			Group:       BuiltinGroup,
			Name:        ClearCommand,
			Description: "Clears the console",
			Run:         func(context.Context, []any) (any, error) { return nil, nil },
		},
		{
			Group:       BuiltinGroup,
			Name:        "help",
			Description: "Prints all possible commands",
			Run: func(context.Context, []any) (any, error) {
				return HelpAll(r.Snapshot()), nil
			},
		},
		{
			Group:       BuiltinGroup,
			Name:        "help",
			Params:      []ParamType{String},
			Description: "Prints a manual for a specific command",
			Run: func(_ context.Context, args []any) (any, error) {
				return HelpFor(r.Snapshot(), args[0].(string)), nil
			},
		},
		{
			Group:       BuiltinGroup,
			Name:        "exit",
			Description: "Exits the application",
			Run:         func(context.Context, []any) (any, error) { return nil, ErrExit },
		},
	}
}

// HelpAll lists every command with its description.
func HelpAll(s *Snapshot) string {
	var b strings.Builder
	b.WriteString("Available Commands:")
	for _, d := range s.descriptors {
		fmt.Fprintf(&b, "\n%s - %s", s.HelpString(d), d.description)
	}
	return b.String()
}

// HelpFor lists the commands accepting name, each followed by its description.
func HelpFor(s *Snapshot, name string) string {
	matches := s.Lookup(name)
	if len(matches) == 0 {
		return fmt.Sprintf("No command named '%s'", name)
	}
	entries := make([]string, len(matches))
	for i, d := range matches {
		entries[i] = s.HelpString(d) + "\n\t" + d.description
	}
	return strings.Join(entries, "\n")
}
