// Package commands provides the command model of the console: descriptors for
// registered operations, typed parameter coercion, the command registry, the
// ambiguity rules used to decide how a command is displayed and invoked, and the
// autocomplete engine.
//
// Hosts register operations through a Source. The registry never inspects
// program internals; every command it knows about was declared by a Source as a
// Spec carrying its name, group, parameter types, description and invocation
// closure.
package commands

import (
	"context"
)

// Operation is the invocation closure behind a registered command. It receives
// the coerced arguments in declaration order. A nil result logs nothing.
type Operation func(ctx context.Context, args []any) (any, error)

// Spec is the declaration a host supplies for one operation.
type Spec struct {
	// Namespace optionally qualifies Group, enabling the Namespace.Group.Name form.
	Namespace string
	// Group is the owner used to disambiguate name collisions.
	Group string
	// Name is the bare command name.
	Name string
	// Params lists the parameter types in declaration order.
	Params []ParamType
	// Description is shown by help. Defaults to DefaultDescription.
	Description string
	// Run is invoked with the coerced arguments.
	Run Operation
}

// Source enumerates operations for the registry. Specs is called on every
// registry population.
type Source interface {
	Specs() ([]Spec, error)
}

// StaticSource is a fixed list of specs.
type StaticSource []Spec

// Specs returns the list itself.
func (s StaticSource) Specs() ([]Spec, error) {
	return s, nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]Spec, error)

// Specs calls f.
func (f SourceFunc) Specs() ([]Spec, error) {
	return f()
}
