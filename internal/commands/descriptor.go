package commands

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// DefaultDescription is used when a Spec declares none.
const DefaultDescription = "No description provided."

// Descriptor identifies one registered operation. It is built once per
// registry population and never mutated.
type Descriptor struct {
	namespace   string
	group       string
	name        string
	params      []ParamType
	description string
	run         Operation
}

// newDescriptor validates spec and builds a descriptor from it.
func newDescriptor(spec Spec) (*Descriptor, error) {
	if err := validateIdentifier("name", spec.Name); err != nil {
		return nil, err
	}
	if strings.Contains(spec.Name, ".") {
		return nil, fmt.Errorf("name %q must not contain '.'", spec.Name)
	}
	if err := validateIdentifier("group", spec.Group); err != nil {
		return nil, err
	}
	if spec.Namespace != "" {
		if err := validateIdentifier("namespace", spec.Namespace); err != nil {
			return nil, err
		}
	}
	if spec.Run == nil {
		return nil, fmt.Errorf("command %s.%s has no operation", spec.Group, spec.Name)
	}
	for i, p := range spec.Params {
		if p.Kind == KindEnum && (p.Enum == nil || len(p.Enum.Members) == 0) {
			return nil, fmt.Errorf("command %s.%s: parameter %d is an enum without members", spec.Group, spec.Name, i+1)
		}
	}

	description := spec.Description
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}

	params := make([]ParamType, len(spec.Params))
	copy(params, spec.Params)

	return &Descriptor{
		namespace:   spec.Namespace,
		group:       spec.Group,
		name:        spec.Name,
		params:      params,
		description: description,
		run:         spec.Run,
	}, nil
}

func validateIdentifier(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s %q must not contain whitespace", field, value)
	}
	return nil
}

// Namespace returns the optional namespace.
func (d *Descriptor) Namespace() string { return d.namespace }

// Group returns the owning group.
func (d *Descriptor) Group() string { return d.group }

// Name returns the bare command name.
func (d *Descriptor) Name() string { return d.name }

// Description returns the help text.
func (d *Descriptor) Description() string { return d.description }

// Arity returns the number of parameters.
func (d *Descriptor) Arity() int { return len(d.params) }

// Params returns a copy of the parameter types.
func (d *Descriptor) Params() []ParamType {
	out := make([]ParamType, len(d.params))
	copy(out, d.params)
	return out
}

// QualifiedName returns Group.Name.
func (d *Descriptor) QualifiedName() string {
	return d.group + "." + d.name
}

// FullName returns Namespace.Group.Name, or QualifiedName without a namespace.
func (d *Descriptor) FullName() string {
	if d.namespace == "" {
		return d.QualifiedName()
	}
	return d.namespace + "." + d.QualifiedName()
}

// ParamNames returns the parameter type names in order.
func (d *Descriptor) ParamNames() []string {
	names := make([]string, len(d.params))
	for i, p := range d.params {
		names[i] = p.Name()
	}
	return names
}

// SameSignature reports whether other shares the bare name and parameter types.
// Names compare exactly, as declared.
func (d *Descriptor) SameSignature(other *Descriptor) bool {
	return d.name == other.name && paramsEqual(d.params, other.params)
}

// sameIdentity is used when comparing snapshots across rescans.
func (d *Descriptor) sameIdentity(other *Descriptor) bool {
	return d.namespace == other.namespace &&
		d.group == other.group &&
		d.description == other.description &&
		d.SameSignature(other)
}

// Invoke runs the operation. Callers coerce args first.
func (d *Descriptor) Invoke(ctx context.Context, args []any) (any, error) {
	return d.run(ctx, args)
}

func (d *Descriptor) String() string {
	return d.FullName()
}
