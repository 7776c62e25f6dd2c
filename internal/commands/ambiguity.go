package commands

import (
	"strings"
)

// IsAmbiguous reports whether another command in the snapshot shares d's bare
// name and parameter types. It is derived on demand since a rescan can change
// the answer.
func (s *Snapshot) IsAmbiguous(d *Descriptor) bool {
	for _, other := range s.descriptors {
		if other != d && other.SameSignature(d) {
			return true
		}
	}
	return false
}

// Candidates returns every command sharing d's signature, d included.
func (s *Snapshot) Candidates(d *Descriptor) []*Descriptor {
	var out []*Descriptor
	for _, other := range s.descriptors {
		if other == d || other.SameSignature(d) {
			out = append(out, other)
		}
	}
	return out
}

// DisplayName is the bare name, or Group.Name when the bare name is ambiguous.
func (s *Snapshot) DisplayName(d *Descriptor) string {
	if s.IsAmbiguous(d) {
		return d.QualifiedName()
	}
	return d.name
}

// AcceptedNames lists every token that resolves to d: the bare name, Group.Name
// and, when a namespace is set, Namespace.Group.Name. Ambiguity only changes
// the displayed form; all forms stay accepted.
func (s *Snapshot) AcceptedNames(d *Descriptor) []string {
	names := []string{d.name, d.QualifiedName()}
	if d.namespace != "" {
		names = append(names, d.FullName())
	}
	return names
}

// HelpString renders the display name followed by parameter type names.
func (s *Snapshot) HelpString(d *Descriptor) string {
	parts := append([]string{s.DisplayName(d)}, d.ParamNames()...)
	return strings.Join(parts, " ")
}

// accepts reports whether token names d, ignoring case.
func (s *Snapshot) accepts(d *Descriptor, token string) bool {
	for _, name := range s.AcceptedNames(d) {
		if strings.EqualFold(name, token) {
			return true
		}
	}
	return false
}

// Resolution is the result of matching a command token and arity.
type Resolution struct {
	// Token is the command token as typed.
	Token string
	// Matches holds every command accepting Token with the requested arity, in
	// registration order.
	Matches []*Descriptor
}

// Primary returns the first match.
func (r *Resolution) Primary() *Descriptor {
	return r.Matches[0]
}

// Match returns every command that accepts token and takes arity arguments.
func (s *Snapshot) Match(token string, arity int) []*Descriptor {
	var out []*Descriptor
	for _, d := range s.descriptors {
		if d.Arity() == arity && s.accepts(d, token) {
			out = append(out, d)
		}
	}
	return out
}

// Resolve matches token and arity to a command. It fails with
// *UnrecognizedCommandError when nothing matches, and with
// *AmbiguousCommandError when the first match is ambiguous and token is its
// bare name rather than a qualified form.
func (s *Snapshot) Resolve(token string, arity int) (*Resolution, error) {
	matches := s.Match(token, arity)
	if len(matches) == 0 {
		return nil, &UnrecognizedCommandError{Name: token, Arity: arity}
	}

	if err := s.CheckAmbiguous(token, matches[0]); err != nil {
		return nil, err
	}

	return &Resolution{Token: token, Matches: matches}, nil
}

// CheckAmbiguous returns *AmbiguousCommandError when token is d's bare name
// and d is ambiguous. Callers that fall back to later matches check each one
// before invoking it.
func (s *Snapshot) CheckAmbiguous(token string, d *Descriptor) error {
	if !strings.EqualFold(token, d.name) || !s.IsAmbiguous(d) {
		return nil
	}
	candidates := s.Candidates(d)
	help := make([]string, len(candidates))
	for i, c := range candidates {
		help[i] = s.HelpString(c)
	}
	return &AmbiguousCommandError{Name: token, Candidates: help}
}

// Lookup returns the commands whose accepted names match name regardless of
// arity. Used by help.
func (s *Snapshot) Lookup(name string) []*Descriptor {
	var out []*Descriptor
	for _, d := range s.descriptors {
		if s.accepts(d, name) {
			out = append(out, d)
		}
	}
	return out
}
