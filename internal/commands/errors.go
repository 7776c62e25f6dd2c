package commands

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExit is returned by the exit built-in to ask the host to terminate.
	ErrExit = errors.New("exit")

	// ErrArity indicates a token count that does not match a signature.
	ErrArity = errors.New("argument count mismatch")
)

// ParseError indicates a token could not be converted to its parameter type.
type ParseError struct {
	// Position is the zero-based argument index.
	Position int
	// Token is the raw text that failed.
	Token string
	// Type is the target type name.
	Type string
	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argument %d: cannot parse %q as %s: %v", e.Position+1, e.Token, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AmbiguousCommandError indicates a bare name matched several same-signature
// commands.
type AmbiguousCommandError struct {
	Name string
	// Candidates holds the help strings of every colliding command.
	Candidates []string
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("ambiguous command %q: use one of %s", e.Name, strings.Join(e.Candidates, ", "))
}

// UnrecognizedCommandError indicates no command matched the name and arity.
type UnrecognizedCommandError struct {
	Name  string
	Arity int
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q with %d arguments", e.Name, e.Arity)
}

// InvocationFailure wraps an error returned (or a panic raised) by an operation.
type InvocationFailure struct {
	Command string
	Err     error
}

func (e *InvocationFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

func (e *InvocationFailure) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsExit reports whether err requests host termination.
func IsExit(err error) bool {
	return errors.Is(err, ErrExit)
}
