// Package console implements the interactive session on top of the command
// registry: line submission, history navigation and autocomplete, plus a
// readline based terminal host.
package console

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/google/uuid"

	"uniconsole/internal/commands"
	"uniconsole/pkg/logging"
)

// DefaultBanner is printed when the session starts and after clear.
const DefaultBanner = "Type 'help' for a list of commands"

// parseFailedMessage is shown when no candidate accepts the arguments.
const parseFailedMessage = "Could not parse parameters"

// completionBuffer bounds undelivered async completions.
const completionBuffer = 16

// State is the session's position in the submission cycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// OutcomeKind classifies how a submission ended.
type OutcomeKind int

const (
	// OutcomeEmpty means the line was blank and ignored.
	OutcomeEmpty OutcomeKind = iota
	OutcomeExecuted
	OutcomeAmbiguous
	OutcomeUnrecognized
	OutcomeParseFailed
	OutcomeInvocationFailed
	OutcomeCleared
	OutcomeExited
	// OutcomePending means an async command started; its result arrives as a
	// Completion.
	OutcomePending
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "empty"
	case OutcomeExecuted:
		return "executed"
	case OutcomeAmbiguous:
		return "ambiguous"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeParseFailed:
		return "parse-failed"
	case OutcomeInvocationFailed:
		return "invocation-failed"
	case OutcomeCleared:
		return "cleared"
	case OutcomeExited:
		return "exited"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Outcome reports what a submission did.
type Outcome struct {
	Kind OutcomeKind
	// Line is the submitted text without surrounding whitespace.
	Line string
	// Command is the descriptor that was invoked or attempted.
	Command *commands.Descriptor
	// Value is the operation's synchronous return value.
	Value any
	// Err is one of the commands error types for failed outcomes.
	Err error
	// PendingID identifies the async work for OutcomePending.
	PendingID string
}

// Completion carries the result of an async command.
type Completion struct {
	ID    string
	Line  string
	Value any
	Err   error
}

// AutocompleteResult reports what Autocomplete did.
type AutocompleteResult struct {
	// Candidates holds the matching display names.
	Candidates []string
	// Completed is true when the input was extended in place.
	Completed bool
}

// Session owns the interactive state of one console: history, the input
// buffer and the submission cycle. Key handling may run on a different
// goroutine than Submit; mu guards the interactive state.
type Session struct {
	registry *commands.Registry
	display  Display
	banner   string

	mu      sync.Mutex
	history []string
	cursor  int
	input   string
	caret   int
	state   State

	completions chan Completion
	wg          sync.WaitGroup
	newID       func() string
}

// Option configures a Session.
type Option func(*Session)

// WithBanner replaces the help banner.
func WithBanner(banner string) Option {
	return func(s *Session) {
		s.banner = banner
	}
}

// WithIDGenerator replaces the async work identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) {
		s.newID = gen
	}
}

// NewSession creates an idle session reading from registry and writing to display.
// Hosts that run async commands must drain Completions; once its buffer is
// full further completions are dropped with a warning.
func NewSession(registry *commands.Registry, display Display, opts ...Option) *Session {
	s := &Session{
		registry:    registry,
		display:     display,
		banner:      DefaultBanner,
		completions: make(chan Completion, completionBuffer),
		newID:       shortID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func shortID() string {
	return uuid.NewString()[:8]
}

// Start prints the help banner.
func (s *Session) Start() {
	s.printBanner()
}

func (s *Session) printBanner() {
	if s.banner != "" {
		s.display.Print(Line{Severity: SeverityInfo, Text: s.banner})
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Input returns the input buffer.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Caret returns the caret position in runes.
func (s *Session) Caret() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caret
}

// InputState returns the input buffer and caret together.
func (s *Session) InputState() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input, s.caret
}

// SetInput replaces the input buffer and moves the caret to its end.
func (s *Session) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setInput(input)
}

func (s *Session) setInput(input string) {
	s.input = input
	s.caret = len([]rune(input))
}

// History returns a copy of the submitted lines.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryCursor returns the history index; len(History()) means a fresh line.
func (s *Session) HistoryCursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Reset clears history and the input buffer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.cursor = 0
	s.setInput("")
}

// HistoryPrevious moves one entry back, stopping at the oldest, and loads it.
func (s *Session) HistoryPrevious() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return s.input
	}
	if s.cursor > 0 {
		s.cursor--
	}
	s.setInput(s.history[s.cursor])
	return s.input
}

// HistoryNext moves one entry forward. Reaching the end clears the input.
func (s *Session) HistoryNext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.history) {
		return s.input
	}
	s.cursor++
	if s.cursor == len(s.history) {
		s.setInput("")
	} else {
		s.setInput(s.history[s.cursor])
	}
	return s.input
}

// Autocomplete completes the last space-delimited token of the input. When the
// candidates share a prefix longer than the token, the token is replaced by
// it; otherwise the candidates are listed and the input is left alone.
func (s *Session) Autocomplete() AutocompleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(s.input, " ")
	partial := parts[len(parts)-1]

	candidates := s.registry.Snapshot().Complete(partial)
	if len(candidates) == 0 {
		return AutocompleteResult{}
	}

	n := commands.CommonPrefixLength(candidates)
	if n > len([]rune(partial)) {
		parts[len(parts)-1] = string([]rune(candidates[0])[:n])
		s.setInput(strings.Join(parts, " "))
		return AutocompleteResult{Candidates: candidates, Completed: true}
	}

	s.display.Print(Line{
		Severity: SeverityInfo,
		Text:     fmt.Sprintf("> %s\n%s", partial, strings.Join(candidates, ", ")),
	})
	return AutocompleteResult{Candidates: candidates}
}

// Submit processes one line: resolve, coerce, invoke and log. It never fails;
// every problem is reported on the display and in the returned Outcome.
func (s *Session) Submit(ctx context.Context, raw string) Outcome {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Outcome{Kind: OutcomeEmpty}
	}

	s.mu.Lock()
	s.state = StateSubmitting
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.history = append(s.history, raw)
		s.cursor = len(s.history)
		s.setInput("")
		s.state = StateIdle
	}()

	out := s.execute(ctx, line)
	logging.Debug("Session", "Submitted %q: %s", line, out.Kind)
	return out
}

func (s *Session) execute(ctx context.Context, line string) Outcome {
	tokens := strings.Fields(line)
	name, args := tokens[0], tokens[1:]

	if isClear(name) {
		s.display.Clear()
		s.printBanner()
		return Outcome{Kind: OutcomeCleared, Line: line}
	}

	snapshot := s.registry.Snapshot()
	resolution, err := snapshot.Resolve(name, len(args))
	if err != nil {
		var ambiguous *commands.AmbiguousCommandError
		if errors.As(err, &ambiguous) {
			return s.ambiguous(line, err)
		}
		s.display.Print(Line{Severity: SeverityInfo, Text: line})
		return Outcome{Kind: OutcomeUnrecognized, Line: line, Err: err}
	}

	var (
		target   *commands.Descriptor
		values   []any
		parseErr error
	)
	for _, d := range resolution.Matches {
		if err := snapshot.CheckAmbiguous(name, d); err != nil {
			return s.ambiguous(line, err)
		}
		v, err := commands.Coerce(args, d.Params())
		if err != nil {
			if parseErr == nil {
				parseErr = err
			}
			continue
		}
		target, values = d, v
		break
	}
	if target == nil {
		logging.Debug("Session", "Could not parse %q: %v", line, parseErr)
		s.log(line, SeverityError, parseFailedMessage)
		return Outcome{Kind: OutcomeParseFailed, Line: line, Command: resolution.Primary(), Err: parseErr}
	}

	value, err := invoke(ctx, target, values)
	if err != nil {
		if commands.IsExit(err) {
			return Outcome{Kind: OutcomeExited, Line: line, Command: target}
		}
		failure := &commands.InvocationFailure{Command: snapshot.DisplayName(target), Err: err}
		s.log(line, SeverityError, err.Error())
		return Outcome{Kind: OutcomeInvocationFailed, Line: line, Command: target, Err: failure}
	}

	if pending, ok := value.(*commands.Pending); ok {
		id := s.start(ctx, line, pending)
		s.log(line, SeverityInfo, "started "+id)
		return Outcome{Kind: OutcomePending, Line: line, Command: target, PendingID: id}
	}

	if value != nil {
		s.log(line, SeverityInfo, fmt.Sprint(value))
	}
	return Outcome{Kind: OutcomeExecuted, Line: line, Command: target, Value: value}
}

func (s *Session) ambiguous(line string, err error) Outcome {
	var ambiguous *commands.AmbiguousCommandError
	errors.As(err, &ambiguous)
	s.log(line, SeverityWarning, "Ambiguous command!\nPossible commands: "+strings.Join(ambiguous.Candidates, ", "))
	return Outcome{Kind: OutcomeAmbiguous, Line: line, Err: err}
}

// isClear matches the clear built-in, bare or qualified. Arguments after it
// are ignored.
func isClear(name string) bool {
	return strings.EqualFold(name, commands.ClearCommand) ||
		strings.EqualFold(name, commands.BuiltinGroup+"."+commands.ClearCommand)
}

// invoke runs the operation, turning a panic into an error.
func invoke(ctx context.Context, d *commands.Descriptor, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Debug("Session", "%s panicked: %v\n%s", d.FullName(), r, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.Invoke(ctx, args)
}

func (s *Session) log(line string, severity Severity, result string) {
	s.display.Print(Line{Severity: severity, Text: fmt.Sprintf("> %s\n%s", line, result)})
}

// start runs pending work in the background and queues its completion.
func (s *Session) start(ctx context.Context, line string, pending *commands.Pending) string {
	id := s.newID()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var c Completion
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.Err = fmt.Errorf("panic: %v", r)
				}
			}()
			c.Value, c.Err = pending.Run(ctx)
		}()
		c.ID, c.Line = id, line

		if ctx.Err() != nil {
			logging.Debug("Session", "Dropping completion %s: %v", id, ctx.Err())
			return
		}
		select {
		case s.completions <- c:
		default:
			logging.Warn("Session", "Dropping completion %s: %d completions not delivered", id, cap(s.completions))
		}
	}()
	return id
}

// Completions delivers the results of async commands. Hosts pass each one to
// Deliver and must keep draining it while async work runs.
func (s *Session) Completions() <-chan Completion {
	return s.completions
}

// Deliver prints an async completion.
func (s *Session) Deliver(c Completion) {
	switch {
	case c.Err != nil:
		s.log(c.Line, SeverityError, fmt.Sprintf("%s failed: %v", c.ID, c.Err))
	case c.Value != nil:
		s.log(c.Line, SeverityInfo, fmt.Sprintf("%s: %v", c.ID, c.Value))
	default:
		s.log(c.Line, SeverityInfo, c.ID+" done")
	}
}

// DeliverReady prints every completion already queued without blocking and
// returns how many were delivered.
func (s *Session) DeliverReady() int {
	n := 0
	for {
		select {
		case c := <-s.completions:
			s.Deliver(c)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until all async work has finished and queued its completion.
func (s *Session) Wait() {
	s.wg.Wait()
}
