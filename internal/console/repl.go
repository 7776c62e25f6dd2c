package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"

	"uniconsole/pkg/logging"
)

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "> "

// defaultSpinnerDelay is how long a command runs before the spinner appears.
const defaultSpinnerDelay = 300 * time.Millisecond

// REPLOptions configures the terminal host.
type REPLOptions struct {
	Prompt string
	// Spinner shows a busy indicator for slow synchronous commands.
	Spinner      bool
	SpinnerDelay time.Duration
}

// REPL drives a Session from a terminal. readline handles line editing only;
// history navigation and completion are delegated to the session so that both
// behave the same in every host.
//
// Key bindings:
//   - Enter: submit the line
//   - ↑/↓ (Ctrl+P/Ctrl+N): previous/next history entry
//   - TAB: complete the last word, or list candidates
//   - Ctrl+C: cancel the current line
//   - Ctrl+D: exit
type REPL struct {
	session *Session
	display *TerminalDisplay
	options REPLOptions
	rl      *readline.Instance

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewREPL creates a terminal host for session. display must be the display the
// session writes to; its writer is redirected through readline while running.
func NewREPL(session *Session, display *TerminalDisplay, options REPLOptions) *REPL {
	if options.Prompt == "" {
		options.Prompt = DefaultPrompt
	}
	if options.SpinnerDelay <= 0 {
		options.SpinnerDelay = defaultSpinnerDelay
	}
	return &REPL{
		session:  session,
		display:  display,
		options:  options,
		stopChan: make(chan struct{}),
	}
}

// Run reads and executes lines until exit, EOF or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	config := &readline.Config{
		Prompt:                 r.options.Prompt,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		Listener:               readline.FuncListener(r.onKey),
		FuncFilterInputRune:    filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl
	r.display.SetWriter(rl.Stdout())
	defer r.display.SetWriter(os.Stdout)

	r.session.Start()

	r.wg.Add(1)
	go r.completionListener(ctx)
	defer r.shutdown(cancel)

	for {
		select {
		case <-ctx.Done():
			logging.Info("REPL", "Console shutting down...")
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if out := r.submit(ctx, line); out.Kind == OutcomeExited {
			return nil
		}
	}
}

// submit runs one line, showing a spinner if it takes a while.
func (r *REPL) submit(ctx context.Context, line string) Outcome {
	if !r.options.Spinner {
		return r.session.Submit(ctx, line)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Running..."

	var mu sync.Mutex
	done := false
	timer := time.AfterFunc(r.options.SpinnerDelay, func() {
		mu.Lock()
		defer mu.Unlock()
		if !done {
			s.Start()
		}
	})
	defer func() {
		timer.Stop()
		mu.Lock()
		done = true
		s.Stop()
		mu.Unlock()
	}()

	return r.session.Submit(ctx, line)
}

// onKey maps navigation keys onto the session. The returned line replaces
// readline's buffer. readline calls it from its own goroutine, possibly while
// Submit runs on the Run goroutine.
func (r *REPL) onKey(line []rune, pos int, key rune) ([]rune, int, bool) {
	switch key {
	case readline.CharPrev:
		r.session.HistoryPrevious()
	case readline.CharNext:
		r.session.HistoryNext()
	case readline.CharTab:
		r.session.SetInput(string(line))
		r.session.Autocomplete()
	default:
		return nil, 0, false
	}
	input, caret := r.session.InputState()
	return []rune(input), caret, true
}

// completionListener prints async completions as they arrive.
func (r *REPL) completionListener(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopChan:
			return
		case c := <-r.session.Completions():
			r.session.Deliver(c)
			if r.rl != nil {
				r.rl.Refresh()
			}
		}
	}
}

func (r *REPL) shutdown(cancel context.CancelFunc) {
	close(r.stopChan)
	cancel()
	r.wg.Wait()
	r.session.Wait()
}

// filterInput filters input characters for readline
func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
