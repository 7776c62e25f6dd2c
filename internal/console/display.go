package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Severity tags a display line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Line is one entry of the console log.
type Line struct {
	Severity Severity
	Text     string
}

// Display renders console log lines. It is the only output boundary of a
// Session; hosts decide how lines look.
type Display interface {
	// Print appends a line to the visible log.
	Print(line Line)
	// Clear empties the visible log.
	Clear()
}

// clearScreen moves the cursor home and erases the screen.
const clearScreen = "\033[H\033[2J"

// TerminalDisplay writes lines to a terminal, coloring warnings and errors.
type TerminalDisplay struct {
	mu       sync.Mutex
	writer   io.Writer
	useColor bool
}

// NewTerminalDisplay creates a display writing to stdout.
func NewTerminalDisplay(useColor bool) *TerminalDisplay {
	return &TerminalDisplay{
		writer:   os.Stdout,
		useColor: useColor,
	}
}

// SetWriter sets a custom writer for the display
func (d *TerminalDisplay) SetWriter(w io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writer = w
}

// colorize applies the severity color if colors are enabled
func (d *TerminalDisplay) colorize(line Line) string {
	if !d.useColor {
		return line.Text
	}
	switch line.Severity {
	case SeverityWarning:
		return text.FgYellow.Sprint(line.Text)
	case SeverityError:
		return text.FgRed.Sprint(line.Text)
	default:
		return line.Text
	}
}

// Print writes the line followed by a newline.
func (d *TerminalDisplay) Print(line Line) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.writer, d.colorize(line))
}

// Clear erases the terminal.
func (d *TerminalDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.writer, clearScreen)
}

// BufferDisplay keeps the visible log in memory. Embedding hosts render from
// Lines; tests assert on it.
type BufferDisplay struct {
	mu    sync.Mutex
	lines []Line
}

// NewBufferDisplay creates an empty in-memory display.
func NewBufferDisplay() *BufferDisplay {
	return &BufferDisplay{}
}

// Print appends the line.
func (d *BufferDisplay) Print(line Line) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = append(d.lines, line)
}

// Clear drops every line.
func (d *BufferDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = nil
}

// Lines returns a copy of the visible log.
func (d *BufferDisplay) Lines() []Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Last returns the most recent line, or a zero Line.
func (d *BufferDisplay) Last() Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.lines) == 0 {
		return Line{}
	}
	return d.lines[len(d.lines)-1]
}

// Text returns the visible log as it would appear on screen.
func (d *BufferDisplay) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out string
	for _, l := range d.lines {
		out += l.Text + "\n"
	}
	return out
}
