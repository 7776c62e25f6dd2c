package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalDisplay_Print(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(false)
	d.SetWriter(&buf)

	d.Print(Line{Severity: SeverityError, Text: "> fail\nboom"})
	d.Print(Line{Severity: SeverityInfo, Text: "ok"})
	assert.Equal(t, "> fail\nboom\nok\n", buf.String())
}

func TestTerminalDisplay_ColorsWarningsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(true)
	d.SetWriter(&buf)

	d.Print(Line{Severity: SeverityInfo, Text: "plain"})
	assert.Equal(t, "plain\n", buf.String())

	buf.Reset()
	d.Print(Line{Severity: SeverityWarning, Text: "careful"})
	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestTerminalDisplay_Clear(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(false)
	d.SetWriter(&buf)

	d.Clear()
	assert.Equal(t, clearScreen, buf.String())
}

func TestBufferDisplay(t *testing.T) {
	d := NewBufferDisplay()
	assert.Equal(t, Line{}, d.Last())

	d.Print(Line{Text: "one"})
	d.Print(Line{Severity: SeverityWarning, Text: "two"})
	assert.Equal(t, "one\ntwo\n", d.Text())
	assert.Equal(t, SeverityWarning, d.Last().Severity)

	d.Clear()
	assert.Empty(t, d.Lines())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
