package strings

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "short string unchanged", input: "hello", maxLen: 10, expected: "hello"},
		{name: "exact length unchanged", input: "hello", maxLen: 5, expected: "hello"},
		{name: "long string truncated", input: "hello world this is a long string", maxLen: 15, expected: "hello world ..."},
		{name: "newlines flattened", input: "Prints a manual\nfor a command", maxLen: 40, expected: "Prints a manual for a command"},
		{name: "carriage returns and tabs", input: "a\r\n\tb", maxLen: 10, expected: "a b"},
		{name: "surrounding whitespace trimmed", input: "  padded  ", maxLen: 10, expected: "padded"},
		{name: "empty", input: "", maxLen: 10, expected: ""},
		{name: "tiny max clamped", input: "abcdefgh", maxLen: 1, expected: "a..."},
		{name: "negative max clamped", input: "abcdefgh", maxLen: -3, expected: "a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDescription(tt.input, tt.maxLen))
		})
	}
}

func TestTruncateDescription_WideCharacters(t *testing.T) {
	out := TruncateDescription("コマンドの説明がとても長い", 10)
	assert.LessOrEqual(t, runewidth.StringWidth(out), 10)
	assert.Contains(t, out, "...")
}
