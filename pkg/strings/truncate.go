// Package strings holds text helpers for terminal output.
package strings

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultDescriptionMaxLen is the column width used for descriptions in tables.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen leaves room for one cell plus the ellipsis.
const MinTruncateLen = 4

const ellipsis = "..."

// TruncateDescription flattens s onto one line, collapsing whitespace runs
// into single spaces, and cuts it to at most maxLen terminal cells. Wide
// characters count as two cells. maxLen below MinTruncateLen is raised to it.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, maxLen, ellipsis)
}
