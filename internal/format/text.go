// Package format provides shared text formatting utilities for report output.
package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spiffcs/prreport/internal/constants"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the visible width of a string in terminal columns,
// accounting for wide characters and ignoring ANSI escape sequences.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// Truncate shortens s to at most maxWidth display columns, ending with "..."
// when anything was cut. Widths too small for the suffix return a hard cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= constants.TruncationSuffixWidth {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// SingleLine collapses newlines and runs of whitespace into single spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EscapeMarkdownCell makes s safe to place inside a Markdown table cell.
func EscapeMarkdownCell(s string) string {
	return strings.ReplaceAll(SingleLine(s), "|", `\|`)
}
