// Package table converts catalog records into rows for CLI tables.
package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder is shown for empty cells.
const Placeholder = "-"

// FormatRating renders a 0-5 rating with one decimal.
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

// Truncate shortens s to at most max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	if s == "" {
		return Placeholder
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

// Join joins values with ", " or returns the placeholder.
func Join(values []string) string {
	if len(values) == 0 {
		return Placeholder
	}
	return strings.Join(values, ", ")
}

// OrPlaceholder returns s, or the placeholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
