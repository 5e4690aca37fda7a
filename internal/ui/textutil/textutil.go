// Package textutil provides width-aware text helpers for table cells and
// chart bars.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// BarRune fills chart bars.
const BarRune = "█"

// Truncate shortens s to at most maxWidth columns, ending with an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads or truncates s to exactly width columns.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in width columns.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillLeft(s, width)
}

// Bar renders value as a horizontal bar scaled so that max fills width.
// Non-zero values always get at least one cell.
func Bar(value, max, width int) string {
	if value <= 0 || max <= 0 || width <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat(BarRune, n)
}

// LabelWidth returns the widest label, capped at limit.
func LabelWidth(labels []string, limit int) int {
	w := 0
	for _, l := range labels {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	if limit > 0 && w > limit {
		return limit
	}
	return w
}
