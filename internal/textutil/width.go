package textutil

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// DisplayWidth reports the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, marking the cut with an
// ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// TruncateLeft keeps the tail of text, which is the interesting part of a
// long path.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return ellipsis + runewidth.TruncateLeft(text, runewidth.StringWidth(text)-width+runewidth.StringWidth(ellipsis), "")
}

// Fit truncates text and pads it with spaces to exactly width columns.
func Fit(text string, width int) string {
	return runewidth.FillRight(Truncate(text, width), width)
}
