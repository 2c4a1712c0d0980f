package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
	"github.com/kk-code-lab/rfm/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	hiddenDesc := "Show hidden files"
	if state != nil && state.Criteria.ShowHidden {
		hiddenDesc = "Hide hidden files"
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ j/k", desc: "Move cursor"},
				{keys: "↵ → l", desc: "Open directory"},
				{keys: "← h ⌫", desc: "Parent directory"},
				{keys: "[ / ]", desc: "History back/forward"},
				{keys: "~", desc: "Go home"},
				{keys: "1-9", desc: "Jump to place"},
			},
		},
		{
			title: "Selection",
			entries: []helpOverlayEntry{
				{keys: "space", desc: "Toggle entry (ctrl-click)"},
				{keys: "Shift+↑/↓", desc: "Extend range (shift-click)"},
				{keys: "a", desc: "Select all"},
				{keys: "Esc", desc: "Clear selection"},
			},
		},
		{
			title: "Files",
			entries: []helpOverlayEntry{
				{keys: "c / y", desc: "Copy selection"},
				{keys: "x", desc: "Cut selection"},
				{keys: "p / v", desc: "Paste here"},
				{keys: "d / Del", desc: "Delete selection"},
				{keys: "n", desc: "New folder"},
			},
		},
		{
			title: "View",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Search names"},
				{keys: "e", desc: "Filter by extension"},
				{keys: "s / S", desc: "Cycle sort field / reverse order"},
				{keys: ".", desc: hiddenDesc},
				{keys: "r", desc: "Refresh directory"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+Z", desc: "Suspend to shell"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 40)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-14s %s", entry.keys, entry.desc))
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillLine(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines(state) {
		if row >= h-1 {
			break
		}
		text := textutil.Truncate(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		r.drawTextLine(0, h-1, w, textutil.Truncate("? toggle · Esc/q close", w), headerStyle)
	}
}
