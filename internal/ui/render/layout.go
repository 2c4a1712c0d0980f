package render

import statepkg "github.com/kk-code-lab/rfm/internal/state"

// Layout records where a frame placed each region, so mouse events can be
// mapped back to entries.
type Layout struct {
	SidebarWidth   int
	MainPanelStart int
	MainPanelWidth int
	ListTop        int
	ListHeight     int
	NameWidth      int
	SizeWidth      int
	DateWidth      int
}

const (
	markWidth       = 2
	columnGap       = 1
	sizeColumnWidth = 10
	dateColumnWidth = 16
	minSizeColumns  = 36
	minDateColumns  = 64
)

func (r *Renderer) computeLayout(w, h int, state *statepkg.AppState) Layout {
	if w < 0 {
		w = 0
	}

	l := Layout{ListTop: statepkg.ListTop, ListHeight: listHeightFor(h)}
	l.SidebarWidth = SidebarWidthForWidth(w, state)
	l.MainPanelStart = l.SidebarWidth
	if l.SidebarWidth > 0 {
		l.MainPanelStart++ // separator
	}
	l.MainPanelWidth = w - l.MainPanelStart
	if l.MainPanelWidth < 0 {
		l.MainPanelWidth = 0
	}

	if l.MainPanelWidth >= minSizeColumns {
		l.SizeWidth = sizeColumnWidth
	}
	if l.MainPanelWidth >= minDateColumns {
		l.DateWidth = dateColumnWidth
	}

	l.NameWidth = l.MainPanelWidth - markWidth
	if l.SizeWidth > 0 {
		l.NameWidth -= l.SizeWidth + columnGap
	}
	if l.DateWidth > 0 {
		l.NameWidth -= l.DateWidth + columnGap
	}
	if l.NameWidth < 0 {
		l.NameWidth = 0
	}
	return l
}

// SidebarWidthForWidth returns the places sidebar width for a terminal w
// columns wide; 0 hides it.
func SidebarWidthForWidth(w int, state *statepkg.AppState) int {
	if state == nil || len(state.Places) == 0 {
		return 0
	}

	switch {
	case w >= 140:
		return 24
	case w >= 110:
		return 20
	case w >= 90:
		return 16
	case w >= 72:
		return 13
	default:
		return 0
	}
}

func listHeightFor(h int) int {
	if h-3 < 1 {
		return 1
	}
	return h - 3
}
