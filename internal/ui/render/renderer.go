package render

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
	"github.com/kk-code-lab/rfm/internal/textutil"
)

const (
	headerTitle         = "rfm"
	breadcrumbSeparator = " › "
)

// Renderer handles all UI rendering
type Renderer struct {
	screen    tcell.Screen
	theme     ColorTheme
	layout    Layout
	hasLayout bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// LastLayout returns the layout of the most recent frame.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.layout, r.hasLayout
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if state.HelpVisible {
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	layout := r.computeLayout(w, h, state)
	r.layout, r.hasLayout = layout, true

	r.drawHeader(state, w)
	if layout.SidebarWidth > 0 {
		r.drawSidebar(state, layout)
	}
	r.drawFileList(state, layout)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with title and breadcrumb
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, headerTitle+" ", headerStyle.Bold(true))
	segments := FormatBreadcrumbSegments(state.CurrentPath)
	for i := range segments {
		segments[i] = textutil.SanitizeName(segments[i])
	}

	available := w - endX
	full := strings.Join(segments, breadcrumbSeparator)
	if textutil.DisplayWidth(full) > available {
		endX = r.drawTextLine(endX, 0, available, textutil.TruncateLeft(full, available), headerStyle)
	} else {
		last := len(segments) - 1
		if last > 0 {
			prefix := strings.Join(segments[:last], breadcrumbSeparator) + breadcrumbSeparator
			endX = r.drawTextLine(endX, 0, w-endX, prefix, headerStyle)
		}
		endX = r.drawTextLine(endX, 0, w-endX, segments[last], headerStyle.Bold(true))
	}

	r.fillLine(endX, 0, w, headerStyle)
}

// FormatBreadcrumbSegments splits path into clickable segments. The first
// segment is the root ("/" or a volume name such as "C:").
func FormatBreadcrumbSegments(path string) []string {
	root := string(filepath.Separator)
	if path == "" {
		return []string{root}
	}

	cleanPath := filepath.Clean(path)
	volume := filepath.VolumeName(cleanPath)
	rest := strings.TrimPrefix(cleanPath, volume)

	var segments []string
	switch {
	case volume != "":
		segments = append(segments, volume)
	case strings.HasPrefix(rest, root):
		segments = append(segments, "/")
	}

	for _, part := range strings.Split(filepath.ToSlash(rest), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return []string{"/"}
	}
	return segments
}

// drawSidebar lists the places with their digit shortcuts.
func (r *Renderer) drawSidebar(state *statepkg.AppState, layout Layout) {
	baseStyle := tcell.StyleDefault.Background(r.theme.SidebarBg).Foreground(r.theme.SidebarFg)
	activeStyle := baseStyle.Background(r.theme.SidebarActiveBg).Foreground(r.theme.SidebarActiveFg)
	width := layout.SidebarWidth

	for row := 0; row < layout.ListHeight; row++ {
		y := layout.ListTop + row
		style := baseStyle
		text := ""
		if row < len(state.Places) {
			place := state.Places[row]
			key := " "
			if row < 9 {
				key = string(rune('1' + row))
			}
			text = key + " " + textutil.SanitizeName(place.Label)
			if place.Path == state.CurrentPath {
				style = activeStyle
			}
		}
		endX := r.drawTextLine(0, y, width, textutil.Truncate(text, width), style)
		r.fillLine(endX, y, width, style)
		// separator column
		r.screen.SetContent(width, y, ' ', nil, tcell.StyleDefault)
	}
}

func (r *Renderer) drawFileList(state *statepkg.AppState, layout Layout) {
	startX := layout.MainPanelStart
	maxX := startX + layout.MainPanelWidth
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	for row := 0; row < layout.ListHeight; row++ {
		r.fillLine(startX, layout.ListTop+row, maxX, baseStyle)
	}

	if len(state.View) == 0 {
		message, style := r.emptyListMessage(state, baseStyle)
		r.drawTextLine(startX+markWidth, layout.ListTop, layout.MainPanelWidth-markWidth,
			textutil.Truncate(message, layout.MainPanelWidth-markWidth), style)
		return
	}

	cutPaths := map[string]bool{}
	if intent, ok := state.Clipboard.Current(); ok && intent.Mode == statepkg.ClipboardCut {
		for _, p := range intent.Paths {
			cutPaths[p] = true
		}
	}

	for row := 0; row < layout.ListHeight; row++ {
		idx := state.ScrollOffset + row
		if idx < 0 || idx >= len(state.View) {
			break
		}
		entry := state.View[idx]
		selected := state.Selection.Contains(entry.FullPath)
		style := r.entryStyle(entry, idx == state.CursorIndex, selected, cutPaths[entry.FullPath])
		r.drawEntryRow(entry, selected, startX, layout.ListTop+row, layout, style)
	}
}

func (r *Renderer) emptyListMessage(state *statepkg.AppState, baseStyle tcell.Style) (string, tcell.Style) {
	switch {
	case state.ViewError != nil:
		return "cannot open: " + textutil.SanitizeName(state.ViewError.Error()), baseStyle.Foreground(r.theme.ErrorFg)
	case state.Loading():
		return "loading…", baseStyle.Dim(true)
	case state.Criteria.Filtering() && len(state.Entries) > 0:
		return "no matches", baseStyle.Dim(true)
	default:
		return "empty directory", baseStyle.Dim(true)
	}
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry, isCursor, isSelected, isCut bool) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.FileFg)
	switch {
	case entry.StatFailed:
		style = style.Foreground(r.theme.ErrorFg)
	case entry.IsSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		style = style.Foreground(r.theme.DirectoryFg).Bold(true)
	}
	if entry.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	if isCut {
		style = style.Foreground(r.theme.CutFg).Italic(true)
	}
	if isSelected {
		style = style.Background(r.theme.MarkBg).Foreground(r.theme.MarkFg)
	}
	if isCursor {
		style = style.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
	}
	return style
}

func (r *Renderer) drawEntryRow(entry statepkg.FileEntry, selected bool, x, y int, layout Layout, style tcell.Style) {
	maxX := layout.MainPanelStart + layout.MainPanelWidth
	mark := "  "
	if selected {
		mark = "● "
	}
	x = r.drawTextLine(x, y, maxX-x, mark, style)

	name := textutil.SanitizeName(entry.Name)
	if entry.IsDir {
		name += string(filepath.Separator)
	}
	if entry.IsSymlink {
		name += " @"
	}
	x = r.drawTextLine(x, y, layout.NameWidth, textutil.Fit(name, layout.NameWidth), style)

	if layout.SizeWidth > 0 {
		size := formatEntrySize(entry)
		cell := strings.Repeat(" ", columnGap) + padLeft(size, layout.SizeWidth)
		x = r.drawTextLine(x, y, maxX-x, cell, style)
	}
	if layout.DateWidth > 0 {
		cell := strings.Repeat(" ", columnGap) + textutil.Fit(formatModified(entry.Modified), layout.DateWidth)
		x = r.drawTextLine(x, y, maxX-x, cell, style)
	}
	r.fillLine(x, y, maxX, style)
}

func padLeft(text string, width int) string {
	if pad := width - textutil.DisplayWidth(text); pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return textutil.Truncate(text, width)
}

// drawStatusLine shows position, selection, clipboard and the last outcome
// on the left, directory totals and drive usage on the right.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Reverse(true)
	if state.LastError != nil || state.ViewError != nil {
		style = style.Foreground(r.theme.ErrorFg)
	}

	left := " " + strings.Join(statusSegments(state), " · ")
	right := statusRight(state)
	if right != "" {
		right += " "
	}

	leftWidth := w - textutil.DisplayWidth(right) - 1
	if leftWidth < 0 {
		leftWidth, right = w, ""
	}
	endX := r.drawTextLine(0, y, leftWidth, textutil.Truncate(textutil.SanitizeName(left), leftWidth), style)
	rightStart := w - textutil.DisplayWidth(right)
	r.fillLine(endX, y, rightStart, style)
	if right != "" {
		r.drawTextLine(rightStart, y, w-rightStart, right, style)
	}
}

// drawFooter shows the open prompt, or key hints when none is open.
func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	if state.Prompt == statepkg.PromptNone {
		help := textutil.Truncate(buildFooterHelpText(state), w)
		endX := r.drawTextLine(0, y, w, help, style.Dim(true))
		r.fillLine(endX, y, w, style)
		return
	}

	promptStyle := style.Foreground(r.theme.PromptFg).Bold(true)
	endX := r.drawTextLine(0, y, w, promptLabel(state), promptStyle)
	if state.Prompt != statepkg.PromptConfirmDelete {
		input := textutil.TruncateLeft(textutil.SanitizeName(state.PromptInput), w-endX-1)
		endX = r.drawTextLine(endX, y, w-endX, input, style)
		if endX < w {
			r.screen.SetContent(endX, y, '█', nil, promptStyle)
			endX++
		}
	}
	r.fillLine(endX, y, w, style)
}
