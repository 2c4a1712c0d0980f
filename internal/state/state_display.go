package state

// ListTop is the first screen row of the file list.
const ListTop = 1

// ListHeight returns how many view rows fit on screen: one header row and
// two footer rows are reserved.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - 3
	if h < 1 {
		return 1
	}
	return h
}

func (s *AppState) clampCursor() {
	switch {
	case len(s.View) == 0:
		s.CursorIndex = 0
	case s.CursorIndex >= len(s.View):
		s.CursorIndex = len(s.View) - 1
	case s.CursorIndex < 0:
		s.CursorIndex = 0
	}
}

func (s *AppState) moveCursorTo(path string) bool {
	if idx := indexOfPath(s.View, path); idx >= 0 {
		s.CursorIndex = idx
		return true
	}
	return false
}

func (s *AppState) moveCursor(delta int) bool {
	if len(s.View) == 0 {
		return false
	}
	next := s.CursorIndex + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.View)-1 {
		next = len(s.View) - 1
	}
	if next == s.CursorIndex {
		return false
	}
	s.CursorIndex = next
	s.updateScrollVisibility()
	return true
}

func (s *AppState) updateScrollVisibility() {
	visibleLines := s.ListHeight()

	if s.CursorIndex < s.ScrollOffset {
		s.ScrollOffset = s.CursorIndex
	} else if s.CursorIndex >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = s.CursorIndex - visibleLines + 1
	}
	s.clampScroll()
}

func (s *AppState) centerScrollOnCursor() {
	s.ScrollOffset = s.CursorIndex - s.ListHeight()/2
	s.clampScroll()
}

func (s *AppState) clampScroll() {
	maxOffset := len(s.View) - s.ListHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
