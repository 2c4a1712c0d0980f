package state

// ClickModifier is the modifier state that accompanied a click.
type ClickModifier int

const (
	ClickPlain ClickModifier = iota
	ClickCtrl
	ClickShift
)

func (m ClickModifier) String() string {
	switch m {
	case ClickCtrl:
		return "ctrl"
	case ClickShift:
		return "shift"
	default:
		return "plain"
	}
}

// Selection is an immutable set of selected paths. Every method that
// changes it returns a new value.
type Selection struct {
	paths map[string]struct{}
	// recent lists selected paths by when they were last clicked into the
	// selection; the tail is the shift-click anchor.
	recent []string
}

// NewSelection returns a selection holding paths, the last one most recent.
func NewSelection(paths ...string) Selection {
	var s Selection
	for _, p := range paths {
		s = s.with(p)
	}
	return s
}

// Len returns the number of selected paths.
func (s Selection) Len() int { return len(s.paths) }

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return len(s.paths) == 0 }

// Contains reports whether path is selected.
func (s Selection) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Anchor returns the most recently selected path.
func (s Selection) Anchor() (string, bool) {
	if len(s.recent) == 0 {
		return "", false
	}
	return s.recent[len(s.recent)-1], true
}

// InViewOrder returns the selected paths ordered as they appear in view.
func (s Selection) InViewOrder(view []FileEntry) []string {
	out := make([]string, 0, len(s.paths))
	for _, e := range view {
		if s.Contains(e.FullPath) {
			out = append(out, e.FullPath)
		}
	}
	return out
}

// Click applies a click on target against view. It returns the new
// selection and whether the click should navigate into target instead.
// Clicks on paths that are not in view change nothing.
func (s Selection) Click(view []FileEntry, target string, mod ClickModifier) (Selection, bool) {
	idx := indexOfPath(view, target)
	if idx < 0 {
		return s, false
	}

	switch mod {
	case ClickCtrl:
		if s.Contains(target) {
			return s.without(target), false
		}
		return s.with(target), false

	case ClickShift:
		anchor, ok := s.Anchor()
		anchorIdx := indexOfPath(view, anchor)
		if !ok || anchorIdx < 0 {
			return NewSelection(target), false
		}
		lo, hi := anchorIdx, idx
		if lo > hi {
			lo, hi = hi, lo
		}
		next := s.clone()
		for i := lo; i <= hi; i++ {
			if i == idx {
				continue
			}
			if p := view[i].FullPath; !next.Contains(p) {
				next.paths[p] = struct{}{}
				next.recent = append(next.recent, p)
			}
		}
		return next.with(target), false

	default:
		if view[idx].IsDir {
			return s, true
		}
		return NewSelection(target), false
	}
}

// SelectAll selects every entry of view.
func SelectAll(view []FileEntry) Selection {
	var s Selection
	s.paths = make(map[string]struct{}, len(view))
	s.recent = make([]string, 0, len(view))
	for _, e := range view {
		s.paths[e.FullPath] = struct{}{}
		s.recent = append(s.recent, e.FullPath)
	}
	return s
}

// Retain drops every path that is not part of view.
func (s Selection) Retain(view []FileEntry) Selection {
	if s.Empty() {
		return s
	}
	present := make(map[string]struct{}, len(view))
	for _, e := range view {
		present[e.FullPath] = struct{}{}
	}
	var next Selection
	for _, p := range s.recent {
		if _, ok := present[p]; ok {
			next = next.with(p)
		}
	}
	return next
}

func (s Selection) clone() Selection {
	next := Selection{
		paths:  make(map[string]struct{}, len(s.paths)+1),
		recent: make([]string, len(s.recent), len(s.recent)+1),
	}
	for p := range s.paths {
		next.paths[p] = struct{}{}
	}
	copy(next.recent, s.recent)
	return next
}

// with adds path, making it the most recent.
func (s Selection) with(path string) Selection {
	next := s.clone()
	if next.Contains(path) {
		next.recent = removeString(next.recent, path)
	}
	next.paths[path] = struct{}{}
	next.recent = append(next.recent, path)
	return next
}

func (s Selection) without(path string) Selection {
	next := s.clone()
	delete(next.paths, path)
	next.recent = removeString(next.recent, path)
	return next
}

func removeString(list []string, v string) []string {
	for i, s := range list {
		if s == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func indexOfPath(view []FileEntry, path string) int {
	if path == "" {
		return -1
	}
	for i, e := range view {
		if e.FullPath == path {
			return i
		}
	}
	return -1
}
