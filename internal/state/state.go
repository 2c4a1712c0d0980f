package state

import (
	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/places"
	"github.com/kk-code-lab/rfm/internal/transfer"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// PromptKind identifies which line editor, if any, is open.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptNewFolder
	PromptSearch
	PromptExtension
	PromptConfirmDelete
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for one browser session.
type AppState struct {
	// Navigation. History[HistoryIndex] == CurrentPath once a navigation
	// has been requested.
	CurrentPath  string
	History      []string
	HistoryIndex int

	// Listing of CurrentPath and the view derived from it.
	Entries   []FileEntry
	View      []FileEntry
	Criteria  ViewCriteria
	ViewError error
	Drive     fsutil.DriveUsage
	Stats     fsutil.DirStats

	// Cursor & viewport over View
	CursorIndex  int
	ScrollOffset int

	Selection Selection
	Clipboard Clipboard

	// Transfers
	LastOutcome       *transfer.Outcome
	TransfersInFlight int

	// Line editor
	Prompt      PromptKind
	PromptInput string

	// Places are the quick-access shortcuts, addressed by index.
	Places      []places.Place
	HelpVisible bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// LastError holds the latest failure that is not a listing failure.
	LastError error

	DirectoryLoader  DirectoryLoader
	TransferExecutor TransferExecutor
	// Engine runs transfers inline when no executor or dispatch is set.
	Engine TransferEngine

	dispatchAction func(Action)

	dirLoadSeq        int
	dirLoadToken      int
	dirLoadPath       string
	dirLoadRefresh    bool
	pendingCursorPath string
	transferSeq       int
}

// NewAppState returns an empty session using criteria for its view.
func NewAppState(criteria ViewCriteria) *AppState {
	return &AppState{Criteria: criteria}
}

// SetDispatch exposes the reducer dispatch hook to other packages.
func (s *AppState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

func (s *AppState) getDispatch() func(Action) {
	return s.dispatchAction
}

// Loading reports whether a directory read is in flight.
func (s *AppState) Loading() bool {
	return s.dirLoadToken != 0
}

// ActiveDirectoryLoadToken returns the token of the in-flight read, or 0.
func (s *AppState) ActiveDirectoryLoadToken() int {
	return s.dirLoadToken
}

// CanGoBack reports whether back() would move.
func (s *AppState) CanGoBack() bool {
	return s.HistoryIndex > 0
}

// CanGoForward reports whether forward() would move.
func (s *AppState) CanGoForward() bool {
	return s.HistoryIndex < len(s.History)-1
}

// CurrentEntry returns the entry under the cursor.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.CursorIndex < 0 || s.CursorIndex >= len(s.View) {
		return nil
	}
	return &s.View[s.CursorIndex]
}

// SelectedPaths returns the selection in view order.
func (s *AppState) SelectedPaths() []string {
	return s.Selection.InViewOrder(s.View)
}

// recomputeView re-derives View from Entries and Criteria, keeping the
// cursor on the same entry when it is still visible and dropping selected
// paths that are no longer part of the view.
func (s *AppState) recomputeView() {
	cursorPath := ""
	if e := s.CurrentEntry(); e != nil {
		cursorPath = e.FullPath
	}
	s.View = ApplyView(s.Entries, s.Criteria)
	s.Selection = s.Selection.Retain(s.View)
	if !s.moveCursorTo(cursorPath) {
		s.clampCursor()
	}
	s.updateScrollVisibility()
}
