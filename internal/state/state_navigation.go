package state

import (
	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/metrics"
)

// homeDirFn resolves the target of GoHomeAction; overridable in tests.
var homeDirFn = fsutil.DefaultLocation

// navigate moves to path and requests its listing. With addHistory the
// forward history is discarded and path becomes the new tail. cursorPath,
// when found in the new view, receives the cursor.
func (r *StateReducer) navigate(state *AppState, path string, addHistory bool, cursorPath string) error {
	target, err := fsutil.Normalize(path)
	if err != nil {
		return err
	}

	if state.CurrentPath != "" {
		if e := state.CurrentEntry(); e != nil {
			r.cursorMemory[state.CurrentPath] = e.FullPath
		}
	}

	if addHistory {
		r.addToHistory(state, target)
	}

	if target != state.CurrentPath {
		state.Selection = Selection{}
		state.Entries = nil
		state.View = nil
		state.CursorIndex = 0
		state.ScrollOffset = 0
	}
	state.CurrentPath = target
	state.ViewError = nil

	if cursorPath == "" {
		cursorPath = r.cursorMemory[target]
	}
	r.loadDirectory(state, target, false, cursorPath)
	return nil
}

// refresh re-reads the current directory without touching history.
func (r *StateReducer) refresh(state *AppState, cursorPath string) {
	if state.CurrentPath == "" {
		return
	}
	if state.Loading() {
		// A navigation is still pending; re-read but keep its cursor target.
		if cursorPath == "" {
			cursorPath = state.pendingCursorPath
		}
		r.loadDirectory(state, state.CurrentPath, state.dirLoadRefresh, cursorPath)
		return
	}
	if cursorPath == "" {
		if e := state.CurrentEntry(); e != nil {
			cursorPath = e.FullPath
		}
	}
	r.loadDirectory(state, state.CurrentPath, true, cursorPath)
}

func (r *StateReducer) addToHistory(state *AppState, path string) {
	if len(state.History) > 0 {
		state.History = state.History[:state.HistoryIndex+1]
	}
	state.History = append(state.History, path)
	state.HistoryIndex = len(state.History) - 1
}

func (r *StateReducer) goHistory(state *AppState, direction string) error {
	switch direction {
	case "back":
		if !state.CanGoBack() {
			return nil
		}
		state.HistoryIndex--
	case "forward":
		if !state.CanGoForward() {
			return nil
		}
		state.HistoryIndex++
	default:
		return nil
	}
	return r.navigate(state, state.History[state.HistoryIndex], false, "")
}

func (r *StateReducer) goUp(state *AppState) error {
	if state.CurrentPath == "" || fsutil.IsRoot(state.CurrentPath) {
		return nil
	}
	from := state.CurrentPath
	return r.navigate(state, fsutil.ParentDirectory(from), true, from)
}

// loadDirectory starts a read of path. Only the most recent request is
// applied; earlier ones are cancelled or ignored when they complete.
func (r *StateReducer) loadDirectory(state *AppState, path string, refresh bool, cursorPath string) {
	loader := state.DirectoryLoader
	dispatch := state.getDispatch()

	if prev := state.dirLoadToken; prev != 0 && loader != nil {
		loader.Cancel(prev)
	}

	state.dirLoadSeq++
	token := state.dirLoadSeq
	state.dirLoadToken = token
	state.dirLoadPath = path
	state.dirLoadRefresh = refresh
	state.pendingCursorPath = cursorPath

	if loader == nil || dispatch == nil {
		result := readDirectory(path)
		result.Token = token
		r.applyDirectoryResult(state, result)
		return
	}

	loader.Start(DirectoryLoadRequest{
		Token: token,
		Path:  path,
		Callback: func(result DirectoryLoadResult) {
			dispatch(DirectoryLoadResultAction(result))
		},
	})
}

func (r *StateReducer) applyDirectoryResult(state *AppState, result DirectoryLoadResult) {
	if result.Token == 0 || result.Token != state.dirLoadToken {
		return
	}

	refresh := state.dirLoadRefresh
	cursorPath := state.pendingCursorPath
	state.dirLoadToken = 0
	state.dirLoadPath = ""
	state.dirLoadRefresh = false
	state.pendingCursorPath = ""

	if result.Err != nil {
		state.Entries = nil
		state.View = nil
		state.Selection = Selection{}
		state.ViewError = result.Err
		state.Stats = fsutil.DirStats{}
		state.Drive = fsutil.DriveUsage{}
		state.CursorIndex = 0
		state.ScrollOffset = 0
		return
	}

	state.ViewError = nil
	state.Entries = result.Entries
	state.Drive = result.Drive
	state.Stats = result.Stats
	state.View = ApplyView(state.Entries, state.Criteria)
	state.Selection = state.Selection.Retain(state.View)

	if !state.moveCursorTo(cursorPath) {
		if !refresh {
			state.CursorIndex = 0
		}
		state.clampCursor()
	}

	kind := EventRefreshed
	if refresh {
		state.updateScrollVisibility()
	} else {
		kind = EventNavigated
		state.centerScrollOnCursor()
		metrics.RecordNavigation()
	}

	r.publish(NavigationEvent{
		Kind:         kind,
		Path:         state.CurrentPath,
		HistoryIndex: state.HistoryIndex,
		Entries:      len(state.Entries),
	})
}
