package state

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/rfm/internal/transfer"
)

// ===== REDUCER =====

// StateReducer applies actions to state. It must be driven from a single
// goroutine; asynchronous work reports back through dispatched actions.
type StateReducer struct {
	cursorMemory     map[string]string // directory -> entry under the cursor
	subscribers      []subscriber
	nextSubscriberID int
}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{
		cursorMemory: make(map[string]string),
	}
}

// Reduce applies action to state and returns it.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case GoToPathAction:
		if strings.TrimSpace(a.Path) == "" {
			return state, nil
		}
		return state, r.navigate(state, a.Path, !a.SkipHistory, "")

	case GoUpAction:
		return state, r.goUp(state)

	case GoHomeAction:
		return state, r.navigate(state, homeDirFn(), true, "")

	case GoToHistoryAction:
		return state, r.goHistory(state, a.Direction)

	case RefreshDirectoryAction:
		r.refresh(state, "")
		return state, nil

	case GoToPlaceAction:
		if a.Index < 0 || a.Index >= len(state.Places) {
			return state, nil
		}
		return state, r.navigate(state, state.Places[a.Index].Resolve(), true, "")

	case DirectoryLoadResultAction:
		r.applyDirectoryResult(state, DirectoryLoadResult(a))
		return state, nil

	// ===== CURSOR =====

	case NavigateDownAction:
		state.moveCursor(1)
		return state, nil

	case NavigateUpAction:
		state.moveCursor(-1)
		return state, nil

	case ScrollPageDownAction:
		state.moveCursor(state.ListHeight())
		return state, nil

	case ScrollPageUpAction:
		state.moveCursor(-state.ListHeight())
		return state, nil

	case ScrollToStartAction:
		state.moveCursor(-len(state.View))
		return state, nil

	case ScrollToEndAction:
		state.moveCursor(len(state.View))
		return state, nil

	case ActivateCursorAction:
		if e := state.CurrentEntry(); e != nil {
			return state, r.click(state, e.FullPath, ClickPlain)
		}
		return state, nil

	// ===== SELECTION =====

	case ClickAction:
		return state, r.click(state, a.Path, a.Modifier)

	case ToggleCursorSelectionAction:
		if e := state.CurrentEntry(); e != nil {
			return state, r.click(state, e.FullPath, ClickCtrl)
		}
		return state, nil

	case ExtendSelectionAction:
		e := state.CurrentEntry()
		if e == nil {
			return state, nil
		}
		if state.Selection.Empty() {
			state.Selection = NewSelection(e.FullPath)
		}
		if !state.moveCursor(a.Delta) {
			return state, nil
		}
		return state, r.click(state, state.CurrentEntry().FullPath, ClickShift)

	case SelectAllAction:
		state.Selection = SelectAll(state.View)
		return state, nil

	case ClearSelectionAction:
		state.Selection = Selection{}
		return state, nil

	// ===== CLIPBOARD & TRANSFERS =====

	case CopyAction:
		state.Clipboard.Copy(r.operandPaths(state))
		return state, nil

	case CutAction:
		state.Clipboard.Cut(r.operandPaths(state))
		return state, nil

	case PasteAction:
		intent, ok := state.Clipboard.Current()
		if !ok || state.CurrentPath == "" {
			return state, nil
		}
		kind := TransferCopy
		if intent.Mode == ClipboardCut {
			kind = TransferMove
		}
		r.startTransfer(state, TransferRequest{
			Kind:                kind,
			Paths:               intent.Paths,
			Target:              state.CurrentPath,
			ClipboardGeneration: intent.Generation,
		})
		return state, nil

	case DeleteSelectionAction:
		r.deleteOperands(state)
		return state, nil

	case CreateDirectoryAction:
		return state, r.createDirectory(state, a.Name)

	case TransferResultAction:
		r.applyTransferResult(state, TransferResult(a))
		return state, nil

	// ===== VIEW =====

	case SetSortAction:
		state.Criteria.SortBy = a.Field
		state.Criteria.Order = a.Order
		state.recomputeView()
		return state, nil

	case CycleSortAction:
		state.Criteria.SortBy = state.Criteria.SortBy.Next()
		state.recomputeView()
		return state, nil

	case ToggleSortOrderAction:
		if state.Criteria.Order == SortAsc {
			state.Criteria.Order = SortDesc
		} else {
			state.Criteria.Order = SortAsc
		}
		state.recomputeView()
		return state, nil

	case ToggleHiddenFilesAction:
		state.Criteria.ShowHidden = !state.Criteria.ShowHidden
		state.recomputeView()
		return state, nil

	case SetSearchQueryAction:
		state.Criteria.SearchQuery = a.Query
		state.recomputeView()
		return state, nil

	case SetExtensionFilterAction:
		state.Criteria.ExtensionFilter = normalizeExtension(a.Extension)
		state.recomputeView()
		return state, nil

	case SetPatternAction:
		state.Criteria.Pattern = strings.TrimSpace(a.Pattern)
		state.recomputeView()
		return state, nil

	case ClearFiltersAction:
		state.Criteria.SearchQuery = ""
		state.Criteria.ExtensionFilter = ""
		state.Criteria.Pattern = ""
		state.recomputeView()
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state, nil

	// ===== PROMPT =====

	case PromptStartAction:
		if a.Kind == PromptConfirmDelete && len(r.operandPaths(state)) == 0 {
			return state, nil
		}
		state.Prompt = a.Kind
		switch a.Kind {
		case PromptSearch:
			state.PromptInput = state.Criteria.SearchQuery
		case PromptExtension:
			state.PromptInput = state.Criteria.ExtensionFilter
		default:
			state.PromptInput = ""
		}
		return state, nil

	case PromptCharAction:
		if state.Prompt == PromptNone {
			return state, nil
		}
		state.PromptInput += string(a.Char)
		r.previewPrompt(state)
		return state, nil

	case PromptBackspaceAction:
		if state.Prompt == PromptNone || state.PromptInput == "" {
			return state, nil
		}
		_, size := utf8.DecodeLastRuneInString(state.PromptInput)
		state.PromptInput = state.PromptInput[:len(state.PromptInput)-size]
		r.previewPrompt(state)
		return state, nil

	case PromptSubmitAction:
		kind, input := state.Prompt, state.PromptInput
		state.Prompt, state.PromptInput = PromptNone, ""
		switch kind {
		case PromptNewFolder:
			return state, r.createDirectory(state, input)
		case PromptSearch:
			state.Criteria.SearchQuery = input
			state.recomputeView()
		case PromptExtension:
			state.Criteria.ExtensionFilter = normalizeExtension(input)
			state.recomputeView()
		case PromptConfirmDelete:
			r.deleteOperands(state)
		}
		return state, nil

	case PromptCancelAction:
		if state.Prompt == PromptSearch {
			state.Criteria.SearchQuery = ""
			state.recomputeView()
		}
		state.Prompt, state.PromptInput = PromptNone, ""
		return state, nil

	// ===== HELP =====

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil
	}

	return state, nil
}

// click applies a click to the selection, navigating for plain clicks on
// directories.
func (r *StateReducer) click(state *AppState, path string, mod ClickModifier) error {
	next, navigate := state.Selection.Click(state.View, path, mod)
	if navigate {
		return r.navigate(state, path, true, "")
	}
	state.Selection = next
	if state.moveCursorTo(path) {
		state.updateScrollVisibility()
	}
	return nil
}

// operandPaths is the selection, or the entry under the cursor when
// nothing is selected.
func (r *StateReducer) operandPaths(state *AppState) []string {
	if paths := state.SelectedPaths(); len(paths) > 0 {
		return paths
	}
	if e := state.CurrentEntry(); e != nil {
		return []string{e.FullPath}
	}
	return nil
}

func (r *StateReducer) deleteOperands(state *AppState) {
	paths := r.operandPaths(state)
	if len(paths) == 0 {
		return
	}
	r.startTransfer(state, TransferRequest{Kind: TransferDelete, Paths: paths})
}

func (r *StateReducer) createDirectory(state *AppState, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid folder name %q", name)
	}
	if state.CurrentPath == "" {
		return nil
	}
	r.startTransfer(state, TransferRequest{
		Kind:  TransferCreateDirectory,
		Paths: []string{filepath.Join(state.CurrentPath, name)},
	})
	return nil
}

func (r *StateReducer) startTransfer(state *AppState, req TransferRequest) {
	state.transferSeq++
	req.Token = state.transferSeq
	state.TransfersInFlight++

	executor := state.TransferExecutor
	dispatch := state.getDispatch()
	if executor == nil || dispatch == nil {
		engine := state.Engine
		if engine == nil {
			engine = transfer.NewEngine(nil)
		}
		r.applyTransferResult(state, RunTransfer(engine, req))
		return
	}

	req.Callback = func(result TransferResult) {
		dispatch(TransferResultAction(result))
	}
	executor.Start(req)
}

func (r *StateReducer) applyTransferResult(state *AppState, result TransferResult) {
	if state.TransfersInFlight > 0 {
		state.TransfersInFlight--
	}
	if result.Err != nil {
		state.LastError = result.Err
		return
	}

	outcome := result.Outcome
	state.LastOutcome = &outcome

	pasted := result.Kind == TransferCopy || result.Kind == TransferMove
	if pasted && result.ClipboardGeneration != 0 && outcome.OK() {
		state.Clipboard.ConsumeIf(result.ClipboardGeneration)
	}

	cursorPath := ""
	if result.Kind == TransferCreateDirectory && outcome.OK() {
		cursorPath = outcome.Succeeded[0]
	}
	r.refresh(state, cursorPath)
}

// previewPrompt applies the search prompt while it is being typed.
func (r *StateReducer) previewPrompt(state *AppState) {
	if state.Prompt == PromptSearch {
		state.Criteria.SearchQuery = state.PromptInput
		state.recomputeView()
	}
}
