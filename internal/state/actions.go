package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

// GoToPathAction navigates to Path. It is safe to dispatch from any
// goroutine, e.g. for a sidebar shortcut.
type GoToPathAction struct {
	Path        string
	SkipHistory bool
}
type GoUpAction struct{}
type GoHomeAction struct{}
type GoToHistoryAction struct {
	Direction string // "back" or "forward"
}
type RefreshDirectoryAction struct{}

// GoToPlaceAction navigates to AppState.Places[Index].
type GoToPlaceAction struct {
	Index int
}

// DirectoryLoadResultAction delivers a finished directory read.
type DirectoryLoadResultAction DirectoryLoadResult

// ===== CURSOR ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ActivateCursorAction is a plain click on the entry under the cursor.
type ActivateCursorAction struct{}

// ===== SELECTION ACTIONS =====

// ClickAction is a click on a view entry identified by path.
type ClickAction struct {
	Path     string
	Modifier ClickModifier
}

// ToggleCursorSelectionAction ctrl-clicks the entry under the cursor.
type ToggleCursorSelectionAction struct{}

// ExtendSelectionAction moves the cursor by Delta and shift-clicks there.
type ExtendSelectionAction struct {
	Delta int
}
type SelectAllAction struct{}
type ClearSelectionAction struct{}

// ===== CLIPBOARD & TRANSFER ACTIONS =====

type CopyAction struct{}
type CutAction struct{}
type PasteAction struct{}
type DeleteSelectionAction struct{}
type CreateDirectoryAction struct {
	Name string
}

// TransferResultAction delivers a finished transfer.
type TransferResultAction TransferResult

// ===== VIEW ACTIONS =====

type SetSortAction struct {
	Field SortField
	Order SortOrder
}
type CycleSortAction struct{}
type ToggleSortOrderAction struct{}
type ToggleHiddenFilesAction struct{}
type SetSearchQueryAction struct {
	Query string
}
type SetExtensionFilterAction struct {
	Extension string
}
type SetPatternAction struct {
	Pattern string
}
type ClearFiltersAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== PROMPT ACTIONS =====

type PromptStartAction struct {
	Kind PromptKind
}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptSubmitAction struct{}
type PromptCancelAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}
