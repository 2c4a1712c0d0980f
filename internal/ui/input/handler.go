package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) emit(action statepkg.Action) bool {
	ih.actionChan <- action
	return true
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.HelpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			return ih.emit(statepkg.HelpHideAction{})
		case tcell.KeyRune:
			if r := ev.Rune(); r == '?' || r == 'q' || r == 'Q' {
				return ih.emit(statepkg.HelpHideAction{})
			}
		}
		return true
	}

	if ih.state != nil && ih.state.Prompt != statepkg.PromptNone {
		return ih.processPromptKey(ev)
	}

	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEscape:
		switch {
		case ih.state != nil && !ih.state.Selection.Empty():
			return ih.emit(statepkg.ClearSelectionAction{})
		case ih.state != nil && ih.state.Criteria.Filtering():
			return ih.emit(statepkg.ClearFiltersAction{})
		}
		return true

	case tcell.KeyCtrlZ:
		return ih.emit(statepkg.SuspendAction{})

	case tcell.KeyUp:
		if shift {
			return ih.emit(statepkg.ExtendSelectionAction{Delta: -1})
		}
		return ih.emit(statepkg.NavigateUpAction{})

	case tcell.KeyDown:
		if shift {
			return ih.emit(statepkg.ExtendSelectionAction{Delta: 1})
		}
		return ih.emit(statepkg.NavigateDownAction{})

	case tcell.KeyEnter, tcell.KeyRight:
		return ih.emit(statepkg.ActivateCursorAction{})

	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.GoUpAction{})

	case tcell.KeyPgUp:
		return ih.emit(statepkg.ScrollPageUpAction{})

	case tcell.KeyPgDn:
		return ih.emit(statepkg.ScrollPageDownAction{})

	case tcell.KeyHome:
		return ih.emit(statepkg.ScrollToStartAction{})

	case tcell.KeyEnd:
		return ih.emit(statepkg.ScrollToEndAction{})

	case tcell.KeyDelete:
		return ih.emit(statepkg.PromptStartAction{Kind: statepkg.PromptConfirmDelete})

	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}

	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case '?':
		return ih.emit(statepkg.HelpToggleAction{})
	case ' ':
		return ih.emit(statepkg.ToggleCursorSelectionAction{})
	case 'a':
		return ih.emit(statepkg.SelectAllAction{})
	case 'c', 'y':
		return ih.emit(statepkg.CopyAction{})
	case 'x':
		return ih.emit(statepkg.CutAction{})
	case 'p', 'v':
		return ih.emit(statepkg.PasteAction{})
	case 'd':
		return ih.emit(statepkg.PromptStartAction{Kind: statepkg.PromptConfirmDelete})
	case 'n':
		return ih.emit(statepkg.PromptStartAction{Kind: statepkg.PromptNewFolder})
	case '/':
		return ih.emit(statepkg.PromptStartAction{Kind: statepkg.PromptSearch})
	case 'e':
		return ih.emit(statepkg.PromptStartAction{Kind: statepkg.PromptExtension})
	case 's':
		return ih.emit(statepkg.CycleSortAction{})
	case 'S':
		return ih.emit(statepkg.ToggleSortOrderAction{})
	case '.':
		return ih.emit(statepkg.ToggleHiddenFilesAction{})
	case 'r', 'R':
		return ih.emit(statepkg.RefreshDirectoryAction{})
	case '[':
		return ih.emit(statepkg.GoToHistoryAction{Direction: "back"})
	case ']':
		return ih.emit(statepkg.GoToHistoryAction{Direction: "forward"})
	case '~':
		return ih.emit(statepkg.GoHomeAction{})
	case 'h':
		return ih.emit(statepkg.GoUpAction{})
	case 'j':
		return ih.emit(statepkg.NavigateDownAction{})
	case 'k':
		return ih.emit(statepkg.NavigateUpAction{})
	case 'l':
		return ih.emit(statepkg.ActivateCursorAction{})
	}

	if r >= '1' && r <= '9' {
		return ih.emit(statepkg.GoToPlaceAction{Index: int(r - '1')})
	}
	return true
}

// processPromptKey routes keys to the open line editor. The delete
// confirmation only accepts y or Enter; anything else cancels it.
func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) bool {
	if ih.state.Prompt == statepkg.PromptConfirmDelete {
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y')) {
			return ih.emit(statepkg.PromptSubmitAction{})
		}
		return ih.emit(statepkg.PromptCancelAction{})
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.emit(statepkg.PromptCancelAction{})
	case tcell.KeyEnter:
		return ih.emit(statepkg.PromptSubmitAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.PromptBackspaceAction{})
	case tcell.KeyRune:
		return ih.emit(statepkg.PromptCharAction{Char: ev.Rune()})
	}
	return true
}
