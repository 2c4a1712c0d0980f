package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/rfm/internal/places"
)

func TestGoToPlaceResolvesAlternates(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Documentos")

	state := newTestState()
	state.Places = []places.Place{
		{Label: "Documents", Path: filepath.Join(root, "Documents"), Alternates: []string{filepath.Join(root, "Documentos")}},
	}
	r := NewStateReducer()

	mustReduce(t, r, state, GoToPlaceAction{Index: 0})
	if state.CurrentPath != filepath.Join(root, "Documentos") || state.ViewError != nil {
		t.Fatalf("expected alternate folder, got %s (%v)", state.CurrentPath, state.ViewError)
	}
	checkHistoryInvariant(t, state)

	mustReduce(t, r, state, GoToPlaceAction{Index: 5})
	if len(state.History) != 1 {
		t.Fatalf("out-of-range place should be ignored, history=%v", state.History)
	}
}

func TestConfirmDeletePrompt(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "victim", "bystander")

	state := newTestState()
	r := NewStateReducer()
	mustReduce(t, r, state, GoToPathAction{Path: root})
	mustReduce(t, r, state, ScrollToEndAction{})

	mustReduce(t, r, state, PromptStartAction{Kind: PromptConfirmDelete})
	mustReduce(t, r, state, PromptCancelAction{})
	if len(state.View) != 2 {
		t.Fatalf("cancelled prompt must not delete")
	}

	mustReduce(t, r, state, PromptStartAction{Kind: PromptConfirmDelete})
	if state.Prompt != PromptConfirmDelete {
		t.Fatalf("expected confirm prompt")
	}
	mustReduce(t, r, state, PromptSubmitAction{})
	if _, err := os.Stat(filepath.Join(root, "victim")); !os.IsNotExist(err) {
		t.Fatalf("victim should be deleted, err=%v", err)
	}
	if got := names(state.View); len(got) != 1 || got[0] != "bystander" {
		t.Fatalf("unexpected view %v", got)
	}
}

func TestConfirmDeleteNeedsOperands(t *testing.T) {
	state := newTestState()
	r := NewStateReducer()
	mustReduce(t, r, state, GoToPathAction{Path: t.TempDir()})
	mustReduce(t, r, state, PromptStartAction{Kind: PromptConfirmDelete})
	if state.Prompt != PromptNone {
		t.Fatalf("empty directory should not open a delete prompt")
	}
}

func TestHelpToggle(t *testing.T) {
	state := newTestState()
	r := NewStateReducer()
	mustReduce(t, r, state, HelpToggleAction{})
	if !state.HelpVisible {
		t.Fatalf("help should be visible")
	}
	mustReduce(t, r, state, HelpHideAction{})
	if state.HelpVisible {
		t.Fatalf("help should be hidden")
	}
}
