package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/rfm/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)
	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	switch {
	case state.ViewError != nil:
		return []string{
			"[: back",
			"←: up",
			"~: home",
			"r: retry",
		}
	case !state.Selection.Empty():
		return []string{
			"c/x: copy/cut",
			"d: delete",
			"space: toggle",
			"Esc: clear",
		}
	default:
		segments := []string{
			"↵: open",
			"←: up",
			"[]: history",
			"space: select",
			"c/x/p: copy/cut/paste",
			"n: new folder",
			"/: search",
		}
		if state.Criteria.Filtering() {
			segments = append(segments, "Esc: clear filter")
		}
		return segments
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	hiddenStatus := "show"
	if state.Criteria.ShowHidden {
		hiddenStatus = "hide"
	}

	segments := []string{fmt.Sprintf(".: %s hidden", hiddenStatus)}
	if len(state.Places) > 0 {
		segments = append(segments, "1-9: places")
	}
	return append(segments, "?: help")
}
