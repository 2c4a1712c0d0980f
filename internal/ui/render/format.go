package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
	"github.com/kk-code-lab/rfm/internal/transfer"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with one decimal in the largest unit that
// keeps the value above 1024.
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value > 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

func formatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatEntrySize(e statepkg.FileEntry) string {
	switch {
	case e.StatFailed:
		return "?"
	case e.IsDir:
		return ""
	default:
		return FormatSize(e.Size)
	}
}

func formatSort(c statepkg.ViewCriteria) string {
	arrow := "↑"
	if c.Order == statepkg.SortDesc {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %s", c.SortBy, arrow)
}

func formatFilters(c statepkg.ViewCriteria) string {
	var parts []string
	if c.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search %q", c.SearchQuery))
	}
	if c.ExtensionFilter != "" {
		parts = append(parts, "."+c.ExtensionFilter)
	}
	if c.Pattern != "" {
		parts = append(parts, c.Pattern)
	}
	return strings.Join(parts, " ")
}

func formatClipboard(c statepkg.Clipboard) string {
	intent, ok := c.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d", intent.Mode, len(intent.Paths))
}

// formatOutcome summarizes a finished transfer and names its first failure.
func formatOutcome(out *transfer.Outcome) string {
	if out == nil || out.Total() == 0 {
		return ""
	}
	text := fmt.Sprintf("%s: %s", out.Op, out.Summary())
	if len(out.Failed) > 0 {
		first := out.Failed[0]
		text += fmt.Sprintf(" (%s: %s)", filepath.Base(first.Path), first.Kind)
	}
	return text
}

func formatDrive(d fsutil.DriveUsage) string {
	if d.TotalBytes == 0 {
		return ""
	}
	return fmt.Sprintf("%s free of %s", FormatSize(int64(d.FreeBytes)), FormatSize(int64(d.TotalBytes)))
}

func formatStats(s fsutil.DirStats) string {
	if s.TotalDirs == 0 && s.TotalFiles == 0 {
		return ""
	}
	return fmt.Sprintf("%d dirs, %d files, %s", s.TotalDirs, s.TotalFiles, FormatSize(s.TotalSize))
}

// statusRight is the right-aligned part of the status line.
func statusRight(state *statepkg.AppState) string {
	var parts []string
	if state.ViewError == nil {
		if stats := formatStats(state.Stats); stats != "" {
			parts = append(parts, stats)
		}
	}
	if drive := formatDrive(state.Drive); drive != "" {
		parts = append(parts, drive)
	}
	return strings.Join(parts, " · ")
}

// statusSegments lists the parts of the status line, most important first.
func statusSegments(state *statepkg.AppState) []string {
	var parts []string

	switch {
	case state.Loading():
		parts = append(parts, "loading…")
	case len(state.View) > 0:
		parts = append(parts, fmt.Sprintf("%d/%d", state.CursorIndex+1, len(state.View)))
	default:
		parts = append(parts, "0/0")
	}

	if n := state.Selection.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if clip := formatClipboard(state.Clipboard); clip != "" {
		parts = append(parts, clip)
	}
	if state.TransfersInFlight > 0 {
		parts = append(parts, fmt.Sprintf("working (%d)", state.TransfersInFlight))
	}
	if state.LastError != nil {
		parts = append(parts, "error: "+state.LastError.Error())
	} else if out := formatOutcome(state.LastOutcome); out != "" {
		parts = append(parts, out)
	}

	parts = append(parts, formatSort(state.Criteria))
	if filters := formatFilters(state.Criteria); filters != "" {
		parts = append(parts, filters)
	}
	if state.Criteria.ShowHidden {
		parts = append(parts, "hidden shown")
	}
	return parts
}

func promptLabel(state *statepkg.AppState) string {
	switch state.Prompt {
	case statepkg.PromptNewFolder:
		return "New folder: "
	case statepkg.PromptSearch:
		return "Search: "
	case statepkg.PromptExtension:
		return "Extension: "
	case statepkg.PromptConfirmDelete:
		n := len(state.SelectedPaths())
		if n == 0 {
			n = 1
		}
		noun := "item"
		if n > 1 {
			noun = "items"
		}
		return fmt.Sprintf("Delete %d %s? (y/n)", n, noun)
	default:
		return ""
	}
}
