package app

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	statepkg "github.com/kk-code-lab/rfm/internal/state"
	renderui "github.com/kk-code-lab/rfm/internal/ui/render"
)

const breadcrumbSeparator = " › "

// Run drives the event loop until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps primary clicks to ClickActions carrying the held
// modifier, and wheel motion to cursor moves.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil || app.state.HelpVisible || app.state.Prompt != statepkg.PromptNone {
		return
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.send(statepkg.NavigateUpAction{})
		return
	case buttons&tcell.WheelDown != 0:
		app.send(statepkg.NavigateDownAction{})
		return
	}

	// Only the press transition counts; held buttons report on every move.
	if buttons&tcell.Button1 == 0 {
		app.mouseDown = false
		return
	}
	if app.mouseDown {
		return
	}
	app.mouseDown = true

	x, y := ev.Position()
	if y == 0 {
		app.handleBreadcrumbClick(x)
		return
	}

	layout, ok := app.renderer.LastLayout()
	if !ok {
		return
	}
	row := y - layout.ListTop
	if row < 0 || row >= layout.ListHeight {
		return
	}

	if x < layout.SidebarWidth {
		if row < len(app.state.Places) {
			app.send(statepkg.GoToPlaceAction{Index: row})
		}
		return
	}
	if x < layout.MainPanelStart {
		return
	}

	idx := app.state.ScrollOffset + row
	if idx < 0 || idx >= len(app.state.View) {
		return
	}
	app.send(statepkg.ClickAction{
		Path:     app.state.View[idx].FullPath,
		Modifier: clickModifier(ev.Modifiers()),
	})
}

func clickModifier(mod tcell.ModMask) statepkg.ClickModifier {
	switch {
	case mod&(tcell.ModCtrl|tcell.ModMeta) != 0:
		return statepkg.ClickCtrl
	case mod&tcell.ModShift != 0:
		return statepkg.ClickShift
	default:
		return statepkg.ClickPlain
	}
}

func (app *Application) handleBreadcrumbClick(x int) bool {
	if x < 0 || app.state == nil {
		return false
	}
	pos := runewidth.StringWidth("rfm ")
	if x < pos {
		return false
	}

	segments := renderui.FormatBreadcrumbSegments(app.state.CurrentPath)
	// A truncated breadcrumb cannot be mapped back to segments.
	if runewidth.StringWidth(strings.Join(segments, breadcrumbSeparator)) > app.state.ScreenWidth-pos {
		return false
	}

	sepW := runewidth.StringWidth(breadcrumbSeparator)
	currentX := pos
	for i, s := range segments {
		if i > 0 {
			if x >= currentX && x < currentX+sepW {
				app.send(statepkg.GoToPathAction{Path: buildBreadcrumbPath(segments, i-1)})
				return true
			}
			currentX += sepW
		}

		segW := runewidth.StringWidth(s)
		if x >= currentX && x < currentX+segW {
			app.send(statepkg.GoToPathAction{Path: buildBreadcrumbPath(segments, i)})
			return true
		}
		currentX += segW
	}
	return false
}

// buildBreadcrumbPath rebuilds the path of segments[:idx+1].
func buildBreadcrumbPath(segments []string, idx int) string {
	if idx < 0 || idx >= len(segments) {
		return ""
	}

	root := segments[0]
	if root == "/" {
		root = string(filepath.Separator)
	} else if filepath.VolumeName(root) == root {
		root += string(filepath.Separator)
	}
	parts := append([]string{root}, segments[1:idx+1]...)
	return filepath.Join(parts...)
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.DirectoryLoadResultAction, statepkg.TransferResultAction:
	default:
		// A new user action dismisses the previous error.
		app.state.LastError = nil
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.logger.Debug("action rejected", zap.String("action", fmt.Sprintf("%T", action)), zap.Error(err))
	}
	return true
}

func (app *Application) dispatchRefresh() {
	app.send(statepkg.RefreshDirectoryAction{})
}

// send queues an action without blocking the loop goroutine, which is the
// only reader of actionCh.
func (app *Application) send(action statepkg.Action) {
	enqueue(app.actionCh, action)
}

func enqueue(ch chan statepkg.Action, action statepkg.Action) {
	select {
	case ch <- action:
	default:
		go func() { ch <- action }()
	}
}
