package app

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kk-code-lab/rfm/internal/config"
	"github.com/kk-code-lab/rfm/internal/places"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(w, h)
	return scr
}

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func newTestApplication(t *testing.T, start string, logger *zap.Logger, placeList []places.Place) *Application {
	t.Helper()
	cfg := config.Default()
	cfg.StartPath = start
	app, err := newApplication(newTestScreen(t, 120, 20), cfg, logger, placeList)
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	waitIdle(t, app)
	return app
}

// waitIdle applies dispatched results until no load or transfer is pending.
func waitIdle(t *testing.T, app *Application) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for app.state.Loading() || app.state.TransfersInFlight > 0 {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-deadline:
			t.Fatalf("timed out waiting for background work")
		}
	}
}

func nextAction(t *testing.T, app *Application) statepkg.Action {
	t.Helper()
	select {
	case action := <-app.actionCh:
		return action
	default:
		t.Fatalf("expected an action")
		return nil
	}
}

func expectNoAction(t *testing.T, app *Application) {
	t.Helper()
	select {
	case action := <-app.actionCh:
		t.Fatalf("expected no action, got %T", action)
	default:
	}
}

func viewNames(state *statepkg.AppState) []string {
	out := make([]string, len(state.View))
	for i, e := range state.View {
		out[i] = e.Name
	}
	return out
}

func TestNewApplicationLoadsStartDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.txt", "a.txt", "sub/inner.txt")

	core, logs := observer.New(zap.DebugLevel)
	app := newTestApplication(t, root, zap.New(core), nil)

	if got := viewNames(app.State()); !reflect.DeepEqual(got, []string{"sub", "a.txt", "b.txt"}) {
		t.Fatalf("unexpected view %v", got)
	}
	if logs.FilterMessage("directory applied").Len() != 1 {
		t.Fatalf("expected navigation to be logged, got %v", logs.All())
	}
	if app.State().Drive.TotalBytes == 0 {
		t.Fatalf("expected drive usage for the start directory")
	}
}

func TestCriteriaFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SortBy, cfg.SortOrder, cfg.ShowHidden = "size", "desc", true
	got, err := criteriaFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := statepkg.ViewCriteria{SortBy: statepkg.SortBySize, Order: statepkg.SortDesc, ShowHidden: true}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	cfg.SortBy = "colour"
	if _, err := criteriaFromConfig(cfg); err == nil {
		t.Fatalf("expected error for unknown sort field")
	}
}

func TestHandleMouseCarriesModifiers(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "b.txt", "c.txt")
	app := newTestApplication(t, root, nil, nil)
	app.renderer.Render(app.state)
	layout, _ := app.renderer.LastLayout()

	click := func(row int, mod tcell.ModMask) {
		app.handleMouse(tcell.NewEventMouse(layout.MainPanelStart+3, layout.ListTop+row, tcell.Button1, mod))
		app.handleMouse(tcell.NewEventMouse(layout.MainPanelStart+3, layout.ListTop+row, tcell.ButtonNone, tcell.ModNone))
	}

	click(0, tcell.ModNone)
	click(2, tcell.ModShift)
	click(1, tcell.ModCtrl)

	want := []statepkg.Action{
		statepkg.ClickAction{Path: filepath.Join(root, "a.txt"), Modifier: statepkg.ClickPlain},
		statepkg.ClickAction{Path: filepath.Join(root, "c.txt"), Modifier: statepkg.ClickShift},
		statepkg.ClickAction{Path: filepath.Join(root, "b.txt"), Modifier: statepkg.ClickCtrl},
	}
	for i, w := range want {
		got := nextAction(t, app)
		if !reflect.DeepEqual(got, w) {
			t.Fatalf("click %d: got %+v want %+v", i, got, w)
		}
		app.handleAction(got)
	}

	if got := app.state.SelectedPaths(); !reflect.DeepEqual(got, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "c.txt")}) {
		t.Fatalf("unexpected selection %v", got)
	}
}

func TestHandleMouseIgnoresHeldButton(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "b.txt")
	app := newTestApplication(t, root, nil, nil)
	app.renderer.Render(app.state)
	layout, _ := app.renderer.LastLayout()

	app.handleMouse(tcell.NewEventMouse(layout.MainPanelStart, layout.ListTop, tcell.Button1, tcell.ModNone))
	nextAction(t, app)
	app.handleMouse(tcell.NewEventMouse(layout.MainPanelStart, layout.ListTop+1, tcell.Button1, tcell.ModNone))
	expectNoAction(t, app)
}

func TestHandleMouseBelowListIsIgnored(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.txt")
	app := newTestApplication(t, root, nil, nil)
	app.renderer.Render(app.state)
	layout, _ := app.renderer.LastLayout()

	app.handleMouse(tcell.NewEventMouse(layout.MainPanelStart, layout.ListTop+1, tcell.Button1, tcell.ModNone))
	expectNoAction(t, app)
}

func TestHandleMouseSidebarJumpsToPlace(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	app := newTestApplication(t, root, nil, []places.Place{{Label: "Root", Path: root}, {Label: "Other", Path: other}})
	app.renderer.Render(app.state)
	layout, _ := app.renderer.LastLayout()
	if layout.SidebarWidth == 0 {
		t.Fatalf("expected sidebar at this width")
	}

	app.handleMouse(tcell.NewEventMouse(1, layout.ListTop+1, tcell.Button1, tcell.ModNone))
	if got := nextAction(t, app); got != (statepkg.GoToPlaceAction{Index: 1}) {
		t.Fatalf("unexpected action %+v", got)
	}
}

func TestHandleMouseWheelMovesCursor(t *testing.T) {
	app := newTestApplication(t, t.TempDir(), nil, nil)
	app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	if _, ok := nextAction(t, app).(statepkg.NavigateDownAction); !ok {
		t.Fatalf("expected cursor move")
	}
}

func TestHandleMouseDoesNotBlockOnFullQueue(t *testing.T) {
	app := &Application{
		state:    &statepkg.AppState{ScreenWidth: 80, ScreenHeight: 24},
		actionCh: make(chan statepkg.Action, 1),
	}
	app.actionCh <- statepkg.RefreshDirectoryAction{}

	done := make(chan struct{})
	go func() {
		app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
		app.dispatchRefresh()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("loop goroutine blocked on a full action queue")
	}

	got := map[string]int{}
	deadline := time.After(2 * time.Second)
	for received := 0; received < 3; received++ {
		select {
		case action := <-app.actionCh:
			got[fmt.Sprintf("%T", action)]++
		case <-deadline:
			t.Fatalf("queued actions were not delivered, got %v", got)
		}
	}
	if got["state.NavigateUpAction"] != 1 || got["state.RefreshDirectoryAction"] != 2 {
		t.Fatalf("unexpected delivered actions %v", got)
	}
}

func TestBreadcrumbClickNavigatesToAncestor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix paths")
	}
	app := &Application{
		state:    &statepkg.AppState{CurrentPath: "/home/me/docs", ScreenWidth: 80},
		actionCh: make(chan statepkg.Action, 1),
	}

	// "rfm / › home › me › docs": "home" starts at column 8.
	if !app.handleBreadcrumbClick(9) {
		t.Fatalf("expected click on a segment")
	}
	if got := nextAction(t, app); got != (statepkg.GoToPathAction{Path: "/home"}) {
		t.Fatalf("unexpected action %+v", got)
	}
	if app.handleBreadcrumbClick(1) {
		t.Fatalf("title is not a segment")
	}
}

func TestBuildBreadcrumbPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix paths")
	}
	tests := []struct {
		segments []string
		idx      int
		want     string
	}{
		{[]string{"/"}, 0, "/"},
		{[]string{"/", "home", "me"}, 1, "/home"},
		{[]string{"/", "home", "me"}, 2, "/home/me"},
		{[]string{"/", "home"}, 5, ""},
	}
	for _, tt := range tests {
		if got := buildBreadcrumbPath(tt.segments, tt.idx); got != tt.want {
			t.Fatalf("buildBreadcrumbPath(%v, %d)=%q want %q", tt.segments, tt.idx, got, tt.want)
		}
	}
}

func TestPasteRunsInBackground(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFiles(t, src, "a.txt")
	app := newTestApplication(t, src, nil, nil)

	app.handleAction(statepkg.CopyAction{})
	app.handleAction(statepkg.GoToPathAction{Path: dst})
	waitIdle(t, app)
	app.handleAction(statepkg.PasteAction{})
	if app.state.TransfersInFlight != 1 {
		t.Fatalf("paste should be in flight")
	}
	waitIdle(t, app)

	if got := viewNames(app.state); !reflect.DeepEqual(got, []string{"a.txt"}) {
		t.Fatalf("expected pasted file, got %v", got)
	}
	if app.state.LastOutcome == nil || !app.state.LastOutcome.OK() {
		t.Fatalf("unexpected outcome %+v", app.state.LastOutcome)
	}
}

func TestUserActionClearsLastError(t *testing.T) {
	app := newTestApplication(t, t.TempDir(), nil, nil)

	app.handleAction(statepkg.CreateDirectoryAction{Name: "a/b"})
	if app.state.LastError == nil {
		t.Fatalf("invalid name should set LastError")
	}
	app.handleAction(statepkg.NavigateDownAction{})
	if app.state.LastError != nil {
		t.Fatalf("next user action should clear the error")
	}
}

func TestQuitStopsLoop(t *testing.T) {
	app := newTestApplication(t, t.TempDir(), nil, nil)
	if app.handleAction(statepkg.QuitAction{}) || !app.shouldQuit {
		t.Fatalf("quit should stop the loop")
	}
}
