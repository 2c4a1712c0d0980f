package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/kk-code-lab/rfm/internal/config"
	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/metrics"
	"github.com/kk-code-lab/rfm/internal/places"
	statepkg "github.com/kk-code-lab/rfm/internal/state"
	"github.com/kk-code-lab/rfm/internal/transfer"
	inputui "github.com/kk-code-lab/rfm/internal/ui/input"
	renderui "github.com/kk-code-lab/rfm/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *statepkg.AppState
	reducer     *statepkg.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan statepkg.Action
	logger      *zap.Logger
	shouldQuit  bool
	mouseDown   bool
	stop        context.CancelFunc
	unsubscribe func()
}

// NewApplication opens the terminal and starts browsing cfg.StartPath.
func NewApplication(cfg *config.Config, logger *zap.Logger, placeList []places.Place) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	app, err := newApplication(screen, cfg, logger, placeList)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, cfg *config.Config, logger *zap.Logger, placeList []places.Place) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	criteria, err := criteriaFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	state := statepkg.NewAppState(criteria)
	state.Places = placeList
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	engine := transfer.NewEngine(logger)
	state.Engine = engine
	state.DirectoryLoader = statepkg.NewAsyncDirectoryLoader()
	state.TransferExecutor = statepkg.NewAsyncTransferExecutor(engine)

	actionCh := make(chan statepkg.Action, 16)
	state.SetDispatch(func(action statepkg.Action) {
		enqueue(actionCh, action)
	})

	reducer := statepkg.NewStateReducer()
	unsubscribe := reducer.Subscribe(func(ev statepkg.NavigationEvent) {
		logger.Debug("directory applied",
			zap.Stringer("kind", ev.Kind),
			zap.String("path", ev.Path),
			zap.Int("entries", ev.Entries),
			zap.Int("history_index", ev.HistoryIndex))
	})

	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	ctx, stop := context.WithCancel(context.Background())
	app := &Application{
		screen:      screen,
		state:       state,
		reducer:     reducer,
		renderer:    renderui.NewRenderer(screen),
		input:       inputHandler,
		actionCh:    actionCh,
		logger:      logger,
		stop:        stop,
		unsubscribe: unsubscribe,
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Warn("metrics listener stopped", zap.String("addr", cfg.MetricsAddr), zap.Error(err))
			}
		}()
	}

	start := cfg.StartPath
	if start == "" {
		start = fsutil.DefaultLocation()
	}
	if _, err := reducer.Reduce(state, statepkg.GoToPathAction{Path: start}); err != nil {
		stop()
		return nil, err
	}
	logger.Info("session started",
		zap.String("start", state.CurrentPath),
		zap.Stringer("sort", criteria.SortBy),
		zap.Bool("show_hidden", criteria.ShowHidden))
	return app, nil
}

func criteriaFromConfig(cfg *config.Config) (statepkg.ViewCriteria, error) {
	sortBy, err := statepkg.ParseSortField(cfg.SortBy)
	if err != nil {
		return statepkg.ViewCriteria{}, err
	}
	order, err := statepkg.ParseSortOrder(cfg.SortOrder)
	if err != nil {
		return statepkg.ViewCriteria{}, err
	}
	return statepkg.ViewCriteria{
		SortBy:     sortBy,
		Order:      order,
		ShowHidden: cfg.ShowHidden,
	}, nil
}

// State returns the session state. It must only be read from the loop
// goroutine.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.unsubscribe != nil {
		app.unsubscribe()
	}
	if app.stop != nil {
		app.stop()
	}
	app.screen.Fini()
	return nil
}
