package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/fir/internal/command"
	"github.com/kk-code-lab/fir/internal/config"
	fsutil "github.com/kk-code-lab/fir/internal/fs"
	"github.com/kk-code-lab/fir/internal/logging"
	statepkg "github.com/kk-code-lab/fir/internal/state"
	"github.com/kk-code-lab/fir/internal/ui/editor"
	inputui "github.com/kk-code-lab/fir/internal/ui/input"
	"github.com/kk-code-lab/fir/internal/ui/popup"
	renderui "github.com/kk-code-lab/fir/internal/ui/render"
	"github.com/kk-code-lab/fir/internal/watch"
)

// Options configures NewApplication. Empty directories default to the
// working directory.
type Options struct {
	LeftDir  string
	RightDir string
	Config   *config.Config

	// Screen and Runner replace the terminal and the OS command runner.
	Screen tcell.Screen
	Runner command.Runner
}

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	store     *statepkg.StateStore
	term      *statepkg.Terminator
	initial   *statepkg.State
	snapshots *statepkg.Subscription
	watchers  [2]*watch.PanelWatcher

	// latest snapshot; owned by the UI goroutine
	state *statepkg.State

	renderer *renderui.Renderer
	input    *inputui.InputHandler
	dialog   *popup.Model
	editor   *editor.Page

	log       *logrus.Entry
	closeOnce sync.Once
}

func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	lister, err := fsutil.NewLister(cfg.Listing.Hide...)
	if err != nil {
		return nil, err
	}
	left, err := resolveStartDir(opts.LeftDir)
	if err != nil {
		return nil, err
	}
	right, err := resolveStartDir(opts.RightDir)
	if err != nil {
		return nil, err
	}
	initial, err := statepkg.NewState(left, right, lister)
	if err != nil {
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = command.NewOSRunner()
	}
	reducer := statepkg.NewStateReducer(lister, runner,
		statepkg.WithCommands(statepkg.DefaultCommands().WithOverrides(commandOverrides(cfg))),
		statepkg.WithCommandTimeout(cfg.Commands.Timeout),
	)
	store := statepkg.NewStateStore(reducer)

	watchers, err := startWatchers(store, initial, cfg.Watch.Debounce)
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			closeWatchers(watchers)
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		closeWatchers(watchers)
		return nil, err
	}
	drainPendingInput()

	app := &Application{
		screen:    screen,
		store:     store,
		term:      statepkg.NewTerminator(),
		initial:   initial,
		snapshots: store.Subscribe(),
		watchers:  watchers,
		renderer:  renderui.NewRenderer(screen),
		input:     inputui.NewInputHandler(store.Dispatch, cfg.Navigation.PageStep),
		dialog:    popup.New(),
		editor:    editor.NewPage(cfg.Editor.TabWidth),
		log:       logging.For("app"),
	}
	app.log.WithFields(logrus.Fields{
		"left":  initial.Left.Path,
		"right": initial.Right.Path,
	}).Info("started")
	return app, nil
}

func commandOverrides(cfg *config.Config) statepkg.CommandSet {
	return statepkg.CommandSet{
		Copy:   cfg.Commands.Copy,
		Remove: cfg.Commands.Remove,
		MkDir:  cfg.Commands.MkDir,
		Open:   cfg.Commands.Open,
	}
}

// startWatchers creates one watcher per panel. Creating a watcher is fatal;
// failing to watch the start directory is only logged.
func startWatchers(store *statepkg.StateStore, initial *statepkg.State, debounce time.Duration) ([2]*watch.PanelWatcher, error) {
	var watchers [2]*watch.PanelWatcher
	for _, pos := range []statepkg.PanelPosition{statepkg.PanelLeft, statepkg.PanelRight} {
		w, err := watch.New(pos, store.Dispatch, debounce)
		if err != nil {
			closeWatchers(watchers)
			return watchers, fmt.Errorf("start %s watcher: %w", pos, err)
		}
		watchers[pos] = w
		if err := w.Follow(initial.Panel(pos).Path); err != nil {
			logging.For("app").WithError(err).Warn("watch start directory")
		}
	}
	return watchers, nil
}

func closeWatchers(watchers [2]*watch.PanelWatcher) {
	for _, w := range watchers {
		if w != nil {
			_ = w.Close()
		}
	}
}

// Dispatch queues an action on the store.
func (app *Application) Dispatch(action statepkg.Action) {
	app.store.Dispatch(action)
}

// Terminate stops Run with reason.
func (app *Application) Terminate(reason statepkg.Interrupted) {
	app.term.Terminate(reason)
}

// Close cleans up resources. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		app.term.Terminate(statepkg.UserInterrupt)
		app.snapshots.Close()
		closeWatchers(app.watchers)
		app.screen.Fini()
	})
	return nil
}
