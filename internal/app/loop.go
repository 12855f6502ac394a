package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fir/internal/state"
)

// Run starts the store and drives the UI until the store stops. It returns
// why the application ended.
func (app *Application) Run() (statepkg.Interrupted, error) {
	type storeResult struct {
		reason statepkg.Interrupted
		err    error
	}
	storeDone := make(chan storeResult, 1)
	go func() {
		reason, err := app.store.Run(app.initial, app.term)
		storeDone <- storeResult{reason, err}
	}()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, terminateSignals()...)
	defer signal.Stop(sigCh)

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	renderPending := false
	for {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case <-app.snapshots.Ready():
			if snap, ok := app.snapshots.Latest(); ok {
				app.sync(&snap)
				renderPending = true
			}
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case sig := <-sigCh:
			app.log.WithField("signal", sig.String()).Info("terminating")
			app.term.Terminate(statepkg.OSInterrupt)
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		case <-app.term.Done():
			res := <-storeDone
			app.log.WithField("reason", res.reason.String()).Info("stopped")
			return res.reason, res.err
		case res := <-storeDone:
			// The store refused to start.
			return res.reason, res.err
		}
	}
}

// sync adopts a new snapshot and retargets the watchers.
func (app *Application) sync(snap *statepkg.State) {
	app.state = snap
	app.input.SetState(snap)
	app.dialog.Sync(snap)
	app.dispatchAll(app.editor.Sync(snap))

	for _, pos := range []statepkg.PanelPosition{statepkg.PanelLeft, statepkg.PanelRight} {
		w := app.watchers[pos]
		path := snap.Panel(pos).Path
		if w == nil || w.Path() == path {
			continue
		}
		if err := w.Follow(path); err != nil {
			app.log.WithError(err).WithField("panel", pos.String()).Warn("retarget watcher")
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			app.suspendToShell()
			app.resumeAfterStop()
			return true
		}
		app.handleKey(ev)
		return true
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) dispatchAll(actions []statepkg.Action) {
	for _, action := range actions {
		app.store.Dispatch(action)
	}
}
