// Package watch reloads panels when their directories change.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/fir/internal/logging"
	statepkg "github.com/kk-code-lab/fir/internal/state"
)

// DispatchFunc receives the reload actions. StateStore.Dispatch fits.
type DispatchFunc func(statepkg.Action)

// PanelWatcher watches the directory shown by one panel. It owns a single
// fsnotify watcher that is retargeted by Follow.
type PanelWatcher struct {
	panel    statepkg.PanelPosition
	dispatch DispatchFunc
	debounce time.Duration
	fsw      *fsnotify.Watcher
	log      *logrus.Entry

	mu      sync.Mutex
	path    string
	pending *time.Timer
	closed  bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New starts a watcher for panel. Bursts of events within debounce collapse
// into one ReloadAction.
func New(panel statepkg.PanelPosition, dispatch DispatchFunc, debounce time.Duration) (*PanelWatcher, error) {
	if dispatch == nil {
		return nil, fmt.Errorf("watch: nil dispatch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, statepkg.NewWatcherSetupError("", err)
	}
	w := &PanelWatcher{
		panel:    panel,
		dispatch: dispatch,
		debounce: debounce,
		fsw:      fsw,
		log:      logging.For("watch").WithField("panel", panel.String()),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Follow moves the watch to path. On failure the previous directory stays
// watched.
func (w *PanelWatcher) Follow(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watch: closed")
	}
	if path == w.path {
		return nil
	}
	if err := w.fsw.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if w.path != "" {
		if err := w.fsw.Remove(w.path); err != nil {
			w.log.WithError(err).WithField("path", w.path).Debug("remove watch")
		}
	}
	w.path = path
	w.log.WithField("path", path).Debug("following directory")
	return nil
}

// Path returns the directory currently watched.
func (w *PanelWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher. Pending reloads are dropped.
func (w *PanelWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *PanelWatcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("fsnotify error")
		case <-w.done:
			return
		}
	}
}

func (w *PanelWatcher) handle(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.path == "" {
		return
	}
	// Events from a directory we already left can still be queued.
	if event.Name != w.path && filepath.Dir(event.Name) != w.path {
		return
	}
	if w.debounce <= 0 {
		go w.dispatch(statepkg.ReloadAction{Panel: w.panel})
		return
	}
	if w.pending == nil {
		w.pending = time.AfterFunc(w.debounce, w.fire)
	}
}

func (w *PanelWatcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.mu.Unlock()
	w.dispatch(statepkg.ReloadAction{Panel: w.panel})
}
