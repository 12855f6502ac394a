package state

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kk-code-lab/fir/internal/command"
	fsutil "github.com/kk-code-lab/fir/internal/fs"
)

type stubLister struct {
	mu      sync.Mutex
	entries map[string][]fsutil.Entry
	fail    map[string]error
	calls   []string
}

func (l *stubLister) List(dir string) ([]fsutil.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, dir)
	if err := l.fail[dir]; err != nil {
		return nil, err
	}
	return append([]fsutil.Entry(nil), l.entries[dir]...), nil
}

func (l *stubLister) listed(dir string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.calls {
		if c == dir {
			return true
		}
	}
	return false
}

type runCall struct {
	program string
	args    []string
	ctx     context.Context
}

type stubRunner struct {
	mu      sync.Mutex
	calls   []runCall
	respond func(program string, args []string) (command.Result, error)
}

func (r *stubRunner) Run(ctx context.Context, program string, args ...string) (command.Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, runCall{program: program, args: append([]string(nil), args...), ctx: ctx})
	respond := r.respond
	r.mu.Unlock()
	if respond == nil {
		return command.Result{}, nil
	}
	return respond(program, args)
}

func (r *stubRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *stubRunner) lastCall() runCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return runCall{}
	}
	return r.calls[len(r.calls)-1]
}

func testCommands() CommandSet {
	return CommandSet{
		Copy:   []string{"cp", "-r"},
		Remove: []string{"rm", "-rf"},
		MkDir:  []string{"mkdir"},
		Open:   []string{"xdg-open"},
	}
}

func fileEntries(dir string, names ...string) []fsutil.Entry {
	entries := make([]fsutil.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, fsutil.Entry{Name: name, FullPath: filepath.Join(dir, name)})
	}
	return entries
}

func makeItems(n int) []PanelItem {
	items := make([]PanelItem, n)
	for i := range items {
		name := string(rune('a' + i))
		items[i] = PanelItem{Path: filepath.Join("/left", name), Name: name}
	}
	return items
}

// newPanelsState builds a state with a fixed left listing and a right panel
// holding only the parent entry.
func newPanelsState(leftItems []PanelItem) *State {
	return &State{
		Left:  PanelData{Active: true, Path: "/left", Items: leftItems},
		Right: PanelData{Path: "/right", Items: []PanelItem{{Path: fsutil.ParentName, Name: fsutil.ParentName, IsDir: true}}},
	}
}

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	return dir
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func assertPopupInvariant(t *testing.T, state *State) {
	t.Helper()
	if state.PopupNextAction != nil {
		if state.PopupType != PopupInput && state.PopupType != PopupYesNo {
			t.Fatalf("pending action %T on %s popup", state.PopupNextAction, state.PopupType)
		}
		if !state.PopupActive() {
			t.Fatalf("pending action %T without popup message", state.PopupNextAction)
		}
	}
	if state.Left.Active == state.Right.Active {
		t.Fatalf("expected exactly one active panel, left=%v right=%v", state.Left.Active, state.Right.Active)
	}
}
