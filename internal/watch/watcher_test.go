package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statepkg "github.com/kk-code-lab/fir/internal/state"
)

func newTestWatcher(t *testing.T, panel statepkg.PanelPosition, debounce time.Duration) (*PanelWatcher, <-chan statepkg.Action) {
	t.Helper()
	actions := make(chan statepkg.Action, 64)
	w, err := New(panel, func(a statepkg.Action) { actions <- a }, debounce)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, actions
}

func expectReload(t *testing.T, actions <-chan statepkg.Action, panel statepkg.PanelPosition) {
	t.Helper()
	select {
	case a := <-actions:
		reload, ok := a.(statepkg.ReloadAction)
		require.True(t, ok, "expected ReloadAction, got %T", a)
		assert.Equal(t, panel, reload.Panel)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func expectQuiet(t *testing.T, actions <-chan statepkg.Action, wait time.Duration) {
	t.Helper()
	select {
	case a := <-actions:
		t.Fatalf("unexpected action %#v", a)
	case <-time.After(wait):
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestWatcherReloadsOnCreate(t *testing.T) {
	dir := t.TempDir()
	w, actions := newTestWatcher(t, statepkg.PanelRight, 20*time.Millisecond)
	require.NoError(t, w.Follow(dir))
	assert.Equal(t, dir, w.Path())

	touch(t, filepath.Join(dir, "new.txt"))
	expectReload(t, actions, statepkg.PanelRight)
}

func TestWatcherFollowMovesWatch(t *testing.T) {
	oldDir := t.TempDir()
	newDir := t.TempDir()
	w, actions := newTestWatcher(t, statepkg.PanelLeft, 20*time.Millisecond)

	require.NoError(t, w.Follow(oldDir))
	require.NoError(t, w.Follow(newDir))

	touch(t, filepath.Join(oldDir, "ignored.txt"))
	expectQuiet(t, actions, 300*time.Millisecond)

	touch(t, filepath.Join(newDir, "seen.txt"))
	expectReload(t, actions, statepkg.PanelLeft)
}

func TestWatcherFollowMissingKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	w, actions := newTestWatcher(t, statepkg.PanelLeft, 20*time.Millisecond)
	require.NoError(t, w.Follow(dir))

	err := w.Follow(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Equal(t, dir, w.Path())

	touch(t, filepath.Join(dir, "still.txt"))
	expectReload(t, actions, statepkg.PanelLeft)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	w, actions := newTestWatcher(t, statepkg.PanelLeft, 300*time.Millisecond)
	require.NoError(t, w.Follow(dir))

	for i := 0; i < 10; i++ {
		touch(t, filepath.Join(dir, string(rune('a'+i))))
	}
	expectReload(t, actions, statepkg.PanelLeft)
	expectQuiet(t, actions, 100*time.Millisecond)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, _ := newTestWatcher(t, statepkg.PanelLeft, 0)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Error(t, w.Follow(t.TempDir()))
}

func TestNewRejectsNilDispatch(t *testing.T) {
	_, err := New(statepkg.PanelLeft, nil, 0)
	assert.Error(t, err)
}
