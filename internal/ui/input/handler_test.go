package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/fir/internal/fs"
	statepkg "github.com/kk-code-lab/fir/internal/state"
)

func newTestHandler(state *statepkg.State) (*InputHandler, *[]statepkg.Action) {
	var actions []statepkg.Action
	handler := NewInputHandler(func(a statepkg.Action) { actions = append(actions, a) }, 10)
	handler.SetEditableCheck(func(string) bool { return true })
	handler.SetState(state)
	return handler, &actions
}

func testState() *statepkg.State {
	return &statepkg.State{
		Left: statepkg.PanelData{
			Active: true,
			Path:   "/home/u",
			Items: []statepkg.PanelItem{
				{Path: fsutil.ParentName, Name: fsutil.ParentName, IsDir: true},
				{Path: "/home/u/docs", Name: "docs", IsDir: true},
				{Path: "/home/u/a.txt", Name: "a.txt"},
			},
		},
		Right: statepkg.PanelData{
			Path:  "/srv",
			Items: []statepkg.PanelItem{{Path: fsutil.ParentName, Name: fsutil.ParentName, IsDir: true}},
		},
	}
}

func onlyAction(t *testing.T, actions []statepkg.Action) statepkg.Action {
	t.Helper()
	if len(actions) != 1 {
		t.Fatalf("Expected exactly one action, got %d (%v)", len(actions), actions)
	}
	return actions[0]
}

func TestArrowKeysMoveSelection(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		mod  tcell.ModMask
		want statepkg.Action
	}{
		{"down", tcell.KeyDown, tcell.ModNone, statepkg.FileItemDownAction{Count: 1}},
		{"up", tcell.KeyUp, tcell.ModNone, statepkg.FileItemUpAction{Count: 1}},
		{"shift down", tcell.KeyDown, tcell.ModShift, statepkg.FileItemDownAction{Count: 1, Extend: true}},
		{"shift up", tcell.KeyUp, tcell.ModShift, statepkg.FileItemUpAction{Count: 1, Extend: true}},
		{"page down", tcell.KeyPgDn, tcell.ModNone, statepkg.FileItemDownAction{Count: 10}},
		{"page up", tcell.KeyPgUp, tcell.ModNone, statepkg.FileItemUpAction{Count: 10}},
		{"right", tcell.KeyRight, tcell.ModNone, statepkg.FileItemDownAction{Count: 10}},
		{"left", tcell.KeyLeft, tcell.ModNone, statepkg.FileItemUpAction{Count: 10}},
		{"tab", tcell.KeyTab, tcell.ModNone, statepkg.SwitchTabsAction{}},
		{"f7", tcell.KeyF7, tcell.ModNone, statepkg.MkDirInputAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, actions := newTestHandler(testState())
			if !handler.ProcessEvent(tcell.NewEventKey(tt.key, 0, tt.mod)) {
				t.Fatalf("Key should not quit")
			}
			if got := onlyAction(t, *actions); got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestEnterOnDirectoryChangesDirectory(t *testing.T) {
	state := testState()
	state.Left.Index = 1
	handler, actions := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	cd, ok := onlyAction(t, *actions).(statepkg.CdAction)
	if !ok || cd.Dir != "docs" {
		t.Fatalf("Expected CdAction{docs}, got %#v", (*actions)[0])
	}
}

func TestEnterUsesOnDiskName(t *testing.T) {
	state := testState()
	state.Left.Items[1] = statepkg.PanelItem{Path: "/home/u/cafe\u0301", Name: "caf\u00e9", IsDir: true}
	state.Left.Index = 1
	handler, actions := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	cd, ok := onlyAction(t, *actions).(statepkg.CdAction)
	if !ok || cd.Dir != "cafe\u0301" {
		t.Fatalf("Expected CdAction with the on-disk name, got %#v", (*actions)[0])
	}
}

func TestEnterOnParentGoesUp(t *testing.T) {
	handler, actions := newTestHandler(testState())

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	cd, ok := onlyAction(t, *actions).(statepkg.CdAction)
	if !ok || cd.Dir != ".." {
		t.Fatalf("Expected CdAction{..}, got %#v", (*actions)[0])
	}
}

func TestEnterOnFileOpensIt(t *testing.T) {
	state := testState()
	state.Left.Index = 2
	handler, actions := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	open, ok := onlyAction(t, *actions).(statepkg.OpenAction)
	if !ok || open.Path != "/home/u/a.txt" {
		t.Fatalf("Expected OpenAction, got %#v", (*actions)[0])
	}
}

func TestCopyTargetsInactivePanel(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone),
	} {
		state := testState()
		state.Left.Index = 2
		handler, actions := newTestHandler(state)

		handler.ProcessEvent(ev)

		copyAction, ok := onlyAction(t, *actions).(statepkg.CopyAction)
		if !ok {
			t.Fatalf("Expected CopyAction, got %T", (*actions)[0])
		}
		if copyAction.From != "/home/u/a.txt" || copyAction.To != "/srv" {
			t.Errorf("Unexpected copy %#v", copyAction)
		}
	}
}

func TestRemoveAsksForConfirmation(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyF8, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone),
	} {
		state := testState()
		state.Left.Index = 1
		handler, actions := newTestHandler(state)

		handler.ProcessEvent(ev)

		rm, ok := onlyAction(t, *actions).(statepkg.RmYesNoAction)
		if !ok || rm.Path != "/home/u/docs" {
			t.Fatalf("Expected RmYesNoAction for docs, got %#v", (*actions)[0])
		}
	}
}

func TestParentEntryIgnoredByFileOperations(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyF4, tcell.KeyF5, tcell.KeyF8} {
		handler, actions := newTestHandler(testState())
		handler.ProcessEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
		if len(*actions) != 0 {
			t.Errorf("Key %v on parent entry should do nothing, got %v", k, *actions)
		}
	}
}

func TestEditOnlyOpensEditableFiles(t *testing.T) {
	state := testState()
	state.Left.Index = 2
	handler, actions := newTestHandler(state)

	handler.SetEditableCheck(func(string) bool { return false })
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModNone))
	if len(*actions) != 0 {
		t.Fatalf("Binary file should not open the editor, got %v", *actions)
	}

	handler.SetEditableCheck(func(string) bool { return true })
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModNone))
	edit, ok := onlyAction(t, *actions).(statepkg.EditAction)
	if !ok || edit.Path != "/home/u/a.txt" {
		t.Fatalf("Expected EditAction, got %#v", (*actions)[0])
	}

	state.Left.Index = 1
	*actions = nil
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModNone))
	if len(*actions) != 0 {
		t.Errorf("Directories should not open the editor")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		handler, actions := newTestHandler(testState())
		if handler.ProcessEvent(ev) {
			t.Errorf("Expected quit for %v", ev.Name())
		}
		if _, ok := onlyAction(t, *actions).(statepkg.ExitAction); !ok {
			t.Errorf("Expected ExitAction, got %T", (*actions)[0])
		}
	}
}

func TestUsesActivePanel(t *testing.T) {
	state := testState()
	state.Left.Active = false
	state.Right.Active = true
	handler, actions := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	cd, ok := onlyAction(t, *actions).(statepkg.CdAction)
	if !ok || cd.Dir != ".." {
		t.Fatalf("Expected CdAction{..} from right panel, got %#v", (*actions)[0])
	}
}

func TestNonKeyEventsIgnored(t *testing.T) {
	handler, actions := newTestHandler(testState())
	if !handler.ProcessEvent(tcell.NewEventResize(80, 24)) {
		t.Fatalf("Resize should not quit")
	}
	if len(*actions) != 0 {
		t.Errorf("Resize should not dispatch, got %v", *actions)
	}
}
