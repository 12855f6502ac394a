package input

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/fir/internal/fs"
	statepkg "github.com/kk-code-lab/fir/internal/state"
)

const DefaultPageStep = 20

// InputHandler converts main-page key events to Actions
type InputHandler struct {
	dispatch func(statepkg.Action)
	state    *statepkg.State // latest snapshot, used to resolve the selected item
	pageStep int
	editable func(path string) bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(dispatch func(statepkg.Action), pageStep int) *InputHandler {
	if pageStep < 1 {
		pageStep = DefaultPageStep
	}
	return &InputHandler{
		dispatch: dispatch,
		pageStep: pageStep,
		editable: fsutil.IsEditable,
	}
}

// SetState sets the snapshot the next key is resolved against
func (ih *InputHandler) SetState(state *statepkg.State) {
	ih.state = state
}

// SetEditableCheck replaces the test deciding which files F4 opens.
func (ih *InputHandler) SetEditableCheck(fn func(path string) bool) {
	if fn != nil {
		ih.editable = fn
	}
}

// ProcessEvent converts a key event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return ih.processKeyEvent(key)
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyUp:
		ih.dispatch(statepkg.FileItemUpAction{Count: 1, Extend: extend})
	case tcell.KeyDown:
		ih.dispatch(statepkg.FileItemDownAction{Count: 1, Extend: extend})
	case tcell.KeyPgUp, tcell.KeyLeft:
		ih.dispatch(statepkg.FileItemUpAction{Count: ih.pageStep})
	case tcell.KeyPgDn, tcell.KeyRight:
		ih.dispatch(statepkg.FileItemDownAction{Count: ih.pageStep})
	case tcell.KeyTab:
		ih.dispatch(statepkg.SwitchTabsAction{})
	case tcell.KeyEnter:
		ih.enter()
	case tcell.KeyF4:
		ih.edit()
	case tcell.KeyF5:
		ih.copy()
	case tcell.KeyF7:
		ih.dispatch(statepkg.MkDirInputAction{})
	case tcell.KeyF8:
		ih.remove()
	case tcell.KeyF10, tcell.KeyCtrlC:
		ih.dispatch(statepkg.ExitAction{})
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'c':
			ih.copy()
		case 'd':
			ih.remove()
		case 'q':
			ih.dispatch(statepkg.ExitAction{})
			return false
		}
	}
	return true
}

// selected returns the item under the cursor of the active panel.
func (ih *InputHandler) selected() (*statepkg.PanelData, *statepkg.PanelItem) {
	if ih.state == nil {
		return nil, nil
	}
	panel := ih.state.ActivePanel()
	return panel, panel.CurrentItem()
}

func (ih *InputHandler) enter() {
	panel, item := ih.selected()
	if item == nil {
		return
	}
	if item.IsDir {
		// Cd by the on-disk name; the display name may be normalized.
		dir := item.Path
		if !item.IsParent() {
			dir = filepath.Base(item.Path)
		}
		ih.dispatch(statepkg.CdAction{Dir: dir})
		return
	}
	ih.dispatch(statepkg.OpenAction{Path: panel.ItemPath(*item)})
}

func (ih *InputHandler) edit() {
	_, item := ih.selected()
	if item == nil || item.IsDir || item.IsParent() || !ih.editable(item.Path) {
		return
	}
	ih.dispatch(statepkg.EditAction{Path: item.Path})
}

func (ih *InputHandler) copy() {
	_, item := ih.selected()
	if item == nil || item.IsParent() {
		return
	}
	ih.dispatch(statepkg.CopyAction{From: item.Path, To: ih.state.InactivePanel().Path})
}

func (ih *InputHandler) remove() {
	_, item := ih.selected()
	if item == nil || item.IsParent() {
		return
	}
	ih.dispatch(statepkg.RmYesNoAction{Path: item.Path})
}
