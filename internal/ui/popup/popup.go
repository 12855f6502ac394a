// Package popup holds the confirmation dialog's widget state: which button
// has focus and the text typed so far. The dialog's content lives in the
// store state.
package popup

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fir/internal/state"
)

// Button identifies a dialog button.
type Button int

const (
	ButtonOk Button = iota
	ButtonCancel
)

func (b Button) String() string {
	if b == ButtonCancel {
		return "Cancel"
	}
	return "Ok"
}

type identity struct {
	msg     string
	kind    statepkg.PopupType
	pending bool
}

// Model is the dialog widget state.
type Model struct {
	shown  identity
	focus  Button
	input  []rune
	cursor int
}

func New() *Model {
	return &Model{}
}

// Sync resets focus and input whenever a different popup is shown.
func (m *Model) Sync(state *statepkg.State) {
	if state == nil || !state.PopupActive() {
		m.shown = identity{}
		return
	}
	id := identity{msg: state.PopupMsg, kind: state.PopupType, pending: state.PopupNextAction != nil}
	if id == m.shown {
		return
	}
	m.shown = id
	m.focus = ButtonOk
	m.input = m.input[:0]
	m.cursor = 0
}

func (m *Model) Focus() Button {
	return m.focus
}

func (m *Model) Input() string {
	return string(m.input)
}

// Cursor returns the rune offset of the input cursor.
func (m *Model) Cursor() int {
	return m.cursor
}

// HandleKey maps a key press to the actions to dispatch. It returns nil when
// the key only changed widget state.
func (m *Model) HandleKey(ev *tcell.EventKey, state *statepkg.State) []statepkg.Action {
	if state == nil || !state.PopupActive() {
		return nil
	}
	m.Sync(state)

	switch ev.Key() {
	case tcell.KeyRight:
		m.focus = ButtonCancel
		return nil
	case tcell.KeyLeft:
		m.focus = ButtonOk
		return nil
	case tcell.KeyEscape:
		return []statepkg.Action{statepkg.CancelAction{}}
	case tcell.KeyEnter:
		if state.PopupType == statepkg.PopupError || m.focus == ButtonCancel {
			return []statepkg.Action{statepkg.CancelAction{}}
		}
		if state.PopupNextAction != nil {
			return []statepkg.Action{state.PopupNextAction}
		}
		return nil
	}

	if state.PopupType != statepkg.PopupInput {
		return nil
	}
	if !m.edit(ev) {
		return nil
	}
	return []statepkg.Action{statepkg.SetInputAction{Text: m.Input()}}
}

// edit applies a line-editing key and reports whether the text changed.
func (m *Model) edit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		m.input = append(m.input, 0)
		copy(m.input[m.cursor+1:], m.input[m.cursor:])
		m.input[m.cursor] = r
		m.cursor++
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if m.cursor == 0 {
			return false
		}
		m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
		m.cursor--
		return true
	case tcell.KeyDelete:
		if m.cursor >= len(m.input) {
			return false
		}
		m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		m.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		m.cursor = len(m.input)
	case tcell.KeyCtrlU:
		if len(m.input) == 0 {
			return false
		}
		m.input = m.input[:0]
		m.cursor = 0
		return true
	}
	return false
}
