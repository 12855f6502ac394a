package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fir/internal/logging"
	statepkg "github.com/kk-code-lab/fir/internal/state"
)

// Page binds a Buffer to the editor fields of the store state.
type Page struct {
	tabWidth int
	buf      *Buffer
}

func NewPage(tabWidth int) *Page {
	return &Page{tabWidth: tabWidth}
}

// Buffer returns the open buffer, or nil.
func (p *Page) Buffer() *Buffer {
	return p.buf
}

// Sync loads the file named by the state when it changes. A file that
// cannot be read closes the editor.
func (p *Page) Sync(state *statepkg.State) []statepkg.Action {
	if state == nil || !state.EditorOpen() {
		p.buf = nil
		return nil
	}
	if p.buf != nil && p.buf.Path() == state.EditorFile {
		return nil
	}
	buf, err := Load(state.EditorFile, p.tabWidth)
	if err != nil {
		logging.For("editor").WithError(err).Warn("open failed")
		p.buf = nil
		return []statepkg.Action{statepkg.EditorExitAction{}}
	}
	p.buf = buf
	return nil
}

// HandleKey edits the buffer and returns the actions that mirror the result
// into the store.
func (p *Page) HandleKey(ev *tcell.EventKey, state *statepkg.State) []statepkg.Action {
	if actions := p.Sync(state); actions != nil {
		return actions
	}
	if p.buf == nil {
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		p.buf = nil
		return []statepkg.Action{statepkg.EditorExitAction{}}
	case tcell.KeyCtrlS:
		// The buffer knows about edits whose snapshot has not arrived yet.
		if !p.buf.Modified() {
			return nil
		}
		if err := p.buf.Save(); err != nil {
			logging.For("editor").WithError(err).Warn("save failed")
			return nil
		}
		return []statepkg.Action{statepkg.EditorResetModifiedAction{}}
	}

	if p.buf.HandleKey(ev) && !state.EditorModified {
		return []statepkg.Action{statepkg.EditorModifiedAction{}}
	}
	return nil
}
