package app

import (
	"github.com/gdamore/tcell/v2"
)

// page is the screen currently routed to. The set is closed.
type page int

const (
	pageMain page = iota
	pageEditor
)

func (p page) String() string {
	if p == pageEditor {
		return "editor"
	}
	return "main"
}

func (app *Application) page() page {
	if app.state != nil && app.state.EditorOpen() {
		return pageEditor
	}
	return pageMain
}

func (app *Application) render() {
	switch app.page() {
	case pageEditor:
		app.renderer.RenderEditor(app.state, app.editor.Buffer())
	case pageMain:
		app.renderer.RenderMain(app.state, app.dialog)
	}
}

// handleKey routes a key to the visible page. On the main page an open
// popup takes every key.
func (app *Application) handleKey(ev *tcell.EventKey) {
	switch app.page() {
	case pageEditor:
		app.dispatchAll(app.editor.HandleKey(ev, app.state))
	case pageMain:
		if app.state != nil && app.state.PopupActive() {
			app.dispatchAll(app.dialog.HandleKey(ev, app.state))
			return
		}
		if !app.input.ProcessEvent(ev) {
			app.log.Debug("quit requested")
		}
	}
}
