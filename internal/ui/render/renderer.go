package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fir/internal/state"
	"github.com/kk-code-lab/fir/internal/textutil"
	"github.com/kk-code-lab/fir/internal/ui/editor"
	"github.com/kk-code-lab/fir/internal/ui/popup"
)

const (
	errorTitle  = "Error"
	promptTitle = "Please select"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	scroll [2]int // first visible item per panel
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// RenderMain draws both panels, the popup when one is shown, and the help line.
func (r *Renderer) RenderMain(state *statepkg.State, dialog *popup.Model) {
	r.screen.Clear()
	w, h := r.screen.Size()
	layout := computeLayout(w, h)

	if state != nil {
		r.drawPanel(statepkg.PanelLeft, &state.Left, layout.left)
		r.drawPanel(statepkg.PanelRight, &state.Right, layout.right)
		if state.PopupActive() {
			r.drawPopup(state, dialog, layout.page)
		}
	}
	r.drawHelpLine(state, w, layout.helpY)
	r.screen.Show()
}

// RenderEditor draws the editor page and its help line.
func (r *Renderer) RenderEditor(state *statepkg.State, buf *editor.Buffer) {
	r.screen.Clear()
	w, h := r.screen.Size()
	layout := computeLayout(w, h)

	if buf != nil {
		r.drawEditor(buf, layout.page)
	}
	r.drawHelpLine(state, w, layout.helpY)
	r.screen.Show()
}

func (r *Renderer) drawPanel(pos statepkg.PanelPosition, panel *statepkg.PanelData, box rect) {
	base := tcell.StyleDefault.Background(r.theme.PanelBg).Foreground(r.theme.PanelFg)
	r.drawBox(box, base.Foreground(r.theme.BorderFg))

	titleStyle := base.Background(r.theme.TitleBg).Foreground(r.theme.TitleFg)
	if panel.Active {
		titleStyle = base.Background(r.theme.ActiveTitleBg).Foreground(r.theme.ActiveTitleFg)
	}
	r.drawTitle(box, panel.Path, titleStyle)

	in := box.inner()
	if in.w <= 0 || in.h <= 0 {
		return
	}
	offset := scrollOffset(r.scroll[pos], panel.Index, in.h, len(panel.Items))
	r.scroll[pos] = offset

	for row := 0; row < in.h && offset+row < len(panel.Items); row++ {
		idx := offset + row
		item := panel.Items[idx]

		style := base.Foreground(r.theme.FileFg)
		if item.IsDir {
			style = base.Foreground(r.theme.DirectoryFg).Bold(true)
		}
		if item.Marked {
			style = style.Foreground(r.theme.MarkedFg)
		}
		if panel.Active && idx == panel.Index {
			style = style.Background(r.theme.SelectionBg)
			if !item.Marked {
				style = style.Foreground(r.theme.SelectionFg)
			}
		}

		label := textutil.Fit(textutil.SingleLine(item.Name), in.w)
		r.fill(in.x, in.y+row, in.w, 1, style)
		r.drawTextLine(in.x, in.y+row, in.w, label, style)
	}
}

func (r *Renderer) drawPopup(state *statepkg.State, dialog *popup.Model, page rect) {
	box := centered(page, 60, 20, 30, 7)
	base := tcell.StyleDefault.Background(r.theme.PopupBg).Foreground(r.theme.PopupFg)
	r.drawBox(box, base)

	title, titleStyle := promptTitle, base
	if state.PopupType == statepkg.PopupError {
		title, titleStyle = errorTitle, base.Foreground(r.theme.ErrorTitleFg).Bold(true)
	}
	r.drawTitle(box, title, titleStyle)

	in := box.inner()
	if in.w <= 2 || in.h <= 0 {
		return
	}
	text := rect{x: in.x + 1, y: in.y, w: in.w - 2, h: in.h}

	// Bottom row holds the buttons; an input popup needs one more row.
	msgRows := text.h - 1
	if state.PopupType == statepkg.PopupInput {
		msgRows--
	}
	lines := wrapText(textutil.Sanitize(state.PopupMsg), text.w)
	for i := 0; i < len(lines) && i < msgRows; i++ {
		r.drawTextLine(text.x, text.y+i, text.w, lines[i], base)
	}

	if state.PopupType == statepkg.PopupInput && msgRows >= 0 {
		r.drawInputLine(dialog, text.x, text.y+text.h-2, text.w)
	}
	r.drawButtons(state, dialog, text)
}

func (r *Renderer) drawInputLine(dialog *popup.Model, x, y, w int) {
	style := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg)
	r.fill(x, y, w, 1, style)
	if dialog == nil {
		return
	}
	runes := []rune(textutil.Sanitize(dialog.Input()))
	cursor := min(dialog.Cursor(), len(runes))

	// Scroll horizontally so the cursor cell stays inside the field.
	start := 0
	for textutil.RuneIndexToColumn(runes[start:], cursor-start) >= w && start < cursor {
		start++
	}
	col := x
	for i := start; i < len(runes) && col < x+w; i++ {
		s := style
		if i == cursor {
			s = style.Background(r.theme.InputCursorBg)
		}
		col = r.drawStyledRune(col, y, x+w, runes[i], s)
	}
	if cursor == len(runes) && col < x+w {
		r.screen.SetContent(col, y, ' ', nil, style.Background(r.theme.InputCursorBg))
	}
}

func (r *Renderer) drawButtons(state *statepkg.State, dialog *popup.Model, text rect) {
	base := tcell.StyleDefault.Background(r.theme.PopupBg).Foreground(r.theme.PopupFg)
	active := base.Background(r.theme.ButtonActiveBg).Foreground(r.theme.ButtonActiveFg)

	focus := popup.ButtonOk
	if dialog != nil {
		focus = dialog.Focus()
	}
	buttons := []popup.Button{popup.ButtonOk, popup.ButtonCancel}
	if state.PopupType == statepkg.PopupError {
		buttons = buttons[:1]
		focus = popup.ButtonOk
	}

	labels := make([]string, len(buttons))
	total := 0
	for i, b := range buttons {
		labels[i] = "[ " + b.String() + " ]"
		total += textutil.DisplayWidth(labels[i])
	}
	total += 2 * (len(buttons) - 1)

	y := text.y + text.h - 1
	x := text.x + max(0, (text.w-total)/2)
	for i, b := range buttons {
		style := base
		if b == focus {
			style = active
		}
		x = r.drawTextLine(x, y, text.x+text.w-x, labels[i], style)
		x += 2
	}
}

func (r *Renderer) drawEditor(buf *editor.Buffer, page rect) {
	base := tcell.StyleDefault.Background(r.theme.EditorBg).Foreground(r.theme.EditorFg)
	r.drawBox(page, base)
	r.drawTitle(page, buf.Path(), base.Background(r.theme.ActiveTitleBg).Foreground(r.theme.ActiveTitleFg))

	in := page.inner()
	if in.w <= 0 || in.h <= 0 {
		return
	}
	buf.Resize(in.w, in.h)
	top, left := buf.Viewport()
	row, _ := buf.Cursor()
	cursorCol := buf.CursorColumn()
	tabWidth := buf.TabWidth()

	for y := 0; y < in.h && top+y < buf.LineCount(); y++ {
		line := buf.Line(top + y)
		col := 0
		for _, ru := range line {
			width := textutil.RuneWidth(ru)
			screenX := col - left
			switch {
			case ru == '\t':
				width = tabWidth - col%tabWidth
				for c := max(screenX, 0); c < min(screenX+width, in.w); c++ {
					r.screen.SetContent(in.x+c, in.y+y, ' ', nil, base)
				}
			case screenX >= 0 && screenX+width <= in.w:
				glyph := ru
				if ru < 0x20 || ru == 0x7f {
					glyph = '?'
				}
				r.screen.SetContent(in.x+screenX, in.y+y, glyph, nil, base)
			}
			col += width
		}
	}

	if cx := cursorCol - left; row >= top && row < top+in.h && cx >= 0 && cx < in.w {
		mainc, combc, _, _ := r.screen.GetContent(in.x+cx, in.y+row-top)
		r.screen.SetContent(in.x+cx, in.y+row-top, mainc, combc, base.Background(r.theme.EditorCursorBg))
	}
}

func (r *Renderer) drawHelpLine(state *statepkg.State, w, y int) {
	if y < 0 {
		return
	}
	keyStyle := tcell.StyleDefault.Foreground(r.theme.FooterKeyFg)
	labelStyle := tcell.StyleDefault.Background(r.theme.FooterLabelBg).Foreground(r.theme.FooterLabelFg)

	x := 0
	for _, seg := range buildFooterHelpSegments(state) {
		x = r.drawTextLine(x, y, w-x, seg.key, keyStyle)
		x = r.drawTextLine(x, y, w-x, seg.label, labelStyle)
		if x >= w {
			break
		}
	}
}

// wrapText hard-wraps text into lines of at most width cells.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	used := 0
	for _, ru := range text {
		w := textutil.RuneWidth(ru)
		if used+w > width {
			lines = append(lines, string(line))
			line, used = line[:0], 0
		}
		line = append(line, ru)
		used += w
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}
