package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fir/internal/textutil"
)

// drawTextLine draws text from startX, clipped to maxWidth cells. It returns
// the column after the last cell drawn.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	maxX := startX + maxWidth
	for _, ru := range text {
		w := textutil.RuneWidth(ru)
		if x+w > maxX {
			break
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
	}
	return x
}

func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	width := textutil.RuneWidth(ru)
	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width && x+w < maxX; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawBox draws a single-line border around the rectangle and fills it.
func (r *Renderer) drawBox(b rect, style tcell.Style) {
	if b.w < 2 || b.h < 2 {
		return
	}
	r.fill(b.x, b.y, b.w, b.h, style)
	right, bottom := b.x+b.w-1, b.y+b.h-1
	for x := b.x + 1; x < right; x++ {
		r.screen.SetContent(x, b.y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := b.y + 1; y < bottom; y++ {
		r.screen.SetContent(b.x, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(b.x, b.y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, b.y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(b.x, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawTitle centers " title " on the top border of b.
func (r *Renderer) drawTitle(b rect, title string, style tcell.Style) {
	inner := b.w - 4
	if inner <= 0 {
		return
	}
	text := " " + textutil.Truncate(textutil.Sanitize(title), inner-2, textutil.Ellipsis) + " "
	x := b.x + (b.w-textutil.DisplayWidth(text))/2
	r.drawTextLine(x, b.y, inner, text, style)
}
