package render

type rect struct {
	x, y, w, h int
}

// inner returns the area inside a one-cell border.
func (b rect) inner() rect {
	in := rect{x: b.x + 1, y: b.y + 1, w: b.w - 2, h: b.h - 2}
	if in.w < 0 {
		in.w = 0
	}
	if in.h < 0 {
		in.h = 0
	}
	return in
}

type layoutMetrics struct {
	left, right rect
	page        rect // area above the help line
	helpY       int
}

func computeLayout(w, h int) layoutMetrics {
	pageH := h - 1
	if pageH < 0 {
		pageH = 0
	}
	leftW := w / 2
	return layoutMetrics{
		left:  rect{x: 0, y: 0, w: leftW, h: pageH},
		right: rect{x: leftW, y: 0, w: w - leftW, h: pageH},
		page:  rect{x: 0, y: 0, w: w, h: pageH},
		helpY: h - 1,
	}
}

// centered returns a rectangle of percentX by percentY of area, centered.
func centered(area rect, percentX, percentY, minW, minH int) rect {
	w := area.w * percentX / 100
	h := area.h * percentY / 100
	w = min(max(w, minW), area.w)
	h = min(max(h, minH), area.h)
	return rect{x: area.x + (area.w-w)/2, y: area.y + (area.h-h)/2, w: w, h: h}
}

// scrollOffset keeps index visible inside a window of height rows, moving
// the previous offset as little as possible.
func scrollOffset(prev, index, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	offset := prev
	if index < offset {
		offset = index
	}
	if index >= offset+height {
		offset = index - height + 1
	}
	return max(0, min(offset, total-height))
}
