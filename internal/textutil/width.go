package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// RuneWidth returns the cell width of r. Zero-width runes count as one cell
// so every rune stays addressable by the cursor.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += RuneWidth(r)
	}
	return width
}

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(r)
		column += RuneWidth(r)
	}
	return builder.String()
}

// Truncate cuts text to at most width cells. When text is cut the result
// ends with tail, unless tail alone does not fit.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	tailWidth := DisplayWidth(tail)
	if tailWidth > width {
		tail, tailWidth = "", 0
	}

	var b strings.Builder
	used := 0
	for _, r := range text {
		w := RuneWidth(r)
		if used+w > width-tailWidth {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(tail)
	return b.String()
}

// Fit truncates text with an ellipsis and pads it with spaces to exactly
// width cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	cut := Truncate(text, width, Ellipsis)
	if pad := width - DisplayWidth(cut); pad > 0 {
		return cut + strings.Repeat(" ", pad)
	}
	return cut
}

// RuneIndexToColumn returns the cell column where runes[index] starts.
func RuneIndexToColumn(runes []rune, index int) int {
	if index > len(runes) {
		index = len(runes)
	}
	col := 0
	for _, r := range runes[:index] {
		col += RuneWidth(r)
	}
	return col
}
