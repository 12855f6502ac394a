// Package editor implements the built-in text editor page.
package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/fir/internal/fs"
	"github.com/kk-code-lab/fir/internal/textutil"
)

// Buffer is an editable list of lines with a cursor and a viewport.
type Buffer struct {
	path     string
	lines    [][]rune
	row      int
	col      int // rune offset in lines[row]
	top      int // first visible row
	left     int // first visible display column
	height   int
	width    int
	tabWidth int
	encoding fsutil.Encoding
	modified bool // edited since load or the last save
}

// Load reads path into a buffer. Line endings are normalized to "\n".
func Load(path string, tabWidth int) (*Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	b := NewBuffer(path, fsutil.DecodeText(content), tabWidth)
	b.encoding = fsutil.DetectEncoding(content)
	return b, nil
}

// NewBuffer builds a buffer over text without touching the filesystem.
func NewBuffer(path, text string, tabWidth int) *Buffer {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for i, line := range raw {
		lines[i] = []rune(line)
	}
	return &Buffer{path: path, lines: lines, tabWidth: tabWidth, height: 1, width: 1}
}

func (b *Buffer) Path() string {
	return b.path
}

// Text returns the content with a trailing newline after every line.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Modified reports unsaved edits.
func (b *Buffer) Modified() bool {
	return b.modified
}

// Save writes the buffer back to its file in the encoding it was read
// with, keeping the file mode.
func (b *Buffer) Save() error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(b.path); err == nil {
		mode = info.Mode().Perm()
	}
	data, err := fsutil.EncodeText(b.Text(), b.encoding)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", b.path, err)
	}
	if err := os.WriteFile(b.path, data, mode); err != nil {
		return fmt.Errorf("cannot save %s: %w", b.path, err)
	}
	b.modified = false
	return nil
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// Cursor returns the cursor row and rune offset.
func (b *Buffer) Cursor() (int, int) {
	return b.row, b.col
}

// CursorColumn returns the display column of the cursor, tabs expanded.
func (b *Buffer) CursorColumn() int {
	return b.column(b.lines[b.row], b.col)
}

func (b *Buffer) column(line []rune, idx int) int {
	col := 0
	for _, r := range line[:idx] {
		if r == '\t' {
			col += b.tabWidth - col%b.tabWidth
			continue
		}
		col += textutil.RuneWidth(r)
	}
	return col
}

func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Viewport returns the first visible row and display column.
func (b *Buffer) Viewport() (top, left int) {
	return b.top, b.left
}

// Resize sets the viewport size and scrolls the cursor into view.
func (b *Buffer) Resize(width, height int) {
	b.width = max(width, 1)
	b.height = max(height, 1)
	b.scrollToCursor()
}

func (b *Buffer) scrollToCursor() {
	if b.row < b.top {
		b.top = b.row
	}
	if b.row >= b.top+b.height {
		b.top = b.row - b.height + 1
	}
	col := b.CursorColumn()
	if col < b.left {
		b.left = col
	}
	if col >= b.left+b.width {
		b.left = col - b.width + 1
	}
}

// HandleKey applies an editing or movement key and reports whether the
// text changed.
func (b *Buffer) HandleKey(ev *tcell.EventKey) bool {
	changed := false
	switch ev.Key() {
	case tcell.KeyUp:
		b.moveRow(-1)
	case tcell.KeyDown:
		b.moveRow(1)
	case tcell.KeyPgUp:
		b.moveRow(-b.height)
	case tcell.KeyPgDn:
		b.moveRow(b.height)
	case tcell.KeyLeft:
		b.moveLeft()
	case tcell.KeyRight:
		b.moveRight()
	case tcell.KeyHome:
		b.col = 0
	case tcell.KeyEnd:
		b.col = len(b.lines[b.row])
	case tcell.KeyRune:
		b.insert(ev.Rune())
		changed = true
	case tcell.KeyTab:
		b.insert('\t')
		changed = true
	case tcell.KeyEnter:
		b.splitLine()
		changed = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		changed = b.backspace()
	case tcell.KeyDelete:
		changed = b.deleteForward()
	}
	b.scrollToCursor()
	if changed {
		b.modified = true
	}
	return changed
}

func (b *Buffer) moveRow(delta int) {
	b.row = clamp(b.row+delta, 0, len(b.lines)-1)
	b.col = min(b.col, len(b.lines[b.row]))
}

func (b *Buffer) moveLeft() {
	switch {
	case b.col > 0:
		b.col--
	case b.row > 0:
		b.row--
		b.col = len(b.lines[b.row])
	}
}

func (b *Buffer) moveRight() {
	switch {
	case b.col < len(b.lines[b.row]):
		b.col++
	case b.row < len(b.lines)-1:
		b.row++
		b.col = 0
	}
}

func (b *Buffer) insert(r rune) {
	line := b.lines[b.row]
	line = append(line, 0)
	copy(line[b.col+1:], line[b.col:])
	line[b.col] = r
	b.lines[b.row] = line
	b.col++
}

func (b *Buffer) splitLine() {
	line := b.lines[b.row]
	head := append([]rune(nil), line[:b.col]...)
	tail := append([]rune(nil), line[b.col:]...)

	b.lines[b.row] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[b.row+2:], b.lines[b.row+1:])
	b.lines[b.row+1] = tail
	b.row++
	b.col = 0
}

func (b *Buffer) backspace() bool {
	if b.col > 0 {
		line := b.lines[b.row]
		b.lines[b.row] = append(line[:b.col-1], line[b.col:]...)
		b.col--
		return true
	}
	if b.row == 0 {
		return false
	}
	prev := b.lines[b.row-1]
	b.col = len(prev)
	b.lines[b.row-1] = append(prev, b.lines[b.row]...)
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	b.row--
	return true
}

func (b *Buffer) deleteForward() bool {
	line := b.lines[b.row]
	if b.col < len(line) {
		b.lines[b.row] = append(line[:b.col], line[b.col+1:]...)
		return true
	}
	if b.row == len(b.lines)-1 {
		return false
	}
	b.lines[b.row] = append(line, b.lines[b.row+1]...)
	b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
