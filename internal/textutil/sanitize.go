// Package textutil prepares untrusted text (file names, command output,
// file contents) for a terminal cell grid.
package textutil

import "strings"

// invisibleRuneLabels maps bidi and zero-width runes to visible markers so
// a file name cannot reorder or hide parts of a panel row.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// Sanitize replaces control characters and invisible formatting runes.
// Line breaks become spaces; other control bytes become '?'.
func Sanitize(text string) string {
	if !needsSanitizing(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := invisibleRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r == '\t':
			b.WriteByte('\t')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if r == '\t' {
			continue
		}
		if _, ok := invisibleRuneLabels[r]; ok {
			return true
		}
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// SingleLine collapses text to one sanitized line with tabs expanded.
func SingleLine(text string) string {
	return ExpandTabs(Sanitize(strings.TrimRight(text, "\r\n")), DefaultTabWidth)
}
