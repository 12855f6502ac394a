package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/fir/internal/state"
)

type helpSegment struct {
	key   string
	label string
}

// buildFooterHelpSegments returns the key legend for the page being shown.
func buildFooterHelpSegments(state *statepkg.State) []helpSegment {
	if state != nil && state.EditorOpen() {
		segments := []helpSegment{{key: "ESC ", label: "Quit"}}
		if state.EditorModified {
			segments = append(segments, helpSegment{key: " ^S ", label: "Save"})
		}
		return segments
	}
	return []helpSegment{
		{key: " ←→↑↓", label: "Navigate"},
		{key: " ↹", label: "Switch panel"},
		{key: " 4", label: "Edit"},
		{key: " 5", label: "Copy"},
		{key: " 7", label: "MkDir"},
		{key: " 8", label: "Delete"},
		{key: " 10", label: "Quit"},
	}
}

// buildFooterHelpText flattens the legend, mainly for tests and logs.
func buildFooterHelpText(state *statepkg.State) string {
	var b strings.Builder
	for _, seg := range buildFooterHelpSegments(state) {
		b.WriteString(seg.key)
		b.WriteString(seg.label)
	}
	return b.String()
}
