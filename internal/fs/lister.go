package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

// Lister reads directory entries for the panels.
type Lister struct {
	hide []glob.Glob
}

// NewLister compiles the hide patterns. Patterns match entry names, not paths.
func NewLister(hidePatterns ...string) (*Lister, error) {
	l := &Lister{}
	for _, pattern := range hidePatterns {
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", pattern, err)
		}
		l.hide = append(l.hide, g)
	}
	return l, nil
}

// List returns the entries of dir in directory order. The parent entry is
// not included.
func (l *Lister) List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	listed := make([]Entry, 0, len(entries))
	for _, e := range entries {
		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		if neverListed(fullPath) || l.hidden(rawName) {
			continue
		}

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		listed = append(listed, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			IsDir:    isDir,
		})
	}
	return listed, nil
}

func (l *Lister) hidden(name string) bool {
	if l == nil {
		return false
	}
	for _, g := range l.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}
