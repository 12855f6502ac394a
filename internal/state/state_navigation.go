package state

import (
	"math"
	"path/filepath"
	"sort"

	fsutil "github.com/kk-code-lab/fir/internal/fs"
)

// DirectoryLister is the listing collaborator. fs.Lister satisfies it.
type DirectoryLister interface {
	List(dir string) ([]fsutil.Entry, error)
}

// scanDirectory lists dir, appends the parent entry and sorts directories
// before files, each group by full path.
func scanDirectory(lister DirectoryLister, dir string) ([]PanelItem, error) {
	entries, err := lister.List(dir)
	if err != nil {
		return nil, newError(PathResolutionFailure, "scan", dir, err)
	}

	items := make([]PanelItem, 0, len(entries)+1)
	for _, e := range entries {
		items = append(items, PanelItem{Path: e.FullPath, Name: e.Name, IsDir: e.IsDir})
	}
	items = append(items, parentItem())

	sortItems(items)
	return items, nil
}

func sortItems(items []PanelItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return items[i].Path < items[j].Path
	})
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", newError(PathResolutionFailure, "resolve", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newError(PathResolutionFailure, "resolve", path, err)
	}
	return resolved, nil
}

// Advance moves the selection down by times. A move that would wrap (or
// does not move at all) lands on the last item instead.
func (p *PanelData) Advance(times int, extend bool) {
	n := len(p.Items)
	if n == 0 {
		return
	}
	if extend {
		p.toggleMark()
	}
	candidate := saturatingAdd(p.Index, times) % n
	if candidate > p.Index {
		p.Index = candidate
	} else {
		p.Index = n - 1
	}
}

// Retreat moves the selection up by times, stopping at the first item.
func (p *PanelData) Retreat(times int, extend bool) {
	n := len(p.Items)
	if n == 0 {
		return
	}
	if extend {
		p.toggleMark()
	}
	p.Index = saturatingSub(p.Index, times) % n
}

func (p *PanelData) toggleMark() {
	if item := p.CurrentItem(); item != nil {
		item.Marked = !item.Marked
	}
}

// clampIndex keeps Index inside Items after a rescan.
func (p *PanelData) clampIndex() {
	switch {
	case len(p.Items) == 0 || p.Index < 0:
		p.Index = 0
	case p.Index >= len(p.Items):
		p.Index = len(p.Items) - 1
	}
}

func saturatingAdd(a, b int) int {
	if b < 0 {
		b = 0
	}
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func saturatingSub(a, b int) int {
	if b < 0 {
		b = 0
	}
	if b >= a {
		return 0
	}
	return a - b
}
