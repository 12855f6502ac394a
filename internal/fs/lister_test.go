package fs

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestListerListsEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	lister, err := NewLister()
	if err != nil {
		t.Fatalf("NewLister: %v", err)
	}
	entries, err := lister.List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	if entries[0].Name != "a.txt" || entries[0].IsDir {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Name != "sub" || !entries[1].IsDir {
		t.Errorf("unexpected second entry %+v", entries[1])
	}
	if entries[1].FullPath != filepath.Join(dir, "sub") {
		t.Errorf("expected full path %s, got %s", filepath.Join(dir, "sub"), entries[1].FullPath)
	}
}

func TestListerSymlinkToDirectoryIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	lister, _ := NewLister()
	entries, err := lister.List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range entries {
		if e.Name == "link" {
			if !e.IsDir {
				t.Fatalf("expected link to be a directory symlink, got %+v", e)
			}
			return
		}
	}
	t.Fatalf("link not listed")
}

func TestListerNormalizesNamesButKeepsPath(t *testing.T) {
	dir := t.TempDir()
	decomposed := "cafe\u0301.txt"
	if err := os.WriteFile(filepath.Join(dir, decomposed), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lister, _ := NewLister()
	entries, err := lister.List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %+v", entries)
	}
	if entries[0].Name != "caf\u00e9.txt" {
		t.Errorf("expected NFC name, got %q", entries[0].Name)
	}
	// Some filesystems normalize on write; the path must name the file as stored.
	if _, err := os.Stat(entries[0].FullPath); err != nil {
		t.Errorf("full path does not resolve: %v", err)
	}
}

func TestListerHidePatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"keep.go", "drop.swp", "other.swp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	lister, err := NewLister("*.swp")
	if err != nil {
		t.Fatalf("NewLister: %v", err)
	}
	entries, err := lister.List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "keep.go" {
		t.Fatalf("expected only keep.go, got %+v", entries)
	}
}

func TestListerMissingDirectory(t *testing.T) {
	lister, _ := NewLister()
	if _, err := lister.List(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
