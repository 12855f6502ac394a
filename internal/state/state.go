package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/fir/internal/fs"
)

// PanelPosition names one of the two panels.
type PanelPosition int

const (
	PanelLeft PanelPosition = iota
	PanelRight
)

func (p PanelPosition) String() string {
	if p == PanelRight {
		return "right"
	}
	return "left"
}

// Opposite returns the other panel.
func (p PanelPosition) Opposite() PanelPosition {
	if p == PanelRight {
		return PanelLeft
	}
	return PanelRight
}

// PopupType selects how the popup is rendered and confirmed.
type PopupType int

const (
	PopupError PopupType = iota
	PopupInput
	PopupYesNo
)

func (t PopupType) String() string {
	switch t {
	case PopupInput:
		return "input"
	case PopupYesNo:
		return "yes-no"
	default:
		return "error"
	}
}

// PopupPhase is the popup confirmation state derived from State.
type PopupPhase int

const (
	PhaseIdle PopupPhase = iota
	PhasePendingInput
	PhasePendingConfirm
	PhaseNotice
)

// ===== STATE DEFINITIONS =====

// PanelItem is one directory entry shown in a panel.
type PanelItem struct {
	Path   string // full path; ".." for the parent entry
	Name   string // display name, NFC normalized
	IsDir  bool
	Marked bool
}

// parentItem is the synthetic entry leading one level up.
func parentItem() PanelItem {
	return PanelItem{Path: fsutil.ParentName, Name: fsutil.ParentName, IsDir: true}
}

// IsParent reports whether the item is the synthetic parent entry.
func (i PanelItem) IsParent() bool {
	return i.Path == fsutil.ParentName
}

// PanelData is one panel's listing.
type PanelData struct {
	Active bool
	Path   string
	Index  int
	Items  []PanelItem // never empty once scanned
}

// CurrentItem returns the selected item, or nil when the index is out of range.
func (p *PanelData) CurrentItem() *PanelItem {
	if p.Index < 0 || p.Index >= len(p.Items) {
		return nil
	}
	return &p.Items[p.Index]
}

// ItemPath resolves item to a filesystem path inside the panel directory.
func (p *PanelData) ItemPath(item PanelItem) string {
	if item.IsParent() {
		return filepath.Join(p.Path, fsutil.ParentName)
	}
	return item.Path
}

// MarkedItems returns the items whose mark is set.
func (p *PanelData) MarkedItems() []PanelItem {
	var marked []PanelItem
	for _, item := range p.Items {
		if item.Marked {
			marked = append(marked, item)
		}
	}
	return marked
}

func (p PanelData) clone() PanelData {
	p.Items = append([]PanelItem(nil), p.Items...)
	return p
}

// State is the single source of truth. Only the store goroutine mutates it;
// everything else sees clones.
type State struct {
	Left  PanelData
	Right PanelData

	// Editor: empty EditorFile means the main page is showing.
	EditorFile     string
	EditorModified bool

	// Popup: empty PopupMsg means no popup.
	PopupMsg        string
	PopupType       PopupType
	PopupNextAction Action
	PopupInput      string
}

// NewState scans the start directories and builds the initial state with
// the left panel active.
func NewState(leftDir, rightDir string, lister DirectoryLister) (*State, error) {
	left, err := openPanel(lister, leftDir)
	if err != nil {
		return nil, err
	}
	right := left.clone()
	if rightDir != leftDir {
		if right, err = openPanel(lister, rightDir); err != nil {
			return nil, err
		}
	}
	left.Active = true
	return &State{Left: left, Right: right}, nil
}

func openPanel(lister DirectoryLister, dir string) (PanelData, error) {
	path, err := canonicalPath(dir)
	if err != nil {
		return PanelData{}, err
	}
	items, err := scanDirectory(lister, path)
	if err != nil {
		return PanelData{}, err
	}
	return PanelData{Path: path, Items: items}, nil
}

// Clone returns a deep copy suitable for publishing as a snapshot.
func (s *State) Clone() State {
	c := *s
	c.Left = s.Left.clone()
	c.Right = s.Right.clone()
	return c
}

// ActivePosition returns which panel is active.
func (s *State) ActivePosition() PanelPosition {
	if s.Right.Active {
		return PanelRight
	}
	return PanelLeft
}

// Panel returns the panel at pos.
func (s *State) Panel(pos PanelPosition) *PanelData {
	if pos == PanelRight {
		return &s.Right
	}
	return &s.Left
}

// ActivePanel returns the active panel.
func (s *State) ActivePanel() *PanelData {
	return s.Panel(s.ActivePosition())
}

// InactivePanel returns the panel that is not active.
func (s *State) InactivePanel() *PanelData {
	return s.Panel(s.ActivePosition().Opposite())
}

// PopupActive reports whether a popup is showing.
func (s *State) PopupActive() bool {
	return s.PopupMsg != ""
}

// EditorOpen reports whether the editor page is showing.
func (s *State) EditorOpen() bool {
	return s.EditorFile != ""
}

// PopupPhase derives the confirmation phase from the popup fields.
func (s *State) PopupPhase() PopupPhase {
	if !s.PopupActive() {
		return PhaseIdle
	}
	switch {
	case s.PopupType == PopupInput && s.PopupNextAction != nil:
		return PhasePendingInput
	case s.PopupType == PopupYesNo && s.PopupNextAction != nil:
		return PhasePendingConfirm
	default:
		return PhaseNotice
	}
}

func (s *State) showPopup(kind PopupType, msg string, next Action) {
	s.PopupMsg = msg
	s.PopupType = kind
	s.PopupNextAction = next
}

// showError raises a notice popup. Error popups never carry a pending action.
func (s *State) showError(msg string) {
	if msg == "" {
		msg = "unknown error"
	}
	s.showPopup(PopupError, msg, nil)
}

func (s *State) clearPopup() {
	s.PopupMsg = ""
	s.PopupNextAction = nil
}
