package state

// Action is the base interface for all state mutations. The set of
// implementations below is closed: UI components and watchers depend on it
// structurally.
type Action interface {
	isAction()
}

// ===== PANEL ACTIONS =====

type SwitchTabsAction struct{}

type ReloadAction struct {
	Panel PanelPosition
}

// FileItemUpAction moves the active selection up by Count. With Extend the
// item under the cursor has its mark toggled before moving.
type FileItemUpAction struct {
	Count  int
	Extend bool
}

type FileItemDownAction struct {
	Count  int
	Extend bool
}

// CdAction enters Dir relative to the active panel's path.
type CdAction struct {
	Dir string
}

type OpenAction struct {
	Path string
}

type CopyAction struct {
	From string
	To   string
}

// ===== POPUP ACTIONS =====

type SetInputAction struct {
	Text string
}

type MkDirInputAction struct{}
type MkDirAction struct{}

type RmYesNoAction struct {
	Path string
}

type RmAction struct {
	Path string
}

type CancelAction struct{}

// ===== EDITOR ACTIONS =====

type EditAction struct {
	Path string
}

type EditorModifiedAction struct{}
type EditorResetModifiedAction struct{}
type EditorExitAction struct{}

// ===== APPLICATION ACTIONS =====

type ExitAction struct{}

func (SwitchTabsAction) isAction()          {}
func (ReloadAction) isAction()              {}
func (FileItemUpAction) isAction()          {}
func (FileItemDownAction) isAction()        {}
func (CdAction) isAction()                  {}
func (OpenAction) isAction()                {}
func (CopyAction) isAction()                {}
func (SetInputAction) isAction()            {}
func (MkDirInputAction) isAction()          {}
func (MkDirAction) isAction()               {}
func (RmYesNoAction) isAction()             {}
func (RmAction) isAction()                  {}
func (CancelAction) isAction()              {}
func (EditAction) isAction()                {}
func (EditorModifiedAction) isAction()      {}
func (EditorResetModifiedAction) isAction() {}
func (EditorExitAction) isAction()          {}
func (ExitAction) isAction()                {}
