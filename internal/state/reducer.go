package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kk-code-lab/fir/internal/command"
	"github.com/kk-code-lab/fir/internal/logging"
)

const (
	mkDirPrompt = "Create directory:"
	rmPrompt    = "Do you want to remove file? "
)

// StateReducer applies actions to a State. Filesystem side effects go
// through the lister and the command runner.
type StateReducer struct {
	lister   DirectoryLister
	runner   command.Runner
	commands CommandSet
	timeout  time.Duration
}

// ReducerOption customizes a StateReducer.
type ReducerOption func(*StateReducer)

// WithCommands replaces the platform command set.
func WithCommands(c CommandSet) ReducerOption {
	return func(r *StateReducer) {
		r.commands = c
	}
}

// WithCommandTimeout bounds every external command. Zero disables the bound.
func WithCommandTimeout(d time.Duration) ReducerOption {
	return func(r *StateReducer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewStateReducer(lister DirectoryLister, runner command.Runner, opts ...ReducerOption) *StateReducer {
	r := &StateReducer{
		lister:   lister,
		runner:   runner,
		commands: DefaultCommands(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce applies exactly one action. A returned error leaves the state as it
// was before the failing step; the caller decides how to surface it.
func (r *StateReducer) Reduce(state *State, action Action) (*State, error) {
	switch a := action.(type) {

	// ===== PANELS =====

	case SwitchTabsAction:
		state.Left.Active = !state.Left.Active
		state.Right.Active = !state.Right.Active
		return state, nil

	case ReloadAction:
		return state, r.reload(state, a.Panel)

	case FileItemUpAction:
		state.ActivePanel().Retreat(a.Count, a.Extend)
		return state, nil

	case FileItemDownAction:
		state.ActivePanel().Advance(a.Count, a.Extend)
		return state, nil

	case CdAction:
		panel := state.ActivePanel()
		target := a.Dir
		if !filepath.IsAbs(target) {
			target = filepath.Join(panel.Path, target)
		}
		path, err := canonicalPath(target)
		if err != nil {
			return state, err
		}
		items, err := scanDirectory(r.lister, path)
		if err != nil {
			return state, err
		}
		panel.Path = path
		panel.Index = 0
		panel.Items = items
		return state, nil

	case OpenAction:
		r.runOperation(state, "open", r.commands.Open, a.Path)
		return state, nil

	case CopyAction:
		r.runOperation(state, "copy", r.commands.Copy, a.From, a.To)
		return state, errors.Join(r.reload(state, PanelLeft), r.reload(state, PanelRight))

	// ===== POPUP =====

	case MkDirInputAction:
		state.showPopup(PopupInput, mkDirPrompt, MkDirAction{})
		state.PopupInput = ""
		return state, nil

	case SetInputAction:
		state.PopupInput = a.Text
		return state, nil

	case MkDirAction:
		state.PopupNextAction = nil
		target := filepath.Join(state.ActivePanel().Path, state.PopupInput)
		if r.runOperation(state, "mkdir", r.commands.MkDir, target) {
			state.clearPopup()
		}
		return state, nil

	case RmYesNoAction:
		state.showPopup(PopupYesNo, rmPrompt+a.Path, RmAction{Path: a.Path})
		return state, nil

	case RmAction:
		state.PopupNextAction = nil
		if r.runOperation(state, "remove", r.commands.Remove, a.Path) {
			state.clearPopup()
		}
		return state, nil

	case CancelAction:
		state.clearPopup()
		return state, nil

	// ===== EDITOR =====

	case EditAction:
		state.EditorFile = a.Path
		state.EditorModified = false
		return state, nil

	case EditorModifiedAction:
		state.EditorModified = true
		return state, nil

	case EditorResetModifiedAction:
		state.EditorModified = false
		return state, nil

	case EditorExitAction:
		state.EditorFile = ""
		state.EditorModified = false
		return state, nil

	case ExitAction:
		// Termination is owned by the store loop.
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) reload(state *State, pos PanelPosition) error {
	panel := state.Panel(pos)
	items, err := scanDirectory(r.lister, panel.Path)
	if err != nil {
		return err
	}
	panel.Items = items
	panel.clampIndex()
	return nil
}

// runOperation runs an external command and raises an error popup when it
// fails. It reports whether the command succeeded.
func (r *StateReducer) runOperation(state *State, op string, prefix []string, operands ...string) bool {
	log := logging.For("reducer").WithField("op", op)

	program, args := argv(prefix, operands...)
	if program == "" {
		state.showError(fmt.Sprintf("no command configured for %s", op))
		return false
	}

	ctx, cancel := r.commandContext()
	defer cancel()

	result, err := r.runner.Run(ctx, program, args...)
	if err != nil {
		path := ""
		if len(operands) > 0 {
			path = operands[0]
		}
		opErr := newError(OperationFailure, op, path, err)
		log.WithError(err).Warn("command did not run")
		state.showError(opErr.Error())
		return false
	}
	if !result.Success() {
		msg := strings.TrimRight(result.Stderr, "\r\n")
		if msg == "" {
			msg = fmt.Sprintf("%s failed with exit code %d", op, result.ExitCode)
		}
		log.WithField("exit_code", result.ExitCode).Debug("command failed")
		state.showError(msg)
		return false
	}
	return true
}

func (r *StateReducer) commandContext() (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(context.Background(), r.timeout)
	}
	return context.WithCancel(context.Background())
}
