package state

import (
	"runtime"
	"strings"
)

// CommandSet holds the argv prefixes used for filesystem operations. The
// operands are appended to the prefix.
type CommandSet struct {
	Copy   []string
	Remove []string
	MkDir  []string
	Open   []string
}

// DefaultCommands returns the command set for the running platform.
func DefaultCommands() CommandSet {
	return commandsFor(runtime.GOOS)
}

func commandsFor(goos string) CommandSet {
	switch {
	case strings.EqualFold(goos, "windows"):
		return CommandSet{
			Copy:   []string{"cmd", "/C", "copy"},
			Remove: []string{"cmd", "/C", "del"},
			MkDir:  []string{"cmd", "/C", "md"},
			Open:   []string{"cmd", "/C", "start", ""},
		}
	case strings.EqualFold(goos, "darwin"):
		return CommandSet{
			Copy:   []string{"cp", "-r"},
			Remove: []string{"rm", "-rf"},
			MkDir:  []string{"mkdir"},
			Open:   []string{"open"},
		}
	default:
		return CommandSet{
			Copy:   []string{"cp", "-r"},
			Remove: []string{"rm", "-rf"},
			MkDir:  []string{"mkdir"},
			Open:   []string{"xdg-open"},
		}
	}
}

// WithOverrides replaces the entries that have a non-empty override.
func (c CommandSet) WithOverrides(o CommandSet) CommandSet {
	if len(o.Copy) > 0 {
		c.Copy = o.Copy
	}
	if len(o.Remove) > 0 {
		c.Remove = o.Remove
	}
	if len(o.MkDir) > 0 {
		c.MkDir = o.MkDir
	}
	if len(o.Open) > 0 {
		c.Open = o.Open
	}
	return c
}

// argv joins prefix and operands without aliasing prefix.
func argv(prefix []string, operands ...string) (string, []string) {
	if len(prefix) == 0 {
		return "", nil
	}
	args := make([]string, 0, len(prefix)-1+len(operands))
	args = append(args, prefix[1:]...)
	args = append(args, operands...)
	return prefix[0], args
}
