package state

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures raised while reducing actions.
type ErrorKind int

const (
	UnknownFailure ErrorKind = iota
	// OperationFailure: an external command failed or could not start.
	OperationFailure
	// PathResolutionFailure: a path could not be canonicalized or listed.
	PathResolutionFailure
	// WatcherSetupFailure: a directory watcher could not be created.
	WatcherSetupFailure
)

func (k ErrorKind) String() string {
	switch k {
	case OperationFailure:
		return "operation failure"
	case PathResolutionFailure:
		return "path resolution failure"
	case WatcherSetupFailure:
		return "watcher setup failure"
	default:
		return "unknown failure"
	}
}

// Error carries the kind, the operation and the path involved.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func newError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// NewWatcherSetupError wraps a watcher construction failure.
func NewWatcherSetupError(path string, err error) *Error {
	return newError(WatcherSetupFailure, "watch", path, err)
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or UnknownFailure.
func KindOf(err error) ErrorKind {
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return stateErr.Kind
	}
	return UnknownFailure
}
