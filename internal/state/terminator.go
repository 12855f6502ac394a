package state

import (
	"sync"
	"sync/atomic"
)

// Interrupted tells why the store stopped.
type Interrupted int32

const (
	NotInterrupted Interrupted = iota
	UserInterrupt
	OSInterrupt
)

func (i Interrupted) String() string {
	switch i {
	case UserInterrupt:
		return "user interrupt"
	case OSInterrupt:
		return "os interrupt"
	default:
		return "running"
	}
}

// Terminator is a one-shot shutdown signal shared by the store, the UI and
// the signal handler. The first Terminate wins.
type Terminator struct {
	once   sync.Once
	done   chan struct{}
	reason atomic.Int32
}

func NewTerminator() *Terminator {
	return &Terminator{done: make(chan struct{})}
}

// Terminate records reason and closes Done. It reports whether this call
// was the one that terminated.
func (t *Terminator) Terminate(reason Interrupted) bool {
	fired := false
	t.once.Do(func() {
		t.reason.Store(int32(reason))
		close(t.done)
		fired = true
	})
	return fired
}

func (t *Terminator) Done() <-chan struct{} {
	return t.done
}

// Reason returns NotInterrupted until Terminate has been called.
func (t *Terminator) Reason() Interrupted {
	return Interrupted(t.reason.Load())
}

func (t *Terminator) Terminated() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
