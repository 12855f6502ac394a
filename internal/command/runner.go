// Package command runs the external utilities behind copy, remove, mkdir and
// open. Calls are synchronous; callers bound them with a context.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for stderr after ctx kills the
// process. Children that inherited the pipe would otherwise hold it open.
const waitDelay = 500 * time.Millisecond

// Result is what a finished command reports back.
type Result struct {
	ExitCode int
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a program with arguments and waits for it to exit.
// A non-zero exit status is reported through Result, not as an error; an
// error means the program could not be run at all.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) (Result, error)
}

// OSRunner runs commands as child processes.
type OSRunner struct{}

// NewOSRunner returns a Runner backed by os/exec.
func NewOSRunner() OSRunner {
	return OSRunner{}
}

// Run starts program, captures its standard error and waits for it.
func (OSRunner) Run(ctx context.Context, program string, args ...string) (Result, error) {
	if program == "" {
		return Result{}, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, program, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	result := Result{Stderr: stderr.String()}
	if err == nil || errors.Is(err, exec.ErrWaitDelay) && ctx.Err() == nil {
		// ErrWaitDelay alone: the program exited 0 but left a child
		// holding stderr.
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s: %w", program, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, fmt.Errorf("cannot run %s: %w", program, err)
}

// RunFunc adapts a function to the Runner interface.
type RunFunc func(ctx context.Context, program string, args ...string) (Result, error)

// Run calls f.
func (f RunFunc) Run(ctx context.Context, program string, args ...string) (Result, error) {
	return f(ctx, program, args...)
}
