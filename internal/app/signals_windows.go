//go:build windows

package app

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

func terminateSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

func contSignals() []os.Signal {
	return nil
}

// drainPendingInput drops keys typed before the screen was ready so they do
// not reach the first panel.
func drainPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	_ = windows.FlushConsoleInputBuffer(handle)
}
