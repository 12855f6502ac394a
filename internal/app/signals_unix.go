//go:build !windows

package app

import (
	"os"
	"syscall"
)

func terminateSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}
}

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func drainPendingInput() {}
