//go:build !windows

package app

import (
	"os"
	"syscall"
)

// contSignals are the signals that mean the process was resumed after a
// suspend and the screen must be restored.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
