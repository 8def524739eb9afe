// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 256

// IsATTY reports whether the given file descriptor refers to a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifySignals returns a channel on which the given signals are delivered.
func NotifySignals(sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(ch, sigs...)
	return ch
}
