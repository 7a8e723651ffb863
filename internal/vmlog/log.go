// Package vmlog wires the VM's --debug trace output through log/slog,
// the way the rest of this module's ambient logging is done.
package vmlog

import (
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to stderr at the given
// level, suitable for attaching to a run's lifetime.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
