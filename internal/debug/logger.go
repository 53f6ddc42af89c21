// Package debug provides the process wide debug logger. Logging is off
// by default; the CLI enables it once at startup with --debug.
package debug

import (
	"log/slog"
	"os"
	"sync"
)

var (
	logger = slog.New(slog.DiscardHandler)
	mu     sync.RWMutex
)

// Init routes debug logs to stderr when enable is set and discards
// them otherwise.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	if enable {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.DiscardHandler)
	}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Warn(msg, args...)
}
