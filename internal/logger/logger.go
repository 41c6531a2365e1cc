// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// current is safe to use before Setup is called; it defaults to slog.Default().
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.Default())
}

// Setup configures the shared text logger and calls slog.SetDefault so the
// stdlib log package routes through the same handler. Verbose enables debug
// records with source locations.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	}))
	current.Store(l)
	slog.SetDefault(l)
	return l
}

// L returns the shared logger
func L() *slog.Logger {
	return current.Load()
}
