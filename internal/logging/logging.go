// Package logging configures the structured logger shared across the vlsm
// command. Debug records trace the planner's placement decisions and are only
// emitted when verbose logging is on.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the process-wide logger. It discards everything until Setup runs.
var Logger = slog.New(slog.DiscardHandler)

// Setup builds the process-wide logger and returns it. verbose lowers the
// level to debug, jsonOutput swaps the text handler for a JSON one, and w is
// the destination, defaulting to stderr when nil.
func Setup(verbose, jsonOutput bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	return Logger
}
