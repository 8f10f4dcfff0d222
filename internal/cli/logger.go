package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. quiet keeps errors only,
// verbose enables debug records; quiet wins when both are set.
func NewLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
