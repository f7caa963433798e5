package slog

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text logger writing to w when verbose is set and a
// logger that discards everything otherwise. Every record carries a run
// attribute that is unique per invocation.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("run", uuid.NewString())
}
