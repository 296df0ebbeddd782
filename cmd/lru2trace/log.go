package main

import (
	"io"
	"log/slog"
)

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	if debug {
		level.Set(slog.LevelDebug)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(slog.String("module", "lru2trace"))
}
