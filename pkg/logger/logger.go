// Package logger holds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

var Log = slog.Default()

// Init sets up JSON logging on stdout. Call once from main before any
// component logs.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}
