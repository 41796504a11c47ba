package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide JSON logger writing to stdout. The server
// swaps in a fan-out that also persists errors to system_logs once the
// database is connected.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
