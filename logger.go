package framefx

import (
	"log/slog"

	"github.com/gogpu/framefx/internal/logging"
)

// SetLogger configures the logger for framefx and all its sub-packages,
// including settings stores created without settings.WithLogger.
// By default, framefx produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by framefx:
//   - [slog.LevelDebug]: scratch buffer growth, vignette mask rebuilds, saves
//   - [slog.LevelInfo]: settings loaded or reset
//   - [slog.LevelWarn]: dropped saves, unreadable settings entries
//
// Example:
//
//	framefx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by framefx.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
