package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileName is the settings file name inside the config directory.
const FileName = "filters.toml"

// Redrawer is notified when the whole configuration changed at once and the
// view should repaint without waiting for the next frame request.
type Redrawer interface {
	Redraw()
}

// RedrawFunc adapts a plain function to Redrawer.
type RedrawFunc func()

// Redraw calls f.
func (f RedrawFunc) Redraw() { f() }

// options holds optional configuration for a Store.
type options struct {
	path      string
	redrawer  Redrawer
	logger    *slog.Logger
	saveDelay time.Duration
	saveIdle  time.Duration
	now       func() time.Time
}

func defaultOptions() options {
	return options{
		path: DefaultPath(),
	}
}

// Option configures a Store.
type Option func(*options)

// WithPath sets the settings file. An empty path keeps the store in memory
// only: nothing is loaded and saves are skipped.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithRedrawer sets the receiver of redraw requests.
func WithRedrawer(r Redrawer) Option {
	return func(o *options) {
		o.redrawer = r
	}
}

// WithLogger sets the logger used by the store. Without it the store logs
// through the framefx-wide logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSaveDelay overrides the debounce timings: a change arriving more
// than idle after the previous save is written at once, otherwise it is
// written after delay.
func WithSaveDelay(idle, delay time.Duration) Option {
	return func(o *options) {
		o.saveIdle = idle
		o.saveDelay = delay
	}
}

// WithClock replaces time.Now for the save debouncer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// DefaultPath returns the per-user settings file location, or FileName in
// the working directory when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return FileName
	}
	return filepath.Join(dir, "framefx", FileName)
}
