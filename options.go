package framefx

import "github.com/gogpu/framefx/settings"

// Option configures a Pipeline during creation.
//
// Example:
//
//	// In-memory defaults
//	fx := framefx.New()
//
//	// Shared, persisted settings
//	store := settings.New(settings.WithPath(path))
//	fx := framefx.New(framefx.WithSettings(store))
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	store          *settings.Store
	workerCapacity int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		store:          nil, // in-memory store created by New
		workerCapacity: 0,   // scratch.DefaultCapacity
	}
}

// WithSettings sets the configuration store read on every frame.
// Without it the pipeline uses a private in-memory store with default
// settings.
func WithSettings(s *settings.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithWorkerCapacity bounds how many renderers Pipeline.Worker keeps per
// cache shard before it forgets the least recently used one.
func WithWorkerCapacity(n int) Option {
	return func(o *options) {
		o.workerCapacity = n
	}
}
