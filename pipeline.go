package framefx

import (
	"github.com/gogpu/framefx/internal/scratch"
	"github.com/gogpu/framefx/settings"
)

// Pipeline binds a settings store to the renderers that read it.
//
// Pipeline is safe for concurrent use. The renderers it hands out are not:
// each belongs to one goroutine.
type Pipeline struct {
	store   *settings.Store
	workers *scratch.Pool[int, *Renderer]
}

// New creates a pipeline.
//
// Example:
//
//	fx := framefx.New(framefx.WithSettings(store))
//	out := fx.Worker(0).Render(frame, 480, 640, framefx.InterpNearest)
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = settings.New(settings.WithPath(""))
	}

	p := &Pipeline{store: o.store}
	p.workers = scratch.NewPool(o.workerCapacity, scratch.IntHasher, func(int) *Renderer {
		return NewRenderer(p.store)
	})
	return p
}

// Settings returns the pipeline's configuration store.
func (p *Pipeline) Settings() *settings.Store {
	return p.store
}

// NewRenderer creates a renderer bound to the pipeline settings. The caller
// owns it.
func (p *Pipeline) NewRenderer() *Renderer {
	return NewRenderer(p.store)
}

// Worker returns the renderer cached for id, creating it on first use.
// The same id yields the same renderer until it is released or evicted,
// and a cache hit does not allocate. Use one id per rendering goroutine.
func (p *Pipeline) Worker(id int) *Renderer {
	return p.workers.Get(id)
}

// ReleaseWorker forgets the renderer cached for id. Its buffers are
// reclaimed once no goroutine holds it; a later Worker(id) starts fresh.
func (p *Pipeline) ReleaseWorker(id int) {
	if !p.workers.Delete(id) {
		return
	}
	Logger().Debug("framefx: worker released", "id", id)
}

// Stats describes the worker cache.
type Stats struct {
	// Workers is the number of cached renderers.
	Workers int

	// Capacity is the maximum number of cached renderers.
	Capacity int

	// Hits and Misses count Worker calls that found or created a renderer.
	Hits   uint64
	Misses uint64

	// Evictions counts renderers dropped to make room.
	Evictions uint64

	// HitRate is Hits / (Hits + Misses), or 0 before the first call.
	HitRate float64
}

// Stats returns worker cache statistics.
func (p *Pipeline) Stats() Stats {
	st := p.workers.Stats()
	return Stats{
		Workers:   st.Len,
		Capacity:  st.Capacity,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		HitRate:   st.HitRate,
	}
}
