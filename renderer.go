package framefx

import (
	"github.com/gogpu/framefx/internal/filter"
	"github.com/gogpu/framefx/internal/logging"
	"github.com/gogpu/framefx/internal/overlay"
	"github.com/gogpu/framefx/internal/palette"
	"github.com/gogpu/framefx/internal/scale"
	"github.com/gogpu/framefx/internal/scratch"
	"github.com/gogpu/framefx/internal/tone"
	"github.com/gogpu/framefx/settings"
)

// Renderer runs the filter chain for one goroutine. It owns every buffer
// the chain needs and reuses them from frame to frame.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	store *settings.Store

	buf  scratch.Set
	lut  tone.GammaLUT
	mask overlay.VignetteMask

	dst    Raster
	frames uint64
}

// NewRenderer creates a renderer that reads its parameters from store on
// every frame. A nil store renders with the defaults.
func NewRenderer(store *settings.Store) *Renderer {
	if store == nil {
		store = settings.New(settings.WithPath(""))
	}
	return &Renderer{store: store}
}

// Settings returns the store the renderer reads.
func (r *Renderer) Settings() *settings.Store {
	return r.store
}

// Frames returns how many frames were rendered.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Render scales src to destW x destH and applies the configured effects in
// order: color/tone, scale, bloom, palette/dither, scanlines, vignette.
//
// It returns nil if src is nil or empty or a destination dimension is not
// positive. src is never modified. The returned raster belongs to the
// renderer and stays valid until the next Render call.
func (r *Renderer) Render(src *Raster, destW, destH int, interp Interpolation) *Raster {
	if !src.Valid() || destW <= 0 || destH <= 0 {
		return nil
	}

	p := r.store.Snapshot()
	allocs := r.buf.Allocs()

	sw, sh := src.Width, src.Height
	pix := src.Pix[:sw*sh]

	// Tone runs before scaling, on a private copy of the source.
	if adj := tone.FromParams(&p); adj.Active() {
		work := r.buf.Source(sw * sh)
		copy(work, pix)
		tone.Apply(work, adj, &r.lut)
		pix = work
	}

	n := destW * destH
	dst := r.buf.Dest(n)
	scale.Scale(dst, destW, destH, pix, sw, sh, interp.mode())

	if p.Bloom {
		a, b, line := r.buf.Bloom(n, destH)
		bloom := filter.Bloom{
			Threshold: p.BloomThreshold,
			Intensity: p.BloomIntensity,
			Radius:    p.BloomRadius,
		}
		bloom.Apply(dst, destW, destH, filter.Buffers{A: a, B: b, Line: line})
	}

	if p.PaletteMode != settings.PaletteNone {
		var rows []float32
		if p.DitherMode == settings.FloydSteinberg && p.PaletteMode != settings.Fixed16 {
			rows = r.buf.ErrorRows(palette.ErrorRowsLen(destW))
		}
		palette.Apply(dst, destW, destH, p.PaletteMode, p.DitherMode, rows)
	}

	if p.Scanlines {
		overlay.Scanlines(dst, destW, destH, p.ScanlinesIntensity)
	}

	if p.Vignette && overlay.Vignette(dst, destW, destH, p.VignetteIntensity, &r.mask) {
		logging.Logger().Debug("framefx: vignette mask rebuilt",
			"width", destW, "height", destH)
	}

	if r.buf.Allocs() != allocs {
		logging.Logger().Debug("framefx: scratch buffers grown",
			"src", [2]int{sw, sh}, "dst", [2]int{destW, destH}, "bytes", r.buf.Bytes())
	}

	r.frames++
	r.dst = Raster{Width: destW, Height: destH, Pix: dst}
	return &r.dst
}

// Release drops the renderer's buffers. The next Render allocates them
// again.
func (r *Renderer) Release() {
	r.buf.Release()
	r.mask = overlay.VignetteMask{}
	r.dst = Raster{}
}

// Bytes returns the memory held by the renderer's working buffers.
func (r *Renderer) Bytes() int {
	return r.buf.Bytes()
}
