package settings

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/framefx/internal/debounce"
	"github.com/gogpu/framefx/internal/logging"
)

// float32Value is an atomic float32.
type float32Value struct {
	bits atomic.Uint32
}

func (v *float32Value) Load() float32 { return math.Float32frombits(v.bits.Load()) }

func (v *float32Value) Store(f float32) { v.bits.Store(math.Float32bits(f)) }

// Store is the live filter configuration. All methods are safe for
// concurrent use.
type Store struct {
	colorMode   atomic.Int32
	paletteMode atomic.Int32
	ditherMode  atomic.Int32

	scanlines          atomic.Bool
	scanlinesIntensity float32Value

	vignette          atomic.Bool
	vignetteIntensity float32Value

	bloom          atomic.Bool
	bloomThreshold float32Value
	bloomIntensity float32Value
	bloomRadius    atomic.Int32

	brightness float32Value
	contrast   float32Value
	gamma      float32Value
	saturation float32Value

	// mu serializes writers. Readers never take it.
	mu sync.Mutex

	path     string
	redrawer Redrawer
	logger   *slog.Logger
	saver    *debounce.Task
}

// New creates a Store holding the defaults overlaid with whatever the
// settings file provides. A missing or unreadable file is not an error:
// the affected keys keep their defaults.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		path:     o.path,
		redrawer: o.redrawer,
		logger:   o.logger,
	}

	var dopts []debounce.Option
	if o.saveIdle > 0 {
		dopts = append(dopts, debounce.WithIdle(o.saveIdle))
	}
	if o.saveDelay > 0 {
		dopts = append(dopts, debounce.WithDelay(o.saveDelay))
	}
	if o.now != nil {
		dopts = append(dopts, debounce.WithClock(o.now))
	}
	s.saver = debounce.New(s.saveLogged, dopts...)

	p := Defaults()
	if s.path != "" {
		p = load(s.path, p, s.log())
	}
	s.store(p)
	return s
}

func (s *Store) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.Logger()
}

// Path returns the settings file path, or "" for an in-memory store.
func (s *Store) Path() string { return s.path }

// ColorMode returns the color reduction mode.
func (s *Store) ColorMode() ColorMode { return ColorMode(s.colorMode.Load()) }

// PaletteMode returns the palette quantization mode.
func (s *Store) PaletteMode() PaletteMode { return PaletteMode(s.paletteMode.Load()) }

// DitherMode returns the dither mode.
func (s *Store) DitherMode() DitherMode { return DitherMode(s.ditherMode.Load()) }

// Scanlines reports whether scanlines are enabled.
func (s *Store) Scanlines() bool { return s.scanlines.Load() }

// ScanlinesIntensity returns the scanline opacity in [0, 1].
func (s *Store) ScanlinesIntensity() float32 { return s.scanlinesIntensity.Load() }

// Vignette reports whether the vignette is enabled.
func (s *Store) Vignette() bool { return s.vignette.Load() }

// VignetteIntensity returns the vignette strength in [0, 1].
func (s *Store) VignetteIntensity() float32 { return s.vignetteIntensity.Load() }

// Bloom reports whether bloom is enabled.
func (s *Store) Bloom() bool { return s.bloom.Load() }

// BloomThreshold returns the bloom luminance threshold in [0, 1].
func (s *Store) BloomThreshold() float32 { return s.bloomThreshold.Load() }

// BloomIntensity returns the bloom opacity in [0, 2].
func (s *Store) BloomIntensity() float32 { return s.bloomIntensity.Load() }

// BloomRadius returns the bloom blur radius in [1, 5].
func (s *Store) BloomRadius() int { return int(s.bloomRadius.Load()) }

// Brightness returns the brightness factor in [0.2, 2].
func (s *Store) Brightness() float32 { return s.brightness.Load() }

// Contrast returns the contrast factor in [0.2, 2].
func (s *Store) Contrast() float32 { return s.contrast.Load() }

// Gamma returns the gamma in [0.2, 3].
func (s *Store) Gamma() float32 { return s.gamma.Load() }

// Saturation returns the saturation factor in [0, 2].
func (s *Store) Saturation() float32 { return s.saturation.Load() }

// SetColorMode sets the color mode. Unknown modes are ignored.
func (s *Store) SetColorMode(m ColorMode) {
	if !m.Valid() {
		return
	}
	s.update(func() { s.colorMode.Store(int32(m)) })
}

// SetPaletteMode sets the palette mode. Unknown modes are ignored.
func (s *Store) SetPaletteMode(m PaletteMode) {
	if !m.Valid() {
		return
	}
	s.update(func() { s.paletteMode.Store(int32(m)) })
}

// SetDitherMode sets the dither mode. Unknown modes are ignored.
func (s *Store) SetDitherMode(m DitherMode) {
	if !m.Valid() {
		return
	}
	s.update(func() { s.ditherMode.Store(int32(m)) })
}

// SetScanlines enables or disables scanlines.
func (s *Store) SetScanlines(on bool) {
	s.update(func() { s.scanlines.Store(on) })
}

// SetScanlinesIntensity sets the scanline opacity, clamped to [0, 1].
func (s *Store) SetScanlinesIntensity(v float32) {
	s.update(func() { s.scanlinesIntensity.Store(clamp(v, MinIntensity, MaxIntensity)) })
}

// SetVignette enables or disables the vignette.
func (s *Store) SetVignette(on bool) {
	s.update(func() { s.vignette.Store(on) })
}

// SetVignetteIntensity sets the vignette strength, clamped to [0, 1].
func (s *Store) SetVignetteIntensity(v float32) {
	s.update(func() { s.vignetteIntensity.Store(clamp(v, MinIntensity, MaxIntensity)) })
}

// SetBloom enables or disables bloom.
func (s *Store) SetBloom(on bool) {
	s.update(func() { s.bloom.Store(on) })
}

// SetBloomThreshold sets the bloom threshold, clamped to [0, 1].
func (s *Store) SetBloomThreshold(v float32) {
	s.update(func() { s.bloomThreshold.Store(clamp(v, MinIntensity, MaxIntensity)) })
}

// SetBloomIntensity sets the bloom opacity, clamped to [0, 2].
func (s *Store) SetBloomIntensity(v float32) {
	s.update(func() { s.bloomIntensity.Store(clamp(v, MinIntensity, MaxBloomIntensity)) })
}

// SetBloomRadius sets the bloom radius, clamped to [1, 5].
func (s *Store) SetBloomRadius(r int) {
	s.update(func() { s.bloomRadius.Store(int32(clampRadius(r))) })
}

// SetBrightness sets the brightness factor, clamped to [0.2, 2].
func (s *Store) SetBrightness(v float32) {
	s.update(func() { s.brightness.Store(clamp(v, MinBrightness, MaxBrightness)) })
}

// SetContrast sets the contrast factor, clamped to [0.2, 2].
func (s *Store) SetContrast(v float32) {
	s.update(func() { s.contrast.Store(clamp(v, MinContrast, MaxContrast)) })
}

// SetGamma sets the gamma, clamped to [0.2, 3].
func (s *Store) SetGamma(v float32) {
	s.update(func() { s.gamma.Store(clamp(v, MinGamma, MaxGamma)) })
}

// SetSaturation sets the saturation factor, clamped to [0, 2].
func (s *Store) SetSaturation(v float32) {
	s.update(func() { s.saturation.Store(clamp(v, MinSaturation, MaxSaturation)) })
}

// update runs set under the writer lock and schedules a save.
func (s *Store) update(set func()) {
	s.mu.Lock()
	set()
	s.mu.Unlock()
	s.markDirty()
}

func (s *Store) markDirty() {
	if s.path == "" {
		return
	}
	s.saver.Trigger()
}

// Snapshot returns the current parameters. Each field is read atomically;
// fields changed concurrently may come from different updates.
func (s *Store) Snapshot() Params {
	return Params{
		ColorMode:          s.ColorMode(),
		PaletteMode:        s.PaletteMode(),
		DitherMode:         s.DitherMode(),
		Scanlines:          s.Scanlines(),
		ScanlinesIntensity: s.ScanlinesIntensity(),
		Vignette:           s.Vignette(),
		VignetteIntensity:  s.VignetteIntensity(),
		Bloom:              s.Bloom(),
		BloomThreshold:     s.BloomThreshold(),
		BloomIntensity:     s.BloomIntensity(),
		BloomRadius:        s.BloomRadius(),
		Brightness:         s.Brightness(),
		Contrast:           s.Contrast(),
		Gamma:              s.Gamma(),
		Saturation:         s.Saturation(),
	}
}

// HasActiveFilters reports whether any effect is enabled or any tone
// parameter is away from neutral. A dither mode alone does not count.
func (s *Store) HasActiveFilters() bool {
	p := s.Snapshot()
	return p.HasActiveFilters()
}

// Apply replaces every parameter with p, clamped, schedules a save and
// requests a redraw once. Unknown enum values in p keep the current value.
func (s *Store) Apply(p Params) {
	s.mu.Lock()
	s.store(p.Clamp(s.Snapshot()))
	s.mu.Unlock()

	s.markDirty()
	s.redraw()
}

// ResetToDefaults restores the factory configuration, writes it to the
// settings file synchronously, then requests a redraw exactly once.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	s.store(Defaults())
	s.mu.Unlock()

	if s.path != "" {
		s.saver.Run()
	}
	s.log().Info("settings: reset to defaults")
	s.redraw()
}

func (s *Store) redraw() {
	if s.redrawer != nil {
		s.redrawer.Redraw()
	}
}

// store writes every field of p. Callers hold mu or own s exclusively.
func (s *Store) store(p Params) {
	p = p.Clamp(Defaults())
	s.colorMode.Store(int32(p.ColorMode))
	s.paletteMode.Store(int32(p.PaletteMode))
	s.ditherMode.Store(int32(p.DitherMode))
	s.scanlines.Store(p.Scanlines)
	s.scanlinesIntensity.Store(p.ScanlinesIntensity)
	s.vignette.Store(p.Vignette)
	s.vignetteIntensity.Store(p.VignetteIntensity)
	s.bloom.Store(p.Bloom)
	s.bloomThreshold.Store(p.BloomThreshold)
	s.bloomIntensity.Store(p.BloomIntensity)
	s.bloomRadius.Store(int32(p.BloomRadius))
	s.brightness.Store(p.Brightness)
	s.contrast.Store(p.Contrast)
	s.gamma.Store(p.Gamma)
	s.saturation.Store(p.Saturation)
}

// Save writes the current configuration to the settings file now and
// returns any error. In-memory stores return nil.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	return save(s.path, s.Snapshot())
}

// saveLogged is the debounced save. Errors are logged and dropped.
func (s *Store) saveLogged() {
	if err := s.Save(); err != nil {
		s.log().Warn("settings: save failed", "path", s.path, "err", err)
		return
	}
	s.log().Debug("settings: saved", "path", s.path)
}

// Flush writes a pending debounced save synchronously.
func (s *Store) Flush() {
	s.saver.Flush()
}

// Close flushes any pending save and stops scheduling new ones. Setters
// keep working after Close but no longer persist.
func (s *Store) Close() {
	s.saver.Flush()
	s.saver.Stop()
}
