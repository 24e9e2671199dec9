package settings

import "github.com/chewxy/math32"

// Parameter ranges. Setters clamp into these bounds.
const (
	MinIntensity = 0
	MaxIntensity = 1

	MaxBloomIntensity = 2

	MinBloomRadius = 1
	MaxBloomRadius = 5

	MinBrightness = 0.2
	MaxBrightness = 2
	MinContrast   = 0.2
	MaxContrast   = 2
	MinGamma      = 0.2
	MaxGamma      = 3
	MinSaturation = 0
	MaxSaturation = 2
)

// Default values.
const (
	DefaultScanlinesIntensity = 0.12
	DefaultVignetteIntensity  = 0.2
	DefaultBloomThreshold     = 0.7
	DefaultBloomIntensity     = 0.6
	DefaultBloomRadius        = 2
)

// neutralEpsilon is how far a tone parameter may drift from 1 and still
// count as neutral.
const neutralEpsilon = 0.001

// Params is a plain snapshot of every filter parameter.
type Params struct {
	ColorMode   ColorMode
	PaletteMode PaletteMode
	DitherMode  DitherMode

	Scanlines          bool
	ScanlinesIntensity float32

	Vignette          bool
	VignetteIntensity float32

	Bloom          bool
	BloomThreshold float32
	BloomIntensity float32
	BloomRadius    int

	Brightness float32
	Contrast   float32
	Gamma      float32
	Saturation float32
}

// Defaults returns the factory configuration: every effect off, tone
// neutral.
func Defaults() Params {
	return Params{
		ColorMode:          FullColor,
		PaletteMode:        PaletteNone,
		DitherMode:         DitherNone,
		ScanlinesIntensity: DefaultScanlinesIntensity,
		VignetteIntensity:  DefaultVignetteIntensity,
		BloomThreshold:     DefaultBloomThreshold,
		BloomIntensity:     DefaultBloomIntensity,
		BloomRadius:        DefaultBloomRadius,
		Brightness:         1,
		Contrast:           1,
		Gamma:              1,
		Saturation:         1,
	}
}

// Clamp returns p with every numeric field forced into range. Unknown enum
// values are replaced by the matching field of fallback.
func (p Params) Clamp(fallback Params) Params {
	if !p.ColorMode.Valid() {
		p.ColorMode = fallback.ColorMode
	}
	if !p.PaletteMode.Valid() {
		p.PaletteMode = fallback.PaletteMode
	}
	if !p.DitherMode.Valid() {
		p.DitherMode = fallback.DitherMode
	}
	p.ScanlinesIntensity = clamp(p.ScanlinesIntensity, MinIntensity, MaxIntensity)
	p.VignetteIntensity = clamp(p.VignetteIntensity, MinIntensity, MaxIntensity)
	p.BloomThreshold = clamp(p.BloomThreshold, MinIntensity, MaxIntensity)
	p.BloomIntensity = clamp(p.BloomIntensity, MinIntensity, MaxBloomIntensity)
	p.BloomRadius = clampRadius(p.BloomRadius)
	p.Brightness = clamp(p.Brightness, MinBrightness, MaxBrightness)
	p.Contrast = clamp(p.Contrast, MinContrast, MaxContrast)
	p.Gamma = clamp(p.Gamma, MinGamma, MaxGamma)
	p.Saturation = clamp(p.Saturation, MinSaturation, MaxSaturation)
	return p
}

// HasActiveFilters reports whether rendering with p differs from a plain
// scale. A dither mode on its own does nothing and does not count.
func (p *Params) HasActiveFilters() bool {
	return p.ColorMode != FullColor ||
		p.PaletteMode != PaletteNone ||
		p.Scanlines || p.Vignette || p.Bloom ||
		!neutral(p.Brightness) || !neutral(p.Contrast) ||
		!neutral(p.Gamma) || !neutral(p.Saturation)
}

func neutral(v float32) bool {
	return math32.Abs(v-1) <= neutralEpsilon
}

// clamp forces v into [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float32) float32 {
	if math32.IsNaN(v) {
		return lo
	}
	return math32.Max(lo, math32.Min(hi, v))
}

func clampRadius(r int) int {
	return max(MinBloomRadius, min(MaxBloomRadius, r))
}
