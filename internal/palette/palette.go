// Package palette reduces packed ARGB pixels to a smaller color space.
//
// Two families are supported: bitmask formats (RGB565, RGB444, RGB332), where
// each channel is quantized independently to 2^bits-1 levels, and the fixed
// 16-color palette, where each pixel snaps to its nearest table entry. Both
// can be combined with ordered dithering; bitmask formats also support
// Floyd-Steinberg error diffusion. Alpha is never modified.
package palette

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/framefx/settings"
)

// Levels is the highest quantized value per channel, 2^bits - 1.
type Levels struct {
	R, G, B uint32
}

// LevelsFor returns the channel levels of a bitmask palette mode. It reports
// false for None and Fixed16.
func LevelsFor(mode settings.PaletteMode) (Levels, bool) {
	switch mode {
	case settings.RGB565:
		return bits(5, 6, 5), true
	case settings.RGB444:
		return bits(4, 4, 4), true
	case settings.RGB332:
		return bits(3, 3, 2), true
	default:
		return Levels{}, false
	}
}

func bits(r, g, b uint) Levels {
	return Levels{R: 1<<r - 1, G: 1<<g - 1, B: 1<<b - 1}
}

// ErrorRowsLen is the number of float32 values Apply needs for
// Floyd-Steinberg on an image w pixels wide: two rows of three channels.
func ErrorRowsLen(w int) int {
	return 6 * w
}

// Apply quantizes img (w x h) in place. errRows is only used for
// Floyd-Steinberg and must then hold ErrorRowsLen(w) values; with a shorter
// slice diffusion falls back to plain quantization.
func Apply(img []uint32, w, h int, mode settings.PaletteMode, dither settings.DitherMode, errRows []float32) {
	n := w * h
	if n <= 0 || len(img) < n {
		return
	}
	img = img[:n]

	if mode == settings.Fixed16 {
		QuantizeFixed16(img, w, dither)
		return
	}

	lv, ok := LevelsFor(mode)
	if !ok {
		return
	}
	if dither == settings.FloydSteinberg && len(errRows) >= ErrorRowsLen(w) {
		Diffuse(img, w, lv, errRows)
		return
	}
	Quantize(img, w, lv, dither)
}

// Quantize reduces every channel to its levels, adding the ordered dither
// bias for the pixel position first. Floyd-Steinberg and None add no bias.
func Quantize(img []uint32, w int, lv Levels, dither settings.DitherMode) {
	for i, p := range img {
		bias := Bias(dither, i%w, i/w)
		r := quantizeWithBias((p>>16)&0xFF, lv.R, bias)
		g := quantizeWithBias((p>>8)&0xFF, lv.G, bias)
		b := quantizeWithBias(p&0xFF, lv.B, bias)
		img[i] = p&0xFF000000 | r<<16 | g<<8 | b
	}
}

// quantizeWithBias maps v to the nearest of levels+1 evenly spaced values
// after shifting it by a quarter of the dither bias, in unit range.
func quantizeWithBias(v, levels uint32, bias float32) uint32 {
	vf := clampf(float32(v)/255+bias*0.25, 0, 1)
	q := roundHalfUp(float32(levels) * vf)
	return uint32(clamp255(roundHalfUp(255 * float32(q) / float32(levels))))
}

// quantize maps v in [0, 255] to the nearest of levels+1 evenly spaced values.
func quantize(v int32, levels uint32) int32 {
	q := roundHalfUp(float32(levels) * (float32(v) / 255))
	return roundHalfUp(255 * float32(q) / float32(levels))
}

// roundHalfUp rounds to nearest with ties toward +Inf.
func roundHalfUp(v float32) int32 {
	return int32(math32.Floor(v + 0.5))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp255(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
