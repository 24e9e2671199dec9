// Package tone implements the per-pixel color and tone adjustments that run
// at source resolution before scaling: color-mode reduction,
// brightness/contrast, gamma and saturation.
//
// Every operation works in place on packed ARGB pixels and leaves the alpha
// byte untouched.
package tone

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/framefx/settings"
)

// Epsilon is the distance from 1.0 below which a tone parameter counts as
// neutral and its step is skipped.
const Epsilon = 0.001

// MonochromeThreshold is the gray level at and above which a monochrome
// pixel becomes white.
const MonochromeThreshold = 128

// Luminance weights (Rec. 709) used by saturation.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Adjust is the set of tone parameters applied in one pass.
type Adjust struct {
	Mode       settings.ColorMode
	Brightness float32
	Contrast   float32
	Gamma      float32
	Saturation float32
}

// FromParams extracts the tone parameters from a settings snapshot.
func FromParams(p *settings.Params) Adjust {
	return Adjust{
		Mode:       p.ColorMode,
		Brightness: p.Brightness,
		Contrast:   p.Contrast,
		Gamma:      p.Gamma,
		Saturation: p.Saturation,
	}
}

// Active reports whether any step would change pixels. When it returns
// false the whole stage is skipped.
func (a Adjust) Active() bool {
	return a.Mode != settings.FullColor ||
		!neutral(a.Brightness) || !neutral(a.Contrast) ||
		!neutral(a.Gamma) || !neutral(a.Saturation)
}

func neutral(v float32) bool {
	return math32.Abs(v-1) <= Epsilon
}

// Apply runs the enabled steps in fixed order: color mode, brightness and
// contrast, gamma, saturation. lut is refreshed when the gamma moved.
func Apply(pix []uint32, a Adjust, lut *GammaLUT) {
	switch a.Mode {
	case settings.Grayscale:
		Grayscale(pix)
	case settings.Monochrome:
		Grayscale(pix)
		Threshold(pix, MonochromeThreshold)
	}

	if !neutral(a.Brightness) || !neutral(a.Contrast) {
		BrightnessContrast(pix, a.Brightness, a.Contrast)
	}

	if !neutral(a.Gamma) {
		lut.Update(a.Gamma)
		lut.Apply(pix)
	}

	if !neutral(a.Saturation) {
		Saturate(pix, a.Saturation)
	}
}

// Grayscale replaces each pixel with its BT.601 luma, computed the same way
// as image/color.GrayModel.
func Grayscale(pix []uint32) {
	for i, p := range pix {
		r := (p >> 16) & 0xFF
		g := (p >> 8) & 0xFF
		b := p & 0xFF
		y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
		pix[i] = p&0xFF000000 | y<<16 | y<<8 | y
	}
}

// Threshold maps gray pixels to black or white. It reads the blue channel,
// which equals the others after Grayscale.
func Threshold(pix []uint32, level uint32) {
	for i, p := range pix {
		if p&0xFF >= level {
			pix[i] = p&0xFF000000 | 0x00FFFFFF
		} else {
			pix[i] = p & 0xFF000000
		}
	}
}

// BrightnessContrast applies out = in*(b*c) + 128*(1-c) to the color
// channels, clamped to [0, 255] and truncated.
func BrightnessContrast(pix []uint32, brightness, contrast float32) {
	scale := brightness * contrast
	offset := 128 * (1 - contrast)

	var table [256]uint8
	for i := range table {
		v := float32(i)*scale + offset
		table[i] = uint8(math32.Max(0, math32.Min(255, v)))
	}
	applyTable(pix, &table)
}

// Saturate mixes each color channel with the pixel luminance:
// out = L + (c - L)*s.
func Saturate(pix []uint32, s float32) {
	for i, p := range pix {
		r := int32((p >> 16) & 0xFF)
		g := int32((p >> 8) & 0xFF)
		b := int32(p & 0xFF)

		lum := round(lumR*float32(r) + lumG*float32(g) + lumB*float32(b))
		r = clamp255(lum + round(float32(r-lum)*s))
		g = clamp255(lum + round(float32(g-lum)*s))
		b = clamp255(lum + round(float32(b-lum)*s))

		pix[i] = p&0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
}

func applyTable(pix []uint32, table *[256]uint8) {
	for i, p := range pix {
		r := uint32(table[(p>>16)&0xFF])
		g := uint32(table[(p>>8)&0xFF])
		b := uint32(table[p&0xFF])
		pix[i] = p&0xFF000000 | r<<16 | g<<8 | b
	}
}

// round rounds half up, so -0.5 becomes 0 and 0.5 becomes 1.
func round(v float32) int32 {
	return int32(math32.Floor(v + 0.5))
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
