package tone

import (
	"testing"

	"github.com/gogpu/framefx/settings"
)

func fill(n int, p uint32) []uint32 {
	pix := make([]uint32, n)
	for i := range pix {
		pix[i] = p
	}
	return pix
}

func TestAdjustActive(t *testing.T) {
	neutralAdjust := Adjust{Mode: settings.FullColor, Brightness: 1, Contrast: 1, Gamma: 1, Saturation: 1}
	tests := []struct {
		name string
		mut  func(*Adjust)
		want bool
	}{
		{"neutral", func(*Adjust) {}, false},
		{"within epsilon", func(a *Adjust) { a.Gamma = 1.0005 }, false},
		{"grayscale", func(a *Adjust) { a.Mode = settings.Grayscale }, true},
		{"brightness", func(a *Adjust) { a.Brightness = 1.2 }, true},
		{"contrast", func(a *Adjust) { a.Contrast = 0.8 }, true},
		{"gamma", func(a *Adjust) { a.Gamma = 2.2 }, true},
		{"saturation", func(a *Adjust) { a.Saturation = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := neutralAdjust
			tt.mut(&a)
			if got := a.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrayscaleKeepsGrayAndAlpha(t *testing.T) {
	pix := []uint32{0x80808080, 0xFFFF0000, 0x40FFFFFF}
	Grayscale(pix)

	if pix[0] != 0x80808080 {
		t.Errorf("mid gray = %#08x, want unchanged", pix[0])
	}
	// Pure red: (19595*255 + 32768) >> 16 = 76.
	if pix[1] != 0xFF4C4C4C {
		t.Errorf("red = %#08x, want 0xff4c4c4c", pix[1])
	}
	if pix[2] != 0x40FFFFFF {
		t.Errorf("white = %#08x, want 0x40ffffff", pix[2])
	}
}

func TestMonochrome(t *testing.T) {
	pix := []uint32{0xFF808080, 0xFF7F7F7F, 0x11FF0000, 0xFF00FF00, 0x00000000}
	Apply(pix, Adjust{Mode: settings.Monochrome, Brightness: 1, Contrast: 1, Gamma: 1, Saturation: 1}, &GammaLUT{})

	want := []uint32{0xFFFFFFFF, 0xFF000000, 0x11000000, 0xFFFFFFFF, 0x00000000}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %#08x, want %#08x", i, pix[i], want[i])
		}
	}
}

func TestBrightnessContrast(t *testing.T) {
	tests := []struct {
		name       string
		b, c       float32
		in, want   uint32
	}{
		{"brighter", 1.5, 1, 0xFF646464, 0xFF969696},    // 100 -> 150
		{"clamps high", 2, 1, 0xFFC8C8C8, 0xFFFFFFFF},   // 200 -> 255
		{"low contrast", 1, 0.5, 0xFF000000, 0xFF404040}, // 0 -> 64
		{"high contrast", 1, 2, 0xFF404040, 0xFF000000},  // 64 -> 0
		{"alpha kept", 1.5, 1, 0x20646464, 0x20969696},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := []uint32{tt.in}
			BrightnessContrast(pix, tt.b, tt.c)
			if pix[0] != tt.want {
				t.Errorf("got %#08x, want %#08x", pix[0], tt.want)
			}
		})
	}
}

func TestSaturate(t *testing.T) {
	// Saturation 0 collapses to luminance.
	pix := []uint32{0xFFFF0000}
	Saturate(pix, 0)
	// round(0.2126*255) = 54
	if pix[0] != 0xFF363636 {
		t.Errorf("desaturated red = %#08x, want 0xff363636", pix[0])
	}

	// Saturation 1 is an identity.
	pix = []uint32{0xFF123456, 0x7FABCDEF}
	Saturate(pix, 1)
	if pix[0] != 0xFF123456 || pix[1] != 0x7FABCDEF {
		t.Errorf("saturation 1 changed pixels: %#08x %#08x", pix[0], pix[1])
	}

	// Gray stays gray at any saturation.
	pix = []uint32{0xFF808080}
	Saturate(pix, 2)
	if pix[0] != 0xFF808080 {
		t.Errorf("gray at saturation 2 = %#08x", pix[0])
	}
}

func TestApplyNeutralIsIdentity(t *testing.T) {
	pix := []uint32{0xFF102030, 0x80FFEEDD}
	Apply(pix, Adjust{Mode: settings.FullColor, Brightness: 1, Contrast: 1, Gamma: 1, Saturation: 1}, &GammaLUT{})
	if pix[0] != 0xFF102030 || pix[1] != 0x80FFEEDD {
		t.Errorf("neutral Apply changed pixels: %#08x %#08x", pix[0], pix[1])
	}
}

func TestApplyGammaPreservesAlpha(t *testing.T) {
	pix := fill(4, 0x33808080)
	var lut GammaLUT
	Apply(pix, Adjust{Mode: settings.FullColor, Brightness: 1, Contrast: 1, Gamma: 2.2, Saturation: 1}, &lut)
	for i, p := range pix {
		if p>>24 != 0x33 {
			t.Errorf("pix[%d] alpha = %#x, want 0x33", i, p>>24)
		}
		if p&0xFF <= 0x80 {
			t.Errorf("pix[%d] = %#08x, gamma 2.2 should brighten mid-gray", i, p)
		}
	}
	if lut.Gamma() != 2.2 {
		t.Errorf("lut.Gamma() = %v, want 2.2", lut.Gamma())
	}
}

func BenchmarkApply(b *testing.B) {
	pix := fill(240*320, 0xFF5080A0)
	a := Adjust{Mode: settings.FullColor, Brightness: 1.1, Contrast: 1.2, Gamma: 1.8, Saturation: 1.3}
	var lut GammaLUT
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Apply(pix, a, &lut)
	}
}
