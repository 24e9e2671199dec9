package scale

import (
	"image"
	"testing"

	xdraw "golang.org/x/image/draw"
)

// gradient builds an opaque w x h raster with distinct per-pixel colors.
func gradient(w, h int) []uint32 {
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint32(x * 255 / max(w-1, 1))
			g := uint32(y * 255 / max(h-1, 1))
			pix[y*w+x] = 0xFF000000 | r<<16 | g<<8 | 0x40
		}
	}
	return pix
}

func toRGBA(pix []uint32, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pix {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = uint8(p >> 24)
	}
	return img
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Nearest, "Nearest"},
		{Bilinear, "Bilinear"},
		{Mode(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestScaleIdentity(t *testing.T) {
	for _, mode := range []Mode{Nearest, Bilinear} {
		t.Run(mode.String(), func(t *testing.T) {
			src := gradient(7, 5)
			dst := make([]uint32, len(src))
			Scale(dst, 7, 5, src, 7, 5, mode)
			for i := range src {
				if dst[i] != src[i] {
					t.Fatalf("dst[%d] = %#08x, want %#08x", i, dst[i], src[i])
				}
			}
		})
	}
}

func TestScaleNearestMatchesXDraw(t *testing.T) {
	sizes := []struct{ sw, sh, dw, dh int }{
		{4, 4, 8, 8},
		{8, 8, 3, 5},
		{5, 3, 17, 11},
		{16, 9, 7, 4},
	}
	for _, s := range sizes {
		src := gradient(s.sw, s.sh)
		dst := make([]uint32, s.dw*s.dh)
		Scale(dst, s.dw, s.dh, src, s.sw, s.sh, Nearest)

		ref := image.NewRGBA(image.Rect(0, 0, s.dw, s.dh))
		xdraw.NearestNeighbor.Scale(ref, ref.Bounds(), toRGBA(src, s.sw, s.sh), image.Rect(0, 0, s.sw, s.sh), xdraw.Src, nil)

		got := toRGBA(dst, s.dw, s.dh)
		for i := range ref.Pix {
			if got.Pix[i] != ref.Pix[i] {
				t.Fatalf("%dx%d -> %dx%d: byte %d = %d, x/image/draw has %d",
					s.sw, s.sh, s.dw, s.dh, i, got.Pix[i], ref.Pix[i])
			}
		}
	}
}

func TestScaleNearestUpscaleDuplicates(t *testing.T) {
	src := []uint32{0xFF000001, 0xFF000002, 0xFF000003, 0xFF000004}
	dst := make([]uint32, 16)
	Scale(dst, 4, 4, src, 2, 2, Nearest)
	want := []uint32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	for i := range want {
		if dst[i] != 0xFF000000|want[i] {
			t.Errorf("dst[%d] = %#08x, want %#08x", i, dst[i], 0xFF000000|want[i])
		}
	}
}

func TestScaleBilinearMidpoint(t *testing.T) {
	// Downscaling 2x1 -> 1x1 samples exactly between the two pixels.
	src := []uint32{0xFF000000, 0xFFFEFEFE}
	dst := make([]uint32, 1)
	Scale(dst, 1, 1, src, 2, 1, Bilinear)
	if dst[0] != 0xFF7F7F7F {
		t.Errorf("midpoint = %#08x, want 0xff7f7f7f", dst[0])
	}
}

func TestScaleBilinearSolidStaysSolid(t *testing.T) {
	src := make([]uint32, 9)
	for i := range src {
		src[i] = 0xC0336699
	}
	dst := make([]uint32, 7*5)
	Scale(dst, 7, 5, src, 3, 3, Bilinear)
	for i, p := range dst {
		if p != 0xC0336699 {
			t.Fatalf("dst[%d] = %#08x, want 0xc0336699", i, p)
		}
	}
}

func TestScaleDegenerate(t *testing.T) {
	dst := []uint32{0xDEADBEEF}
	Scale(dst, 1, 1, nil, 0, 0, Nearest)
	Scale(dst, 0, 1, []uint32{1}, 1, 1, Nearest)
	Scale(dst, 2, 2, []uint32{1}, 1, 1, Nearest) // dst too short
	if dst[0] != 0xDEADBEEF {
		t.Errorf("degenerate Scale wrote %#08x", dst[0])
	}
}

func BenchmarkScale(b *testing.B) {
	src := gradient(240, 320)
	dst := make([]uint32, 720*960)
	for _, mode := range []Mode{Nearest, Bilinear} {
		b.Run(mode.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Scale(dst, 720, 960, src, 240, 320, mode)
			}
		})
	}
}
