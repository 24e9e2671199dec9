package filter

import "github.com/gogpu/framefx/internal/blend"

// Bloom is a glow effect: bright pixels are extracted, blurred twice and
// composited back over the image.
type Bloom struct {
	// Threshold is the minimum luminance, as a fraction of 255, for a pixel
	// to contribute to the glow.
	Threshold float32

	// Intensity is the opacity of the glow layer. Values above 1 are
	// accepted but composite as fully opaque.
	Intensity float32

	// Radius is the box blur radius in destination pixels. It is clamped to
	// [MinBlurRadius, MaxBlurRadius].
	Radius int
}

// Buffers holds the caller-owned working storage for Apply. A and B must
// hold w*h pixels and Line at least h pixels.
type Buffers struct {
	A, B []uint32
	Line []uint32
}

// Apply runs the bloom on img (w x h) in place:
//  1. Extract: pixels at or above the threshold are copied into A, the rest
//     become transparent
//  2. Blur: A -> B, then B -> A
//  3. Composite: A is drawn source-over img with opacity min(Intensity, 1)
func (f Bloom) Apply(img []uint32, w, h int, buf Buffers) {
	n := w * h
	if n <= 0 || len(img) < n || len(buf.A) < n || len(buf.B) < n || len(buf.Line) < h {
		return
	}
	img = img[:n]
	a, b := buf.A[:n], buf.B[:n]

	ExtractBright(a, img, f.Threshold)
	BoxBlur(b, a, buf.Line, w, h, f.Radius)
	BoxBlur(a, b, buf.Line, w, h, f.Radius)

	blend.OverRow(img, a, blend.Opacity(f.Intensity))
}

// ExtractBright copies pixels whose Rec. 709 luminance is at least
// threshold*255 from src to dst and writes transparent black elsewhere.
// The threshold is clamped to [0, 1].
func ExtractBright(dst, src []uint32, threshold float32) {
	var th uint32
	switch {
	case threshold >= 1:
		th = 255
	case threshold > 0:
		th = uint32(threshold * 255)
	}

	dst = dst[:len(src)]
	for i, p := range src {
		if luminance(p) >= th {
			dst[i] = p
		} else {
			dst[i] = 0
		}
	}
}

// luminance returns the truncated Rec. 709 luma of p in [0, 255], computed in
// integers so white maps to exactly 255.
func luminance(p uint32) uint32 {
	r := (p >> 16) & 0xFF
	g := (p >> 8) & 0xFF
	b := p & 0xFF
	return (2126*r + 7152*g + 722*b) / 10000
}
