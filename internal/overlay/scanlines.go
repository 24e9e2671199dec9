// Package overlay draws the darkening effects applied last in the pipeline:
// scanlines and a radial vignette. Both composite black over the frame and
// never lighten it.
package overlay

import "github.com/gogpu/framefx/internal/blend"

// Scanlines darkens rows 0, 2, 4, ... of img (w x h) with black at the given
// opacity, clamped to [0, 1].
func Scanlines(img []uint32, w, h int, intensity float32) {
	if w <= 0 || h <= 0 || len(img) < w*h {
		return
	}
	alpha := blend.Opacity(intensity)
	if alpha == 0 {
		return
	}
	for y := 0; y < h; y += 2 {
		blend.Darken(img[y*w:y*w+w], alpha)
	}
}
