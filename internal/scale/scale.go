// Package scale resamples packed ARGB rasters with nearest-neighbor or
// bilinear filtering.
//
// Both filters sample at pixel centers and clamp to the source edge, so a
// same-size resample is an exact copy. Nothing here allocates.
package scale

import "math"

// Mode defines how source pixels are sampled.
type Mode uint8

const (
	// Nearest selects the source pixel containing the sample point.
	// Fast, blocky when upscaling, the classic look for device screens.
	Nearest Mode = iota

	// Bilinear interpolates between the 4 neighboring source pixels.
	Bilinear
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Scale resamples src (sw x sh) into dst (dw x dh). Unknown modes fall back
// to Nearest. Slices shorter than their dimensions are left untouched.
func Scale(dst []uint32, dw, dh int, src []uint32, sw, sh int, mode Mode) {
	if dw <= 0 || dh <= 0 || sw <= 0 || sh <= 0 {
		return
	}
	if len(dst) < dw*dh || len(src) < sw*sh {
		return
	}
	if dw == sw && dh == sh {
		copy(dst[:dw*dh], src[:sw*sh])
		return
	}
	if mode == Bilinear {
		scaleBilinear(dst, dw, dh, src, sw, sh)
		return
	}
	scaleNearest(dst, dw, dh, src, sw, sh)
}

// scaleNearest maps destination pixel centers to source pixels:
// sx = floor((dx + 0.5) * sw / dw), computed exactly in integers. This is the
// same mapping golang.org/x/image/draw.NearestNeighbor uses.
func scaleNearest(dst []uint32, dw, dh int, src []uint32, sw, sh int) {
	dw2 := 2 * dw
	dh2 := 2 * dh
	for dy := 0; dy < dh; dy++ {
		sy := (2*dy + 1) * sh / dh2
		srow := src[sy*sw : sy*sw+sw]
		drow := dst[dy*dw : dy*dw+dw]
		for dx := range drow {
			drow[dx] = srow[(2*dx+1)*sw/dw2]
		}
	}
}

func scaleBilinear(dst []uint32, dw, dh int, src []uint32, sw, sh int) {
	xScale := float32(sw) / float32(dw)
	yScale := float32(sh) / float32(dh)

	for dy := 0; dy < dh; dy++ {
		fy := (float32(dy)+0.5)*yScale - 0.5
		y0 := int(math.Floor(float64(fy)))
		ty := fy - float32(y0)
		y1 := clamp(y0+1, 0, sh-1)
		y0 = clamp(y0, 0, sh-1)

		row0 := src[y0*sw : y0*sw+sw]
		row1 := src[y1*sw : y1*sw+sw]
		drow := dst[dy*dw : dy*dw+dw]

		for dx := range drow {
			fx := (float32(dx)+0.5)*xScale - 0.5
			x0 := int(math.Floor(float64(fx)))
			tx := fx - float32(x0)
			x1 := clamp(x0+1, 0, sw-1)
			x0 = clamp(x0, 0, sw-1)

			drow[dx] = lerpPixel(row0[x0], row0[x1], row1[x0], row1[x1], tx, ty)
		}
	}
}

// lerpPixel bilinearly interpolates four ARGB pixels channel by channel.
func lerpPixel(p00, p10, p01, p11 uint32, tx, ty float32) uint32 {
	var out uint32
	for shift := uint32(0); shift < 32; shift += 8 {
		c00 := float32((p00 >> shift) & 0xFF)
		c10 := float32((p10 >> shift) & 0xFF)
		c01 := float32((p01 >> shift) & 0xFF)
		c11 := float32((p11 >> shift) & 0xFF)
		out |= uint32(lerp2D(c00, c10, c01, c11, tx, ty)+0.5) << shift
	}
	return out
}

// lerp2D performs 2D linear interpolation.
func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
