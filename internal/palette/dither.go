package palette

import "github.com/gogpu/framefx/settings"

// Bayer threshold matrices.
var (
	bayer2 = [2][2]float32{
		{0, 2},
		{3, 1},
	}
	bayer4 = [4][4]float32{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}
)

// Bias returns the ordered dither offset for pixel (x, y), in [-0.5, 0.5).
// Modes without an ordered matrix return 0.
func Bias(dither settings.DitherMode, x, y int) float32 {
	switch dither {
	case settings.Ordered2x2:
		return (bayer2[y&1][x&1]+0.5)/4 - 0.5
	case settings.Ordered4x4:
		return (bayer4[y&3][x&3]+0.5)/16 - 0.5
	default:
		return 0
	}
}

// Floyd-Steinberg weights:
//
//	       x   7/16
//	3/16 5/16 1/16
const (
	weightRight      = 7.0 / 16
	weightBelowLeft  = 3.0 / 16
	weightBelow      = 5.0 / 16
	weightBelowRight = 1.0 / 16
)

// Diffuse quantizes img with Floyd-Steinberg error diffusion. Rows are
// scanned top to bottom, always left to right. The accumulated error of a
// pixel is rounded and added before quantizing, and the residual is spread
// to the unvisited neighbors.
//
// errRows holds the error of the current and the next row and must have at
// least ErrorRowsLen(w) values. Its previous contents are ignored.
func Diffuse(img []uint32, w int, lv Levels, errRows []float32) {
	h := len(img) / w
	cur := errRows[:3*w]
	next := errRows[3*w : 6*w]
	clear(cur)
	clear(next)

	levels := [3]uint32{lv.R, lv.G, lv.B}
	shifts := [3]uint32{16, 8, 0}

	for y := 0; y < h; y++ {
		row := img[y*w : y*w+w]
		hasBelow := y+1 < h

		for x, p := range row {
			out := p & 0xFF000000
			for c := 0; c < 3; c++ {
				v := int32((p >> shifts[c]) & 0xFF)
				v = clamp255(v + roundHalfUp(cur[3*x+c]))
				q := quantize(v, levels[c])
				out |= uint32(q) << shifts[c]

				e := float32(v - q)
				if x+1 < w {
					cur[3*(x+1)+c] += e * weightRight
				}
				if hasBelow {
					if x > 0 {
						next[3*(x-1)+c] += e * weightBelowLeft
					}
					next[3*x+c] += e * weightBelow
					if x+1 < w {
						next[3*(x+1)+c] += e * weightBelowRight
					}
				}
			}
			row[x] = out
		}

		cur, next = next, cur
		clear(next)
	}
}
