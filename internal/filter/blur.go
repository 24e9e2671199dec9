package filter

// Blur radius bounds. The blur enforces its own range, which is wider than
// the range the settings store accepts.
const (
	MinBlurRadius = 1
	MaxBlurRadius = 8
)

// BoxBlur applies a separable box blur of the given radius to src and writes
// the result to dst. The operation uses two passes:
//  1. Horizontal pass: src -> dst, one sliding window per row
//  2. Vertical pass: dst -> dst, one sliding window per column, staged
//     through line
//
// Samples outside the image are clamped to the nearest edge pixel. Channel
// sums are divided with truncation. line must hold at least h pixels; src and
// dst must not alias and must hold w*h pixels.
func BoxBlur(dst, src, line []uint32, w, h, radius int) {
	if w <= 0 || h <= 0 {
		return
	}
	radius = clampInt(radius, MinBlurRadius, MaxBlurRadius)

	for y := 0; y < h; y++ {
		blurLine(dst[y*w:y*w+w], src[y*w:y*w+w], radius)
	}

	col := line[:h]
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = dst[y*w+x]
		}
		blurColumn(dst, col, x, w, radius)
	}
}

// blurLine blurs one contiguous row from in into out.
func blurLine(out, in []uint32, r int) {
	n := len(in)
	last := n - 1
	size := uint32(2*r + 1)

	var sa, sr, sg, sb uint32
	for i := -r; i <= r; i++ {
		p := in[clampInt(i, 0, last)]
		sa += p >> 24
		sr += (p >> 16) & 0xFF
		sg += (p >> 8) & 0xFF
		sb += p & 0xFF
	}

	for x := 0; x < n; x++ {
		out[x] = (sa/size)<<24 | (sr/size)<<16 | (sg/size)<<8 | sb/size

		pOut := in[clampInt(x-r, 0, last)]
		pIn := in[clampInt(x+r+1, 0, last)]
		sa += pIn>>24 - pOut>>24
		sr += (pIn>>16)&0xFF - (pOut>>16)&0xFF
		sg += (pIn>>8)&0xFF - (pOut>>8)&0xFF
		sb += pIn&0xFF - pOut&0xFF
	}
}

// blurColumn blurs the staged column col and writes it to column x of dst.
func blurColumn(dst, col []uint32, x, w, r int) {
	n := len(col)
	last := n - 1
	size := uint32(2*r + 1)

	var sa, sr, sg, sb uint32
	for i := -r; i <= r; i++ {
		p := col[clampInt(i, 0, last)]
		sa += p >> 24
		sr += (p >> 16) & 0xFF
		sg += (p >> 8) & 0xFF
		sb += p & 0xFF
	}

	for y := 0; y < n; y++ {
		dst[y*w+x] = (sa/size)<<24 | (sr/size)<<16 | (sg/size)<<8 | sb/size

		pOut := col[clampInt(y-r, 0, last)]
		pIn := col[clampInt(y+r+1, 0, last)]
		sa += pIn>>24 - pOut>>24
		sr += (pIn>>16)&0xFF - (pOut>>16)&0xFF
		sg += (pIn>>8)&0xFF - (pOut>>8)&0xFF
		sb += pIn&0xFF - pOut&0xFF
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
