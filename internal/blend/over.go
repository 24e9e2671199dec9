package blend

// Packed ARGB channel helpers. Alpha occupies the top byte.
const (
	alphaShift = 24
	redShift   = 16
	greenShift = 8

	opaque = 0xFF000000
)

// Split unpacks an ARGB pixel into its channels.
func Split(p uint32) (a, r, g, b uint32) {
	return p >> alphaShift, (p >> redShift) & 0xFF, (p >> greenShift) & 0xFF, p & 0xFF
}

// Pack builds an ARGB pixel. Channels must already be in [0, 255].
func Pack(a, r, g, b uint32) uint32 {
	return a<<alphaShift | r<<redShift | g<<greenShift | b
}

// Over composites a straight-alpha src pixel over a straight-alpha dst pixel,
// scaling the source alpha by opacity (0-255) first.
//
// Formula (alpha in 0-255 units, colors unpremultiplied):
//
//	As = Sa*opacity/255
//	Ao = As + Da*(1-As)
//	Co = (Cs*As + Cd*Da*(1-As)) / Ao
//
// An effective source alpha of zero returns dst unchanged, which keeps a
// zero-opacity composite exact.
func Over(src, dst, opacity uint32) uint32 {
	sa := MulDiv255(src>>alphaShift, opacity)
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src | opaque
	}

	da := dst >> alphaShift
	inv := 255 - sa

	// Weights in 255*255 units.
	ws := sa * 255
	wd := da * inv
	wo := ws + wd
	half := wo >> 1

	_, sr, sg, sb := Split(src)
	_, dr, dg, db := Split(dst)

	r := (sr*ws + dr*wd + half) / wo
	g := (sg*ws + dg*wd + half) / wo
	b := (sb*ws + db*wd + half) / wo
	a := div255(wo + 127)

	return Pack(a, r, g, b)
}

// OverRow composites each src pixel over the matching dst pixel in place.
// Both slices must have the same length.
func OverRow(dst, src []uint32, opacity uint32) {
	if opacity == 0 {
		return
	}
	src = src[:len(dst)]
	for i, s := range src {
		if s>>alphaShift == 0 {
			continue
		}
		dst[i] = Over(s, dst[i], opacity)
	}
}

// Darken composites black at the given 8-bit alpha over every pixel of row.
// It is the fill used by scanline and vignette overlays.
func Darken(row []uint32, alpha uint32) {
	if alpha == 0 {
		return
	}
	src := alpha << alphaShift
	for i, d := range row {
		row[i] = Over(src, d, 255)
	}
}
