package palette

import "github.com/gogpu/framefx/settings"

// Fixed16 is the 16-color palette, RGB only.
var Fixed16 = [16]uint32{
	0x000000, 0x808080, 0xC0C0C0, 0xFFFFFF, // black, gray, silver, white
	0x800000, 0xFF0000, 0x808000, 0xFFFF00, // maroon, red, olive, yellow
	0x008000, 0x00FF00, 0x008080, 0x00FFFF, // green, lime, teal, aqua
	0x000080, 0x0000FF, 0x800080, 0xFF00FF, // navy, blue, purple, fuchsia
}

// fixed16Spread scales the dither bias to channel units.
const fixed16Spread = 16

// QuantizeFixed16 snaps every pixel to its nearest Fixed16 entry after
// adding the ordered dither bias. Floyd-Steinberg is not supported here and
// behaves like no dithering.
func QuantizeFixed16(img []uint32, w int, dither settings.DitherMode) {
	for i, p := range img {
		bias := Bias(dither, i%w, i/w) * fixed16Spread
		r := clamp255(roundHalfUp(float32((p>>16)&0xFF) + bias))
		g := clamp255(roundHalfUp(float32((p>>8)&0xFF) + bias))
		b := clamp255(roundHalfUp(float32(p&0xFF) + bias))
		img[i] = p&0xFF000000 | Nearest(r, g, b)
	}
}

// Nearest returns the Fixed16 entry with the smallest squared RGB distance
// to (r, g, b). Ties go to the earlier entry.
func Nearest(r, g, b int32) uint32 {
	best := Fixed16[0]
	bestD := int32(1<<31 - 1)
	for _, c := range Fixed16 {
		dr := int32(c>>16) - r
		dg := int32((c>>8)&0xFF) - g
		db := int32(c&0xFF) - b
		if d := dr*dr + dg*dg + db*db; d < bestD {
			bestD = d
			best = c
		}
	}
	return best
}
