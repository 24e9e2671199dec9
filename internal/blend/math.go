// Package blend provides fast math utilities for alpha blending.
//
// The div255 family of functions avoid integer division by using bit
// shifts and addition. They are called for every pixel of every overlay,
// so they are kept branch-free.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, exact for all values up to 255*255.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two 8-bit quantities and divides by 255, rounding
// to nearest.
func MulDiv255(a, b uint32) uint32 {
	return div255(a*b + 127)
}

// Opacity converts a unit-range alpha to an 8-bit opacity, clamping
// values outside [0, 1].
func Opacity(a float32) uint32 {
	if !(a > 0) {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint32(a*255 + 0.5)
}
