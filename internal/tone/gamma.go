package tone

import (
	"math"

	"github.com/chewxy/math32"
)

// lutTolerance is how far gamma may drift before the table is rebuilt.
const lutTolerance = 1e-3

// GammaLUT caches the 256-entry gamma table for the last gamma it was built
// for. The zero value is empty and builds on first Update.
//
// A GammaLUT is not safe for concurrent use; each renderer owns one.
type GammaLUT struct {
	table [256]uint8
	gamma float32
	ready bool
}

// Update rebuilds the table if gamma moved by at least 1e-3 since the last
// build. It reports whether a rebuild happened.
//
// Entry i is clamp(round(255 * (i/255)^(1/gamma))).
func (l *GammaLUT) Update(gamma float32) bool {
	if l.ready && math32.Abs(l.gamma-gamma) < lutTolerance {
		return false
	}

	inv := 1 / math.Max(0.001, float64(gamma))
	for i := range l.table {
		v := math.Round(255 * math.Pow(float64(i)/255, inv))
		l.table[i] = uint8(math.Max(0, math.Min(255, v)))
	}
	l.gamma = gamma
	l.ready = true
	return true
}

// Gamma returns the gamma the table was last built for.
func (l *GammaLUT) Gamma() float32 {
	return l.gamma
}

// At returns the corrected value for v.
func (l *GammaLUT) At(v uint8) uint8 {
	return l.table[v]
}

// Apply maps the color channels of every pixel through the table.
func (l *GammaLUT) Apply(pix []uint32) {
	applyTable(pix, &l.table)
}
