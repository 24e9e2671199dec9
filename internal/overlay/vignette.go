package overlay

import (
	"math"

	"github.com/gogpu/framefx/internal/blend"
)

// Vignette geometry. The gradient reaches its last stop at
// radiusFactor*max(w, h) from the center.
const (
	radiusFactor = 0.6
	midStop      = 0.7
	midAlpha     = 80
	edgeAlpha    = 150
)

// VignetteMask caches the per-pixel black opacity of a vignette for one
// frame size and intensity. The zero value is empty.
//
// A VignetteMask is not safe for concurrent use.
type VignetteMask struct {
	w, h      int
	intensity float32
	alpha     []uint8
}

// Update rebuilds the mask when the size or intensity changed and reports
// whether it did. The backing slice is reused when large enough.
func (m *VignetteMask) Update(w, h int, intensity float32) bool {
	if m.alpha != nil && m.w == w && m.h == h && m.intensity == intensity {
		return false
	}
	n := w * h
	if cap(m.alpha) < n {
		m.alpha = make([]uint8, n)
	}
	m.alpha = m.alpha[:n]
	m.w, m.h, m.intensity = w, h, intensity

	stops := stopsFor(intensity)
	cx := float64(w) * 0.5
	cy := float64(h) * 0.5
	radius := float64(max(w, h)) * radiusFactor

	for y := 0; y < h; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			t := math.Sqrt(dx*dx+dy*dy) / radius
			m.alpha[y*w+x] = stops.at(t)
		}
	}
	return true
}

// Alpha returns the mask opacity at (x, y).
func (m *VignetteMask) Alpha(x, y int) uint8 {
	return m.alpha[y*m.w+x]
}

// Apply composites the mask over img, which must match the mask size.
func (m *VignetteMask) Apply(img []uint32) {
	if len(img) < len(m.alpha) {
		return
	}
	for i, a := range m.alpha {
		if a == 0 {
			continue
		}
		img[i] = blend.Over(uint32(a)<<24, img[i], 255)
	}
}

// Vignette darkens the edges of img (w x h) using m as the cached mask and
// reports whether the mask had to be rebuilt. Intensities at or below zero
// draw nothing.
func Vignette(img []uint32, w, h int, intensity float32, m *VignetteMask) bool {
	if w <= 0 || h <= 0 || len(img) < w*h || !(intensity > 0) {
		return false
	}
	if intensity > 1 {
		intensity = 1
	}
	rebuilt := m.Update(w, h, intensity)
	m.Apply(img[:w*h])
	return rebuilt
}

// alphaStops is a three-stop opacity ramp: transparent at the center, then
// the middle stop, then the edge stop. Offsets past 1 pad with the edge.
type alphaStops struct {
	mid, edge float64
}

func stopsFor(intensity float32) alphaStops {
	a := float64(intensity)
	return alphaStops{
		mid:  float64(int(a * midAlpha)),
		edge: float64(int(a * edgeAlpha)),
	}
}

// at interpolates the ramp at offset t.
func (s alphaStops) at(t float64) uint8 {
	var v float64
	switch {
	case t <= 0:
		v = 0
	case t < midStop:
		v = s.mid * t / midStop
	case t < 1:
		v = s.mid + (s.edge-s.mid)*(t-midStop)/(1-midStop)
	default:
		v = s.edge
	}
	return uint8(v + 0.5)
}
