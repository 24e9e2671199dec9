package framefx

import (
	"strings"

	"github.com/gogpu/framefx/internal/scale"
)

// Interpolation selects the resampling filter used when the destination
// size differs from the source.
type Interpolation int

const (
	// InterpNearest picks the closest source pixel. Sharp and blocky.
	InterpNearest Interpolation = iota

	// InterpBilinear blends the four nearest source pixels.
	InterpBilinear
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseInterpolation parses "nearest" or "bilinear", ignoring case.
func ParseInterpolation(s string) (Interpolation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "nearestneighbor", "nearest-neighbor":
		return InterpNearest, true
	case "bilinear", "linear":
		return InterpBilinear, true
	default:
		return InterpNearest, false
	}
}

func (i Interpolation) mode() scale.Mode {
	if i == InterpBilinear {
		return scale.Bilinear
	}
	return scale.Nearest
}
