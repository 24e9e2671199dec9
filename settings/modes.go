package settings

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// ColorMode selects the color reduction applied before scaling.
type ColorMode int32

const (
	// FullColor leaves colors unchanged.
	FullColor ColorMode = iota

	// Grayscale replaces each pixel by its luma.
	Grayscale

	// Monochrome thresholds the luma to pure black or white.
	Monochrome
)

var colorModeNames = [...]string{"FullColor", "Grayscale", "Monochrome"}

// String returns the mode name as written to the settings file.
func (m ColorMode) String() string {
	if m.Valid() {
		return colorModeNames[m]
	}
	return "ColorMode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a known mode.
func (m ColorMode) Valid() bool {
	return m >= FullColor && m <= Monochrome
}

// PaletteMode selects palette quantization.
type PaletteMode int32

const (
	// PaletteNone disables quantization.
	PaletteNone PaletteMode = iota

	// RGB565 keeps 5 bits of red, 6 of green and 5 of blue.
	RGB565

	// RGB444 keeps 4 bits per channel.
	RGB444

	// RGB332 keeps 3 bits of red, 3 of green and 2 of blue.
	RGB332

	// Fixed16 maps every pixel to the nearest of the 16 classic VGA colors.
	Fixed16
)

var paletteModeNames = [...]string{"None", "RGB565", "RGB444", "RGB332", "Fixed16"}

// String returns the mode name as written to the settings file.
func (m PaletteMode) String() string {
	if m.Valid() {
		return paletteModeNames[m]
	}
	return "PaletteMode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a known mode.
func (m PaletteMode) Valid() bool {
	return m >= PaletteNone && m <= Fixed16
}

// DitherMode selects how quantization error is hidden.
type DitherMode int32

const (
	// DitherNone quantizes each pixel independently.
	DitherNone DitherMode = iota

	// Ordered2x2 adds a 2x2 Bayer threshold bias.
	Ordered2x2

	// Ordered4x4 adds a 4x4 Bayer threshold bias.
	Ordered4x4

	// FloydSteinberg diffuses quantization error to unvisited neighbors.
	FloydSteinberg
)

var ditherModeNames = [...]string{"None", "Ordered2x2", "Ordered4x4", "FloydSteinberg"}

// String returns the mode name as written to the settings file.
func (m DitherMode) String() string {
	if m.Valid() {
		return ditherModeNames[m]
	}
	return "DitherMode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a known mode.
func (m DitherMode) Valid() bool {
	return m >= DitherNone && m <= FloydSteinberg
}

// ErrUnknownMode is returned when a mode name matches no known value.
var ErrUnknownMode = errors.New("settings: unknown mode")

// ParseColorMode parses a color mode name. Matching ignores case,
// underscores and hyphens, so "FULL_COLOR" and "full-color" both parse.
func ParseColorMode(s string) (ColorMode, error) {
	i, ok := lookup(colorModeNames[:], s)
	if !ok {
		return FullColor, ErrUnknownMode
	}
	return ColorMode(i), nil
}

// ParsePaletteMode parses a palette mode name. See ParseColorMode.
func ParsePaletteMode(s string) (PaletteMode, error) {
	i, ok := lookup(paletteModeNames[:], s)
	if !ok {
		return PaletteNone, ErrUnknownMode
	}
	return PaletteMode(i), nil
}

// ParseDitherMode parses a dither mode name. See ParseColorMode.
func ParseDitherMode(s string) (DitherMode, error) {
	i, ok := lookup(ditherModeNames[:], s)
	if !ok {
		return DitherNone, ErrUnknownMode
	}
	return DitherMode(i), nil
}

func lookup(names []string, s string) (int, bool) {
	// A Caser keeps state and must not be shared between goroutines.
	fold := cases.Fold()
	key := normalize(fold, s)
	if key == "" {
		return 0, false
	}
	for i, name := range names {
		if normalize(fold, name) == key {
			return i, true
		}
	}
	return 0, false
}

var separators = strings.NewReplacer("_", "", "-", "", " ", "")

func normalize(fold cases.Caser, s string) string {
	return separators.Replace(fold.String(strings.TrimSpace(s)))
}
