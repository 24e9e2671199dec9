package settings

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	p := Defaults()
	p.ColorMode = Grayscale
	p.PaletteMode = Fixed16
	p.DitherMode = Ordered4x4
	p.Scanlines = true
	p.ScanlinesIntensity = 0.35
	p.Bloom = true
	p.BloomRadius = 3
	p.BloomIntensity = 1.25
	p.Gamma = 2.2
	p.Saturation = 0

	require.NoError(t, save(path, p))

	got, err := Load(path, Defaults())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, save(path, Defaults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "# framefx filter settings"))
	assert.Contains(t, text, `colorMode = "FullColor"`)
	assert.Contains(t, text, `ditherMode = "None"`)
	assert.Contains(t, text, "scanlinesIntensity = 0.12\n")
	assert.Contains(t, text, "bloomRadius = 2\n")
	assert.Contains(t, text, "bloom = false\n")
	assert.Less(t, strings.Index(text, "colorMode"), strings.Index(text, "saturation"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), Defaults())
	assert.True(t, errors.Is(err, fs.ErrNotExist), "err = %v", err)

	s := New(WithPath(filepath.Join(t.TempDir(), "absent.toml")))
	defer s.Close()
	assert.Equal(t, Defaults(), s.Snapshot())
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, `
bloom = true
bloomRadius = 4
gamma = "bright"
paletteMode = "RGB_888"
ditherMode = "FLOYD_STEINBERG"
unknownKey = 3
`)
	p, err := Load(path, Defaults())
	require.NoError(t, err)

	want := Defaults()
	want.Bloom = true
	want.BloomRadius = 4
	want.DitherMode = FloydSteinberg
	assert.Equal(t, want, p)
}

func TestLoadClampsValues(t *testing.T) {
	path := writeFile(t, "gamma = 9\nbrightness = 0.01\nbloomRadius = 12\nvignetteIntensity = -4.5\n")
	p, err := Load(path, Defaults())
	require.NoError(t, err)

	assert.Equal(t, float32(MaxGamma), p.Gamma)
	assert.Equal(t, float32(MinBrightness), p.Brightness)
	assert.Equal(t, MaxBloomRadius, p.BloomRadius)
	assert.Equal(t, float32(0), p.VignetteIntensity)
}

func TestLoadBrokenSyntax(t *testing.T) {
	path := writeFile(t, `# hand edited
scanlines = true
this line is not toml
scanlinesIntensity = 0.5
colorMode = "Monochrome
vignette = true
`)
	p, err := Load(path, Defaults())
	require.NoError(t, err)

	want := Defaults()
	want.Scanlines = true
	want.ScanlinesIntensity = 0.5
	want.Vignette = true
	assert.Equal(t, want, p)
}

func TestNewLoadsFile(t *testing.T) {
	path := writeFile(t, "colorMode = \"grayscale\"\nsaturation = 1.5\n")
	s := New(WithPath(path))
	defer s.Close()

	assert.Equal(t, Grayscale, s.ColorMode())
	assert.Equal(t, float32(1.5), s.Saturation())
	assert.Equal(t, path, s.Path())
}
