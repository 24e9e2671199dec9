package settings

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/gogpu/framefx/internal/logging"
)

const fileHeader = "# framefx filter settings\n# Unknown or invalid entries are ignored and replaced by defaults.\n\n"

// document is the on-disk layout. Field order is file order.
type document struct {
	ColorMode          string  `toml:"colorMode"`
	Scanlines          bool    `toml:"scanlines"`
	ScanlinesIntensity float64 `toml:"scanlinesIntensity"`
	Vignette           bool    `toml:"vignette"`
	VignetteIntensity  float64 `toml:"vignetteIntensity"`
	Bloom              bool    `toml:"bloom"`
	BloomThreshold     float64 `toml:"bloomThreshold"`
	BloomIntensity     float64 `toml:"bloomIntensity"`
	BloomRadius        int     `toml:"bloomRadius"`
	PaletteMode        string  `toml:"paletteMode"`
	DitherMode         string  `toml:"ditherMode"`
	Brightness         float64 `toml:"brightness"`
	Contrast           float64 `toml:"contrast"`
	Gamma              float64 `toml:"gamma"`
	Saturation         float64 `toml:"saturation"`
}

func newDocument(p *Params) document {
	return document{
		ColorMode:          p.ColorMode.String(),
		Scanlines:          p.Scanlines,
		ScanlinesIntensity: float64Of(p.ScanlinesIntensity),
		Vignette:           p.Vignette,
		VignetteIntensity:  float64Of(p.VignetteIntensity),
		Bloom:              p.Bloom,
		BloomThreshold:     float64Of(p.BloomThreshold),
		BloomIntensity:     float64Of(p.BloomIntensity),
		BloomRadius:        p.BloomRadius,
		PaletteMode:        p.PaletteMode.String(),
		DitherMode:         p.DitherMode.String(),
		Brightness:         float64Of(p.Brightness),
		Contrast:           float64Of(p.Contrast),
		Gamma:              float64Of(p.Gamma),
		Saturation:         float64Of(p.Saturation),
	}
}

// Load reads the settings file at path over defaults. Keys that are
// missing or fail to parse keep the value from defaults. A file with broken
// syntax is read again line by line so the intact lines still apply.
func Load(path string, defaults Params) (Params, error) {
	return loadFile(path, defaults, logging.Logger())
}

func load(path string, defaults Params, log *slog.Logger) Params {
	p, err := loadFile(path, defaults, log)
	switch {
	case err == nil:
		log.Info("settings: loaded", "path", path)
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("settings: no settings file, using defaults", "path", path)
	default:
		log.Warn("settings: cannot read settings file, using defaults", "path", path, "err", err)
	}
	return p
}

func loadFile(path string, defaults Params, log *slog.Logger) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, errors.Wrap(err, "settings: read")
	}

	values, err := decode(string(data))
	if err != nil {
		log.Warn("settings: malformed file, recovering line by line", "path", path, "err", err)
		values = decodeLines(string(data), log)
	}

	p := defaults
	for key, v := range values {
		f, ok := lookupField(key)
		if !ok {
			log.Warn("settings: unknown key", "key", key)
			continue
		}
		next := p
		if err := f.set(&next, v); err != nil {
			log.Warn("settings: invalid value, keeping default", "key", key, "err", err)
			continue
		}
		p = next
	}
	return p.Clamp(defaults), nil
}

func decode(data string) (map[string]any, error) {
	values := make(map[string]any)
	if _, err := toml.Decode(data, &values); err != nil {
		return nil, errors.Wrap(err, "settings: decode")
	}
	return values, nil
}

// decodeLines decodes each line on its own and keeps those that parse.
func decodeLines(data string, log *slog.Logger) map[string]any {
	values := make(map[string]any)
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lv, err := decode(line)
		if err != nil {
			log.Warn("settings: skipping line", "line", i+1, "err", err)
			continue
		}
		for k, v := range lv {
			values[k] = v
		}
	}
	return values
}

// save writes p to path through a temporary file in the same directory, so
// a crash never leaves a truncated file behind.
func save(path string, p Params) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "settings: create directory")
	}

	tmp, err := os.CreateTemp(dir, ".filters-*.toml")
	if err != nil {
		return errors.Wrap(err, "settings: create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(fileHeader); err != nil {
		tmp.Close()
		return errors.Wrap(err, "settings: write")
	}
	if err := toml.NewEncoder(tmp).Encode(newDocument(&p)); err != nil {
		tmp.Close()
		return errors.Wrap(err, "settings: encode")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "settings: close")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "settings: rename")
	}
	return nil
}
