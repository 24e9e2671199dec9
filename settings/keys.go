package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Settings file keys.
const (
	KeyColorMode          = "colorMode"
	KeyScanlines          = "scanlines"
	KeyScanlinesIntensity = "scanlinesIntensity"
	KeyVignette           = "vignette"
	KeyVignetteIntensity  = "vignetteIntensity"
	KeyBloom              = "bloom"
	KeyBloomThreshold     = "bloomThreshold"
	KeyBloomIntensity     = "bloomIntensity"
	KeyBloomRadius        = "bloomRadius"
	KeyPaletteMode        = "paletteMode"
	KeyDitherMode         = "ditherMode"
	KeyBrightness         = "brightness"
	KeyContrast           = "contrast"
	KeyGamma              = "gamma"
	KeySaturation         = "saturation"
)

// ErrUnknownKey is returned for a key that names no parameter.
var ErrUnknownKey = errors.New("settings: unknown key")

// field binds a file key to one Params field. set accepts the decoded TOML
// value (string, bool, int64 or float64) or raw command-line text.
type field struct {
	key string
	get func(*Params) any
	set func(*Params, any) error
}

// fields lists every parameter in file order.
var fields = []field{
	{KeyColorMode,
		func(p *Params) any { return p.ColorMode.String() },
		func(p *Params, v any) error {
			s, err := toString(v)
			if err != nil {
				return err
			}
			m, err := ParseColorMode(s)
			if err != nil {
				return errors.Wrapf(err, "%q", s)
			}
			p.ColorMode = m
			return nil
		}},
	boolField(KeyScanlines, func(p *Params) *bool { return &p.Scanlines }),
	floatField(KeyScanlinesIntensity, func(p *Params) *float32 { return &p.ScanlinesIntensity }),
	boolField(KeyVignette, func(p *Params) *bool { return &p.Vignette }),
	floatField(KeyVignetteIntensity, func(p *Params) *float32 { return &p.VignetteIntensity }),
	boolField(KeyBloom, func(p *Params) *bool { return &p.Bloom }),
	floatField(KeyBloomThreshold, func(p *Params) *float32 { return &p.BloomThreshold }),
	floatField(KeyBloomIntensity, func(p *Params) *float32 { return &p.BloomIntensity }),
	{KeyBloomRadius,
		func(p *Params) any { return int64(p.BloomRadius) },
		func(p *Params, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			switch {
			case !(f >= MinBloomRadius):
				f = MinBloomRadius
			case f > MaxBloomRadius:
				f = MaxBloomRadius
			}
			p.BloomRadius = int(f)
			return nil
		}},
	{KeyPaletteMode,
		func(p *Params) any { return p.PaletteMode.String() },
		func(p *Params, v any) error {
			s, err := toString(v)
			if err != nil {
				return err
			}
			m, err := ParsePaletteMode(s)
			if err != nil {
				return errors.Wrapf(err, "%q", s)
			}
			p.PaletteMode = m
			return nil
		}},
	{KeyDitherMode,
		func(p *Params) any { return p.DitherMode.String() },
		func(p *Params, v any) error {
			s, err := toString(v)
			if err != nil {
				return err
			}
			m, err := ParseDitherMode(s)
			if err != nil {
				return errors.Wrapf(err, "%q", s)
			}
			p.DitherMode = m
			return nil
		}},
	floatField(KeyBrightness, func(p *Params) *float32 { return &p.Brightness }),
	floatField(KeyContrast, func(p *Params) *float32 { return &p.Contrast }),
	floatField(KeyGamma, func(p *Params) *float32 { return &p.Gamma }),
	floatField(KeySaturation, func(p *Params) *float32 { return &p.Saturation }),
}

func boolField(key string, ptr func(*Params) *bool) field {
	return field{
		key: key,
		get: func(p *Params) any { return *ptr(p) },
		set: func(p *Params, v any) error {
			b, err := toBool(v)
			if err != nil {
				return err
			}
			*ptr(p) = b
			return nil
		},
	}
}

func floatField(key string, ptr func(*Params) *float32) field {
	return field{
		key: key,
		get: func(p *Params) any { return float64Of(*ptr(p)) },
		set: func(p *Params, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			*ptr(p) = float32(f)
			return nil
		},
	}
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.key, key) {
			return f, true
		}
	}
	return field{}, false
}

// Keys returns every settings key in file order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the value of key in p formatted as text.
func (p *Params) Get(key string) (string, error) {
	f, ok := lookupField(key)
	if !ok {
		return "", errors.Wrap(ErrUnknownKey, key)
	}
	return formatValue(f.get(p)), nil
}

// Set parses value and stores it into the field named by key. The result is
// not clamped; use Clamp afterwards.
func (p *Params) Set(key, value string) error {
	f, ok := lookupField(key)
	if !ok {
		return errors.Wrap(ErrUnknownKey, key)
	}
	return errors.Wrapf(f.set(p, value), "settings: %s", f.key)
}

// Set parses value for key and stores it, clamped, as the matching setter
// would. It is the text entry point used by command-line tools.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	cur := s.Snapshot()
	p := cur
	if err := p.Set(key, value); err != nil {
		s.mu.Unlock()
		return err
	}
	s.store(p.Clamp(cur))
	s.mu.Unlock()

	s.markDirty()
	return nil
}

// Each calls fn for every parameter in file order with its current value
// formatted as text.
func (s *Store) Each(fn func(key, value string)) {
	p := s.Snapshot()
	for _, f := range fields {
		fn(f.key, formatValue(f.get(&p)))
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// float64Of widens f through its shortest decimal form so that 0.12 is
// written as 0.12 and not 0.11999999731779099.
func float64Of(f float32) float64 {
	d, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return d
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("want a name, got %T", v)
	}
	return s, nil
}

func toBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, errors.Wrapf(err, "%q", v)
	default:
		return false, errors.Errorf("want a boolean, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, errors.Wrapf(err, "%q", v)
	default:
		return 0, errors.Errorf("want a number, got %T", v)
	}
}
