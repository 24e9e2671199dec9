// Command framefx applies the display filter chain to an image file and
// manages the persisted filter settings.
//
// Usage:
//
//	framefx -in frame.png -out big.png -width 480 -height 640
//	framefx -set bloom=true -set bloomRadius=3 -list
//	framefx -reset
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/framefx"
	"github.com/gogpu/framefx/settings"
)

// setFlags collects repeated -set key=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		in       = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out      = flag.String("out", "out.png", "output image (.png or .bmp)")
		width    = flag.Int("width", 0, "output width (default: input width)")
		height   = flag.Int("height", 0, "output height (default: input height)")
		interp   = flag.String("interp", "nearest", "interpolation: nearest or bilinear")
		path     = flag.String("settings", settings.DefaultPath(), "settings file")
		reset    = flag.Bool("reset", false, "reset all settings to defaults")
		list     = flag.Bool("list", false, "print the current settings")
		verbose  = flag.Bool("v", false, "verbose logging")
		setPairs setFlags
	)
	flag.Var(&setPairs, "set", "set a parameter, key=value (repeatable)")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	framefx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mode, ok := framefx.ParseInterpolation(*interp)
	if !ok {
		log.Fatalf("Unknown interpolation %q", *interp)
	}

	store := settings.New(settings.WithPath(*path))
	defer store.Close()

	if *reset {
		store.ResetToDefaults()
	}
	for _, pair := range setPairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			log.Fatalf("Invalid -set %q: want key=value", pair)
		}
		if err := store.Set(strings.TrimSpace(key), value); err != nil {
			log.Fatalf("Invalid -set %q: %v", pair, err)
		}
	}
	if len(setPairs) > 0 {
		if err := store.Save(); err != nil {
			log.Fatalf("Failed to save settings: %v", err)
		}
	}
	if *list {
		store.Each(func(key, value string) {
			fmt.Printf("%-20s %s\n", key, value)
		})
	}

	if *in == "" {
		return
	}
	if err := run(store, *in, *out, *width, *height, mode); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

func run(store *settings.Store, in, out string, w, h int, mode framefx.Interpolation) error {
	src, err := load(in)
	if err != nil {
		return err
	}
	if w <= 0 {
		w = src.Width
	}
	if h <= 0 {
		h = src.Height
	}

	fx := framefx.New(framefx.WithSettings(store))
	dst := fx.NewRenderer().Render(src, w, h, mode)
	if dst == nil {
		return fmt.Errorf("nothing to render for %dx%d -> %dx%d", src.Width, src.Height, w, h)
	}

	if err := save(out, dst); err != nil {
		return err
	}
	log.Printf("Saved %s (%dx%d, filters active: %v)\n", out, w, h, store.HasActiveFilters())
	return nil
}

func load(path string) (*framefx.Raster, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	framefx.Logger().Debug("decoded input", "path", path, "format", format, "bounds", img.Bounds())
	return framefx.FromImage(img), nil
}

func save(path string, r *framefx.Raster) error {
	if !strings.EqualFold(filepath.Ext(path), ".bmp") {
		return r.SavePNG(path)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, r.ToNRGBA()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
