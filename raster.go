package framefx

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Raster is a packed ARGB pixel buffer: one 0xAARRGGBB value per pixel with
// straight alpha, rows stored back to back.
type Raster struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Valid reports whether the raster has a positive size and enough pixels.
func (r *Raster) Valid() bool {
	return r != nil && r.Width > 0 && r.Height > 0 && len(r.Pix) >= r.Width*r.Height
}

// PixelAt returns the packed pixel at (x, y), or 0 outside the raster.
func (r *Raster) PixelAt(x, y int) uint32 {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return 0
	}
	return r.Pix[y*r.Width+x]
}

// SetPixel stores a packed pixel at (x, y). Out-of-range writes are ignored.
func (r *Raster) SetPixel(x, y int, p uint32) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	r.Pix[y*r.Width+x] = p
}

// Fill sets every pixel to p.
func (r *Raster) Fill(p uint32) {
	for i := range r.Pix {
		r.Pix[i] = p
	}
}

// Clone returns a deep copy. Use it to keep a rendered frame past the next
// Render call.
func (r *Raster) Clone() *Raster {
	c := &Raster{Width: r.Width, Height: r.Height, Pix: make([]uint32, len(r.Pix))}
	copy(c.Pix, r.Pix)
	return c
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	p := r.PixelAt(x, y)
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToNRGBA converts the raster to an image.NRGBA.
func (r *Raster) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(r.Bounds())
	for y := 0; y < r.Height; y++ {
		row := r.Pix[y*r.Width : y*r.Width+r.Width]
		out := img.Pix[y*img.Stride:]
		for x, p := range row {
			i := x * 4
			out[i+0] = uint8(p >> 16)
			out[i+1] = uint8(p >> 8)
			out[i+2] = uint8(p)
			out[i+3] = uint8(p >> 24)
		}
	}
	return img
}

// FromImage converts any image to a raster. Non-NRGBA images are first
// drawn into an NRGBA buffer so that alpha ends up unpremultiplied.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}

	r := NewRaster(b.Dx(), b.Dy())
	for y := 0; y < r.Height; y++ {
		in := nrgba.Pix[y*nrgba.Stride:]
		row := r.Pix[y*r.Width : y*r.Width+r.Width]
		for x := range row {
			i := x * 4
			row[x] = uint32(in[i+3])<<24 | uint32(in[i+0])<<16 | uint32(in[i+1])<<8 | uint32(in[i+2])
		}
	}
	return r
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToNRGBA())
}
