// Package framefx is a CPU post-processing pipeline for emulated device
// displays.
//
// # Overview
//
// A frame produced by the emulator is a small packed ARGB raster. framefx
// scales it to the window size and applies a fixed chain of cosmetic and
// diagnostic effects on the way:
//
//	source -> color/tone -> scale -> bloom -> palette/dither -> scanlines -> vignette
//
// Each stage is skipped when its settings make it a no-op. With every
// effect off, a render is a plain nearest or bilinear resample.
//
// # Quick Start
//
//	store := settings.New()
//	defer store.Close()
//
//	fx := framefx.New(framefx.WithSettings(store))
//	r := fx.NewRenderer()
//
//	for frame := range frames {
//		out := r.Render(frame, winW, winH, framefx.InterpNearest)
//		present(out) // valid until the next Render on r
//	}
//
// # Memory
//
// A Renderer owns all of its working buffers. After the first frame at a
// given size, Render does not allocate. The returned raster is borrowed
// from the renderer and is overwritten by the next call.
//
// # Concurrency
//
// A Renderer must be used by one goroutine at a time. Goroutines rendering
// in parallel either create their own with NewRenderer or fetch one per
// worker id with Pipeline.Worker. Settings may be changed from any
// goroutine while frames render; a frame may observe a mix of old and new
// values.
//
// # Pixel Format
//
// Rasters hold straight (non-premultiplied) alpha packed as 0xAARRGGBB, one
// uint32 per pixel, rows stored back to back with no padding.
package framefx
