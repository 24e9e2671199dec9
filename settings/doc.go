// Package settings holds the filter configuration read by the frame
// pipeline on every frame.
//
// A Store is created once per process and passed to whoever needs it:
//
//	store := settings.New(
//		settings.WithPath(path),
//		settings.WithRedrawer(settings.RedrawFunc(view.Invalidate)),
//	)
//	defer store.Close()
//
//	store.SetBloom(true)
//	store.SetBloomRadius(9) // clamped to 5
//
// Setters never fail: numeric values are clamped into their range and
// unknown enum values are ignored. Each change schedules a debounced save of
// the settings file; a reset saves synchronously and asks the view to
// redraw.
//
// Getters are lock-free. A frame that reads several fields while another
// goroutine updates them may observe a mix of old and new values.
package settings
