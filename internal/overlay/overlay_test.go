package overlay

import "testing"

func white(w, h int) []uint32 {
	img := make([]uint32, w*h)
	for i := range img {
		img[i] = 0xFFFFFFFF
	}
	return img
}

func TestScanlinesFullIntensity(t *testing.T) {
	const w, h = 8, 8
	img := white(w, h)
	Scanlines(img, w, h, 1)
	for y := 0; y < h; y++ {
		want := uint32(0xFFFFFFFF)
		if y%2 == 0 {
			want = 0xFF000000
		}
		for x := 0; x < w; x++ {
			if got := img[y*w+x]; got != want {
				t.Fatalf("(%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestScanlinesPartialIntensity(t *testing.T) {
	img := white(2, 2)
	Scanlines(img, 2, 2, 0.5)
	if img[0] != 0xFF7F7F7F {
		t.Errorf("row 0 = %#08x, want 0xff7f7f7f", img[0])
	}
	if img[2] != 0xFFFFFFFF {
		t.Errorf("row 1 = %#08x, want white", img[2])
	}
}

func TestScanlinesZeroIntensity(t *testing.T) {
	img := white(4, 4)
	Scanlines(img, 4, 4, 0)
	for i, p := range img {
		if p != 0xFFFFFFFF {
			t.Fatalf("img[%d] = %#08x, want white", i, p)
		}
	}
}

func TestAlphaStops(t *testing.T) {
	s := stopsFor(1)
	tests := []struct {
		t    float64
		want uint8
	}{
		{0, 0},
		{0.35, 40},
		{0.7, 80},
		{0.85, 115},
		{1, 150},
		{2, 150},
	}
	for _, tt := range tests {
		if got := s.at(tt.t); got != tt.want {
			t.Errorf("at(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestVignetteMaskShape(t *testing.T) {
	const w, h = 41, 41
	var m VignetteMask
	if !m.Update(w, h, 1) {
		t.Fatal("first Update should build the mask")
	}
	center := m.Alpha(20, 20)
	corner := m.Alpha(0, 0)
	edge := m.Alpha(0, 20)
	if center != 0 {
		t.Errorf("center alpha = %d, want 0", center)
	}
	if !(corner > edge && edge > center) {
		t.Errorf("alpha not increasing outward: center %d, edge %d, corner %d", center, edge, corner)
	}
	if corner > 150 {
		t.Errorf("corner alpha = %d, want <= 150", corner)
	}
}

func TestVignetteMaskCaching(t *testing.T) {
	var m VignetteMask
	m.Update(16, 8, 0.5)
	if m.Update(16, 8, 0.5) {
		t.Error("Update with unchanged inputs rebuilt the mask")
	}
	if !m.Update(16, 8, 0.6) {
		t.Error("Update with new intensity did not rebuild")
	}
	if !m.Update(8, 8, 0.6) {
		t.Error("Update with new size did not rebuild")
	}
}

func TestVignetteDarkensEdgesOnly(t *testing.T) {
	const w, h = 33, 33
	img := white(w, h)
	var m VignetteMask
	Vignette(img, w, h, 1, &m)

	if img[16*w+16] != 0xFFFFFFFF {
		t.Errorf("center = %#08x, want white", img[16*w+16])
	}
	if img[0]&0xFF >= 0xFF {
		t.Errorf("corner = %#08x, want darkened", img[0])
	}
	for i, p := range img {
		if p>>24 != 0xFF {
			t.Fatalf("img[%d] alpha = %#x, want opaque", i, p>>24)
		}
	}
}

func TestVignetteZeroIntensity(t *testing.T) {
	img := white(8, 8)
	var m VignetteMask
	Vignette(img, 8, 8, 0, &m)
	for i, p := range img {
		if p != 0xFFFFFFFF {
			t.Fatalf("img[%d] = %#08x, want white", i, p)
		}
	}
}
