package scratch

// Set is the working storage of one renderer. It is not safe for
// concurrent use.
type Set struct {
	source  []uint32
	dest    []uint32
	bloomA  []uint32
	bloomB  []uint32
	line    []uint32
	errRows []float32

	allocs int
}

// Ensure returns buf resized to n elements, allocating only when its
// capacity is too small. The second result reports an allocation.
// Reused storage keeps its old contents.
func Ensure[T any](buf []T, n int) ([]T, bool) {
	if n < 0 {
		n = 0
	}
	if cap(buf) >= n {
		return buf[:n], false
	}
	return make([]T, n), true
}

func (s *Set) grow(buf *[]uint32, n int) []uint32 {
	b, grown := Ensure(*buf, n)
	if grown {
		s.allocs++
	}
	*buf = b
	return b
}

// Source returns the source-resolution buffer holding n pixels.
func (s *Set) Source(n int) []uint32 {
	return s.grow(&s.source, n)
}

// Dest returns the destination-resolution buffer holding n pixels.
func (s *Set) Dest(n int) []uint32 {
	return s.grow(&s.dest, n)
}

// Bloom returns the two bloom buffers of n pixels and the blur line buffer
// for a frame of height h.
func (s *Set) Bloom(n, h int) (a, b, line []uint32) {
	return s.grow(&s.bloomA, n), s.grow(&s.bloomB, n), s.grow(&s.line, h)
}

// ErrorRows returns n float32 values for Floyd-Steinberg error rows.
func (s *Set) ErrorRows(n int) []float32 {
	b, grown := Ensure(s.errRows, n)
	if grown {
		s.allocs++
	}
	s.errRows = b
	return b
}

// Allocs returns how many times a buffer had to be allocated.
func (s *Set) Allocs() int { return s.allocs }

// Bytes returns the memory held by the set.
func (s *Set) Bytes() int {
	n := cap(s.source) + cap(s.dest) + cap(s.bloomA) + cap(s.bloomB) + cap(s.line)
	return 4 * (n + cap(s.errRows))
}

// Release drops every buffer.
func (s *Set) Release() {
	*s = Set{allocs: s.allocs}
}
