package filter

// Test helper functions shared across filter tests.

// solid returns n pixels of color c.
func solid(n int, c uint32) []uint32 {
	pix := make([]uint32, n)
	for i := range pix {
		pix[i] = c
	}
	return pix
}

// formatInt formats a non-negative integer for benchmark names without fmt.
func formatInt(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return formatInt(i/10) + string(rune('0'+i%10))
}
