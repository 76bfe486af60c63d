package core

// EnsureLen returns a scratch slice of length n, reusing buf's capacity
// when it is large enough. The modulated-tap effects use it to hold a
// copy of the unprocessed input across calls without reallocating.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// CopyInto copies src into dst, stopping at the shorter of the two, and
// returns the number of elements copied.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
