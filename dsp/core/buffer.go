package core

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible. Reused storage is not cleared.
func EnsureLen[F Float](buf []F, n int) []F {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]F, n)
}
