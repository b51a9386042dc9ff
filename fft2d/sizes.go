package fft2d

// NextGoodSize returns the smallest integer >= n whose only prime
// factors are 2, 3, 5, or 7 — the "good size" the pad selection step
// uses. Forward and Inverse take the radix-2 path only when the size is
// a power of two; every other size, smooth or not, goes through the
// Bluestein fallback.
func NextGoodSize(n int) int {
	if n < 1 {
		return 1
	}
	for m := n; ; m++ {
		if isSmooth(m) {
			return m
		}
	}
}

func isSmooth(n int) bool {
	for _, p := range [...]int{2, 3, 5, 7} {
		for n%p == 0 {
			n /= p
		}
	}
	return n == 1
}
