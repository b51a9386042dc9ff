package fft2d

// RealForward computes the forward real-to-complex DFT of src (length
// n), writing the n/2+1 non-redundant spectral bins into dst: the upper
// half is reconstructed by conjugate symmetry on the inverse side rather
// than computed, since a real signal's spectrum is fully determined by
// its first n/2+1 bins.
func RealForward[F Float, C Complex](dst []C, src []F) {
	n := len(src)
	full := make([]C, n)
	for i, v := range src {
		full[i] = toComplex[F, C](v)
	}
	Forward(full)
	copy(dst, full[:n/2+1])
}

// RealInverse reconstructs the full spectrum of a length-n real signal
// from its n/2+1 non-redundant bins in src via conjugate symmetry, then
// writes the real part of the inverse transform into dst (length n).
func RealInverse[F Float, C Complex](dst []F, src []C, n int) {
	full := make([]C, n)
	copy(full, src)
	for k := len(src); k < n; k++ {
		full[k] = conjugate(full[n-k])
	}
	Inverse(full)
	for i, c := range full {
		dst[i] = unpackReal[F, C](c)
	}
}

func toComplex[F Float, C Complex](v F) C {
	return C(complex(float64(v), 0))
}

func unpackReal[F Float, C Complex](c C) F {
	switch v := any(c).(type) {
	case complex64:
		return F(real(v))
	case complex128:
		return F(real(v))
	default:
		var zero F
		return zero
	}
}
