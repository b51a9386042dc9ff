// Package fft2d implements the FFT-based 2-D convolution path: a
// generic 1-D complex transform (radix-2, with a Bluestein chirp-z
// fallback for lengths that are not a power of two), a real-to-complex
// variant built on top of it, and the row/transpose/row 2-D orchestration
// that applies it to image planes.
//
// No FFT library appears anywhere in the reference corpus (the complete
// example repos' dependency surface is golang.org/x/image,
// golang.org/x/sync, golang.org/x/exp, spf13/cobra, and ebiten's
// windowing stack), so this transform is a from-scratch implementation
// on Go's built-in complex arithmetic and the math package rather than a
// wired dependency.
package fft2d

import "math"

// Float is the real element type paired with a Complex instantiation.
type Float interface {
	~float32 | ~float64
}

// Complex is the complex element type a transform operates over.
type Complex interface {
	~complex64 | ~complex128
}

// Forward computes the in-place forward DFT of data (any length),
// unnormalised.
func Forward[C Complex](data []C) { dft(data, -1) }

// Inverse computes the in-place inverse DFT of data (any length),
// including the 1/n normalisation.
func Inverse[C Complex](data []C) {
	dft(data, 1)
	n := len(data)
	if n == 0 {
		return
	}
	inv := 1.0 / float64(n)
	for i := range data {
		data[i] = scale(data[i], inv)
	}
}

func dft[C Complex](data []C, sign float64) {
	n := len(data)
	if n <= 1 {
		return
	}
	if isPow2(n) {
		radix2(data, sign)
		return
	}
	bluestein(data, sign)
}

func isPow2(n int) bool { return n&(n-1) == 0 }

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// radix2 computes the unnormalised DFT of data in place via iterative
// Cooley-Tukey. len(data) must be a power of two.
func radix2[C Complex](data []C, sign float64) {
	n := len(data)
	bitReverse(data)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := sign * 2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := twiddle[C](angleStep * float64(k))
				a := data[start+k]
				b := data[start+k+half] * w
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}

func bitReverse[C Complex](data []C) {
	n := len(data)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}

func twiddle[C Complex](theta float64) C {
	return C(complex(math.Cos(theta), math.Sin(theta)))
}

func scale[C Complex](c C, s float64) C {
	return c * C(complex(s, 0))
}

func conjugate[C Complex](c C) C {
	switch v := any(c).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(complex(real(v), -imag(v))).(C)
	default:
		var zero C
		return zero
	}
}

// bluestein computes the unnormalised DFT of data (any length n) via the
// chirp-z transform: X[k] = chirp[k] * sum_j (x[j]*chirp[j]) * conj(chirp[k-j]),
// where the underlying convolution is carried out by a power-of-two
// radix-2 FFT sized to avoid wrap-around aliasing.
func bluestein[C Complex](data []C, sign float64) {
	n := len(data)
	m := nextPow2(2*n - 1)

	chirp := make([]C, n)
	for k := 0; k < n; k++ {
		theta := sign * math.Pi * float64(k) * float64(k) / float64(n)
		chirp[k] = twiddle[C](theta)
	}

	a := make([]C, m)
	b := make([]C, m)
	for j := 0; j < n; j++ {
		a[j] = data[j] * chirp[j]
	}
	b[0] = conjugate(chirp[0])
	for j := 1; j < n; j++ {
		c := conjugate(chirp[j])
		b[j] = c
		b[m-j] = c
	}

	radix2(a, -1)
	radix2(b, -1)
	for i := range a {
		a[i] = a[i] * b[i]
	}
	radix2(a, 1)
	invM := 1.0 / float64(m)
	for i := range a {
		a[i] = scale(a[i], invM)
	}

	for k := 0; k < n; k++ {
		data[k] = chirp[k] * a[k]
	}
}
