// Package tuning holds sigma/radius conversions and kernel-generation
// helpers (Gaussian, tent, box, Laplacian) that turn a blur "intent"
// into the coefficient slices filter1d and filter2d consume, plus the
// good-FFT-size delegation tuning callers need without importing fft2d
// directly.
package tuning

import (
	"math"

	"github.com/cwbudde/blurcore/fft2d"
)

// RadiusForSigma picks a kernel radius wide enough to capture a
// Gaussian's significant mass, the common 3-sigma rule of thumb.
func RadiusForSigma(sigma float64) int {
	r := int(math.Ceil(sigma * 3))
	if r < 1 {
		r = 1
	}
	return r
}

// SigmaForRadius inverts RadiusForSigma's rule of thumb, generalizing
// the teacher's GenerateGaussianKernel derivation (sigma = size/2/3) for
// callers that only have a desired kernel size.
func SigmaForRadius(radius int) float64 {
	return float64(radius) / 3.0
}

// GaussianKernel1D generates a normalised 1-D Gaussian kernel of length
// 2*radius+1.
func GaussianKernel1D(sigma float64, radius int) []float64 {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	kernel := make([]float64, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// TentKernel1D generates a normalised 1-D triangular kernel of length
// 2*radius+1.
func TentKernel1D(radius int) []float64 {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	kernel := make([]float64, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		d := radius - abs(i-radius)
		kernel[i] = float64(d + 1)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// BoxKernel1D generates a uniform 1-D kernel of length 2*radius+1.
func BoxKernel1D(radius int) []float64 {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	kernel := make([]float64, size)
	w := 1.0 / float64(size)
	for i := range kernel {
		kernel[i] = w
	}
	return kernel
}

// Gaussian2D builds the outer product of a 1-D Gaussian kernel with
// itself, for exercising the non-separable direct/FFT path with a
// kernel that happens to be separable.
func Gaussian2D(sigma float64, radius int) []float64 {
	k1 := GaussianKernel1D(sigma, radius)
	size := len(k1)
	out := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[y*size+x] = k1[y] * k1[x]
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LaplacianKernel3x3 is the standard 4-neighbour discrete Laplacian,
// supplemented from the original source's Laplacian filter: it is a
// plain convolution through the existing direct/FFT pipeline, not a
// distinct non-convolution blur.
var LaplacianKernel3x3 = []float64{
	0, 1, 0,
	1, -4, 1,
	0, 1, 0,
}

// LaplacianKernel5x5 is a wider discrete Laplacian approximation with
// the same zero-sum property.
var LaplacianKernel5x5 = []float64{
	0, 0, -1, 0, 0,
	0, -1, -2, -1, 0,
	-1, -2, 16, -2, -1,
	0, -1, -2, -1, 0,
	0, 0, -1, 0, 0,
}

// NextGoodFFTSize delegates to fft2d's size search, exposed here so
// callers tuning a blur don't need to import fft2d directly just to
// pick a kernel radius that pads to an efficient transform size.
func NextGoodFFTSize(n int) int {
	return fft2d.NextGoodSize(n)
}
