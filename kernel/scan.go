// Package kernel sparsifies 1-D and 2-D kernels into lists of non-zero
// taps and detects the mirror symmetry that lets a row/column executor
// halve its multiply count.
package kernel

import (
	"fmt"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
)

// ScanPoint1D is a single non-zero tap of a 1-D kernel. Offset indexes
// directly into a padded row/column (0 is the first padded element),
// not into the kernel relative to its anchor.
type ScanPoint1D struct {
	Offset int
	Weight float64
}

// Scan1D returns the non-zero taps of coeffs, in order.
func Scan1D(coeffs []float64) []ScanPoint1D {
	out := make([]ScanPoint1D, 0, len(coeffs))
	for i, w := range coeffs {
		if w != 0 {
			out = append(out, ScanPoint1D{Offset: i, Weight: w})
		}
	}
	return out
}

// IsSymmetric reports whether coeffs is mirror-symmetric: coeffs[i] ==
// coeffs[k-1-i] for every i.
func IsSymmetric(coeffs []float64) bool {
	k := len(coeffs)
	for i := 0; i < k/2; i++ {
		if coeffs[i] != coeffs[k-1-i] {
			return false
		}
	}
	return true
}

// SymmetricScan is the halved representation of an odd-length,
// mirror-symmetric kernel: a list of (offset-from-left, weight) pairs
// for the left half plus a single centre tap, so that the executor can
// compute centre*wMid + sum (left_i+right_i)*w_i.
type SymmetricScan struct {
	Half         []ScanPoint1D // offsets 0..k/2-1 into the left half
	CenterOffset int           // offset of the middle tap
	CenterWeight float64
	Length       int // k, the full kernel length
}

// BuildSymmetricScan returns the halved scan for coeffs if it is
// odd-length and mirror-symmetric; ok is false otherwise (the caller
// should fall back to the plain scan).
func BuildSymmetricScan(coeffs []float64) (SymmetricScan, bool) {
	k := len(coeffs)
	if k%2 == 0 || k == 0 || !IsSymmetric(coeffs) {
		return SymmetricScan{}, false
	}
	half := make([]ScanPoint1D, 0, k/2)
	for i := 0; i < k/2; i++ {
		if coeffs[i] != 0 {
			half = append(half, ScanPoint1D{Offset: i, Weight: coeffs[i]})
		}
	}
	mid := k / 2
	return SymmetricScan{Half: half, CenterOffset: mid, CenterWeight: coeffs[mid], Length: k}, true
}

// ScanPoint2D is a single non-zero tap of a 2-D kernel, with X/Y
// centred on the kernel anchor (kw/2, kh/2).
type ScanPoint2D struct {
	X, Y   int
	Weight float64
}

// Scan2D sparsifies a row-major kernel of the given shape into a list
// of non-zero, anchor-centred taps.
func Scan2D(coeffs []float64, shape bimage.KernelShape) ([]ScanPoint2D, error) {
	if len(coeffs) != shape.Width*shape.Height {
		return nil, fmt.Errorf("%w: have=%d want=%d", blurerr.ErrKernelSizeMismatch, len(coeffs), shape.Width*shape.Height)
	}
	cx, cy := shape.Width/2, shape.Height/2
	out := make([]ScanPoint2D, 0, len(coeffs))
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			w := coeffs[y*shape.Width+x]
			if w != 0 {
				out = append(out, ScanPoint2D{X: x - cx, Y: y - cy, Weight: w})
			}
		}
	}
	return out, nil
}

// ScanPoint1DComplex is a non-zero tap of a complex-weighted 1-D
// kernel, used by the complex-exponential Gaussian-approximation row
// pass.
type ScanPoint1DComplex struct {
	Offset int
	Weight complex128
}

// Scan1DComplex returns the non-zero taps of a complex coefficient
// sequence, in order.
func Scan1DComplex(coeffs []complex128) []ScanPoint1DComplex {
	out := make([]ScanPoint1DComplex, 0, len(coeffs))
	for i, w := range coeffs {
		if w != 0 {
			out = append(out, ScanPoint1DComplex{Offset: i, Weight: w})
		}
	}
	return out
}
