package filter1d

import (
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/numeric"
)

// RowPassPlain computes, for every output pixel x in [0, width) and
// channel c, sum over scan of padded[(x+offset)*cn+c] * weight, storing
// the result as accumulator type A. padded must have length at least
// (width+maxOffset)*cn.
func RowPassPlain[S bimage.Number, A FloatAccum](padded []S, width, cn int, scan []kernel.ScanPoint1D, out []A) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc float64
			for _, p := range scan {
				acc += numeric.ToFloat64(padded[(x+p.Offset)*cn+c]) * p.Weight
			}
			out[base+c] = A(acc)
		}
	}
}

// RowPassSymmetric exploits a mirror-symmetric, odd-length kernel to
// halve the multiply count: centre*wMid is accumulated first, then each
// mirrored pair (left_i+right_i)*w_i, matching the fixed reduction
// order the plain path would produce for the same weights within
// floating-point tolerance.
func RowPassSymmetric[S bimage.Number, A FloatAccum](padded []S, width, cn int, sym kernel.SymmetricScan, out []A) {
	k := sym.Length
	for x := 0; x < width; x++ {
		base := x * cn
		centreIdx := (x + sym.CenterOffset) * cn
		for c := 0; c < cn; c++ {
			acc := numeric.ToFloat64(padded[centreIdx+c]) * sym.CenterWeight
			for _, p := range sym.Half {
				l := numeric.ToFloat64(padded[(x+p.Offset)*cn+c])
				r := numeric.ToFloat64(padded[(x+k-1-p.Offset)*cn+c])
				acc += (l + r) * p.Weight
			}
			out[base+c] = A(acc)
		}
	}
}

// RowPassPlaneF32 is the single-channel, float32-storage/float32-accumulator
// specialisation used by the Gaussian separable pipeline: when the scan
// is dense (every offset 0..k-1 present, the common case for a
// normalised Gaussian/tent/box kernel) it delegates to dotF32's unrolled
// loop against a plain contiguous window instead of re-walking the scan.
func RowPassPlaneF32(padded []float32, width int, scan []kernel.ScanPoint1D, out []float32) {
	if weights, ok := denseWeightsF32(scan); ok {
		k := len(weights)
		for x := 0; x < width; x++ {
			out[x] = dotF32(weights, padded[x:x+k])
		}
		return
	}
	for x := 0; x < width; x++ {
		var acc float32
		for _, p := range scan {
			acc += padded[x+p.Offset] * float32(p.Weight)
		}
		out[x] = acc
	}
}

// denseWeightsF32 returns the contiguous float32 weight vector of scan
// if its offsets run 0..len(scan)-1 without gaps, so the row can be dot
// producted against a plain contiguous window.
func denseWeightsF32(scan []kernel.ScanPoint1D) ([]float32, bool) {
	if len(scan) == 0 {
		return nil, false
	}
	weights := make([]float32, len(scan))
	for i, p := range scan {
		if p.Offset != i {
			return nil, false
		}
		weights[i] = float32(p.Weight)
	}
	return weights, true
}
