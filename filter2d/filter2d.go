// Package filter2d implements non-separable 2-D convolution: a sparse
// scan of the kernel's non-zero taps is walked once per output pixel,
// with an optional Q15 fixed-point fast path for uint8 storage.
package filter2d

import (
	"github.com/cwbudde/blurcore/arena"
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/numeric"
	"github.com/cwbudde/blurcore/schedule"
)

// Filter2D computes, for every output pixel and channel, the weighted
// sum of the kernel's non-zero taps read through a border-padded
// arena, dispatching row bands across policy's workers.
func Filter2D[T bimage.Number](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
	coeffs []float64,
	shape bimage.KernelShape,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
	policy schedule.ThreadingPolicy,
) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	points, err := kernel.Scan2D(coeffs, shape)
	if err != nil {
		return err
	}
	width, height, cn := src.Width(), src.Height(), src.Channels()

	if len(points) == 0 {
		for y := 0; y < height; y++ {
			copy(dst.Row(y), src.Row(y))
		}
		return nil
	}

	pads := arena.FromKernelShape(shape)
	padded, ar, err := arena.Make(src, pads, edge, borderConstant)
	if err != nil {
		return err
	}

	if paddedU8, ok := any(padded).([]uint8); ok {
		qpoints := kernel.BuildQ15Scan2D(points)
		schedule.ForEachRowBand(width, height, policy, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				outRow := any(dst.Row(y)).([]uint8)
				convolveSegment2DQ15(paddedU8, ar, width, cn, y, qpoints, outRow)
			}
		})
		return nil
	}

	schedule.ForEachRowBand(width, height, policy, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			convolveSegment2D(padded, ar, width, cn, y, points, dst.Row(y))
		}
	})
	return nil
}

// convolveSegment2D is the default executor: an outer loop over the
// sparse scan and an inner loop over the output row, unrolled by 4 for
// the common single-channel case.
func convolveSegment2D[T bimage.Number](padded []T, ar arena.Arena, width, cn, y int, points []kernel.ScanPoint2D, outRow []T) {
	stride := ar.Stride()
	rowBase := (y+ar.PadH)*stride + ar.PadW*cn

	if cn == 1 {
		x := 0
		for ; x+4 <= width; x += 4 {
			var acc0, acc1, acc2, acc3 float64
			for _, p := range points {
				off := rowBase + p.Y*stride + p.X
				acc0 += numeric.ToFloat64(padded[off+x]) * p.Weight
				acc1 += numeric.ToFloat64(padded[off+x+1]) * p.Weight
				acc2 += numeric.ToFloat64(padded[off+x+2]) * p.Weight
				acc3 += numeric.ToFloat64(padded[off+x+3]) * p.Weight
			}
			outRow[x] = numeric.FromFloat64[T](acc0)
			outRow[x+1] = numeric.FromFloat64[T](acc1)
			outRow[x+2] = numeric.FromFloat64[T](acc2)
			outRow[x+3] = numeric.FromFloat64[T](acc3)
		}
		for ; x < width; x++ {
			var acc float64
			for _, p := range points {
				acc += numeric.ToFloat64(padded[rowBase+p.Y*stride+p.X+x]) * p.Weight
			}
			outRow[x] = numeric.FromFloat64[T](acc)
		}
		return
	}

	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc float64
			for _, p := range points {
				idx := rowBase + x*cn + p.Y*stride + p.X*cn + c
				acc += numeric.ToFloat64(padded[idx]) * p.Weight
			}
			outRow[base+c] = numeric.FromFloat64[T](acc)
		}
	}
}

// convolveSegment2DQ15 is the optional fixed-point fast path: weights
// are pre-quantised into int16, the accumulator runs in int32 with the
// standard round-and-shift, and the result saturates into uint8.
func convolveSegment2DQ15(padded []uint8, ar arena.Arena, width, cn, y int, qpoints []kernel.QScanPoint2D, outRow []uint8) {
	stride := ar.Stride()
	rowBase := (y+ar.PadH)*stride + ar.PadW*cn

	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc int32
			for _, p := range qpoints {
				idx := rowBase + x*cn + p.Y*stride + p.X*cn + c
				acc += int32(padded[idx]) * int32(p.WeightQ15)
			}
			outRow[base+c] = numeric.SaturateInt32ToUint8(numeric.ApplyQ15Shift(acc))
		}
	}
}
