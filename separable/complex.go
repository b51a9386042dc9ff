package separable

import (
	"fmt"

	"github.com/cwbudde/blurcore/arena"
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/filter1d"
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/schedule"
)

// FilterComplex is the complex-coefficient counterpart of Filter: the
// numeric representation spec.md §4.3 reserves for complex-exponential
// Gaussian approximations. The row pass emits complex64 intermediates;
// the column pass multiplies by the column's complex taps, sums, and
// keeps only the real part, narrowed to storage type T.
func FilterComplex[T bimage.Number](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
	rowCoeffs, colCoeffs []complex128,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
	policy schedule.ThreadingPolicy,
) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	if len(rowCoeffs)%2 == 0 || len(colCoeffs)%2 == 0 {
		return fmt.Errorf("%w: row=%d col=%d", blurerr.ErrOddKernel, len(rowCoeffs), len(colCoeffs))
	}

	width, height, cn := src.Width(), src.Height(), src.Channels()
	padW := len(rowCoeffs) / 2
	padH := len(colCoeffs) / 2

	rowScan := kernel.Scan1DComplex(rowCoeffs)
	colScan := kernel.Scan1DComplex(colCoeffs)

	rowPadded, _, err := arena.Make(src, arena.ArenaPads{Left: padW, Right: padW}, edge, borderConstant)
	if err != nil {
		return err
	}
	rowStride := (width + 2*padW) * cn

	rowFiltered := make([][]complex64, height)
	for y := 0; y < height; y++ {
		out := make([]complex64, width*cn)
		filter1d.RowPassComplex(rowPadded[y*rowStride:(y+1)*rowStride], width, cn, rowScan, out)
		rowFiltered[y] = out
	}

	cols, err := arena.MakeColumns(src, padH, edge, borderConstant)
	if err != nil {
		return err
	}
	topFiltered := make([][]complex64, padH)
	bottomFiltered := make([][]complex64, padH)
	for i := 0; i < padH; i++ {
		paddedTop, err := arena.MakeRow(cols.TopRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out := make([]complex64, width*cn)
		filter1d.RowPassComplex(paddedTop, width, cn, rowScan, out)
		topFiltered[i] = out

		paddedBottom, err := arena.MakeRow(cols.BottomRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out2 := make([]complex64, width*cn)
		filter1d.RowPassComplex(paddedBottom, width, cn, rowScan, out2)
		bottomFiltered[i] = out2
	}

	rowAtFor := func(y int) filter1d.RowAt[complex64] {
		return func(i int) []complex64 {
			logical := y - padH + i
			switch {
			case logical < 0:
				return topFiltered[logical+padH]
			case logical >= height:
				return bottomFiltered[logical-height]
			default:
				return rowFiltered[logical]
			}
		}
	}

	schedule.ForEachRowBand(width, height, policy, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			filter1d.ColumnPassComplex(rowAtFor(y), width, cn, colScan, dst.Row(y))
		}
	})
	return nil
}

// FilterComplexQ15 is the fixed-point complex-coefficient path: weights
// are Q15-quantised once, the row pass accumulates int32 real/imaginary
// parts into ComplexQ15 samples, and the column pass keeps only the
// real part of the product after a single final Q15 shift. Only uint8
// storage is supported, matching FilterQ15's fixed-point fast path.
func FilterComplexQ15(
	src *bimage.BlurImage[uint8],
	dst *bimage.BlurImageMut[uint8],
	rowCoeffs, colCoeffs []complex128,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
	policy schedule.ThreadingPolicy,
) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	if len(rowCoeffs)%2 == 0 || len(colCoeffs)%2 == 0 {
		return fmt.Errorf("%w: row=%d col=%d", blurerr.ErrOddKernel, len(rowCoeffs), len(colCoeffs))
	}

	width, height, cn := src.Width(), src.Height(), src.Channels()
	padW := len(rowCoeffs) / 2
	padH := len(colCoeffs) / 2

	rowScan := kernel.BuildQ15ComplexScan(kernel.Scan1DComplex(rowCoeffs))
	colScan := kernel.BuildQ15ComplexScan(kernel.Scan1DComplex(colCoeffs))

	rowPadded, _, err := arena.Make(src, arena.ArenaPads{Left: padW, Right: padW}, edge, borderConstant)
	if err != nil {
		return err
	}
	rowStride := (width + 2*padW) * cn

	rowFiltered := make([][]filter1d.ComplexQ15, height)
	for y := 0; y < height; y++ {
		out := make([]filter1d.ComplexQ15, width*cn)
		filter1d.RowPassComplexQ15(rowPadded[y*rowStride:(y+1)*rowStride], width, cn, rowScan, out)
		rowFiltered[y] = out
	}

	cols, err := arena.MakeColumns(src, padH, edge, borderConstant)
	if err != nil {
		return err
	}
	topFiltered := make([][]filter1d.ComplexQ15, padH)
	bottomFiltered := make([][]filter1d.ComplexQ15, padH)
	for i := 0; i < padH; i++ {
		paddedTop, err := arena.MakeRow(cols.TopRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out := make([]filter1d.ComplexQ15, width*cn)
		filter1d.RowPassComplexQ15(paddedTop, width, cn, rowScan, out)
		topFiltered[i] = out

		paddedBottom, err := arena.MakeRow(cols.BottomRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out2 := make([]filter1d.ComplexQ15, width*cn)
		filter1d.RowPassComplexQ15(paddedBottom, width, cn, rowScan, out2)
		bottomFiltered[i] = out2
	}

	rowAtFor := func(y int) filter1d.RowAt[filter1d.ComplexQ15] {
		return func(i int) []filter1d.ComplexQ15 {
			logical := y - padH + i
			switch {
			case logical < 0:
				return topFiltered[logical+padH]
			case logical >= height:
				return bottomFiltered[logical-height]
			default:
				return rowFiltered[logical]
			}
		}
	}

	schedule.ForEachRowBand(width, height, policy, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			filter1d.ColumnPassComplexQ15(rowAtFor(y), width, cn, colScan, dst.Row(y))
		}
	})
	return nil
}
