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

// FilterQ15 is the saturating fixed-point counterpart of Filter: both
// kernels are quantised once into Q15 and the row/column passes run in
// int32 with the standard round-and-shift, the policy-selected
// numeric representation spec.md §4.3 calls out alongside the
// floating-point and complex paths. Only uint8 storage is supported,
// matching the core's fixed-point fast path.
func FilterQ15(
	src *bimage.BlurImage[uint8],
	dst *bimage.BlurImageMut[uint8],
	rowCoeffs, colCoeffs []float64,
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

	rowScan := kernel.BuildQ15Scan(kernel.Scan1D(rowCoeffs))
	rowSym, rowIsSym := kernel.BuildSymmetricScan(rowCoeffs)
	qRowSym := kernel.BuildQ15SymmetricScan(rowSym)
	colScan := kernel.BuildQ15Scan(kernel.Scan1D(colCoeffs))
	colSym, colIsSym := kernel.BuildSymmetricScan(colCoeffs)
	qColSym := kernel.BuildQ15SymmetricScan(colSym)

	runRow := func(padded []uint8, out []int16) {
		if rowIsSym {
			filter1d.RowPassQ15Symmetric(padded, width, cn, qRowSym, out)
		} else {
			filter1d.RowPassQ15Plain(padded, width, cn, rowScan, out)
		}
	}

	rowPadded, _, err := arena.Make(src, arena.ArenaPads{Left: padW, Right: padW}, edge, borderConstant)
	if err != nil {
		return err
	}
	rowStride := (width + 2*padW) * cn

	rowFiltered := make([][]int16, height)
	for y := 0; y < height; y++ {
		out := make([]int16, width*cn)
		runRow(rowPadded[y*rowStride:(y+1)*rowStride], out)
		rowFiltered[y] = out
	}

	cols, err := arena.MakeColumns(src, padH, edge, borderConstant)
	if err != nil {
		return err
	}
	topFiltered := make([][]int16, padH)
	bottomFiltered := make([][]int16, padH)
	for i := 0; i < padH; i++ {
		paddedTop, err := arena.MakeRow(cols.TopRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out := make([]int16, width*cn)
		runRow(paddedTop, out)
		topFiltered[i] = out

		paddedBottom, err := arena.MakeRow(cols.BottomRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out2 := make([]int16, width*cn)
		runRow(paddedBottom, out2)
		bottomFiltered[i] = out2
	}

	rowAtFor := func(y int) filter1d.RowAt[int16] {
		return func(i int) []int16 {
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
			rowAt := rowAtFor(y)
			outRow := dst.Row(y)
			if colIsSym {
				filter1d.ColumnPassQ15Symmetric(rowAt, width, cn, qColSym, outRow)
			} else {
				filter1d.ColumnPassQ15Plain(rowAt, width, cn, colScan, outRow)
			}
		}
	})
	return nil
}
