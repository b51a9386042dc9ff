// Package separable implements the two-pass separable convolution
// pipeline of spec.md §4.3/§4.4: a horizontal row pass over a
// horizontally padded arena produces an accumulator-typed intermediate
// image, then a vertical column pass consumes that intermediate plus
// its own independently row-filtered top/bottom border strips to
// produce the final output. Running both passes through the same row
// executor keeps the x-direction filtering identical for interior rows
// and border strips alike.
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

// Filter runs the two-pass separable pipeline for a pair of 1-D
// kernels (row and column), which may differ in length. Both must be
// odd-length, the shape every arena/kernel routine in this repo
// assumes.
func Filter[T bimage.Number, A filter1d.FloatAccum](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
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

	rowScan := kernel.Scan1D(rowCoeffs)
	rowSym, rowIsSym := kernel.BuildSymmetricScan(rowCoeffs)
	colScan := kernel.Scan1D(colCoeffs)
	colSym, colIsSym := kernel.BuildSymmetricScan(colCoeffs)

	runRow := func(padded []T, out []A) {
		if rowIsSym {
			filter1d.RowPassSymmetric[T, A](padded, width, cn, rowSym, out)
		} else {
			filter1d.RowPassPlain[T, A](padded, width, cn, rowScan, out)
		}
	}

	rowPadded, _, err := arena.Make(src, arena.ArenaPads{Left: padW, Right: padW}, edge, borderConstant)
	if err != nil {
		return err
	}
	rowStride := (width + 2*padW) * cn

	// rowFiltered holds the horizontally filtered image body, one row
	// per source row.
	rowFiltered := make([][]A, height)
	for y := 0; y < height; y++ {
		out := make([]A, width*cn)
		runRow(rowPadded[y*rowStride:(y+1)*rowStride], out)
		rowFiltered[y] = out
	}

	cols, err := arena.MakeColumns(src, padH, edge, borderConstant)
	if err != nil {
		return err
	}
	topFiltered := make([][]A, padH)
	bottomFiltered := make([][]A, padH)
	for i := 0; i < padH; i++ {
		paddedTop, err := arena.MakeRow(cols.TopRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out := make([]A, width*cn)
		runRow(paddedTop, out)
		topFiltered[i] = out

		paddedBottom, err := arena.MakeRow(cols.BottomRow(i), width, cn, padW, edge, borderConstant)
		if err != nil {
			return err
		}
		out2 := make([]A, width*cn)
		runRow(paddedBottom, out2)
		bottomFiltered[i] = out2
	}

	// rowAtFor closes over a destination row y, resolving a column-scan
	// offset i (0..colK-1) to the accumulator row at logical source row
	// y-padH+i, whether that row lives in the body or a border strip.
	rowAtFor := func(y int) filter1d.RowAt[A] {
		return func(i int) []A {
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
				filter1d.ColumnPassSymmetric[A, T](rowAt, width, cn, colSym, outRow)
			} else {
				filter1d.ColumnPassPlain[A, T](rowAt, width, cn, colScan, outRow)
			}
		}
	})
	return nil
}
