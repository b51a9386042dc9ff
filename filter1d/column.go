package filter1d

import (
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/numeric"
)

// RowAt fetches the accumulator-typed row at scan offset i (0..k-1),
// already resolved against the image body and its top/bottom arena
// padding strips by the caller.
type RowAt[A any] func(i int) []A

// ColumnPassPlain computes one destination row from k accumulator rows,
// casting the weighted sum down to storage type D with the standard
// cast policy (round-half-to-even then saturate for integer D).
func ColumnPassPlain[A FloatAccum, D bimage.Number](rowAt RowAt[A], width, cn int, scan []kernel.ScanPoint1D, outRow []D) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc float64
			for _, p := range scan {
				row := rowAt(p.Offset)
				acc += numeric.ToFloat64(row[base+c]) * p.Weight
			}
			outRow[base+c] = numeric.FromFloat64[D](acc)
		}
	}
}

// ColumnPassSymmetric is the mirror-symmetric counterpart of
// ColumnPassPlain, centre-first.
func ColumnPassSymmetric[A FloatAccum, D bimage.Number](rowAt RowAt[A], width, cn int, sym kernel.SymmetricScan, outRow []D) {
	centreRow := rowAt(sym.CenterOffset)
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			acc := numeric.ToFloat64(centreRow[base+c]) * sym.CenterWeight
			for _, p := range sym.Half {
				l := rowAt(p.Offset)
				r := rowAt(sym.Length - 1 - p.Offset)
				acc += (numeric.ToFloat64(l[base+c]) + numeric.ToFloat64(r[base+c])) * p.Weight
			}
			outRow[base+c] = numeric.FromFloat64[D](acc)
		}
	}
}
