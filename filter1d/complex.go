package filter1d

import (
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/numeric"
)

// RowPassComplex evaluates a complex-weighted row scan (used by the
// complex-exponential Gaussian approximation) over real storage,
// producing complex128-precision samples narrowed to complex64 for the
// row-pass intermediate buffer.
func RowPassComplex[S bimage.Number](padded []S, width, cn int, scan []kernel.ScanPoint1DComplex, out []complex64) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc complex128
			for _, p := range scan {
				v := numeric.ToFloat64(padded[(x+p.Offset)*cn+c])
				acc += complex(v, 0) * p.Weight
			}
			out[base+c] = complex64(acc)
		}
	}
}

// ColumnPassComplex multiplies the row-pass complex intermediate by the
// column's complex coefficients, sums, and keeps only the real part,
// cast down to storage type D.
func ColumnPassComplex[D bimage.Number](rowAt RowAt[complex64], width, cn int, scan []kernel.ScanPoint1DComplex, outRow []D) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc complex128
			for _, p := range scan {
				row := rowAt(p.Offset)
				acc += complex128(row[base+c]) * p.Weight
			}
			outRow[base+c] = numeric.FromFloat64[D](real(acc))
		}
	}
}

// ComplexQ15 is a fixed-point complex sample: both components are plain
// (not Q15-scaled) int16 pixel-scale values, the Q15 scaling lives only
// in the tap weights.
type ComplexQ15 struct {
	Re, Im int16
}

// RowPassComplexQ15 is the fixed-point counterpart of RowPassComplex:
// accumulates real/imaginary parts in int32 against Q15-quantised
// weights, then applies the standard round-and-shift before narrowing.
func RowPassComplexQ15(padded []uint8, width, cn int, qscan []kernel.QScanPoint1DComplex, out []ComplexQ15) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var accRe, accIm int32
			for _, p := range qscan {
				v := int32(padded[(x+p.Offset)*cn+c])
				accRe += v * int32(p.WeightReQ15)
				accIm += v * int32(p.WeightImQ15)
			}
			out[base+c] = ComplexQ15{
				Re: numeric.SaturateInt32ToInt16(numeric.ApplyQ15Shift(accRe)),
				Im: numeric.SaturateInt32ToInt16(numeric.ApplyQ15Shift(accIm)),
			}
		}
	}
}

// ColumnPassComplexQ15 multiplies the fixed-point complex row
// intermediate by Q15-quantised column weights, accumulating only the
// real part (ac-bd) across taps in int64 before a single final Q15
// shift, narrowing to storage type D.
func ColumnPassComplexQ15[D bimage.Number](rowAt RowAt[ComplexQ15], width, cn int, qscan []kernel.QScanPoint1DComplex, outRow []D) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc int64
			for _, p := range qscan {
				row := rowAt(p.Offset)
				v := row[base+c]
				acc += int64(v.Re)*int64(p.WeightReQ15) - int64(v.Im)*int64(p.WeightImQ15)
			}
			shifted := (acc + numeric.Q15RoundBias) >> 15
			outRow[base+c] = numeric.FromFloat64[D](float64(shifted))
		}
	}
}
