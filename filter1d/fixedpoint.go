package filter1d

import (
	"github.com/cwbudde/blurcore/kernel"
	"github.com/cwbudde/blurcore/numeric"
)

// RowPassQ15Plain is the saturating Q15 fixed-point row executor for
// uint8 storage: the accumulator runs in int32, the result is rounded
// half-up via a pre-added bias and narrowed into int16 (not yet into
// uint8 - the column pass performs the final narrowing).
func RowPassQ15Plain(padded []uint8, width, cn int, qscan []kernel.QScanPoint1D, out []int16) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc int32
			for _, p := range qscan {
				acc += int32(padded[(x+p.Offset)*cn+c]) * int32(p.WeightQ15)
			}
			out[base+c] = numeric.SaturateInt32ToInt16(numeric.ApplyQ15Shift(acc))
		}
	}
}

// RowPassQ15Symmetric is the mirror-symmetric counterpart of
// RowPassQ15Plain.
func RowPassQ15Symmetric(padded []uint8, width, cn int, qsym kernel.QSymmetricScan, out []int16) {
	k := qsym.Length
	for x := 0; x < width; x++ {
		base := x * cn
		centreIdx := (x + qsym.CenterOffset) * cn
		for c := 0; c < cn; c++ {
			acc := int32(padded[centreIdx+c]) * int32(qsym.CenterWeightQ15)
			for i, off := range qsym.HalfOffsets {
				l := padded[(x+off)*cn+c]
				r := padded[(x+k-1-off)*cn+c]
				acc += (int32(l) + int32(r)) * int32(qsym.HalfWeightsQ15[i])
			}
			out[base+c] = numeric.SaturateInt32ToInt16(numeric.ApplyQ15Shift(acc))
		}
	}
}

// ColumnPassQ15Plain consumes the int16 row-pass intermediate and
// narrows it into uint8 with the same Q15 shift-and-saturate contract.
func ColumnPassQ15Plain(rowAt RowAt[int16], width, cn int, qscan []kernel.QScanPoint1D, outRow []uint8) {
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			var acc int32
			for _, p := range qscan {
				row := rowAt(p.Offset)
				acc += int32(row[base+c]) * int32(p.WeightQ15)
			}
			outRow[base+c] = numeric.SaturateInt32ToUint8(numeric.ApplyQ15Shift(acc))
		}
	}
}

// ColumnPassQ15Symmetric is the mirror-symmetric counterpart of
// ColumnPassQ15Plain.
func ColumnPassQ15Symmetric(rowAt RowAt[int16], width, cn int, qsym kernel.QSymmetricScan, outRow []uint8) {
	k := qsym.Length
	centreRow := rowAt(qsym.CenterOffset)
	for x := 0; x < width; x++ {
		base := x * cn
		for c := 0; c < cn; c++ {
			acc := int32(centreRow[base+c]) * int32(qsym.CenterWeightQ15)
			for i, off := range qsym.HalfOffsets {
				l := rowAt(off)
				r := rowAt(k - 1 - off)
				acc += (int32(l[base+c]) + int32(r[base+c])) * int32(qsym.HalfWeightsQ15[i])
			}
			outRow[base+c] = numeric.SaturateInt32ToUint8(numeric.ApplyQ15Shift(acc))
		}
	}
}
