package kernel

import "github.com/cwbudde/blurcore/numeric"

// QScanPoint1D is a Scan1D tap with its weight pre-quantised into Q15
// fixed point, for the saturating integer row/column executors.
type QScanPoint1D struct {
	Offset    int
	WeightQ15 int16
}

// BuildQ15Scan quantises every tap weight of points into Q15.
func BuildQ15Scan(points []ScanPoint1D) []QScanPoint1D {
	out := make([]QScanPoint1D, len(points))
	for i, p := range points {
		out[i] = QScanPoint1D{Offset: p.Offset, WeightQ15: numeric.QuantizeQ15(p.Weight)}
	}
	return out
}

// QSymmetricScan is the Q15-quantised counterpart of SymmetricScan.
type QSymmetricScan struct {
	HalfOffsets    []int
	HalfWeightsQ15 []int16
	CenterOffset   int
	CenterWeightQ15 int16
	Length         int
}

// BuildQ15SymmetricScan quantises sym's weights into Q15.
func BuildQ15SymmetricScan(sym SymmetricScan) QSymmetricScan {
	offsets := make([]int, len(sym.Half))
	weights := make([]int16, len(sym.Half))
	for i, p := range sym.Half {
		offsets[i] = p.Offset
		weights[i] = numeric.QuantizeQ15(p.Weight)
	}
	return QSymmetricScan{
		HalfOffsets:     offsets,
		HalfWeightsQ15:  weights,
		CenterOffset:    sym.CenterOffset,
		CenterWeightQ15: numeric.QuantizeQ15(sym.CenterWeight),
		Length:          sym.Length,
	}
}

// QScanPoint2D is a Scan2D tap with its weight pre-quantised into Q15,
// used by the direct 2-D convolution's optional uint8 fast path.
type QScanPoint2D struct {
	X, Y      int
	WeightQ15 int16
}

// BuildQ15Scan2D quantises every tap weight of points into Q15.
func BuildQ15Scan2D(points []ScanPoint2D) []QScanPoint2D {
	out := make([]QScanPoint2D, len(points))
	for i, p := range points {
		out[i] = QScanPoint2D{X: p.X, Y: p.Y, WeightQ15: numeric.QuantizeQ15(p.Weight)}
	}
	return out
}

// QScanPoint1DComplex is a complex tap with both real and imaginary
// weight components pre-quantised into Q15.
type QScanPoint1DComplex struct {
	Offset      int
	WeightReQ15 int16
	WeightImQ15 int16
}

// BuildQ15ComplexScan quantises every tap of a complex scan into Q15.
func BuildQ15ComplexScan(points []ScanPoint1DComplex) []QScanPoint1DComplex {
	out := make([]QScanPoint1DComplex, len(points))
	for i, p := range points {
		out[i] = QScanPoint1DComplex{
			Offset:      p.Offset,
			WeightReQ15: numeric.QuantizeQ15(real(p.Weight)),
			WeightImQ15: numeric.QuantizeQ15(imag(p.Weight)),
		}
	}
	return out
}
