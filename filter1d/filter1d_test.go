package filter1d

import (
	"math"
	"testing"

	"github.com/cwbudde/blurcore/kernel"
)

func TestDotF32MatchesNaiveSum(t *testing.T) {
	weights := []float32{1, 2, 3, 4, 5}
	values := []float32{0.5, 0.5, 0.5, 0.5, 0.5}
	got := dotF32(weights, values)
	want := float32(15) * 0.5
	if got != want {
		t.Errorf("dotF32 = %v, want %v", got, want)
	}
}

func TestRowPassPlainIdentityKernel(t *testing.T) {
	// A single-tap unit-weight kernel at offset 0 is the identity.
	padded := []uint8{10, 20, 30}
	scan := []kernel.ScanPoint1D{{Offset: 0, Weight: 1}}
	out := make([]float64, 3)
	RowPassPlain[uint8, float64](padded, 3, 1, scan, out)
	for i, v := range []float64{10, 20, 30} {
		if out[i] != v {
			t.Errorf("out[%d] = %v, want %v", i, out[i], v)
		}
	}
}

func TestRowPassPlainConstantImageStaysConstant(t *testing.T) {
	width, pad := 4, 1
	padded := make([]uint8, width+2*pad)
	for i := range padded {
		padded[i] = 42
	}
	scan := kernel.Scan1D([]float64{0.25, 0.5, 0.25})
	out := make([]float64, width)
	RowPassPlain[uint8, float64](padded, width, 1, scan, out)
	for i, v := range out {
		if v != 42 {
			t.Errorf("out[%d] = %v, want 42", i, v)
		}
	}
}

func TestRowPassSymmetricMatchesPlain(t *testing.T) {
	coeffs := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	scan := kernel.Scan1D(coeffs)
	sym, ok := kernel.BuildSymmetricScan(coeffs)
	if !ok {
		t.Fatalf("expected symmetric kernel")
	}
	padded := []uint8{1, 5, 9, 2, 8, 3, 7}
	width := 3
	plain := make([]float64, width)
	symOut := make([]float64, width)
	RowPassPlain[uint8, float64](padded, width, 1, scan, plain)
	RowPassSymmetric[uint8, float64](padded, width, 1, sym, symOut)
	for i := range plain {
		if math.Abs(plain[i]-symOut[i]) > 1e-9 {
			t.Errorf("index %d: plain=%v symmetric=%v", i, plain[i], symOut[i])
		}
	}
}

func TestColumnPassPlainIdentity(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	rowAt := RowAt[float64](func(i int) []float64 { return rows[i] })
	scan := []kernel.ScanPoint1D{{Offset: 1, Weight: 1}}
	out := make([]uint8, 2)
	ColumnPassPlain[float64, uint8](rowAt, 2, 1, scan, out)
	if out[0] != 3 || out[1] != 4 {
		t.Errorf("out = %v, want [3 4]", out)
	}
}

func TestColumnPassSymmetricMatchesPlain(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	scan := kernel.Scan1D(coeffs)
	sym, ok := kernel.BuildSymmetricScan(coeffs)
	if !ok {
		t.Fatalf("expected symmetric kernel")
	}
	rows := [][]float64{{10, 20}, {30, 40}, {50, 60}}
	rowAt := RowAt[float64](func(i int) []float64 { return rows[i] })
	plain := make([]uint8, 2)
	symOut := make([]uint8, 2)
	ColumnPassPlain[float64, uint8](rowAt, 2, 1, scan, plain)
	ColumnPassSymmetric[float64, uint8](rowAt, 2, 1, sym, symOut)
	for i := range plain {
		if plain[i] != symOut[i] {
			t.Errorf("index %d: plain=%d symmetric=%d", i, plain[i], symOut[i])
		}
	}
}

func TestRowPassPlaneF32DenseMatchesSparse(t *testing.T) {
	padded := []float32{1, 2, 3, 4, 5}
	scan := []kernel.ScanPoint1D{{Offset: 0, Weight: 0.2}, {Offset: 1, Weight: 0.3}, {Offset: 2, Weight: 0.5}}
	out := make([]float32, 3)
	RowPassPlaneF32(padded, 3, scan, out)
	want := []float32{
		1*0.2 + 2*0.3 + 3*0.5,
		2*0.2 + 3*0.3 + 4*0.5,
		3*0.2 + 4*0.3 + 5*0.5,
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}
