package numeric

import "testing"

func TestFromFloat64SaturatesUint8(t *testing.T) {
	if got := FromFloat64[uint8](300); got != 255 {
		t.Errorf("got %d, want 255", got)
	}
	if got := FromFloat64[uint8](-10); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := FromFloat64[uint8](127.5); got != 128 {
		t.Errorf("round-half-to-even(127.5) = %d, want 128", got)
	}
}

func TestFromFloat64RoundsHalfToEven(t *testing.T) {
	// 2.5 and 3.5 both round to the nearest even integer.
	if got := FromFloat64[uint8](2.5); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := FromFloat64[uint8](3.5); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestFromFloat64PassesThroughFloats(t *testing.T) {
	if got := FromFloat64[float32](1.5); got != 1.5 {
		t.Errorf("got %v, want 1.5", got)
	}
}

func TestToFloat64RoundTrip(t *testing.T) {
	if got := ToFloat64[uint16](1000); got != 1000 {
		t.Errorf("got %v, want 1000", got)
	}
}

func TestQuantizeQ15SaturatesUnityWeight(t *testing.T) {
	// 1.0 scales to 32768, one past MaxInt16, so it saturates.
	q := QuantizeQ15(1.0)
	if q != Q15Scale-1 {
		t.Errorf("QuantizeQ15(1.0) = %d, want %d", q, Q15Scale-1)
	}
}

func TestApplyQ15ShiftRoundsHalfUp(t *testing.T) {
	acc := int32(Q15RoundBias) // represents 0.5 in Q15
	if got := ApplyQ15Shift(acc); got != 1 {
		t.Errorf("ApplyQ15Shift(%d) = %d, want 1", acc, got)
	}
}

func TestSaturateInt32Narrowing(t *testing.T) {
	if got := SaturateInt32ToUint8(-5); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := SaturateInt32ToUint8(999); got != 255 {
		t.Errorf("got %d, want 255", got)
	}
}
