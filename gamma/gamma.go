// Package gamma supplies the concrete transfer-function curves that
// spec.md treats as an opaque (float32 -> float32) contract plus its
// inverse. The curve breakpoints are supplemented from the original
// source's gamma_curves.rs, so the repo is runnable end-to-end without a
// caller-supplied stub.
package gamma

import "math"

// TransferFunction pairs an opto-electronic curve with its inverse.
type TransferFunction struct {
	Forward func(float32) float32
	Inverse func(float32) float32
}

var SRGB = TransferFunction{Forward: srgbForward, Inverse: srgbInverse}
var Rec709 = TransferFunction{Forward: rec709Forward, Inverse: rec709Inverse}
var Rec2020 = TransferFunction{Forward: rec2020Forward, Inverse: rec2020Inverse}
var Log100 = TransferFunction{Forward: log100Forward, Inverse: log100Inverse}

func srgbForward(c float32) float32 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*pow32(c, 1.0/2.4) - 0.055
}

func srgbInverse(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return pow32((c+0.055)/1.055, 2.4)
}

func rec709Forward(c float32) float32 {
	if c < 0.018 {
		return 4.5 * c
	}
	return 1.099*pow32(c, 0.45) - 0.099
}

func rec709Inverse(c float32) float32 {
	if c < 0.081 {
		return c / 4.5
	}
	return pow32((c+0.099)/1.099, 1/0.45)
}

const rec2020Alpha = 1.09929682680944
const rec2020Beta = 0.018053968510807

func rec2020Forward(c float32) float32 {
	if c < rec2020Beta {
		return 4.5 * c
	}
	return rec2020Alpha*pow32(c, 0.45) - (rec2020Alpha - 1)
}

func rec2020Inverse(c float32) float32 {
	if c < 4.5*rec2020Beta {
		return c / 4.5
	}
	return pow32((c+(rec2020Alpha-1))/rec2020Alpha, 1/0.45)
}

func log100Forward(c float32) float32 {
	if c <= 0.01 {
		return 0
	}
	return 1 + log10f(c)/2
}

func log100Inverse(c float32) float32 {
	if c <= 0 {
		return 0.01
	}
	return pow32(10, (c-1)*2)
}

func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

func log10f(v float32) float32 {
	return float32(math.Log10(float64(v)))
}

// BuildLUT samples tf.Forward at each of 2^bits evenly spaced input
// levels and quantises the result into a uint16 table, the shape an
// integer pipeline needs to apply a transfer function without
// recomputing it per pixel.
func BuildLUT(tf TransferFunction, bits int) []uint16 {
	n := 1 << uint(bits)
	maxVal := float32(n - 1)
	lut := make([]uint16, n)
	for i := 0; i < n; i++ {
		in := float32(i) / maxVal
		out := tf.Forward(in)
		if out < 0 {
			out = 0
		}
		if out > 1 {
			out = 1
		}
		lut[i] = uint16(out*maxVal + 0.5)
	}
	return lut
}
