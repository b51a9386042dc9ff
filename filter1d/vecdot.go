package filter1d

// dotF32 computes the dot product of a dense tap slice against the
// matching window of a padded row; RowPassPlaneF32 is its only caller.
// dotF64 is the float64 counterpart and has no caller. The other
// row/column executors accumulate their sums inline. No vector-math library
// appears anywhere in the reference corpus, so this stays a plain
// scalar loop; the unroll-by-4 mirrors the shape the teacher's own
// blur kernels use for their inner accumulation loop.
func dotF32(weights, values []float32) float32 {
	var acc float32
	n := len(weights)
	i := 0
	for ; i+4 <= n; i += 4 {
		acc += weights[i]*values[i] + weights[i+1]*values[i+1] +
			weights[i+2]*values[i+2] + weights[i+3]*values[i+3]
	}
	for ; i < n; i++ {
		acc += weights[i] * values[i]
	}
	return acc
}

func dotF64(weights, values []float64) float64 {
	var acc float64
	n := len(weights)
	i := 0
	for ; i+4 <= n; i += 4 {
		acc += weights[i]*values[i] + weights[i+1]*values[i+1] +
			weights[i+2]*values[i+2] + weights[i+3]*values[i+3]
	}
	for ; i < n; i++ {
		acc += weights[i] * values[i]
	}
	return acc
}
