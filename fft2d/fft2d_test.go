package fft2d

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/filter2d"
	"github.com/cwbudde/blurcore/schedule"
)

func maxAbsDiff(a, b []complex128) float64 {
	var max float64
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}

func TestNextGoodSizeIsSmoothAndAtLeastN(t *testing.T) {
	for _, n := range []int{1, 2, 11, 13, 97} {
		got := NextGoodSize(n)
		if got < n {
			t.Fatalf("NextGoodSize(%d) = %d, want >= %d", n, got, n)
		}
		if !isSmooth(got) {
			t.Errorf("NextGoodSize(%d) = %d is not 2,3,5,7-smooth", n, got)
		}
	}
}

func TestForwardInverseRoundTripPowerOfTwo(t *testing.T) {
	data := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]complex128(nil), data...)
	Forward(data)
	Inverse(data)
	if maxAbsDiff(data, orig) > 1e-9 {
		t.Errorf("round trip mismatch: got %v, want %v", data, orig)
	}
}

func TestForwardInverseRoundTripBluestein(t *testing.T) {
	// Length 5 is not a power of two, exercising the Bluestein fallback.
	data := []complex128{1, -2, 3.5, 0, -1.25}
	orig := append([]complex128(nil), data...)
	Forward(data)
	Inverse(data)
	if maxAbsDiff(data, orig) > 1e-9 {
		t.Errorf("round trip mismatch: got %v, want %v", data, orig)
	}
}

func TestForwardMatchesDirectDFTForSmallCase(t *testing.T) {
	data := []complex128{1, 2, 3}
	got := append([]complex128(nil), data...)
	Forward(got)

	n := len(data)
	want := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			theta := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += data[j] * cmplx.Exp(complex(0, theta))
		}
		want[k] = sum
	}
	if maxAbsDiff(got, want) > 1e-9 {
		t.Errorf("Forward = %v, want %v", got, want)
	}
}

func TestRealForwardInverseRoundTrip(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	spec := make([]complex128, len(src)/2+1)
	RealForward[float64, complex128](spec, src)

	out := make([]float64, len(src))
	RealInverse[float64, complex128](out, spec, len(src))
	for i := range src {
		if math.Abs(out[i]-src[i]) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, out[i], src[i])
		}
	}
}

func mustSrcFFT(t *testing.T, data []uint8, w, h int) *bimage.BlurImage[uint8] {
	t.Helper()
	img, err := bimage.NewBlurImage(data, w, h, w, 1)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	return img
}

func mustDstFFT(t *testing.T, w, h int) (*bimage.BlurImageMut[uint8], []uint8) {
	t.Helper()
	buf := make([]uint8, w*h)
	store := bimage.Borrowed(buf)
	dst, err := bimage.NewBlurImageMut(&store, w, h, w, 1)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	return dst, buf
}

func TestFilterFFTComplexMatchesDirectFilter2D(t *testing.T) {
	width, height := 12, 10
	data := make([]uint8, width*height)
	for i := range data {
		data[i] = uint8((i * 53) % 251)
	}
	src := mustSrcFFT(t, data, width, height)

	coeffs := []float64{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	}
	shape := bimage.KernelShape{Width: 3, Height: 3}

	fftDst, fftBuf := mustDstFFT(t, width, height)
	if err := FilterFFTComplex[uint8](src, fftDst, coeffs, shape, bimage.EdgeClamp, bimage.Scalar{}); err != nil {
		t.Fatalf("FilterFFTComplex: %v", err)
	}

	directDst, directBuf := mustDstFFT(t, width, height)
	if err := filter2d.Filter2D[uint8](src, directDst, coeffs, shape, bimage.EdgeClamp, bimage.Scalar{}, schedule.SinglePolicy()); err != nil {
		t.Fatalf("Filter2D: %v", err)
	}

	for i := range fftBuf {
		diff := int(fftBuf[i]) - int(directBuf[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Errorf("index %d: fft=%d direct=%d, expected agreement within rounding", i, fftBuf[i], directBuf[i])
		}
	}
}

func TestFilterFFTRealMatchesFilterFFTComplex(t *testing.T) {
	width, height := 9, 9
	data := make([]uint8, width*height)
	for i := range data {
		data[i] = uint8((i * 29) % 200)
	}
	src := mustSrcFFT(t, data, width, height)

	coeffs := []float64{0.05, 0.1, 0.05, 0.1, 0.4, 0.1, 0.05, 0.1, 0.05}
	shape := bimage.KernelShape{Width: 3, Height: 3}

	complexDst, complexBuf := mustDstFFT(t, width, height)
	if err := FilterFFTComplex[uint8](src, complexDst, coeffs, shape, bimage.EdgeReflect101, bimage.Scalar{}); err != nil {
		t.Fatalf("FilterFFTComplex: %v", err)
	}
	realDst, realBuf := mustDstFFT(t, width, height)
	if err := FilterFFTReal[uint8](src, realDst, coeffs, shape, bimage.EdgeReflect101, bimage.Scalar{}); err != nil {
		t.Fatalf("FilterFFTReal: %v", err)
	}

	for i := range complexBuf {
		diff := int(complexBuf[i]) - int(realBuf[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Errorf("index %d: complex=%d real=%d, expected agreement within rounding", i, complexBuf[i], realBuf[i])
		}
	}
}

func TestFilterRGBAFFTMatchesPerPlaneFilterFFTComplex(t *testing.T) {
	width, height := 8, 6
	data := make([]uint8, width*height*4)
	for i := range data {
		data[i] = uint8((i * 37) % 251)
	}
	img, err := bimage.NewBlurImage(data, width, height, width*4, 4)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	buf := make([]uint8, len(data))
	store := bimage.Borrowed(buf)
	dst, err := bimage.NewBlurImageMut(&store, width, height, width*4, 4)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}

	coeffs := []float64{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	}
	shape := bimage.KernelShape{Width: 3, Height: 3}
	if err := FilterRGBAFFT[uint8](img, dst, coeffs, shape, bimage.EdgeClamp, bimage.Scalar{}, VariantComplex); err != nil {
		t.Fatalf("FilterRGBAFFT: %v", err)
	}

	for c := 0; c < 4; c++ {
		plane := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				plane[y*width+x] = data[(y*width+x)*4+c]
			}
		}
		planeSrc := mustSrcFFT(t, plane, width, height)
		planeDst, planeBuf := mustDstFFT(t, width, height)
		if err := FilterFFTComplex[uint8](planeSrc, planeDst, coeffs, shape, bimage.EdgeClamp, bimage.Scalar{}); err != nil {
			t.Fatalf("FilterFFTComplex plane %d: %v", c, err)
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				got := buf[(y*width+x)*4+c]
				want := planeBuf[y*width+x]
				if got != want {
					t.Errorf("channel %d (%d,%d): RGBA=%d plane=%d", c, x, y, got, want)
				}
			}
		}
	}
}

func TestFilterRGBFFTRejectsWrongChannelCount(t *testing.T) {
	data := make([]uint8, 16) // 4 pixels x 4 channels, not 3
	img, err := bimage.NewBlurImage(data, 2, 2, 8, 4)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	buf := make([]uint8, 16)
	store := bimage.Borrowed(buf)
	dst, err := bimage.NewBlurImageMut(&store, 2, 2, 8, 4)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	if err := FilterRGBFFT[uint8](img, dst, []float64{1}, bimage.KernelShape{Width: 1, Height: 1}, bimage.EdgeClamp, bimage.Scalar{}, VariantComplex); err == nil {
		t.Fatalf("expected an error for a 4-channel image passed to the 3-channel orchestrator")
	}
}

func TestFilterFFTComplexRejectsMultiChannel(t *testing.T) {
	data := make([]uint8, 8)
	img, err := bimage.NewBlurImage(data, 2, 2, 4, 2)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	buf := make([]uint8, 8)
	store := bimage.Borrowed(buf)
	dstMulti, err := bimage.NewBlurImageMut(&store, 2, 2, 4, 2)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	coeffs := []float64{1}
	shape := bimage.KernelShape{Width: 1, Height: 1}
	if err := FilterFFTComplex[uint8](img, dstMulti, coeffs, shape, bimage.EdgeClamp, bimage.Scalar{}); err == nil {
		t.Fatalf("expected an error for multi-channel input")
	}
}
