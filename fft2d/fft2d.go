package fft2d

import (
	"fmt"

	"github.com/cwbudde/blurcore/arena"
	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/numeric"
)

// FilterFFTComplex computes a 2-D convolution of a single-channel image
// with coeffs via the complex spectral path: forward 2-D FFT of the
// padded signal and the wrap-around-placed kernel, pointwise spectrum
// multiply, inverse 2-D FFT, crop.
func FilterFFTComplex[T bimage.Number](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
	coeffs []float64,
	shape bimage.KernelShape,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	if src.Channels() != 1 {
		return blurerr.ErrFFTChannelsNotSupported
	}
	if shape.Width*shape.Height != len(coeffs) {
		return fmt.Errorf("%w: got %d coefficients for %dx%d kernel", blurerr.ErrKernelSizeMismatch, len(coeffs), shape.Width, shape.Height)
	}

	width, height := src.Width(), src.Height()
	bestW, bestH, padded, ar, err := padForFFT(src, shape, edge, borderConstant)
	if err != nil {
		return err
	}

	signal := make([]complex128, bestW*bestH)
	for i, v := range padded {
		signal[i] = complex(numeric.ToFloat64(v), 0)
	}
	kernelGrid := placeKernelWrapped(coeffs, shape, bestW, bestH)

	transform2D(signal, bestW, bestH, false)
	transform2D(kernelGrid, bestW, bestH, false)
	for i := range signal {
		signal[i] *= kernelGrid[i]
	}
	transform2D(signal, bestW, bestH, true)

	cropInto(dst, signal, width, height, bestW, ar)
	return nil
}

// FilterFFTReal is the real-to-complex counterpart of FilterFFTComplex:
// the row transform works on real input directly (half-width spectrum),
// the column transform is the ordinary complex FFT.
func FilterFFTReal[T bimage.Number](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
	coeffs []float64,
	shape bimage.KernelShape,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	if src.Channels() != 1 {
		return blurerr.ErrFFTChannelsNotSupported
	}
	if shape.Width*shape.Height != len(coeffs) {
		return fmt.Errorf("%w: got %d coefficients for %dx%d kernel", blurerr.ErrKernelSizeMismatch, len(coeffs), shape.Width, shape.Height)
	}

	width, height := src.Width(), src.Height()
	bestW, bestH, padded, ar, err := padForFFT(src, shape, edge, borderConstant)
	if err != nil {
		return err
	}

	specWidth := bestW/2 + 1
	signalSpec := make([]complex128, specWidth*bestH)
	rowBuf := make([]float64, bestW)
	for y := 0; y < bestH; y++ {
		for x := 0; x < bestW; x++ {
			rowBuf[x] = numeric.ToFloat64(padded[y*bestW+x])
		}
		RealForward[float64, complex128](signalSpec[y*specWidth:(y+1)*specWidth], rowBuf)
	}
	fftColumns(signalSpec, specWidth, bestH, false)

	kernelGrid := placeKernelWrappedReal(coeffs, shape, bestW, bestH)
	kernelSpec := make([]complex128, specWidth*bestH)
	for y := 0; y < bestH; y++ {
		RealForward[float64, complex128](kernelSpec[y*specWidth:(y+1)*specWidth], kernelGrid[y*bestW:(y+1)*bestW])
	}
	fftColumns(kernelSpec, specWidth, bestH, false)

	for i := range signalSpec {
		signalSpec[i] *= kernelSpec[i]
	}

	fftColumns(signalSpec, specWidth, bestH, true)
	outGrid := make([]float64, bestW*bestH)
	for y := 0; y < bestH; y++ {
		RealInverse[float64, complex128](outGrid[y*bestW:(y+1)*bestW], signalSpec[y*specWidth:(y+1)*specWidth], bestW)
	}

	for y := 0; y < height; y++ {
		outRow := dst.Row(y)
		srow := y + ar.PadH
		for x := 0; x < width; x++ {
			outRow[x] = numeric.FromFloat64[T](outGrid[srow*bestW+x+ar.PadW])
		}
	}
	return nil
}

// padForFFT computes the good-size padding, builds the arena, and
// returns the transform-ready dimensions alongside it.
func padForFFT[T bimage.Number](src *bimage.BlurImage[T], shape bimage.KernelShape, edge bimage.EdgeMode, borderConstant bimage.Scalar) (bestW, bestH int, padded []T, ar arena.Arena, err error) {
	width, height := src.Width(), src.Height()
	bestW = NextGoodSize(width + shape.Width)
	bestH = NextGoodSize(height + shape.Height)
	padLeft := (bestW - width) / 2
	padRight := bestW - width - padLeft
	padTop := (bestH - height) / 2
	padBottom := bestH - height - padTop

	pads := arena.ArenaPads{Left: padLeft, Top: padTop, Right: padRight, Bottom: padBottom}
	padded, ar, err = arena.Make(src, pads, edge, borderConstant)
	return
}

func cropInto[T bimage.Number](dst *bimage.BlurImageMut[T], signal []complex128, width, height, bestW int, ar arena.Arena) {
	for y := 0; y < height; y++ {
		outRow := dst.Row(y)
		srow := y + ar.PadH
		for x := 0; x < width; x++ {
			outRow[x] = numeric.FromFloat64[T](real(signal[srow*bestW+x+ar.PadW]))
		}
	}
}

// transform2D applies a full 2-D DFT/IDFT to a w x h row-major complex
// grid: transform each row, transpose, transform each (former) column,
// transpose back. Both the forward and inverse passes round-trip to the
// original orientation, so the spectrum multiply between them operates
// in ordinary row-major layout.
func transform2D(data []complex128, w, h int, inverse bool) {
	transformRows(data, w, h, inverse)
	transpose(data, w, h)
	transformRows(data, h, w, inverse)
	transpose(data, h, w)
}

// fftColumns runs a complex 1-D transform down each of w columns of an h-row grid in place.
func fftColumns(data []complex128, w, h int, inverse bool) {
	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = data[y*w+x]
		}
		if inverse {
			Inverse(col)
		} else {
			Forward(col)
		}
		for y := 0; y < h; y++ {
			data[y*w+x] = col[y]
		}
	}
}

func transformRows(data []complex128, w, h int, inverse bool) {
	for y := 0; y < h; y++ {
		row := data[y*w : y*w+w]
		if inverse {
			Inverse(row)
		} else {
			Forward(row)
		}
	}
}

func transpose(data []complex128, w, h int) {
	out := make([]complex128, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[x*h+y] = data[y*w+x]
		}
	}
	copy(data, out)
}

// placeKernelWrapped places a row-major kernel into a zero complex128
// buffer of size bestW x bestH, anchored with wrap-around centering:
// anchor coordinate (-kw/2 mod bestW, -kh/2 mod bestH), so the
// resulting cyclic convolution in the padded domain matches the arena's
// linear convolution.
func placeKernelWrapped(coeffs []float64, shape bimage.KernelShape, bestW, bestH int) []complex128 {
	out := make([]complex128, bestW*bestH)
	anchorX, anchorY := kernelAnchor(shape, bestW, bestH)
	kw := shape.Width
	for ky := 0; ky < shape.Height; ky++ {
		for kx := 0; kx < kw; kx++ {
			w := coeffs[ky*kw+kx]
			if w == 0 {
				continue
			}
			x := euclidMod(anchorX+kx, bestW)
			y := euclidMod(anchorY+ky, bestH)
			out[y*bestW+x] = complex(w, 0)
		}
	}
	return out
}

func placeKernelWrappedReal(coeffs []float64, shape bimage.KernelShape, bestW, bestH int) []float64 {
	out := make([]float64, bestW*bestH)
	anchorX, anchorY := kernelAnchor(shape, bestW, bestH)
	kw := shape.Width
	for ky := 0; ky < shape.Height; ky++ {
		for kx := 0; kx < kw; kx++ {
			w := coeffs[ky*kw+kx]
			if w == 0 {
				continue
			}
			x := euclidMod(anchorX+kx, bestW)
			y := euclidMod(anchorY+ky, bestH)
			out[y*bestW+x] = w
		}
	}
	return out
}

func kernelAnchor(shape bimage.KernelShape, bestW, bestH int) (int, int) {
	return euclidMod(-(shape.Width / 2), bestW), euclidMod(-(shape.Height / 2), bestH)
}

func euclidMod(v, m int) int {
	if m == 0 {
		return 0
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
