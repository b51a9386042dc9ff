package fft2d

import (
	"fmt"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/schedule"
)

// Variant selects which planar FFT routine the multi-channel
// orchestrators run per plane.
type Variant int

const (
	VariantComplex Variant = iota
	VariantRealToComplex
)

// FilterRGBFFT deinterleaves a 3-channel image into planes, runs the
// planar FFT filter once per plane with that channel's border constant,
// and reinterleaves the result.
func FilterRGBFFT[T bimage.Number](src *bimage.BlurImage[T], dst *bimage.BlurImageMut[T], coeffs []float64, shape bimage.KernelShape, edge bimage.EdgeMode, borderConstant bimage.Scalar, variant Variant) error {
	return filterMultiFFT(src, dst, coeffs, shape, edge, borderConstant, 3, variant)
}

// FilterRGBAFFT is FilterRGBFFT for 4-channel images.
func FilterRGBAFFT[T bimage.Number](src *bimage.BlurImage[T], dst *bimage.BlurImageMut[T], coeffs []float64, shape bimage.KernelShape, edge bimage.EdgeMode, borderConstant bimage.Scalar, variant Variant) error {
	return filterMultiFFT(src, dst, coeffs, shape, edge, borderConstant, 4, variant)
}

func filterMultiFFT[T bimage.Number](src *bimage.BlurImage[T], dst *bimage.BlurImageMut[T], coeffs []float64, shape bimage.KernelShape, edge bimage.EdgeMode, borderConstant bimage.Scalar, channels int, variant Variant) error {
	if err := bimage.MatchShape(src, dst); err != nil {
		return err
	}
	if src.Channels() != channels {
		return fmt.Errorf("%w: expected %d channels, got %d", blurerr.ErrInvalidArguments, channels, src.Channels())
	}

	width, height := src.Width(), src.Height()
	plane := make([]T, width*height)
	planeOut := make([]T, width*height)
	planeBands := schedule.NewRowBandWriter(plane, width)
	planeOutBands := schedule.NewRowBandWriter(planeOut, width)

	for c := 0; c < channels; c++ {
		for y := 0; y < height; y++ {
			srcRow := src.Row(y)
			planeRow := planeBands.Row(y)
			for x := 0; x < width; x++ {
				planeRow[x] = srcRow[x*channels+c]
			}
		}

		planeImg, err := bimage.NewBlurImage(plane, width, height, width, 1)
		if err != nil {
			return err
		}
		store := bimage.Borrowed(planeOut)
		planeDst, err := bimage.NewBlurImageMut(&store, width, height, width, 1)
		if err != nil {
			return err
		}
		planeConstant := bimage.Scalar{borderConstant[c], 0, 0, 0}

		switch variant {
		case VariantRealToComplex:
			err = FilterFFTReal(planeImg, planeDst, coeffs, shape, edge, planeConstant)
		default:
			err = FilterFFTComplex(planeImg, planeDst, coeffs, shape, edge, planeConstant)
		}
		if err != nil {
			return err
		}

		for y := 0; y < height; y++ {
			dstRow := dst.Row(y)
			planeOutRow := planeOutBands.Row(y)
			for x := 0; x < width; x++ {
				dstRow[x*channels+c] = planeOutRow[x]
			}
		}
	}
	return nil
}
