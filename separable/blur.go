package separable

import (
	"fmt"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/schedule"
	"github.com/cwbudde/blurcore/tuning"
)

// Kind selects the 1-D kernel family a convenience blur generates.
type Kind int

const (
	KindGaussian Kind = iota
	KindTent
	KindBox
)

// Blur generalizes the teacher's ApplyBlurToImage entry point: given a
// kernel kind and a radius (sigma is derived for Gaussian via
// tuning.SigmaForRadius when sigma <= 0), it builds the matching 1-D
// kernel and runs it as a separable row+column pass with a float64
// accumulator.
func Blur[T bimage.Number](
	src *bimage.BlurImage[T],
	dst *bimage.BlurImageMut[T],
	kind Kind,
	radius int,
	sigma float64,
	edge bimage.EdgeMode,
	borderConstant bimage.Scalar,
	policy schedule.ThreadingPolicy,
) error {
	if radius < 0 {
		return fmt.Errorf("%w: negative radius", blurerr.ErrInvalidArguments)
	}
	var coeffs []float64
	switch kind {
	case KindGaussian:
		if sigma <= 0 {
			sigma = tuning.SigmaForRadius(radius)
		}
		if sigma <= 0 {
			return fmt.Errorf("%w: radius=%d sigma=%v", blurerr.ErrNegativeOrZeroSigma, radius, sigma)
		}
		coeffs = tuning.GaussianKernel1D(sigma, radius)
	case KindTent:
		coeffs = tuning.TentKernel1D(radius)
	case KindBox:
		coeffs = tuning.BoxKernel1D(radius)
	default:
		return fmt.Errorf("%w: unknown blur kind %d", blurerr.ErrInvalidArguments, kind)
	}
	return Filter[T, float64](src, dst, coeffs, coeffs, edge, borderConstant, policy)
}
