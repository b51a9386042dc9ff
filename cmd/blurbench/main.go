// Command blurbench is a demo/benchmark harness for the blurcore
// library: it loads an image, runs one of the separable, direct-2D, or
// FFT filter paths against it, and reports timing the way the
// teacher's a_sequential/b_tile_parallel drivers did with
// fmt.Printf/log.Fatalf.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/fft2d"
	"github.com/cwbudde/blurcore/filter2d"
	"github.com/cwbudde/blurcore/schedule"
	"github.com/cwbudde/blurcore/separable"
	"github.com/cwbudde/blurcore/tuning"
)

var (
	inPath      string
	outPath     string
	kernelKind  string
	radius      int
	sigma       float64
	edgeName    string
	threadsKind string
	fixedN      int
	use2D       bool
	numericKind string
	useFFT      bool
	fftReal     bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("blurbench: %v", err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blurbench",
		Short: "Exercise blurcore's separable and direct-2D filter paths against a real image",
		RunE:  runBench,
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input image path (PNG or BMP, required)")
	cmd.Flags().StringVar(&outPath, "out", "out.png", "output image path (PNG or BMP, by extension)")
	cmd.Flags().StringVar(&kernelKind, "kernel", "gaussian", "kernel kind: gaussian, tent, box, laplacian3, laplacian5")
	cmd.Flags().IntVar(&radius, "radius", 3, "kernel radius")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "gaussian sigma (0 derives it from radius)")
	cmd.Flags().StringVar(&edgeName, "edge", "clamp", "edge mode: clamp, wrap, reflect, reflect101, constant")
	cmd.Flags().StringVar(&threadsKind, "threads", "adaptive", "threading policy: single, adaptive, fixed")
	cmd.Flags().IntVar(&fixedN, "workers", 0, "worker count for --threads=fixed")
	cmd.Flags().BoolVar(&use2D, "direct2d", false, "run the non-separable direct 2-D path instead of the separable pipeline")
	cmd.Flags().StringVar(&numericKind, "numeric", "float", "separable numeric representation: float, fixed, complex (ignored with --direct2d or --fft)")
	cmd.Flags().BoolVar(&useFFT, "fft", false, "run the FFT-based planar (RGBA) convolution instead of spatial filtering")
	cmd.Flags().BoolVar(&fftReal, "fft-real", false, "use the real-to-complex FFT variant instead of the full complex one (only with --fft)")
	cmd.MarkFlagRequired("in")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	src, width, height, err := loadImage(inPath)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	fmt.Printf("Loaded %s (%dx%d)\n", inPath, width, height)

	edge, err := parseEdge(edgeName)
	if err != nil {
		return err
	}
	policy, err := parsePolicy(threadsKind, fixedN)
	if err != nil {
		return err
	}

	srcImg, err := bimage.NewBlurImage(src, width, height, width*4, 4)
	if err != nil {
		return fmt.Errorf("failed to build source view: %w", err)
	}
	dstBuf := make([]uint8, len(src))
	store := bimage.Borrowed(dstBuf)
	dstImg, err := bimage.NewBlurImageMut(&store, width, height, width*4, 4)
	if err != nil {
		return fmt.Errorf("failed to build destination view: %w", err)
	}

	rowCoeffs, colCoeffs, shape, err := buildKernel(kernelKind, radius, sigma)
	if err != nil {
		return err
	}

	start := time.Now()
	switch {
	case useFFT:
		coeffs := outerOrFlat(rowCoeffs, colCoeffs, shape)
		variant := fft2d.VariantComplex
		if fftReal {
			variant = fft2d.VariantRealToComplex
		}
		err = fft2d.FilterRGBAFFT[uint8](srcImg, dstImg, coeffs, shape, edge, bimage.Scalar{}, variant)
	case use2D:
		coeffs := outerOrFlat(rowCoeffs, colCoeffs, shape)
		err = filter2d.Filter2D[uint8](srcImg, dstImg, coeffs, shape, edge, bimage.Scalar{}, policy)
	case numericKind == "fixed":
		err = separable.FilterQ15(srcImg, dstImg, rowCoeffs, colCoeffs, edge, bimage.Scalar{}, policy)
	case numericKind == "complex":
		err = separable.FilterComplex[uint8](srcImg, dstImg, toComplexCoeffs(rowCoeffs), toComplexCoeffs(colCoeffs), edge, bimage.Scalar{}, policy)
	case numericKind == "float":
		err = separable.Filter[uint8, float32](srcImg, dstImg, rowCoeffs, colCoeffs, edge, bimage.Scalar{}, policy)
	default:
		err = fmt.Errorf("unknown --numeric %q", numericKind)
	}
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	fmt.Printf("Filtered %dx%d with kernel=%s radius=%d edge=%s threads=%s numeric=%s in %s\n",
		width, height, kernelKind, radius, edgeName, threadsKind, numericKind, elapsed)

	if err := saveImage(outPath, dstBuf, width, height); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}

// buildKernel returns the separable row/column coefficients and the 2-D
// kernel shape. For kernels that have no separable factorization (the
// Laplacians) row and col are nil and only shape is set; outerOrFlat
// then supplies the fixed 2-D kernel.
func buildKernel(kind string, radius int, sigma float64) (row, col []float64, shape bimage.KernelShape, err error) {
	switch kind {
	case "gaussian":
		if sigma <= 0 {
			sigma = tuning.SigmaForRadius(radius)
		}
		if sigma <= 0 {
			return nil, nil, bimage.KernelShape{}, fmt.Errorf("%w: radius=%d sigma=%v", blurerr.ErrNegativeOrZeroSigma, radius, sigma)
		}
		k := tuning.GaussianKernel1D(sigma, radius)
		return k, k, bimage.KernelShape{Width: len(k), Height: len(k)}, nil
	case "tent":
		k := tuning.TentKernel1D(radius)
		return k, k, bimage.KernelShape{Width: len(k), Height: len(k)}, nil
	case "box":
		k := tuning.BoxKernel1D(radius)
		return k, k, bimage.KernelShape{Width: len(k), Height: len(k)}, nil
	case "laplacian3":
		return nil, nil, bimage.KernelShape{Width: 3, Height: 3}, nil
	case "laplacian5":
		return nil, nil, bimage.KernelShape{Width: 5, Height: 5}, nil
	default:
		return nil, nil, bimage.KernelShape{}, fmt.Errorf("unknown kernel kind %q", kind)
	}
}

// outerOrFlat returns the flat 2-D kernel to use with --direct2d: the
// outer product of row/col for separable kernels, or the matching
// Laplacian for the non-separable ones.
func outerOrFlat(row, col []float64, shape bimage.KernelShape) []float64 {
	if row != nil {
		out := make([]float64, len(row)*len(col))
		for y, cy := range col {
			for x, rx := range row {
				out[y*len(row)+x] = rx * cy
			}
		}
		return out
	}
	if shape.Width == 3 {
		return tuning.LaplacianKernel3x3
	}
	return tuning.LaplacianKernel5x5
}

// toComplexCoeffs embeds a real-valued kernel into complex128 space for
// --numeric=complex, which otherwise expects a genuinely complex
// coefficient sequence from a complex-exponential Gaussian
// approximation.
func toComplexCoeffs(row []float64) []complex128 {
	out := make([]complex128, len(row))
	for i, v := range row {
		out[i] = complex(v, 0)
	}
	return out
}

func parseEdge(name string) (bimage.EdgeMode, error) {
	switch name {
	case "clamp":
		return bimage.EdgeClamp, nil
	case "wrap":
		return bimage.EdgeWrap, nil
	case "reflect":
		return bimage.EdgeReflect, nil
	case "reflect101":
		return bimage.EdgeReflect101, nil
	case "constant":
		return bimage.EdgeConstant, nil
	default:
		return 0, fmt.Errorf("unknown edge mode %q", name)
	}
}

func parsePolicy(name string, fixed int) (schedule.ThreadingPolicy, error) {
	switch name {
	case "single":
		return schedule.SinglePolicy(), nil
	case "adaptive":
		return schedule.AdaptivePolicy(), nil
	case "fixed":
		if fixed <= 0 {
			return schedule.ThreadingPolicy{}, fmt.Errorf("--workers must be > 0 for --threads=fixed")
		}
		return schedule.FixedPolicy(fixed), nil
	default:
		return schedule.ThreadingPolicy{}, fmt.Errorf("unknown threading policy %q", name)
	}
}

// loadImage decodes a PNG or BMP file into a flat RGBA uint8 buffer.
func loadImage(path string) (data []uint8, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	var img image.Image
	if len(path) > 4 && path[len(path)-4:] == ".bmp" {
		img, err = bmp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	data = make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*width + x) * 4
			data[off] = uint8(r >> 8)
			data[off+1] = uint8(g >> 8)
			data[off+2] = uint8(b >> 8)
			data[off+3] = uint8(a >> 8)
		}
	}
	return data, width, height, nil
}

// saveImage encodes a flat RGBA uint8 buffer as PNG (default) or BMP
// (by output extension) using golang.org/x/image/bmp for the latter.
func saveImage(path string, data []uint8, width, height int) error {
	rgba := &image.RGBA{Pix: data, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(path) > 4 && path[len(path)-4:] == ".bmp" {
		return bmp.Encode(f, rgba)
	}
	return png.Encode(f, rgba)
}
