// Package arena builds padded read surfaces ("arenas") for the
// separable and non-separable filter cores, implementing the five
// boundary policies in bimage.EdgeMode.
package arena

import (
	"fmt"

	"github.com/cwbudde/blurcore/bimage"
	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/numeric"
)

// ArenaPads holds four non-negative pad extents.
type ArenaPads struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Symmetric returns a pad request of v on all four sides.
func Symmetric(v int) ArenaPads {
	return ArenaPads{Left: v, Top: v, Right: v, Bottom: v}
}

// FromKernelShape returns the default odd-kernel padding (kw/2, kh/2,
// kw/2, kh/2).
func FromKernelShape(shape bimage.KernelShape) ArenaPads {
	return ArenaPads{Left: shape.Width / 2, Top: shape.Height / 2, Right: shape.Width / 2, Bottom: shape.Height / 2}
}

// Arena describes a padded buffer: its total (padded) width/height, the
// left/top pad extents used to translate logical coordinates into
// buffer offsets, and the channel count.
type Arena struct {
	Width      int
	Height     int
	PadW       int
	PadH       int
	Components int
}

// Stride is the number of elements per arena row.
func (a Arena) Stride() int { return a.Width * a.Components }

func validatePads(p ArenaPads) error {
	if p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
		return fmt.Errorf("%w: negative pad", blurerr.ErrInvalidArguments)
	}
	return nil
}

// mapIndex resolves a possibly out-of-range coordinate to an in-range
// source index under the given edge policy. EdgeConstant is handled by
// the caller (it does not read from the source at all).
func mapIndex(mode bimage.EdgeMode, idx, extent int) int {
	switch mode {
	case bimage.EdgeClamp:
		if idx < 0 {
			return 0
		}
		if idx >= extent {
			return extent - 1
		}
		return idx
	case bimage.EdgeWrap:
		m := idx % extent
		if m < 0 {
			m += extent
		}
		return m
	case bimage.EdgeReflect:
		period := 2 * extent
		m := idx % period
		if m < 0 {
			m += period
		}
		if m < extent {
			return m
		}
		return period - 1 - m
	case bimage.EdgeReflect101:
		if extent == 1 {
			return 0
		}
		period := 2 * (extent - 1)
		m := idx % period
		if m < 0 {
			m += period
		}
		if m < extent {
			return m
		}
		return period - m
	default:
		return idx
	}
}

func fillPixel[T bimage.Number](buf []T, offset int, mode bimage.EdgeMode, relX, relY, width, height, cn int, src *bimage.BlurImage[T], constant bimage.Scalar) {
	if mode == bimage.EdgeConstant {
		for c := 0; c < cn; c++ {
			buf[offset+c] = numeric.FromFloat64[T](constant[c])
		}
		return
	}
	sy := mapIndex(mode, relY, height)
	sx := mapIndex(mode, relX, width)
	for c := 0; c < cn; c++ {
		buf[offset+c] = src.At(sx, sy, c)
	}
}

// Make pads src on all four sides per pads, under the given edge
// policy, returning the padded buffer and its Arena descriptor. Reading
// the returned buffer at row (i+pads.Top), column (j+pads.Left)*cn
// yields the policy-prescribed value for source pixel (j, i).
func Make[T bimage.Number](src *bimage.BlurImage[T], pads ArenaPads, edge bimage.EdgeMode, constant bimage.Scalar) ([]T, Arena, error) {
	if err := validatePads(pads); err != nil {
		return nil, Arena{}, err
	}
	width, height, cn := src.Width(), src.Height(), src.Channels()
	newWidth := width + pads.Left + pads.Right
	newHeight := height + pads.Top + pads.Bottom
	newStride := newWidth * cn

	buf := make([]T, newStride*newHeight)

	// Interior: straight copy of each source row into its padded slot.
	for y := 0; y < height; y++ {
		dstOff := (y+pads.Top)*newStride + pads.Left*cn
		copy(buf[dstOff:dstOff+width*cn], src.Row(y))
	}

	for i := 0; i < newHeight; i++ {
		rowOff := i * newStride
		if i >= pads.Top && i < pads.Top+height {
			y := i - pads.Top
			for j := 0; j < pads.Left; j++ {
				fillPixel(buf, rowOff+j*cn, edge, j-pads.Left, y, width, height, cn, src, constant)
			}
			for j := pads.Left + width; j < newWidth; j++ {
				fillPixel(buf, rowOff+j*cn, edge, j-pads.Left, y, width, height, cn, src, constant)
			}
			continue
		}
		y := i - pads.Top
		for j := 0; j < newWidth; j++ {
			fillPixel(buf, rowOff+j*cn, edge, j-pads.Left, y, width, height, cn, src, constant)
		}
	}

	return buf, Arena{Width: newWidth, Height: newHeight, PadW: pads.Left, PadH: pads.Top, Components: cn}, nil
}

// MakeRow pads a single source row horizontally, producing a padded row
// of length (width+2*padW)*channels. The vertical ambiguity of
// EdgeConstant/EdgeReflect etc. does not arise: there is only one row,
// so it stands in for itself wherever a vertical neighbour would
// otherwise be read.
func MakeRow[T bimage.Number](srcRow []T, width, cn, padW int, edge bimage.EdgeMode, constant bimage.Scalar) ([]T, error) {
	if padW < 0 {
		return nil, fmt.Errorf("%w: negative pad", blurerr.ErrInvalidArguments)
	}
	if len(srcRow) < width*cn {
		return nil, fmt.Errorf("%w: row shorter than width*channels", blurerr.ErrMinimumSliceSizeMismatch)
	}
	newWidth := width + 2*padW
	out := make([]T, newWidth*cn)
	copy(out[padW*cn:padW*cn+width*cn], srcRow[:width*cn])

	fillSeg := func(j int) {
		if edge == bimage.EdgeConstant {
			for c := 0; c < cn; c++ {
				out[j*cn+c] = numeric.FromFloat64[T](constant[c])
			}
			return
		}
		sx := mapIndex(edge, j-padW, width)
		for c := 0; c < cn; c++ {
			out[j*cn+c] = srcRow[sx*cn+c]
		}
	}
	for j := 0; j < padW; j++ {
		fillSeg(j)
	}
	for j := padW + width; j < newWidth; j++ {
		fillSeg(j)
	}
	return out, nil
}

// ArenaColumns holds the top and bottom padding strips used by the
// separable column pass: together with the unmodified image body they
// form a virtual padded column strip without copying it.
type ArenaColumns[T bimage.Number] struct {
	Top    []T // padH rows x width x cn, row 0 is the furthest from the image
	Bottom []T // padH rows x width x cn, row 0 is nearest the image
	PadH   int
	Width  int
	CN     int
}

// TopRow returns the elements of logical row -padH+i (i in [0, PadH)).
func (a *ArenaColumns[T]) TopRow(i int) []T {
	off := i * a.Width * a.CN
	return a.Top[off : off+a.Width*a.CN]
}

// BottomRow returns the elements of logical row height+i (i in [0, PadH)).
func (a *ArenaColumns[T]) BottomRow(i int) []T {
	off := i * a.Width * a.CN
	return a.Bottom[off : off+a.Width*a.CN]
}

// MakeColumns produces only the top and bottom padding strips for src,
// leaving the image body referenced in place. For EdgeClamp, every
// bottom-strip row resolves to height-1 (and every top-strip row to 0):
// this is not a special case, it falls out of clamping any
// out-of-range row against the same single edge row, matching OpenCV's
// BORDER_REPLICATE.
func MakeColumns[T bimage.Number](src *bimage.BlurImage[T], padH int, edge bimage.EdgeMode, constant bimage.Scalar) (ArenaColumns[T], error) {
	if padH < 0 {
		return ArenaColumns[T]{}, fmt.Errorf("%w: negative pad", blurerr.ErrInvalidArguments)
	}
	width, height, cn := src.Width(), src.Height(), src.Channels()
	top := make([]T, padH*width*cn)
	bottom := make([]T, padH*width*cn)

	fillStrip := func(dst []T, relYOf func(i int) int) {
		for i := 0; i < padH; i++ {
			relY := relYOf(i)
			rowOff := i * width * cn
			for x := 0; x < width; x++ {
				if edge == bimage.EdgeConstant {
					for c := 0; c < cn; c++ {
						dst[rowOff+x*cn+c] = numeric.FromFloat64[T](constant[c])
					}
					continue
				}
				sy := mapIndex(edge, relY, height)
				sx := x
				for c := 0; c < cn; c++ {
					dst[rowOff+x*cn+c] = src.At(sx, sy, c)
				}
			}
		}
	}

	// top strip row i (i=0 is furthest from the image) corresponds to
	// logical row i-padH.
	fillStrip(top, func(i int) int { return i - padH })
	// bottom strip row i (i=0 is nearest the image) corresponds to
	// logical row height+i.
	fillStrip(bottom, func(i int) int { return height + i })

	return ArenaColumns[T]{Top: top, Bottom: bottom, PadH: padH, Width: width, CN: cn}, nil
}
