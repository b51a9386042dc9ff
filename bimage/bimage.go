// Package bimage holds the image view types shared by every filter
// entry point: an immutable BlurImage, a mutable BlurImageMut with a
// borrowed-or-owned backing store, and the small value types
// (PixelLayout, Scalar, EdgeMode, ImageSize, KernelShape) that describe
// their shape and boundary behaviour.
//
// These generalize the teacher's direct-pixel-access image.RGBA style
// (RGBAAt/Set on a fixed 4-channel 8-bit layout) to arbitrary element
// types and channel counts.
package bimage

import (
	"fmt"

	"github.com/cwbudde/blurcore/blurerr"
	"github.com/cwbudde/blurcore/numeric"
)

// Number is re-exported from the numeric package so callers only need to
// import bimage for the common case.
type Number = numeric.Number

// ImageSize describes a strictly positive width/height pair.
type ImageSize struct {
	Width  int
	Height int
}

// Validate returns ErrZeroBaseSize if either dimension is non-positive.
func (s ImageSize) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return blurerr.ErrZeroBaseSize
	}
	return nil
}

// KernelShape describes the (width, height) of a 2-D kernel; both
// dimensions must equal the length of the corresponding coefficient
// axis.
type KernelShape struct {
	Width  int
	Height int
}

// PixelLayout is the closed set of supported channel layouts.
type PixelLayout int

const (
	LayoutPlane PixelLayout = iota
	LayoutChannels3
	LayoutChannels4
)

// Channels returns the channel count implied by the layout.
func (p PixelLayout) Channels() int {
	switch p {
	case LayoutPlane:
		return 1
	case LayoutChannels3:
		return 3
	case LayoutChannels4:
		return 4
	default:
		return 0
	}
}

func (p PixelLayout) String() string {
	switch p {
	case LayoutPlane:
		return "plane"
	case LayoutChannels3:
		return "channels3"
	case LayoutChannels4:
		return "channels4"
	default:
		return "unknown"
	}
}

// Scalar is a 4-component border-fill value; EdgeConstant uses one
// component per channel (unused components are ignored for layouts
// narrower than 4 channels).
type Scalar [4]float64

// EdgeMode selects the boundary policy used when an arena reads past the
// edge of the source image.
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeWrap
	EdgeReflect
	EdgeReflect101
	EdgeConstant
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeWrap:
		return "wrap"
	case EdgeReflect:
		return "reflect"
	case EdgeReflect101:
		return "reflect101"
	case EdgeConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// BlurImage is an immutable view over a contiguous, possibly
// row-padded, buffer of T.
type BlurImage[T Number] struct {
	data     []T
	width    int
	height   int
	stride   int
	channels int
}

// NewBlurImage validates the invariants (stride >= width*channels; len(data)
// >= stride*(height-1) + width*channels) and wraps data as a read-only
// view.
func NewBlurImage[T Number](data []T, width, height, stride, channels int) (*BlurImage[T], error) {
	if width <= 0 || height <= 0 {
		return nil, blurerr.ErrZeroBaseSize
	}
	if stride < width*channels {
		return nil, fmt.Errorf("%w: stride=%d width=%d channels=%d", blurerr.ErrMinimumStrideSizeMismatch, stride, width, channels)
	}
	required := stride*(height-1) + width*channels
	if len(data) < required {
		return nil, fmt.Errorf("%w: have=%d need=%d", blurerr.ErrMinimumSliceSizeMismatch, len(data), required)
	}
	return &BlurImage[T]{data: data, width: width, height: height, stride: stride, channels: channels}, nil
}

func (b *BlurImage[T]) Width() int    { return b.width }
func (b *BlurImage[T]) Height() int   { return b.height }
func (b *BlurImage[T]) Stride() int   { return b.stride }
func (b *BlurImage[T]) Channels() int { return b.channels }
func (b *BlurImage[T]) Size() ImageSize {
	return ImageSize{Width: b.width, Height: b.height}
}

// Row returns the elements of row y. Any opaque stride padding beyond
// width*channels is excluded: only the live pixel data is returned.
func (b *BlurImage[T]) Row(y int) []T {
	start := y * b.stride
	end := start + b.width*b.channels
	return b.data[start:end]
}

// RawRow returns the full stride-width slice for row y, including
// trailing opaque padding, for callers that need raw addressing (e.g.
// arena construction).
func (b *BlurImage[T]) RawRow(y int) []T {
	start := y * b.stride
	return b.data[start : start+b.stride]
}

// At returns the value of channel c at pixel (x, y).
func (b *BlurImage[T]) At(x, y, c int) T {
	return b.data[y*b.stride+x*b.channels+c]
}

// Data returns the backing slice verbatim, for callers building an
// arena directly from it.
func (b *BlurImage[T]) Data() []T { return b.data }

// BufferStoreKind distinguishes a caller-supplied slice from an
// internally managed, auto-resizing one.
type BufferStoreKind int

const (
	BufferBorrowed BufferStoreKind = iota
	BufferOwned
)

// BufferStore is either a borrowed mutable slice (shape mismatches are
// errors) or an owned vector (auto-resized to match a companion source
// image).
type BufferStore[T Number] struct {
	kind BufferStoreKind
	data []T
}

// Borrowed wraps an existing slice; EnsureShapeLike on the resulting
// BlurImageMut treats a too-small slice as an error rather than
// resizing it.
func Borrowed[T Number](s []T) BufferStore[T] {
	return BufferStore[T]{kind: BufferBorrowed, data: s}
}

// Owned returns an empty, auto-resizing buffer store.
func Owned[T Number]() BufferStore[T] {
	return BufferStore[T]{kind: BufferOwned}
}

func (s *BufferStore[T]) Slice() []T { return s.data }

// BlurImageMut is the mutable counterpart of BlurImage: same shape
// contract, backed by a BufferStore that may auto-resize when owned.
type BlurImageMut[T Number] struct {
	store    *BufferStore[T]
	width    int
	height   int
	stride   int
	channels int
}

// NewBlurImageMut validates or resizes store to the given shape.
func NewBlurImageMut[T Number](store *BufferStore[T], width, height, stride, channels int) (*BlurImageMut[T], error) {
	if width <= 0 || height <= 0 {
		return nil, blurerr.ErrZeroBaseSize
	}
	if stride < width*channels {
		return nil, fmt.Errorf("%w: stride=%d width=%d channels=%d", blurerr.ErrMinimumStrideSizeMismatch, stride, width, channels)
	}
	required := stride*(height-1) + width*channels
	switch store.kind {
	case BufferOwned:
		if len(store.data) < required {
			store.data = make([]T, required)
		}
	case BufferBorrowed:
		if len(store.data) < required {
			return nil, fmt.Errorf("%w: have=%d need=%d", blurerr.ErrMinimumSliceSizeMismatch, len(store.data), required)
		}
	}
	return &BlurImageMut[T]{store: store, width: width, height: height, stride: stride, channels: channels}, nil
}

// EnsureShapeLike resizes (if owned) or validates (if borrowed) m to
// match the shape of a companion source image.
func (m *BlurImageMut[T]) EnsureShapeLike(src ImageSize, stride, channels int) error {
	required := stride*(src.Height-1) + src.Width*channels
	switch m.store.kind {
	case BufferOwned:
		if len(m.store.data) < required {
			m.store.data = make([]T, required)
		}
	case BufferBorrowed:
		if len(m.store.data) < required {
			return fmt.Errorf("%w: have=%d need=%d", blurerr.ErrMinimumSliceSizeMismatch, len(m.store.data), required)
		}
	}
	m.width, m.height, m.stride, m.channels = src.Width, src.Height, stride, channels
	return nil
}

func (m *BlurImageMut[T]) Width() int    { return m.width }
func (m *BlurImageMut[T]) Height() int   { return m.height }
func (m *BlurImageMut[T]) Stride() int   { return m.stride }
func (m *BlurImageMut[T]) Channels() int { return m.channels }
func (m *BlurImageMut[T]) Size() ImageSize {
	return ImageSize{Width: m.width, Height: m.height}
}

// Row returns the live (non-padding) elements of row y.
func (m *BlurImageMut[T]) Row(y int) []T {
	start := y * m.stride
	end := start + m.width*m.channels
	return m.store.data[start:end]
}

// RawRow returns the full stride-width slice for row y.
func (m *BlurImageMut[T]) RawRow(y int) []T {
	start := y * m.stride
	return m.store.data[start : start+m.stride]
}

func (m *BlurImageMut[T]) Set(x, y, c int, v T) {
	m.store.data[y*m.stride+x*m.channels+c] = v
}

func (m *BlurImageMut[T]) Data() []T { return m.store.data }

// AsImmutable returns a read-only BlurImage view backed by the same
// storage, for passing an already-computed intermediate into a pass
// that expects BlurImage.
func (m *BlurImageMut[T]) AsImmutable() *BlurImage[T] {
	return &BlurImage[T]{data: m.store.data, width: m.width, height: m.height, stride: m.stride, channels: m.channels}
}

// MatchShape returns ErrImagesMustMatch if a and b differ in width,
// height or channel count.
func MatchShape[T Number](a *BlurImage[T], b *BlurImageMut[T]) error {
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Channels() != b.Channels() {
		return fmt.Errorf("%w: src=%dx%dx%d dst=%dx%dx%d", blurerr.ErrImagesMustMatch,
			a.Width(), a.Height(), a.Channels(), b.Width(), b.Height(), b.Channels())
	}
	return nil
}
