package bimage

import "testing"

func TestNewBlurImageRejectsZeroSize(t *testing.T) {
	_, err := NewBlurImage([]uint8{1, 2, 3, 4}, 0, 2, 2, 1)
	if err == nil {
		t.Fatalf("expected an error for zero width")
	}
}

func TestNewBlurImageRejectsShortSlice(t *testing.T) {
	_, err := NewBlurImage([]uint8{1, 2, 3}, 2, 2, 2, 1)
	if err == nil {
		t.Fatalf("expected an error for a too-short backing slice")
	}
}

func TestBlurImageRowAndAt(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	img, err := NewBlurImage(data, 3, 2, 3, 1)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	row1 := img.Row(1)
	if row1[0] != 4 || row1[2] != 6 {
		t.Errorf("row 1 = %v, want [4 5 6]", row1)
	}
	if got := img.At(2, 0, 0); got != 3 {
		t.Errorf("At(2,0,0) = %d, want 3", got)
	}
}

func TestBlurImageMutBorrowedRejectsTooSmall(t *testing.T) {
	store := Borrowed([]uint8{1, 2, 3})
	_, err := NewBlurImageMut(&store, 2, 2, 2, 1)
	if err == nil {
		t.Fatalf("expected an error for a too-small borrowed buffer")
	}
}

func TestBlurImageMutOwnedAutoResizes(t *testing.T) {
	store := Owned[uint8]()
	mut, err := NewBlurImageMut(&store, 4, 4, 4, 1)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	if len(store.Slice()) < 16 {
		t.Errorf("owned store did not resize: len=%d", len(store.Slice()))
	}
	mut.Set(1, 1, 0, 9)
	if got := mut.Row(1)[1]; got != 9 {
		t.Errorf("Row(1)[1] = %d, want 9", got)
	}
}

func TestMatchShapeDetectsMismatch(t *testing.T) {
	src, err := NewBlurImage([]uint8{1, 2, 3, 4}, 2, 2, 2, 1)
	if err != nil {
		t.Fatalf("NewBlurImage: %v", err)
	}
	store := Borrowed([]uint8{1, 2, 3, 4, 5, 6})
	dst, err := NewBlurImageMut(&store, 3, 2, 3, 1)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	if err := MatchShape(src, dst); err == nil {
		t.Fatalf("expected a shape mismatch error")
	}
}

func TestAsImmutableSharesStorage(t *testing.T) {
	store := Borrowed([]uint8{1, 2, 3, 4})
	mut, err := NewBlurImageMut(&store, 2, 2, 2, 1)
	if err != nil {
		t.Fatalf("NewBlurImageMut: %v", err)
	}
	mut.Set(0, 0, 0, 42)
	view := mut.AsImmutable()
	if got := view.At(0, 0, 0); got != 42 {
		t.Errorf("At(0,0,0) = %d, want 42", got)
	}
}

func TestEdgeModeString(t *testing.T) {
	cases := map[EdgeMode]string{
		EdgeClamp:      "clamp",
		EdgeWrap:       "wrap",
		EdgeReflect:    "reflect",
		EdgeReflect101: "reflect101",
		EdgeConstant:   "constant",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}
}

func TestPixelLayoutChannels(t *testing.T) {
	cases := map[PixelLayout]int{
		LayoutPlane:     1,
		LayoutChannels3: 3,
		LayoutChannels4: 4,
	}
	for layout, want := range cases {
		if got := layout.Channels(); got != want {
			t.Errorf("%v.Channels() = %d, want %d", layout, got, want)
		}
	}
}
