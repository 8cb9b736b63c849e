package image

import (
	"image/color"
	"testing"
)

func TestScale_NearestUpscale(t *testing.T) {
	src := MustNew(2, 1)
	_ = src.SetRGBA(0, 0, 255, 0, 0, 255)
	_ = src.SetRGBA(1, 0, 0, 0, 255, 255)

	dst, err := Scale(src, 4, 2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	for y := range 2 {
		if r, _, _, _ := dst.GetRGBA(1, y); r != 255 {
			t.Errorf("(1,%d) red = %d, want 255", y, r)
		}
		if _, _, b, _ := dst.GetRGBA(2, y); b != 255 {
			t.Errorf("(2,%d) blue = %d, want 255", y, b)
		}
	}
}

func TestScaleRatio(t *testing.T) {
	src := MustNew(8, 4)
	src.Fill(color.NRGBA{G: 200, A: 255})

	same, err := ScaleRatio(src, 2, 2)
	if err != nil || same != src {
		t.Fatalf("ScaleRatio(1) = %p, %v; want src itself", same, err)
	}
	half, err := ScaleRatio(src, 1, 2)
	if err != nil {
		t.Fatalf("ScaleRatio: %v", err)
	}
	if half.Width() != 4 || half.Height() != 2 {
		t.Errorf("size = %dx%d, want 4x2", half.Width(), half.Height())
	}
	if _, g, _, _ := half.GetRGBA(1, 1); g != 200 {
		t.Errorf("uniform image changed color: g=%d", g)
	}
	if _, err := ScaleRatio(src, 0, 1); err == nil {
		t.Error("zero ratio accepted")
	}
}

func TestFlipHorizontal(t *testing.T) {
	buf := MustNew(3, 1)
	_ = buf.SetRGBA(0, 0, 1, 0, 0, 0)
	_ = buf.SetRGBA(2, 0, 3, 0, 0, 0)
	FlipHorizontal(buf)
	if r, _, _, _ := buf.GetRGBA(0, 0); r != 3 {
		t.Errorf("left = %d, want 3", r)
	}
	if r, _, _, _ := buf.GetRGBA(2, 0); r != 1 {
		t.Errorf("right = %d, want 1", r)
	}
}
