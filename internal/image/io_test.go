package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestFromStdImage_NRGBA(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.Set(3, 3, color.NRGBA{R: 128, G: 64, B: 32, A: 200})

	buf := FromStdImage(nrgba)
	if buf.Width() != 10 || buf.Height() != 10 {
		t.Fatalf("Dimensions = (%d, %d), want (10, 10)", buf.Width(), buf.Height())
	}
	r, g, b, a := buf.GetRGBA(3, 3)
	if r != 128 || g != 64 || b != 32 || a != 200 {
		t.Errorf("Pixel = (%d, %d, %d, %d), want (128, 64, 32, 200)", r, g, b, a)
	}
}

func TestFromStdImage_SubImageOrigin(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	nrgba.Set(5, 6, color.NRGBA{R: 7, A: 255})
	sub := nrgba.SubImage(image.Rect(4, 4, 8, 8))

	buf := FromStdImage(sub)
	if r, _, _, _ := buf.GetRGBA(1, 2); r != 7 {
		t.Errorf("sub-image pixel = %d, want 7", r)
	}
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	var data bytes.Buffer
	if err := bmp.Encode(&data, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	buf, err := LoadImageFromBytes(data.Bytes())
	if err != nil {
		t.Fatalf("LoadImageFromBytes: %v", err)
	}
	r, g, b, a := buf.GetRGBA(1, 1)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("Pixel = (%d, %d, %d, %d), want (10, 20, 30, 255)", r, g, b, a)
	}
}

func TestLoadImageFromBytes_Empty(t *testing.T) {
	if _, err := LoadImageFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("err = %v, want ErrEmptyData", err)
	}
	if _, err := LoadImageFromBytes([]byte("not an image")); err == nil {
		t.Error("garbage decoded without error")
	}
}

func TestSavePNG_RoundTrip(t *testing.T) {
	buf := MustNew(5, 5)
	_ = buf.SetRGBA(4, 4, 1, 2, 3, 255)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := buf.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if !got.Equal(buf) {
		t.Error("PNG round trip changed pixels")
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.bmp")); err == nil {
		t.Error("LoadImage of a missing file returned nil error")
	}
}
