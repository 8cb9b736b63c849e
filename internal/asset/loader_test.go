package asset

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/gogpu/gg-transit/internal/image"
	"github.com/gogpu/gg-transit/tag"
)

func pngBytes(t *testing.T, img *image.ImageBuf) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// testFS returns a file system with:
//
//	key.png   4x2, magenta background with one blue pixel at (1,0)
//	split.png 4x1 opaque, colour left half, mask right half (one cel)
//	mask.png  1x1 gray 0x40
func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	key := image.MustNew(4, 2)
	key.Fill(color.NRGBA{R: 255, B: 255, A: 255})
	_ = key.SetRGBA(1, 0, 0, 0, 255, 255)

	split := image.MustNew(4, 1)
	_ = split.SetRGBA(0, 0, 10, 20, 30, 255)
	_ = split.SetRGBA(1, 0, 40, 50, 60, 255)
	_ = split.SetRGBA(2, 0, 0, 0, 0, 255)
	_ = split.SetRGBA(3, 0, 255, 255, 255, 255)

	mask := image.MustNew(1, 1)
	_ = mask.SetRGBA(0, 0, 0x40, 0x40, 0x40, 255)

	return fstest.MapFS{
		"key.png":   {Data: pngBytes(t, key)},
		"split.png": {Data: pngBytes(t, split)},
		"mask.png":  {Data: pngBytes(t, mask)},
	}
}

func TestLoadImageCachesAndScales(t *testing.T) {
	fsys := testFS(t)
	l := NewLoader(fsys, WithScreenRatio(2, 1))
	a, err := l.LoadImage("key.png")
	if err != nil {
		t.Fatal(err)
	}
	if a.Width() != 8 || a.Height() != 4 {
		t.Fatalf("scaled size %dx%d, want 8x4", a.Width(), a.Height())
	}
	delete(fsys, "key.png")
	b, err := l.LoadImage("key.png")
	if err != nil || b != a {
		t.Errorf("second load missed the cache: %v", err)
	}
	if _, err := l.LoadImage("nope.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestBuildModes(t *testing.T) {
	l := NewLoader(testFS(t))

	t.Run("topleft", func(t *testing.T) {
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeTopLeft, Cels: 1, File: "key.png"})
		if err != nil {
			t.Fatal(err)
		}
		if _, _, _, a := img.GetRGBA(0, 0); a != 0 {
			t.Errorf("key colour alpha = %d", a)
		}
		if _, _, _, a := img.GetRGBA(1, 0); a != 255 {
			t.Errorf("other colour alpha = %d", a)
		}
	})

	t.Run("topright flip", func(t *testing.T) {
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeTopRight, Flip: true, Cels: 1, File: "key.png"})
		if err != nil {
			t.Fatal(err)
		}
		// After flipping the blue pixel sits at x=2.
		if _, _, b, a := img.GetRGBA(2, 0); b != 255 || a != 255 {
			t.Errorf("flipped pixel = b%d a%d", b, a)
		}
		if _, _, _, a := img.GetRGBA(3, 1); a != 0 {
			t.Errorf("key colour alpha = %d", a)
		}
	})

	t.Run("alpha split", func(t *testing.T) {
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeAlpha, Cels: 1, File: "split.png"})
		if err != nil {
			t.Fatal(err)
		}
		if img.Width() != 2 {
			t.Fatalf("width %d, want 2", img.Width())
		}
		if r, _, _, a := img.GetRGBA(0, 0); r != 10 || a != 255 {
			t.Errorf("pixel 0 = r%d a%d", r, a)
		}
		if r, _, _, a := img.GetRGBA(1, 0); r != 40 || a != 0 {
			t.Errorf("pixel 1 = r%d a%d", r, a)
		}
	})

	t.Run("mask", func(t *testing.T) {
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeMask, MaskFile: "mask.png", Cels: 1, File: "key.png"})
		if err != nil {
			t.Fatal(err)
		}
		if _, _, _, a := img.GetRGBA(3, 1); a != 255-0x40 {
			t.Errorf("alpha = %d", a)
		}
	})

	t.Run("double", func(t *testing.T) {
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeCopy, Double: true, Cels: 1, File: "key.png"})
		if err != nil {
			t.Fatal(err)
		}
		if img.Width() != 2 || img.Height() != 1 {
			t.Errorf("halved size %dx%d", img.Width(), img.Height())
		}
	})

	t.Run("direct", func(t *testing.T) {
		l := NewLoader(testFS(t), WithCanvasSize(3, 2))
		img, err := l.Build(&tag.Descriptor{Mode: tag.ModeDirect, Colors: []color.NRGBA{{R: 9, A: 255}}, Cels: 1})
		if err != nil {
			t.Fatal(err)
		}
		if img.Width() != 3 || img.Height() != 2 {
			t.Fatalf("size %dx%d", img.Width(), img.Height())
		}
		if r, _, _, _ := img.GetRGBA(2, 1); r != 9 {
			t.Errorf("fill = %d", r)
		}
	})

	t.Run("cached source untouched", func(t *testing.T) {
		src, _ := l.LoadImage("key.png")
		if _, _, _, a := src.GetRGBA(0, 0); a != 255 {
			t.Error("Build modified the cached image")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := l.Build(&tag.Descriptor{Mode: tag.ModeCopy, File: "gone.png"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestDrawText(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	img, err := l.DrawText("Go", TextOptions{Size: 20, Color: color.NRGBA{R: 255, A: 255}, AntiAlias: true})
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() < 10 || img.Height() < 15 {
		t.Fatalf("text surface %dx%d too small", img.Width(), img.Height())
	}
	inked := 0
	for y := range img.Height() {
		for x := range img.Width() {
			if _, _, _, a := img.GetRGBA(x, y); a > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("no glyph pixels drawn")
	}

	wide, err := l.DrawText("Go", TextOptions{Size: 20, Pitch: 10, AntiAlias: true})
	if err != nil {
		t.Fatal(err)
	}
	if wide.Width() != img.Width()+10 {
		t.Errorf("pitch width %d, want %d", wide.Width(), img.Width()+10)
	}
}

func TestTextStrip(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	d, err := tag.Parse(":s/16,16,0;#ffffff#ff0000OK")
	if err != nil {
		t.Fatal(err)
	}
	strip, err := l.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	single, err := l.DrawText("OK", TextOptions{Size: 16, Color: color.NRGBA{A: 255}, AntiAlias: true})
	if err != nil {
		t.Fatal(err)
	}
	if strip.Width() != 2*single.Width() {
		t.Errorf("strip width %d, want %d", strip.Width(), 2*single.Width())
	}
}
