package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP decoder; most legacy cels are BMP
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadImage loads an image from the given file path, detecting the format
// from its content. Supported formats: PNG, JPEG, BMP.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes decodes an image from a byte slice.
func LoadImageFromBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width := max(bounds.Dx(), 1)
	height := max(bounds.Dy(), 1)

	buf := MustNew(width, height)
	if bounds.Empty() {
		return buf
	}

	// Fast path for NRGBA images (straight alpha, same layout)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Row(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	// Generic path: color.NRGBAModel un-premultiplies
	for y := range height {
		row := buf.Row(y)
		for x := range width {
			c := nrgbaAt(img, bounds.Min.X+x, bounds.Min.Y+y)
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = c.R, c.G, c.B, c.A
		}
	}
	return buf
}

// ToStdImage converts the ImageBuf to a standard library *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(nrgba.Pix[y*nrgba.Stride:], b.Row(y))
	}
	return nrgba
}
