package present

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg-transit/internal/image"
)

func TestRecorderRoundTrip(t *testing.T) {
	frame := image.MustNew(8, 6)
	var buf bytes.Buffer
	rec := NewRecorder(&buf, 8, 6)

	frame.FillRect(image.Rect{X: 1, Y: 1, Width: 3, Height: 2}, color.NRGBA{R: 200, A: 255})
	if err := rec.Flush(frame, image.Rect{X: 1, Y: 1, Width: 3, Height: 2}); err != nil {
		t.Fatal(err)
	}
	frame.FillRect(image.Rect{X: 5, Y: 4, Width: 10, Height: 10}, color.NRGBA{G: 100, A: 255})
	if err := rec.Flush(frame, image.Rect{X: 5, Y: 4, Width: 10, Height: 10}); err != nil {
		t.Fatal(err)
	}
	if err := rec.Flush(frame, image.Rect{}); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRecording(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 8 || got.Height != 6 || len(got.Frames) != 3 {
		t.Fatalf("recording %dx%d with %d frames", got.Width, got.Height, len(got.Frames))
	}
	if !got.Frames[2].Equal(frame) {
		t.Error("last frame differs from the source")
	}
	if _, g, _, _ := got.Frames[0].GetRGBA(6, 5); g != 0 {
		t.Error("first frame contains later changes")
	}
	if got.Dirty[1] != (image.Rect{X: 5, Y: 4, Width: 3, Height: 2}) {
		t.Errorf("dirty rect not clipped: %+v", got.Dirty[1])
	}
	if rec.Frames() != 3 {
		t.Errorf("Frames() = %d", rec.Frames())
	}
}

func TestRecorderRejectsSizeMismatch(t *testing.T) {
	rec := NewRecorder(&bytes.Buffer{}, 4, 4)
	if err := rec.Flush(image.MustNew(5, 4), image.Rect{}); err == nil {
		t.Error("expected size error")
	}
}

func TestReadRecordingGarbage(t *testing.T) {
	if _, err := ReadRecording(bytes.NewReader([]byte("nope, not a recording"))); !errors.Is(err, ErrBadRecording) {
		t.Errorf("err = %v", err)
	}
	if _, err := ReadRecording(bytes.NewReader(nil)); !errors.Is(err, ErrBadRecording) {
		t.Errorf("empty stream err = %v", err)
	}
}

// craftRecording builds a stream with the given header size followed by
// one record header and no payload.
func craftRecording(width, height uint32, rec [5]uint32) []byte {
	b := []byte(recMagic)
	b = binary.LittleEndian.AppendUint16(b, recVersion)
	b = binary.LittleEndian.AppendUint32(b, width)
	b = binary.LittleEndian.AppendUint32(b, height)
	for _, v := range rec {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func TestReadRecordingRejectsHostileSizes(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		tooBig bool
	}{
		{"huge frame", craftRecording(0x100000, 0x100000, [5]uint32{}), true},
		{"wide frame", craftRecording(0xffffffff, 1, [5]uint32{}), true},
		{"zero frame", craftRecording(0, 4, [5]uint32{}), false},
		{"huge payload", craftRecording(4, 4, [5]uint32{0, 0, 4, 4, 0xffffffff}), false},
		{"rect outside", craftRecording(4, 4, [5]uint32{3, 0, 0xfffffffe, 1, 8}), false},
		{"truncated payload", craftRecording(4, 4, [5]uint32{0, 0, 1, 1, 16}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecording(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrBadRecording) {
				t.Fatalf("err = %v, want ErrBadRecording", err)
			}
			if tt.tooBig != errors.Is(err, ErrRecordingTooLarge) {
				t.Errorf("err = %v, too large = %v", err, tt.tooBig)
			}
		})
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	seq := &PNGSequence{Dir: dir, Prefix: "f"}
	frame := image.MustNew(2, 2)
	for i := 0; i < 3; i++ {
		if err := seq.Flush(frame, frame.Bounds()); err != nil {
			t.Fatal(err)
		}
	}
	if seq.Frames() != 3 {
		t.Errorf("Frames() = %d", seq.Frames())
	}
	if _, err := os.Stat(filepath.Join(dir, "f00002.png")); err != nil {
		t.Error(err)
	}
	img, err := image.LoadImage(filepath.Join(dir, "f00000.png"))
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 2 {
		t.Errorf("width %d", img.Width())
	}
}

func TestDiscard(t *testing.T) {
	var d Discard
	_ = d.Flush(nil, image.Rect{})
	_ = d.Flush(nil, image.Rect{})
	if d.Flushes != 2 {
		t.Errorf("Flushes = %d", d.Flushes)
	}
}
