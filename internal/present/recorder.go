package present

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/gg-transit/internal/image"
)

// Recording layout (little endian):
//
//	magic "GTRC", version u16, width u32, height u32
//	per flush: x, y, w, h u32, n u32, n bytes zstd(rows of the rectangle)
const (
	recMagic   = "GTRC"
	recVersion = 1
)

// maxRecordingBytes caps the pixel memory ReadRecording keeps: every frame
// of the stream together, and so also the size of a single frame.
const maxRecordingBytes = 1 << 30

// ErrBadRecording is returned for streams that are not recordings.
var ErrBadRecording = errors.New("present: malformed recording")

// ErrRecordingTooLarge is returned when a recording would decode to more
// than maxRecordingBytes of pixels.
var ErrRecordingTooLarge = fmt.Errorf("%w: too large", ErrBadRecording)

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxRecordingBytes))
		return dec
	},
}

// Recorder appends every flushed dirty rectangle to a compressed stream.
// Only the changed pixels are stored; ReadRecording replays them into full
// frames.
type Recorder struct {
	w       *bufio.Writer
	width   int
	height  int
	started bool
	scratch []byte
	frames  int
}

// NewRecorder creates a recorder for frames of the given size.
func NewRecorder(w io.Writer, width, height int) *Recorder {
	return &Recorder{w: bufio.NewWriter(w), width: width, height: height}
}

func (r *Recorder) header() error {
	var hdr [4 + 2 + 8]byte
	copy(hdr[:], recMagic)
	binary.LittleEndian.PutUint16(hdr[4:], recVersion)
	binary.LittleEndian.PutUint32(hdr[6:], uint32(r.width))
	binary.LittleEndian.PutUint32(hdr[10:], uint32(r.height))
	_, err := r.w.Write(hdr[:])
	return err
}

// Flush implements transit.Presenter.
func (r *Recorder) Flush(frame *image.ImageBuf, dirty image.Rect) error {
	if frame.Width() != r.width || frame.Height() != r.height {
		return fmt.Errorf("present: frame %dx%d, recorder %dx%d", frame.Width(), frame.Height(), r.width, r.height)
	}
	if !r.started {
		if err := r.header(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		r.started = true
	}
	dirty = dirty.Intersect(frame.Bounds())

	r.scratch = r.scratch[:0]
	for y := dirty.Y; y < dirty.Bottom(); y++ {
		r.scratch = append(r.scratch, frame.RowSpan(y, dirty.X, dirty.Width)...)
	}
	enc := zstdEncPool.Get().(*zstd.Encoder)
	packed := enc.EncodeAll(r.scratch, nil)
	zstdEncPool.Put(enc)

	var rec [20]byte
	binary.LittleEndian.PutUint32(rec[0:], uint32(dirty.X))
	binary.LittleEndian.PutUint32(rec[4:], uint32(dirty.Y))
	binary.LittleEndian.PutUint32(rec[8:], uint32(dirty.Width))
	binary.LittleEndian.PutUint32(rec[12:], uint32(dirty.Height))
	binary.LittleEndian.PutUint32(rec[16:], uint32(len(packed)))
	if _, err := r.w.Write(rec[:]); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	if _, err := r.w.Write(packed); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	r.frames++
	return nil
}

// Frames returns the number of flushes recorded.
func (r *Recorder) Frames() int { return r.frames }

// Close flushes buffered output. It does not close the underlying writer.
func (r *Recorder) Close() error {
	if !r.started {
		if err := r.header(); err != nil {
			return err
		}
		r.started = true
	}
	return r.w.Flush()
}

// Recording is a decoded stream: one full frame per flush, starting from a
// transparent frame.
type Recording struct {
	Width, Height int
	Frames        []*image.ImageBuf
	Dirty         []image.Rect
}

// ReadRecording decodes a stream written by Recorder.
func ReadRecording(r io.Reader) (*Recording, error) {
	br := bufio.NewReader(r)
	var hdr [14]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadRecording, err)
	}
	if !bytes.Equal(hdr[:4], []byte(recMagic)) || binary.LittleEndian.Uint16(hdr[4:]) != recVersion {
		return nil, ErrBadRecording
	}
	w, h := uint64(binary.LittleEndian.Uint32(hdr[6:])), uint64(binary.LittleEndian.Uint32(hdr[10:]))
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d frame", ErrBadRecording, w, h)
	}
	if w > maxRecordingBytes || h > maxRecordingBytes {
		return nil, fmt.Errorf("%w: %dx%d frame", ErrRecordingTooLarge, w, h)
	}
	frameBytes := w * h * image.BytesPerPixel
	if frameBytes > maxRecordingBytes {
		return nil, fmt.Errorf("%w: %dx%d frame", ErrRecordingTooLarge, w, h)
	}
	rec := &Recording{Width: int(w), Height: int(h)}
	cur, err := image.NewImageBuf(rec.Width, rec.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecording, err)
	}

	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)

	var kept uint64
	for {
		var hd [20]byte
		if _, err := io.ReadFull(br, hd[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return rec, nil
			}
			return nil, fmt.Errorf("%w: record: %v", ErrBadRecording, err)
		}
		x, y := uint64(binary.LittleEndian.Uint32(hd[0:])), uint64(binary.LittleEndian.Uint32(hd[4:]))
		dw, dh := uint64(binary.LittleEndian.Uint32(hd[8:])), uint64(binary.LittleEndian.Uint32(hd[12:]))
		if x+dw > w || y+dh > h {
			return nil, fmt.Errorf("%w: rectangle %d,%d %dx%d outside %dx%d", ErrBadRecording, x, y, dw, dh, w, h)
		}
		d := image.Rect{X: int(x), Y: int(y), Width: int(dw), Height: int(dh)}
		rawLen := dw * dh * image.BytesPerPixel
		n := uint64(binary.LittleEndian.Uint32(hd[16:]))
		if n > compressBound(rawLen) {
			return nil, fmt.Errorf("%w: payload of %d bytes for %d pixels", ErrBadRecording, n, dw*dh)
		}
		kept += frameBytes
		if kept > maxRecordingBytes {
			return nil, fmt.Errorf("%w: more than %d frames", ErrRecordingTooLarge, len(rec.Frames))
		}
		packed := make([]byte, n)
		if _, err := io.ReadFull(br, packed); err != nil {
			return nil, fmt.Errorf("%w: payload: %v", ErrBadRecording, err)
		}
		raw, err := dec.DecodeAll(packed, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd decode: %v", ErrBadRecording, err)
		}
		if !d.Empty() {
			if uint64(len(raw)) != rawLen {
				return nil, ErrBadRecording
			}
			rowLen := d.Width * image.BytesPerPixel
			for y := 0; y < d.Height; y++ {
				copy(cur.RowSpan(d.Y+y, d.X, d.Width), raw[y*rowLen:(y+1)*rowLen])
			}
		}
		rec.Frames = append(rec.Frames, cur.Clone())
		rec.Dirty = append(rec.Dirty, d)
	}
}

// compressBound is the largest zstd frame the encoder produces for n input
// bytes, with slack for frame and block headers.
func compressBound(n uint64) uint64 {
	return n + n>>7 + 1024
}
