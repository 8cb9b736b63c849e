package transit

import (
	"errors"
	"image/color"
	"testing"
)

// fakeClock is a manually advanced tick source.
type fakeClock struct{ t int64 }

func (c *fakeClock) Ticks() int64 { return c.t }

func (c *fakeClock) advance(n int) { c.t += int64(n) }

// flushRecorder counts presenter calls.
type flushRecorder struct {
	rects []Rect
	err   error
}

func (f *flushRecorder) Flush(_ *ImageBuf, r Rect) error {
	f.rects = append(f.rects, r)
	return f.err
}

var (
	red  = color.NRGBA{R: 200, G: 10, B: 20, A: 255}
	blue = color.NRGBA{R: 30, G: 40, B: 220, A: 255}
)

// newTestEngine returns an engine whose screen shows red and whose
// destination is blue, with the whole screen dirty.
func newTestEngine(t *testing.T, w, h int, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{}
	opts = append([]Option{WithClock(clk)}, opts...)
	e, err := NewEngine(w, h, opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(e.Close)
	e.Buffers().Accumulation.Fill(red)
	e.Buffers().Destination.Fill(blue)
	e.Dirty().Fill()
	return e, clk
}

func arm(t *testing.T, e *Engine, req Request) {
	t.Helper()
	if _, err := e.Arm(req, ArmOptions{}); err != nil {
		t.Fatalf("Arm(%v): %v", req.Effect, err)
	}
}

func step(t *testing.T, e *Engine, in Input) Result {
	t.Helper()
	res, err := e.Step(in)
	if err != nil && !errors.Is(err, errFlush) {
		t.Fatalf("Step: %v", err)
	}
	return res
}

var errFlush = errors.New("flush failed")

func px(b *ImageBuf, x, y int) color.NRGBA {
	r, g, bl, a := b.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// gradient fills b so that every pixel encodes its coordinates.
func gradient(b *ImageBuf, base uint8) {
	for y := range b.Height() {
		for x := range b.Width() {
			_ = b.SetRGBA(x, y, base+uint8(x), uint8(y), base, 255)
		}
	}
}
