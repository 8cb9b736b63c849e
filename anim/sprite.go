package anim

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg-transit/internal/image"
)

// LoopMode selects what happens after the last cel.
type LoopMode int

const (
	// LoopForever wraps back to cel 0.
	LoopForever LoopMode = 0
	// LoopOnce stops on the last cel.
	LoopOnce LoopMode = 1
	// LoopOnceAlt is the second once-style descriptor digit. It behaves
	// like LoopOnce.
	LoopOnceAlt LoopMode = 2
	// LoopNone never advances; the cels are selected by the host.
	LoopNone LoopMode = 3
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopForever:
		return "loop"
	case LoopOnce, LoopOnceAlt:
		return "once"
	case LoopNone:
		return "none"
	default:
		return fmt.Sprintf("LoopMode(%d)", int(m))
	}
}

// Layer is the priority group of a sprite.
type Layer int

const (
	// LayerTachi holds the standing characters (slots 0-2).
	LayerTachi Layer = iota
	// LayerSprite holds the primary sprites.
	LayerSprite
	// LayerSprite2 holds the secondary sprites.
	LayerSprite2
	// LayerCursor holds the click-wait cursors; the slot is a CursorKind.
	LayerCursor

	numLayers
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTachi:
		return "tachi"
	case LayerSprite:
		return "sprite"
	case LayerSprite2:
		return "sprite2"
	case LayerCursor:
		return "cursor"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// BlendMode selects how a sprite is composited.
type BlendMode int

const (
	// BlendNormal alpha-blends the cel using its alpha channel and Sprite.Alpha.
	BlendNormal BlendMode = iota
	// BlendAdd adds the cel with saturation.
	BlendAdd
	// BlendSub subtracts the cel with saturation.
	BlendSub
)

// Errors returned by SetCels.
var (
	ErrNoCels    = errors.New("anim: cel count must be positive")
	ErrDurations = errors.New("anim: need one duration or one per cel, none negative")
)

// Sprite is one animated entity.
//
// Host code may change the exported fields at any time between scheduler
// calls. Animation state changes only through SetCels, Reset and Advance.
type Sprite struct {
	Layer   Layer
	Index   int
	X, Y    int
	Visible bool
	// Abs places a cursor at X, Y on screen instead of relative to the
	// text origin. Ignored for other layers.
	Abs   bool
	Alpha uint8
	Mode  BlendMode

	strip     *image.ImageBuf
	cels      int
	durations []int
	cel       int
	remaining int
	loop      LoopMode
	done      bool
}

// NewSprite returns a visible, opaque, empty sprite for the given slot.
func NewSprite(layer Layer, index int) *Sprite {
	return &Sprite{
		Layer:   layer,
		Index:   index,
		Visible: true,
		Abs:     true,
		Alpha:   255,
	}
}

// SetCels replaces the image set and resets the animation to cel 0.
// strip holds the cels side by side and may be nil for sprites that are
// only scheduled. A single duration applies to every cel. On error the
// sprite is left unchanged.
func (s *Sprite) SetCels(strip *image.ImageBuf, n int, durations []int, loop LoopMode) error {
	if n <= 0 {
		return ErrNoCels
	}
	if len(durations) != 1 && len(durations) != n {
		return fmt.Errorf("%w: got %d for %d cels", ErrDurations, len(durations), n)
	}
	d := make([]int, n)
	for i := range d {
		v := durations[0]
		if len(durations) == n {
			v = durations[i]
		}
		if v < 0 {
			return fmt.Errorf("%w: cel %d is %d", ErrDurations, i, v)
		}
		d[i] = v
	}
	s.strip = strip
	s.cels = n
	s.durations = d
	s.loop = loop
	s.Reset()
	return nil
}

// Reset rewinds to cel 0 with a full first-cel timer.
func (s *Sprite) Reset() {
	s.cel = 0
	s.done = false
	if s.cels > 0 {
		s.remaining = s.durations[0]
	}
}

// Animatable reports whether the sprite can still change cel on its own.
func (s *Sprite) Animatable() bool {
	return s.cels > 1 && s.loop != LoopNone && !s.done
}

// Advance moves to the next cel and restarts its timer. It reports whether
// the visible cel changed. A once-mode sprite that reaches its last cel
// stops being animatable.
func (s *Sprite) Advance() bool {
	if !s.Animatable() {
		return false
	}
	s.cel++
	if s.cel >= s.cels {
		s.cel = 0
	}
	if s.loop != LoopForever && s.cel == s.cels-1 {
		s.done = true
	}
	s.remaining = s.durations[s.cel]
	return true
}

// SetCel selects a cel directly, typically for LoopNone sprites.
func (s *Sprite) SetCel(i int) {
	if i < 0 || i >= s.cels {
		return
	}
	s.cel = i
	s.remaining = s.durations[i]
}

// Cel returns the current cel index.
func (s *Sprite) Cel() int { return s.cel }

// Cels returns the number of cels.
func (s *Sprite) Cels() int { return s.cels }

// Remaining returns the ticks left before the next advance. It may be
// negative after ChargeElapsed overshoots.
func (s *Sprite) Remaining() int { return s.remaining }

// Durations returns a copy of the per-cel durations.
func (s *Sprite) Durations() []int { return append([]int(nil), s.durations...) }

// Loop returns the loop mode.
func (s *Sprite) Loop() LoopMode { return s.loop }

// Image returns the cel strip, possibly nil.
func (s *Sprite) Image() *image.ImageBuf { return s.strip }

// CelSize returns the size of one cel.
func (s *Sprite) CelSize() (w, h int) {
	if s.strip == nil || s.cels == 0 {
		return 0, 0
	}
	return s.strip.Width() / s.cels, s.strip.Height()
}

// CelRect returns the current cel's rectangle inside the strip.
func (s *Sprite) CelRect() image.Rect {
	w, h := s.CelSize()
	return image.Rect{X: s.cel * w, Width: w, Height: h}
}

// Rect returns the sprite's rectangle at its own position.
func (s *Sprite) Rect() image.Rect {
	w, h := s.CelSize()
	return image.Rect{X: s.X, Y: s.Y, Width: w, Height: h}
}
