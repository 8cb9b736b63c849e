package transit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gogpu/gg-transit/internal/image"
	"github.com/gogpu/gg-transit/internal/kernel"
)

// State is the lifecycle state of an Engine.
type State int

const (
	// Idle means no transition is armed.
	Idle State = iota
	// Armed means Arm succeeded and Step has not run yet.
	Armed
	// Running means at least one step was rendered.
	Running
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Result tells the host loop what to do after a call.
type Result int

const (
	// Wait asks the host to wait for the next tick and call Step again.
	Wait Result = iota
	// Continue means the transition is over.
	Continue
)

// String returns the result name.
func (r Result) String() string {
	if r == Continue {
		return "continue"
	}
	return "wait"
}

// Input is the user input sampled at the start of a step.
type Input struct {
	// FastForward completes the transition on this step (Ctrl held or a
	// skip-to-wait request).
	FastForward bool
	// Skip is the host's skip mode; with WithEffectCut every transition
	// armed during skip plays as EffectCut.
	Skip bool
}

// ArmOptions controls how Arm prepares the destination frame.
type ArmOptions struct {
	// GenerateDestination renders the destination with the engine's Scene.
	// Otherwise the host has drawn Buffers().Destination itself.
	GenerateDestination bool
	// UpdateBackup renders into the backup surface first and copies it to
	// the destination.
	UpdateBackup bool
	// ReuseBackup copies the backup surface to the destination without
	// rendering.
	ReuseBackup bool
}

// Clock is the tick source. Ticks must not decrease.
type Clock interface {
	Ticks() int64
}

// Scene renders the target state of the screen.
type Scene interface {
	// Refresh redraws the clip rectangle of dst.
	Refresh(dst *ImageBuf, clip Rect)
}

// Presenter receives the accumulation buffer after every step.
type Presenter interface {
	// Flush pushes the dirty rectangle of frame to the display.
	Flush(frame *ImageBuf, dirty Rect) error
}

// MaskLoader loads mask images by path.
type MaskLoader interface {
	LoadImage(path string) (*ImageBuf, error)
}

// framePool recycles the engine surfaces across engines.
var framePool = image.NewPool(4)

// Engine runs transitions between two frames.
//
// The engine is driven by the host loop: Arm prepares a transition, then
// Step is called once per tick until it returns Continue. Between Arm and
// the final Step the frame buffers belong to the engine.
//
// Engine is not safe for concurrent use.
type Engine struct {
	opts  engineOptions
	k     kernel.Kernels
	bufs  *FrameBuffers
	dirty *DirtyRegion
	clock Clock
	rnd   *rand.Rand

	stripe  int
	curtain int
	amp     int

	state    State
	req      Request
	effect   variant
	counter  int
	duration int
	last     int64
	level    uint32
	mask     *ImageBuf
}

// NewEngine creates an engine for a width x height screen.
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		opts:  o,
		k:     o.kernels,
		bufs:  newFrameBuffers(framePool, width, height),
		dirty: NewDirtyRegion(width, height),
		clock: o.clock,
		rnd:   o.rnd,
	}
	if e.k == nil {
		e.k = kernel.Default()
	}
	if e.clock == nil {
		e.clock = wallClock{start: time.Now()}
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := o.geometry
	e.stripe = max(g.StripeWidth*o.num/o.den, 1)
	e.curtain = max(g.CurtainWidth*o.num/o.den, 1)
	e.amp = g.QuakeAmplitude * o.num / o.den

	if t, ok := e.k.(*kernel.Table); ok {
		Logger().Info("transit: engine created",
			"width", width, "height", height,
			"blend", t.Name(kernel.PrimBlend), "mean", t.Name(kernel.PrimMean))
	}
	return e, nil
}

// Close returns the frame buffers to the shared pool. The engine must not
// be used afterwards.
func (e *Engine) Close() {
	if e.bufs != nil {
		e.bufs.release()
		e.bufs = nil
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Buffers returns the frame buffers. The host may draw into them only
// while the engine is Idle.
func (e *Engine) Buffers() *FrameBuffers { return e.bufs }

// Dirty returns the dirty region.
func (e *Engine) Dirty() *DirtyRegion { return e.dirty }

// Level returns the uniform blend level of the last cross-fade frame.
func (e *Engine) Level() uint32 { return e.level }

// Counter returns the tick counter of the running transition.
func (e *Engine) Counter() int { return e.counter }

// Request returns the armed request.
func (e *Engine) Request() Request { return e.req }

// Arm prepares a transition: the accumulation buffer is captured as the
// source, the destination is prepared per opts and the mask is loaded.
// It returns Wait; the host then calls Step until it returns Continue.
func (e *Engine) Arm(req Request, opts ArmOptions) (Result, error) {
	if e.state != Idle {
		return Wait, ErrBusy
	}
	if req.Duration < 0 {
		return Wait, fmt.Errorf("%w: negative duration %d", ErrInvalidRequest, req.Duration)
	}

	b := e.bufs
	b.Source.CopyRect(b.Accumulation, b.Accumulation.Bounds(), 0, 0)

	if req.Effect.FullScreen() {
		e.dirty.Fill()
	}
	e.prepareDestination(req, opts)

	e.mask = req.Mask
	if e.mask == nil && req.MaskPath != "" && (req.Effect == EffectMaskFade || req.Effect == EffectMaskCrossFade) {
		e.mask = e.loadMask(req.MaskPath)
	}

	e.req = req
	e.effect = nil
	e.counter = 0
	e.duration = req.Duration
	e.level = 0
	e.last = e.clock.Ticks()
	e.state = Armed

	Logger().Debug("transit: armed", "effect", req.Effect, "duration", req.Duration,
		"dirty", e.dirty.Bounds())
	return Wait, nil
}

// prepareDestination fills the destination buffer. A generated
// destination is rendered over the whole screen because quakes and scrolls
// read it outside the dirty region; instant requests only need the dirty
// region. The backup surface is only ever refreshed over the dirty region.
func (e *Engine) prepareDestination(req Request, opts ArmOptions) {
	b := e.bufs
	clip := e.dirty.Bounds()
	switch {
	case opts.ReuseBackup:
		b.Destination.CopyRect(b.Backup, clip, clip.X, clip.Y)
	case !opts.GenerateDestination || e.opts.scene == nil:
	case opts.UpdateBackup:
		e.opts.scene.Refresh(b.Backup, clip)
		b.Destination.CopyRect(b.Backup, clip, clip.X, clip.Y)
	case req.Effect.Instant():
		e.opts.scene.Refresh(b.Destination, clip)
	default:
		e.opts.scene.Refresh(b.Destination, b.Destination.Bounds())
	}
}

func (e *Engine) loadMask(path string) *ImageBuf {
	if e.opts.masks == nil {
		return nil
	}
	m, err := e.opts.masks.LoadImage(path)
	if err != nil {
		Logger().Warn("transit: mask load failed", "path", path, "err", err)
		return nil
	}
	return m
}

// Step advances the armed transition by the ticks elapsed since the
// previous call. While the counter is below the duration it renders the
// frame at the counter, flushes and returns Wait. Once the counter reaches
// the duration it copies the destination into the accumulation buffer
// over the dirty region, flushes, clears the dirty region and returns
// Continue with the engine Idle.
func (e *Engine) Step(in Input) (Result, error) {
	if e.state == Idle {
		return Continue, ErrNotArmed
	}
	if e.state == Armed {
		e.start(in)
	}

	now := e.clock.Ticks()
	elapsed := int(max(now-e.last, 0))
	e.last = now
	if q, ok := e.effect.(sineQuake); ok {
		elapsed = q.resolution(elapsed, e.duration)
	}

	duration := e.duration
	if in.FastForward || isInstant(e.effect) {
		duration = 1
		e.counter = 1
	} else {
		e.counter += elapsed
	}

	if e.counter >= duration {
		e.counter = duration
		return Continue, e.commit()
	}
	e.effect.render(e, e.counter, duration)
	return Wait, e.flush()
}

func isInstant(v variant) bool {
	_, ok := v.(instant)
	return ok
}

// start resolves the effect on the first step and reports substitutions.
func (e *Engine) start(in Input) {
	req := e.req
	if e.opts.cut && in.Skip {
		req.Effect = EffectCut
	}
	e.effect = resolve(&req, e.mask)
	if f, ok := e.effect.(fallback); ok {
		Logger().Warn("transit: " + f.reason())
	}
	e.state = Running
}

func (e *Engine) commit() error {
	b := e.bufs
	r := e.dirty.Bounds()
	b.Accumulation.CopyRect(b.Destination, r, r.X, r.Y)
	err := e.flush()
	e.dirty.Clear()
	e.state = Idle
	e.effect = nil
	e.mask = nil
	Logger().Debug("transit: committed", "effect", e.req.Effect, "counter", e.counter)
	return err
}

func (e *Engine) flush() error {
	if e.opts.presenter == nil {
		return nil
	}
	if err := e.opts.presenter.Flush(e.bufs.Accumulation, e.dirty.Bounds()); err != nil {
		return fmt.Errorf("transit: flush: %w", err)
	}
	return nil
}

// blit copies the src rectangle whose top-left is (sx, sy) onto r of the
// accumulation buffer, clipped to the dirty region.
func (e *Engine) blit(src *ImageBuf, sx, sy int, r Rect) {
	ClipBlit(e.bufs.Accumulation, src, sx, sy, r, e.dirty.Bounds())
}

// crossFade blends source toward destination over the dirty region.
func (e *Engine) crossFade(level uint32) {
	b := e.bufs
	e.level = level
	kernel.MaskBlendConstRect(e.k, b.Accumulation, b.Source, b.Destination, e.dirty.Bounds(), level)
}

// fillBlack paints the dirty region of the accumulation buffer opaque
// black.
func (e *Engine) fillBlack() {
	e.bufs.Accumulation.FillRect(e.dirty.Bounds(), image.Opaque)
}

// ClipBlit copies src onto the r rectangle of dst, reading from (sx, sy).
// r is first intersected with clip; the source origin moves by the same
// amount and the copy shrinks to the clipped size. It reports whether any
// pixel was copied.
func ClipBlit(dst, src *ImageBuf, sx, sy int, r, clip Rect) bool {
	c := r.Intersect(clip)
	if c.Empty() {
		return false
	}
	sx += c.X - r.X
	sy += c.Y - r.Y
	sr, _, _ := image.ClipCopy(dst.Bounds(), src.Bounds(), Rect{X: sx, Y: sy, Width: c.Width, Height: c.Height}, c.X, c.Y)
	if sr.Empty() {
		return false
	}
	dst.CopyRect(src, Rect{X: sx, Y: sy, Width: c.Width, Height: c.Height}, c.X, c.Y)
	return true
}
