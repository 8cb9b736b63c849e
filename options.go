package transit

import (
	"math/rand"
	"time"

	"github.com/gogpu/gg-transit/internal/kernel"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Defaults: process-wide kernel table, wall clock, no presenter.
//	eng, _ := transit.NewEngine(640, 480)
//
//	// Deterministic engine for tests.
//	eng, _ := transit.NewEngine(640, 480,
//	    transit.WithClock(clock),
//	    transit.WithRand(rand.New(rand.NewSource(1))),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	kernels   kernel.Kernels
	clock     Clock
	presenter Presenter
	scene     Scene
	masks     MaskLoader
	rnd       *rand.Rand
	num, den  int
	cut       bool
	geometry  Geometry
}

// Geometry holds the base sizes of the geometric effects before screen
// ratio scaling.
type Geometry struct {
	// StripeWidth is the cell size of shutters and the cascade extension.
	StripeWidth int
	// CurtainWidth is the cell size of curtains.
	CurtainWidth int
	// QuakeAmplitude is the peak offset of the sinusoidal quakes.
	QuakeAmplitude int
}

// DefaultGeometry returns the classic 16/24/12 pixel geometry.
func DefaultGeometry() Geometry {
	return Geometry{StripeWidth: 16, CurtainWidth: 24, QuakeAmplitude: 12}
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		num:      1,
		den:      1,
		geometry: DefaultGeometry(),
	}
}

// WithKernels replaces the process-wide kernel table. Every backend yields
// identical pixels, so this only matters for benchmarks and tests.
func WithKernels(k kernel.Kernels) Option {
	return func(o *engineOptions) {
		o.kernels = k
	}
}

// WithClock sets the tick source. The default counts milliseconds of wall
// time since the engine was created.
func WithClock(c Clock) Option {
	return func(o *engineOptions) {
		o.clock = c
	}
}

// WithPresenter sets the collaborator that receives every flushed frame.
func WithPresenter(p Presenter) Option {
	return func(o *engineOptions) {
		o.presenter = p
	}
}

// WithScene sets the renderer used to draw destination and backup frames
// when Arm is asked to generate them.
func WithScene(s Scene) Option {
	return func(o *engineOptions) {
		o.scene = s
	}
}

// WithMaskLoader sets the loader used for Request.MaskPath.
func WithMaskLoader(l MaskLoader) Option {
	return func(o *engineOptions) {
		o.masks = l
	}
}

// WithScreenRatio scales effect geometry by num/den. Non-positive values
// are ignored.
func WithScreenRatio(num, den int) Option {
	return func(o *engineOptions) {
		if num > 0 && den > 0 {
			o.num, o.den = num, den
		}
	}
}

// WithRand sets the random source of the random quake.
func WithRand(r *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rnd = r
	}
}

// WithEffectCut makes every transition instant while the input is in skip
// mode.
func WithEffectCut(on bool) Option {
	return func(o *engineOptions) {
		o.cut = on
	}
}

// WithGeometry overrides the base effect geometry. Zero fields keep their
// defaults.
func WithGeometry(g Geometry) Option {
	return func(o *engineOptions) {
		if g.StripeWidth > 0 {
			o.geometry.StripeWidth = g.StripeWidth
		}
		if g.CurtainWidth > 0 {
			o.geometry.CurtainWidth = g.CurtainWidth
		}
		if g.QuakeAmplitude > 0 {
			o.geometry.QuakeAmplitude = g.QuakeAmplitude
		}
	}
}

// wallClock counts milliseconds since its creation.
type wallClock struct{ start time.Time }

func (c wallClock) Ticks() int64 { return time.Since(c.start).Milliseconds() }
