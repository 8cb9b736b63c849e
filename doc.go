// Package transit is a frame-pair transition engine for 2D sprite
// compositing renderers.
//
// # Overview
//
// The Engine keeps three screen-sized surfaces: the source (what was on
// screen when the transition was armed), the destination (the target
// frame) and the accumulation buffer (what is presented). Each Step
// advances an effect counter by the ticks elapsed since the previous step
// and composites source and destination into the accumulation buffer with
// one algorithm from a fixed catalog: shutters, curtains, scrolls,
// cross-fades, masked fades, mosaics, quakes and a few named extensions.
//
// # Quick Start
//
//	eng, err := transit.NewEngine(640, 480)
//	if err != nil { ... }
//	// draw the current screen into eng.Buffers().Accumulation
//	// draw the next screen into eng.Buffers().Destination
//	eng.Dirty().Fill()
//	_ = eng.Arm(transit.Request{Effect: transit.EffectCrossFade, Duration: 500}, transit.ArmOptions{})
//	for {
//	    res, err := eng.Step(transit.Input{})
//	    if err != nil || res == transit.Continue {
//	        break
//	    }
//	    time.Sleep(time.Millisecond)
//	}
//
// # Compositing
//
// Pixel work goes through a kernel table selected once per process from
// the CPU's capabilities (see WithKernels to override it). Every backend
// produces the same bytes as the scalar reference.
//
// # Animation
//
// Sprite cel animation lives in the anim sub-package. SpriteScene and
// Compositor connect an anim.Scheduler to the engine so that destination
// frames and sprite redraws share the same drawing code.
//
// # Logging
//
// The package is silent by default; see SetLogger.
package transit
