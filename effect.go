package transit

import (
	"fmt"
	"strconv"
	"strings"
)

// Effect identifies a transition algorithm of the catalog.
type Effect int

// Catalog identifiers. Values 0 through 18 match the classic numbering of
// script-driven visual novel engines.
const (
	EffectInstant         Effect = 0
	EffectCut             Effect = 1
	EffectShutterLeft     Effect = 2
	EffectShutterRight    Effect = 3
	EffectShutterTop      Effect = 4
	EffectShutterBottom   Effect = 5
	EffectCurtainLeft     Effect = 6
	EffectCurtainRight    Effect = 7
	EffectCurtainTop      Effect = 8
	EffectCurtainBottom   Effect = 9
	EffectCrossFade       Effect = 10
	EffectScrollLeft      Effect = 11
	EffectScrollRight     Effect = 12
	EffectScrollTop       Effect = 13
	EffectScrollBottom    Effect = 14
	EffectMaskFade        Effect = 15
	EffectMosaicOut       Effect = 16
	EffectMosaicIn        Effect = 17
	EffectMaskCrossFade   Effect = 18
	EffectExtension       Effect = 99
	EffectQuakeVertical   Effect = 100
	EffectQuakeHorizontal Effect = 101
	EffectQuake           Effect = 102
)

var effectNames = map[Effect]string{
	EffectInstant:         "instant",
	EffectCut:             "cut",
	EffectShutterLeft:     "shutter-left",
	EffectShutterRight:    "shutter-right",
	EffectShutterTop:      "shutter-top",
	EffectShutterBottom:   "shutter-bottom",
	EffectCurtainLeft:     "curtain-left",
	EffectCurtainRight:    "curtain-right",
	EffectCurtainTop:      "curtain-top",
	EffectCurtainBottom:   "curtain-bottom",
	EffectCrossFade:       "crossfade",
	EffectScrollLeft:      "scroll-left",
	EffectScrollRight:     "scroll-right",
	EffectScrollTop:       "scroll-top",
	EffectScrollBottom:    "scroll-bottom",
	EffectMaskFade:        "mask-fade",
	EffectMosaicOut:       "mosaic-out",
	EffectMosaicIn:        "mosaic-in",
	EffectMaskCrossFade:   "mask-crossfade",
	EffectExtension:       "extension",
	EffectQuakeVertical:   "quakey",
	EffectQuakeHorizontal: "quakex",
	EffectQuake:           "quake",
}

// String returns the catalog name of the effect, or "effect(N)" for ids
// outside the catalog.
func (e Effect) String() string {
	if s, ok := effectNames[e]; ok {
		return s
	}
	return "effect(" + strconv.Itoa(int(e)) + ")"
}

// Known reports whether e is part of the catalog.
func (e Effect) Known() bool {
	_, ok := effectNames[e]
	return ok
}

// Instant reports whether e completes on the first step.
func (e Effect) Instant() bool {
	return e == EffectInstant || e == EffectCut
}

// FullScreen reports whether the effect reads and writes pixels outside
// the dirty region, so that the whole screen must be recomposed.
func (e Effect) FullScreen() bool {
	switch e {
	case EffectScrollLeft, EffectScrollRight, EffectScrollTop, EffectScrollBottom,
		EffectMosaicOut, EffectMosaicIn, EffectExtension:
		return true
	}
	return false
}

// ParseEffect accepts a catalog name or a decimal id. Unknown numeric ids
// are returned as-is; they play as a cross-fade.
func ParseEffect(s string) (Effect, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("transit: negative effect id %d", n)
		}
		return Effect(n), nil
	}
	for e, name := range effectNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("transit: unknown effect %q", s)
}

// variant is one resolved algorithm of the catalog. render composites the
// frame at counter c of duration d (0 <= c < d) into the accumulation
// buffer.
type variant interface {
	render(e *Engine, c, d int)
}

// fallback is implemented by variants that stand in for an effect that
// could not be played as requested. reason is logged once.
type fallback interface {
	reason() string
}

// resolve maps a request onto its algorithm. Requests that cannot be
// played as asked resolve to a fallback variant that renders a cross-fade.
func resolve(req *Request, mask *ImageBuf) variant {
	switch req.Effect {
	case EffectInstant, EffectCut:
		return instant{}
	case EffectShutterLeft, EffectShutterRight, EffectShutterTop, EffectShutterBottom:
		return shutter{dir: direction(req.Effect - EffectShutterLeft)}
	case EffectCurtainLeft, EffectCurtainRight, EffectCurtainTop, EffectCurtainBottom:
		return curtain{dir: direction(req.Effect - EffectCurtainLeft)}
	case EffectCrossFade:
		return crossFade{}
	case EffectScrollLeft, EffectScrollRight, EffectScrollTop, EffectScrollBottom:
		return scroll{dir: direction(req.Effect - EffectScrollLeft)}
	case EffectMaskFade, EffectMaskCrossFade:
		rate := 1
		if req.Effect == EffectMaskCrossFade {
			rate = 2
		}
		if mask == nil {
			return missingMask{effect: req.Effect, path: req.MaskPath}
		}
		return maskFade{mask: mask, rate: rate}
	case EffectMosaicOut:
		return mosaic{in: false}
	case EffectMosaicIn:
		return mosaic{in: true}
	case EffectQuakeVertical:
		return sineQuake{vertical: true, no: quakeNo(req.No)}
	case EffectQuakeHorizontal:
		return sineQuake{vertical: false, no: quakeNo(req.No)}
	case EffectQuake:
		return randomQuake{no: quakeNo(req.No)}
	case EffectExtension:
		return resolveExtension(req.Extension)
	}
	return unknownEffect{effect: req.Effect}
}

// direction orders the four variants of the directional effects.
type direction int

const (
	dirLeft direction = iota
	dirRight
	dirTop
	dirBottom
)

func (d direction) horizontal() bool { return d == dirLeft || d == dirRight }

// instant draws nothing; the commit copies the destination.
type instant struct{}

func (instant) render(*Engine, int, int) {}

// crossFade blends source toward destination at a uniform level.
type crossFade struct{}

func (crossFade) render(e *Engine, c, d int) {
	e.crossFade(uint32(256 * c / d))
}

// unknownEffect is the named fallback for ids outside the catalog.
type unknownEffect struct {
	effect Effect
	crossFade
}

func (u unknownEffect) reason() string {
	return fmt.Sprintf("effect %d is not implemented, substituting crossfade", int(u.effect))
}

// missingMask is the named fallback for mask effects without a mask.
type missingMask struct {
	effect Effect
	path   string
	crossFade
}

func (m missingMask) reason() string {
	if m.path == "" {
		return fmt.Sprintf("%s has no mask, substituting crossfade", m.effect)
	}
	return fmt.Sprintf("%s mask %q unavailable, substituting crossfade", m.effect, m.path)
}
