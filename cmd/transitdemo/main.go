// Command transitdemo plays a transition between two images and writes
// the frames as PNG files or as a compressed recording.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	transit "github.com/gogpu/gg-transit"
	"github.com/gogpu/gg-transit/anim"
	"github.com/gogpu/gg-transit/internal/asset"
	"github.com/gogpu/gg-transit/internal/config"
	"github.com/gogpu/gg-transit/internal/kernel"
	"github.com/gogpu/gg-transit/internal/present"
	"github.com/gogpu/gg-transit/tag"
)

// stepClock advances by a fixed tick on every Step so that runs are
// reproducible regardless of machine speed.
type stepClock struct {
	t, tick int64
}

func (c *stepClock) Ticks() int64 {
	c.t += c.tick
	return c.t - c.tick
}

func main() {
	var (
		cfgPath  = flag.String("config", "transit.ini", "configuration file")
		assets   = flag.String("assets", ".", "asset directory")
		from     = flag.String("from", "", "image shown before the transition (default black)")
		to       = flag.String("to", "", "image shown after the transition")
		effect   = flag.String("effect", "crossfade", "effect name or number")
		duration = flag.Int("duration", 500, "duration in ticks")
		tick     = flag.Int("tick", 16, "ticks per frame")
		no       = flag.Int("no", 1, "quake intensity")
		mask     = flag.String("mask", "", "mask image for mask effects")
		ext      = flag.String("ext", "", "extension effect name")
		params   = flag.String("params", "", "extension effect parameters")
		sprite   = flag.String("sprite", "", "sprite descriptor drawn over the target, e.g. \":a/3,100,0;anim.png\"")
		animate  = flag.Int("animate", 0, "ticks of sprite animation after the transition")
		outDir   = flag.String("out", "", "directory for PNG frames")
		record   = flag.String("record", "", "write a zstd recording to this file")
		backend  = flag.String("backend", "", "kernel backend: auto, reference, swar or wide")
	)
	flag.Parse()

	if err := run(options{
		cfgPath: *cfgPath, assets: *assets, from: *from, to: *to,
		effect: *effect, duration: *duration, tick: *tick, no: *no,
		mask: *mask, ext: *ext, params: *params, sprite: *sprite,
		animate: *animate, outDir: *outDir, record: *record, backend: *backend,
	}); err != nil {
		log.Fatalf("transitdemo: %v", err)
	}
}

type options struct {
	cfgPath, assets, from, to string
	effect                    string
	duration, tick, no        int
	mask, ext, params, sprite string
	animate                   int
	outDir, record, backend   string
}

func run(o options) error {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	transit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if o.backend != "" {
		cfg.Kernel.Backend = o.backend
	}
	b, err := cfg.Backend()
	if err != nil {
		return err
	}
	k := kernel.Select(kernel.Probe(), b)

	eff, err := transit.ParseEffect(o.effect)
	if err != nil {
		return err
	}

	w, h := cfg.Screen.Width, cfg.Screen.Height
	loader := asset.NewLoader(os.DirFS(o.assets),
		asset.WithKernels(k),
		asset.WithScreenRatio(cfg.Screen.RatioNum, cfg.Screen.RatioDen),
		asset.WithCanvasSize(w, h),
	)

	presenter, closeFn, err := newPresenter(o, w, h)
	if err != nil {
		return err
	}
	defer closeFn()

	var target *transit.ImageBuf
	if o.to != "" {
		if target, err = loader.LoadImage(o.to); err != nil {
			return err
		}
	}

	sched := anim.NewScheduler(nil)
	if o.sprite != "" {
		if err := addSprite(sched, loader, o.sprite, w, h); err != nil {
			return err
		}
	}
	comp := transit.NewCompositor(k)
	scene := transit.NewSpriteScene(target, sched, comp)

	eng, err := transit.NewEngine(w, h,
		transit.WithKernels(k),
		transit.WithClock(&stepClock{tick: int64(max(o.tick, 1))}),
		transit.WithPresenter(presenter),
		transit.WithScene(scene),
		transit.WithMaskLoader(loader),
		transit.WithScreenRatio(cfg.Screen.RatioNum, cfg.Screen.RatioDen),
		transit.WithEffectCut(cfg.Effect.EffectCut),
		transit.WithGeometry(transit.Geometry{
			StripeWidth:    cfg.Effect.StripeWidth,
			CurtainWidth:   cfg.Effect.CurtainWidth,
			QuakeAmplitude: cfg.Effect.QuakeAmplitude,
		}),
	)
	if err != nil {
		return err
	}
	defer eng.Close()

	if o.from != "" {
		img, err := loader.LoadImage(o.from)
		if err != nil {
			return err
		}
		acc := eng.Buffers().Accumulation
		acc.CopyRect(img, img.Bounds(), 0, 0)
	}
	eng.Dirty().Fill()

	req := transit.Request{
		Effect:    eff,
		Duration:  o.duration,
		No:        o.no,
		MaskPath:  o.mask,
		Extension: transit.Extension{Name: o.ext, Params: o.params},
	}
	if _, err := eng.Arm(req, transit.ArmOptions{GenerateDestination: true, UpdateBackup: true}); err != nil {
		return err
	}
	frames := 0
	for {
		res, err := eng.Step(transit.Input{})
		frames++
		if err != nil {
			return err
		}
		if res == transit.Continue {
			break
		}
	}
	log.Printf("%s: %d frames over %d ticks", eff, frames, o.duration)

	return animateSprites(eng, sched, o.animate)
}

// animateSprites runs the idle loop: sleep until the next cel change,
// charge the elapsed ticks and redraw what changed.
func animateSprites(eng *transit.Engine, sched *anim.Scheduler, ticks int) error {
	var redrawErr error
	sched.SetRedraw(func(_ *anim.Sprite, r transit.Rect) {
		if err := eng.Redraw(r); err != nil && redrawErr == nil {
			redrawErr = err
		}
	})
	for elapsed := 0; elapsed < ticks; {
		wait := sched.AdvanceAll()
		if redrawErr != nil {
			return redrawErr
		}
		if wait == 0 {
			break
		}
		sched.ChargeElapsed(wait)
		elapsed += wait
	}
	return redrawErr
}

// addSprite places the sprite described by desc in the middle of the
// screen. A malformed descriptor is logged and leaves the slot as it was.
func addSprite(sched *anim.Scheduler, loader *asset.Loader, desc string, w, h int) error {
	d, err := tag.Parse(desc)
	if err != nil {
		transit.Logger().Warn("transitdemo: sprite descriptor ignored", "descriptor", desc, "err", err)
		return nil
	}
	strip, err := loader.Build(d)
	if err != nil {
		return err
	}
	sp, err := sched.Assign(anim.LayerSprite, 0, strip, d.Cels, d.Durations, d.Loop)
	if err != nil {
		return err
	}
	cw, ch := sp.CelSize()
	sp.X, sp.Y = (w-cw)/2, (h-ch)/2
	return nil
}

func newPresenter(o options, w, h int) (transit.Presenter, func(), error) {
	switch {
	case o.record != "":
		f, err := os.Create(o.record)
		if err != nil {
			return nil, nil, err
		}
		rec := present.NewRecorder(f, w, h)
		return rec, func() {
			closeAll(rec, f)
			log.Printf("recorded %d frames to %s", rec.Frames(), o.record)
		}, nil
	case o.outDir != "":
		seq := &present.PNGSequence{Dir: filepath.Clean(o.outDir), Prefix: "frame"}
		return seq, func() { log.Printf("wrote %d frames to %s", seq.Frames(), o.outDir) }, nil
	default:
		d := &present.Discard{}
		return d, func() { fmt.Fprintf(os.Stderr, "%d flushes\n", d.Flushes) }, nil
	}
}

func closeAll(cs ...io.Closer) {
	for _, c := range cs {
		if err := c.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}
}
