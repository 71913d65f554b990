// simbench runs the fireworks simulation headless and reports entity counts
// and frame timings. Rendering goes to a counting canvas.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/ecs/render"
	"github.com/milk9111/fireworks/prefabs"
	"github.com/milk9111/fireworks/show"
	"github.com/milk9111/fireworks/sim"
	"go.uber.org/zap"
)

type options struct {
	frames int
	every  int
	seed   uint64
	show   string
	width  int
	height int
}

type report struct {
	stats     sim.Stats
	peakLive  int
	peakFrame uint64
	lastLive  int
	circles   int
	lines     int
	elapsed   time.Duration
}

func main() {
	var opts options
	flag.IntVar(&opts.frames, "frames", 1200, "frames to simulate")
	flag.IntVar(&opts.every, "every", 20, "launch a rocket every N frames (0 disables)")
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flag.StringVar(&opts.show, "show", "", "drive launches from a show script instead of -every")
	flag.IntVar(&opts.width, "w", common.BaseWidth, "surface width")
	flag.IntVar(&opts.height, "h", common.BaseHeight, "surface height")
	debug := flag.Bool("debug", false, "log every detonation")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	rep, err := run(opts, logger)
	if err != nil {
		logger.Fatalw("simbench failed", "error", err)
	}

	perFrame := time.Duration(0)
	if opts.frames > 0 {
		perFrame = rep.elapsed / time.Duration(opts.frames)
	}
	logger.Infow("done",
		"frames", rep.stats.Frames,
		"launched", rep.stats.Launched,
		"detonations", rep.stats.Detonations,
		"sparks", rep.stats.Sparks,
		"comets", rep.stats.Comets,
		"peak_live", rep.peakLive,
		"peak_frame", rep.peakFrame,
		"live_at_end", rep.lastLive,
		"circles", rep.circles,
		"lines", rep.lines,
		"per_frame", perFrame.String(),
	)
	fmt.Printf("%d frames in %s (%s/frame), peak %d live entities\n", rep.stats.Frames, rep.elapsed, perFrame, rep.peakLive)
}

func run(opts options, log *zap.SugaredLogger) (report, error) {
	var rep report
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return rep, err
	}

	w, h := float64(opts.width), float64(opts.height)
	rng := common.NewRand(opts.seed)
	s := sim.New(tuning, rng, w, h, log)
	canvas := render.NewRecorder(opts.width, opts.height)

	var runner *show.Runner
	if opts.show != "" {
		runner, err = show.Load(opts.show, s, log)
		if err != nil {
			return rep, err
		}
	}

	start := time.Now()
	for f := 0; f < opts.frames; f++ {
		switch {
		case runner != nil:
			if err := runner.Step(w, h); err != nil {
				return rep, err
			}
		case opts.every > 0 && f%opts.every == 0:
			s.SpawnProjectile(w*rng.Range(0.1, 0.9), h*rng.Range(0.1, 0.5))
		}

		s.AdvanceAndRender(canvas)

		for _, d := range s.Detonations() {
			log.Debugw("detonated", "frame", f, "x", d.X, "y", d.Y, "sparks", d.Particles, "comets", d.Comets)
		}

		live := s.Projectiles() + s.Particles()
		if live > rep.peakLive {
			rep.peakLive = live
			rep.peakFrame = s.Stats().Frames
		}
		rep.circles += canvas.Circles
		rep.lines += canvas.Lines
		canvas.Reset()
	}
	rep.elapsed = time.Since(start)
	rep.stats = s.Stats()
	rep.lastLive = s.Projectiles() + s.Particles()
	return rep, nil
}
