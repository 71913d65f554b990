package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/ecs/render"
	"github.com/milk9111/fireworks/ecs/system"
	"github.com/milk9111/fireworks/prefabs"
	"github.com/milk9111/fireworks/show"
	"github.com/milk9111/fireworks/sim"
	"go.uber.org/zap"
)

type GameOptions struct {
	Debug bool
	Seed  uint64
	Show  string
	Log   *zap.SugaredLogger
}

type Game struct {
	debug bool
	log   *zap.SugaredLogger

	sim      *sim.Simulation
	input    *system.InputSystem
	show     *show.Runner
	showName string
	watcher  *prefabs.Watcher

	autoplay bool
	paused   bool
	pauseUI  *ebitenui.UI
}

func NewGame(opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    opts.Debug,
		log:      log,
		sim:      sim.New(tuning, common.NewRand(opts.Seed), common.BaseWidth, common.BaseHeight, log),
		input:    system.NewInputSystem(),
		showName: opts.Show,
	}

	if g.showName != "" {
		runner, err := show.Load(g.showName, g.sim, log)
		if err != nil {
			return nil, err
		}
		g.show = runner
		g.autoplay = true
	}

	if g.debug {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Warnw("hot reload disabled", "error", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	intent := g.input.Poll()

	if intent.TogglePause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if intent.Clear {
		g.clear()
	}
	if intent.ToggleAutoplay {
		g.toggleAutoplay()
	}

	g.drainReloads()

	for _, target := range intent.Targets {
		g.sim.SpawnProjectile(target.X, target.Y)
	}

	if g.autoplay && g.show.Running() {
		w, h := g.sim.Bounds()
		if err := g.show.Step(w, h); err != nil && !g.show.Running() {
			g.autoplay = false
		}
	}

	g.sim.Advance()

	for _, d := range g.sim.Detonations() {
		g.log.Debugw("detonated", "x", d.X, "y", d.Y, "sparks", d.Particles, "comets", d.Comets)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Draw(render.NewImageCanvas(screen))

	if g.debug {
		st := g.sim.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  rockets: %d  sparks: %d  launched: %d  bursts: %d  autoplay: %v",
			ebiten.ActualFPS(), g.sim.Projectiles(), g.sim.Particles(), st.Launched, st.Detonations, g.autoplay,
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// LayoutF follows the window so the sky always fills it.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	if w, h := g.sim.Bounds(); w != outsideWidth || h != outsideHeight {
		g.sim.SetBounds(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) clear() {
	g.sim.Clear()
	if g.show != nil {
		g.show.Rewind()
	}
}

// toggleAutoplay falls back to the embedded show when none was requested.
func (g *Game) toggleAutoplay() {
	if g.show == nil {
		if g.showName == "" {
			g.showName = "show"
		}
		runner, err := show.Load(g.showName, g.sim, g.log)
		if err != nil {
			g.log.Errorw("autoplay unavailable", "script", g.showName, "error", err)
			return
		}
		g.show = runner
	}
	g.autoplay = !g.autoplay && g.show.Running()
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err := <-g.watcher.Errors:
			if err != nil {
				g.log.Warnw("watch error", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case strings.HasSuffix(name, ".tengo"):
		if g.show == nil || scriptBase(name) != scriptBase(g.show.Name()) {
			return
		}
		runner, err := show.Load(g.show.Name(), g.sim, g.log)
		if err != nil {
			g.log.Errorw("show reload failed", "script", name, "error", err)
			return
		}
		g.show = runner
		g.log.Infow("show reloaded", "script", name)
	case name == "tuning.yaml":
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			g.log.Errorw("tuning reload failed, keeping previous", "error", err)
			return
		}
		g.sim.SetTuning(tuning)
		g.log.Infow("tuning reloaded")
	}
}

func scriptBase(name string) string {
	return strings.TrimSuffix(path.Base(name), ".tengo")
}
