// Package sim is the fireworks simulation driver. It owns the entity world
// and runs the systems once per frame.
package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/ballistic"
	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
	"github.com/milk9111/fireworks/ecs/entity"
	"github.com/milk9111/fireworks/ecs/render"
	"github.com/milk9111/fireworks/ecs/system"
	"github.com/milk9111/fireworks/prefabs"
	"go.uber.org/zap"
)

// Stats are running totals since the simulation was created.
type Stats struct {
	Frames      uint64
	Launched    int
	Detonations int
	Sparks      int
	Comets      int
}

type Simulation struct {
	world     *ecs.World
	env       *system.Env
	scheduler *ecs.Scheduler
	log       *zap.SugaredLogger

	stats       Stats
	detonations []ecs.Detonation
}

// New builds a simulation for a surface of the given size. A nil logger
// discards output.
func New(t *prefabs.Tuning, rng *common.Rand, width, height float64, log *zap.SugaredLogger) *Simulation {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	env := system.NewEnv(t, rng, width, height)

	scheduler := ecs.NewScheduler(
		system.NewStarfieldSystem(env),
		system.NewProjectileSystem(env, log),
		system.NewParticleSystem(env),
		system.NewCleanupSystem(),
	)
	scheduler.AddDrawer(system.NewRenderSystem(env))

	return &Simulation{
		world:     ecs.NewWorld(),
		env:       env,
		scheduler: scheduler,
		log:       log,
	}
}

// SpawnProjectile launches a rocket from near the bottom edge towards
// (x, y). Non-finite coordinates are ignored and reported as false.
func (s *Simulation) SpawnProjectile(x, y float64) bool {
	if !common.Finite(x, y) {
		s.log.Debugw("ignored launch", "x", x, "y", y)
		return false
	}

	t := s.env.Tuning
	rng := s.env.Rand
	target := cp.Vector{X: x, Y: y}
	start := cp.Vector{
		X: common.Clamp(x+rng.Range(-t.Projectile.LaunchJitter, t.Projectile.LaunchJitter), 0, s.env.Width),
		Y: s.env.Height - t.Projectile.LaunchInset,
	}

	sol, err := ballistic.Solve(start, target, ballistic.ParamsFromTuning(t), rng)
	if err != nil {
		s.log.Debugw("ignored launch", "x", x, "y", y, "error", err)
		return false
	}

	if _, err := entity.NewProjectile(s.world, entity.ProjectileParams{
		Start:       start,
		Target:      target,
		Solution:    sol,
		Color:       s.env.PaletteColor(),
		Radius:      t.Projectile.Radius,
		TrailLength: t.Projectile.TrailLength,
	}); err != nil {
		s.log.Warnw("launch failed", "error", err)
		return false
	}

	s.stats.Launched++
	return true
}

// Advance runs one frame: rockets fly and detonate, particles decay, then
// retired entities are removed.
func (s *Simulation) Advance() {
	s.scheduler.Update(s.world)
	s.stats.Frames++

	s.detonations = s.detonations[:0]
	for _, evt := range s.world.Events().Drain() {
		if evt.Type != ecs.EventDetonated {
			continue
		}
		d, ok := evt.Data.(ecs.Detonation)
		if !ok {
			continue
		}
		s.detonations = append(s.detonations, d)
		s.stats.Detonations++
		s.stats.Sparks += d.Particles
		s.stats.Comets += d.Comets
	}
}

// Draw renders the current frame without advancing it.
func (s *Simulation) Draw(canvas render.Canvas) {
	s.scheduler.Draw(s.world, canvas)
}

func (s *Simulation) AdvanceAndRender(canvas render.Canvas) {
	s.Advance()
	s.Draw(canvas)
}

// Detonations lists the bursts of the last Advance call. The slice is
// reused by the next call.
func (s *Simulation) Detonations() []ecs.Detonation {
	return s.detonations
}

func (s *Simulation) Projectiles() int {
	return ecs.Count(s.world, component.ProjectileComponent.Kind())
}

func (s *Simulation) Particles() int {
	return ecs.Count(s.world, component.ParticleComponent.Kind())
}

func (s *Simulation) Stats() Stats {
	return s.stats
}

// Clear drops every rocket and particle.
func (s *Simulation) Clear() {
	s.world.Reset()
	s.detonations = s.detonations[:0]
}

// SetBounds updates the surface size used for launch points and the sky.
func (s *Simulation) SetBounds(width, height float64) {
	s.env.Width = width
	s.env.Height = height
}

func (s *Simulation) Bounds() (float64, float64) {
	return s.env.Width, s.env.Height
}

// SetTuning swaps the constant set for subsequent frames.
func (s *Simulation) SetTuning(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	s.env.SetTuning(t)
}

// World exposes the entity world for inspection.
func (s *Simulation) World() *ecs.World {
	return s.world
}
