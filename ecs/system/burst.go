package system

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
	"github.com/milk9111/fireworks/ecs/entity"
	"github.com/milk9111/fireworks/prefabs"
)

// SpawnBurst adds a detonation at center: a dense main cloud in random
// palette colors plus a few fast white comets. It returns how many of each
// were created.
func SpawnBurst(w *ecs.World, env *Env, center cp.Vector) (int, int) {
	t := env.Tuning
	rng := env.Rand

	main := t.Burst.Main
	sparks := 0
	for n := rng.IntRange(main.CountMin, main.CountMax); n > 0; n-- {
		speed := rng.Range(main.SpeedMin, main.SpeedMax)
		if rng.Chance(main.BoostChance) {
			speed *= rng.Range(main.BoostMin, main.BoostMax)
		}
		vel := radial(env, speed)
		vel.X += rng.Range(-main.Jitter, main.Jitter)
		vel.Y += rng.Range(-main.Jitter, main.Jitter)

		if spawnSpark(w, env, &main, center, vel, env.PaletteColor(), rng.Chance(main.FlickerChance), component.LayerSparks) {
			sparks++
		}
	}

	comets := t.Burst.Comets
	streaks := 0
	for n := rng.IntRange(comets.CountMin, comets.CountMax); n > 0; n-- {
		vel := radial(env, rng.Range(comets.SpeedMin, comets.SpeedMax))
		if spawnSpark(w, env, &comets, center, vel, t.CometColor.RGBA, false, component.LayerComets) {
			streaks++
		}
	}

	return sparks, streaks
}

func radial(env *Env, speed float64) cp.Vector {
	angle := env.Rand.Range(0, 2*math.Pi)
	return cp.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

func spawnSpark(w *ecs.World, env *Env, pop *prefabs.PopulationSpec, at, vel cp.Vector, clr color.RGBA, flicker bool, layer int) bool {
	_, err := entity.NewSpark(w, entity.SparkParams{
		Position:    at,
		Velocity:    vel,
		Color:       clr,
		Radius:      env.Rand.Range(pop.RadiusMin, pop.RadiusMax),
		Life:        env.Rand.IntRange(pop.LifeMin, pop.LifeMax),
		Flicker:     flicker,
		TrailLength: env.Tuning.Particle.TrailLength,
		Layer:       layer,
	})
	return err == nil
}
