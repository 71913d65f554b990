package system

import (
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
)

// ParticleSystem ages burst particles: trail, drag, gravity, move.
type ParticleSystem struct {
	env *Env
}

func NewParticleSystem(env *Env) *ParticleSystem {
	return &ParticleSystem{env: env}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	t := s.env.Tuning.Particle
	gravity := s.env.Tuning.Gravity * t.GravityScale

	ecs.ForEach4(w,
		component.ParticleComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TrailComponent.Kind(),
		func(_ ecs.Entity, p *component.Particle, pos *component.Transform, vel *component.Velocity, trail *component.Trail) {
			if p.Dead() {
				return
			}

			trail.Push(pos.Vec())
			vel.VX *= t.Drag
			vel.VY *= t.Drag
			vel.VY += gravity
			pos.X += vel.VX
			pos.Y += vel.VY
			p.Age++

			p.Dimmed = p.Flicker && s.env.Rand.Chance(t.FlickerDimChance)
		})
}
