package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
	"go.uber.org/zap"
)

// ProjectileSystem flies rockets and detonates them. Gravity is applied at a
// damped scale of the solver constant, so the flown arc drifts from the
// solved one; the distance check is what lands rockets on the pointer.
type ProjectileSystem struct {
	env *Env
	log *zap.SugaredLogger
}

func NewProjectileSystem(env *Env, log *zap.SugaredLogger) *ProjectileSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ProjectileSystem{env: env, log: log}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	t := s.env.Tuning
	gravity := t.Gravity * t.Projectile.GravityScale

	ecs.ForEach4(w,
		component.ProjectileComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TrailComponent.Kind(),
		func(e ecs.Entity, p *component.Projectile, pos *component.Transform, vel *component.Velocity, trail *component.Trail) {
			if p.Exploded() {
				return
			}

			trail.Push(pos.Vec())
			pos.X += vel.VX
			pos.Y += vel.VY
			vel.VY += gravity
			p.Age++

			target := cp.Vector{X: p.TargetX, Y: p.TargetY}
			if p.Age < p.Frames && pos.Vec().Distance(target) >= t.Projectile.DetonationDistance {
				return
			}

			p.State = component.ProjectileExploded
			sparks, comets := SpawnBurst(w, s.env, pos.Vec())
			w.Events().Push(ecs.Event{Type: ecs.EventDetonated, Data: ecs.Detonation{
				Entity:    e,
				X:         pos.X,
				Y:         pos.Y,
				Particles: sparks,
				Comets:    comets,
			}})
			s.log.Debugw("detonated", "entity", e, "age", p.Age, "frames", p.Frames,
				"miss", pos.Vec().Distance(target), "sparks", sparks, "comets", comets)
		})
}
