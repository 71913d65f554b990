package system

import (
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
)

// CleanupSystem destroys exploded rockets and dead particles. It runs after
// the update systems so a rocket is only removed once its burst exists.
type CleanupSystem struct {
	Removed int
}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.Removed = 0

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if p.Exploded() && ecs.DestroyEntity(w, e) {
			s.Removed++
		}
	})

	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, p *component.Particle) {
		if p.Dead() && ecs.DestroyEntity(w, e) {
			s.Removed++
		}
	})
}
