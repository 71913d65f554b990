package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/ballistic"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
)

type ProjectileParams struct {
	Start       cp.Vector
	Target      cp.Vector
	Solution    ballistic.Solution
	Color       color.RGBA
	Radius      float64
	TrailLength int
}

// NewProjectile creates a flying rocket at Start aimed at Target.
func NewProjectile(w *ecs.World, p ProjectileParams) (ecs.Entity, error) {
	rocket := ecs.CreateEntity(w)

	if err := ecs.Add(w, rocket, component.ProjectileComponent.Kind(), &component.Projectile{
		StartX:  p.Start.X,
		StartY:  p.Start.Y,
		TargetX: p.Target.X,
		TargetY: p.Target.Y,
		Wobble:  p.Solution.Wobble,
		Frames:  p.Solution.Frames,
		State:   component.ProjectileFlying,
	}); err != nil {
		return abandon(w, rocket, fmt.Errorf("projectile: add projectile: %w", err))
	}

	if err := addBody(w, rocket, p.Start, p.Solution.Velocity, p.TrailLength); err != nil {
		return abandon(w, rocket, fmt.Errorf("projectile: %w", err))
	}

	if err := addLook(w, rocket, p.Color, p.Radius, component.LayerRockets); err != nil {
		return abandon(w, rocket, fmt.Errorf("projectile: %w", err))
	}

	return rocket, nil
}

func addBody(w *ecs.World, e ecs.Entity, pos, vel cp.Vector, trailLength int) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{VX: vel.X, VY: vel.Y}); err != nil {
		return fmt.Errorf("add velocity: %w", err)
	}
	trail := component.NewTrail(trailLength)
	if err := ecs.Add(w, e, component.TrailComponent.Kind(), &trail); err != nil {
		return fmt.Errorf("add trail: %w", err)
	}
	return nil
}

func addLook(w *ecs.World, e ecs.Entity, clr color.RGBA, radius float64, layer int) error {
	if err := ecs.Add(w, e, component.GlowComponent.Kind(), &component.Glow{Color: clr, Radius: radius}); err != nil {
		return fmt.Errorf("add glow: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

func abandon(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, err
}
