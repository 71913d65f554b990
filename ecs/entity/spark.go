package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
)

type SparkParams struct {
	Position    cp.Vector
	Velocity    cp.Vector
	Color       color.RGBA
	Radius      float64
	Life        int
	Flicker     bool
	TrailLength int
	Layer       int
}

// NewSpark creates one burst particle.
func NewSpark(w *ecs.World, p SparkParams) (ecs.Entity, error) {
	spark := ecs.CreateEntity(w)

	if err := ecs.Add(w, spark, component.ParticleComponent.Kind(), &component.Particle{
		Life:    p.Life,
		Flicker: p.Flicker,
	}); err != nil {
		return abandon(w, spark, fmt.Errorf("spark: add particle: %w", err))
	}

	if err := addBody(w, spark, p.Position, p.Velocity, p.TrailLength); err != nil {
		return abandon(w, spark, fmt.Errorf("spark: %w", err))
	}

	if err := addLook(w, spark, p.Color, p.Radius, p.Layer); err != nil {
		return abandon(w, spark, fmt.Errorf("spark: %w", err))
	}

	return spark, nil
}
