package system

import (
	"image/color"
	"sort"

	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
	"github.com/milk9111/fireworks/ecs/render"
)

const (
	trailAlpha = 0.55
	// cullMargin keeps heads just off the surface drawn so their trails
	// do not pop out.
	cullMargin = 96
)

type RenderSystem struct {
	env *Env

	entities []ecs.Entity
}

func NewRenderSystem(env *Env) *RenderSystem {
	return &RenderSystem{env: env}
}

// Draw renders every glowing entity, lowest layer first. Each one is a
// fading polyline through its trail ending in a filled head.
func (r *RenderSystem) Draw(w *ecs.World, canvas render.Canvas) {
	if r == nil || w == nil || canvas == nil {
		return
	}

	r.entities = r.entities[:0]
	ecs.ForEach(w, component.GlowComponent.Kind(), func(e ecs.Entity, _ *component.Glow) {
		r.entities = append(r.entities, e)
	})

	sort.SliceStable(r.entities, func(i, j int) bool {
		li := layerOf(w, r.entities[i])
		lj := layerOf(w, r.entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(r.entities[i]) < uint64(r.entities[j])
	})

	cw, ch := canvas.Size()
	dim := r.env.Tuning.Particle.FlickerDimFactor
	for _, e := range r.entities {
		pos, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || offscreen(pos, cw, ch) {
			continue
		}
		glow, _ := ecs.Get(w, e, component.GlowComponent.Kind())

		alpha := 1.0
		if p, ok := ecs.Get(w, e, component.ParticleComponent.Kind()); ok {
			alpha = p.Alpha(dim)
		}
		if alpha <= 0 {
			continue
		}

		if trail, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok && trail.Len() > 0 {
			drawTrail(canvas, trail, pos, glow, alpha)
		}
		canvas.FillCircle(float32(pos.X), float32(pos.Y), float32(glow.Radius), fade(glow.Color, alpha))
	}
}

func drawTrail(canvas render.Canvas, trail *component.Trail, head *component.Transform, glow *component.Glow, alpha float64) {
	n := trail.Len()
	width := float32(glow.Radius)
	if width < 1 {
		width = 1
	}
	for i := 0; i < n; i++ {
		from := trail.At(i)
		to := head.Vec()
		if i+1 < n {
			to = trail.At(i + 1)
		}
		segAlpha := alpha * trailAlpha * float64(i+1) / float64(n)
		canvas.StrokeLine(float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, fade(glow.Color, segAlpha))
	}
}

// offscreen reports whether a head is beyond the cull margin. A canvas
// without a size culls nothing.
func offscreen(pos *component.Transform, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return pos.X < -cullMargin || pos.Y < -cullMargin ||
		pos.X > float64(width)+cullMargin || pos.Y > float64(height)+cullMargin
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

// fade scales a premultiplied color by a.
func fade(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
