package system

import (
	"image/color"

	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/render"
)

type star struct {
	x, y   float32
	radius float32
	bright uint8
	dim    bool
}

// StarfieldSystem paints the sky: a flat background and a fixed scatter of
// stars that occasionally twinkle. Stars are not entities.
type StarfieldSystem struct {
	env   *Env
	stars []star

	width, height float64
}

func NewStarfieldSystem(env *Env) *StarfieldSystem {
	s := &StarfieldSystem{env: env}
	s.scatter()
	return s
}

func (s *StarfieldSystem) scatter() {
	s.width, s.height = s.env.Width, s.env.Height
	n := s.env.Tuning.Sky.Stars
	s.stars = s.stars[:0]
	for i := 0; i < n; i++ {
		s.stars = append(s.stars, star{
			x:      float32(s.env.Rand.Range(0, s.width)),
			y:      float32(s.env.Rand.Range(0, s.height*0.8)),
			radius: float32(s.env.Rand.Range(0.4, 1.3)),
			bright: uint8(s.env.Rand.IntRange(90, 220)),
		})
	}
}

func (s *StarfieldSystem) Update(_ *ecs.World) {
	if s.width != s.env.Width || s.height != s.env.Height || len(s.stars) != s.env.Tuning.Sky.Stars {
		s.scatter()
	}
	chance := s.env.Tuning.Sky.TwinkleChance
	for i := range s.stars {
		if s.env.Rand.Chance(chance) {
			s.stars[i].dim = !s.stars[i].dim
		}
	}
}

func (s *StarfieldSystem) Draw(_ *ecs.World, canvas render.Canvas) {
	canvas.Fill(s.env.Tuning.Sky.Background.RGBA)
	for _, st := range s.stars {
		b := st.bright
		if st.dim {
			b /= 2
		}
		canvas.FillCircle(st.x, st.y, st.radius, color.RGBA{R: b, G: b, B: b, A: b})
	}
}
