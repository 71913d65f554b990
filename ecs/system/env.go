package system

import (
	"image/color"

	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/prefabs"
)

// Env is the state shared by the simulation systems: tuning, the random
// source and the surface bounds. It is owned by the simulation driver.
type Env struct {
	Tuning *prefabs.Tuning
	Rand   *common.Rand
	Width  float64
	Height float64

	palette []color.RGBA
}

func NewEnv(t *prefabs.Tuning, rng *common.Rand, width, height float64) *Env {
	env := &Env{Rand: rng, Width: width, Height: height}
	env.SetTuning(t)
	return env
}

// SetTuning swaps the constant set. Per-spawn values such as life, radius
// and frame budget stay as rolled; drag, gravity and the detonation
// distance apply to everything from the next frame.
func (e *Env) SetTuning(t *prefabs.Tuning) {
	e.Tuning = t
	e.palette = t.Colors()
}

// PaletteColor picks a uniformly random palette entry.
func (e *Env) PaletteColor() color.RGBA {
	if len(e.palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return e.palette[e.Rand.IntN(len(e.palette))]
}
