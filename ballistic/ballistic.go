// Package ballistic solves launch velocities for rockets that must reach a
// target point after a whole number of frames under constant gravity.
package ballistic

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/prefabs"
)

var ErrNonFinite = errors.New("ballistic: non-finite coordinates")

type Params struct {
	Gravity          float64
	DistancePerFrame float64
	MinFrames        int
	MaxFrames        int
	FrameJitterMin   int
	FrameJitterMax   int
	Wobble           float64
	Perturbation     float64
}

func ParamsFromTuning(t *prefabs.Tuning) Params {
	return Params{
		Gravity:          t.Gravity,
		DistancePerFrame: t.Solver.DistancePerFrame,
		MinFrames:        t.Solver.MinFrames,
		MaxFrames:        t.Solver.MaxFrames,
		FrameJitterMin:   t.Solver.FrameJitterMin,
		FrameJitterMax:   t.Solver.FrameJitterMax,
		Wobble:           t.Solver.Wobble,
		Perturbation:     t.Solver.Perturbation,
	}
}

// FrameBounds is the closed range every solved frame budget falls in.
func (p Params) FrameBounds() (int, int) {
	return p.MinFrames + p.FrameJitterMin, p.MaxFrames + p.FrameJitterMax
}

// Solution is a solved launch. Exact lands on the wobbled target at Frames
// under the closed-form equation; Velocity is Exact plus the random
// perturbation and is what the rocket actually flies with.
type Solution struct {
	Frames   int
	Wobble   float64
	Exact    cp.Vector
	Velocity cp.Vector
}

// BaseFrames is the unjittered budget: one frame per DistancePerFrame units,
// clamped to [MinFrames, MaxFrames].
func BaseFrames(start, target cp.Vector, p Params) int {
	per := p.DistancePerFrame
	if per <= 0 {
		per = 1
	}
	n := int(math.Round(start.Distance(target) / per))
	return common.ClampInt(n, p.MinFrames, p.MaxFrames)
}

// Solve draws a frame budget and wobble from rng and returns the launch.
func Solve(start, target cp.Vector, p Params, rng *common.Rand) (Solution, error) {
	if !common.Finite(start.X, start.Y, target.X, target.Y) {
		return Solution{}, ErrNonFinite
	}

	frames := BaseFrames(start, target, p) + rng.IntRange(p.FrameJitterMin, p.FrameJitterMax+1)
	if frames < 1 {
		frames = 1
	}
	wobble := rng.Range(-p.Wobble, p.Wobble)
	exact := SolveExact(start, target, frames, wobble, p.Gravity)

	return Solution{
		Frames: frames,
		Wobble: wobble,
		Exact:  exact,
		Velocity: cp.Vector{
			X: exact.X + rng.Range(-p.Perturbation, p.Perturbation),
			Y: exact.Y + rng.Range(-p.Perturbation, p.Perturbation),
		},
	}, nil
}

// SolveExact returns the initial velocity that reaches
// (target.X+wobble, target.Y) after frames under
// y(t) = y0 + vy*t + g*t*t/2. frames must be positive.
func SolveExact(start, target cp.Vector, frames int, wobble, gravity float64) cp.Vector {
	t := float64(frames)
	return cp.Vector{
		X: (target.X + wobble - start.X) / t,
		Y: (target.Y - start.Y - 0.5*gravity*t*t) / t,
	}
}

// PositionAt evaluates the closed-form trajectory at time t, ignoring drag.
func PositionAt(start, velocity cp.Vector, gravity, t float64) cp.Vector {
	return cp.Vector{
		X: start.X + velocity.X*t,
		Y: start.Y + velocity.Y*t + 0.5*gravity*t*t,
	}
}
