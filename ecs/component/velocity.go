package component

import "github.com/jakecoffman/cp"

// Velocity is a per-frame displacement in display units.
type Velocity struct {
	VX float64
	VY float64
}

func (v Velocity) Vec() cp.Vector {
	return cp.Vector{X: v.VX, Y: v.VY}
}

var VelocityComponent = NewComponent[Velocity]()
