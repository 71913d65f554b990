package component

import "image/color"

// Glow is how an entity is drawn: a filled disc with a fading tail.
type Glow struct {
	Color  color.RGBA
	Radius float64
}

var GlowComponent = NewComponent[Glow]()
