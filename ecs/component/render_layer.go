package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerSparks = iota
	LayerComets
	LayerRockets
)

var RenderLayerComponent = NewComponent[RenderLayer]()
