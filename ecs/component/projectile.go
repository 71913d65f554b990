package component

type ProjectileState uint8

const (
	ProjectileFlying ProjectileState = iota
	ProjectileExploded
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileFlying:
		return "flying"
	case ProjectileExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Projectile is a rocket on a pre-solved ballistic path. TargetX/TargetY is
// the exact requested impact point; Wobble is the horizontal offset the
// launch velocity was solved against.
type Projectile struct {
	StartX  float64
	StartY  float64
	TargetX float64
	TargetY float64
	Wobble  float64

	Frames int
	Age    int
	State  ProjectileState
}

func (p *Projectile) Exploded() bool {
	return p.State == ProjectileExploded
}

var ProjectileComponent = NewComponent[Projectile]()
