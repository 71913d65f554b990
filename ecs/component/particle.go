package component

// Particle is one spark of a burst. It is dead once Age reaches Life.
type Particle struct {
	Life    int
	Age     int
	Flicker bool
	// Dimmed is this frame's flicker roll.
	Dimmed bool
}

func (p *Particle) Dead() bool {
	return p.Age >= p.Life
}

// Alpha fades linearly from 1 at birth to 0 at Life. A dimmed frame is
// scaled by dim.
func (p *Particle) Alpha(dim float64) float64 {
	if p.Life <= 0 {
		return 0
	}
	a := 1 - float64(p.Age)/float64(p.Life)
	if a < 0 {
		a = 0
	}
	if p.Flicker && p.Dimmed {
		a *= dim
	}
	return a
}

var ParticleComponent = NewComponent[Particle]()
