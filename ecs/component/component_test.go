package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestTrailEvictsOldest(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		pushes   int
		wantLen  int
		wantHead float64 // X of oldest kept point
	}{
		{"empty", 6, 0, 0, 0},
		{"partial", 6, 4, 4, 0},
		{"exact", 6, 6, 6, 0},
		{"overflow", 6, 9, 6, 3},
		{"projectile_overflow", 10, 25, 10, 15},
		{"zero_capacity", 0, 5, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewTrail(c.capacity)
			for i := 0; i < c.pushes; i++ {
				tr.Push(cp.Vector{X: float64(i)})
			}
			if tr.Len() != c.wantLen {
				t.Fatalf("expected len %d, got %d", c.wantLen, tr.Len())
			}
			if c.wantLen == 0 {
				if _, ok := tr.Newest(); ok {
					t.Fatalf("expected no newest point")
				}
				return
			}
			if got := tr.At(0).X; got != c.wantHead {
				t.Fatalf("expected oldest %v, got %v", c.wantHead, got)
			}
			newest, _ := tr.Newest()
			if newest.X != float64(c.pushes-1) {
				t.Fatalf("expected newest %d, got %v", c.pushes-1, newest.X)
			}
			pts := tr.AppendTo(nil)
			for i := 1; i < len(pts); i++ {
				if pts[i].X != pts[i-1].X+1 {
					t.Fatalf("points out of order: %v", pts)
				}
			}
		})
	}
}

func TestParticleLifecycle(t *testing.T) {
	p := Particle{Life: 100}
	for age := 0; age <= 120; age++ {
		p.Age = age
		if p.Dead() != (age >= 100) {
			t.Fatalf("age %d: Dead() = %v", age, p.Dead())
		}
	}

	p.Age = 50
	if a := p.Alpha(0.45); math.Abs(a-0.5) > 1e-9 {
		t.Fatalf("expected alpha 0.5 at half life, got %v", a)
	}
	p.Age = 130
	if a := p.Alpha(0.45); a != 0 {
		t.Fatalf("expected alpha clamped to 0, got %v", a)
	}
}

func TestParticleFlickerDims(t *testing.T) {
	p := Particle{Life: 10, Age: 0, Flicker: true, Dimmed: true}
	if a := p.Alpha(0.45); math.Abs(a-0.45) > 1e-9 {
		t.Fatalf("expected dimmed alpha 0.45, got %v", a)
	}
	p.Flicker = false
	if a := p.Alpha(0.45); a != 1 {
		t.Fatalf("non-flickering particles ignore the dim roll, got %v", a)
	}
}

func TestProjectileState(t *testing.T) {
	p := Projectile{}
	if p.Exploded() || p.State.String() != "flying" {
		t.Fatalf("new projectile should be flying")
	}
	p.State = ProjectileExploded
	if !p.Exploded() || p.State.String() != "exploded" {
		t.Fatalf("expected exploded state")
	}
}

func TestComponentKindsAreDistinct(t *testing.T) {
	a := NewComponentKind[int]()
	b := NewComponentKind[int]()
	if !a.Valid() || !b.Valid() || a.ID() == b.ID() {
		t.Fatalf("expected distinct valid kinds, got %v and %v", a.ID(), b.ID())
	}
	var zero ComponentKind[int]
	if zero.Valid() {
		t.Fatalf("zero kind must be invalid")
	}
}
