package sim

import (
	"math"
	"sort"
	"testing"

	"github.com/milk9111/fireworks/common"
	"github.com/milk9111/fireworks/ecs"
	"github.com/milk9111/fireworks/ecs/component"
	"github.com/milk9111/fireworks/ecs/render"
	"github.com/milk9111/fireworks/prefabs"
)

const (
	testWidth  = 1000
	testHeight = 800
)

func newTestSim(t *testing.T, seed uint64) *Simulation {
	t.Helper()
	data, err := prefabs.LoadEmbedded(prefabs.TuningFile)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	tun, err := prefabs.ParseTuning(data)
	if err != nil {
		t.Fatalf("parse tuning: %v", err)
	}
	return New(tun, common.NewRand(seed), testWidth, testHeight, nil)
}

func TestSpawnProjectile(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		wantOK bool
	}{
		{"center", 500, 400, true},
		{"left_edge", 0, 100, true},
		{"right_edge", testWidth, 100, true},
		{"below_launch", 500, testHeight + 50, true},
		{"nan", math.NaN(), 100, false},
		{"inf", 100, math.Inf(1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSim(t, 11)
			if got := s.SpawnProjectile(c.x, c.y); got != c.wantOK {
				t.Fatalf("SpawnProjectile(%v, %v) = %v, want %v", c.x, c.y, got, c.wantOK)
			}
			want := 0
			if c.wantOK {
				want = 1
			}
			if s.Projectiles() != want {
				t.Fatalf("expected %d projectiles, got %d", want, s.Projectiles())
			}
			ecs.ForEach(s.World(), component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
				if p.StartX < 0 || p.StartX > testWidth {
					t.Fatalf("launch x %v outside surface", p.StartX)
				}
				if p.StartY != testHeight-s.env.Tuning.Projectile.LaunchInset {
					t.Fatalf("launch y %v not at bottom", p.StartY)
				}
				if math.Abs(p.StartX-c.x) > s.env.Tuning.Projectile.LaunchJitter {
					t.Fatalf("launch x %v too far from target %v", p.StartX, c.x)
				}
				if p.TargetX != c.x || p.TargetY != c.y {
					t.Fatalf("target stored as (%v, %v)", p.TargetX, p.TargetY)
				}
			})
		})
	}
}

func TestFiftyRocketsBurnOut(t *testing.T) {
	s := newTestSim(t, 2024)
	rng := common.NewRand(77)
	for i := 0; i < 50; i++ {
		if !s.SpawnProjectile(rng.Range(0, testWidth), rng.Range(0, testHeight*0.6)) {
			t.Fatalf("spawn %d rejected", i)
		}
	}
	if s.Projectiles() != 50 {
		t.Fatalf("expected 50 live projectiles, got %d", s.Projectiles())
	}

	frames := 0
	for s.Projectiles() > 0 {
		s.Advance()
		frames++
		if frames > 134 {
			t.Fatalf("projectiles still flying after %d frames", frames)
		}
	}

	st := s.Stats()
	if st.Launched != 50 || st.Detonations != 50 {
		t.Fatalf("expected 50 launches and detonations, got %+v", st)
	}
	if st.Sparks < 50*140 || st.Sparks >= 50*240 {
		t.Fatalf("main burst total %d outside [%d, %d)", st.Sparks, 50*140, 50*240)
	}
	if st.Comets < 50*8 || st.Comets >= 50*18 {
		t.Fatalf("comet total %d outside [%d, %d)", st.Comets, 50*8, 50*18)
	}
	if s.Particles() == 0 {
		t.Fatalf("expected live particles right after the last detonation")
	}

	for i := 0; i < 140; i++ {
		s.Advance()
	}
	if s.Particles() != 0 {
		t.Fatalf("expected all particles retired, %d left", s.Particles())
	}
	if len(ecs.Entities(s.World())) != 0 {
		t.Fatalf("expected an empty world")
	}
}

func TestDetonationsReportedOncePerRocket(t *testing.T) {
	s := newTestSim(t, 5)
	for i := 0; i < 10; i++ {
		s.SpawnProjectile(float64(100+i*80), 200)
	}

	seen := make(map[ecs.Entity]int)
	for f := 0; f < 200; f++ {
		s.Advance()
		for _, d := range s.Detonations() {
			seen[d.Entity]++
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct detonations, got %d", len(seen))
	}
	for e, n := range seen {
		if n != 1 {
			t.Fatalf("rocket %v detonated %d times", e, n)
		}
	}
}

func TestAdvanceAndRender(t *testing.T) {
	s := newTestSim(t, 9)
	rec := render.NewRecorder(testWidth, testHeight)

	s.AdvanceAndRender(rec)
	stars := s.env.Tuning.Sky.Stars
	if rec.Fills != 1 || rec.Circles != stars {
		t.Fatalf("empty sky: expected 1 fill and %d stars, got %+v", stars, rec)
	}

	s.SpawnProjectile(500, 300)
	rec.Reset()
	s.AdvanceAndRender(rec)
	if rec.Circles != stars+1 {
		t.Fatalf("expected one rocket head over the stars, got %d circles", rec.Circles)
	}
	if rec.Lines != 1 {
		t.Fatalf("expected a one-segment trail after the first frame, got %d", rec.Lines)
	}
}

func TestClear(t *testing.T) {
	s := newTestSim(t, 3)
	s.SpawnProjectile(400, 400)
	for s.Projectiles() > 0 {
		s.Advance()
	}
	if s.Particles() == 0 {
		t.Fatalf("expected particles before clear")
	}
	s.Clear()
	if s.Particles() != 0 || s.Projectiles() != 0 {
		t.Fatalf("expected empty simulation after Clear")
	}
}

func TestDetonationsLandNearTarget(t *testing.T) {
	s := newTestSim(t, 31)
	rng := common.NewRand(13)
	for i := 0; i < 300; i++ {
		s.SpawnProjectile(rng.Range(0, testWidth), rng.Range(0, testHeight/2))
	}

	targets := make(map[ecs.Entity][2]float64)
	ecs.ForEach(s.World(), component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		targets[e] = [2]float64{p.TargetX, p.TargetY}
	})

	var misses []float64
	for f := 0; f < 140 && len(misses) < len(targets); f++ {
		s.Advance()
		for _, d := range s.Detonations() {
			tgt, ok := targets[d.Entity]
			if !ok {
				t.Fatalf("detonation from unknown rocket %v", d.Entity)
			}
			misses = append(misses, math.Hypot(d.X-tgt[0], d.Y-tgt[1]))
		}
	}
	if len(misses) != len(targets) {
		t.Fatalf("expected %d detonations, got %d", len(targets), len(misses))
	}

	sort.Float64s(misses)
	median, worst := misses[len(misses)/2], misses[len(misses)-1]
	if median > 30 {
		t.Fatalf("median miss %.1f px, want <= 30", median)
	}
	if worst > 80 {
		t.Fatalf("worst miss %.1f px, want <= 80", worst)
	}
}
