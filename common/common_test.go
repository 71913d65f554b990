package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 4, 0, 10, 4},
		{"above", 11, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, -2, 0) {
		t.Fatalf("expected finite values to pass")
	}
	if Finite(1, math.NaN()) {
		t.Fatalf("expected NaN to fail")
	}
	if Finite(math.Inf(-1)) {
		t.Fatalf("expected -Inf to fail")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 2000; i++ {
		if v := r.Range(0.8, 8); v < 0.8 || v >= 8 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if v := r.IntRange(-8, 15); v < -8 || v >= 15 {
			t.Fatalf("IntRange out of bounds: %v", v)
		}
	}
	if got := r.IntRange(5, 5); got != 5 {
		t.Fatalf("empty IntRange should return lo, got %d", got)
	}
}

func TestRandSeedIsDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}
