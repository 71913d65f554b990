package prefabs

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedTuningIsValid(t *testing.T) {
	data, err := LoadEmbedded(TuningFile)
	if err != nil {
		t.Fatalf("load embedded tuning: %v", err)
	}
	tun, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("parse embedded tuning: %v", err)
	}

	if tun.Gravity != 0.12 {
		t.Fatalf("expected gravity 0.12, got %v", tun.Gravity)
	}
	if tun.Solver.MinFrames != 28 || tun.Solver.MaxFrames != 120 {
		t.Fatalf("unexpected solver clamp [%d, %d]", tun.Solver.MinFrames, tun.Solver.MaxFrames)
	}
	if tun.Projectile.TrailLength != 10 || tun.Particle.TrailLength != 6 {
		t.Fatalf("unexpected trail lengths %d/%d", tun.Projectile.TrailLength, tun.Particle.TrailLength)
	}
	if tun.Burst.Main.CountMin != 140 || tun.Burst.Main.CountMax != 240 {
		t.Fatalf("unexpected main burst count range")
	}
	if tun.Burst.Comets.CountMin != 8 || tun.Burst.Comets.CountMax != 18 {
		t.Fatalf("unexpected comet count range")
	}
	if tun.Particle.GravityScale >= tun.Projectile.GravityScale {
		t.Fatalf("particle gravity should be weaker than projectile gravity")
	}
	if len(tun.Colors()) == 0 {
		t.Fatalf("expected a palette")
	}
	if tun.CometColor.RGBA != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected white comets, got %v", tun.CometColor.RGBA)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	base, err := LoadEmbedded(TuningFile)
	if err != nil {
		t.Fatalf("load embedded tuning: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_gravity", func(tn *Tuning) { tn.Gravity = 0 }},
		{"empty_palette", func(tn *Tuning) { tn.Palette = nil }},
		{"zero_budget", func(tn *Tuning) { tn.Solver.MinFrames = 8; tn.Solver.FrameJitterMin = -8 }},
		{"inverted_clamp", func(tn *Tuning) { tn.Solver.MaxFrames = 10 }},
		{"drag_above_one", func(tn *Tuning) { tn.Particle.Drag = 1.2 }},
		{"empty_comet_count", func(tn *Tuning) { tn.Burst.Comets.CountMax = tn.Burst.Comets.CountMin }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tun, err := ParseTuning(base)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			c.mutate(tun)
			if err := tun.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "gold", want: color.RGBA{255, 215, 0, 255}},
		{in: "\"#102030\"", want: color.RGBA{0x10, 0x20, 0x30, 0xff}},
		{in: "\"#ffffff00\"", want: color.RGBA{}},
		{in: "nope", wantErr: true},
		{in: "[1, 2]", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if got.RGBA != c.want {
				t.Fatalf("got %v, want %v", got.RGBA, c.want)
			}
		})
	}
}

func TestScriptLookup(t *testing.T) {
	for _, name := range []string{"show", "show.tengo", "scripts/show.tengo", "prefabs/scripts/show.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if !strings.Contains(string(data), "launch(") {
			t.Fatalf("LoadScript(%q) returned unexpected content", name)
		}
	}
}

func TestPrefabName(t *testing.T) {
	cases := map[string]string{
		"prefabs/tuning.yaml":        "tuning.yaml",
		"/x/prefabs/scripts/a.tengo": "scripts/a.tengo",
		"other/tuning.yaml":          "tuning.yaml",
	}
	for in, want := range cases {
		if got := prefabName(in); got != want {
			t.Fatalf("prefabName(%q) = %q, want %q", in, got, want)
		}
	}
}
