package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// Tuning is the fixed constant set the simulation runs on.
type Tuning struct {
	Gravity    float64        `yaml:"gravity"`
	Solver     SolverSpec     `yaml:"solver"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Particle   ParticleSpec   `yaml:"particle"`
	Burst      BurstSpec      `yaml:"burst"`
	Palette    []YAMLColor    `yaml:"palette"`
	CometColor YAMLColor      `yaml:"comet_color"`
	Sky        SkySpec        `yaml:"sky"`
}

type SolverSpec struct {
	DistancePerFrame float64 `yaml:"distance_per_frame"`
	MinFrames        int     `yaml:"min_frames"`
	MaxFrames        int     `yaml:"max_frames"`
	// Frame jitter is drawn from [FrameJitterMin, FrameJitterMax] inclusive.
	FrameJitterMin int     `yaml:"frame_jitter_min"`
	FrameJitterMax int     `yaml:"frame_jitter_max"`
	Wobble         float64 `yaml:"wobble"`
	Perturbation   float64 `yaml:"perturbation"`
}

type ProjectileSpec struct {
	GravityScale       float64 `yaml:"gravity_scale"`
	TrailLength        int     `yaml:"trail_length"`
	Radius             float64 `yaml:"radius"`
	DetonationDistance float64 `yaml:"detonation_distance"`
	LaunchJitter       float64 `yaml:"launch_jitter"`
	LaunchInset        float64 `yaml:"launch_inset"`
}

type ParticleSpec struct {
	Drag             float64 `yaml:"drag"`
	GravityScale     float64 `yaml:"gravity_scale"`
	TrailLength      int     `yaml:"trail_length"`
	FlickerDimChance float64 `yaml:"flicker_dim_chance"`
	FlickerDimFactor float64 `yaml:"flicker_dim_factor"`
}

type BurstSpec struct {
	Main   PopulationSpec `yaml:"main"`
	Comets PopulationSpec `yaml:"comets"`
}

// PopulationSpec describes one sub-burst. Count and Life are half-open
// [min, max) ranges, Radius is closed.
type PopulationSpec struct {
	CountMin      int     `yaml:"count_min"`
	CountMax      int     `yaml:"count_max"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	BoostChance   float64 `yaml:"boost_chance"`
	BoostMin      float64 `yaml:"boost_min"`
	BoostMax      float64 `yaml:"boost_max"`
	Jitter        float64 `yaml:"jitter"`
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	LifeMin       int     `yaml:"life_min"`
	LifeMax       int     `yaml:"life_max"`
	FlickerChance float64 `yaml:"flicker_chance"`
}

type SkySpec struct {
	Background    YAMLColor `yaml:"background"`
	Stars         int       `yaml:"stars"`
	TwinkleChance float64   `yaml:"twinkle_chance"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads and validates tuning.yaml, preferring a copy on disk over
// the embedded one.
func LoadTuning() (*Tuning, error) {
	spec, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var spec Tuning
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (t *Tuning) Validate() error {
	s := t.Solver
	switch {
	case t.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidTuning)
	case s.DistancePerFrame <= 0:
		return fmt.Errorf("%w: solver.distance_per_frame must be positive", ErrInvalidTuning)
	case s.MinFrames+s.FrameJitterMin < 1:
		return fmt.Errorf("%w: solver frame budget can reach zero", ErrInvalidTuning)
	case s.MaxFrames < s.MinFrames:
		return fmt.Errorf("%w: solver.max_frames below min_frames", ErrInvalidTuning)
	case s.FrameJitterMax < s.FrameJitterMin:
		return fmt.Errorf("%w: solver frame jitter range is inverted", ErrInvalidTuning)
	case t.Projectile.TrailLength < 0 || t.Particle.TrailLength < 0:
		return fmt.Errorf("%w: trail lengths must not be negative", ErrInvalidTuning)
	case t.Particle.Drag <= 0 || t.Particle.Drag > 1:
		return fmt.Errorf("%w: particle.drag must be in (0, 1]", ErrInvalidTuning)
	case len(t.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidTuning)
	}
	for name, p := range map[string]PopulationSpec{"main": t.Burst.Main, "comets": t.Burst.Comets} {
		if p.CountMax <= p.CountMin || p.CountMin < 0 {
			return fmt.Errorf("%w: burst.%s count range is empty", ErrInvalidTuning, name)
		}
		if p.LifeMax <= p.LifeMin || p.LifeMin < 1 {
			return fmt.Errorf("%w: burst.%s life range is empty", ErrInvalidTuning, name)
		}
	}
	return nil
}

// Colors returns the palette as RGBA values.
func (t *Tuning) Colors() []color.RGBA {
	out := make([]color.RGBA, 0, len(t.Palette))
	for _, c := range t.Palette {
		out = append(out, c.RGBA)
	}
	return out
}

// YAMLColor accepts an SVG color name ("gold") or a #rrggbb[aa] hex string.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
	return nil
}
