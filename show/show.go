// Package show runs tengo attract-mode scripts that launch fireworks on a
// schedule.
package show

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/fireworks/prefabs"
	"go.uber.org/zap"
)

// frameBudget bounds a single script run so a runaway loop cannot stall a
// frame. A run that overshoots is dropped; the show keeps going.
const frameBudget = 8 * time.Millisecond

var ErrStopped = errors.New("show: stopped")

// Launcher is what a script drives. sim.Simulation satisfies it.
type Launcher interface {
	SpawnProjectile(x, y float64) bool
}

type Runner struct {
	name     string
	compiled *tengo.Compiled
	launcher Launcher
	log      *zap.SugaredLogger

	frame    int
	launches int
	stopped  bool
}

// Load compiles the named script from prefabs/scripts, preferring a copy on
// disk over the embedded one.
func Load(name string, l Launcher, log *zap.SugaredLogger) (*Runner, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("show: load %q: %w", name, err)
	}
	return New(name, src, l, log)
}

func New(name string, src []byte, l Launcher, log *zap.SugaredLogger) (*Runner, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Runner{name: name, launcher: l, log: log}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand", "times"))
	_ = script.Add("frame", 0)
	_ = script.Add("width", 0.0)
	_ = script.Add("height", 0.0)
	_ = script.Add("launch", &tengo.UserFunction{Name: "launch", Value: r.launch})

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("show: compile %q: %w", name, err)
	}
	r.compiled = compiled
	return r, nil
}

// Step runs the script once for the current frame. A run that exceeds the
// frame budget is skipped and reported. Any other failure stops the script
// and every later Step returns ErrStopped.
func (r *Runner) Step(width, height float64) error {
	if r == nil || r.stopped {
		return ErrStopped
	}

	frame := r.frame
	r.frame++

	if err := r.compiled.Set("frame", frame); err != nil {
		return r.stop(err)
	}
	if err := r.compiled.Set("width", width); err != nil {
		return r.stop(err)
	}
	if err := r.compiled.Set("height", height); err != nil {
		return r.stop(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), frameBudget)
	defer cancel()
	err := r.compiled.RunContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		r.log.Warnw("show frame skipped", "script", r.name, "frame", frame, "budget", frameBudget)
		return fmt.Errorf("show: %s: frame %d: %w", r.name, frame, err)
	default:
		return r.stop(err)
	}
}

// Rewind restarts the show from frame zero. A stopped show stays stopped.
func (r *Runner) Rewind() {
	r.frame = 0
}

func (r *Runner) Name() string  { return r.name }
func (r *Runner) Running() bool { return r != nil && !r.stopped }
func (r *Runner) Frame() int    { return r.frame }
func (r *Runner) Launches() int { return r.launches }

func (r *Runner) stop(err error) error {
	r.stopped = true
	r.log.Errorw("show stopped", "script", r.name, "frame", r.frame-1, "error", err)
	return fmt.Errorf("show: %s: %w", r.name, err)
}

func (r *Runner) launch(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[1].TypeName()}
	}
	if r.launcher == nil || !r.launcher.SpawnProjectile(x, y) {
		return tengo.FalseValue, nil
	}
	r.launches++
	return tengo.TrueValue, nil
}
