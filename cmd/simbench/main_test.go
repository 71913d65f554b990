package main

import "testing"

func TestRun(t *testing.T) {
	cases := []struct {
		name         string
		opts         options
		wantLaunched int
	}{
		{"interval", options{frames: 300, every: 100, seed: 3, width: 800, height: 600}, 3},
		{"idle", options{frames: 60, every: 0, seed: 3, width: 800, height: 600}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rep, err := run(c.opts, nil)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if rep.stats.Frames != uint64(c.opts.frames) {
				t.Fatalf("expected %d frames, got %d", c.opts.frames, rep.stats.Frames)
			}
			if rep.stats.Launched != c.wantLaunched {
				t.Fatalf("expected %d launches, got %d", c.wantLaunched, rep.stats.Launched)
			}
			if c.wantLaunched > 0 && (rep.stats.Detonations == 0 || rep.peakLive == 0 || rep.circles == 0) {
				t.Fatalf("expected activity, got %+v", rep)
			}
		})
	}
}
