package render

import "image/color"

// Recorder is a headless Canvas that counts draw calls. It backs the
// benchmark tool and tests.
type Recorder struct {
	Width, Height int

	Fills   int
	Circles int
	Lines   int

	// LastCircle is the color of the most recent FillCircle call.
	LastCircle color.Color
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) Fill(color.Color) {
	r.Fills++
}

func (r *Recorder) FillCircle(_, _, _ float32, c color.Color) {
	r.Circles++
	r.LastCircle = c
}

func (r *Recorder) StrokeLine(_, _, _, _, _ float32, _ color.Color) {
	r.Lines++
}

// Reset zeroes the counters but keeps the size.
func (r *Recorder) Reset() {
	*r = Recorder{Width: r.Width, Height: r.Height}
}
