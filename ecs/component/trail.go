package component

import "github.com/jakecoffman/cp"

// Trail is a bounded position history used only for drawing. It is a ring
// buffer: once full, each Push evicts the oldest point.
type Trail struct {
	points []cp.Vector
	start  int
	n      int
}

func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{points: make([]cp.Vector, capacity)}
}

func (t *Trail) Push(p cp.Vector) {
	if len(t.points) == 0 {
		return
	}
	if t.n < len(t.points) {
		t.points[(t.start+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

func (t *Trail) Len() int {
	return t.n
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) cp.Vector {
	return t.points[(t.start+i)%len(t.points)]
}

// Newest returns the most recently pushed point.
func (t *Trail) Newest() (cp.Vector, bool) {
	if t.n == 0 {
		return cp.Vector{}, false
	}
	return t.At(t.n - 1), true
}

// AppendTo appends the points oldest first to dst.
func (t *Trail) AppendTo(dst []cp.Vector) []cp.Vector {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}

var TrailComponent = NewComponent[Trail]()
