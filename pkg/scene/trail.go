package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	// TrailCapacity bounds each trail's point history. Insertion beyond it
	// evicts oldest-first.
	TrailCapacity = 750

	// ResampleThreshold is the maximum distance between consecutive trail
	// points. Motion larger than this in a single step is subdivided so
	// the drawn line stays a smooth curve instead of visible chords.
	ResampleThreshold = 0.15
)

// Trail is a bounded history of a body's world positions, oldest first.
// The last raw recorded position lives in the trail itself, so no
// identity-keyed bookkeeping is needed outside it.
type Trail struct {
	points    []mgl32.Vec3
	capacity  int
	threshold float32

	last    mgl32.Vec3
	hasLast bool
}

// NewTrail returns an empty trail with the standard capacity and
// resampling threshold.
func NewTrail() *Trail {
	return &Trail{
		points:    make([]mgl32.Vec3, 0, TrailCapacity),
		capacity:  TrailCapacity,
		threshold: ResampleThreshold,
	}
}

// Record appends the current world position. When the displacement since
// the previous sample exceeds the threshold τ, floor(d/τ) evenly spaced
// interpolated points are inserted first, so consecutive points are never
// farther apart than τ regardless of frame-rate variance.
func (t *Trail) Record(pos mgl32.Vec3) {
	if !t.hasLast {
		t.push(pos)
		t.last = pos
		t.hasLast = true
		return
	}
	delta := pos.Sub(t.last)
	if d := delta.Len(); d > t.threshold {
		steps := int(d / t.threshold)
		for s := 1; s <= steps; s++ {
			f := float32(s) / float32(steps+1)
			t.push(t.last.Add(delta.Mul(f)))
		}
	}
	t.push(pos)
	t.last = pos
}

func (t *Trail) push(p mgl32.Vec3) {
	if len(t.points) == t.capacity {
		copy(t.points, t.points[1:])
		t.points[len(t.points)-1] = p
		return
	}
	t.points = append(t.points, p)
}

// Points returns the history oldest-first. The slice is owned by the
// trail and valid only until the next Record.
func (t *Trail) Points() []mgl32.Vec3 { return t.points }

// Len returns the number of recorded points.
func (t *Trail) Len() int { return len(t.points) }
