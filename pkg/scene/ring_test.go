package scene

import (
	"math"
	"testing"
)

func TestOrbitRingTessellation(t *testing.T) {
	root := NewBody("star", BodyParams{Radius: 1})
	root.AddChild("planet", BodyParams{Radius: 0.3, OrbitRadius: 3})

	rings := New(root).OrbitRings()
	if len(rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(rings))
	}
	r := rings[0]
	if r.Body != "planet" {
		t.Errorf("ring body = %q, want planet", r.Body)
	}
	if len(r.Points) != RingSegments+1 {
		t.Fatalf("got %d points, want %d (closed loop)", len(r.Points), RingSegments+1)
	}
	if gap := r.Points[0].Sub(r.Points[RingSegments]).Len(); gap > 1e-6 {
		t.Errorf("ring not closed: first %v, last %v", r.Points[0], r.Points[RingSegments])
	}
	for i, p := range r.Points {
		if d := float64(p.Len()); math.Abs(d-3) > 1e-5 {
			t.Errorf("point %d at distance %v from center, want 3", i, d)
		}
	}
}

func TestOrbitRingFollowsParentPosition(t *testing.T) {
	// Motionless parent pinned at (0, 0, 4) by its phase.
	parent := NewBody("parent", BodyParams{Radius: 1, OrbitRadius: 4, Phase: math.Pi / 2})
	parent.AddChild("child", BodyParams{Radius: 0.2, OrbitRadius: 2})

	rings := New(parent).OrbitRings()
	center := parent.WorldPosition()
	for _, r := range rings {
		if r.Body != "child" {
			continue
		}
		for i, p := range r.Points {
			if d := float64(p.Sub(center).Len()); math.Abs(d-2) > 1e-5 {
				t.Errorf("point %d at distance %v from parent, want 2", i, d)
			}
		}
		return
	}
	t.Fatal("no ring emitted for child")
}

func TestOrbitRingSkipsStationaryBodies(t *testing.T) {
	root := NewBody("star", BodyParams{Radius: 1})
	root.AddChild("pinned", BodyParams{Radius: 0.3, OrbitRadius: 0})

	if rings := New(root).OrbitRings(); len(rings) != 0 {
		t.Errorf("got %d rings for stationary bodies, want 0", len(rings))
	}
}

func TestPairedRootsShareOneRing(t *testing.T) {
	s := Default()

	var shared, child int
	for _, r := range s.OrbitRings() {
		if r.Body == "" {
			shared++
		} else {
			child++
		}
	}
	// Sun and Sun2 ride the same path, so exactly one shared ring.
	if shared != 1 {
		t.Errorf("got %d shared root rings, want 1", shared)
	}
	// Mercury, Earth, Moon, Mars, Ember.
	if child != 5 {
		t.Errorf("got %d child rings, want 5", child)
	}
}

func TestInclinedRingStaysOnTiltedPlane(t *testing.T) {
	root := NewBody("star", BodyParams{Radius: 1})
	root.AddChild("tilted", BodyParams{Radius: 0.2, OrbitRadius: 2, Inclination: 90})

	rings := New(root).OrbitRings()
	if len(rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(rings))
	}
	// With a 90 degree X tilt the ring leaves the XZ plane entirely
	// except at the two crossing points on the X axis.
	var maxY float32
	for _, p := range rings[0].Points {
		if y := float32(math.Abs(float64(p.Y()))); y > maxY {
			maxY = y
		}
	}
	if math.Abs(float64(maxY)-2) > 1e-5 {
		t.Errorf("max |y| = %v, want 2", maxY)
	}
}
