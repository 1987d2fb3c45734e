package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RingSegments is the tessellation resolution of orbit reference rings.
const RingSegments = 64

// orbitEpsilon: orbit radii at or below this get no reference ring.
const orbitEpsilon = 1e-6

// Ring is the tessellated circular orbit path of one body in world space,
// RingSegments+1 points with the last closing the loop. Visual reference
// only; it carries no simulation state.
type Ring struct {
	Body   string // owning body name, empty for a shared root ring
	Points []mgl32.Vec3
}

// OrbitRings tessellates the orbit path of every qualifying body. Child
// rings are centered on the parent's current world position so they orbit
// with it. Root orbits are centered at the scene origin; roots sharing the
// same path (paired stars) contribute a single ring instead of duplicate
// degenerate ones.
func (s *Scene) OrbitRings() []Ring {
	var rings []Ring

	type pathKey struct {
		radius      float64
		inclination float64
	}
	seen := make(map[pathKey]bool)
	for _, r := range s.Roots {
		if r.OrbitRadius <= orbitEpsilon {
			continue
		}
		k := pathKey{r.OrbitRadius, r.Inclination}
		if seen[k] {
			continue
		}
		seen[k] = true
		rings = append(rings, Ring{
			Points: ringPoints(r.OrbitRadius, r.Inclination, mgl32.Vec3{}),
		})
	}

	s.Walk(func(b *Body) {
		if b.parent == nil || b.OrbitRadius <= orbitEpsilon {
			return
		}
		rings = append(rings, Ring{
			Body:   b.Name,
			Points: ringPoints(b.OrbitRadius, b.Inclination, b.parent.WorldPosition()),
		})
	})
	return rings
}

func ringPoints(radius, inclinationDeg float64, center mgl32.Vec3) []mgl32.Vec3 {
	tilt := mgl32.HomogRotate3DX(radians(inclinationDeg))
	pts := make([]mgl32.Vec3, 0, RingSegments+1)
	for i := 0; i <= RingSegments; i++ {
		a := 2 * math.Pi * float64(i) / RingSegments
		p := mgl32.Vec3{
			float32(radius * math.Cos(a)),
			0,
			float32(radius * math.Sin(a)),
		}
		p = tilt.Mul4x1(p.Vec4(1)).Vec3()
		pts = append(pts, p.Add(center))
	}
	return pts
}
