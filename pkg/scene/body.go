package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA quadruple in [0,1]. It feeds both the lighting base
// color of a body and the tint of its trail.
type Color [4]float32

// periodEpsilon is the smallest orbital period treated as real motion.
// Periods at or below it mean "fixed at the current orbit angle", which
// keeps the angular-velocity term 2π/period finite.
const periodEpsilon = 1e-6

// BodyParams holds the kinematic parameters of a body, fixed at
// construction. Angles follow the conventions of the scene frame: the
// orbit runs in the parent's XZ plane before the inclination tilt, spin is
// about the body's own Y axis.
type BodyParams struct {
	Radius      float32 // render scale, > 0
	OrbitRadius float64 // distance from the parent's origin; 0 = stationary there
	OrbitPeriod float64 // seconds per revolution; <= periodEpsilon disables orbital motion
	Inclination float64 // tilt of the orbital plane about X, degrees
	Phase       float64 // initial orbit angle, radians
	SpinSpeed   float64 // self-rotation rate, degrees per second
	Color       Color
	Emissive    bool // rendered without lighting
}

// Body is one node of the orbiting-object hierarchy. A parent owns its
// children exclusively; the parent pointer is a non-owning back-reference
// used only for upward transform composition. Only the two angle
// accumulators mutate after construction, once per simulation step.
type Body struct {
	Name string
	BodyParams

	orbitAngle float64 // radians
	spinAngle  float64 // degrees

	parent   *Body
	children []*Body

	trail *Trail
}

// NewBody constructs a root body. Attach it under another body with
// AddChild to place it in an existing system.
func NewBody(name string, p BodyParams) *Body {
	return &Body{
		Name:       name,
		BodyParams: p,
		orbitAngle: p.Phase,
	}
}

// AddChild creates a body from p and attaches it under b. The child is
// returned so subtrees can be built by chaining.
func (b *Body) AddChild(name string, p BodyParams) *Body {
	c := NewBody(name, p)
	c.parent = b
	b.children = append(b.children, c)
	return c
}

// Parent returns the non-owning back-reference, nil for roots.
func (b *Body) Parent() *Body { return b.parent }

// Children returns the owned child slice in update order.
func (b *Body) Children() []*Body { return b.children }

// AttachTrail gives the body a position-history trail, recorded on every
// update. Attaching twice resets the history.
func (b *Body) AttachTrail() *Trail {
	b.trail = NewTrail()
	return b.trail
}

// Trail returns the body's trail, nil when none was attached.
func (b *Body) Trail() *Trail { return b.trail }

// OrbitAngle returns the current orbit angle in radians.
func (b *Body) OrbitAngle() float64 { return b.orbitAngle }

// SpinAngle returns the current self-rotation angle in degrees.
func (b *Body) SpinAngle() float64 { return b.spinAngle }

// Update advances the body's orbit and spin by dt seconds scaled by the
// global speed multiplier, records a trail sample if the body owns a
// trail, then updates every child in order. Call it once per simulation
// step on every root, with dt = 0 while paused.
func (b *Body) Update(dt, speed float64) {
	if b.OrbitPeriod > periodEpsilon {
		b.orbitAngle += (2 * math.Pi / b.OrbitPeriod) * dt * speed
	}
	b.spinAngle += b.SpinSpeed * dt * speed

	if b.trail != nil {
		b.trail.Record(b.WorldPosition())
	}
	for _, c := range b.children {
		c.Update(dt, speed)
	}
}

// localTransform places the body in its parent's frame. The order is
// load-bearing: the orbit translation happens in the parent's untilted
// frame, the inclination then tilts the orbital plane, spin rotates the
// body about its already-tilted axis, and the uniform scale comes last.
func (b *Body) localTransform() mgl32.Mat4 {
	x := float32(b.OrbitRadius * math.Cos(b.orbitAngle))
	z := float32(b.OrbitRadius * math.Sin(b.orbitAngle))
	m := mgl32.Translate3D(x, 0, z)
	m = m.Mul4(mgl32.HomogRotate3DX(radians(b.Inclination)))
	m = m.Mul4(mgl32.HomogRotate3DY(radians(math.Mod(b.spinAngle, 360))))
	return m.Mul4(mgl32.Scale3D(b.Radius, b.Radius, b.Radius))
}

// WorldTransform returns the body's placement in the top-level scene
// frame, chaining local transforms up through all ancestors.
func (b *Body) WorldTransform() mgl32.Mat4 {
	local := b.localTransform()
	if b.parent == nil {
		return local
	}
	return b.parent.WorldTransform().Mul4(local)
}

// WorldPosition is the translation component of WorldTransform.
func (b *Body) WorldPosition() mgl32.Vec3 {
	return b.WorldTransform().Col(3).Vec3()
}

// FindByName searches the subtree rooted at b depth-first and returns the
// first body with the given name, or nil. Callers treat nil as a no-op.
func (b *Body) FindByName(name string) *Body {
	if b.Name == name {
		return b
	}
	for _, c := range b.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits b and every descendant depth-first.
func (b *Body) Walk(fn func(*Body)) {
	fn(b)
	for _, c := range b.children {
		c.Walk(fn)
	}
}

func radians(deg float64) float32 {
	return float32(deg * math.Pi / 180)
}
