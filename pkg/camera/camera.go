// Package camera implements the spherical orbit camera: a radius/azimuth/
// elevation offset from a target point, optionally slaved to a tracked
// body's world position.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/helioviz/orrery/pkg/scene"
)

const (
	// MinRadius and MaxRadius bound the zoom distance.
	MinRadius = 2.0
	MaxRadius = 200.0

	// ZoomInFactor and ZoomOutFactor are the per-event multiplicative zoom
	// steps. They are deliberately asymmetric.
	ZoomInFactor  = 0.92
	ZoomOutFactor = 1.08

	// maxElevation keeps the camera off the poles to avoid gimbal flip.
	maxElevation = 89.9

	dragSensitivity = 0.25 // degrees per drag pixel

	focusDistanceScale = 3.5
	focusAzimuth       = 45.0
	focusElevation     = 20.0
)

// Orbit is the camera state. Out-of-range input is clamped in place
// rather than rejected, so it never carries an error state.
type Orbit struct {
	radius    float64
	azimuth   float64 // degrees
	elevation float64 // degrees
	target    mgl32.Vec3

	tracked *scene.Body // non-owning; nil when the camera is free

	defaultRadius    float64
	defaultAzimuth   float64
	defaultElevation float64
}

// NewOrbit builds a camera at the given spherical defaults, targeting the
// origin. The defaults are what Reset restores.
func NewOrbit(radius, azimuthDeg, elevationDeg float64) *Orbit {
	o := &Orbit{
		defaultRadius:    clamp(radius, MinRadius, MaxRadius),
		defaultAzimuth:   azimuthDeg,
		defaultElevation: clamp(elevationDeg, -maxElevation, maxElevation),
	}
	o.Reset()
	return o
}

// Drag applies a pointer-drag delta in pixels: 0.25 degrees per pixel,
// elevation clamped short of vertical.
func (o *Orbit) Drag(dx, dy float64) {
	o.azimuth += dx * dragSensitivity
	o.elevation = clamp(o.elevation+dy*dragSensitivity, -maxElevation, maxElevation)
}

// Zoom scales the radius by factor and clamps it to [MinRadius, MaxRadius].
// Applied per discrete input event, not per frame.
func (o *Orbit) Zoom(factor float64) {
	o.radius = clamp(o.radius*factor, MinRadius, MaxRadius)
}

// ZoomIn applies one inward zoom step.
func (o *Orbit) ZoomIn() { o.Zoom(ZoomInFactor) }

// ZoomOut applies one outward zoom step.
func (o *Orbit) ZoomOut() { o.Zoom(ZoomOutFactor) }

// Focus slaves the camera to b, framing it at a distance proportional to
// its render radius from a fixed three-quarter angle. The focus distance
// is intentionally not clamped, so small bodies can be framed closer than
// MinRadius.
func (o *Orbit) Focus(b *scene.Body) {
	if b == nil {
		return
	}
	o.tracked = b
	o.radius = float64(b.Radius) * focusDistanceScale
	o.azimuth = focusAzimuth
	o.elevation = focusElevation
}

// Reset clears the tracked body, recenters on the origin and restores the
// configured defaults.
func (o *Orbit) Reset() {
	o.tracked = nil
	o.target = mgl32.Vec3{}
	o.radius = o.defaultRadius
	o.azimuth = o.defaultAzimuth
	o.elevation = o.defaultElevation
}

// Tracked returns the followed body, nil when the camera is free.
func (o *Orbit) Tracked() *scene.Body { return o.tracked }

// Radius returns the current distance from the target.
func (o *Orbit) Radius() float64 { return o.radius }

// Azimuth returns the horizontal angle in degrees.
func (o *Orbit) Azimuth() float64 { return o.azimuth }

// Elevation returns the vertical angle in degrees.
func (o *Orbit) Elevation() float64 { return o.elevation }

// Target returns the point the camera orbits.
func (o *Orbit) Target() mgl32.Vec3 { return o.target }

// ViewTransform refreshes the target from the tracked body (if any),
// derives the eye position from the spherical offset and returns the
// look-at matrix with up fixed at +Y. Call once per frame, after the
// simulation step. With no state change between calls the result is
// identical.
func (o *Orbit) ViewTransform() mgl32.Mat4 {
	if o.tracked != nil {
		o.target = o.tracked.WorldPosition()
	}
	az := o.azimuth * math.Pi / 180
	el := o.elevation * math.Pi / 180
	eye := o.target.Add(mgl32.Vec3{
		float32(o.radius * math.Cos(el) * math.Sin(az)),
		float32(o.radius * math.Sin(el)),
		float32(o.radius * math.Cos(el) * math.Cos(az)),
	})
	return mgl32.LookAtV(eye, o.target, mgl32.Vec3{0, 1, 0})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
