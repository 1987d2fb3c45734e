package scene

import "math"

// Default builds the built-in demonstration scene: two stars on a shared
// circular path about the origin, each carrying its own planetary
// subtree. The two systems never interact. Fast movers own trails so
// their paths render as curves.
func Default() *Scene {
	sun := NewBody("Sun", BodyParams{
		Radius:      1.6,
		OrbitRadius: 2.0,
		OrbitPeriod: 40,
		SpinSpeed:   4,
		Color:       Color{1.0, 0.85, 0.3, 1},
		Emissive:    true,
	})
	sun.AttachTrail()

	mercury := sun.AddChild("Mercury", BodyParams{
		Radius:      0.22,
		OrbitRadius: 3.2,
		OrbitPeriod: 8,
		Inclination: 7.0,
		SpinSpeed:   12,
		Color:       Color{0.71, 0.71, 0.71, 1},
	})
	mercury.AttachTrail()

	earth := sun.AddChild("Earth", BodyParams{
		Radius:      0.4,
		OrbitRadius: 5.0,
		OrbitPeriod: 16,
		Phase:       math.Pi / 3,
		SpinSpeed:   60,
		Color:       Color{0.18, 0.53, 0.67, 1},
	})
	earth.AttachTrail()

	moon := earth.AddChild("Moon", BodyParams{
		Radius:      0.11,
		OrbitRadius: 0.9,
		OrbitPeriod: 2.2,
		Inclination: 5.1,
		SpinSpeed:   10,
		Color:       Color{0.8, 0.8, 0.78, 1},
	})
	moon.AttachTrail()

	sun.AddChild("Mars", BodyParams{
		Radius:      0.3,
		OrbitRadius: 6.8,
		OrbitPeriod: 28,
		Inclination: 1.9,
		Phase:       math.Pi,
		SpinSpeed:   58,
		Color:       Color{0.77, 0.33, 0.2, 1},
	})

	sun2 := NewBody("Sun2", BodyParams{
		Radius:      1.2,
		OrbitRadius: 2.0,
		OrbitPeriod: 40,
		Phase:       math.Pi, // opposite side of the shared path
		SpinSpeed:   4,
		Color:       Color{0.95, 0.55, 0.25, 1},
		Emissive:    true,
	})
	sun2.AttachTrail()

	ember := sun2.AddChild("Ember", BodyParams{
		Radius:      0.35,
		OrbitRadius: 3.6,
		OrbitPeriod: 10,
		Inclination: 12,
		SpinSpeed:   45,
		Color:       Color{0.85, 0.45, 0.4, 1},
	})
	ember.AttachTrail()

	return New(sun, sun2)
}
