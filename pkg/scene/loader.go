package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// BodySpec is one body entry of a scene file. Parents must be declared
// before the bodies that reference them, which keeps the graph acyclic by
// construction.
type BodySpec struct {
	Name        string     `yaml:"name"`
	Parent      string     `yaml:"parent,omitempty"`
	Radius      float32    `yaml:"radius"`
	OrbitRadius float64    `yaml:"orbit_radius"`
	OrbitPeriod float64    `yaml:"orbit_period"`
	Inclination float64    `yaml:"inclination_deg"`
	Phase       float64    `yaml:"phase_deg"`
	SpinSpeed   float64    `yaml:"spin_deg_per_sec"`
	Color       [4]float32 `yaml:"color,flow"`
	Emissive    bool       `yaml:"emissive,omitempty"`
	Trail       bool       `yaml:"trail,omitempty"`
}

// SceneFile is the top-level structure of a YAML scene description.
type SceneFile struct {
	Bodies []BodySpec `yaml:"bodies"`
}

// LoadFile reads and validates a YAML scene description.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	return Build(sf)
}

// Build turns a scene description into a body forest. Every body name
// must be unique, radii must be positive, and parents must refer to
// previously declared bodies.
func Build(sf SceneFile) (*Scene, error) {
	if len(sf.Bodies) == 0 {
		return nil, fmt.Errorf("scene has no bodies")
	}
	byName := make(map[string]*Body, len(sf.Bodies))
	var roots []*Body
	for i, spec := range sf.Bodies {
		if spec.Name == "" {
			return nil, fmt.Errorf("body %d: missing name", i)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("body %q: duplicate name", spec.Name)
		}
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("body %q: radius must be > 0", spec.Name)
		}
		if spec.OrbitRadius < 0 {
			return nil, fmt.Errorf("body %q: orbit_radius must be >= 0", spec.Name)
		}
		params := BodyParams{
			Radius:      spec.Radius,
			OrbitRadius: spec.OrbitRadius,
			OrbitPeriod: spec.OrbitPeriod,
			Inclination: spec.Inclination,
			Phase:       spec.Phase * math.Pi / 180,
			SpinSpeed:   spec.SpinSpeed,
			Color:       Color(spec.Color),
			Emissive:    spec.Emissive,
		}
		var b *Body
		if spec.Parent == "" {
			b = NewBody(spec.Name, params)
			roots = append(roots, b)
		} else {
			parent, ok := byName[spec.Parent]
			if !ok {
				return nil, fmt.Errorf("body %q: unknown parent %q (parents must be declared first)", spec.Name, spec.Parent)
			}
			b = parent.AddChild(spec.Name, params)
		}
		if spec.Trail {
			b.AttachTrail()
		}
		byName[spec.Name] = b
	}
	return New(roots...), nil
}
