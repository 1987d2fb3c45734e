package scene

// SimContext carries the session-wide simulation controls. It is part of
// the scene rather than process-global state, so tests and multiple scenes
// can hold independent contexts.
type SimContext struct {
	Paused bool
	Speed  float64
}

// Scene is a forest of independent root bodies sharing one simulation
// context. Root systems do not interact.
type Scene struct {
	Roots []*Body
	Sim   SimContext
}

// New builds a scene over the given roots with speed 1 and not paused.
func New(roots ...*Body) *Scene {
	return &Scene{Roots: roots, Sim: SimContext{Speed: 1}}
}

// Step advances every root subtree by dt seconds of elapsed wall-clock
// time. While paused the update still runs with dt = 0, which freezes
// motion without discarding any state.
func (s *Scene) Step(dt float64) {
	if s.Sim.Paused {
		dt = 0
	}
	for _, r := range s.Roots {
		r.Update(dt, s.Sim.Speed)
	}
}

// FindByName searches every root subtree in order and returns the first
// match, or nil.
func (s *Scene) FindByName(name string) *Body {
	for _, r := range s.Roots {
		if b := r.FindByName(name); b != nil {
			return b
		}
	}
	return nil
}

// Walk visits every body in the scene, roots first, each subtree
// depth-first.
func (s *Scene) Walk(fn func(*Body)) {
	for _, r := range s.Roots {
		r.Walk(fn)
	}
}

// BodyNames returns every body name in walk order.
func (s *Scene) BodyNames() []string {
	var names []string
	s.Walk(func(b *Body) { names = append(names, b.Name) })
	return names
}
