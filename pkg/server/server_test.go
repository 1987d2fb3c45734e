package server

import (
	"testing"

	"github.com/helioviz/orrery/internal/types"
	"github.com/helioviz/orrery/pkg/camera"
	"github.com/helioviz/orrery/pkg/render"
	"github.com/helioviz/orrery/pkg/scene"
)

func newTestServer() *Server {
	sc := scene.Default()
	cam := camera.NewOrbit(18, 35, 25)
	return New(":0", 60, 64, sc, cam)
}

func TestApplyInputEvents(t *testing.T) {
	s := newTestServer()

	s.apply(types.InputEvent{Type: types.InputDrag, DX: 8, DY: 4})
	if s.cam.Azimuth() != 37 || s.cam.Elevation() != 26 {
		t.Errorf("camera after drag = (%v, %v), want (37, 26)", s.cam.Azimuth(), s.cam.Elevation())
	}

	before := s.cam.Radius()
	s.apply(types.InputEvent{Type: types.InputZoomIn})
	if s.cam.Radius() >= before {
		t.Error("zoom_in did not reduce radius")
	}
	s.apply(types.InputEvent{Type: types.InputZoomOut})

	s.apply(types.InputEvent{Type: types.InputFocus, Body: "Moon"})
	if s.cam.Tracked() == nil || s.cam.Tracked().Name != "Moon" {
		t.Error("focus event did not track Moon")
	}

	// Unknown names fall through to a no-op, keeping the current track.
	s.apply(types.InputEvent{Type: types.InputFocus, Body: "Nibiru"})
	if s.cam.Tracked() == nil || s.cam.Tracked().Name != "Moon" {
		t.Error("focus on unknown body changed tracking")
	}

	s.apply(types.InputEvent{Type: types.InputReset})
	if s.cam.Tracked() != nil {
		t.Error("reset left a tracked body")
	}

	s.apply(types.InputEvent{Type: types.InputPause, Paused: true})
	if !s.scene.Sim.Paused {
		t.Error("pause event not applied")
	}
	s.apply(types.InputEvent{Type: types.InputSpeed, Speed: 2.5})
	if s.scene.Sim.Speed != 2.5 {
		t.Errorf("speed = %v, want 2.5", s.scene.Sim.Speed)
	}
	// Non-positive speeds are ignored rather than freezing the scene.
	s.apply(types.InputEvent{Type: types.InputSpeed, Speed: 0})
	if s.scene.Sim.Speed != 2.5 {
		t.Errorf("speed = %v after zero-speed event, want 2.5", s.scene.Sim.Speed)
	}
}

func TestStepFrameAdvancesClock(t *testing.T) {
	s := newTestServer()

	s.stepFrame(0.1)
	s.stepFrame(0.1)
	if s.seq != 2 {
		t.Errorf("seq = %d, want 2", s.seq)
	}
	if s.simTime <= 0 {
		t.Errorf("simTime = %v, want > 0", s.simTime)
	}

	// Paused frames keep streaming but stop the simulation clock.
	frozen := s.simTime
	s.scene.Sim.Paused = true
	s.stepFrame(0.1)
	if s.seq != 3 {
		t.Errorf("seq = %d, want 3 (frames continue while paused)", s.seq)
	}
	if s.simTime != frozen {
		t.Errorf("simTime advanced while paused: %v -> %v", frozen, s.simTime)
	}
}

func TestEncodeFrameShape(t *testing.T) {
	s := newTestServer()
	for i := 0; i < 5; i++ {
		s.scene.Step(0.1)
	}
	f := render.BuildFrame(s.scene, s.cam)

	p := encodeFrame(f, 7, 1.25, s.scene.Sim)
	if p.Seq != 7 || p.Time != 1.25 {
		t.Errorf("header = seq %d time %v", p.Seq, p.Time)
	}
	if len(p.Bodies) != len(f.Bodies) {
		t.Errorf("encoded %d bodies, frame has %d", len(p.Bodies), len(f.Bodies))
	}
	if len(p.Trails) != len(f.Trails) {
		t.Errorf("encoded %d trail chunks, frame has %d", len(p.Trails), len(f.Trails))
	}
	if len(p.Rings) != len(f.Rings) {
		t.Errorf("encoded %d rings, frame has %d", len(p.Rings), len(f.Rings))
	}
	for i, r := range p.Rings {
		if len(r.Points) != len(f.Rings[i].Points) {
			t.Errorf("ring %d: %d points encoded, want %d", i, len(r.Points), len(f.Rings[i].Points))
		}
	}
	if p.View != [16]float32(f.View) {
		t.Error("view matrix not carried through")
	}
}
