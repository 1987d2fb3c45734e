package server

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/helioviz/orrery/internal/types"
	"github.com/helioviz/orrery/pkg/render"
	"github.com/helioviz/orrery/pkg/scene"
)

// encodeFrame flattens a render.Frame into the wire payload.
func encodeFrame(f *render.Frame, seq uint64, simTime float64, sim scene.SimContext) types.FramePayload {
	p := types.FramePayload{
		Seq:    seq,
		Time:   simTime,
		Paused: sim.Paused,
		Speed:  sim.Speed,
		View:   [16]float32(f.View),
		Bodies: make([]types.BodyState, 0, len(f.Bodies)),
		Trails: make([]types.TrailChunk, 0, len(f.Trails)),
		Rings:  make([]types.RingState, 0, len(f.Rings)),
	}
	for _, b := range f.Bodies {
		p.Bodies = append(p.Bodies, types.BodyState{
			Name:     b.Name,
			Model:    [16]float32(b.Model),
			Color:    [4]float32(b.Color),
			Emissive: b.Emissive,
		})
	}
	for _, t := range f.Trails {
		p.Trails = append(p.Trails, types.TrailChunk{
			Body:   t.Body,
			Alpha:  t.Alpha,
			Points: encodePoints(t.Points),
		})
	}
	for _, r := range f.Rings {
		p.Rings = append(p.Rings, types.RingState{
			Body:   r.Body,
			Points: encodePoints(r.Points),
		})
	}
	return p
}

func encodePoints(pts []mgl32.Vec3) [][3]float32 {
	out := make([][3]float32, len(pts))
	for i, p := range pts {
		out[i] = [3]float32(p)
	}
	return out
}
