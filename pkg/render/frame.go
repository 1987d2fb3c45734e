// Package render assembles the read-only per-frame state an external
// renderer consumes: world transforms, bounded trail chunks and orbit
// rings. It issues no draw calls and owns no GPU resources.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/helioviz/orrery/pkg/camera"
	"github.com/helioviz/orrery/pkg/scene"
)

// TrailChunkSize bounds the number of points handed to a single trail
// draw call. Consecutive chunks share one point so the line connects.
const TrailChunkSize = 100

// DrawItem is one body ready for drawing.
type DrawItem struct {
	Name     string
	Model    mgl32.Mat4
	Color    scene.Color
	Emissive bool
}

// TrailChunk is a bounded slice of one body's trail with its fade alpha.
type TrailChunk struct {
	Body   string
	Points []mgl32.Vec3
	Alpha  float32
}

// Frame is everything the render stage needs for one frame. Slices alias
// live scene data and are valid until the next simulation step. Draw
// order for correct overdraw is rings, then trails, then bodies.
type Frame struct {
	View   mgl32.Mat4
	Rings  []scene.Ring
	Trails []TrailChunk
	Bodies []DrawItem
}

// BuildFrame captures the scene and camera after a simulation step. It
// must run in the same goroutine as the step: the frame discipline is
// update tree, refresh camera, build frame, draw.
func BuildFrame(s *scene.Scene, cam *camera.Orbit) *Frame {
	f := &Frame{View: cam.ViewTransform()}
	f.Rings = s.OrbitRings()
	s.Walk(func(b *scene.Body) {
		if tr := b.Trail(); tr != nil {
			f.Trails = append(f.Trails, ChunkTrail(b.Name, tr)...)
		}
		f.Bodies = append(f.Bodies, DrawItem{
			Name:     b.Name,
			Model:    b.WorldTransform(),
			Color:    b.Color,
			Emissive: b.Emissive,
		})
	})
	return f
}

// ChunkTrail splits a trail into TrailChunkSize-point chunks overlapping
// by one point. A trail with fewer than two points yields nothing, since
// no segment can be drawn.
func ChunkTrail(body string, t *scene.Trail) []TrailChunk {
	pts := t.Points()
	var chunks []TrailChunk
	for start := 0; start < len(pts)-1; start += TrailChunkSize - 1 {
		end := start + TrailChunkSize
		if end > len(pts) {
			end = len(pts)
		}
		chunks = append(chunks, TrailChunk{
			Body:   body,
			Points: pts[start:end],
			Alpha:  chunkAlpha(start, len(pts)),
		})
		if end == len(pts) {
			break
		}
	}
	return chunks
}

// chunkAlpha fades a chunk by its age relative to the capacity window:
// the chunk start's distance from the window end plus the unfilled
// remainder of the window. With a full trail the age never exceeds the
// capacity and every chunk stays fully opaque; only a still-filling trail
// crosses the threshold. See DESIGN.md before changing this.
func chunkAlpha(start, total int) float32 {
	age := (scene.TrailCapacity - start) + (scene.TrailCapacity - total)
	if age <= scene.TrailCapacity {
		return 1
	}
	a := 1 - float32(age-scene.TrailCapacity)/float32(scene.TrailCapacity)
	if a < 0 {
		return 0
	}
	return a
}

// Projection is the standard perspective transform for renderers
// consuming Frame data: 45 degree vertical field of view, near 0.1,
// far 500.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 500)
}
