// Package telemetry tracks frame pacing over a bounded window so slow
// frames show up in the stats endpoint and the bench command.
package telemetry

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// FrameStats keeps the most recent frame durations in a fixed ring.
// Observe is called from the frame loop; Summarize may be called from
// HTTP handlers, hence the mutex.
type FrameStats struct {
	mu     sync.Mutex
	window []float64 // seconds
	next   int
	filled bool
	frames uint64
}

// Summary is a point-in-time digest of the observation window.
type Summary struct {
	Frames   uint64  `json:"frames"`
	MeanMs   float64 `json:"mean_ms"`
	StddevMs float64 `json:"stddev_ms"`
	P50Ms    float64 `json:"p50_ms"`
	P99Ms    float64 `json:"p99_ms"`
	FPS      float64 `json:"fps"`
}

// NewFrameStats returns stats over a window of the given size.
func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = 240
	}
	return &FrameStats{window: make([]float64, window)}
}

// Observe records one frame duration in seconds.
func (f *FrameStats) Observe(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.window[f.next] = seconds
	f.next++
	if f.next == len(f.window) {
		f.next = 0
		f.filled = true
	}
	f.frames++
}

// Summarize digests the current window. An empty window yields a zero
// summary.
func (f *FrameStats) Summarize() Summary {
	f.mu.Lock()
	n := f.next
	if f.filled {
		n = len(f.window)
	}
	samples := make([]float64, n)
	copy(samples, f.window[:n])
	frames := f.frames
	f.mu.Unlock()

	if len(samples) == 0 {
		return Summary{Frames: frames}
	}

	mean := stat.Mean(samples, nil)
	var sd float64
	if len(samples) > 1 {
		sd = stat.StdDev(samples, nil)
	}
	sort.Float64s(samples)
	p50 := stat.Quantile(0.5, stat.Empirical, samples, nil)
	p99 := stat.Quantile(0.99, stat.Empirical, samples, nil)

	s := Summary{
		Frames:   frames,
		MeanMs:   mean * 1000,
		StddevMs: sd * 1000,
		P50Ms:    p50 * 1000,
		P99Ms:    p99 * 1000,
	}
	if mean > 0 {
		s.FPS = 1 / mean
	}
	return s
}
