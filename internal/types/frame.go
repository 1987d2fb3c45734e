package types

// FramePayload is the per-tick message streamed to render clients over
// the websocket. Matrices are column-major float32, matching what the
// client uploads as uniforms.
type FramePayload struct {
	Seq    uint64       `json:"seq"`
	Time   float64      `json:"time"` // accumulated simulation seconds
	Paused bool         `json:"paused"`
	Speed  float64      `json:"speed"`
	View   [16]float32  `json:"view"`
	Bodies []BodyState  `json:"bodies"`
	Trails []TrailChunk `json:"trails"`
	Rings  []RingState  `json:"rings"`
}

// BodyState is one body's draw state.
type BodyState struct {
	Name     string      `json:"name"`
	Model    [16]float32 `json:"model"`
	Color    [4]float32  `json:"color"`
	Emissive bool        `json:"emissive"`
}

// TrailChunk is a bounded run of trail points with its fade alpha.
type TrailChunk struct {
	Body   string       `json:"body"`
	Alpha  float32      `json:"alpha"`
	Points [][3]float32 `json:"points"`
}

// RingState is one tessellated orbit ring. Body is empty for the shared
// root-pair ring.
type RingState struct {
	Body   string       `json:"body,omitempty"`
	Points [][3]float32 `json:"points"`
}

// InputEvent is a control message from a render client.
type InputEvent struct {
	Type   string  `json:"type"` // drag, zoom_in, zoom_out, focus, reset, pause, speed
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Body   string  `json:"body,omitempty"`
	Paused bool    `json:"paused,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
}

// Input event types.
const (
	InputDrag    = "drag"
	InputZoomIn  = "zoom_in"
	InputZoomOut = "zoom_out"
	InputFocus   = "focus"
	InputReset   = "reset"
	InputPause   = "pause"
	InputSpeed   = "speed"
)
