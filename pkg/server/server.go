// Package server drives the simulation at a fixed tick rate and streams
// per-frame render state to websocket clients. One goroutine owns the
// scene and camera; client input arrives over a channel and is applied
// between steps, so the per-frame ordering is always update tree, refresh
// camera, build frame, broadcast.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/helioviz/orrery/internal/types"
	"github.com/helioviz/orrery/pkg/camera"
	"github.com/helioviz/orrery/pkg/render"
	"github.com/helioviz/orrery/pkg/scene"
	"github.com/helioviz/orrery/pkg/telemetry"
)

const (
	writeWait      = 5 * time.Second
	clientSendSlot = 4 // frames buffered per client before drops
	inputQueue     = 64
)

// Server owns one scene, one camera and the set of connected clients.
type Server struct {
	addr      string
	frameRate int

	scene *scene.Scene
	cam   *camera.Orbit
	stats *telemetry.FrameStats

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	inputs chan types.InputEvent

	seq     uint64
	simTime float64
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New builds a server around an existing scene and camera. statsWindow
// sizes the frame-timing ring.
func New(addr string, frameRate, statsWindow int, sc *scene.Scene, cam *camera.Orbit) *Server {
	return &Server{
		addr:      addr,
		frameRate: frameRate,
		scene:     sc,
		cam:       cam,
		stats:     telemetry.NewFrameStats(statsWindow),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		inputs:  make(chan types.InputEvent, inputQueue),
	}
}

// Run serves HTTP and drives the frame loop until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS)
	r.HandleFunc("/api/bodies", s.handleBodies).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: s.addr, Handler: r}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("orrery listening on %s (%d fps)", s.addr, s.frameRate)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		s.frameLoop(ctx)
	}()

	select {
	case <-ctx.Done():
		<-loopDone
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	}
}

// frameLoop is the single owner of scene and camera state.
func (s *Server) frameLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.frameRate))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.inputs:
			s.apply(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			start := time.Now()
			s.stepFrame(dt)
			s.stats.Observe(time.Since(start).Seconds())
		}
	}
}

func (s *Server) stepFrame(dt float64) {
	s.scene.Step(dt)
	if !s.scene.Sim.Paused {
		s.simTime += dt * s.scene.Sim.Speed
	}
	f := render.BuildFrame(s.scene, s.cam)
	s.seq++
	data, err := json.Marshal(encodeFrame(f, s.seq, s.simTime, s.scene.Sim))
	if err != nil {
		log.Printf("encode frame: %v", err)
		return
	}
	s.broadcast(data)
}

func (s *Server) apply(ev types.InputEvent) {
	switch ev.Type {
	case types.InputDrag:
		s.cam.Drag(ev.DX, ev.DY)
	case types.InputZoomIn:
		s.cam.ZoomIn()
	case types.InputZoomOut:
		s.cam.ZoomOut()
	case types.InputFocus:
		// Unknown names are a no-op, Focus ignores nil.
		s.cam.Focus(s.scene.FindByName(ev.Body))
	case types.InputReset:
		s.cam.Reset()
	case types.InputPause:
		s.scene.Sim.Paused = ev.Paused
	case types.InputSpeed:
		if ev.Speed > 0 {
			s.scene.Sim.Speed = ev.Speed
		}
	default:
		log.Printf("ignoring unknown input type %q", ev.Type)
	}
}

func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Slow client: drop this frame rather than stall the loop.
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, clientSendSlot)}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("client connected (%d total)", n)

	go c.writeLoop()
	s.readLoop(c)
}

// readLoop parses input events until the connection drops.
func (s *Server) readLoop(c *client) {
	defer s.drop(c)
	c.conn.SetReadLimit(4096)
	for {
		var ev types.InputEvent
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("client read: %v", err)
			}
			return
		}
		select {
		case s.inputs <- ev:
		default:
			log.Printf("input queue full, dropping %q event", ev.Type)
		}
	}
}

func (c *client) writeLoop() {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	n := len(s.clients)
	s.mu.Unlock()
	c.conn.Close()
	log.Printf("client disconnected (%d total)", n)
}

// handleBodies lists body names for focus UIs. The forest's structure is
// fixed after setup; only the angle accumulators mutate, so this read is
// safe concurrent with the frame loop.
func (s *Server) handleBodies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.scene.BodyNames())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.stats.Summarize())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
