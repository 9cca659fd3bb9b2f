package server

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gravitas-games/hexpaint/internal/bridge"
	"github.com/gravitas-games/hexpaint/internal/config"
	"github.com/gravitas-games/hexpaint/internal/editor"
	"github.com/gravitas-games/hexpaint/internal/input"
	"github.com/gravitas-games/hexpaint/internal/network"
	"github.com/gravitas-games/hexpaint/internal/paint"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/pkg/models"
)

// ErrSessionFull is returned when max_hosts hosts are already connected.
var ErrSessionFull = errors.New("session is full")

// Session owns one editor and the hosts driving it
type Session struct {
	ID        string
	CreatedAt time.Time

	// Host management
	hosts       map[string]*models.Host // connectionID -> Host
	connections map[string]*Connection  // connectionID -> Connection
	mu          sync.RWMutex

	// The editor is only touched by Step and Inspect, serialized by edMu.
	editor *editor.Editor
	edMu   sync.Mutex

	Bridge *bridge.Bridge
	Latch  *input.Latch

	tickRate int
	maxHosts int
	metrics  *Metrics
	lastTick time.Time
}

// NewSession creates a new editing session
func NewSession(id string, cfg *config.Config, metrics *Metrics) *Session {
	log.Printf("Creating session: %s", id)

	layout, _ := cfg.Geometry()
	b := bridge.New()
	ed := editor.New(editor.Options{
		InitialTiles:    cfg.Grid.InitialTiles,
		Layout:          layout,
		Camera:          cfg.CameraOptions(),
		InitialTool:     cfg.InitialTool(),
		HighlightRadius: cfg.Paint.HighlightRadius,
		Viewport:        cfg.Viewport(),
	}, b)

	s := &Session{
		ID:          id,
		CreatedAt:   time.Now(),
		hosts:       make(map[string]*models.Host),
		connections: make(map[string]*Connection),
		editor:      ed,
		Bridge:      b,
		Latch:       input.NewLatch(),
		tickRate:    cfg.Server.TickRate,
		maxHosts:    cfg.Host.MaxHosts,
		metrics:     metrics,
	}
	metrics.Tiles.Set(float64(ed.Store().Len()))

	log.Printf("Session %s created with %d tiles", id, ed.Store().Len())
	return s
}

// Run ticks the editor at the configured rate until ctx is done.
func (s *Session) Run(ctx context.Context) {
	interval := time.Second / time.Duration(s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Session %s running at %d Hz", s.ID, s.tickRate)
	s.lastTick = time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Session %s stopped", s.ID)
			return
		case now := <-ticker.C:
			dt := now.Sub(s.lastTick).Seconds()
			s.lastTick = now
			s.Step(dt)
		}
	}
}

// Step samples host input, runs one editor tick and broadcasts the result.
func (s *Session) Step(dt float64) editor.Report {
	frame := s.Latch.Snapshot(dt)

	start := time.Now()
	s.edMu.Lock()
	rep := s.editor.Tick(frame)
	tiles := s.editor.Store().Len()
	s.edMu.Unlock()
	s.metrics.TickDuration.Observe(time.Since(start).Seconds())

	s.record(rep, tiles)
	s.broadcastReport(rep)
	return rep
}

func (s *Session) record(rep editor.Report, tiles int) {
	s.metrics.Tiles.Set(float64(tiles))
	if n := len(rep.ToolChanges); n > 0 {
		s.metrics.CommandsDrained.WithLabelValues("tool").Add(float64(n))
	}
	if rep.LabelToggles > 0 {
		s.metrics.CommandsDrained.WithLabelValues("labels").Add(float64(rep.LabelToggles))
	}
	if rep.Paint.State == paint.Painting {
		s.metrics.TilesPainted.Inc()
		if rep.Paint.Created {
			s.metrics.TilesCreated.Inc()
		}
	}
}

func (s *Session) broadcastReport(rep editor.Report) {
	if s.HostCount() == 0 {
		return
	}
	frame := network.FramePayload{
		Tick:        rep.Tick,
		State:       rep.Paint.State.String(),
		Tool:        rep.Tool.String(),
		Labels:      rep.Labels,
		Zoom:        rep.Camera.Zoom,
		TranslateX:  rep.Camera.Translation.X,
		TranslateY:  rep.Camera.Translation.Y,
		ToolChanged: len(rep.ToolChanges) > 0,
	}
	if rep.Paint.State != paint.Idle {
		idx := uint64(rep.Paint.Index)
		frame.Hovered = &idx
	}
	s.BroadcastMessage(&network.ServerMessage{Type: network.MsgTypeFrame, Payload: frame})

	if rep.Paint.State == paint.Painting {
		c := rep.Paint.Cube
		s.BroadcastMessage(&network.ServerMessage{
			Type: network.MsgTypeTilePainted,
			Payload: network.TilePaintedPayload{
				Index:   uint64(rep.Paint.Index),
				Q:       c.Q,
				R:       c.R,
				S:       c.S,
				Tag:     rep.Paint.Tag.String(),
				Created: rep.Paint.Created,
			},
		})
	}
}

// Inspect runs fn with exclusive access to the editor, between ticks.
func (s *Session) Inspect(fn func(e *editor.Editor)) {
	s.edMu.Lock()
	defer s.edMu.Unlock()
	fn(s.editor)
}

// AddHost adds a connected host to the session. The same account may be
// connected more than once, so hosts are keyed by connection.
func (s *Session) AddHost(conn *Connection) error {
	host := conn.host
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxHosts > 0 && len(s.hosts) >= s.maxHosts {
		return ErrSessionFull
	}
	host.Connected = true
	host.ConnectedAt = time.Now()
	host.SessionID = s.ID
	s.hosts[conn.id] = host
	s.connections[conn.id] = conn
	s.metrics.Hosts.Set(float64(len(s.hosts)))

	log.Printf("Host %s (%s) joined session %s", host.Username, host.ID, s.ID)
	return nil
}

// RemoveHost removes a connection from the session and releases any input
// it held
func (s *Session) RemoveHost(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if host, exists := s.hosts[connID]; exists {
		log.Printf("Host %s (%s) left session %s", host.Username, host.ID, s.ID)
		host.Connected = false
		delete(s.hosts, connID)
		delete(s.connections, connID)
		s.metrics.Hosts.Set(float64(len(s.hosts)))
		s.Latch.Release()
	}
}

// Hosts returns a copy of every connected host
func (s *Session) Hosts() []models.Host {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts := make([]models.Host, 0, len(s.hosts))
	for _, h := range s.hosts {
		hosts = append(hosts, *h)
	}
	return hosts
}

// HostCount returns the number of connected hosts
func (s *Session) HostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hosts)
}

// BroadcastMessage sends a message to all connected hosts
func (s *Session) BroadcastMessage(msg *network.ServerMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conn := range s.connections {
		conn.SendMessage(msg)
	}
}

// Status returns the current editor status
func (s *Session) Status() network.EditorStatus {
	status := network.EditorStatus{
		HostCount: s.HostCount(),
		MaxHosts:  s.maxHosts,
		Uptime:    int64(time.Since(s.CreatedAt).Seconds()),
	}
	s.Inspect(func(e *editor.Editor) {
		status.Tick = e.Ticks()
		status.Tiles = e.Store().Len()
		status.Terrain = make(map[string]int)
		for tag, n := range e.Store().Counts() {
			status.Terrain[tag.String()] = n
		}
		status.Tool = e.Painter().Tool().String()
		status.Labels = e.Labels()
		status.Zoom = e.Camera().Zoom
	})
	return status
}

// ToolInfos lists the selectable tools with their artwork inside assetDir
func ToolInfos(assetDir string) []network.ToolInfo {
	tools := terrain.Tools()
	infos := make([]network.ToolInfo, 0, len(tools))
	for _, t := range tools {
		infos = append(infos, network.ToolInfo{
			Name:  t.Name,
			Label: t.Label,
			Asset: terrain.AssetPath(assetDir, t.Tag),
		})
	}
	return infos
}
