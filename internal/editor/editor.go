// Package editor wires the painter core together and advances it one
// simulation tick at a time.
package editor

import (
	"log"

	"github.com/gravitas-games/hexpaint/internal/bridge"
	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/input"
	"github.com/gravitas-games/hexpaint/internal/paint"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

// Options configures an Editor.
type Options struct {
	InitialTiles int
	Layout       hex.Layout
	Camera       camera.Options
	InitialTool  terrain.Tag
	// HighlightRadius is the movement range shown around the hovered cell.
	HighlightRadius int
	// Viewport is the initial view size; hosts may resize it through input
	// frames.
	Viewport hex.Point
	// Projector overrides the orthographic projection built from Viewport.
	Projector camera.Projector
}

// Report summarizes one tick.
type Report struct {
	Tick            uint64
	Paint           paint.Result
	Tool            terrain.Tag
	ToolChanges     []ToolChange
	LabelToggles    int
	Labels          bool
	Camera          camera.State
	ViewportResized bool
}

// ToolChange records the resolution of one tool selection command.
type ToolChange struct {
	Name     string
	Tag      terrain.Tag
	Resolved bool // false when Name was unknown and the fallback was used
}

// Editor owns the tile store, paint state, camera and label flag. It is not
// safe for concurrent use; the bridge is the only way in from other
// goroutines.
type Editor struct {
	store   *tilemap.Store
	painter *paint.Controller
	camera  *camera.Controller
	bridge  *bridge.Bridge
	layout  hex.Layout

	proj      camera.Projector
	trackView bool
	viewport  hex.Point

	labels bool
	tick   uint64
}

// New creates an editor draining commands from b.
func New(opts Options, b *bridge.Bridge) *Editor {
	store := tilemap.New(opts.InitialTiles)
	e := &Editor{
		store:  store,
		camera: camera.New(opts.Camera),
		bridge: b,
		layout: opts.Layout,
		painter: paint.New(store, paint.Options{
			Layout:          opts.Layout,
			InitialTool:     opts.InitialTool,
			HighlightRadius: opts.HighlightRadius,
		}),
		proj:     opts.Projector,
		viewport: opts.Viewport,
	}
	if e.proj == nil {
		e.trackView = true
		e.proj = camera.Ortho{Width: opts.Viewport.X, Height: opts.Viewport.Y}
	}
	return e
}

// Tick runs one simulation step: drain host commands, resolve and paint the
// hovered cell, then move the camera.
func (e *Editor) Tick(in input.Frame) Report {
	e.tick++
	rep := Report{Tick: e.tick}

	cmds := e.bridge.Drain()
	for _, cmd := range cmds.Tools {
		tag, ok := terrain.Parse(cmd.Name)
		if !ok {
			tag = terrain.Fallback
			log.Printf("Unknown tool %q, using %s", cmd.Name, tag)
		} else {
			log.Printf("Tool selected: %s", tag)
		}
		e.painter.SetTool(tag)
		rep.ToolChanges = append(rep.ToolChanges, ToolChange{Name: cmd.Name, Tag: tag, Resolved: ok})
	}
	for range cmds.Labels {
		e.labels = !e.labels
		rep.LabelToggles++
		log.Printf("Tile labels visible: %v", e.labels)
	}

	if e.trackView && in.Viewport != (hex.Point{}) && in.Viewport != e.viewport {
		e.viewport = in.Viewport
		e.proj = camera.Ortho{Width: in.Viewport.X, Height: in.Viewport.Y}
		rep.ViewportResized = true
	}

	rep.Paint = e.painter.Tick(in, e.camera.State(), e.proj)

	e.camera.Zoom(in.Wheel)
	e.camera.Pan(in.Pan, in.Dt)

	rep.Tool = e.painter.Tool()
	rep.Labels = e.labels
	rep.Camera = e.camera.State()
	return rep
}

// Store returns the tile store.
func (e *Editor) Store() *tilemap.Store { return e.store }

// Painter returns the paint controller.
func (e *Editor) Painter() *paint.Controller { return e.painter }

// Camera returns the current camera state.
func (e *Editor) Camera() camera.State { return e.camera.State() }

// Layout returns the pixel layout of the lattice.
func (e *Editor) Layout() hex.Layout { return e.layout }

// Labels reports whether tile labels are visible.
func (e *Editor) Labels() bool { return e.labels }

// Ticks returns the number of ticks run so far.
func (e *Editor) Ticks() uint64 { return e.tick }
