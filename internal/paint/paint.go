// Package paint implements the per-tick paint state machine: it resolves
// the hovered cell from pointer and camera and applies the active terrain
// tool while the primary button is held.
package paint

import (
	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/input"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

// State of the paint controller after a tick.
type State int

const (
	Idle State = iota
	Hovering
	Painting
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Painting:
		return "painting"
	default:
		return "idle"
	}
}

// HoverScale is the pop-out scale renderers apply to the hovered cell.
const HoverScale = 1.1

// Options configures a Controller.
type Options struct {
	Layout          hex.Layout
	InitialTool     terrain.Tag
	HighlightRadius int
}

// Result describes what a tick did.
type Result struct {
	State   State
	Index   hex.Index
	Cube    hex.Cube
	Tag     terrain.Tag // tag painted, when State is Painting
	Created bool        // painting created a new tile
}

// Controller owns the paint state. It is driven by the simulation
// goroutine only.
type Controller struct {
	layout hex.Layout
	store  *tilemap.Store
	radius int

	tool     terrain.Tag
	state    State
	hovered  hex.Index
	hoverHex hex.Cube
	reach    hex.Range
}

// New creates a controller painting into store.
func New(store *tilemap.Store, opts Options) *Controller {
	return &Controller{
		layout: opts.Layout,
		store:  store,
		radius: opts.HighlightRadius,
		tool:   opts.InitialTool,
	}
}

// Tick advances the state machine by one simulation step. A missing pointer,
// a pointer the projector cannot place (including a missing projector) or a
// position beyond the lattice leaves the controller Idle.
func (c *Controller) Tick(in input.Frame, cam camera.State, proj camera.Projector) Result {
	if !in.HasPointer || proj == nil {
		c.state = Idle
		return Result{State: Idle}
	}
	world, ok := proj.ViewportToWorld(in.Pointer, cam)
	if !ok {
		c.state = Idle
		return Result{State: Idle}
	}

	cube := c.layout.WorldToCube(world)
	index, ok := hex.IndexOf(cube)
	if !ok {
		c.state = Idle
		return Result{State: Idle}
	}
	c.hover(index, cube)

	res := Result{State: Hovering, Index: index, Cube: cube}
	if in.Primary {
		c.state = Painting
		res.State = Painting
		res.Tag = c.tool
		res.Created = c.store.UpsertTag(index, c.tool)
	}
	return res
}

func (c *Controller) hover(index hex.Index, cube hex.Cube) {
	if c.state == Idle || index != c.hovered {
		c.reach = hex.MovementRange(cube, c.radius)
	}
	c.state = Hovering
	c.hovered = index
	c.hoverHex = cube
}

// SetTool changes the active tag.
func (c *Controller) SetTool(t terrain.Tag) { c.tool = t }

// Tool returns the active tag.
func (c *Controller) Tool() terrain.Tag { return c.tool }

// State returns the state reached by the last tick.
func (c *Controller) State() State { return c.state }

// Hovered returns the hovered index, if any.
func (c *Controller) Hovered() (hex.Index, bool) {
	if c.state == Idle {
		return 0, false
	}
	return c.hovered, true
}

// IsHovered reports whether index i is the hovered cell.
func (c *Controller) IsHovered(i hex.Index) bool {
	h, ok := c.Hovered()
	return ok && h == i
}

// Highlight flags describe how a cell relates to the hovered cell.
type Highlight uint8

const (
	HighlightHovered Highlight = 1 << iota
	HighlightReachable
	HighlightAxis
)

// Has reports whether all flags in f are set.
func (h Highlight) Has(f Highlight) bool { return h&f == f }

// Highlight classifies cell i against the current hover. It is zero when
// nothing is hovered.
func (c *Controller) Highlight(i hex.Index) Highlight {
	if c.state == Idle {
		return 0
	}
	var h Highlight
	if i == c.hovered {
		h |= HighlightHovered
	}
	cube := hex.ToCube(i)
	if c.reach.Contains(cube) {
		h |= HighlightReachable
	}
	if hex.SharesAxis(cube, c.hoverHex) {
		h |= HighlightAxis
	}
	return h
}
