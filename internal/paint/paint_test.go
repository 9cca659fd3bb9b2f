package paint

import (
	"testing"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/input"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

var (
	testLayout = hex.Layout{Step: hex.Point{X: 20, Y: 16}, Orientation: hex.Rotated}
	testView   = camera.Ortho{Width: 4000, Height: 4000}
	testCam    = camera.State{Zoom: 1}
)

// screenOf returns the screen position of the center of cell i.
func screenOf(i hex.Index) hex.Point {
	w := testLayout.CubeToWorld(hex.ToCube(i))
	return hex.Point{X: w.X + testView.Width/2, Y: testView.Height/2 - w.Y}
}

func newController(t *testing.T) (*Controller, *tilemap.Store) {
	t.Helper()
	store := tilemap.New(61)
	c := New(store, Options{Layout: testLayout, InitialTool: terrain.Blank, HighlightRadius: 2})
	return c, store
}

func TestIdleWithoutPointer(t *testing.T) {
	c, store := newController(t)
	c.SetTool(terrain.OceanWaves)
	res := c.Tick(input.Frame{Primary: true}, testCam, testView)
	if res.State != Idle || c.State() != Idle {
		t.Fatalf("expected idle, got %v", res.State)
	}
	if _, ok := c.Hovered(); ok {
		t.Fatalf("expected nothing hovered")
	}
	if store.Counts()[terrain.OceanWaves] != 0 {
		t.Fatalf("expected nothing painted")
	}
}

func TestIdleWithoutProjection(t *testing.T) {
	c, _ := newController(t)
	res := c.Tick(input.Frame{HasPointer: true, Pointer: screenOf(3)}, testCam, nil)
	if res.State != Idle {
		t.Fatalf("expected idle without a projector, got %v", res.State)
	}
	res = c.Tick(input.Frame{HasPointer: true, Pointer: hex.Point{X: -5, Y: -5}}, testCam, testView)
	if res.State != Idle {
		t.Fatalf("expected idle for a pointer outside the viewport, got %v", res.State)
	}
}

func TestHoverDoesNotPaint(t *testing.T) {
	c, store := newController(t)
	c.SetTool(terrain.PlainsLush)
	res := c.Tick(input.Frame{HasPointer: true, Pointer: screenOf(12)}, testCam, testView)
	if res.State != Hovering || res.Index != 12 {
		t.Fatalf("expected hovering 12, got %v %d", res.State, res.Index)
	}
	if !c.IsHovered(12) || c.IsHovered(11) {
		t.Fatalf("expected only 12 to be hovered")
	}
	if tile, _ := store.Get(12); tile.Tag != terrain.Blank {
		t.Fatalf("expected hover not to paint, got %v", tile.Tag)
	}
}

func TestPaintExistingAndNewCells(t *testing.T) {
	c, store := newController(t)
	c.SetTool(terrain.MountainPeakRocky)

	res := c.Tick(input.Frame{HasPointer: true, Primary: true, Pointer: screenOf(5)}, testCam, testView)
	if res.State != Painting || res.Index != 5 || res.Created {
		t.Fatalf("expected to paint existing cell 5, got %+v", res)
	}
	if tile, _ := store.Get(5); tile.Tag != terrain.MountainPeakRocky {
		t.Fatalf("expected cell 5 painted, got %v", tile.Tag)
	}

	res = c.Tick(input.Frame{HasPointer: true, Primary: true, Pointer: screenOf(200)}, testCam, testView)
	if res.State != Painting || res.Index != 200 || !res.Created {
		t.Fatalf("expected to create cell 200, got %+v", res)
	}
	if store.Len() != 62 {
		t.Fatalf("expected 62 tiles, got %d", store.Len())
	}
}

func TestDragPaintIsLevelTriggered(t *testing.T) {
	c, store := newController(t)
	c.SetTool(terrain.OceanWaves)
	path := []hex.Index{0, 1, 8, 20, 20, 20}
	for _, i := range path {
		res := c.Tick(input.Frame{HasPointer: true, Primary: true, Pointer: screenOf(i)}, testCam, testView)
		if res.State != Painting || res.Index != i {
			t.Fatalf("expected painting %d, got %v %d", i, res.State, res.Index)
		}
	}
	for _, i := range path {
		if tile, _ := store.Get(i); tile.Tag != terrain.OceanWaves {
			t.Fatalf("expected %d painted, got %v", i, tile.Tag)
		}
	}
	// Releasing the button goes back to hovering.
	res := c.Tick(input.Frame{HasPointer: true, Pointer: screenOf(20)}, testCam, testView)
	if res.State != Hovering {
		t.Fatalf("expected hovering after release, got %v", res.State)
	}
}

func TestPaintFollowsCamera(t *testing.T) {
	c, _ := newController(t)
	cam := camera.State{Translation: testLayout.CubeToWorld(hex.ToCube(30)), Zoom: 2.5}
	center := hex.Point{X: testView.Width / 2, Y: testView.Height / 2}
	res := c.Tick(input.Frame{HasPointer: true, Pointer: center}, cam, testView)
	if res.Index != 30 {
		t.Fatalf("expected the viewport center to hover 30, got %d", res.Index)
	}
}

func TestHighlight(t *testing.T) {
	c, _ := newController(t)
	if c.Highlight(0) != 0 {
		t.Fatalf("expected no highlight while idle")
	}
	c.Tick(input.Frame{HasPointer: true, Pointer: screenOf(0)}, testCam, testView)

	h := c.Highlight(0)
	if !h.Has(HighlightHovered | HighlightReachable | HighlightAxis) {
		t.Fatalf("expected hovered cell to carry every flag, got %b", h)
	}
	// Ring 2 is reachable with radius 2, ring 3 is not.
	if !c.Highlight(7).Has(HighlightReachable) || c.Highlight(19).Has(HighlightReachable) {
		t.Fatalf("unexpected reachability flags")
	}
	// Index 19 is a ring corner, on an axis through the origin.
	if !c.Highlight(19).Has(HighlightAxis) {
		t.Fatalf("expected ring corner 19 on an axis")
	}
	if c.Highlight(20).Has(HighlightAxis) {
		t.Fatalf("expected 20 off every axis through the origin")
	}
}
