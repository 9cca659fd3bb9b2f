// Package input collects pointer, wheel and pan input from hosts and hands
// the simulation one immutable Frame per tick.
package input

import (
	"sync"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
)

// Frame is the input sampled for one tick.
type Frame struct {
	Pointer    hex.Point
	HasPointer bool
	Primary    bool // primary pointer button held
	Wheel      []float64
	Pan        camera.Directions
	Viewport   hex.Point // zero when unknown
	Dt         float64   // seconds since the previous tick
}

// Latch keeps the latest input state written by hosts. Level state
// (pointer, buttons, pan) is sampled; wheel deltas accumulate until the next
// Snapshot.
type Latch struct {
	mu         sync.Mutex
	pointer    hex.Point
	hasPointer bool
	primary    bool
	wheel      []float64
	pan        camera.Directions
	viewport   hex.Point
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{}
}

// SetPointer records the pointer position in screen coordinates.
func (l *Latch) SetPointer(p hex.Point) {
	l.mu.Lock()
	l.pointer, l.hasPointer = p, true
	l.mu.Unlock()
}

// ClearPointer records that the pointer left the view.
func (l *Latch) ClearPointer() {
	l.mu.Lock()
	l.hasPointer = false
	l.mu.Unlock()
}

// SetPrimary records whether the primary button is held.
func (l *Latch) SetPrimary(held bool) {
	l.mu.Lock()
	l.primary = held
	l.mu.Unlock()
}

// AddWheel queues a wheel delta.
func (l *Latch) AddWheel(delta float64) {
	l.mu.Lock()
	l.wheel = append(l.wheel, delta)
	l.mu.Unlock()
}

// SetPan records the held pan directions.
func (l *Latch) SetPan(d camera.Directions) {
	l.mu.Lock()
	l.pan = d
	l.mu.Unlock()
}

// SetViewport records the size of the host's view in pixels.
func (l *Latch) SetViewport(width, height float64) {
	l.mu.Lock()
	l.viewport = hex.Point{X: width, Y: height}
	l.mu.Unlock()
}

// Release drops all held state, used when the host owning it disconnects.
func (l *Latch) Release() {
	l.mu.Lock()
	l.hasPointer = false
	l.primary = false
	l.pan = camera.Directions{}
	l.mu.Unlock()
}

// Snapshot returns the input for one tick and clears the wheel queue.
func (l *Latch) Snapshot(dt float64) Frame {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := Frame{
		Pointer:    l.pointer,
		HasPointer: l.hasPointer,
		Primary:    l.primary,
		Wheel:      l.wheel,
		Pan:        l.pan,
		Viewport:   l.viewport,
		Dt:         dt,
	}
	l.wheel = nil
	return f
}
