// Package camera keeps the pan/zoom state of the view and projects pointer
// positions into world space.
package camera

import (
	"math"

	"github.com/gravitas-games/hexpaint/internal/hex"
)

// Options configures a Controller.
type Options struct {
	MinZoom    float64
	MaxZoom    float64
	ZoomBase   float64 // zoom multiplier per unit of wheel delta
	WheelScale float64 // raw wheel units to zoom steps
	PanSpeed   float64 // world units per second
}

// DefaultOptions returns the stock camera tuning.
func DefaultOptions() Options {
	return Options{
		MinZoom:    0.1,
		MaxZoom:    5.0,
		ZoomBase:   1.1,
		WheelScale: 0.01,
		PanSpeed:   500,
	}
}

// State is the camera as seen by the projection.
type State struct {
	Translation hex.Point `json:"translation"`
	Zoom        float64   `json:"zoom"`
}

// Directions is the set of held pan directions.
type Directions struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
}

// Vector returns the unnormalized direction (x right, y up).
func (d Directions) Vector() hex.Point {
	var v hex.Point
	if d.Left {
		v.X -= 1
	}
	if d.Right {
		v.X += 1
	}
	if d.Up {
		v.Y += 1
	}
	if d.Down {
		v.Y -= 1
	}
	return v
}

// Controller applies wheel and pan input to the camera state. There is no
// inertia: each call moves the camera by the current input only.
type Controller struct {
	opts  Options
	state State
}

// New creates a controller at the origin with zoom 1 (clamped to the limits).
func New(opts Options) *Controller {
	c := &Controller{opts: opts, state: State{Zoom: 1}}
	c.state.Zoom = c.clamp(c.state.Zoom)
	return c
}

// State returns the current camera state.
func (c *Controller) State() State { return c.state }

// Zoom applies the wheel deltas received this tick: the zoom scale is
// multiplied by ZoomBase^(-total) and clamped.
func (c *Controller) Zoom(deltas []float64) {
	total := 0.0
	for _, d := range deltas {
		total += d * c.opts.WheelScale
	}
	if total == 0 {
		return
	}
	c.state.Zoom = c.clamp(c.state.Zoom * math.Pow(c.opts.ZoomBase, -total))
}

// Pan moves the camera along the held directions for dt seconds.
func (c *Controller) Pan(dirs Directions, dt float64) {
	v := dirs.Vector()
	l := v.Len()
	if l == 0 {
		return
	}
	c.state.Translation = c.state.Translation.Add(v.Scale(c.opts.PanSpeed * dt / l))
}

func (c *Controller) clamp(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Max(c.opts.MinZoom, math.Min(c.opts.MaxZoom, z))
}
