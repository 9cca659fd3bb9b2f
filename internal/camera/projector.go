package camera

import "github.com/gravitas-games/hexpaint/internal/hex"

// Projector maps a pointer position on screen to world space.
type Projector interface {
	// ViewportToWorld returns false when the pointer does not hit the
	// viewport.
	ViewportToWorld(cursor hex.Point, cam State) (hex.Point, bool)
}

// Ortho is an orthographic 2D projection centered on the camera. Screen y
// grows downwards, world y upwards.
type Ortho struct {
	Width  float64
	Height float64
}

// ViewportToWorld implements Projector.
func (o Ortho) ViewportToWorld(cursor hex.Point, cam State) (hex.Point, bool) {
	if o.Width <= 0 || o.Height <= 0 {
		return hex.Point{}, false
	}
	if cursor.X < 0 || cursor.Y < 0 || cursor.X > o.Width || cursor.Y > o.Height {
		return hex.Point{}, false
	}
	local := hex.Point{
		X: (cursor.X - o.Width/2) * cam.Zoom,
		Y: (o.Height/2 - cursor.Y) * cam.Zoom,
	}
	return cam.Translation.Add(local), true
}
