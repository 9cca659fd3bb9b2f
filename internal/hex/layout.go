package hex

import "math"

// Point is a position in world or pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Orientation selects how lattice pixels relate to world space.
type Orientation int

const (
	// Pointy uses lattice pixels as world coordinates.
	Pointy Orientation = iota
	// Rotated turns the lattice a quarter turn counter-clockwise: lattice
	// (x, y) is drawn at world (-y, x). Used for artwork authored flat-top.
	Rotated
)

// ParseOrientation maps a config value to an Orientation; anything other
// than "pointy" is Rotated.
func ParseOrientation(s string) Orientation {
	if s == "pointy" {
		return Pointy
	}
	return Rotated
}

func (o Orientation) String() string {
	if o == Pointy {
		return "pointy"
	}
	return "rotated"
}

var sqrt3 = math.Sqrt(3)

// Layout is the anisotropic pointy-top pixel transform. Step holds the
// horizontal and vertical hex radii independently because the tile artwork
// is not a regular hexagon.
type Layout struct {
	Origin      Point
	Step        Point
	Orientation Orientation
}

// CubeToPixel converts a cube coordinate to the lattice pixel of its center:
// x = step.x*sqrt(3)*(q + r/2); y = step.y*3/2*r.
func (l Layout) CubeToPixel(c Cube) Point {
	x := l.Step.X * (sqrt3*float64(c.Q) + sqrt3/2*float64(c.R))
	y := l.Step.Y * (1.5 * float64(c.R))
	return Point{X: l.Origin.X + x, Y: l.Origin.Y + y}
}

// PixelToCube returns the cell whose center is nearest to the lattice pixel p.
// Pixels far outside the lattice yield a valid cube that fails InLattice.
func (l Layout) PixelToCube(p Point) Cube {
	px := (p.X - l.Origin.X) / l.Step.X
	py := (p.Y - l.Origin.Y) / l.Step.Y
	q := clampAxis(sqrt3/3*px - py/3)
	r := clampAxis(2.0 / 3.0 * py)
	return cubeRound(q, r, -q-r)
}

// axisLimit bounds fractional coordinates before rounding. It lies far
// outside the lattice but well inside the range where float64 and int
// conversion are exact, so the rounded cube stays valid.
const axisLimit = 4 * MaxRing

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-axisLimit, math.Min(axisLimit, v))
}

// WorldToCube resolves a world-space position to a cell, honoring the
// layout orientation.
func (l Layout) WorldToCube(w Point) Cube {
	if l.Orientation == Rotated {
		return l.PixelToCube(Point{X: w.Y, Y: -w.X})
	}
	return l.PixelToCube(w)
}

// CubeToWorld returns the world-space center of a cell, honoring the layout
// orientation.
func (l Layout) CubeToWorld(c Cube) Point {
	return l.toWorld(l.CubeToPixel(c))
}

// Corners returns the world-space corners of a cell, counter-clockwise
// starting at the lower right corner of the pointy-top hexagon.
func (l Layout) Corners(c Cube) [6]Point {
	center := l.CubeToPixel(c)
	var pts [6]Point
	for i := range pts {
		angle := math.Pi / 180 * float64(60*i-30)
		corner := Point{
			X: center.X + l.Step.X*math.Cos(angle),
			Y: center.Y + l.Step.Y*math.Sin(angle),
		}
		pts[i] = l.toWorld(corner)
	}
	return pts
}

func (l Layout) toWorld(p Point) Point {
	if l.Orientation == Rotated {
		return Point{X: -p.Y, Y: p.X}
	}
	return p
}

// cubeRound rounds fractional cube coordinates to a cell. Each component is
// rounded on its own; the one with the largest rounding error is then
// rebuilt from the other two so that q+r+s=0 holds.
func cubeRound(q, r, s float64) Cube {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}

	return Cube{Q: int(rq), R: int(rr), S: int(rs)}
}
