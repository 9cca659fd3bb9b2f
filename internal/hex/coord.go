// Package hex implements the hexagonal lattice used by the painter: cube
// coordinates, the spiral numbering of cells, the anisotropic pixel layout
// and reachability queries.
package hex

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// Origin is the center cell of the lattice (spiral index 0).
var Origin = Cube{}

// NewCube builds a cube coordinate from its two independent axes.
func NewCube(q, r int) Cube { return Cube{Q: q, R: r, S: -q - r} }

// Directions for cube neighbors in pointy-top orientation.
// The spiral walk and the ring enumeration both depend on this order.
var Directions = [6]Cube{
	{+1, 0, -1}, {+1, -1, 0}, {0, -1, +1}, {-1, 0, +1}, {-1, +1, 0}, {0, +1, -1},
}

// Add returns a+b.
func (c Cube) Add(b Cube) Cube { return Cube{c.Q + b.Q, c.R + b.R, c.S + b.S} }

// Sub returns a-b.
func (c Cube) Sub(b Cube) Cube { return Cube{c.Q - b.Q, c.R - b.R, c.S - b.S} }

// Mul scales a cube vector by k.
func (c Cube) Mul(k int) Cube { return Cube{c.Q * k, c.R * k, c.S * k} }

// Valid reports whether the q+r+s=0 invariant holds.
func (c Cube) Valid() bool { return c.Q+c.R+c.S == 0 }

// Neighbor returns the adjacent cell in direction dir (0..5).
func (c Cube) Neighbor(dir int) Cube { return c.Add(Directions[((dir%6)+6)%6]) }

// Distance returns the hex distance between two cube coords.
func Distance(a, b Cube) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// SharesAxis reports whether a and b lie on a common straight line of the
// lattice, i.e. they agree on q, r or s.
func SharesAxis(a, b Cube) bool {
	return a.Q == b.Q || a.R == b.R || a.S == b.S
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
