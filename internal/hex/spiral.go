package hex

import (
	"math"
	"strconv"
)

// Index names a cell by its position in the spiral walk: ring 0 is the
// origin alone, ring r (r >= 1) holds 6r cells starting at the corner
// Directions[4]*r and proceeding side by side in direction order.
type Index uint64

func (i Index) String() string { return strconv.FormatUint(uint64(i), 10) }

// MaxRing is the outermost ring of the lattice. Every index on it and every
// coordinate component within it fits the integer types used here.
const MaxRing = 1 << 30

// MaxIndex is the last index of MaxRing.
const MaxIndex = Index(3 * uint64(MaxRing) * (uint64(MaxRing) + 1))

// ValidIndex reports whether i names a cell of the lattice.
func ValidIndex(i Index) bool { return i <= MaxIndex }

// InLattice reports whether c is a valid cube no further than MaxRing from
// the origin.
func InLattice(c Cube) bool {
	if !inBounds(c.Q) || !inBounds(c.R) || !inBounds(c.S) {
		return false
	}
	return c.Valid()
}

func inBounds(x int) bool { return x >= -MaxRing && x <= MaxRing }

// RingStart returns the first index of ring r (3r(r-1)+1, or 0 for r == 0).
// r must not exceed MaxRing+1.
func RingStart(r int) Index {
	if r <= 0 {
		return 0
	}
	ur := uint64(r)
	return Index(3*ur*(ur-1) + 1)
}

// RingSize returns the number of cells on ring r.
func RingSize(r int) int {
	if r < 0 {
		return 0
	}
	if r == 0 {
		return 1
	}
	return 6 * r
}

// RingOf returns the ring holding index i, the unique r with
// 3r(r-1)+1 <= i <= 3r(r+1). It is -1 for indices beyond MaxIndex.
func RingOf(i Index) int {
	if i == 0 {
		return 0
	}
	if !ValidIndex(i) {
		return -1
	}
	// Float estimate, then settle on the exact ring with integer checks.
	r := int((3 + math.Sqrt(12*float64(i)-3)) / 6)
	r = max(1, min(r, MaxRing))
	for r > 1 && RingStart(r) > i {
		r--
	}
	for r < MaxRing && RingStart(r+1) <= i {
		r++
	}
	return r
}

// CubeOf converts a spiral index to its cube coordinate. It reports false
// for indices beyond MaxIndex.
func CubeOf(i Index) (Cube, bool) {
	if i == 0 {
		return Origin, true
	}
	r := RingOf(i)
	if r < 0 {
		return Origin, false
	}
	offset := int(uint64(i) - uint64(RingStart(r)))
	side := offset / r
	step := offset % r
	return corner(side, r).Add(Directions[side].Mul(step)), true
}

// ToCube converts a spiral index to its cube coordinate. Indices beyond
// MaxIndex map to the origin; use CubeOf to tell them apart.
func ToCube(i Index) Cube {
	c, _ := CubeOf(i)
	return c
}

// IndexOf converts a cube coordinate to its spiral index. S is implied by
// Q and R and is not read. It reports false for cells outside the lattice.
func IndexOf(c Cube) (Index, bool) {
	if !inBounds(c.Q) || !inBounds(c.R) {
		return 0, false
	}
	c = NewCube(c.Q, c.R)
	if !inBounds(c.S) {
		return 0, false
	}
	r := Distance(Origin, c)
	if r == 0 {
		return 0, true
	}
	for side := 0; side < 6; side++ {
		d := Directions[side]
		delta := c.Sub(corner(side, r))
		// Direction components are 0 or ±1, so multiplying divides.
		step := delta.Q * d.Q
		if d.Q == 0 {
			step = delta.R * d.R
		}
		if step >= 0 && step < r && delta == d.Mul(step) {
			return RingStart(r) + Index(side*r+step), true
		}
	}
	// Every cube at distance r lies on one side of ring r.
	return 0, false
}

// ToIndex converts a cube coordinate to its spiral index. Cells outside the
// lattice map to 0; use IndexOf to tell them apart.
func ToIndex(c Cube) Index {
	i, _ := IndexOf(c)
	return i
}

// corner returns the first cell of the given side of ring r.
func corner(side, r int) Cube {
	return Directions[(side+4)%6].Mul(r)
}
