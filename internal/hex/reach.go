package hex

import "github.com/zyedidia/generic/mapset"

// Range is the set of cells reachable from an origin within a number of
// steps. The zero Range is empty.
type Range struct {
	Origin Cube
	Radius int
	cells  mapset.Set[Cube]
}

// MovementRange returns every cell c with Distance(origin, c) <= k.
// A negative k yields an empty range.
func MovementRange(origin Cube, k int) Range {
	cells := mapset.New[Cube]()
	for _, c := range Disk(origin, k) {
		cells.Put(c)
	}
	return Range{Origin: origin, Radius: k, cells: cells}
}

// Contains reports whether c is inside the range.
func (m Range) Contains(c Cube) bool {
	return m.cells.Has(c)
}

// Size returns the number of cells in the range.
func (m Range) Size() int {
	return m.cells.Size()
}

// Cells returns the cells of the range in no particular order.
func (m Range) Cells() []Cube {
	out := make([]Cube, 0, m.Size())
	m.cells.Each(func(c Cube) {
		out = append(out, c)
	})
	return out
}
