package hex

// Ring returns the coordinates at exact distance k from center c,
// starting from direction 4 and walking the six sides in direction order.
// This is the same order the spiral numbering uses.
// If k==0, returns [c]. If k<0, returns nil.
func Ring(c Cube, k int) []Cube {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Cube{c}
	}
	res := make([]Cube, 0, 6*k)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all coordinates at distance <= r from center c.
func Disk(c Cube, r int) []Cube {
	if r < 0 {
		return nil
	}
	res := make([]Cube, 0, DiskSize(r))
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(NewCube(q, r2)))
		}
	}
	return res
}

// DiskSize returns the number of cells within distance r: 3r(r+1)+1.
func DiskSize(r int) int {
	if r < 0 {
		return 0
	}
	return 3*r*(r+1) + 1
}
