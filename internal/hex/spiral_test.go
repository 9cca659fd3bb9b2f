package hex

import (
	"math"
	"testing"
)

func TestSpiralRoundTrip(t *testing.T) {
	for i := Index(0); i < 10000; i++ {
		c := ToCube(i)
		if !c.Valid() {
			t.Fatalf("index %d: cube %+v breaks q+r+s=0", i, c)
		}
		if got := ToIndex(c); got != i {
			t.Fatalf("expected ToIndex(ToCube(%d)) == %d, got %d (cube %+v)", i, i, got, c)
		}
	}
}

func TestSpiralInverseRoundTrip(t *testing.T) {
	for _, c := range Disk(Origin, 25) {
		if got := ToCube(ToIndex(c)); got != c {
			t.Fatalf("expected ToCube(ToIndex(%+v)) == %+v, got %+v", c, c, got)
		}
	}
}

func TestRingCardinality(t *testing.T) {
	counts := make(map[int]int)
	const rings = 30
	for i := Index(0); i < RingStart(rings+1); i++ {
		c := ToCube(i)
		r := Distance(Origin, c)
		if r != RingOf(i) {
			t.Fatalf("index %d: RingOf says %d but cube %+v is at distance %d", i, RingOf(i), c, r)
		}
		counts[r]++
	}
	for r := 0; r <= rings; r++ {
		want := 6 * r
		if r == 0 {
			want = 1
		}
		if counts[r] != want {
			t.Fatalf("ring %d: expected %d cells, got %d", r, want, counts[r])
		}
		if RingSize(r) != want {
			t.Fatalf("RingSize(%d): expected %d, got %d", r, want, RingSize(r))
		}
	}
}

func TestRingBoundaries(t *testing.T) {
	tests := []struct {
		index Index
		ring  int
	}{
		{0, 0}, {1, 1}, {6, 1}, {7, 2}, {18, 2}, {19, 3}, {36, 3}, {37, 4}, {60, 4}, {61, 5},
	}
	for _, tt := range tests {
		if got := RingOf(tt.index); got != tt.ring {
			t.Fatalf("RingOf(%d): expected %d, got %d", tt.index, tt.ring, got)
		}
	}
	// Through ring r there are 3r(r+1)+1 cells.
	for r := 0; r < 50; r++ {
		if got, want := int(RingStart(r+1)), DiskSize(r); got != want {
			t.Fatalf("cells through ring %d: expected %d, got %d", r, want, got)
		}
	}
}

func TestSpiralMatchesRingOrder(t *testing.T) {
	for r := 1; r <= 8; r++ {
		for k, c := range Ring(Origin, r) {
			want := RingStart(r) + Index(k)
			if got := ToIndex(c); got != want {
				t.Fatalf("ring %d position %d: expected index %d, got %d", r, k, want, got)
			}
		}
	}
}

func TestSpiralFirstRing(t *testing.T) {
	want := []Cube{
		NewCube(-1, 1), NewCube(0, 1), NewCube(1, 0),
		NewCube(1, -1), NewCube(0, -1), NewCube(-1, 0),
	}
	for k, c := range want {
		if got := ToCube(Index(k + 1)); got != c {
			t.Fatalf("index %d: expected %+v, got %+v", k+1, c, got)
		}
	}
}

func TestSpiralLargeIndex(t *testing.T) {
	for _, i := range []Index{1 << 20, 1<<32 + 17, 999999999999} {
		if got := ToIndex(ToCube(i)); got != i {
			t.Fatalf("expected round trip of %d, got %d", i, got)
		}
	}
}

func TestSpiralTopOfDomain(t *testing.T) {
	if got := RingOf(MaxIndex); got != MaxRing {
		t.Fatalf("expected MaxIndex on ring %d, got %d", MaxRing, got)
	}
	if got := RingOf(RingStart(MaxRing)); got != MaxRing {
		t.Fatalf("expected first index of the last ring on ring %d, got %d", MaxRing, got)
	}
	if got := RingOf(RingStart(MaxRing) - 1); got != MaxRing-1 {
		t.Fatalf("expected ring %d, got %d", MaxRing-1, got)
	}
	for _, i := range []Index{MaxIndex, RingStart(MaxRing), MaxIndex - 12345} {
		c, ok := CubeOf(i)
		if !ok || !InLattice(c) {
			t.Fatalf("expected %d inside the lattice, got %+v (ok=%v)", i, c, ok)
		}
		if got := ToIndex(c); got != i {
			t.Fatalf("expected round trip of %d, got %d", i, got)
		}
	}
}

func TestSpiralBeyondDomain(t *testing.T) {
	for _, i := range []Index{MaxIndex + 1, math.MaxUint64, math.MaxUint64 / 2} {
		if ValidIndex(i) {
			t.Fatalf("expected %d to be invalid", i)
		}
		if r := RingOf(i); r != -1 {
			t.Fatalf("expected ring -1 for %d, got %d", i, r)
		}
		if c, ok := CubeOf(i); ok || c != Origin {
			t.Fatalf("expected no cube for %d, got %+v (ok=%v)", i, c, ok)
		}
	}
}

func TestIndexOfOutsideLattice(t *testing.T) {
	outside := []Cube{
		NewCube(MaxRing+1, 0),
		NewCube(MaxRing, 1),
		NewCube(1<<62, 0),
		NewCube(0, math.MinInt64),
		{Q: math.MinInt64, R: math.MinInt64, S: math.MinInt64},
		{Q: math.MaxInt64, R: math.MaxInt64, S: 2},
	}
	for _, c := range outside {
		if InLattice(c) {
			t.Fatalf("expected %+v outside the lattice", c)
		}
		if i, ok := IndexOf(c); ok {
			t.Fatalf("expected no index for %+v, got %d", c, i)
		}
		if got := ToIndex(c); got != 0 {
			t.Fatalf("expected 0 for %+v, got %d", c, got)
		}
	}

	edge := NewCube(MaxRing, -MaxRing)
	i, ok := IndexOf(edge)
	if !ok || RingOf(i) != MaxRing || ToCube(i) != edge {
		t.Fatalf("expected %+v on the last ring, got %d (ok=%v)", edge, i, ok)
	}
}
