package hex

import (
	"math/rand"
	"testing"
)

func TestMovementRangeSize(t *testing.T) {
	origins := []Cube{Origin, NewCube(3, -7), ToCube(200)}
	for _, o := range origins {
		for k := 0; k <= 10; k++ {
			m := MovementRange(o, k)
			if want := 3*k*k + 3*k + 1; m.Size() != want {
				t.Fatalf("origin %+v k=%d: expected %d cells, got %d", o, k, want, m.Size())
			}
			for _, c := range m.Cells() {
				if Distance(o, c) > k {
					t.Fatalf("origin %+v k=%d: %+v is %d away", o, k, c, Distance(o, c))
				}
			}
		}
	}
}

func TestMovementRangeZeroAndNegative(t *testing.T) {
	o := NewCube(2, 2)
	m := MovementRange(o, 0)
	if m.Size() != 1 || !m.Contains(o) {
		t.Fatalf("expected range 0 to be {origin}, got %v", m.Cells())
	}
	neg := MovementRange(o, -3)
	if neg.Size() != 0 || neg.Contains(o) {
		t.Fatalf("expected negative radius to be empty, got %v", neg.Cells())
	}
	var zero Range
	if zero.Contains(o) || zero.Size() != 0 {
		t.Fatalf("expected zero Range to be empty")
	}
}

func TestMovementRangeContains(t *testing.T) {
	m := MovementRange(ToCube(0), 2)
	// Index 18 is on ring 2, index 19 on ring 3.
	if !m.Contains(ToCube(18)) {
		t.Fatalf("expected index 18 in range")
	}
	if m.Contains(ToCube(19)) {
		t.Fatalf("expected index 19 outside range")
	}
}

func TestDistanceMetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pick := func() Cube { return ToCube(Index(rng.Intn(5000))) }
	for i := 0; i < 2000; i++ {
		a, b, c := pick(), pick(), pick()
		if Distance(a, b) != Distance(b, a) {
			t.Fatalf("distance not symmetric for %+v, %+v", a, b)
		}
		if Distance(a, a) != 0 {
			t.Fatalf("expected zero self distance for %+v", a)
		}
		if Distance(a, c) > Distance(a, b)+Distance(b, c) {
			t.Fatalf("triangle inequality broken for %+v %+v %+v", a, b, c)
		}
	}
}

func TestDistanceNeighbors(t *testing.T) {
	for d := 0; d < 6; d++ {
		if got := Distance(Origin, Origin.Neighbor(d)); got != 1 {
			t.Fatalf("direction %d: expected distance 1, got %d", d, got)
		}
	}
}

func TestSharesAxis(t *testing.T) {
	a := NewCube(1, -1)
	if !SharesAxis(a, NewCube(1, 5)) || !SharesAxis(a, NewCube(-4, -1)) || !SharesAxis(a, NewCube(3, -3)) {
		t.Fatalf("expected cells on the three axes through %+v to share an axis", a)
	}
	if SharesAxis(a, NewCube(2, 1)) {
		t.Fatalf("expected %+v and (2,1) not to share an axis", a)
	}
}

func TestRingAndDisk(t *testing.T) {
	c := NewCube(-2, 5)
	for k := 0; k <= 6; k++ {
		ring := Ring(c, k)
		if len(ring) != RingSize(k) {
			t.Fatalf("ring %d: expected %d cells, got %d", k, RingSize(k), len(ring))
		}
		for _, a := range ring {
			if Distance(c, a) != k {
				t.Fatalf("ring %d: %+v is at distance %d", k, a, Distance(c, a))
			}
		}
		if got := len(Disk(c, k)); got != DiskSize(k) {
			t.Fatalf("disk %d: expected %d cells, got %d", k, DiskSize(k), got)
		}
	}
	if Ring(c, -1) != nil || Disk(c, -1) != nil {
		t.Fatalf("expected nil for negative radius")
	}
}
