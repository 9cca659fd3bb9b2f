package tilemap

import (
	"testing"

	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/terrain"
)

func TestInitialTiles(t *testing.T) {
	s := New(61)
	if s.Len() != 61 {
		t.Fatalf("expected 61 tiles, got %d", s.Len())
	}
	for i := hex.Index(0); i < 61; i++ {
		tile, ok := s.Get(i)
		if !ok || tile.Tag != terrain.Blank || tile.Index != i {
			t.Fatalf("index %d: expected blank tile, got %+v (ok=%v)", i, tile, ok)
		}
	}
	if s.Contains(61) {
		t.Fatalf("expected index 61 to be absent")
	}
}

func TestUpsertCreatesTile(t *testing.T) {
	s := New(61)
	if created := s.UpsertTag(200, terrain.ForestLush); !created {
		t.Fatalf("expected index 200 to be created")
	}
	tile, ok := s.Get(200)
	if !ok {
		t.Fatalf("expected index 200 to exist")
	}
	if tile != (Tile{Index: 200, Tag: terrain.ForestLush}) {
		t.Fatalf("expected {200 ForestLush}, got %+v", tile)
	}
	if s.Len() != 62 {
		t.Fatalf("expected 62 tiles, got %d", s.Len())
	}
}

func TestUpsertOverwrites(t *testing.T) {
	s := New(61)
	if created := s.UpsertTag(5, terrain.PlainsLush); created {
		t.Fatalf("expected index 5 to already exist")
	}
	s.UpsertTag(5, terrain.OceanWaves)
	tile, _ := s.Get(5)
	if tile.Tag != terrain.OceanWaves {
		t.Fatalf("expected OceanWaves, got %v", tile.Tag)
	}
	if s.Len() != 61 {
		t.Fatalf("expected no duplicate entries, got %d tiles", s.Len())
	}
	if got := s.Counts()[terrain.OceanWaves]; got != 1 {
		t.Fatalf("expected one ocean tile, got %d", got)
	}
}

func TestIndicesSorted(t *testing.T) {
	s := New(0)
	for _, i := range []hex.Index{40, 3, 1000, 7} {
		s.UpsertTag(i, terrain.SnowField)
	}
	got := s.Indices()
	want := []hex.Index{3, 7, 40, 1000}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	var seen []hex.Index
	s.Each(func(tile Tile) { seen = append(seen, tile.Index) })
	if len(seen) != 4 || seen[0] != 3 {
		t.Fatalf("unexpected Each order %v", seen)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := New(1)
	tile, _ := s.Get(0)
	tile.Tag = terrain.OceanWaves
	again, _ := s.Get(0)
	if again.Tag != terrain.Blank {
		t.Fatalf("expected store to be unaffected by caller mutation")
	}
}
