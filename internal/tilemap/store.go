// Package tilemap stores the painted cells of the map keyed by spiral index.
package tilemap

import (
	"log"
	"sort"

	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/terrain"
)

// Tile is a single painted cell.
type Tile struct {
	Index hex.Index   `json:"index"`
	Tag   terrain.Tag `json:"tag"`
}

// Cube returns the lattice coordinate of the tile.
func (t Tile) Cube() hex.Cube { return hex.ToCube(t.Index) }

// Store is a sparse, growable map of tiles. Entries are never removed;
// erasing a cell paints it Blank. Store is not safe for concurrent use: it
// belongs to the simulation goroutine.
type Store struct {
	tiles map[hex.Index]terrain.Tag
}

// New creates a store pre-populated with Blank tiles for indices [0, initial).
func New(initial int) *Store {
	if initial < 0 {
		initial = 0
	}
	s := &Store{tiles: make(map[hex.Index]terrain.Tag, initial)}
	for i := 0; i < initial; i++ {
		s.tiles[hex.Index(i)] = terrain.Blank
	}
	log.Printf("Tile store created with %d tiles", len(s.tiles))
	return s
}

// Get returns the tile at index i.
func (s *Store) Get(i hex.Index) (Tile, bool) {
	tag, exists := s.tiles[i]
	if !exists {
		return Tile{}, false
	}
	return Tile{Index: i, Tag: tag}, true
}

// Contains reports whether a tile exists at index i.
func (s *Store) Contains(i hex.Index) bool {
	_, exists := s.tiles[i]
	return exists
}

// UpsertTag paints tag onto index i, creating the tile when it does not exist
// yet. It reports whether a new tile was created.
func (s *Store) UpsertTag(i hex.Index, tag terrain.Tag) (created bool) {
	_, exists := s.tiles[i]
	s.tiles[i] = tag
	return !exists
}

// Len returns the number of tiles.
func (s *Store) Len() int {
	return len(s.tiles)
}

// Indices returns all tile indices in ascending order.
func (s *Store) Indices() []hex.Index {
	out := make([]hex.Index, 0, len(s.tiles))
	for i := range s.tiles {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Each calls fn for every tile in ascending index order.
func (s *Store) Each(fn func(Tile)) {
	for _, i := range s.Indices() {
		fn(Tile{Index: i, Tag: s.tiles[i]})
	}
}

// Counts returns how many tiles carry each tag.
func (s *Store) Counts() map[terrain.Tag]int {
	counts := make(map[terrain.Tag]int)
	for _, tag := range s.tiles {
		counts[tag]++
	}
	return counts
}
