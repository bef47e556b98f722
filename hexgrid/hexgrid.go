// Package hexgrid: Grid container implementation.
//
// The Grid keeps two structures in lock-step: a value index keyed by
// canonical cube coordinates, and a compass-labeled adjacency map. They are
// one logical entity; every mutation funnels through the insert/evict pair so
// neither can be observed out of sync with the other.
package hexgrid

import (
	"sort"

	"github.com/burlingsmith/chickenwire/coord"
)

// Grid is the adjacency-aware hex container. It holds one value of type T
// per occupied coordinate, plus the grid-level orientation (Tilt, Parity)
// used to normalize Offset and Double keys, and a preferred System used only
// when expressing coordinates back to the caller.
//
// Not safe for concurrent use; callers must serialize externally.
type Grid[T any] struct {
	tilt   coord.Tilt
	parity coord.Parity
	sys    coord.System

	// nodes is the authoritative index: cube key → stored value.
	nodes map[coord.Cube]*T
	// adjacency[key][dir] names the occupied neighbor in compass slot dir.
	// Key sets of nodes and adjacency are always identical.
	adjacency map[coord.Cube]map[Compass]coord.Cube
}

// New creates an empty Grid with the given orientation and preferred
// coordinate system.
// Complexity: O(1).
func New[T any](tilt coord.Tilt, parity coord.Parity, sys coord.System) *Grid[T] {
	return &Grid[T]{
		tilt:      tilt,
		parity:    parity,
		sys:       sys,
		nodes:     make(map[coord.Cube]*T),
		adjacency: make(map[coord.Cube]map[Compass]coord.Cube),
	}
}

// NewRadial creates a Grid holding fill at every coordinate within radius
// steps of the cube origin (a full hexagonal disc of 1+3·radius·(radius+1)
// hexes), with every interior neighbor edge linked. Preferred system is
// SysCube; orientation defaults to Flat/Odd and only affects how Offset or
// Double keys are normalized later.
// Returns ErrNegativeRadius when radius < 0.
// Complexity: O(radius²).
func NewRadial[T any](radius int, fill T) (*Grid[T], error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	g := New[T](coord.Flat, coord.Odd, coord.SysCube)
	for _, c := range (coord.Cube{}).Spiral(radius) {
		g.insert(c, fill)
	}

	return g, nil
}

// NewRectangular creates a Grid holding fill at every Offset coordinate in
// [0,cols)×[0,rows) under a Flat/Odd layout, with every interior neighbor
// edge linked. Preferred system is SysOffset.
// Returns ErrEmptyGrid unless cols ≥ 1 and rows ≥ 1.
// Complexity: O(cols×rows).
func NewRectangular[T any](cols, rows int, fill T) (*Grid[T], error) {
	if cols < 1 || rows < 1 {
		return nil, ErrEmptyGrid
	}
	g := New[T](coord.Flat, coord.Odd, coord.SysOffset)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			g.insert(coord.Offset{Col: col, Row: row}.ToCube(g.tilt, g.parity), fill)
		}
	}

	return g, nil
}

// Tilt returns the grid's hex orientation.
func (g *Grid[T]) Tilt() coord.Tilt { return g.tilt }

// Parity returns the grid's offset parity.
func (g *Grid[T]) Parity() coord.Parity { return g.parity }

// System returns the preferred coordinate system for display and iteration.
func (g *Grid[T]) System() coord.System { return g.sys }

// Len returns the number of occupied coordinates.
// Complexity: O(1).
func (g *Grid[T]) Len() int {
	return len(g.nodes)
}

// cubeKey normalizes any carried representation to the canonical cube key
// using the grid's orientation. Total: every representation converts.
func (g *Grid[T]) cubeKey(mc coord.MultiCoord) coord.Cube {
	switch mc.System() {
	case coord.SysOffset:
		o, _ := mc.Offset()

		return o.ToCube(g.tilt, g.parity)
	case coord.SysDouble:
		d, _ := mc.Double()

		return d.ToCube(g.tilt)
	default:
		c, _ := mc.Cube() // SysCube or SysAxial, both accepted

		return c
	}
}

// insert stores value under key and links every occupied geometric neighbor,
// updating index and adjacency together. Caller guarantees key is vacant.
func (g *Grid[T]) insert(key coord.Cube, value T) {
	g.nodes[key] = &value
	links := make(map[Compass]coord.Cube, 6)
	g.adjacency[key] = links
	for i, nb := range key.Neighbors() {
		if _, occupied := g.nodes[nb]; !occupied {
			continue
		}
		dir := Compass(i)
		links[dir] = nb
		g.adjacency[nb][dir.Opposite()] = key
	}
}

// evict removes key from both structures, unhooking the mirrored edge entry
// of every linked neighbor first so no dangling edge survives.
func (g *Grid[T]) evict(key coord.Cube) {
	for dir, nb := range g.adjacency[key] {
		delete(g.adjacency[nb], dir.Opposite())
	}
	delete(g.adjacency, key)
	delete(g.nodes, key)
}

// ContainsCoord reports whether the coordinate is occupied.
// Complexity: O(1).
func (g *Grid[T]) ContainsCoord(mc coord.MultiCoord) bool {
	_, occupied := g.nodes[g.cubeKey(mc)]

	return occupied
}

// ContainsValue reports whether any occupied coordinate stores value. It is
// a package function rather than a method so Grid itself never demands
// comparability: equality is only required where it is actually used.
// Complexity: O(n).
func ContainsValue[T comparable](g *Grid[T], value T) bool {
	for _, stored := range g.nodes {
		if *stored == value {
			return true
		}
	}

	return false
}

// Get returns the value stored at the coordinate, if any.
// Complexity: O(1).
func (g *Grid[T]) Get(mc coord.MultiCoord) (T, bool) {
	if stored, occupied := g.nodes[g.cubeKey(mc)]; occupied {
		return *stored, true
	}
	var zero T

	return zero, false
}

// GetMut returns a pointer to the stored value for in-place mutation, or nil
// when the coordinate is vacant. Mutating through the pointer never affects
// topology; only occupancy changes do.
// Complexity: O(1).
func (g *Grid[T]) GetMut(mc coord.MultiCoord) *T {
	return g.nodes[g.cubeKey(mc)]
}

// Add inserts value at a vacant coordinate and links all occupied neighbors.
// Returns ErrAlreadyOccupied (leaving the grid untouched) when the
// coordinate already holds a value.
// Complexity: O(1).
func (g *Grid[T]) Add(mc coord.MultiCoord, value T) error {
	key := g.cubeKey(mc)
	if _, occupied := g.nodes[key]; occupied {
		return ErrAlreadyOccupied
	}
	g.insert(key, value)

	return nil
}

// Update overwrites the value at an occupied coordinate. Topology is
// untouched: occupancy does not change, so no relinking is needed.
// Returns ErrNotOccupied (leaving the grid untouched) when vacant.
// Complexity: O(1).
func (g *Grid[T]) Update(mc coord.MultiCoord, value T) error {
	stored, occupied := g.nodes[g.cubeKey(mc)]
	if !occupied {
		return ErrNotOccupied
	}
	*stored = value

	return nil
}

// Set upserts: it overwrites the value at an occupied coordinate, or inserts
// and links neighbors at a vacant one. Never fails.
// Complexity: O(1).
func (g *Grid[T]) Set(mc coord.MultiCoord, value T) {
	key := g.cubeKey(mc)
	if stored, occupied := g.nodes[key]; occupied {
		*stored = value

		return
	}
	g.insert(key, value)
}

// Remove evicts the coordinate's node, its index entry, and every incident
// edge in both directions, returning the removed value. The ok result is
// false when the coordinate was already vacant.
// Complexity: O(1).
func (g *Grid[T]) Remove(mc coord.MultiCoord) (T, bool) {
	key := g.cubeKey(mc)
	stored, occupied := g.nodes[key]
	if !occupied {
		var zero T

		return zero, false
	}
	value := *stored
	g.evict(key)

	return value, true
}

// HasEdge reports whether an adjacency edge connects the two coordinates.
// True iff both are occupied and geometric neighbors.
// Complexity: O(1).
func (g *Grid[T]) HasEdge(a, b coord.MultiCoord) bool {
	_, linked := g.Direction(a, b)

	return linked
}

// Direction returns the compass label of the edge from a toward b, if the
// two coordinates are linked.
// Complexity: O(1) (at most six slots).
func (g *Grid[T]) Direction(a, b coord.MultiCoord) (Compass, bool) {
	ka, kb := g.cubeKey(a), g.cubeKey(b)
	for dir, nb := range g.adjacency[ka] {
		if nb == kb {
			return dir, true
		}
	}

	return 0, false
}

// Links returns a copy of the coordinate's edge map: compass slot → occupied
// neighbor. Empty (non-nil) when the coordinate is occupied but isolated;
// nil when vacant.
// Complexity: O(1).
func (g *Grid[T]) Links(mc coord.MultiCoord) map[Compass]coord.Cube {
	links, occupied := g.adjacency[g.cubeKey(mc)]
	if !occupied {
		return nil
	}
	out := make(map[Compass]coord.Cube, len(links))
	for dir, nb := range links {
		out[dir] = nb
	}

	return out
}

// Neighbor returns the value stored in the coordinate's compass slot dir,
// if that slot is linked.
// Complexity: O(1).
func (g *Grid[T]) Neighbor(mc coord.MultiCoord, dir Compass) (T, bool) {
	if nb, linked := g.adjacency[g.cubeKey(mc)][dir]; linked {
		return *g.nodes[nb], true
	}
	var zero T

	return zero, false
}

// Coords returns every occupied coordinate expressed in the grid's preferred
// system, deterministically ordered by the underlying cube key (x, then y,
// then z). Maps iterate randomly; callers displaying or diffing grids want a
// stable order.
// Complexity: O(n log n).
func (g *Grid[T]) Coords() []coord.MultiCoord {
	keys := make([]coord.Cube, 0, len(g.nodes))
	for key := range g.nodes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		if a.Y() != b.Y() {
			return a.Y() < b.Y()
		}

		return a.Z() < b.Z()
	})

	out := make([]coord.MultiCoord, len(keys))
	for i, key := range keys {
		switch g.sys {
		case coord.SysAxial:
			out[i] = coord.FromAxial(key.ToAxial())
		case coord.SysOffset:
			out[i] = coord.FromOffset(coord.OffsetFromCube(key, g.tilt, g.parity))
		case coord.SysDouble:
			out[i] = coord.FromDouble(coord.DoubleFromCube(key, g.tilt))
		default:
			out[i] = coord.FromCube(key)
		}
	}

	return out
}
