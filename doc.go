// Package chickenwire is a hexagonal-grid coordinate library: canonical,
// provably-consistent coordinate math plus a map-like container whose
// neighbor relationships are always correct.
//
// 🚀 What is chickenwire?
//
//	A small, pure-Go library for hex-tiled planes that brings together:
//		• Cube coordinates: the canonical three-axis algebra (neighbors,
//		  diagonals, distance, rotation, rings, spirals)
//		• Axial, Offset and Double coordinates with exact conversions
//		• MultiCoord: one tagged key type over all four systems
//		• hexgrid.Grid[T]: per-hex storage with compass-labeled adjacency
//		  maintained automatically across insert/update/remove
//
// ✨ Why choose chickenwire?
//
//   - Invariants by construction – Cube and Double cannot hold invalid values
//   - Precise contracts – neighbor/ring/spiral order is clockwise and tested
//   - Errors, not panics – every failure is a sentinel you can errors.Is
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under two subpackages:
//
//	coord/   – Cube, Axial, Offset, Double, MultiCoord, Tilt/Parity labels
//	hexgrid/ – the adjacency-aware Grid container and Compass directions
//
// Quick example (a radius-1 disc; edges maintained by the Grid):
//
//	g, _ := hexgrid.NewRadial(1, "tile")     // 7 hexes, 12 edges
//	v, ok := g.Neighbor(coord.FromCube(coord.Cube{}), hexgrid.Northeast)
//
// Rendering, pathfinding, persistence and concurrency control are left to the
// caller; chickenwire is the coordinate core underneath them.
package chickenwire
