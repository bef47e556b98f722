// Package coord implements the four hexagonal coordinate systems from
// The Guide (https://www.redblobgames.com/grids/hexagons): Cube, Axial,
// Offset, and Double, plus a runtime-tagged MultiCoord union over all four.
//
// What:
//
//   - Cube: the canonical three-axis representation; all neighbor, diagonal,
//     distance, rotation, ring and spiral algorithms live here.
//   - Axial: a lossless two-axis projection of Cube (q=x, r=z).
//   - Offset: a rectangular-grid representation; converting it requires an
//     external Tilt and Parity.
//   - Double: an interlaced rectangular-grid representation with the
//     invariant that col+row is even; converting it requires a Tilt only.
//   - MultiCoord: a tagged carrier for any of the above, used as the public
//     key type of hexgrid.Grid.
//
// Why:
//
//   - Game maps and tile simulations need one provably-consistent coordinate
//     algebra instead of four ad-hoc ones.
//   - Enumeration order is a contract: neighbor index 0 is always the
//     Northeastern slot and indices proceed clockwise, in every system,
//     so adjacency labels line up after any conversion.
//
// Validity:
//
//   - Cube and Double are opaque; their invariants (x+y+z == 0, col+row even)
//     are enforced by every constructor and can never be violated afterwards.
//   - The zero value of every coordinate type is its origin and is valid.
//
// Errors:
//
//   - ErrInvalidCoordinate: constructor input violates the type's invariant.
//   - ErrDivisionByZero: scalar division by zero.
//   - ErrSystemMismatch: MultiCoord extraction under a foreign tag.
//
// All operations are pure value math: no locks, no allocation beyond returned
// slices, O(1) unless documented otherwise.
package coord
