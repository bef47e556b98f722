// Package hexgrid stores per-hex data in an adjacency-aware container.
//
// What:
//
//   - Grid[T] maps coordinates to one stored value each, keyed internally by
//     canonical coord.Cube regardless of which representation the caller
//     hands in through coord.MultiCoord.
//   - Alongside the index, the Grid maintains a compass-labeled adjacency
//     relation: whenever two occupied coordinates are geometric neighbors,
//     exactly one conceptual edge connects them, labeled with the Compass
//     direction of each endpoint's slot.
//   - Bulk factories fill a hexagonal disc (NewRadial) or a rectangle of
//     offset coordinates (NewRectangular) and link every interior edge.
//
// Why:
//
//   - Tile games and simulations constantly ask "what is next to this hex":
//     keeping the adjacency relation inside the container makes the answer
//     O(1) and impossible to let drift out of sync with occupancy.
//
// Invariants:
//
//   - A cube key is present in the index iff its node exists in the adjacency
//     structure; both are mutated only through one insert/evict path.
//   - An edge exists iff both endpoints are occupied and geometric neighbors;
//     the two directions carry opposite Compass labels; removal leaves no
//     dangling edges.
//   - A failed operation leaves the Grid untouched.
//
// Complexity:
//
//   - Add/Set/Remove: O(1) (six neighbor probes). Get/Update: O(1).
//   - NewRadial: O(radius²). NewRectangular: O(cols×rows).
//   - ContainsValue: O(n) scan. Coords: O(n log n) for deterministic order.
//
// Errors:
//
//   - ErrAlreadyOccupied: Add on an occupied coordinate.
//   - ErrNotOccupied: Update on a vacant coordinate.
//   - ErrNegativeRadius: NewRadial with radius < 0.
//   - ErrEmptyGrid: NewRectangular without at least one column and one row.
//
// The Grid performs no internal locking; callers needing concurrent access
// must serialize externally.
package hexgrid
