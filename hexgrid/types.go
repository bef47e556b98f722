// Package hexgrid defines the Compass edge labels and sentinel errors for
// the adjacency-aware Grid container.
package hexgrid

import "errors"

// Sentinel errors for hexgrid operations.
var (
	// ErrAlreadyOccupied indicates an Add on a coordinate that already holds a value.
	ErrAlreadyOccupied = errors.New("hexgrid: coordinate already occupied")
	// ErrNotOccupied indicates an Update on a vacant coordinate.
	ErrNotOccupied = errors.New("hexgrid: coordinate not occupied")
	// ErrNegativeRadius indicates a radial factory called with radius < 0.
	ErrNegativeRadius = errors.New("hexgrid: radius must be non-negative")
	// ErrEmptyGrid indicates a rectangular factory without at least one column and one row.
	ErrEmptyGrid = errors.New("hexgrid: grid must have at least one column and one row")
)

// Compass labels the six sides of a hex. Values mirror the cube neighbor
// slots exactly: Northeast is slot 0 and the labels proceed clockwise, so
// Compass(i) names the edge created toward Cube.Neighbor(i). Hex sides are
// six-valued; there is no North or South.
type Compass int

const (
	// Northeast is neighbor slot 0.
	Northeast Compass = iota
	// East is neighbor slot 1.
	East
	// Southeast is neighbor slot 2.
	Southeast
	// Southwest is neighbor slot 3.
	Southwest
	// West is neighbor slot 4.
	West
	// Northwest is neighbor slot 5.
	Northwest
)

// compassNames is indexed by the Compass value itself.
var compassNames = [6]string{"NE", "E", "SE", "SW", "W", "NW"}

// Opposite returns the direction three slots away: the label the far endpoint
// of an edge uses for the same connection.
// Complexity: O(1).
func (c Compass) Opposite() Compass {
	return (c + 3) % 6
}

// String implements fmt.Stringer.
func (c Compass) String() string {
	if c < 0 || c > 5 {
		return "??"
	}

	return compassNames[c]
}
