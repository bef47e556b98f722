package coord

import "fmt"

// Offset addresses hexes by rectangular column and row. The representation
// carries no invariant of its own, but it is meaningless without an external
// Tilt and Parity: offset grids alternate their shift direction per column
// (Flat) or per row (Sharp), and Parity picks which half is shifted. The zero
// value is the origin.
type Offset struct {
	Col, Row int
}

// Neighbor step tables, one per (Tilt, Parity) combination. Each combination
// holds two 6-entry tables selected by the coordinate's own column (Flat) or
// row (Sharp) parity, because alternate columns/rows shift the other way.
// Entry order matches the Cube contract: Northeast first, clockwise.
var (
	oddFlatSteps = [2][6][2]int{
		{{1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}, {0, -1}},
		{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}},
	}
	evenFlatSteps = [2][6][2]int{
		{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}},
		{{1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}, {0, -1}},
	}
	oddSharpSteps = [2][6][2]int{
		{{0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}},
		{{1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}},
	}
	evenSharpSteps = [2][6][2]int{
		{{1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}},
		{{0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}},
	}
)

// NewOffset builds an Offset from a column and row. Always succeeds.
// Complexity: O(1).
func NewOffset(col, row int) Offset {
	return Offset{Col: col, Row: row}
}

// ToCube converts to the canonical cube system under the given orientation.
// Four formulas exist, one per (Tilt, Parity) combination; each computes the
// doubled axis and derives the third from the zero-sum constraint. Total.
// Complexity: O(1).
func (o Offset) ToCube(tilt Tilt, parity Parity) Cube {
	var x, z int
	switch {
	case tilt == Flat && parity == Odd:
		x = o.Col
		z = o.Row - (o.Col-(o.Col&1))/2
	case tilt == Flat && parity == Even:
		x = o.Col
		z = o.Row - (o.Col+(o.Col&1))/2
	case tilt == Sharp && parity == Odd:
		x = o.Col - (o.Row-(o.Row&1))/2
		z = o.Row
	default: // Sharp, Even
		x = o.Col - (o.Row+(o.Row&1))/2
		z = o.Row
	}

	return Cube{x: x, y: -x - z, z: z}
}

// OffsetFromCube converts a cube coordinate into the offset system under the
// given orientation. Exact inverse of ToCube for the same (tilt, parity).
// Complexity: O(1).
func OffsetFromCube(c Cube, tilt Tilt, parity Parity) Offset {
	switch {
	case tilt == Flat && parity == Odd:
		return Offset{Col: c.x, Row: c.z + (c.x-(c.x&1))/2}
	case tilt == Flat && parity == Even:
		return Offset{Col: c.x, Row: c.z + (c.x+(c.x&1))/2}
	case tilt == Sharp && parity == Odd:
		return Offset{Col: c.x + (c.z-(c.z&1))/2, Row: c.z}
	default: // Sharp, Even
		return Offset{Col: c.x + (c.z+(c.z&1))/2, Row: c.z}
	}
}

// Neighbor returns the side-adjacent coordinate in slot i under the given
// orientation; index 0 is Northeast, clockwise, wrapping modulo 6.
// Complexity: O(1).
func (o Offset) Neighbor(i int, tilt Tilt, parity Parity) Offset {
	step := o.steps(tilt, parity)[wrap6(i)]

	return Offset{Col: o.Col + step[0], Row: o.Row + step[1]}
}

// Neighbors returns all six side-adjacent coordinates under the given
// orientation, Northeast first, proceeding clockwise, the same order the
// converted cube coordinates would enumerate in.
// Complexity: O(1), allocates the 6-element slice.
func (o Offset) Neighbors(tilt Tilt, parity Parity) []Offset {
	steps := o.steps(tilt, parity)
	coords := make([]Offset, 6)
	for i, step := range steps {
		coords[i] = Offset{Col: o.Col + step[0], Row: o.Row + step[1]}
	}

	return coords
}

// steps selects the 6-entry table for this coordinate's own parity.
func (o Offset) steps(tilt Tilt, parity Parity) [6][2]int {
	if tilt == Flat {
		if parity == Odd {
			return oddFlatSteps[o.Col&1]
		}

		return evenFlatSteps[o.Col&1]
	}
	if parity == Odd {
		return oddSharpSteps[o.Row&1]
	}

	return evenSharpSteps[o.Row&1]
}

// Dist returns the hex distance to other under the given orientation,
// computed by converting both operands to cube. Orientation is required
// because an offset pair alone does not pin down the underlying hexes.
// Complexity: O(1).
func (o Offset) Dist(other Offset, tilt Tilt, parity Parity) int {
	return o.ToCube(tilt, parity).Dist(other.ToCube(tilt, parity))
}

// String implements fmt.Stringer.
func (o Offset) String() string {
	return fmt.Sprintf("Offset(%d, %d)", o.Col, o.Row)
}
