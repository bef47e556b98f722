package coord

import "fmt"

// Cube operates on three axes, treating hexes as cross-sections of a cube
// sliced along its diagonal. Every Cube obeys x + y + z == 0; the struct is
// opaque so the invariant can never be violated after construction. The zero
// value is the origin.
type Cube struct {
	x, y, z int
}

// neighborOffsets are the six unit vectors of the hex sides, beginning with
// the Northeastern side and proceeding clockwise.
var neighborOffsets = [6]Cube{
	{1, 0, -1}, // NE
	{1, -1, 0},
	{0, -1, 1},
	{-1, 0, 1}, // SW
	{-1, 1, 0},
	{0, 1, -1},
}

// diagonalOffsets are the six second-ring corner vectors, beginning with the
// Southeastern diagonal and proceeding clockwise.
var diagonalOffsets = [6]Cube{
	{1, -2, 1}, // SE
	{-1, -1, 2},
	{-2, 1, 1},
	{-1, 2, -1}, // NW
	{1, 1, -2},
	{2, -1, -1},
}

// NewCube builds a Cube from three axis values.
// Returns ErrInvalidCoordinate unless x + y + z == 0.
// Complexity: O(1).
func NewCube(x, y, z int) (Cube, error) {
	if x+y+z != 0 {
		return Cube{}, fmt.Errorf("%w: cube (%d, %d, %d) does not sum to zero", ErrInvalidCoordinate, x, y, z)
	}

	return Cube{x: x, y: y, z: z}, nil
}

// NewCubeXY builds a Cube from the x and y axes, deriving z from the
// zero-sum constraint. Always succeeds.
// Complexity: O(1).
func NewCubeXY(x, y int) Cube {
	return Cube{x: x, y: y, z: -x - y}
}

// X returns the first axis value.
func (c Cube) X() int { return c.x }

// Y returns the second axis value.
func (c Cube) Y() int { return c.y }

// Z returns the third axis value.
func (c Cube) Z() int { return c.z }

// Coords returns all three axis values.
// Complexity: O(1).
func (c Cube) Coords() (x, y, z int) {
	return c.x, c.y, c.z
}

// Set replaces the coordinate's contents wholesale, deriving z from x and y
// so the zero-sum invariant holds by construction.
// Complexity: O(1).
func (c *Cube) Set(x, y int) {
	c.x = x
	c.y = y
	c.z = -x - y
}

// Add returns the component-wise vector sum.
// Complexity: O(1).
func (c Cube) Add(other Cube) Cube {
	return Cube{x: c.x + other.x, y: c.y + other.y, z: c.z + other.z}
}

// Sub returns the component-wise vector difference.
// Complexity: O(1).
func (c Cube) Sub(other Cube) Cube {
	return Cube{x: c.x - other.x, y: c.y - other.y, z: c.z - other.z}
}

// Mul returns the coordinate scaled by n, like a vector.
// Complexity: O(1).
func (c Cube) Mul(n int) Cube {
	return Cube{x: c.x * n, y: c.y * n, z: c.z * n}
}

// Div returns the coordinate divided by n, rounding toward zero. The x and z
// axes are truncated and y is rederived, so the result always satisfies the
// zero-sum invariant even when the axes do not divide exactly.
// Returns ErrDivisionByZero when n == 0.
// Complexity: O(1).
func (c Cube) Div(n int) (Cube, error) {
	if n == 0 {
		return Cube{}, ErrDivisionByZero
	}
	x, z := c.x/n, c.z/n

	return Cube{x: x, y: -x - z, z: z}, nil
}

// Neighbor returns the coordinate one step along side i, where index 0 is the
// Northeastern side and indices proceed clockwise, wrapping modulo 6
// (negative indices wrap too).
// Complexity: O(1).
func (c Cube) Neighbor(i int) Cube {
	return c.Add(neighborOffsets[wrap6(i)])
}

// Neighbors returns all six side-adjacent coordinates, Northeast first,
// proceeding clockwise. The Northeastern slot anchors the ordering because it
// is the first position (walking clockwise) that visually remains in the same
// compass wedge as the calling coordinate; the same rule fixes the diagonal
// anchor at Southeast.
// Complexity: O(1), allocates the 6-element slice.
func (c Cube) Neighbors() []Cube {
	coords := make([]Cube, 6)
	for i := range coords {
		coords[i] = c.Add(neighborOffsets[i])
	}

	return coords
}

// Diagonal returns the coordinate across corner i, where index 0 is the
// Southeastern diagonal and indices proceed clockwise, wrapping modulo 6.
// Complexity: O(1).
func (c Cube) Diagonal(i int) Cube {
	return c.Add(diagonalOffsets[wrap6(i)])
}

// Diagonals returns all six corner-adjacent coordinates, Southeast first,
// proceeding clockwise.
// Complexity: O(1), allocates the 6-element slice.
func (c Cube) Diagonals() []Cube {
	coords := make([]Cube, 6)
	for i := range coords {
		coords[i] = c.Add(diagonalOffsets[i])
	}

	return coords
}

// Dist returns the hex distance to other: max(|Δx|, |Δy|, |Δz|).
// Symmetric; zero iff the coordinates are equal.
// Complexity: O(1).
func (c Cube) Dist(other Cube) int {
	return max(abs(c.x-other.x), abs(c.y-other.y), abs(c.z-other.z))
}

// RotateCW rotates the vector from pivot to c clockwise by turns×60°,
// using exact integer axis permutation with negation (no trigonometry).
// Turns are taken modulo 6; negative turn counts rotate the other way.
// Complexity: O(1).
func (c Cube) RotateCW(pivot Cube, turns int) Cube {
	v := c.Sub(pivot)
	turns = wrap6(turns)
	for t := 0; t < turns; t++ {
		v = Cube{x: -v.z, y: -v.x, z: -v.y}
	}

	return v.Add(pivot)
}

// RotateCCW rotates the vector from pivot to c counterclockwise by turns×60°.
// Turns are taken modulo 6; negative turn counts rotate the other way.
// Complexity: O(1).
func (c Cube) RotateCCW(pivot Cube, turns int) Cube {
	v := c.Sub(pivot)
	turns = wrap6(turns)
	for t := 0; t < turns; t++ {
		v = Cube{x: -v.y, y: -v.z, z: -v.x}
	}

	return v.Add(pivot)
}

// Ring returns exactly the coordinates at distance radius from c, walking the
// six sides in turn to produce one continuous clockwise traversal: the walk
// begins radius steps along side 0 (Northeast) and each side is walked in the
// direction two slots clockwise from the side's own direction. Length is 1
// for radius 0, 6×radius otherwise. A negative radius yields nil.
// Complexity: O(radius).
func (c Cube) Ring(radius int) []Cube {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Cube{c}
	}

	coords := make([]Cube, 0, 6*radius)
	for side := 0; side < 6; side++ {
		next := neighborOffsets[side].Mul(radius).Add(c)
		walkDir := (side + 2) % 6
		for step := 0; step < radius; step++ {
			coords = append(coords, next)
			next = next.Neighbor(walkDir)
		}
	}

	return coords
}

// Spiral returns the concatenation of Ring(0) through Ring(radius), so c
// itself appears exactly once, first. Length is 1 + 3·radius·(radius+1).
// A negative radius yields nil.
// Complexity: O(radius²).
func (c Cube) Spiral(radius int) []Cube {
	if radius < 0 {
		return nil
	}

	coords := make([]Cube, 0, 1+3*radius*(radius+1))
	for r := 0; r <= radius; r++ {
		coords = append(coords, c.Ring(r)...)
	}

	return coords
}

// ToAxial projects the coordinate onto the axial plane: q = x, r = z.
// Lossless; the dropped y axis is rederivable.
// Complexity: O(1).
func (c Cube) ToAxial() Axial {
	return Axial{Q: c.x, R: c.z}
}

// String implements fmt.Stringer.
func (c Cube) String() string {
	return fmt.Sprintf("Cube(%d, %d, %d)", c.x, c.y, c.z)
}

// wrap6 maps any index onto 0..5.
func wrap6(i int) int {
	return ((i % 6) + 6) % 6
}

// abs avoids a float round-trip for integer magnitudes.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
