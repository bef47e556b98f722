package coord

import "fmt"

// Axial uses the same planes as Cube but stores only two of the three values;
// for cube (x, y, z) the projection is q = x, r = z, and the dropped y axis
// is always recoverable from the zero-sum constraint. The zero value is the
// origin. No independent invariant exists, so the fields are public.
type Axial struct {
	Q, R int
}

// NewAxial builds an Axial from two axis values. Always succeeds.
// Complexity: O(1).
func NewAxial(q, r int) Axial {
	return Axial{Q: q, R: r}
}

// ToCube lifts the coordinate back to the canonical cube system,
// deriving y = -q - r. Total, lossless bijection with Cube.ToAxial.
// Complexity: O(1).
func (a Axial) ToCube() Cube {
	return Cube{x: a.Q, y: -a.Q - a.R, z: a.R}
}

// Add returns the component-wise vector sum.
// Complexity: O(1).
func (a Axial) Add(other Axial) Axial {
	return Axial{Q: a.Q + other.Q, R: a.R + other.R}
}

// Sub returns the component-wise vector difference.
// Complexity: O(1).
func (a Axial) Sub(other Axial) Axial {
	return Axial{Q: a.Q - other.Q, R: a.R - other.R}
}

// Mul returns the coordinate scaled by n, like a vector.
// Complexity: O(1).
func (a Axial) Mul(n int) Axial {
	return Axial{Q: a.Q * n, R: a.R * n}
}

// Div returns the coordinate divided by n, rounding toward zero.
// Returns ErrDivisionByZero when n == 0.
// Complexity: O(1).
func (a Axial) Div(n int) (Axial, error) {
	if n == 0 {
		return Axial{}, ErrDivisionByZero
	}

	return Axial{Q: a.Q / n, R: a.R / n}, nil
}

// Dist returns the hex distance to other, computed on the cube lift.
// Complexity: O(1).
func (a Axial) Dist(other Axial) int {
	return a.ToCube().Dist(other.ToCube())
}

// String implements fmt.Stringer.
func (a Axial) String() string {
	return fmt.Sprintf("Axial(%d, %d)", a.Q, a.R)
}
