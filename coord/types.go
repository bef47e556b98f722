// Package coord defines the coordinate system labels, orientation labels,
// and sentinel errors shared by every coordinate type.
package coord

import "errors"

// Sentinel errors for coordinate operations.
var (
	// ErrInvalidCoordinate indicates constructor input that violates the
	// target type's algebraic invariant (Cube: x+y+z == 0; Double: col+row even).
	ErrInvalidCoordinate = errors.New("coord: invalid coordinate")

	// ErrDivisionByZero indicates a scalar division by zero.
	ErrDivisionByZero = errors.New("coord: division by zero")

	// ErrSystemMismatch indicates a MultiCoord extraction whose tag does not
	// match (and is not losslessly derivable from) the requested system.
	ErrSystemMismatch = errors.New("coord: coordinate system mismatch")
)

// System is a valueless label for one of the four supported coordinate
// systems. The zero value is SysCube, the canonical system.
type System int

const (
	// SysCube labels the canonical three-axis cube system.
	SysCube System = iota
	// SysAxial labels the two-axis projection of cube.
	SysAxial
	// SysDouble labels the interlaced (doubled) rectangular system.
	SysDouble
	// SysOffset labels the offset rectangular system.
	SysOffset
)

// String implements fmt.Stringer. Complexity: O(1).
func (s System) String() string {
	switch s {
	case SysCube:
		return "Cube"
	case SysAxial:
		return "Axial"
	case SysDouble:
		return "Double"
	case SysOffset:
		return "Offset"
	default:
		return "Unknown"
	}
}

// Tilt is the orientation of a hexagon: Flat when an edge faces up,
// Sharp when a corner does. The zero value is Flat.
//
// Offset and Double coordinates are meaningless without a Tilt; it is
// supplied by the surrounding grid, never stored on the coordinate.
type Tilt int

const (
	// Flat orients hexes edge-up.
	Flat Tilt = iota
	// Sharp orients hexes corner-up.
	Sharp
)

// String implements fmt.Stringer. Complexity: O(1).
func (t Tilt) String() string {
	if t == Sharp {
		return "Sharp"
	}

	return "Flat"
}

// Parity selects which rows (Sharp) or columns (Flat) of an Offset grid are
// shifted. The zero value is Even.
type Parity int

const (
	// Even shifts the even rows/columns.
	Even Parity = iota
	// Odd shifts the odd rows/columns.
	Odd
)

// String implements fmt.Stringer. Complexity: O(1).
func (p Parity) String() string {
	if p == Odd {
		return "Odd"
	}

	return "Even"
}
