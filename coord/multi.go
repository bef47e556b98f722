package coord

import "fmt"

// MultiCoord carries any one of the four coordinate representations together
// with a System tag, similar to a union type that tracks its own typing. It
// exists so containers can accept every representation through one key type.
//
// A MultiCoord is only ever built from an already-valid concrete coordinate,
// so it needs no validation of its own; extraction back to a concrete type is
// the partial direction and reports ErrSystemMismatch instead of guessing.
// The zero value is the cube origin.
type MultiCoord struct {
	sys     System
	a, b, c int
}

// FromCube wraps a cube coordinate. Always succeeds.
// Complexity: O(1).
func FromCube(cube Cube) MultiCoord {
	return MultiCoord{sys: SysCube, a: cube.x, b: cube.y, c: cube.z}
}

// FromAxial wraps an axial coordinate. Always succeeds.
// Complexity: O(1).
func FromAxial(axial Axial) MultiCoord {
	return MultiCoord{sys: SysAxial, a: axial.Q, b: axial.R}
}

// FromDouble wraps an interlaced coordinate. Always succeeds.
// Complexity: O(1).
func FromDouble(double Double) MultiCoord {
	return MultiCoord{sys: SysDouble, a: double.col, b: double.row}
}

// FromOffset wraps an offset coordinate. Always succeeds.
// Complexity: O(1).
func FromOffset(offset Offset) MultiCoord {
	return MultiCoord{sys: SysOffset, a: offset.Col, b: offset.Row}
}

// System returns the tag identifying which representation is carried.
// Complexity: O(1).
func (m MultiCoord) System() System {
	return m.sys
}

// Cube extracts the carried coordinate as a Cube. An Axial payload is
// accepted too, since the two systems convert losslessly; any other tag
// returns ErrSystemMismatch.
// Complexity: O(1).
func (m MultiCoord) Cube() (Cube, error) {
	switch m.sys {
	case SysCube:
		return Cube{x: m.a, y: m.b, z: m.c}, nil
	case SysAxial:
		return Axial{Q: m.a, R: m.b}.ToCube(), nil
	default:
		return Cube{}, fmt.Errorf("%w: %v is not a Cube or Axial coordinate", ErrSystemMismatch, m.sys)
	}
}

// Axial extracts the carried coordinate as an Axial. A Cube payload is
// accepted too, since the two systems convert losslessly; any other tag
// returns ErrSystemMismatch.
// Complexity: O(1).
func (m MultiCoord) Axial() (Axial, error) {
	switch m.sys {
	case SysAxial:
		return Axial{Q: m.a, R: m.b}, nil
	case SysCube:
		return Axial{Q: m.a, R: m.c}, nil
	default:
		return Axial{}, fmt.Errorf("%w: %v is not an Axial or Cube coordinate", ErrSystemMismatch, m.sys)
	}
}

// Double extracts the carried coordinate as a Double.
// Returns ErrSystemMismatch under any other tag.
// Complexity: O(1).
func (m MultiCoord) Double() (Double, error) {
	if m.sys != SysDouble {
		return Double{}, fmt.Errorf("%w: %v is not a Double coordinate", ErrSystemMismatch, m.sys)
	}

	return Double{col: m.a, row: m.b}, nil
}

// Offset extracts the carried coordinate as an Offset.
// Returns ErrSystemMismatch under any other tag.
// Complexity: O(1).
func (m MultiCoord) Offset() (Offset, error) {
	if m.sys != SysOffset {
		return Offset{}, fmt.Errorf("%w: %v is not an Offset coordinate", ErrSystemMismatch, m.sys)
	}

	return Offset{Col: m.a, Row: m.b}, nil
}

// String implements fmt.Stringer.
func (m MultiCoord) String() string {
	if m.sys == SysCube {
		return fmt.Sprintf("Multi[Cube](%d, %d, %d)", m.a, m.b, m.c)
	}

	return fmt.Sprintf("Multi[%v](%d, %d)", m.sys, m.a, m.b)
}
