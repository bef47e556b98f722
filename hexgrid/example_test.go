package hexgrid_test

import (
	"fmt"

	"github.com/burlingsmith/chickenwire/coord"
	"github.com/burlingsmith/chickenwire/hexgrid"
)

// ExampleNewRectangular builds a small board and lists its coordinates in the
// grid's preferred system.
func ExampleNewRectangular() {
	g, _ := hexgrid.NewRectangular(2, 2, "meadow")
	fmt.Println("hexes:", g.Len())
	for _, mc := range g.Coords() {
		fmt.Println(mc)
	}
	// Output:
	// hexes: 4
	// Multi[Offset](0, 1)
	// Multi[Offset](0, 0)
	// Multi[Offset](1, 1)
	// Multi[Offset](1, 0)
}

// ExampleGrid_Direction labels the edge between two occupied hexes.
func ExampleGrid_Direction() {
	g, _ := hexgrid.NewRectangular(2, 2, 0)
	a := coord.FromOffset(coord.Offset{Col: 0, Row: 0})
	b := coord.FromOffset(coord.Offset{Col: 1, Row: 0})

	dir, _ := g.Direction(a, b)
	fmt.Println(dir, "and back", dir.Opposite())
	// Output: E and back W
}

// ExampleGrid_Neighbor reads the value one compass step away.
func ExampleGrid_Neighbor() {
	g := hexgrid.New[string](coord.Flat, coord.Odd, coord.SysCube)
	g.Set(coord.FromCube(coord.Cube{}), "castle")
	g.Set(coord.FromCube(coord.NewCubeXY(1, 0)), "forest")

	v, ok := g.Neighbor(coord.FromCube(coord.Cube{}), hexgrid.Northeast)
	fmt.Println(v, ok)
	// Output: forest true
}
