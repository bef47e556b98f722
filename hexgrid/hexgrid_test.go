package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/burlingsmith/chickenwire/coord"
	"github.com/burlingsmith/chickenwire/hexgrid"
)

// mcCube wraps a cube fixture (z derived) as a MultiCoord key.
func mcCube(x, y int) coord.MultiCoord {
	return coord.FromCube(coord.NewCubeXY(x, y))
}

// mcOffset wraps an offset pair as a MultiCoord key.
func mcOffset(col, row int) coord.MultiCoord {
	return coord.FromOffset(coord.Offset{Col: col, Row: row})
}

// requireConsistent asserts the container invariant through the public API:
// for every occupied coordinate, an edge exists toward each geometric
// neighbor iff that neighbor is occupied, the two directions carry opposite
// compass labels, and no link points at a vacant or non-adjacent coordinate.
func requireConsistent[T any](t *testing.T, g *hexgrid.Grid[T]) {
	t.Helper()
	for _, mc := range g.Coords() {
		var key coord.Cube
		switch mc.System() {
		case coord.SysOffset:
			o, err := mc.Offset()
			require.NoError(t, err)
			key = o.ToCube(g.Tilt(), g.Parity())
		case coord.SysDouble:
			d, err := mc.Double()
			require.NoError(t, err)
			key = d.ToCube(g.Tilt())
		default:
			var err error
			key, err = mc.Cube()
			require.NoError(t, err)
		}
		keyMC := coord.FromCube(key)
		links := g.Links(keyMC)
		require.NotNil(t, links, "occupied coordinate must expose a link map")

		for i, nb := range key.Neighbors() {
			nbMC := coord.FromCube(nb)
			if g.ContainsCoord(nbMC) {
				dir, linked := g.Direction(keyMC, nbMC)
				require.True(t, linked, "edge %v↔%v missing", key, nb)
				require.Equal(t, hexgrid.Compass(i), dir, "edge %v→%v label", key, nb)
				back, linked := g.Direction(nbMC, keyMC)
				require.True(t, linked, "mirrored edge %v→%v missing", nb, key)
				require.Equal(t, dir.Opposite(), back, "mirrored label")
			} else {
				require.False(t, g.HasEdge(keyMC, nbMC), "dangling edge %v→%v", key, nb)
			}
		}
		for dir, target := range links {
			require.Equal(t, key.Neighbor(int(dir)), target, "link slot must match geometry")
			require.True(t, g.ContainsCoord(coord.FromCube(target)), "link target must be occupied")
		}
	}
}

//----------------------------------------------------------------------------//
// Grid lifecycle suite
//----------------------------------------------------------------------------//

// GridSuite exercises the occupancy state machine and edge bookkeeping.
type GridSuite struct {
	suite.Suite
	g *hexgrid.Grid[int]
}

func (s *GridSuite) SetupTest() {
	s.g = hexgrid.New[int](coord.Flat, coord.Odd, coord.SysCube)
}

// TestEmpty: a fresh grid holds nothing and fails the occupied-only ops.
func (s *GridSuite) TestEmpty() {
	require.Zero(s.T(), s.g.Len())
	require.False(s.T(), s.g.ContainsCoord(mcCube(0, 0)))

	_, ok := s.g.Get(mcCube(0, 0))
	require.False(s.T(), ok)
	require.Nil(s.T(), s.g.GetMut(mcCube(0, 0)))

	require.ErrorIs(s.T(), s.g.Update(mcCube(0, 0), 1), hexgrid.ErrNotOccupied)
	_, ok = s.g.Remove(mcCube(0, 0))
	require.False(s.T(), ok)
	require.Zero(s.T(), s.g.Len(), "failed operations leave the grid untouched")
}

// TestAddGet: inserted values are visible under every aliased key form.
func (s *GridSuite) TestAddGet() {
	require.NoError(s.T(), s.g.Add(mcCube(0, 0), 7))
	require.Equal(s.T(), 1, s.g.Len())

	// The same hex through each representation (Flat/Odd orientation).
	v, ok := s.g.Get(coord.FromAxial(coord.Axial{}))
	require.True(s.T(), ok)
	require.Equal(s.T(), 7, v)
	require.True(s.T(), s.g.ContainsCoord(mcOffset(0, 0)))
	d, err := coord.NewDouble(0, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), s.g.ContainsCoord(coord.FromDouble(d)))
}

// TestAddOccupied: the failure edge of the state machine keeps prior state.
func (s *GridSuite) TestAddOccupied() {
	require.NoError(s.T(), s.g.Add(mcCube(1, -1), 1))
	require.ErrorIs(s.T(), s.g.Add(mcCube(1, -1), 2), hexgrid.ErrAlreadyOccupied)

	v, ok := s.g.Get(mcCube(1, -1))
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, v, "prior value survives a rejected Add")
}

// TestUpdate: value replaced in place, topology untouched.
func (s *GridSuite) TestUpdate() {
	require.NoError(s.T(), s.g.Add(mcCube(0, 0), 1))
	require.NoError(s.T(), s.g.Add(mcCube(1, 0), 2))
	before := s.g.Links(mcCube(0, 0))

	require.NoError(s.T(), s.g.Update(mcCube(0, 0), 9))
	v, _ := s.g.Get(mcCube(0, 0))
	require.Equal(s.T(), 9, v)
	require.Equal(s.T(), before, s.g.Links(mcCube(0, 0)), "topology unchanged")
	requireConsistent(s.T(), s.g)
}

// TestSet: upsert inserts when vacant and overwrites when occupied.
func (s *GridSuite) TestSet() {
	s.g.Set(mcCube(0, 0), 1)
	require.Equal(s.T(), 1, s.g.Len())

	s.g.Set(mcCube(0, 0), 2)
	require.Equal(s.T(), 1, s.g.Len(), "Set on occupied must not duplicate")
	v, _ := s.g.Get(mcCube(0, 0))
	require.Equal(s.T(), 2, v)

	s.g.Set(mcCube(0, 1), 3) // immediate neighbor, slot NW from origin
	require.True(s.T(), s.g.HasEdge(mcCube(0, 0), mcCube(0, 1)))
	requireConsistent(s.T(), s.g)
}

// TestRemove: returns the stored value and leaves no dangling edges.
func (s *GridSuite) TestRemove() {
	require.NoError(s.T(), s.g.Add(mcCube(0, 0), 10))
	require.NoError(s.T(), s.g.Add(mcCube(1, 0), 20)) // NE of origin
	require.True(s.T(), s.g.HasEdge(mcCube(0, 0), mcCube(1, 0)))

	v, ok := s.g.Remove(mcCube(1, 0))
	require.True(s.T(), ok)
	require.Equal(s.T(), 20, v)
	require.False(s.T(), s.g.ContainsCoord(mcCube(1, 0)))
	require.False(s.T(), s.g.HasEdge(mcCube(0, 0), mcCube(1, 0)), "no dangling edge")
	require.Empty(s.T(), s.g.Links(mcCube(0, 0)))
	requireConsistent(s.T(), s.g)

	// Re-adding relinks.
	require.NoError(s.T(), s.g.Add(mcCube(1, 0), 30))
	require.True(s.T(), s.g.HasEdge(mcCube(0, 0), mcCube(1, 0)))
}

// TestMixedSequence hammers the invariant across aliased keys and all four
// mutation verbs.
func (s *GridSuite) TestMixedSequence() {
	for _, c := range (coord.Cube{}).Spiral(2) {
		s.g.Set(coord.FromCube(c), c.Dist(coord.Cube{}))
	}
	requireConsistent(s.T(), s.g)
	require.Equal(s.T(), 19, s.g.Len())

	// Punch holes through offset-form keys.
	_, ok := s.g.Remove(mcOffset(1, 0)) // cube (1, -1, 0)
	require.True(s.T(), ok)
	_, ok = s.g.Remove(mcCube(0, 0))
	require.True(s.T(), ok)
	requireConsistent(s.T(), s.g)
	require.Equal(s.T(), 17, s.g.Len())

	// Refill one hole via the axial alias.
	require.NoError(s.T(), s.g.Add(coord.FromAxial(coord.Axial{Q: 0, R: 0}), 99))
	requireConsistent(s.T(), s.g)
	v, _ := s.g.Get(mcCube(0, 0))
	require.Equal(s.T(), 99, v)
}

// TestGetMut: in-place mutation is visible through Get.
func (s *GridSuite) TestGetMut() {
	require.NoError(s.T(), s.g.Add(mcCube(2, -2), 5))
	p := s.g.GetMut(mcCube(2, -2))
	require.NotNil(s.T(), p)
	*p = 42
	v, _ := s.g.Get(mcCube(2, -2))
	require.Equal(s.T(), 42, v)
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

//----------------------------------------------------------------------------//
// Factories
//----------------------------------------------------------------------------//

// TestNewRadial_One: origin plus its six neighbors, nothing at distance two.
func TestNewRadial_One(t *testing.T) {
	g, err := hexgrid.NewRadial(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7, g.Len())
	require.Equal(t, coord.SysCube, g.System())

	origin := coord.Cube{}
	require.True(t, g.ContainsCoord(coord.FromCube(origin)))
	for i, nb := range origin.Neighbors() {
		require.True(t, g.ContainsCoord(coord.FromCube(nb)), "neighbor slot %d", i)
		dir, linked := g.Direction(coord.FromCube(origin), coord.FromCube(nb))
		require.True(t, linked)
		require.Equal(t, hexgrid.Compass(i), dir)
	}
	for _, far := range origin.Ring(2) {
		_, ok := g.Get(coord.FromCube(far))
		require.False(t, ok, "distance-2 coordinate %v must be vacant", far)
	}

	// Each rim hex links to the origin and its two rim neighbors.
	for _, nb := range origin.Neighbors() {
		require.Len(t, g.Links(coord.FromCube(nb)), 3)
	}
	require.Len(t, g.Links(coord.FromCube(origin)), 6)
	requireConsistent(t, g)
}

// TestNewRadial_Zero: a single isolated hex.
func TestNewRadial_Zero(t *testing.T) {
	g, err := hexgrid.NewRadial(0, "only")
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	require.Empty(t, g.Links(mcCube(0, 0)))
	require.NotNil(t, g.Links(mcCube(0, 0)), "occupied but isolated")
}

// TestNewRadial_Negative rejects a negative radius.
func TestNewRadial_Negative(t *testing.T) {
	_, err := hexgrid.NewRadial(-1, 0)
	require.ErrorIs(t, err, hexgrid.ErrNegativeRadius)
}

// TestNewRectangular_OneByOne: exactly the offset origin, nothing adjacent.
func TestNewRectangular_OneByOne(t *testing.T) {
	g, err := hexgrid.NewRectangular(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	require.Equal(t, coord.SysOffset, g.System())
	require.Equal(t, coord.Flat, g.Tilt())
	require.Equal(t, coord.Odd, g.Parity())

	require.True(t, g.ContainsCoord(mcOffset(0, 0)))
	surrounding := [][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	for _, cr := range surrounding {
		require.False(t, g.ContainsCoord(mcOffset(cr[0], cr[1])),
			"unexpected coordinate Offset(%d, %d)", cr[0], cr[1])
	}
	require.Empty(t, g.Links(mcOffset(0, 0)))
}

// TestNewRectangular_TwoByTwo: four hexes, five interior edges.
func TestNewRectangular_TwoByTwo(t *testing.T) {
	g, err := hexgrid.NewRectangular(2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())
	requireConsistent(t, g)

	// Under Flat/Odd: (0,0)↔(1,0) E, (0,0)↔(0,1) SE, (1,0)↔(1,1) SE,
	// (0,1)↔(1,1) E, (1,0)↔(0,1) SW; the diagonal pair is not adjacent.
	edges := []struct {
		a, b [2]int
		dir  hexgrid.Compass
	}{
		{[2]int{0, 0}, [2]int{1, 0}, hexgrid.East},
		{[2]int{0, 0}, [2]int{0, 1}, hexgrid.Southeast},
		{[2]int{1, 0}, [2]int{1, 1}, hexgrid.Southeast},
		{[2]int{0, 1}, [2]int{1, 1}, hexgrid.East},
		{[2]int{1, 0}, [2]int{0, 1}, hexgrid.Southwest},
	}
	for _, e := range edges {
		dir, linked := g.Direction(mcOffset(e.a[0], e.a[1]), mcOffset(e.b[0], e.b[1]))
		require.True(t, linked, "edge %v↔%v", e.a, e.b)
		require.Equal(t, e.dir, dir)
	}
	require.False(t, g.HasEdge(mcOffset(0, 0), mcOffset(1, 1)),
		"Offset(0,0) and Offset(1,1) are not geometric neighbors under Flat/Odd")
}

// TestNewRectangular_Dimensions spans a few shapes and validates inputs.
func TestNewRectangular_Dimensions(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {10, 5}, {5, 10}} {
		g, err := hexgrid.NewRectangular(dims[0], dims[1], 0)
		require.NoError(t, err)
		require.Equal(t, dims[0]*dims[1], g.Len(), "%dx%d", dims[0], dims[1])
		for col := 0; col < dims[0]; col++ {
			for row := 0; row < dims[1]; row++ {
				require.True(t, g.ContainsCoord(mcOffset(col, row)))
			}
		}
		require.False(t, g.ContainsCoord(mcOffset(dims[0], 0)))
		require.False(t, g.ContainsCoord(mcOffset(0, dims[1])))
		requireConsistent(t, g)
	}

	_, err := hexgrid.NewRectangular(0, 3, 0)
	require.ErrorIs(t, err, hexgrid.ErrEmptyGrid)
	_, err = hexgrid.NewRectangular(3, 0, 0)
	require.ErrorIs(t, err, hexgrid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestContainsValue scans stored values.
func TestContainsValue(t *testing.T) {
	g, err := hexgrid.NewRadial(1, "grass")
	require.NoError(t, err)
	require.True(t, hexgrid.ContainsValue(g, "grass"))
	require.False(t, hexgrid.ContainsValue(g, "water"))

	require.NoError(t, g.Update(mcCube(0, 0), "water"))
	require.True(t, hexgrid.ContainsValue(g, "water"))
}

// TestNeighborLookup reads the value in a compass slot.
func TestNeighborLookup(t *testing.T) {
	g := hexgrid.New[string](coord.Flat, coord.Odd, coord.SysCube)
	g.Set(mcCube(0, 0), "center")
	g.Set(mcCube(1, 0), "northeast") // slot 0 from origin

	v, ok := g.Neighbor(mcCube(0, 0), hexgrid.Northeast)
	require.True(t, ok)
	require.Equal(t, "northeast", v)

	_, ok = g.Neighbor(mcCube(0, 0), hexgrid.Southwest)
	require.False(t, ok, "vacant slot")

	v, ok = g.Neighbor(mcCube(1, 0), hexgrid.Southwest)
	require.True(t, ok, "mirrored edge")
	require.Equal(t, "center", v)
}

// TestCoords expresses keys in the preferred system, deterministically.
func TestCoords(t *testing.T) {
	g, err := hexgrid.NewRectangular(2, 2, 0)
	require.NoError(t, err)

	got := g.Coords()
	require.Len(t, got, 4)
	// Sorted by cube key (x, then y, then z), projected back to Offset.
	want := [][2]int{{0, 1}, {0, 0}, {1, 1}, {1, 0}}
	for i, mc := range got {
		require.Equal(t, coord.SysOffset, mc.System())
		off, err := mc.Offset()
		require.NoError(t, err)
		require.Equal(t, coord.Offset{Col: want[i][0], Row: want[i][1]}, off, "position %d", i)
	}
}

// TestCoords_CubePreferred returns cube-tagged keys for radial grids.
func TestCoords_CubePreferred(t *testing.T) {
	g, err := hexgrid.NewRadial(1, 0)
	require.NoError(t, err)
	for _, mc := range g.Coords() {
		require.Equal(t, coord.SysCube, mc.System())
		c, err := mc.Cube()
		require.NoError(t, err)
		require.LessOrEqual(t, (coord.Cube{}).Dist(c), 1)
	}
}
