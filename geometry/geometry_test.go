package geometry

import (
	"testing"

	"github.com/mkarlsen/roomforge/types"
)

func rect(x, y, w, h int) types.Area {
	return types.Area{X: x, Y: y, Width: w, Height: h}
}

func TestPerimeter_RectangleCount(t *testing.T) {
	// |perimeter| = (W+2)(H+2) - W*H for 8-neighbor adjacency.
	cases := []struct {
		w, h int
		want int
	}{
		{5, 5, 24},
		{1, 1, 8},
		{3, 1, 12},
		{1, 4, 14},
		{10, 2, 28},
	}
	for _, c := range cases {
		got := Perimeter(rect(0, 0, c.w, c.h), Adjacency8)
		if len(got) != c.want {
			t.Errorf("perimeter of %dx%d: got %d tiles, want %d", c.w, c.h, len(got), c.want)
		}
	}
}

func TestPerimeter_DisjointFromArea(t *testing.T) {
	area := rect(100, 100, 5, 5)
	for _, p := range Perimeter(area, Adjacency8) {
		if Contains(area, p) {
			t.Errorf("perimeter tile %v lies inside the area", p)
		}
	}
}

func TestPerimeter_EveryTileTouchesArea(t *testing.T) {
	area := rect(10, 20, 4, 3)
	for _, p := range Perimeter(area, Adjacency8) {
		touches := false
		for _, n := range Neighbors(p, Adjacency8) {
			if Contains(area, n) {
				touches = true
				break
			}
		}
		if !touches {
			t.Errorf("perimeter tile %v has no neighbor inside the area", p)
		}
	}
}

func TestPerimeter_FourNeighborSkipsCorners(t *testing.T) {
	// Under 4-neighbor adjacency the diagonal corner tiles drop out:
	// a W×H rectangle keeps 2W + 2H edge tiles.
	got := Perimeter(rect(0, 0, 5, 3), Adjacency4)
	if len(got) != 16 {
		t.Fatalf("got %d tiles, want 16", len(got))
	}
	corner := types.Tile{X: -1, Y: -1}
	for _, p := range got {
		if p == corner {
			t.Errorf("corner tile %v should not be in the 4-neighbor perimeter", corner)
		}
	}
}

func TestPerimeter_SingleTileRing(t *testing.T) {
	got := Perimeter(rect(7, 7, 1, 1), Adjacency8)
	if len(got) != 8 {
		t.Fatalf("got %d tiles, want the full 8-neighbor ring", len(got))
	}
	set := TileSet(got)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !set[types.Tile{X: 7 + dx, Y: 7 + dy}] {
				t.Errorf("ring tile (%d,%d) missing", 7+dx, 7+dy)
			}
		}
	}
}

func TestPerimeter_ExplicitTileSet(t *testing.T) {
	// L-shaped area.
	area := types.Area{Tiles: []types.Tile{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}}
	got := Perimeter(area, Adjacency8)
	set := TileSet(got)

	if set[types.Tile{X: 0, Y: 0}] || set[types.Tile{X: 1, Y: 1}] {
		t.Error("area tiles must not appear in the perimeter")
	}
	// The inner corner of the L is adjacent to two area tiles.
	if !set[types.Tile{X: 1, Y: 0}] {
		t.Error("expected (1,0) in the perimeter of the L shape")
	}
	if !set[types.Tile{X: -1, Y: -1}] {
		t.Error("expected diagonal corner (-1,-1) in the 8-neighbor perimeter")
	}
}

func TestPerimeter_DeterministicOrder(t *testing.T) {
	area := rect(3, 3, 4, 2)
	a := Perimeter(area, Adjacency8)
	b := Perimeter(area, Adjacency8)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
	// Row-major scan: first tile is the top-left corner of the expanded box.
	if a[0] != (types.Tile{X: 2, Y: 2}) {
		t.Errorf("first perimeter tile %v, want (2,2)", a[0])
	}
}

func TestBounds_TileSet(t *testing.T) {
	area := types.Area{Tiles: []types.Tile{{X: 4, Y: 9}, {X: -2, Y: 3}, {X: 0, Y: 11}}}
	minX, minY, maxX, maxY := Bounds(area)
	if minX != -2 || minY != 3 || maxX != 4 || maxY != 11 {
		t.Errorf("got bounds (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestContains_Rectangle(t *testing.T) {
	area := rect(100, 100, 5, 5)
	if !Contains(area, types.Tile{X: 104, Y: 104}) {
		t.Error("(104,104) should be inside")
	}
	if Contains(area, types.Tile{X: 105, Y: 104}) {
		t.Error("(105,104) should be outside")
	}
}

func TestOrthogonal(t *testing.T) {
	a := types.Tile{X: 5, Y: 5}
	if !Orthogonal(a, types.Tile{X: 5, Y: 4}) {
		t.Error("vertical neighbor should be orthogonal")
	}
	if Orthogonal(a, types.Tile{X: 6, Y: 6}) {
		t.Error("diagonal neighbor is not orthogonal")
	}
	if Orthogonal(a, a) {
		t.Error("a tile is not orthogonal to itself")
	}
}

func TestAreaTiles_RowMajor(t *testing.T) {
	got := AreaTiles(rect(1, 1, 2, 2))
	want := []types.Tile{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
