package door

import (
	"testing"

	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/planner/layout"
	"github.com/mkarlsen/roomforge/types"
)

func rect(x, y, w, h int) types.Area {
	return types.Area{X: x, Y: y, Width: w, Height: h}
}

func TestSelect_PreferredTopCenter(t *testing.T) {
	// Spec scenario: empty 5x5 area at (100,100), preferred top.
	area := rect(100, 100, 5, 5)
	got := Select(area, nil, types.SideTop, nil)
	if got == nil {
		t.Fatal("expected a door tile")
	}
	if got.Y != 99 {
		t.Errorf("door at y=%d, want 99 (one above the area)", got.Y)
	}
	if got.X != 102 {
		t.Errorf("door at x=%d, want 102 (area center)", got.X)
	}
}

func TestSelect_EachSide(t *testing.T) {
	area := rect(0, 0, 5, 5)
	cases := []struct {
		side types.Side
		want types.Tile
	}{
		{types.SideTop, types.Tile{X: 2, Y: -1}},
		{types.SideBottom, types.Tile{X: 2, Y: 5}},
		{types.SideLeft, types.Tile{X: -1, Y: 2}},
		{types.SideRight, types.Tile{X: 5, Y: 2}},
	}
	for _, c := range cases {
		got := Select(area, nil, c.side, nil)
		if got == nil {
			t.Fatalf("side %s: expected a door tile", c.side)
		}
		if *got != c.want {
			t.Errorf("side %s: got %v, want %v", c.side, *got, c.want)
		}
	}
}

func TestSelect_OnSideBeatsCloserOffSide(t *testing.T) {
	// Block every top-adjacent interior tile except the far corner one, so
	// the surviving top candidate is far from the ideal midpoint. It must
	// still beat every off-side candidate.
	area := rect(0, 0, 5, 5)
	occupied := map[types.Tile]bool{}
	for x := 1; x <= 4; x++ {
		occupied[types.Tile{X: x, Y: 0}] = true
	}
	got := Select(area, occupied, types.SideTop, nil)
	if got == nil {
		t.Fatal("expected a door tile")
	}
	if got.Y != -1 {
		t.Errorf("door at %v, want a tile on the top row (y=-1)", *got)
	}
	if got.X != 0 {
		t.Errorf("door at x=%d, want 0 (only free top-adjacent interior tile)", got.X)
	}
}

func TestSelect_DoorOpensOntoFreeInteriorTile(t *testing.T) {
	// Furniture from the layout planner; the door must still open onto a
	// walkway tile.
	area := rect(100, 100, 5, 5)
	item := types.FurnitureVariant{SizeIndex: 0, Width: 2, Height: 1}
	occupied := layout.OccupiedTiles(layout.Plan(area, item))

	got := Select(area, occupied, types.SideTop, nil)
	if got == nil {
		t.Fatal("expected a door tile")
	}
	free := false
	for _, n := range geometry.Neighbors(*got, geometry.Adjacency4) {
		if geometry.Contains(area, n) && !occupied[n] {
			free = true
		}
	}
	if !free {
		t.Errorf("door %v does not open onto a free interior tile", *got)
	}
}

func TestSelect_NoCandidates(t *testing.T) {
	// Every interior tile occupied: no perimeter tile can open onto a free
	// interior tile.
	area := rect(0, 0, 2, 2)
	occupied := geometry.TileSet(geometry.AreaTiles(area))
	if got := Select(area, occupied, types.SideTop, nil); got != nil {
		t.Errorf("expected nil, got %v", *got)
	}
}

func TestSelect_EntranceHints(t *testing.T) {
	// Irregular area; the hint forces the door next to (100,100) no matter
	// which side is preferred.
	area := types.Area{Tiles: []types.Tile{
		{X: 100, Y: 100}, {X: 101, Y: 100}, {X: 102, Y: 100},
		{X: 102, Y: 101}, {X: 102, Y: 102},
	}}
	hints := []types.Tile{{X: 100, Y: 100}}

	for _, side := range []types.Side{types.SideTop, types.SideBottom, types.SideLeft, types.SideRight} {
		got := Select(area, nil, side, hints)
		if got == nil {
			t.Fatalf("side %s: expected a door tile", side)
		}
		if !geometry.Orthogonal(*got, hints[0]) {
			t.Errorf("side %s: door %v is not 4-adjacent to the hint tile", side, *got)
		}
		if geometry.Contains(area, *got) {
			t.Errorf("side %s: door %v lies inside the area", side, *got)
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	area := rect(10, 10, 6, 4)
	occupied := map[types.Tile]bool{{X: 10, Y: 10}: true, {X: 11, Y: 10}: true}
	first := Select(area, occupied, types.SideLeft, nil)
	if first == nil {
		t.Fatal("expected a door tile")
	}
	for i := 0; i < 20; i++ {
		got := Select(area, occupied, types.SideLeft, nil)
		if got == nil || *got != *first {
			t.Fatalf("run %d: got %v, want %v", i, got, *first)
		}
	}
}
