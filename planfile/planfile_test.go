package planfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkarlsen/roomforge/types"
)

func samplePlan() *types.RoomPlan {
	door := types.Tile{X: 2, Y: -1}
	item := types.FurnitureVariant{SizeIndex: 1, Width: 2, Height: 1}
	return &types.RoomPlan{
		RoomType:     "warehouse",
		Area:         types.Area{X: 0, Y: 0, Width: 5, Height: 5},
		Material:     "wood",
		UpgradeLevel: 1,
		Item:         item,
		Placements: []types.Placement{
			{Origin: types.Tile{X: 0, Y: 0}, Item: item},
			{Origin: types.Tile{X: 3, Y: 0}, Item: item},
		},
		Occupied: map[types.Tile]bool{
			{X: 0, Y: 0}: true, {X: 1, Y: 0}: true,
			{X: 3, Y: 0}: true, {X: 4, Y: 0}: true,
		},
		DoorTile: &door,
		WallTiles: map[types.Tile]bool{
			{X: -1, Y: -1}: true, {X: 0, Y: -1}: true, {X: 1, Y: -1}: true,
		},
		PreferredSide: types.SideTop,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	plan := samplePlan()
	data, err := Save(plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.RoomType != plan.RoomType || got.Material != plan.Material {
		t.Errorf("got %s/%s, want %s/%s", got.RoomType, got.Material, plan.RoomType, plan.Material)
	}
	if got.DoorTile == nil || *got.DoorTile != *plan.DoorTile {
		t.Errorf("door %v, want %v", got.DoorTile, plan.DoorTile)
	}
	if len(got.Placements) != len(plan.Placements) {
		t.Errorf("%d placements, want %d", len(got.Placements), len(plan.Placements))
	}
	// Occupied is derived from placements on load.
	if len(got.Occupied) != len(plan.Occupied) {
		t.Errorf("%d occupied tiles, want %d", len(got.Occupied), len(plan.Occupied))
	}
	for tile := range plan.WallTiles {
		if !got.WallTiles[tile] {
			t.Errorf("wall tile %v lost in round trip", tile)
		}
	}
}

func TestSave_DeterministicOutput(t *testing.T) {
	plan := samplePlan()
	a, err := Save(plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := Save(plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("exports of the same plan differ")
	}
}

func TestSaveLoad_DoorlessPlan(t *testing.T) {
	plan := samplePlan()
	plan.DoorTile = nil
	data, err := Save(plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DoorTile != nil {
		t.Errorf("expected nil door, got %v", *got.DoorTile)
	}
}

func TestLoad_RejectsWrongVersion(t *testing.T) {
	data := []byte(`{"version": "99", "room_type": "warehouse"}`)
	if _, err := Load(data); err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("got %v, want version error", err)
	}
}

func TestLoad_NilSafeCollections(t *testing.T) {
	data := []byte(`{"version": "1", "room_type": "warehouse"}`)
	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Placements == nil || got.WallTiles == nil || got.Occupied == nil {
		t.Error("collections must never be nil after load")
	}
}

func TestSave_NilPlan(t *testing.T) {
	if _, err := Save(nil); err == nil {
		t.Error("expected an error for a nil plan")
	}
}
