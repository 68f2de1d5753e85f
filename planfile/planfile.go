// Package planfile implements JSON serialization and deserialization of
// room plans, backing the REPL's /export and /import commands.
package planfile

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mkarlsen/roomforge/planner/layout"
	"github.com/mkarlsen/roomforge/types"
)

// FormatVersion is written into every exported plan.
const FormatVersion = "1"

// PlanData is the JSON-serializable plan format. Tile sets are flattened
// to sorted slices; the occupied set is recomputed from placements on
// load, since it is derived data.
type PlanData struct {
	Version       string                 `json:"version"`
	RoomType      string                 `json:"room_type"`
	Area          types.Area             `json:"area"`
	Material      types.Material         `json:"material"`
	UpgradeLevel  int                    `json:"upgrade_level"`
	Item          types.FurnitureVariant `json:"item"`
	Placements    []types.Placement      `json:"placements"`
	Door          *types.Tile            `json:"door,omitempty"`
	Walls         []types.Tile           `json:"walls"`
	PreferredSide types.Side             `json:"preferred_side"`
	EntranceHints []types.Tile           `json:"entrance_hints,omitempty"`
}

// Save serializes a room plan to JSON bytes.
func Save(plan *types.RoomPlan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil plan")
	}
	data := PlanData{
		Version:       FormatVersion,
		RoomType:      plan.RoomType,
		Area:          plan.Area,
		Material:      plan.Material,
		UpgradeLevel:  plan.UpgradeLevel,
		Item:          plan.Item,
		Placements:    plan.Placements,
		Door:          plan.DoorTile,
		Walls:         sortedTiles(plan.WallTiles),
		PreferredSide: plan.PreferredSide,
		EntranceHints: plan.EntranceHints,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes back into a room plan.
func Load(data []byte) (*types.RoomPlan, error) {
	var pd PlanData
	if err := json.Unmarshal(data, &pd); err != nil {
		return nil, err
	}
	if pd.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported plan format version %q", pd.Version)
	}

	// Ensure slices are never nil after load.
	if pd.Placements == nil {
		pd.Placements = []types.Placement{}
	}
	if pd.Walls == nil {
		pd.Walls = []types.Tile{}
	}

	walls := make(map[types.Tile]bool, len(pd.Walls))
	for _, t := range pd.Walls {
		walls[t] = true
	}

	return &types.RoomPlan{
		RoomType:      pd.RoomType,
		Area:          pd.Area,
		Material:      pd.Material,
		UpgradeLevel:  pd.UpgradeLevel,
		Item:          pd.Item,
		Placements:    pd.Placements,
		Occupied:      layout.OccupiedTiles(pd.Placements),
		DoorTile:      pd.Door,
		WallTiles:     walls,
		PreferredSide: pd.PreferredSide,
		EntranceHints: pd.EntranceHints,
	}, nil
}

// sortedTiles flattens a tile set into a row-major sorted slice so the
// exported JSON is stable.
func sortedTiles(set map[types.Tile]bool) []types.Tile {
	out := make([]types.Tile, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
