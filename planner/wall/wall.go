// Package wall turns perimeter tiles and a chosen door tile into wall and
// opening build commands.
package wall

import "github.com/mkarlsen/roomforge/types"

// Ops is the computed command set for enclosing one room.
type Ops struct {
	Walls   []types.WallOp
	Opening *types.OpeningOp // nil when the room has no door
}

// Commands emits one wall op per perimeter tile that is not the door, in
// perimeter order, and one opening op at the door tile. With a nil door
// every perimeter tile gets a wall attempt — a fully enclosed room is a
// legitimate, if unusual, outcome. Each op is submitted independently by
// the orchestrator; a tile the world rejects is skipped, never retried.
func Commands(perimeter []types.Tile, doorTile *types.Tile, material types.Material) Ops {
	var ops Ops
	for _, t := range perimeter {
		if doorTile != nil && t == *doorTile {
			continue
		}
		ops.Walls = append(ops.Walls, types.WallOp{At: t, Material: material})
	}
	if doorTile != nil {
		ops.Opening = &types.OpeningOp{At: *doorTile, Material: material}
	}
	return ops
}

// WallTiles returns the set of tiles receiving wall ops: the perimeter
// minus the door tile.
func WallTiles(perimeter []types.Tile, doorTile *types.Tile) map[types.Tile]bool {
	set := make(map[types.Tile]bool, len(perimeter))
	for _, t := range perimeter {
		if doorTile != nil && t == *doorTile {
			continue
		}
		set[t] = true
	}
	return set
}
