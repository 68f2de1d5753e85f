// Package render projects plans and world state into ASCII lines for the
// console surfaces. Output is deterministic: same input, same lines.
package render

import (
	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
)

// Display runes. The TUI styles them; the plain CLI prints them as-is.
const (
	RuneWall      = '#'
	RuneOpening   = '+'
	RuneFurniture = 'F'
	RuneFloor     = '.'
	RuneBlocked   = '~'
	RuneReserved  = 'o'
	RuneEmpty     = ' '
)

// Legend returns the one-line legend shown under maps.
func Legend() string {
	return "# wall  + door  F furniture  . floor  ~ blocked  o reserved"
}

// PlanLines renders a plan over its bounding box expanded by one tile, so
// the perimeter is visible. Top row first.
func PlanLines(plan *types.RoomPlan) []string {
	minX, minY, maxX, maxY := geometry.Bounds(plan.Area)

	var lines []string
	for y := minY - 1; y <= maxY+1; y++ {
		row := make([]rune, 0, maxX-minX+3)
		for x := minX - 1; x <= maxX+1; x++ {
			row = append(row, planRune(plan, types.Tile{X: x, Y: y}))
		}
		lines = append(lines, string(row))
	}
	return lines
}

func planRune(plan *types.RoomPlan, t types.Tile) rune {
	switch {
	case plan.DoorTile != nil && t == *plan.DoorTile:
		return RuneOpening
	case plan.WallTiles[t]:
		return RuneWall
	case plan.Occupied[t]:
		return RuneFurniture
	case geometry.Contains(plan.Area, t):
		return RuneFloor
	default:
		return RuneEmpty
	}
}

// WorldLines renders a window of the grid, top row first. Tiles off the
// grid come out blank.
func WorldLines(g *world.Grid, x, y, w, h int) []string {
	var lines []string
	for ty := y; ty < y+h; ty++ {
		row := make([]rune, 0, w)
		for tx := x; tx < x+w; tx++ {
			row = append(row, worldRune(g, types.Tile{X: tx, Y: ty}))
		}
		lines = append(lines, string(row))
	}
	return lines
}

func worldRune(g *world.Grid, t types.Tile) rune {
	switch {
	case !g.InBounds(t):
		return RuneEmpty
	case g.OpeningAt(t):
		return RuneOpening
	case g.WallAt(t):
		return RuneWall
	case g.FurnitureAt(t) != nil:
		return RuneFurniture
	case g.BlockedAt(t):
		return RuneBlocked
	case g.ReservedAt(t):
		return RuneReserved
	default:
		return RuneFloor
	}
}
