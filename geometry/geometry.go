// Package geometry computes perimeters, bounds, and adjacency over tile
// areas. Everything here is a pure function over types values, safe to call
// from any goroutine for dry-run evaluation.
package geometry

import "github.com/mkarlsen/roomforge/types"

// Adjacency selects the neighbor model used by perimeter computation.
type Adjacency int

const (
	// Adjacency8 counts the four orthogonal and four diagonal neighbors.
	Adjacency8 Adjacency = iota
	// Adjacency4 counts only the orthogonal neighbors.
	Adjacency4
)

// Bounds returns the inclusive bounding box of an area.
// For an explicit tile set, the box is computed from its tiles.
func Bounds(area types.Area) (minX, minY, maxX, maxY int) {
	if len(area.Tiles) > 0 {
		first := area.Tiles[0]
		minX, minY, maxX, maxY = first.X, first.Y, first.X, first.Y
		for _, t := range area.Tiles[1:] {
			if t.X < minX {
				minX = t.X
			}
			if t.X > maxX {
				maxX = t.X
			}
			if t.Y < minY {
				minY = t.Y
			}
			if t.Y > maxY {
				maxY = t.Y
			}
		}
		return minX, minY, maxX, maxY
	}
	return area.X, area.Y, area.X + area.Width - 1, area.Y + area.Height - 1
}

// Contains reports whether a tile lies inside the area.
func Contains(area types.Area, t types.Tile) bool {
	if len(area.Tiles) > 0 {
		for _, at := range area.Tiles {
			if at == t {
				return true
			}
		}
		return false
	}
	return t.X >= area.X && t.X < area.X+area.Width &&
		t.Y >= area.Y && t.Y < area.Y+area.Height
}

// Neighbors returns the neighbors of a tile under the given adjacency,
// in a fixed deterministic order.
func Neighbors(t types.Tile, adj Adjacency) []types.Tile {
	if adj == Adjacency4 {
		return []types.Tile{
			{X: t.X, Y: t.Y - 1},
			{X: t.X - 1, Y: t.Y},
			{X: t.X + 1, Y: t.Y},
			{X: t.X, Y: t.Y + 1},
		}
	}
	out := make([]types.Tile, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, types.Tile{X: t.X + dx, Y: t.Y + dy})
		}
	}
	return out
}

// Orthogonal reports whether two tiles are 4-neighbor-adjacent.
func Orthogonal(a, b types.Tile) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Perimeter returns the tiles outside the area that have at least one
// neighbor inside it, under the chosen adjacency. The bounding box expanded
// by one tile in every direction is scanned row-major, so the returned order
// is deterministic; callers that need a set should use TileSet.
func Perimeter(area types.Area, adj Adjacency) []types.Tile {
	minX, minY, maxX, maxY := Bounds(area)

	var out []types.Tile
	for y := minY - 1; y <= maxY+1; y++ {
		for x := minX - 1; x <= maxX+1; x++ {
			t := types.Tile{X: x, Y: y}
			if Contains(area, t) {
				continue
			}
			for _, n := range Neighbors(t, adj) {
				if Contains(area, n) {
					out = append(out, t)
					break
				}
			}
		}
	}
	return out
}

// TileSet converts a tile slice into a membership set.
func TileSet(tiles []types.Tile) map[types.Tile]bool {
	set := make(map[types.Tile]bool, len(tiles))
	for _, t := range tiles {
		set[t] = true
	}
	return set
}

// AreaTiles enumerates every tile inside the area, row-major.
func AreaTiles(area types.Area) []types.Tile {
	if len(area.Tiles) > 0 {
		out := make([]types.Tile, len(area.Tiles))
		copy(out, area.Tiles)
		return out
	}
	out := make([]types.Tile, 0, area.Width*area.Height)
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			out = append(out, types.Tile{X: x, Y: y})
		}
	}
	return out
}
