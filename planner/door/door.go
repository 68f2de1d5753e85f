// Package door chooses the single perimeter tile that becomes the room's
// entrance.
package door

import (
	"math"

	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/types"
)

// offSidePenalty makes "is on the preferred side at all" dominate over "how
// close to the ideal point on some other side": any on-side candidate beats
// any off-side candidate unconditionally, since rooms are only tens of
// tiles across.
const offSidePenalty = 1000

// Select returns the door tile for the area, or nil when no perimeter tile
// qualifies (the caller must branch on that; an enclosed room is rarely
// intended).
//
// Without entrance hints a perimeter tile qualifies iff it is
// 4-neighbor-adjacent to a free interior tile — inside the area and not
// covered by furniture. With hints (irregular shapes) a tile qualifies iff
// it is 4-neighbor-adjacent to some hint tile.
//
// Candidates are ranked by euclidean distance to the midpoint of the
// preferred side, plus offSidePenalty for candidates not lying on that
// side's row or column. Ties keep the earliest candidate in perimeter
// enumeration order, so the result is deterministic.
func Select(area types.Area, occupied map[types.Tile]bool, preferred types.Side, hints []types.Tile) *types.Tile {
	perimeter := geometry.Perimeter(area, geometry.Adjacency8)

	var candidates []types.Tile
	if len(hints) > 0 {
		for _, p := range perimeter {
			for _, h := range hints {
				if geometry.Orthogonal(p, h) {
					candidates = append(candidates, p)
					break
				}
			}
		}
	} else {
		for _, p := range perimeter {
			for _, n := range geometry.Neighbors(p, geometry.Adjacency4) {
				if geometry.Contains(area, n) && !occupied[n] {
					candidates = append(candidates, p)
					break
				}
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	ideal := idealPosition(area, preferred)

	var best types.Tile
	bestRank := math.Inf(1)
	for _, c := range candidates {
		rank := distance(c, ideal)
		if !onPreferredSide(area, preferred, c) {
			rank += offSidePenalty
		}
		if rank < bestRank {
			best = c
			bestRank = rank
		}
	}
	return &best
}

// idealPosition is the midpoint of the named side, one tile outside the
// area's bounding box.
func idealPosition(area types.Area, side types.Side) types.Tile {
	minX, minY, maxX, maxY := geometry.Bounds(area)
	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2

	switch side {
	case types.SideBottom:
		return types.Tile{X: centerX, Y: maxY + 1}
	case types.SideLeft:
		return types.Tile{X: minX - 1, Y: centerY}
	case types.SideRight:
		return types.Tile{X: maxX + 1, Y: centerY}
	default:
		return types.Tile{X: centerX, Y: minY - 1}
	}
}

// onPreferredSide reports whether the tile lies exactly on the row or
// column just outside the named side of the bounding box.
func onPreferredSide(area types.Area, side types.Side, t types.Tile) bool {
	minX, minY, maxX, maxY := geometry.Bounds(area)
	switch side {
	case types.SideBottom:
		return t.Y == maxY+1
	case types.SideLeft:
		return t.X == minX-1
	case types.SideRight:
		return t.X == maxX+1
	default:
		return t.Y == minY-1
	}
}

func distance(a, b types.Tile) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
