// Package layout places fixed-size furniture items inside an area on a
// spacing grid and selects which size variant of an item to use.
package layout

import (
	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/types"
)

// SelectVariant picks the furniture variant to place in the area.
// Candidates must be ordered ascending by SizeIndex. The largest variant
// whose width and height both fit the area's bounds wins. When nothing
// fits, the smallest-index candidate is returned anyway: the caller may end
// up with furniture that does not fit, which is the catalog's documented
// behavior, not corrected here. Returns false only for an empty candidate
// list.
func SelectVariant(area types.Area, candidates []types.FurnitureVariant) (types.FurnitureVariant, bool) {
	if len(candidates) == 0 {
		return types.FurnitureVariant{}, false
	}

	minX, minY, maxX, maxY := geometry.Bounds(area)
	areaW := maxX - minX + 1
	areaH := maxY - minY + 1

	best := candidates[0]
	found := false
	for _, c := range candidates {
		if c.Width <= areaW && c.Height <= areaH {
			if !found || c.SizeIndex > best.SizeIndex {
				best = c
				found = true
			}
		}
	}
	if !found {
		return candidates[0], true
	}
	return best, true
}

// Plan lays the item out on a spacing grid starting at the area's top-left
// corner. The steps are max(2, dim+1) so adjacent items always keep at
// least one walkway tile between them. Horizontally an item may sit flush
// against the right bound; vertically the row below each item stays clear,
// so the bottommost area row never holds furniture. Placements are emitted
// row-major (top-to-bottom, left-to-right); callers rely on that order. An
// item larger than the area yields no placements.
func Plan(area types.Area, item types.FurnitureVariant) []types.Placement {
	minX, minY, maxX, maxY := geometry.Bounds(area)

	spacingX := item.Width + 1
	if spacingX < 2 {
		spacingX = 2
	}
	spacingY := item.Height + 1
	if spacingY < 2 {
		spacingY = 2
	}

	var out []types.Placement
	for y := minY; y+item.Height <= maxY; y += spacingY {
		for x := minX; x+item.Width <= maxX+1; x += spacingX {
			origin := types.Tile{X: x, Y: y}
			if !footprintInside(area, origin, item) {
				continue
			}
			out = append(out, types.Placement{Origin: origin, Item: item})
		}
	}
	return out
}

// footprintInside checks every tile of the item's footprint against the
// area. For rectangles this matches the bound check already done by the
// loop; it only bites for irregular tile-set areas.
func footprintInside(area types.Area, origin types.Tile, item types.FurnitureVariant) bool {
	if len(area.Tiles) == 0 {
		return true
	}
	for dy := 0; dy < item.Height; dy++ {
		for dx := 0; dx < item.Width; dx++ {
			if !geometry.Contains(area, types.Tile{X: origin.X + dx, Y: origin.Y + dy}) {
				return false
			}
		}
	}
	return true
}

// OccupiedTiles unions the footprints of all placements. The spacing rule
// guarantees footprints never overlap, so the size of the result is always
// len(placements) * width * height.
func OccupiedTiles(placements []types.Placement) map[types.Tile]bool {
	occupied := map[types.Tile]bool{}
	for _, p := range placements {
		for dy := 0; dy < p.Item.Height; dy++ {
			for dx := 0; dx < p.Item.Width; dx++ {
				occupied[types.Tile{X: p.Origin.X + dx, Y: p.Origin.Y + dy}] = true
			}
		}
	}
	return occupied
}
