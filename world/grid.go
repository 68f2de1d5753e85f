package world

import (
	"fmt"

	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/types"
)

// PlacedItem is one furniture item on the grid, bound to the reservation
// (and later the construction record) it was placed under.
type PlacedItem struct {
	Origin      types.Tile
	Item        types.FurnitureVariant
	Reservation ReservationID
}

// Construction is one committed construction record.
type Construction struct {
	ID           int
	Area         types.Area
	Material     types.Material
	UpgradeLevel int
}

// Grid is a bounded in-memory world implementing Accessor. It backs the
// REPL, the TUI map, and the orchestrator tests. Writes are expected to
// arrive through a single tick batch at a time; the Grid itself does no
// locking.
type Grid struct {
	Width  int
	Height int

	blocked      map[types.Tile]bool
	walls        map[types.Tile]types.Material
	openings     map[types.Tile]types.Material
	furniture    map[types.Tile]*PlacedItem
	reservations map[ReservationID]types.Area
	records      []Construction
	nextID       ReservationID
}

// NewGrid creates an empty grid covering tiles (0,0)..(w-1,h-1).
func NewGrid(w, h int) *Grid {
	return &Grid{
		Width:        w,
		Height:       h,
		blocked:      map[types.Tile]bool{},
		walls:        map[types.Tile]types.Material{},
		openings:     map[types.Tile]types.Material{},
		furniture:    map[types.Tile]*PlacedItem{},
		reservations: map[ReservationID]types.Area{},
	}
}

// InBounds reports whether the tile lies on the grid.
func (g *Grid) InBounds(t types.Tile) bool {
	return t.X >= 0 && t.X < g.Width && t.Y >= 0 && t.Y < g.Height
}

// TileInsideArea reports whether the tile lies inside the area.
func (g *Grid) TileInsideArea(t types.Tile, area types.Area) bool {
	return geometry.Contains(area, t)
}

// buildable is the shared precondition for walls and openings: on the
// grid, terrain not blocked, and nothing already built there.
func (g *Grid) buildable(t types.Tile) bool {
	if !g.InBounds(t) || g.blocked[t] {
		return false
	}
	if _, ok := g.walls[t]; ok {
		return false
	}
	if _, ok := g.openings[t]; ok {
		return false
	}
	return g.furniture[t] == nil
}

// CanBuildWall reports whether a wall could go on the tile.
func (g *Grid) CanBuildWall(t types.Tile) bool { return g.buildable(t) }

// CanBuildOpening reports whether an opening could go on the tile.
func (g *Grid) CanBuildOpening(t types.Tile) bool { return g.buildable(t) }

// BuildWall places a wall on the tile.
func (g *Grid) BuildWall(t types.Tile, m types.Material) error {
	if !g.buildable(t) {
		return fmt.Errorf("tile (%d,%d) not buildable", t.X, t.Y)
	}
	g.walls[t] = m
	return nil
}

// BuildOpening places an opening on the tile.
func (g *Grid) BuildOpening(t types.Tile, m types.Material) error {
	if !g.buildable(t) {
		return fmt.Errorf("tile (%d,%d) not buildable", t.X, t.Y)
	}
	g.openings[t] = m
	return nil
}

// ReserveArea marks the area as about-to-be-built. Every area tile must be
// on the grid and unblocked.
func (g *Grid) ReserveArea(area types.Area) (ReservationID, error) {
	for _, t := range geometry.AreaTiles(area) {
		if !g.InBounds(t) {
			return 0, fmt.Errorf("area tile (%d,%d) outside the world", t.X, t.Y)
		}
		if g.blocked[t] {
			return 0, fmt.Errorf("area tile (%d,%d) is blocked terrain", t.X, t.Y)
		}
	}
	g.nextID++
	g.reservations[g.nextID] = area
	return g.nextID, nil
}

// ReleaseReservation drops a reservation. Unknown IDs are ignored.
func (g *Grid) ReleaseReservation(id ReservationID) {
	delete(g.reservations, id)
}

// PlaceFurniture puts an item on the grid under a live reservation. The
// whole footprint must be free, unblocked, and inside the reserved area.
func (g *Grid) PlaceFurniture(t types.Tile, item types.FurnitureVariant, res ReservationID) error {
	area, ok := g.reservations[res]
	if !ok {
		return fmt.Errorf("reservation %d not held", res)
	}
	footprint := make([]types.Tile, 0, item.Width*item.Height)
	for dy := 0; dy < item.Height; dy++ {
		for dx := 0; dx < item.Width; dx++ {
			ft := types.Tile{X: t.X + dx, Y: t.Y + dy}
			if !geometry.Contains(area, ft) {
				return fmt.Errorf("footprint tile (%d,%d) outside the reserved area", ft.X, ft.Y)
			}
			if !g.buildable(ft) {
				return fmt.Errorf("footprint tile (%d,%d) not free", ft.X, ft.Y)
			}
			footprint = append(footprint, ft)
		}
	}
	placed := &PlacedItem{Origin: t, Item: item, Reservation: res}
	for _, ft := range footprint {
		g.furniture[ft] = placed
	}
	return nil
}

// CommitConstruction appends a construction record and returns its ID.
func (g *Grid) CommitConstruction(area types.Area, m types.Material, upgradeLevel int) (int, error) {
	id := len(g.records) + 1
	g.records = append(g.records, Construction{
		ID:           id,
		Area:         area,
		Material:     m,
		UpgradeLevel: upgradeLevel,
	})
	return id, nil
}

// Block marks a rectangle of terrain as unbuildable.
func (g *Grid) Block(x, y, w, h int) {
	for _, t := range geometry.AreaTiles(types.Area{X: x, Y: y, Width: w, Height: h}) {
		g.blocked[t] = true
	}
}

// Clear removes the blocked flag from a rectangle of terrain.
func (g *Grid) Clear(x, y, w, h int) {
	for _, t := range geometry.AreaTiles(types.Area{X: x, Y: y, Width: w, Height: h}) {
		delete(g.blocked, t)
	}
}

// Query helpers for rendering and the REPL's /state dump.

// WallAt reports whether the tile holds a wall.
func (g *Grid) WallAt(t types.Tile) bool { _, ok := g.walls[t]; return ok }

// OpeningAt reports whether the tile holds an opening.
func (g *Grid) OpeningAt(t types.Tile) bool { _, ok := g.openings[t]; return ok }

// FurnitureAt returns the item covering the tile, or nil.
func (g *Grid) FurnitureAt(t types.Tile) *PlacedItem { return g.furniture[t] }

// BlockedAt reports whether the tile is blocked terrain.
func (g *Grid) BlockedAt(t types.Tile) bool { return g.blocked[t] }

// ReservedAt reports whether any live reservation covers the tile.
func (g *Grid) ReservedAt(t types.Tile) bool {
	for _, area := range g.reservations {
		if geometry.Contains(area, t) {
			return true
		}
	}
	return false
}

// Records returns all committed construction records in commit order.
func (g *Grid) Records() []Construction { return g.records }

// Reservations returns the number of live reservations.
func (g *Grid) Reservations() int { return len(g.reservations) }
