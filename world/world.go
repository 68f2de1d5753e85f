// Package world defines the capability interfaces the planner needs from
// the surrounding simulation, and an in-memory grid implementation used by
// the console surfaces and tests. The planner never touches engine
// internals directly — only these seams.
package world

import "github.com/mkarlsen/roomforge/types"

// ReservationID is a handle for a scratch area reservation.
type ReservationID int

// Accessor is the world-state capability consumed by the orchestrator.
// Mutating calls must only happen inside a tick batch; the query methods
// are safe anytime for dry-run evaluation.
type Accessor interface {
	// TileInsideArea reports whether the tile lies inside the area.
	TileInsideArea(t types.Tile, area types.Area) bool

	// CanBuildWall reports whether a wall could go on the tile.
	CanBuildWall(t types.Tile) bool
	// CanBuildOpening reports whether an opening could go on the tile.
	CanBuildOpening(t types.Tile) bool

	// BuildWall places a wall. A rejected tile returns an error the caller
	// is expected to skip past.
	BuildWall(t types.Tile, m types.Material) error
	// BuildOpening places the door opening.
	BuildOpening(t types.Tile, m types.Material) error

	// ReserveArea marks the area as about-to-be-built scratch state.
	ReserveArea(area types.Area) (ReservationID, error)
	// ReleaseReservation drops a reservation. Unknown IDs are ignored.
	ReleaseReservation(id ReservationID)

	// PlaceFurniture binds an item at a tile to the pending reservation.
	PlaceFurniture(t types.Tile, item types.FurnitureVariant, res ReservationID) error

	// CommitConstruction records the finished room and returns its ID.
	CommitConstruction(area types.Area, m types.Material, upgradeLevel int) (int, error)
}

// Catalog supplies room-type definitions and their furniture variants.
type Catalog interface {
	// RoomType looks up a room type by ID.
	RoomType(id string) (types.RoomTypeDef, bool)
	// VariantsFor returns the furniture variants for a room type, ordered
	// ascending by SizeIndex. Nil for unknown types.
	VariantsFor(roomType string) []types.FurnitureVariant
}
