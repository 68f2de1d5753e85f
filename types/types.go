// Package types defines the shared data structures for the RoomForge planner.
// This package contains only type definitions — no logic, no methods.
package types

// Tile is one cell of the world grid, addressed by integer coordinates.
type Tile struct {
	X int
	Y int
}

// Side names one edge of an area, used for door preference.
type Side string

// The four sides of a rectangular area.
const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Area is the footprint being built on. Either the rectangle fields are set
// (Width > 0 and Height > 0) or Tiles holds an explicit, duplicate-free set
// of tiles for irregular shapes. When Tiles is non-empty it wins.
type Area struct {
	X      int
	Y      int
	Width  int
	Height int
	Tiles  []Tile
}

// FurnitureVariant is one discrete size option for an in-room fixture.
// Within a group, SizeIndex increases with footprint area.
type FurnitureVariant struct {
	SizeIndex int
	Width     int
	Height    int
}

// Placement anchors one furniture variant at its top-left tile.
type Placement struct {
	Origin Tile
	Item   FurnitureVariant
}

// Material is an opaque handle from the material catalog (e.g. "wood").
// The planner carries it through unchanged and never interprets it.
type Material string

// WallOp is a single "build wall" command at one perimeter tile.
type WallOp struct {
	At       Tile
	Material Material
}

// OpeningOp is the single "build opening" command at the door tile.
type OpeningOp struct {
	At       Tile
	Material Material
}

// RoomPlan is the full, purely computed output of planning, prior to
// commitment. It is derived data: fresh on every planning call, never
// mutated afterwards.
type RoomPlan struct {
	RoomType      string
	Area          Area
	Material      Material
	UpgradeLevel  int
	Item          FurnitureVariant
	Placements    []Placement
	Occupied      map[Tile]bool
	DoorTile      *Tile // nil means no door could be placed
	WallTiles     map[Tile]bool
	PreferredSide Side
	EntranceHints []Tile
}

// CommitResult reports what a committed plan actually did in the world.
type CommitResult struct {
	ConstructionID   int
	PlacedFurniture  int
	SkippedFurniture int
	BuiltWalls       int
	SkippedWalls     int
	OpeningBuilt     bool
	Doorless         bool
}

// RoomTypeDef is the catalog definition of a plannable room type.
type RoomTypeDef struct {
	ID              string
	Name            string
	Variants        []FurnitureVariant // ordered ascending by SizeIndex
	AllowedVariants []int              // optional allow-list of SizeIndexes
	PreferredSide   Side
	Materials       []Material // permitted materials; empty = any
	FixedShape      bool       // architecturally restricted to one size
	FixedWidth      int        // required area size when FixedShape
	FixedHeight     int
	UpgradeLevels   int
}

// MaterialDef is the catalog definition of a build material.
type MaterialDef struct {
	ID   Material
	Name string
}

// CatalogDef holds catalog metadata from Lua.
type CatalogDef struct {
	Title   string
	Author  string
	Version string
}
