// Package planner sequences perimeter computation, furniture layout, door
// selection, and wall building into one room plan, and commits plans to the
// world inside a single tick batch.
package planner

import (
	"fmt"

	"github.com/mkarlsen/roomforge/geometry"
	"github.com/mkarlsen/roomforge/planner/door"
	"github.com/mkarlsen/roomforge/planner/layout"
	"github.com/mkarlsen/roomforge/planner/wall"
	"github.com/mkarlsen/roomforge/tick"
	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
)

// PlanRequest describes one room to plan. Zero-value side and material
// fall back to the room type's catalog defaults.
type PlanRequest struct {
	RoomType      string
	Area          types.Area
	PreferredSide types.Side
	Material      types.Material
	EntranceHints []types.Tile
	UpgradeLevel  int
}

// Planner holds the catalog, the world seam, and the tick executor.
type Planner struct {
	Defs  *world.Defs
	World world.Accessor
	Ticks *tick.Executor
}

// New creates a planner.
func New(defs *world.Defs, w world.Accessor, ticks *tick.Executor) *Planner {
	return &Planner{Defs: defs, World: w, Ticks: ticks}
}

// PlanRoom computes a full room plan. It is pure apart from catalog
// lookups: no world mutation, safe to call from any goroutine for dry
// runs. All precondition failures surface here, before anything is
// scheduled.
func (p *Planner) PlanRoom(req PlanRequest) (*types.RoomPlan, error) {
	rt, ok := p.Defs.RoomType(req.RoomType)
	if !ok {
		return nil, &PreconditionError{RoomType: req.RoomType, Reason: "room type not registered"}
	}

	if err := validateArea(req.Area); err != nil {
		return nil, &PreconditionError{RoomType: req.RoomType, Reason: err.Error()}
	}
	if rt.FixedShape {
		if len(req.Area.Tiles) > 0 || req.Area.Width != rt.FixedWidth || req.Area.Height != rt.FixedHeight {
			return nil, &PreconditionError{
				RoomType: req.RoomType,
				Reason: fmt.Sprintf("fixed-shape type requires a %dx%d rectangle",
					rt.FixedWidth, rt.FixedHeight),
			}
		}
	}

	side := req.PreferredSide
	if side == "" {
		side = rt.PreferredSide
	}
	switch side {
	case types.SideTop, types.SideBottom, types.SideLeft, types.SideRight:
	default:
		return nil, &PreconditionError{RoomType: req.RoomType, Reason: fmt.Sprintf("invalid side %q", side)}
	}

	material := req.Material
	if material == "" {
		material = p.defaultMaterial(rt)
	}
	if !p.Defs.MaterialAllowed(req.RoomType, material) {
		return nil, &PreconditionError{
			RoomType: req.RoomType,
			Reason:   fmt.Sprintf("material %q not permitted", material),
		}
	}

	variants := p.Defs.VariantsFor(req.RoomType)
	item, ok := layout.SelectVariant(req.Area, variants)
	if !ok {
		return nil, &PreconditionError{RoomType: req.RoomType, Reason: "no furniture variants registered"}
	}

	placements := layout.Plan(req.Area, item)
	occupied := layout.OccupiedTiles(placements)

	doorTile := door.Select(req.Area, occupied, side, req.EntranceHints)

	perimeter := geometry.Perimeter(req.Area, geometry.Adjacency8)
	wallTiles := wall.WallTiles(perimeter, doorTile)

	return &types.RoomPlan{
		RoomType:      req.RoomType,
		Area:          req.Area,
		Material:      material,
		UpgradeLevel:  req.UpgradeLevel,
		Item:          item,
		Placements:    placements,
		Occupied:      occupied,
		DoorTile:      doorTile,
		WallTiles:     wallTiles,
		PreferredSide: side,
		EntranceHints: req.EntranceHints,
	}, nil
}

// CommitRoom submits the plan's mutations to the world as one tick batch:
// reserve, place furniture (best-effort, before the construction record so
// items bind to the pending record), build walls and the opening
// (best-effort per tile), commit the record, release the reservation.
// There is no retry loop and no rollback; a mid-batch failure returns a
// PartialCommitError and leaves prior mutations in place.
func (p *Planner) CommitRoom(plan *types.RoomPlan) (*types.CommitResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil plan")
	}

	result := &types.CommitResult{}
	h := p.Ticks.Submit(func() error {
		res, err := p.World.ReserveArea(plan.Area)
		if err != nil {
			return &PartialCommitError{Stage: "reserve", Err: err}
		}

		for _, pl := range plan.Placements {
			if err := p.World.PlaceFurniture(pl.Origin, pl.Item, res); err != nil {
				result.SkippedFurniture++
				continue
			}
			result.PlacedFurniture++
		}

		perimeter := geometry.Perimeter(plan.Area, geometry.Adjacency8)
		ops := wall.Commands(perimeter, plan.DoorTile, plan.Material)
		for _, w := range ops.Walls {
			if !p.World.CanBuildWall(w.At) {
				result.SkippedWalls++
				continue
			}
			if err := p.World.BuildWall(w.At, w.Material); err != nil {
				result.SkippedWalls++
				continue
			}
			result.BuiltWalls++
		}
		if ops.Opening == nil {
			result.Doorless = true
		} else if p.World.CanBuildOpening(ops.Opening.At) {
			// A rejected opening leaves the gap with neither wall nor
			// opening.
			if err := p.World.BuildOpening(ops.Opening.At, ops.Opening.Material); err == nil {
				result.OpeningBuilt = true
			}
		}

		id, err := p.World.CommitConstruction(plan.Area, plan.Material, plan.UpgradeLevel)
		if err != nil {
			return &PartialCommitError{Stage: "commit", Err: err}
		}
		result.ConstructionID = id

		p.World.ReleaseReservation(res)
		return nil
	})

	if err := h.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// defaultMaterial picks the room type's first permitted material, falling
// back to the first catalog material for unrestricted types.
func (p *Planner) defaultMaterial(rt types.RoomTypeDef) types.Material {
	if len(rt.Materials) > 0 {
		return rt.Materials[0]
	}
	if ids := p.Defs.MaterialIDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// validateArea enforces the area invariants: a positive rectangle, or a
// non-empty duplicate-free tile set.
func validateArea(area types.Area) error {
	if len(area.Tiles) > 0 {
		seen := make(map[types.Tile]bool, len(area.Tiles))
		for _, t := range area.Tiles {
			if seen[t] {
				return fmt.Errorf("duplicate tile (%d,%d) in area", t.X, t.Y)
			}
			seen[t] = true
		}
		return nil
	}
	if area.Width <= 0 || area.Height <= 0 {
		return fmt.Errorf("area must have positive width and height")
	}
	return nil
}
