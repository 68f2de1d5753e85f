package world

import (
	"sort"

	"github.com/mkarlsen/roomforge/types"
)

// Defs holds the immutable room-type catalog loaded from Lua.
// It implements Catalog.
type Defs struct {
	Catalog   types.CatalogDef
	RoomTypes map[string]types.RoomTypeDef
	Materials map[types.Material]types.MaterialDef
}

// RoomType looks up a room type by ID.
func (d *Defs) RoomType(id string) (types.RoomTypeDef, bool) {
	rt, ok := d.RoomTypes[id]
	return rt, ok
}

// VariantsFor returns the variants for a room type, filtered through the
// type's allow-list override when one is set. The catalog for some room
// types is known to list more sizes than the type is designed for; the
// allow-list is the explicit correction rather than trusting catalog order.
func (d *Defs) VariantsFor(roomType string) []types.FurnitureVariant {
	rt, ok := d.RoomTypes[roomType]
	if !ok {
		return nil
	}
	if len(rt.AllowedVariants) == 0 {
		return rt.Variants
	}
	allowed := make(map[int]bool, len(rt.AllowedVariants))
	for _, idx := range rt.AllowedVariants {
		allowed[idx] = true
	}
	var out []types.FurnitureVariant
	for _, v := range rt.Variants {
		if allowed[v.SizeIndex] {
			out = append(out, v)
		}
	}
	return out
}

// MaterialAllowed reports whether the material may be used for the room
// type. An empty Materials list permits any catalog material.
func (d *Defs) MaterialAllowed(roomType string, m types.Material) bool {
	rt, ok := d.RoomTypes[roomType]
	if !ok {
		return false
	}
	if _, known := d.Materials[m]; !known {
		return false
	}
	if len(rt.Materials) == 0 {
		return true
	}
	for _, allowed := range rt.Materials {
		if allowed == m {
			return true
		}
	}
	return false
}

// RoomTypeIDs returns all room type IDs in sorted order.
func (d *Defs) RoomTypeIDs() []string {
	ids := make([]string, 0, len(d.RoomTypes))
	for id := range d.RoomTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MaterialIDs returns all material IDs in sorted order.
func (d *Defs) MaterialIDs() []types.Material {
	ids := make([]types.Material, 0, len(d.Materials))
	for id := range d.Materials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
