package loader

import (
	"fmt"
	"sort"

	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
	lua "github.com/yuin/gopher-lua"
)

// rawRoomType holds a room type table before compilation.
type rawRoomType struct {
	id    string
	table *lua.LTable
}

// rawMaterial holds a material table before compilation.
type rawMaterial struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToIntSlice converts an array-style Lua table to ints.
func tableToIntSlice(tbl *lua.LTable) []int {
	if tbl == nil {
		return nil
	}
	var out []int
	for i := 1; i <= tbl.MaxN(); i++ {
		if n, ok := tbl.RawGetInt(i).(lua.LNumber); ok {
			out = append(out, int(n))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*world.Defs, error) {
	defs := &world.Defs{
		RoomTypes: map[string]types.RoomTypeDef{},
		Materials: map[types.Material]types.MaterialDef{},
	}

	// Catalog metadata.
	if coll.catalog == nil {
		return nil, fmt.Errorf("no Catalog{} definition found")
	}
	defs.Catalog = types.CatalogDef{
		Title:   getString(coll.catalog, "title"),
		Author:  getString(coll.catalog, "author"),
		Version: getString(coll.catalog, "version"),
	}

	// Materials.
	for _, raw := range coll.materials {
		if _, dup := defs.Materials[types.Material(raw.id)]; dup {
			return nil, fmt.Errorf("duplicate material %q", raw.id)
		}
		defs.Materials[types.Material(raw.id)] = types.MaterialDef{
			ID:   types.Material(raw.id),
			Name: getString(raw.table, "name"),
		}
	}

	// Room types.
	for _, raw := range coll.roomTypes {
		if _, dup := defs.RoomTypes[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room type %q", raw.id)
		}
		rt, err := compileRoomType(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room type %s: %w", raw.id, err)
		}
		defs.RoomTypes[raw.id] = rt
	}

	return defs, nil
}

// compileRoomType compiles one raw room type table.
func compileRoomType(raw rawRoomType) (types.RoomTypeDef, error) {
	tbl := raw.table
	rt := types.RoomTypeDef{
		ID:            raw.id,
		Name:          getString(tbl, "name"),
		PreferredSide: types.Side(getString(tbl, "preferred_side")),
		UpgradeLevels: getInt(tbl, "upgrade_levels"),
	}
	if rt.PreferredSide == "" {
		rt.PreferredSide = types.SideTop
	}

	// variants = { {w, h}, ... } — SizeIndex assigned by listed order.
	variantsTbl := getTable(tbl, "variants")
	if variantsTbl == nil {
		return rt, fmt.Errorf("variants table is required")
	}
	for i := 1; i <= variantsTbl.MaxN(); i++ {
		pair, ok := variantsTbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return rt, fmt.Errorf("variant %d is not a {width, height} pair", i)
		}
		w, wok := pair.RawGetInt(1).(lua.LNumber)
		h, hok := pair.RawGetInt(2).(lua.LNumber)
		if !wok || !hok {
			return rt, fmt.Errorf("variant %d is not a {width, height} pair", i)
		}
		rt.Variants = append(rt.Variants, types.FurnitureVariant{
			SizeIndex: i - 1,
			Width:     int(w),
			Height:    int(h),
		})
	}

	// materials = { "wood", ... }
	if matTbl := getTable(tbl, "materials"); matTbl != nil {
		for i := 1; i <= matTbl.MaxN(); i++ {
			if s, ok := matTbl.RawGetInt(i).(lua.LString); ok {
				rt.Materials = append(rt.Materials, types.Material(string(s)))
			}
		}
	}

	// fixed_shape = { width = w, height = h }
	if fsTbl := getTable(tbl, "fixed_shape"); fsTbl != nil {
		rt.FixedShape = true
		rt.FixedWidth = getInt(fsTbl, "width")
		rt.FixedHeight = getInt(fsTbl, "height")
	}

	// allowed_variants = { 0, 2, ... } — SizeIndex allow-list.
	rt.AllowedVariants = tableToIntSlice(getTable(tbl, "allowed_variants"))

	return rt, nil
}

// sortedLuaFiles puts catalog.lua first so metadata loads before room
// types, with the remaining files alphabetical.
func sortedLuaFiles(files []string) []string {
	var catalogFile string
	var others []string
	for _, f := range files {
		if f == "catalog.lua" {
			catalogFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if catalogFile != "" {
		return append([]string{catalogFile}, others...)
	}
	return others
}
