package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Catalog { title = "...", ... }
	L.SetGlobal("Catalog", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.catalog = tbl
		return 0
	}))

	// RoomType "id" { ... } — curried: RoomType("id") returns a function
	// that takes a table.
	L.SetGlobal("RoomType", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.roomTypes = append(coll.roomTypes, rawRoomType{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Material "id" { ... } — curried.
	L.SetGlobal("Material", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.materials = append(coll.materials, rawMaterial{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
