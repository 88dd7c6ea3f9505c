package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Weapon "name" { ... }: curried, Weapon("name") returns a function that takes a table.
	L.SetGlobal("Weapon", named(L, &coll.weapons))
	L.SetGlobal("Wearable", named(L, &coll.wearables))
	L.SetGlobal("Inventory", named(L, &coll.inventories))
	L.SetGlobal("Npc", named(L, &coll.npcs))

	// Spawn "cemetery" { "ghoul", "grave_robber" }
	L.SetGlobal("Spawn", named(L, &coll.spawns))
	L.SetGlobal("Flavour", named(L, &coll.flavours))

	// Player { ... } and Rooms { ... } are singletons; the last one wins.
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))
	L.SetGlobal("Rooms", L.NewFunction(func(L *lua.LState) int {
		coll.rooms = L.CheckTable(1)
		return 0
	}))
}

func named(L *lua.LState, into *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*into = append(*into, rawDef{name: name, table: tbl})
			return 0
		}))
		return 1
	})
}
