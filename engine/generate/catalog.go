package generate

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// Catalog is the set of named prototypes a content pack defines. Rooms are
// generated from Room, with NPC spawns and fixture loot resolved by name.
type Catalog struct {
	Weapons     map[string]WeaponPrototype
	Wearables   map[string]WearablePrototype
	Inventories map[string]InventoryPrototype
	Npcs        map[string]NonPlayerPrototype
	Player      PlayerPrototype
	Spawns      map[types.RoomType][]string
	Flavours    map[types.RoomType][]string
	Room        RoomPrototype
}

// DefaultCatalog is the content used when no pack is loaded: every weapon
// and wearable kind as loot, stock room ranges, species-table spawns.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Weapons:   map[string]WeaponPrototype{},
		Wearables: map[string]WearablePrototype{},
		Player:    DefaultPlayer(""),
		Room:      RandomRoom(uuid.NullUUID{}),
	}
	for _, w := range weaponPrototypes(tables.AllWeapons()...) {
		c.Weapons[string(w.ItemType)] = w
	}
	for _, w := range wearablePrototypes(tables.AllWearables()...) {
		c.Wearables[string(w.ItemType)] = w
	}
	return c
}

// Rooms returns a generator for a room entered through entrance.
func (c *Catalog) Rooms(entrance uuid.NullUUID) Generator[types.Room] {
	p := c.Room
	p.Entrance = entrance
	p.Flavours = c.Flavours
	p.FixtureItems = c.itemGenerators()

	if len(c.Spawns) > 0 {
		p.Spawns = map[types.RoomType][]Generator[types.NonPlayer]{}
		for rt, names := range c.Spawns {
			for _, name := range names {
				if npc, ok := c.Npcs[name]; ok {
					p.Spawns[rt] = append(p.Spawns[rt], npc)
				}
			}
		}
	}
	return p
}

// itemGenerators lists every weapon then every wearable in name order, so
// the same seed picks the same loot regardless of map iteration.
func (c *Catalog) itemGenerators() []Generator[types.Item] {
	var out []Generator[types.Item]
	for _, name := range slices.Sorted(maps.Keys(c.Weapons)) {
		out = append(out, c.Weapons[name])
	}
	for _, name := range slices.Sorted(maps.Keys(c.Wearables)) {
		out = append(out, c.Wearables[name])
	}
	return out
}
