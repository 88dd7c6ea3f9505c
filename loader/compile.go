package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
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

// arrayStrings returns the string elements of a Lua array, skipping others.
func arrayStrings(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// getStrings returns a string array field, or nil if missing.
func getStrings(tbl *lua.LTable, key string) []string {
	return arrayStrings(getTable(tbl, key))
}

// compiler turns collected tables into prototypes, recording problems in ve
// instead of stopping at the first one.
type compiler struct {
	cat *generate.Catalog
	ve  *ValidationError

	packWeapons   bool
	packWearables bool
}

// compile converts all collected Lua data into a catalog. Definitions the
// pack leaves out fall back to the built-in catalog.
func compile(coll *collector, ve *ValidationError) *generate.Catalog {
	c := &compiler{cat: generate.DefaultCatalog(), ve: ve}

	if len(coll.weapons) > 0 {
		c.packWeapons = true
		c.cat.Weapons = map[string]generate.WeaponPrototype{}
	}
	for _, raw := range coll.weapons {
		where := fmt.Sprintf("weapon %q", raw.name)
		if _, dup := c.cat.Weapons[raw.name]; dup {
			ve.errorf("duplicate %s", where)
		}
		c.cat.Weapons[raw.name] = c.weapon(where, raw.table)
	}

	if len(coll.wearables) > 0 {
		c.packWearables = true
		c.cat.Wearables = map[string]generate.WearablePrototype{}
	}
	for _, raw := range coll.wearables {
		where := fmt.Sprintf("wearable %q", raw.name)
		if _, dup := c.cat.Wearables[raw.name]; dup {
			ve.errorf("duplicate %s", where)
		}
		c.cat.Wearables[raw.name] = c.wearable(where, raw.table)
	}

	c.cat.Inventories = map[string]generate.InventoryPrototype{}
	for _, raw := range coll.inventories {
		where := fmt.Sprintf("inventory %q", raw.name)
		if _, dup := c.cat.Inventories[raw.name]; dup {
			ve.errorf("duplicate %s", where)
		}
		c.cat.Inventories[raw.name] = c.inventory(where, raw.table)
	}

	c.cat.Npcs = map[string]generate.NonPlayerPrototype{}
	for _, raw := range coll.npcs {
		where := fmt.Sprintf("npc %q", raw.name)
		if _, dup := c.cat.Npcs[raw.name]; dup {
			ve.errorf("duplicate %s", where)
		}
		c.cat.Npcs[raw.name] = generate.NonPlayerPrototype{
			Name:      getString(raw.table, "name"),
			Character: c.character(where, raw.table),
		}
	}

	if coll.player != nil {
		c.cat.Player = generate.PlayerPrototype{
			Name:      getString(coll.player, "name"),
			Character: c.character("player", coll.player),
			KnowsAll:  getBool(coll.player, "knows_all", false),
		}
	}

	c.cat.Spawns = c.roomLists("spawn", coll.spawns)
	c.cat.Flavours = c.roomLists("flavour", coll.flavours)

	if coll.rooms != nil {
		c.room(coll.rooms)
	}
	return c.cat
}

func (c *compiler) weapon(where string, tbl *lua.LTable) generate.WeaponPrototype {
	kind := types.ItemType(getString(tbl, "item"))
	if !checkEnum(c.ve, where, "weapon kind", kind, tables.AllWeapons()) {
		return generate.WeaponPrototype{}
	}
	p := generate.WeaponPrototype{
		ItemType:       kind,
		Materials:      c.materials(where, kind, getStrings(tbl, "materials")),
		NumDescriptors: c.rangeField(where, tbl, "descriptors", generate.Range{Min: 0, Max: 1}),
	}
	if at := getTable(tbl, "attack"); at != nil {
		attack := types.Attack{
			NumRolls: getInt(at, "rolls"),
			Modifier: getInt(at, "modifier"),
		}
		if attack.NumRolls < 0 {
			c.ve.errorf("%s: attack rolls must not be negative", where)
		}
		for _, e := range getStrings(at, "effects") {
			effect := types.AttackEffect(e)
			if checkEnum(c.ve, where, "attack effect", effect, allAttackEffects) {
				attack.Effects = append(attack.Effects, effect)
			}
		}
		p.Attack = &attack
	}
	return p
}

func (c *compiler) wearable(where string, tbl *lua.LTable) generate.WearablePrototype {
	kind := types.ItemType(getString(tbl, "item"))
	if !checkEnum(c.ve, where, "wearable kind", kind, tables.AllWearables()) {
		return generate.WearablePrototype{}
	}
	p := generate.WearablePrototype{
		ItemType:       kind,
		Materials:      c.materials(where, kind, getStrings(tbl, "materials")),
		NumDescriptors: c.rangeField(where, tbl, "descriptors", generate.Range{Min: 0, Max: 1}),
	}
	if v := tbl.RawGetString("defense"); v != lua.LNil {
		dr := getInt(tbl, "defense")
		if dr < 0 {
			c.ve.errorf("%s: defense must not be negative", where)
		}
		p.Defense = &types.Defense{DamageResistance: dr}
	}
	return p
}

func (c *compiler) materials(where string, kind types.ItemType, names []string) []types.Material {
	var out []types.Material
	for _, n := range names {
		m := types.Material(n)
		if !checkEnum(c.ve, where, "material", m, tables.AllMaterials()) {
			continue
		}
		if !legalMaterial(kind, m) {
			c.ve.errorf("%s: a %s cannot be made of %s", where, tables.ItemName(kind), n)
			continue
		}
		out = append(out, m)
	}
	return out
}

func (c *compiler) inventory(where string, tbl *lua.LTable) generate.InventoryPrototype {
	p := generate.InventoryPrototype{
		NumEquippedWeapons:   c.rangeField(where, tbl, "equipped_weapons", generate.Range{}),
		NumEquippedWearables: c.rangeField(where, tbl, "equipped_wearables", generate.Range{}),
		NumCarriedWeapons:    c.rangeField(where, tbl, "carried_weapons", generate.Range{}),
		NumCarriedWearables:  c.rangeField(where, tbl, "carried_wearables", generate.Range{}),
		EquipWeaponChance:    c.chanceOr(where, tbl, "equip_weapon_chance", 100),
		EquipWearableChance:  c.chanceOr(where, tbl, "equip_wearable_chance", 100),
		HiddenWeaponChance:   c.chance(where, tbl, "hidden_weapon_chance"),
		HiddenWearableChance: c.chance(where, tbl, "hidden_wearable_chance"),
	}
	for _, name := range getStrings(tbl, "weapons") {
		w, ok := c.lookupWeapon(name)
		if !ok {
			c.ve.errorf("%s references undefined weapon %q", where, name)
			continue
		}
		p.Weapons = append(p.Weapons, w)
	}
	for _, name := range getStrings(tbl, "wearables") {
		w, ok := c.lookupWearable(name)
		if !ok {
			c.ve.errorf("%s references undefined wearable %q", where, name)
			continue
		}
		p.Wearables = append(p.Wearables, w)
	}
	return p
}

// lookupWeapon finds a weapon by pack name, then by bare item kind.
func (c *compiler) lookupWeapon(name string) (generate.WeaponPrototype, bool) {
	if w, ok := c.cat.Weapons[name]; ok {
		return w, true
	}
	kind := types.ItemType(name)
	if contains(tables.AllWeapons(), kind) {
		return generate.WeaponPrototype{ItemType: kind, NumDescriptors: generate.Range{Min: 0, Max: 1}}, true
	}
	return generate.WeaponPrototype{}, false
}

// lookupWearable finds a wearable by pack name, then by bare item kind.
func (c *compiler) lookupWearable(name string) (generate.WearablePrototype, bool) {
	if w, ok := c.cat.Wearables[name]; ok {
		return w, true
	}
	kind := types.ItemType(name)
	if contains(tables.AllWearables(), kind) {
		return generate.WearablePrototype{ItemType: kind, NumDescriptors: generate.Range{Min: 0, Max: 1}}, true
	}
	return generate.WearablePrototype{}, false
}

func (c *compiler) character(where string, tbl *lua.LTable) generate.CharacterPrototype {
	p := generate.CharacterPrototype{
		Health:             c.rangeField(where, tbl, "health", generate.Range{}),
		LifeModifierChance: c.chance(where, tbl, "undead_chance"),
		NumSpells:          c.rangeField(where, tbl, "num_spells", generate.Range{}),
	}

	if s := getString(tbl, "species"); s != "" {
		if checkEnum(c.ve, where, "species", types.Species(s), tables.AllSpecies()) {
			p.Species = types.Species(s)
		}
	}
	for _, s := range getStrings(tbl, "species_pool") {
		if checkEnum(c.ve, where, "species", types.Species(s), tables.AllSpecies()) {
			p.SpeciesPool = append(p.SpeciesPool, types.Species(s))
		}
	}
	for _, m := range getStrings(tbl, "undead") {
		if checkEnum(c.ve, where, "undead kind", types.LifeModifier(m), tables.AllLifeModifiers()) {
			p.LifeModifiers = append(p.LifeModifiers, types.LifeModifier(m))
		}
	}

	switch v := tbl.RawGetString("inventory").(type) {
	case lua.LString:
		inv, ok := c.cat.Inventories[string(v)]
		if !ok {
			c.ve.errorf("%s references undefined inventory %q", where, string(v))
		} else {
			p.Inventory = inv
		}
	case *lua.LTable:
		p.Inventory = c.inventory(where, v)
	default:
		p.Inventory = generate.BasicInventory()
	}

	if spells := getTable(tbl, "spells"); spells != nil {
		for i := 1; i <= spells.MaxN(); i++ {
			if sp, ok := c.spell(where, spells.RawGetInt(i)); ok {
				p.Spells = append(p.Spells, sp)
			}
		}
	}
	return p
}

// spell accepts either a spell name or a table with name, damage and uses.
func (c *compiler) spell(where string, v lua.LValue) (generate.SpellPrototype, bool) {
	var p generate.SpellPrototype
	switch val := v.(type) {
	case lua.LString:
		p.Name = types.SpellName(val)
	case *lua.LTable:
		p.Name = types.SpellName(getString(val, "name"))
		p.Damage = getInt(val, "damage")
		p.Uses = getInt(val, "uses")
		if p.Damage < 0 || p.Uses < 0 {
			c.ve.errorf("%s: spell %q damage and uses must not be negative", where, p.Name)
		}
	default:
		c.ve.errorf("%s: spells must be names or tables", where)
		return p, false
	}
	return p, checkEnum(c.ve, where, "spell", p.Name, tables.AllSpells())
}

// roomLists compiles Spawn and Flavour blocks, which map a room type to a
// list of strings. Repeated blocks for one room type append.
func (c *compiler) roomLists(kind string, raws []rawDef) map[types.RoomType][]string {
	if len(raws) == 0 {
		return nil
	}
	out := map[types.RoomType][]string{}
	for _, raw := range raws {
		rt := types.RoomType(raw.name)
		if !checkEnum(c.ve, kind, "room type", rt, tables.AllRoomTypes()) {
			continue
		}
		out[rt] = append(out[rt], arrayStrings(raw.table)...)
	}
	return out
}

func (c *compiler) room(tbl *lua.LTable) {
	const where = "rooms"
	p := &c.cat.Room
	for _, s := range getStrings(tbl, "types") {
		if checkEnum(c.ve, where, "room type", types.RoomType(s), tables.AllRoomTypes()) {
			p.RoomTypes = append(p.RoomTypes, types.RoomType(s))
		}
	}
	p.NumDescriptors = c.rangeField(where, tbl, "descriptors", p.NumDescriptors)
	p.NumFixtureGroups = c.rangeField(where, tbl, "fixture_groups", p.NumFixtureGroups)
	p.FixturesPerGroup = c.rangeField(where, tbl, "fixtures_per_group", p.FixturesPerGroup)
	p.NumNpcGroups = c.rangeField(where, tbl, "npc_groups", p.NumNpcGroups)
	p.NpcsPerGroup = c.rangeField(where, tbl, "npcs_per_group", p.NpcsPerGroup)
	p.NumExits = c.rangeField(where, tbl, "exits", p.NumExits)
	if tbl.RawGetString("companion_chance") != lua.LNil {
		p.CompanionChance = c.chance(where, tbl, "companion_chance")
	}
	if p.NumExits.Min < 1 {
		c.ve.errorf("%s: every room needs at least one exit besides the entrance", where)
	}
}

// rangeField reads {min, max} or a single number meaning {n, n}.
func (c *compiler) rangeField(where string, tbl *lua.LTable, key string, def generate.Range) generate.Range {
	var rg generate.Range
	switch v := tbl.RawGetString(key).(type) {
	case lua.LNumber:
		rg = generate.Range{Min: int(v), Max: int(v)}
	case *lua.LTable:
		lo, okLo := v.RawGetInt(1).(lua.LNumber)
		hi, okHi := v.RawGetInt(2).(lua.LNumber)
		if !okLo || !okHi {
			c.ve.errorf("%s: %s must be {min, max}", where, key)
			return def
		}
		rg = generate.Range{Min: int(lo), Max: int(hi)}
	default:
		return def
	}
	if rg.Min < 0 || rg.Min > rg.Max {
		c.ve.errorf("%s: %s range {%d, %d} is invalid", where, key, rg.Min, rg.Max)
		return def
	}
	return rg
}

// chance reads a percentage in [0, 100].
// chanceOr is chance with a default for a missing key.
func (c *compiler) chanceOr(where string, tbl *lua.LTable, key string, def int) int {
	if tbl.RawGetString(key) == lua.LNil {
		return def
	}
	return c.chance(where, tbl, key)
}

func (c *compiler) chance(where string, tbl *lua.LTable, key string) int {
	n := getInt(tbl, key)
	if n < 0 || n > 100 {
		c.ve.errorf("%s: %s %d is not a percentage", where, key, n)
		return 0
	}
	return n
}
