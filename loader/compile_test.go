package loader

import (
	"slices"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

// compileString runs src and compiles and validates what it defined.
func compileString(t *testing.T, src string) (*generate.Catalog, *ValidationError) {
	t.Helper()
	L, coll := newTestVM()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		t.Fatal(err)
	}
	ve := &ValidationError{}
	cat := compile(coll, ve)
	validate(cat, coll, ve)
	return cat, ve
}

func mustCompile(t *testing.T, src string) *generate.Catalog {
	t.Helper()
	cat, ve := compileString(t, src)
	if len(ve.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", ve.Errors)
	}
	return cat
}

func TestCompile_EmptyPackUsesDefaults(t *testing.T) {
	cat := mustCompile(t, ``)
	def := generate.DefaultCatalog()

	if len(cat.Weapons) != len(def.Weapons) {
		t.Errorf("weapons = %d, want %d", len(cat.Weapons), len(def.Weapons))
	}
	if len(cat.Wearables) != len(def.Wearables) {
		t.Errorf("wearables = %d, want %d", len(cat.Wearables), len(def.Wearables))
	}
	if cat.Room.NumExits != def.Room.NumExits {
		t.Errorf("exits = %+v, want %+v", cat.Room.NumExits, def.Room.NumExits)
	}
	if cat.Spawns != nil {
		t.Errorf("spawns = %v, want none", cat.Spawns)
	}
}

func TestCompileWeapon(t *testing.T) {
	cat := mustCompile(t, `
		Weapon "bone_knife" {
			item = "dagger",
			materials = {"bone"},
			descriptors = {1, 2},
			attack = { rolls = 2, modifier = -1, effects = {"sharp", "toxic"} },
		}
		Weapon "club" { item = "club" }
	`)

	if len(cat.Weapons) != 2 {
		t.Fatalf("expected only the pack's weapons, got %d", len(cat.Weapons))
	}
	w := cat.Weapons["bone_knife"]
	if w.ItemType != types.ItemDagger {
		t.Errorf("ItemType = %q", w.ItemType)
	}
	if !slices.Equal(w.Materials, []types.Material{types.MaterialBone}) {
		t.Errorf("Materials = %v", w.Materials)
	}
	if w.NumDescriptors != (generate.Range{Min: 1, Max: 2}) {
		t.Errorf("NumDescriptors = %+v", w.NumDescriptors)
	}
	if w.Attack == nil || w.Attack.NumRolls != 2 || w.Attack.Modifier != -1 {
		t.Fatalf("Attack = %+v", w.Attack)
	}
	if !slices.Equal(w.Attack.Effects, []types.AttackEffect{types.AttackEffectSharp, types.AttackEffectToxic}) {
		t.Errorf("Effects = %v", w.Attack.Effects)
	}

	club := cat.Weapons["club"]
	if club.Attack != nil {
		t.Errorf("club should keep the kind's attack, got %+v", club.Attack)
	}
	if club.NumDescriptors != (generate.Range{Min: 0, Max: 1}) {
		t.Errorf("default descriptors = %+v", club.NumDescriptors)
	}
	if len(cat.Wearables) != len(generate.DefaultCatalog().Wearables) {
		t.Error("wearables should stay at the defaults when the pack defines none")
	}
}

func TestCompileWearable_Defense(t *testing.T) {
	cat := mustCompile(t, `
		Wearable "shroud" { item = "cloak", materials = {"linen"}, defense = 2 }
		Wearable "shirt" { item = "shirt" }
	`)

	if d := cat.Wearables["shroud"].Defense; d == nil || d.DamageResistance != 2 {
		t.Errorf("shroud defense = %+v", d)
	}
	if d := cat.Wearables["shirt"].Defense; d != nil {
		t.Errorf("shirt defense = %+v, want kind default", d)
	}
}

func TestCompileInventory_ResolvesNamesAndKinds(t *testing.T) {
	cat := mustCompile(t, `
		Weapon "bone_knife" { item = "dagger", materials = {"bone"} }
		Inventory "robber" {
			weapons = {"bone_knife", "whip"},
			wearables = {"cloak"},
			equipped_weapons = 1,
			equipped_wearables = {0, 1},
			carried_weapons = {0, 2},
			hidden_weapon_chance = 40,
			equip_wearable_chance = 30,
		}
	`)

	inv := cat.Inventories["robber"]
	if len(inv.Weapons) != 2 {
		t.Fatalf("weapons = %d, want 2", len(inv.Weapons))
	}
	if inv.Weapons[0].Materials[0] != types.MaterialBone {
		t.Errorf("named weapon not resolved: %+v", inv.Weapons[0])
	}
	if inv.Weapons[1].ItemType != types.ItemWhip {
		t.Errorf("bare kind not resolved: %+v", inv.Weapons[1])
	}
	if len(inv.Wearables) != 1 || inv.Wearables[0].ItemType != types.ItemCloak {
		t.Errorf("wearables = %+v", inv.Wearables)
	}
	if inv.NumEquippedWeapons != (generate.Range{Min: 1, Max: 1}) {
		t.Errorf("NumEquippedWeapons = %+v", inv.NumEquippedWeapons)
	}
	if inv.NumCarriedWeapons != (generate.Range{Min: 0, Max: 2}) {
		t.Errorf("NumCarriedWeapons = %+v", inv.NumCarriedWeapons)
	}
	if inv.HiddenWeaponChance != 40 {
		t.Errorf("HiddenWeaponChance = %d", inv.HiddenWeaponChance)
	}
	if inv.EquipWeaponChance != 100 {
		t.Errorf("EquipWeaponChance = %d, want the default 100", inv.EquipWeaponChance)
	}
	if inv.EquipWearableChance != 30 {
		t.Errorf("EquipWearableChance = %d, want 30", inv.EquipWearableChance)
	}
}

func TestCompileNpc(t *testing.T) {
	cat := mustCompile(t, `
		Inventory "kit" { weapons = {"mace"}, equipped_weapons = 1 }
		Npc "vampire" {
			name = "Count",
			species = "human",
			health = {10, 12},
			undead_chance = 100,
			undead = {"vampire"},
			inventory = "kit",
			spells = {"heal", {name = "electric_blast", damage = 7, uses = 1}},
			num_spells = {1, 1},
		}
		Npc "ogre" { species = "ogre", inventory = { weapons = {"club"}, equipped_weapons = 1 } }
		Npc "plain" { species_pool = {"goblin", "kobold"} }
		Spawn "mausoleum" { "vampire" }
		Spawn "cavern" { "ogre", "plain" }
	`)

	npc := cat.Npcs["vampire"]
	if npc.Name != "Count" {
		t.Errorf("Name = %q", npc.Name)
	}
	c := npc.Character.(generate.CharacterPrototype)
	if c.Species != types.SpeciesHuman || c.Health != (generate.Range{Min: 10, Max: 12}) {
		t.Errorf("character = %+v", c)
	}
	if c.LifeModifierChance != 100 || !slices.Equal(c.LifeModifiers, []types.LifeModifier{types.LifeModifierVampire}) {
		t.Errorf("undead = %d %v", c.LifeModifierChance, c.LifeModifiers)
	}
	if inv := c.Inventory.(generate.InventoryPrototype); inv.Weapons[0].ItemType != types.ItemMace {
		t.Errorf("inventory = %+v", inv)
	}
	if len(c.Spells) != 2 || c.Spells[1].Damage != 7 || c.Spells[1].Uses != 1 {
		t.Errorf("spells = %+v", c.Spells)
	}
	if c.NumSpells != (generate.Range{Min: 1, Max: 1}) {
		t.Errorf("NumSpells = %+v", c.NumSpells)
	}

	ogre := cat.Npcs["ogre"].Character.(generate.CharacterPrototype)
	if inv := ogre.Inventory.(generate.InventoryPrototype); inv.Weapons[0].ItemType != types.ItemClub {
		t.Errorf("inline inventory = %+v", inv)
	}

	plain := cat.Npcs["plain"].Character.(generate.CharacterPrototype)
	if len(plain.SpeciesPool) != 2 {
		t.Errorf("SpeciesPool = %v", plain.SpeciesPool)
	}
	if len(plain.Inventory.(generate.InventoryPrototype).Weapons) == 0 {
		t.Error("missing inventory should fall back to the basic kit")
	}

	if got := cat.Spawns[types.RoomCavern]; !slices.Equal(got, []string{"ogre", "plain"}) {
		t.Errorf("cavern spawns = %v", got)
	}
}

func TestCompilePlayer(t *testing.T) {
	cat := mustCompile(t, `
		Player {
			name = "Ash",
			species = "lizardkin",
			health = 40,
			spells = {"tiny_shield"},
			knows_all = true,
		}
	`)

	if cat.Player.Name != "Ash" || !cat.Player.KnowsAll {
		t.Errorf("player = %+v", cat.Player)
	}
	c := cat.Player.Character.(generate.CharacterPrototype)
	if c.Species != types.SpeciesLizardkin || c.Health != (generate.Range{Min: 40, Max: 40}) {
		t.Errorf("character = %+v", c)
	}
	if len(c.Spells) != 1 || c.Spells[0].Name != types.SpellTinyShield {
		t.Errorf("spells = %+v", c.Spells)
	}
}

func TestCompileRooms(t *testing.T) {
	cat := mustCompile(t, `
		Rooms {
			types = {"cave", "cavern"},
			exits = {2, 4},
			npc_groups = 0,
			companion_chance = 0,
		}
		Flavour "cave" { "It drips." }
		Flavour "cave" { "It echoes." }
	`)

	def := generate.RandomRoom(cat.Room.Entrance)
	if !slices.Equal(cat.Room.RoomTypes, []types.RoomType{types.RoomCave, types.RoomCavern}) {
		t.Errorf("RoomTypes = %v", cat.Room.RoomTypes)
	}
	if cat.Room.NumExits != (generate.Range{Min: 2, Max: 4}) {
		t.Errorf("NumExits = %+v", cat.Room.NumExits)
	}
	if cat.Room.NumNpcGroups != (generate.Range{}) {
		t.Errorf("NumNpcGroups = %+v", cat.Room.NumNpcGroups)
	}
	if cat.Room.CompanionChance != 0 {
		t.Errorf("CompanionChance = %d", cat.Room.CompanionChance)
	}
	if cat.Room.FixturesPerGroup != def.FixturesPerGroup {
		t.Errorf("unset ranges should keep the stock values, got %+v", cat.Room.FixturesPerGroup)
	}
	if got := cat.Flavours[types.RoomCave]; !slices.Equal(got, []string{"It drips.", "It echoes."}) {
		t.Errorf("flavours = %v", got)
	}
}
