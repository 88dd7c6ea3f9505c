package generate

import (
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// SpellPrototype generates a learned spell. Zero Damage and Uses fall back to
// the spell's defaults.
type SpellPrototype struct {
	Name    types.SpellName
	Damage  int
	Uses    int
	Attack  *types.Attack
	Defense *types.Defense
}

// Generate builds a learned spell.
func (p SpellPrototype) Generate(r *rng.RNG) types.LearnedSpell {
	spell := types.Spell{
		Name:    p.Name,
		Damage:  tables.SpellDamage(p.Name),
		Uses:    tables.SpellUses(p.Name),
		Attack:  p.Attack,
		Defense: p.Defense,
	}
	if p.Damage > 0 {
		spell.Damage = p.Damage
	}
	if p.Uses > 0 {
		spell.Uses = p.Uses
	}
	return types.LearnedSpell{ID: r.NewID(), Spell: spell}
}

// CharacterPrototype generates the body shared by NPCs and players.
type CharacterPrototype struct {
	Species            types.Species   // fixed species; empty draws from SpeciesPool
	SpeciesPool        []types.Species // empty means every species
	Health             Range           // zero means the species default
	LifeModifierChance int
	LifeModifiers      []types.LifeModifier // empty means every undead kind
	Inventory          Generator[types.Inventory]
	Spells             []SpellPrototype
	NumSpells          Range // zero learns every spell in Spells
}

// Generate builds a character.
func (p CharacterPrototype) Generate(r *rng.RNG) types.Character {
	species := p.Species
	if species == "" {
		pool := p.SpeciesPool
		if len(pool) == 0 {
			pool = tables.AllSpecies()
		}
		species = rng.Pick(r, pool)
	}

	lo, hi := tables.SpeciesHealth(species)
	if !p.Health.IsZero() {
		lo, hi = p.Health.Min, p.Health.Max
	}
	maxHealth := r.Between(lo, hi)

	var modifier types.LifeModifier
	if chance(r, p.LifeModifierChance) {
		mods := p.LifeModifiers
		if len(mods) == 0 {
			mods = tables.AllLifeModifiers()
		}
		modifier = rng.Pick(r, mods)
	}

	c := types.Character{
		Stats: types.Stats{
			Health: types.Health{Current: maxHealth, Max: maxHealth},
			Height: tables.SpeciesHeight(species),
		},
		Species:      species,
		LifeModifier: modifier,
	}
	if p.Inventory != nil {
		c.Inventory = p.Inventory.Generate(r)
	}

	spells := p.Spells
	if !p.NumSpells.IsZero() {
		spells = pickN(r, p.Spells, p.NumSpells.Roll(r))
	}
	for _, sp := range spells {
		c.SpellMemory.Spells = append(c.SpellMemory.Spells, sp.Generate(r))
	}
	return c
}

// NonPlayerPrototype generates an NPC.
type NonPlayerPrototype struct {
	Name      string
	Character Generator[types.Character]
}

// Generate builds an NPC with a fresh id.
func (p NonPlayerPrototype) Generate(r *rng.RNG) types.NonPlayer {
	id := r.NewID()
	return types.NonPlayer{
		Identifier: types.Identifier{ID: id, Name: p.Name},
		Character:  p.Character.Generate(r),
	}
}

// PlayerPrototype generates the player's character.
type PlayerPrototype struct {
	Name      string
	Character Generator[types.Character]
	KnowsAll  bool
}

// Generate builds a player character with a fresh id.
func (p PlayerPrototype) Generate(r *rng.RNG) types.PlayerCharacter {
	id := r.NewID()
	return types.PlayerCharacter{
		Identifier: types.Identifier{ID: id, Name: p.Name},
		Character:  p.Character.Generate(r),
		KnowsAll:   p.KnowsAll,
	}
}

func weaponPrototypes(kinds ...types.ItemType) []WeaponPrototype {
	out := make([]WeaponPrototype, len(kinds))
	for i, k := range kinds {
		out[i] = WeaponPrototype{ItemType: k, NumDescriptors: Range{0, 1}}
	}
	return out
}

func wearablePrototypes(kinds ...types.ItemType) []WearablePrototype {
	out := make([]WearablePrototype, len(kinds))
	for i, k := range kinds {
		out[i] = WearablePrototype{ItemType: k, NumDescriptors: Range{0, 1}}
	}
	return out
}

// BasicInventory is a light kit: one readied weapon and a few clothes.
func BasicInventory() InventoryPrototype {
	return InventoryPrototype{
		Weapons: weaponPrototypes(types.ItemClub, types.ItemDagger, types.ItemHammer, types.ItemShortSword),
		Wearables: wearablePrototypes(
			types.ItemBoots, types.ItemCloak, types.ItemLoinCloth,
			types.ItemShirt, types.ItemTrousers, types.ItemVest,
		),
		NumEquippedWeapons:   Range{1, 1},
		NumEquippedWearables: Range{1, 3},
		NumCarriedWeapons:    Range{0, 1},
		NumCarriedWearables:  Range{0, 1},
		EquipWeaponChance:    100,
		EquipWearableChance:  100,
		HiddenWeaponChance:   10,
	}
}

// OverloadedInventory draws from every weapon and wearable and carries a lot.
func OverloadedInventory() InventoryPrototype {
	return InventoryPrototype{
		Weapons:              weaponPrototypes(tables.AllWeapons()...),
		Wearables:            wearablePrototypes(tables.AllWearables()...),
		NumEquippedWeapons:   Range{1, 2},
		NumEquippedWearables: Range{3, 6},
		NumCarriedWeapons:    Range{1, 3},
		NumCarriedWearables:  Range{1, 2},
		EquipWeaponChance:    100,
		EquipWearableChance:  100,
		HiddenWeaponChance:   25,
	}
}

// BasicCharacter is a species default with a light kit.
func BasicCharacter(species types.Species) CharacterPrototype {
	return CharacterPrototype{Species: species, Inventory: BasicInventory()}
}

// OverloadedCharacter is a species default carrying far too much.
func OverloadedCharacter(species types.Species) CharacterPrototype {
	return CharacterPrototype{Species: species, Inventory: OverloadedInventory()}
}

// UndeadCharacter is always raised with a life modifier.
func UndeadCharacter(species types.Species) CharacterPrototype {
	return CharacterPrototype{Species: species, Inventory: BasicInventory(), LifeModifierChance: 100}
}

// DefaultPlayer is a human with a sword, some armour and every spell.
func DefaultPlayer(name string) PlayerPrototype {
	var spells []SpellPrototype
	for _, s := range tables.AllSpells() {
		spells = append(spells, SpellPrototype{Name: s})
	}
	return PlayerPrototype{
		Name: name,
		Character: CharacterPrototype{
			Species: types.SpeciesHuman,
			Health:  Range{30, 30},
			Inventory: InventoryPrototype{
				Weapons:              weaponPrototypes(types.ItemLongSword),
				Wearables:            wearablePrototypes(types.ItemBreastplate, types.ItemBoots),
				NumEquippedWeapons:   Range{1, 1},
				NumEquippedWearables: Range{2, 2},
				EquipWeaponChance:    100,
				EquipWearableChance:  100,
			},
			Spells: spells,
		},
	}
}
