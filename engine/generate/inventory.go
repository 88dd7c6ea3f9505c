package generate

import (
	"slices"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// InventoryPrototype generates a character's equipment. Each item picked to
// be equipped goes on a body slot its kind allows when its equip roll
// succeeds, and is packed otherwise. Carried items are packed, or hidden
// when the kind can be concealed and the hidden roll succeeds. Chances are
// percentages in 0..=100.
type InventoryPrototype struct {
	Weapons              []WeaponPrototype
	Wearables            []WearablePrototype
	NumEquippedWeapons   Range
	NumEquippedWearables Range
	NumCarriedWeapons    Range
	NumCarriedWearables  Range
	EquipWeaponChance    int
	EquipWearableChance  int
	HiddenWeaponChance   int
	HiddenWearableChance int
}

// Generate builds an inventory.
func (p InventoryPrototype) Generate(r *rng.RNG) types.Inventory {
	var inv types.Inventory

	if len(p.Weapons) > 0 {
		readied := false
		n := p.NumEquippedWeapons.Roll(r)
		for i := 0; i < n; i++ {
			item := rng.Pick(r, p.Weapons).Generate(r)
			if !equipRoll(r, p.EquipWeaponChance) {
				inv.Equipment = append(inv.Equipment, carry(r, item, 0))
				continue
			}
			inv.Equipment = append(inv.Equipment, equipWeapon(r, item, !readied))
			readied = true
		}
		n = p.NumCarriedWeapons.Roll(r)
		for i := 0; i < n; i++ {
			item := rng.Pick(r, p.Weapons).Generate(r)
			inv.Equipment = append(inv.Equipment, carry(r, item, p.HiddenWeaponChance))
		}
	}

	if len(p.Wearables) > 0 {
		var worn []types.ItemType
		n := p.NumEquippedWearables.Roll(r)
		for i := 0; i < n; i++ {
			item := rng.Pick(r, p.Wearables).Generate(r)
			if !equipRoll(r, p.EquipWearableChance) || conflictsWithAny(item.ItemType, worn) {
				inv.Equipment = append(inv.Equipment, carry(r, item, 0))
				continue
			}
			worn = append(worn, item.ItemType)
			inv.Equipment = append(inv.Equipment, types.CharacterItem{
				Item:         item,
				LocationTags: append([]types.LocationTag{types.LocationEquipped}, tables.BodyLocations(item.ItemType)...),
				IsMultiple:   tables.IsMultiple(item.ItemType),
			})
		}
		n = p.NumCarriedWearables.Roll(r)
		for i := 0; i < n; i++ {
			item := rng.Pick(r, p.Wearables).Generate(r)
			inv.Equipment = append(inv.Equipment, carry(r, item, p.HiddenWearableChance))
		}
	}

	return inv
}

// equipRoll decides whether an item picked for equipping is worn or
// wielded. A certain roll draws nothing from r.
func equipRoll(r *rng.RNG, pct int) bool {
	if pct >= 100 {
		return true
	}
	return chance(r, pct)
}

// equipWeapon places a weapon on the body. The first equipped weapon goes in
// hand at the ready; the rest are sheathed on a non-hand slot if the kind has one.
func equipWeapon(r *rng.RNG, item types.Item, first bool) types.CharacterItem {
	slots := tables.BodyLocations(item.ItemType)
	ci := types.CharacterItem{Item: item, IsMultiple: tables.IsMultiple(item.ItemType)}

	if first || item.ItemType == types.ItemBuckler {
		slot := slots[0]
		if slices.Contains(slots, types.LocationHand) {
			slot = types.LocationHand
		}
		ci.LocationTags = []types.LocationTag{types.LocationEquipped, slot}
		ci.AtTheReady = true
		return ci
	}

	var sheaths []types.LocationTag
	for _, s := range slots {
		if s != types.LocationHand {
			sheaths = append(sheaths, s)
		}
	}
	if len(sheaths) == 0 {
		ci.LocationTags = []types.LocationTag{types.LocationPacked}
		return ci
	}
	ci.LocationTags = []types.LocationTag{types.LocationEquipped, rng.Pick(r, sheaths)}
	return ci
}

// carry stows an item that is not worn or wielded.
func carry(r *rng.RNG, item types.Item, hiddenChance int) types.CharacterItem {
	ci := types.CharacterItem{
		Item:         item,
		LocationTags: []types.LocationTag{types.LocationPacked},
		IsMultiple:   tables.IsMultiple(item.ItemType),
	}
	if !slices.Contains(tables.PossibleLocations(item.ItemType), types.LocationHidden) {
		return ci
	}
	if chance(r, hiddenChance) {
		var slots []types.LocationTag
		for _, s := range tables.BodyLocations(item.ItemType) {
			if s != types.LocationHand {
				slots = append(slots, s)
			}
		}
		ci.LocationTags = []types.LocationTag{types.LocationHidden}
		if len(slots) > 0 {
			ci.LocationTags = append(ci.LocationTags, rng.Pick(r, slots))
		}
	}
	return ci
}

func conflictsWithAny(t types.ItemType, worn []types.ItemType) bool {
	for _, w := range worn {
		if tables.Conflicts(t, w) {
			return true
		}
	}
	return false
}
