package state

import (
	"slices"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/types"
)

// Damage lowers current health by n, stopping at zero.
func Damage(c *types.Character, n int) {
	if n < 0 {
		return
	}
	c.Stats.Health.Current = max(0, c.Stats.Health.Current-n)
}

// Heal raises current health by n, stopping at max.
func Heal(c *types.Character, n int) {
	if n < 0 {
		return
	}
	c.Stats.Health.Current = min(c.Stats.Health.Max, c.Stats.Health.Current+n)
}

// HealToMax restores full health.
func HealToMax(c *types.Character) {
	c.Stats.Health.Current = c.Stats.Health.Max
}

// Kill drops current health to zero.
func Kill(c *types.Character) {
	c.Stats.Health.Current = 0
}

// IsDead reports whether the character has no health left.
func IsDead(c *types.Character) bool {
	return c.Stats.Health.Current <= 0
}

// RollAttack rolls an attack profile: NumRolls d6 plus Modifier, raised by
// half again (rounded down) when the attack crushes.
func RollAttack(a types.Attack, r *rng.RNG) int {
	roll := r.RollD6(a.NumRolls, a.Modifier)
	if slices.Contains(a.Effects, types.AttackEffectCrushing) {
		roll += roll / 2
	}
	return roll
}

// AttackRoll sums one roll of every weapon the character has at the ready.
func AttackRoll(c *types.Character, r *rng.RNG) int {
	total := 0
	for _, ci := range ReadiedWeapons(c) {
		total += RollAttack(*ci.Item.Attack, r)
	}
	return total
}

// ReadiedWeapons lists the equipped items at the ready that can attack.
func ReadiedWeapons(c *types.Character) []types.CharacterItem {
	var out []types.CharacterItem
	for _, ci := range c.Inventory.Equipment {
		if ci.AtTheReady && ci.Item.Attack != nil {
			out = append(out, ci)
		}
	}
	return out
}

// Defense sums the damage resistance of everything the character has
// equipped. Packed and hidden items do not protect.
func Defense(c *types.Character) int {
	total := 0
	for _, ci := range c.Inventory.Equipment {
		if ci.Item.Defense == nil || !slices.Contains(ci.LocationTags, types.LocationEquipped) {
			continue
		}
		total += ci.Item.Defense.DamageResistance
	}
	return total
}

// PlayerDefense is the player's equipped defense plus any shield aura.
func PlayerDefense(p *types.PlayerCharacter) int {
	total := Defense(&p.Character)
	if aura := p.Character.CurrentEffects.ShieldAura; aura != nil {
		total += aura.DamageResistance
	}
	return total
}

// FindItem returns the carried item with the given id.
func FindItem(c *types.Character, id uuid.UUID) (*types.CharacterItem, bool) {
	for i := range c.Inventory.Equipment {
		if c.Inventory.Equipment[i].Item.Identifier.ID == id {
			return &c.Inventory.Equipment[i], true
		}
	}
	return nil, false
}

// RemoveItem takes the item with the given id out of the inventory.
func RemoveItem(c *types.Character, id uuid.UUID) (types.CharacterItem, bool) {
	for i, ci := range c.Inventory.Equipment {
		if ci.Item.Identifier.ID == id {
			c.Inventory.Equipment = slices.Delete(c.Inventory.Equipment, i, i+1)
			return ci, true
		}
	}
	return types.CharacterItem{}, false
}

// AddItem adds an item to the inventory. An item already carried is
// replaced so that each id appears at most once.
func AddItem(c *types.Character, ci types.CharacterItem) {
	RemoveItem(c, ci.Item.Identifier.ID)
	c.Inventory.Equipment = append(c.Inventory.Equipment, ci)
}

// FindSpell returns the learned spell with the given id.
func FindSpell(c *types.Character, id uuid.UUID) (*types.LearnedSpell, bool) {
	for i := range c.SpellMemory.Spells {
		if c.SpellMemory.Spells[i].ID == id {
			return &c.SpellMemory.Spells[i], true
		}
	}
	return nil, false
}

// ForgetSpell removes a learned spell.
func ForgetSpell(c *types.Character, id uuid.UUID) {
	c.SpellMemory.Spells = slices.DeleteFunc(c.SpellMemory.Spells, func(s types.LearnedSpell) bool {
		return s.ID == id
	})
}
