package view

import (
	"slices"
	"strings"

	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// CharacterArgs selects which facts about a character are visible.
type CharacterArgs struct {
	KnowsHealth            bool
	KnowsSpecies           bool
	KnowsLifeModifier      bool
	KnowsInventory         bool
	KnowsHiddenInInventory bool
	KnowsPackedInInventory bool
	KnowsSpells            bool
	KnowsEffects           bool
}

// NpcArgs derives character args from an NPC knowledge record.
func NpcArgs(k types.NpcKnowledge) CharacterArgs {
	return CharacterArgs{
		KnowsHealth:            k.KnowsHealth,
		KnowsSpecies:           k.KnowsSpecies,
		KnowsLifeModifier:      k.KnowsLifeModifier,
		KnowsInventory:         k.KnowsInventory,
		KnowsHiddenInInventory: k.KnowsHiddenInInventory,
		KnowsPackedInInventory: k.KnowsPackedInInventory,
	}
}

// CharacterView is a character as an observer sees it.
type CharacterView struct {
	Health           *types.Health       `json:"health,omitempty"`
	Species          *types.Species      `json:"species,omitempty"`
	LifeModifier     *types.LifeModifier `json:"life_modifier,omitempty"`
	Inventory        *InventoryView      `json:"inventory,omitempty"`
	InventoryKnown   bool                `json:"inventory_known"`
	CurrentEffects   *types.Effects      `json:"current_effects,omitempty"`
	SpellMemory      *types.SpellMemory  `json:"spell_memory,omitempty"`
	SpellMemoryKnown bool                `json:"spell_memory_known"`
}

// InventoryView is the visible part of an inventory.
type InventoryView struct {
	Equipment []types.CharacterItem `json:"equipment"`
}

// NonPlayerView is an NPC as an observer sees it.
type NonPlayerView struct {
	Identifier IdentifierView `json:"identifier"`
	Character  CharacterView  `json:"character"`
}

// PlayerView is the player as they see themselves.
type PlayerView struct {
	Identifier IdentifierView `json:"identifier"`
	Character  CharacterView  `json:"character"`
}

// LookAtCharacter projects c through args. knowsAll reveals everything.
func LookAtCharacter(c types.Character, args CharacterArgs, knowsAll bool) CharacterView {
	if knowsAll {
		args = CharacterArgs{true, true, true, true, true, true, true, true}
	}

	var v CharacterView
	if args.KnowsHealth {
		h := c.Stats.Health
		v.Health = &h
	}
	if args.KnowsSpecies {
		sp := c.Species
		v.Species = &sp
	}
	if args.KnowsLifeModifier {
		lm := c.LifeModifier
		v.LifeModifier = &lm
	}
	if args.KnowsInventory || args.KnowsPackedInInventory || args.KnowsHiddenInInventory {
		v.Inventory = &InventoryView{Equipment: visibleItems(c.Inventory, args)}
		v.InventoryKnown = true
	}
	if args.KnowsEffects {
		fx := c.CurrentEffects
		v.CurrentEffects = &fx
	}
	if args.KnowsSpells {
		sm := types.SpellMemory{Spells: slices.Clone(c.SpellMemory.Spells)}
		v.SpellMemory = &sm
		v.SpellMemoryKnown = true
	}
	return v
}

// visibleItems keeps the items whose location the observer knows about.
// Hidden and packed items each need their own flag; anything else is worn
// in the open.
func visibleItems(inv types.Inventory, args CharacterArgs) []types.CharacterItem {
	out := []types.CharacterItem{}
	for _, ci := range inv.Equipment {
		var visible bool
		switch {
		case slices.Contains(ci.LocationTags, types.LocationHidden):
			visible = args.KnowsHiddenInInventory
		case slices.Contains(ci.LocationTags, types.LocationPacked):
			visible = args.KnowsPackedInInventory
		default:
			visible = args.KnowsInventory
		}
		if visible {
			out = append(out, ci)
		}
	}
	return out
}

// LookAtNpc projects an NPC through what the observer knows of it.
func LookAtNpc(npc types.NonPlayer, k types.NpcKnowledge, knowsAll bool) NonPlayerView {
	return NonPlayerView{
		Identifier: identifier(npc.Identifier, k.KnowsName || knowsAll),
		Character:  LookAtCharacter(npc.Character, NpcArgs(k), knowsAll),
	}
}

// LookAtPlayer shows the player everything about themselves.
func LookAtPlayer(p types.PlayerCharacter) PlayerView {
	return PlayerView{
		Identifier: identifier(p.Identifier, true),
		Character:  LookAtCharacter(p.Character, CharacterArgs{}, true),
	}
}

// Noun describes the NPC by what is known of it: "skeletal goblin",
// "goblin", or "figure".
func (v NonPlayerView) Noun() string {
	species := types.Species("")
	if v.Character.Species != nil {
		species = *v.Character.Species
	}
	noun := tables.DescribeSpeciesCount(species, 1)
	if lm := v.Character.LifeModifier; lm != nil && *lm != types.LifeModifierNone {
		noun = tables.LifeModifierAdjective(*lm) + " " + noun
	}
	return noun
}

// String names the NPC if its name is known and describes it otherwise.
func (v NonPlayerView) String() string {
	noun := article(v.Noun())
	if v.Identifier.Name != nil && *v.Identifier.Name != "" {
		return *v.Identifier.Name + ", " + noun
	}
	return noun
}

// DescribeItem renders an item as "a rusty iron long sword".
func DescribeItem(item types.Item) string {
	var words []string
	for _, d := range item.Descriptors {
		words = append(words, tables.DescriptorText(d))
	}
	if item.Material != "" {
		words = append(words, tables.MaterialName(item.Material))
	}
	words = append(words, tables.ItemName(item.ItemType))
	return article(strings.Join(words, " "))
}
