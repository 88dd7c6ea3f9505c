package state

import (
	"maps"
	"slices"

	"github.com/nathoo/underworld/types"
)

// Clone returns a deep copy of s that shares no mutable memory with it.
func Clone(s types.GameState) types.GameState {
	out := s
	out.World.Rooms = make([]types.Room, len(s.World.Rooms))
	for i, r := range s.World.Rooms {
		out.World.Rooms[i] = CloneRoom(r)
	}
	out.World.ExitGraph = slices.Clone(s.World.ExitGraph)
	out.NpcKnowledge = maps.Clone(s.NpcKnowledge)
	out.FixtureKnowledge = maps.Clone(s.FixtureKnowledge)
	out.RoomsVisited = slices.Clone(s.RoomsVisited)
	return out
}

// ClonePlayer returns a deep copy of p.
func ClonePlayer(p types.PlayerCharacter) types.PlayerCharacter {
	out := p
	out.Character = CloneCharacter(p.Character)
	return out
}

// CloneRoom returns a deep copy of a room.
func CloneRoom(r types.Room) types.Room {
	out := r
	out.Descriptors = slices.Clone(r.Descriptors)
	out.Exits = slices.Clone(r.Exits)
	if r.FixturePositions != nil {
		out.FixturePositions = make([]types.FixturePosition, len(r.FixturePositions))
		for i, fp := range r.FixturePositions {
			fp.PositionDescriptors = slices.Clone(fp.PositionDescriptors)
			fixtures := make([]types.Fixture, len(fp.Fixtures))
			for j, f := range fp.Fixtures {
				fixtures[j] = cloneFixture(f)
			}
			fp.Fixtures = fixtures
			out.FixturePositions[i] = fp
		}
	}
	if r.NpcPositions != nil {
		out.NpcPositions = make([]types.NpcPosition, len(r.NpcPositions))
		for i, np := range r.NpcPositions {
			npcs := make([]types.NonPlayer, len(np.NPCs))
			for j, npc := range np.NPCs {
				npc.Character = CloneCharacter(npc.Character)
				npcs[j] = npc
			}
			np.NPCs = npcs
			out.NpcPositions[i] = np
		}
	}
	return out
}

func cloneFixture(f types.Fixture) types.Fixture {
	out := f
	out.Descriptors = slices.Clone(f.Descriptors)
	if f.Items != nil {
		out.Items = make([]types.FixtureItem, len(f.Items))
		for i, it := range f.Items {
			it.Item = CloneItem(it.Item)
			out.Items[i] = it
		}
	}
	return out
}

// CloneCharacter returns a deep copy of a character.
func CloneCharacter(c types.Character) types.Character {
	out := c
	if c.Inventory.Equipment != nil {
		out.Inventory.Equipment = make([]types.CharacterItem, len(c.Inventory.Equipment))
		for i, ci := range c.Inventory.Equipment {
			ci.Item = CloneItem(ci.Item)
			ci.LocationTags = slices.Clone(ci.LocationTags)
			out.Inventory.Equipment[i] = ci
		}
	}
	if c.SpellMemory.Spells != nil {
		out.SpellMemory.Spells = make([]types.LearnedSpell, len(c.SpellMemory.Spells))
		for i, ls := range c.SpellMemory.Spells {
			ls.Spell.Attack = cloneAttack(ls.Spell.Attack)
			ls.Spell.Defense = cloneDefense(ls.Spell.Defense)
			out.SpellMemory.Spells[i] = ls
		}
	}
	out.CurrentEffects.ShieldAura = cloneDefense(c.CurrentEffects.ShieldAura)
	out.CurrentEffects.RetributionAura = cloneAttack(c.CurrentEffects.RetributionAura)
	return out
}

// CloneItem returns a deep copy of an item.
func CloneItem(it types.Item) types.Item {
	out := it
	out.Tags = slices.Clone(it.Tags)
	out.Descriptors = slices.Clone(it.Descriptors)
	out.Attack = cloneAttack(it.Attack)
	out.Defense = cloneDefense(it.Defense)
	return out
}

func cloneAttack(a *types.Attack) *types.Attack {
	if a == nil {
		return nil
	}
	out := *a
	out.Effects = slices.Clone(a.Effects)
	return &out
}

func cloneDefense(d *types.Defense) *types.Defense {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}
