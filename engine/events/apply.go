package events

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// Apply folds evts, in order, into copies of s and p and returns the copies.
// The inputs are never mutated. An event that refers to something the state
// does not hold means the events were not produced against this state, and
// panics.
func Apply(evts []Event, s types.GameState, p types.PlayerCharacter) (types.GameState, types.PlayerCharacter) {
	s = state.Clone(s)
	p = state.ClonePlayer(p)

	for _, e := range evts {
		apply(e, &s, &p)
	}
	return s, p
}

func apply(e Event, s *types.GameState, p *types.PlayerCharacter) {
	switch e := e.(type) {
	case RoomGenerated:
		state.AddRoom(s, e.Room, e.EntranceID)

	case RoomExited:
		if _, ok := state.FindRoom(s, e.NewRoomID); !ok {
			panic(fmt.Sprintf("events: room exited into unknown room %s", e.NewRoomID))
		}
		state.EnterRoom(s, e.NewRoomID)

	case RoomViewed:
		room, ok := state.FindRoom(s, e.RoomID)
		if !ok {
			panic(fmt.Sprintf("events: viewed unknown room %s", e.RoomID))
		}
		for _, np := range room.NpcPositions {
			for _, npc := range np.NPCs {
				state.UpdateNpcKnowledge(s, npc.Identifier.ID, seeNpc)
			}
		}

	case NpcViewed:
		mustNpc(s, e.NpcID)
		state.UpdateNpcKnowledge(s, e.NpcID, seeNpc)

	case NpcHealthDiscovered:
		mustNpc(s, e.NpcID)
		state.UpdateNpcKnowledge(s, e.NpcID, func(k *types.NpcKnowledge) { k.KnowsHealth = true })

	case NpcNameDiscovered:
		mustNpc(s, e.NpcID)
		state.UpdateNpcKnowledge(s, e.NpcID, func(k *types.NpcKnowledge) { k.KnowsName = true })

	case NpcPackedItemsDiscovered:
		mustNpc(s, e.NpcID)
		state.UpdateNpcKnowledge(s, e.NpcID, func(k *types.NpcKnowledge) { k.KnowsPackedInInventory = true })

	case NpcHiddenItemsDiscovered:
		mustNpc(s, e.NpcID)
		state.UpdateNpcKnowledge(s, e.NpcID, func(k *types.NpcKnowledge) { k.KnowsHiddenInInventory = true })

	case NpcHit:
		npc := mustNpc(s, e.NpcID)
		state.Damage(&npc.Character, max(0, e.Damage-state.Defense(&npc.Character)))

	case NpcHealed:
		npc := mustNpc(s, e.NpcID)
		state.Heal(&npc.Character, e.DamageHealed)

	case NpcKilled:
		npc := mustNpc(s, e.NpcID)
		state.Kill(&npc.Character)

	case FixtureViewed:
		mustFixture(s, e.FixtureID)
		state.UpdateFixtureKnowledge(s, e.FixtureID, func(k *types.FixtureKnowledge) { k.KnowsItems = true })

	case FixtureHiddenCompartmentDiscovered:
		mustFixture(s, e.FixtureID)
		state.UpdateFixtureKnowledge(s, e.FixtureID, func(k *types.FixtureKnowledge) { k.KnowsHiddenCompartment = true })

	case ItemTakenFromFixture:
		f := mustFixture(s, e.FixtureID)
		it, ok := state.RemoveFixtureItem(f, e.ItemID)
		if !ok {
			panic(fmt.Sprintf("events: item %s not in fixture %s", e.ItemID, e.FixtureID))
		}
		state.AddItem(&p.Character, packed(it.Item))

	case ItemTakenFromNpc:
		npc := mustNpc(s, e.NpcID)
		ci, ok := state.RemoveItem(&npc.Character, e.ItemID)
		if !ok {
			panic(fmt.Sprintf("events: item %s not carried by npc %s", e.ItemID, e.NpcID))
		}
		ci.LocationTags = []types.LocationTag{types.LocationPacked}
		ci.AtTheReady = false
		state.AddItem(&p.Character, ci)

	case PlayerItemMoved:
		ci, ok := state.FindItem(&p.Character, e.ItemID)
		if !ok {
			panic(fmt.Sprintf("events: player does not carry item %s", e.ItemID))
		}
		switch e.Location {
		case types.LocationPacked, types.LocationHidden:
			ci.LocationTags = []types.LocationTag{e.Location}
			ci.AtTheReady = false
		default:
			ci.LocationTags = []types.LocationTag{types.LocationEquipped, e.Location}
			ci.AtTheReady = e.PutAtTheReady
		}

	case PlayerHit:
		state.Damage(&p.Character, max(0, e.Damage-state.PlayerDefense(p)))

	case PlayerHealed:
		state.Heal(&p.Character, e.DamageHealed)

	case PlayerKilled:
		state.Kill(&p.Character)

	case PlayerResurrected:
		p.Character.CurrentEffects.ResurrectionAura = false
		state.HealToMax(&p.Character)

	case PlayerGainsResurrectionAura:
		p.Character.CurrentEffects.ResurrectionAura = true

	case PlayerGainsRetributionAura:
		attack := e.Attack
		p.Character.CurrentEffects.RetributionAura = &attack

	case PlayerGainsShieldAura:
		defense := e.Defense
		p.Character.CurrentEffects.ShieldAura = &defense

	case PlayerRetributionAuraDissipated:
		p.Character.CurrentEffects.RetributionAura = nil

	case PlayerSpellUsed:
		ls, ok := state.FindSpell(&p.Character, e.SpellID)
		if !ok {
			panic(fmt.Sprintf("events: player has not learned spell %s", e.SpellID))
		}
		ls.Spell.Uses = max(0, ls.Spell.Uses-1)

	case PlayerSpellForgotten:
		state.ForgetSpell(&p.Character, e.SpellID)

	default:
		panic(fmt.Sprintf("events: unhandled event %T", e))
	}
}

// seeNpc is what a look reveals: what the NPC is and what it openly carries.
func seeNpc(k *types.NpcKnowledge) {
	k.KnowsSpecies = true
	k.KnowsLifeModifier = true
	k.KnowsInventory = true
}

func packed(item types.Item) types.CharacterItem {
	return types.CharacterItem{Item: item, LocationTags: []types.LocationTag{types.LocationPacked}}
}

// mustNpc finds an NPC anywhere in the world, current room first.
func mustNpc(s *types.GameState, id uuid.UUID) *types.NonPlayer {
	if npc, ok := state.FindNpc(state.CurrentRoom(s), id); ok {
		return npc
	}
	for i := range s.World.Rooms {
		if npc, ok := state.FindNpc(&s.World.Rooms[i], id); ok {
			return npc
		}
	}
	panic(fmt.Sprintf("events: unknown npc %s", id))
}

// mustFixture finds a fixture anywhere in the world, current room first.
func mustFixture(s *types.GameState, id uuid.UUID) *types.Fixture {
	if f, ok := state.FindFixture(state.CurrentRoom(s), id); ok {
		return f
	}
	for i := range s.World.Rooms {
		if f, ok := state.FindFixture(&s.World.Rooms[i], id); ok {
			return f
		}
	}
	panic(fmt.Sprintf("events: unknown fixture %s", id))
}
