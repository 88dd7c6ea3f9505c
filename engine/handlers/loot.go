package handlers

import (
	"slices"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// LootFixture takes the requested items out of a fixture. Item ids that do
// not parse or are not in the fixture are skipped without error, and so are
// items in a hidden compartment the player has not found.
func LootFixture(a actions.LootFixture, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	f, err := findFixture(s, a.FixtureID)
	if err != nil {
		return nil, err
	}

	wanted := ids.ParseAll(a.ItemIDs)
	knowsCompartment := state.FixtureKnowledge(s, f.Identifier.ID).KnowsHiddenCompartment

	var evts []events.Event
	for _, it := range f.Items {
		if !slices.Contains(wanted, it.Item.Identifier.ID) {
			continue
		}
		if it.IsInHiddenCompartment && !knowsCompartment {
			continue
		}
		evts = append(evts, events.ItemTakenFromFixture{FixtureID: f.Identifier.ID, ItemID: it.Item.Identifier.ID})
	}
	return evts, nil
}

// LootNpc takes the requested items from a dead NPC, with the same
// permissive handling of item ids as LootFixture.
func LootNpc(a actions.LootNpc, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}
	if !state.IsDead(&npc.Character) {
		return nil, &NpcStateError{NpcID: npc.Identifier.ID, Err: ErrNpcNotDead}
	}

	wanted := ids.ParseAll(a.ItemIDs)

	var evts []events.Event
	for _, ci := range npc.Character.Inventory.Equipment {
		if slices.Contains(wanted, ci.Item.Identifier.ID) {
			evts = append(evts, events.ItemTakenFromNpc{NpcID: npc.Identifier.ID, ItemID: ci.Item.Identifier.ID})
		}
	}
	return evts, nil
}
