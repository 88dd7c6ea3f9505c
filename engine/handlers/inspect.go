package handlers

import (
	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// LookAtCurrentRoom notes every NPC standing in the current room.
func LookAtCurrentRoom(a actions.LookAtCurrentRoom, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	return []events.Event{events.RoomViewed{RoomID: s.CurrentRoomID}}, nil
}

// QuickLookRoom is a glance: the caller renders the room and nothing is
// learned.
func QuickLookRoom(a actions.QuickLookRoom, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	return nil, nil
}

// LookAtNpc looks an NPC over.
func LookAtNpc(a actions.LookAtNpc, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	npc, err := findNpc(s, a.TargetID)
	if err != nil {
		return nil, err
	}
	return []events.Event{events.NpcViewed{NpcID: npc.Identifier.ID}}, nil
}

// LookAtFixture looks into a fixture, learning what it openly holds.
func LookAtFixture(a actions.LookAtFixture, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	f, err := findFixture(s, a.TargetID)
	if err != nil {
		return nil, err
	}
	return []events.Event{events.FixtureViewed{FixtureID: f.Identifier.ID}}, nil
}

// InspectNpc rolls once for each requested fact the player does not
// already know. Facts already known are not rolled for.
func InspectNpc(a actions.InspectNpc, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	npc, err := findNpc(s, a.TargetID)
	if err != nil {
		return nil, err
	}

	id := npc.Identifier.ID
	k := state.NpcKnowledge(s, id)
	checks := []struct {
		want  bool
		known bool
		event events.Event
	}{
		{a.DiscoverHealth, k.KnowsHealth, events.NpcHealthDiscovered{NpcID: id}},
		{a.DiscoverName, k.KnowsName, events.NpcNameDiscovered{NpcID: id}},
		{a.DiscoverPackedItems, k.KnowsPackedInInventory, events.NpcPackedItemsDiscovered{NpcID: id}},
		{a.DiscoverHiddenItems, k.KnowsHiddenInInventory, events.NpcHiddenItemsDiscovered{NpcID: id}},
	}

	var evts []events.Event
	for _, c := range checks {
		if c.want && !c.known && ctx.discover() {
			evts = append(evts, c.event)
		}
	}
	return evts, nil
}

// InspectFixture searches a fixture for a hidden compartment. A fixture
// without one gives the same result as a failed search.
func InspectFixture(a actions.InspectFixture, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	f, err := findFixture(s, a.TargetID)
	if err != nil {
		return nil, err
	}
	if !a.DiscoverHiddenCompartment || state.FixtureKnowledge(s, f.Identifier.ID).KnowsHiddenCompartment {
		return nil, nil
	}
	if ctx.discover() && f.HasHiddenCompartment {
		return []events.Event{events.FixtureHiddenCompartmentDiscovered{FixtureID: f.Identifier.ID}}, nil
	}
	return nil, nil
}
