// Package state provides lookups over the world graph and the knowledge
// model, plus the character arithmetic events are applied with.
package state

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/types"
)

// NewGameState creates a game whose world holds only the seed room. Every
// exit of the seed room starts as a dangling edge of the exit graph.
func NewGameState(id types.Identifier, room types.Room) types.GameState {
	s := types.GameState{
		Identifier:       id,
		World:            types.World{Rooms: []types.Room{room}},
		NpcKnowledge:     map[uuid.UUID]types.NpcKnowledge{},
		FixtureKnowledge: map[uuid.UUID]types.FixtureKnowledge{},
	}
	for _, exit := range room.Exits {
		s.World.ExitGraph = append(s.World.ExitGraph, types.ExitMap{
			ExitID:     exit.Identifier.ID,
			LeftRoomID: room.Identifier.ID,
		})
	}
	EnterRoom(&s, room.Identifier.ID)
	return s
}

// CurrentRoom returns the room the player is in. The current room is owned
// by the engine, so a missing room is a corrupted state and panics.
func CurrentRoom(s *types.GameState) *types.Room {
	room, ok := FindRoom(s, s.CurrentRoomID)
	if !ok {
		panic(fmt.Sprintf("state: current room %s not in world", s.CurrentRoomID))
	}
	return room
}

// FindRoom returns the room with the given id.
func FindRoom(s *types.GameState, id uuid.UUID) (*types.Room, bool) {
	for i := range s.World.Rooms {
		if s.World.Rooms[i].Identifier.ID == id {
			return &s.World.Rooms[i], true
		}
	}
	return nil, false
}

// FindNpc returns the NPC with the given id standing in room.
func FindNpc(room *types.Room, id uuid.UUID) (*types.NonPlayer, bool) {
	for i := range room.NpcPositions {
		npcs := room.NpcPositions[i].NPCs
		for j := range npcs {
			if npcs[j].Identifier.ID == id {
				return &npcs[j], true
			}
		}
	}
	return nil, false
}

// FindFixture returns the fixture with the given id in room.
func FindFixture(room *types.Room, id uuid.UUID) (*types.Fixture, bool) {
	for i := range room.FixturePositions {
		fixtures := room.FixturePositions[i].Fixtures
		for j := range fixtures {
			if fixtures[j].Identifier.ID == id {
				return &fixtures[j], true
			}
		}
	}
	return nil, false
}

// RemoveFixtureItem takes the item with the given id out of f.
func RemoveFixtureItem(f *types.Fixture, id uuid.UUID) (types.FixtureItem, bool) {
	for i, it := range f.Items {
		if it.Item.Identifier.ID == id {
			f.Items = slices.Delete(f.Items, i, i+1)
			return it, true
		}
	}
	return types.FixtureItem{}, false
}

// ExitMapFor returns the exit graph entry for an exit id.
func ExitMapFor(s *types.GameState, exitID uuid.UUID) (*types.ExitMap, bool) {
	for i := range s.World.ExitGraph {
		if s.World.ExitGraph[i].ExitID == exitID {
			return &s.World.ExitGraph[i], true
		}
	}
	return nil, false
}

// OtherRoomID returns the room on the far side of m as seen from roomID.
// The result is invalid while the far side is still dangling.
func OtherRoomID(m types.ExitMap, roomID uuid.UUID) uuid.NullUUID {
	switch {
	case m.LeftRoomID == roomID:
		return m.RightRoomID
	case m.RightRoomID.Valid && m.RightRoomID.UUID == roomID:
		return uuid.NullUUID{UUID: m.LeftRoomID, Valid: true}
	}
	return uuid.NullUUID{}
}

// NpcKnowledge returns what the player knows about an NPC. Unknown NPCs get
// the all-false record.
func NpcKnowledge(s *types.GameState, id uuid.UUID) types.NpcKnowledge {
	return s.NpcKnowledge[id]
}

// FixtureKnowledge returns what the player knows about a fixture.
func FixtureKnowledge(s *types.GameState, id uuid.UUID) types.FixtureKnowledge {
	return s.FixtureKnowledge[id]
}

// UpdateNpcKnowledge applies fn to the knowledge record of an NPC.
func UpdateNpcKnowledge(s *types.GameState, id uuid.UUID, fn func(k *types.NpcKnowledge)) {
	if s.NpcKnowledge == nil {
		s.NpcKnowledge = map[uuid.UUID]types.NpcKnowledge{}
	}
	k := s.NpcKnowledge[id]
	fn(&k)
	s.NpcKnowledge[id] = k
}

// UpdateFixtureKnowledge applies fn to the knowledge record of a fixture.
func UpdateFixtureKnowledge(s *types.GameState, id uuid.UUID, fn func(k *types.FixtureKnowledge)) {
	if s.FixtureKnowledge == nil {
		s.FixtureKnowledge = map[uuid.UUID]types.FixtureKnowledge{}
	}
	k := s.FixtureKnowledge[id]
	fn(&k)
	s.FixtureKnowledge[id] = k
}

// EnterRoom moves the player into a room and creates all-false knowledge
// for anything in it the player has not met before. Existing knowledge is
// left untouched.
func EnterRoom(s *types.GameState, roomID uuid.UUID) {
	s.CurrentRoomID = roomID
	if !slices.Contains(s.RoomsVisited, roomID) {
		s.RoomsVisited = append(s.RoomsVisited, roomID)
	}

	room := CurrentRoom(s)
	for _, np := range room.NpcPositions {
		for _, npc := range np.NPCs {
			UpdateNpcKnowledge(s, npc.Identifier.ID, func(*types.NpcKnowledge) {})
		}
	}
	for _, fp := range room.FixturePositions {
		for _, f := range fp.Fixtures {
			UpdateFixtureKnowledge(s, f.Identifier.ID, func(*types.FixtureKnowledge) {})
		}
	}
}

// AddRoom splices a generated room into the world. The exit graph entry for
// entranceID gets the new room as its far side, and every other exit of the
// room becomes a new dangling entry. Resolving an entry twice is a defect.
func AddRoom(s *types.GameState, room types.Room, entranceID uuid.UUID) {
	m, ok := ExitMapFor(s, entranceID)
	if !ok {
		panic(fmt.Sprintf("state: entrance %s not in exit graph", entranceID))
	}
	if m.RightRoomID.Valid {
		panic(fmt.Sprintf("state: exit %s already leads to %s", entranceID, m.RightRoomID.UUID))
	}
	m.RightRoomID = uuid.NullUUID{UUID: room.Identifier.ID, Valid: true}

	s.World.Rooms = append(s.World.Rooms, room)
	for _, exit := range room.Exits {
		if exit.Identifier.ID == entranceID {
			continue
		}
		s.World.ExitGraph = append(s.World.ExitGraph, types.ExitMap{
			ExitID:     exit.Identifier.ID,
			LeftRoomID: room.Identifier.ID,
		})
	}
}
