package handlers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// ExitRoom walks through an exit of the current room. The first time an
// exit is used the room behind it is generated, with the exit as its
// entrance; afterwards the exit always leads to that same room.
func ExitRoom(a actions.ExitRoom, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	exitID, err := ids.Parse(a.ExitID)
	if err != nil {
		return nil, err
	}
	if !hasExit(state.CurrentRoom(s), exitID) {
		return nil, &NotFoundError{Entity: EntityExit, ID: exitID}
	}

	m, ok := state.ExitMapFor(s, exitID)
	if !ok {
		panic(fmt.Sprintf("handlers: exit %s of room %s missing from exit graph", exitID, s.CurrentRoomID))
	}

	var evts []events.Event
	dest := state.OtherRoomID(*m, s.CurrentRoomID)
	if !dest.Valid {
		entrance := uuid.NullUUID{UUID: exitID, Valid: true}
		room := ctx.Rooms(entrance).Generate(ctx.RNG)
		evts = append(evts, events.RoomGenerated{Room: room, EntranceID: exitID})
		dest = uuid.NullUUID{UUID: room.Identifier.ID, Valid: true}
	}

	return append(evts, events.RoomExited{
		ExitID:    exitID,
		OldRoomID: s.CurrentRoomID,
		NewRoomID: dest.UUID,
	}), nil
}

func hasExit(room *types.Room, id uuid.UUID) bool {
	for _, e := range room.Exits {
		if e.Identifier.ID == id {
			return true
		}
	}
	return false
}
