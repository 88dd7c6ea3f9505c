package handlers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/types"
)

// Sentinels for errors.Is. Every error a handler returns wraps one of
// these or ids.ErrInvalidIDFormat.
var (
	ErrNpcNotFound         = errors.New("npc not found")
	ErrFixtureNotFound     = errors.New("fixture not found")
	ErrSpellNotFound       = errors.New("spell not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrExitNotFound        = errors.New("exit not found")
	ErrNpcAlreadyDead      = errors.New("npc is already dead")
	ErrNpcNotDead          = errors.New("npc is not dead")
	ErrInvalidItemLocation = errors.New("invalid item location")
)

// Entity names the kind of thing a lookup failed to find.
type Entity string

const (
	EntityNpc     Entity = "npc"
	EntityFixture Entity = "fixture"
	EntitySpell   Entity = "spell"
	EntityItem    Entity = "item"
	EntityExit    Entity = "exit"
)

// NotFoundError indicates a well-formed id that matched nothing in reach.
type NotFoundError struct {
	Entity Entity
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Entity {
	case EntityNpc:
		return ErrNpcNotFound
	case EntityFixture:
		return ErrFixtureNotFound
	case EntitySpell:
		return ErrSpellNotFound
	case EntityItem:
		return ErrItemNotFound
	case EntityExit:
		return ErrExitNotFound
	}
	return nil
}

// NpcStateError indicates an NPC that is alive when it must be dead, or
// the other way round.
type NpcStateError struct {
	NpcID uuid.UUID
	Err   error
}

func (e *NpcStateError) Error() string {
	return fmt.Sprintf("npc %s: %v", e.NpcID, e.Err)
}

func (e *NpcStateError) Unwrap() error { return e.Err }

// LocationError indicates an item that cannot be moved where asked.
// ConflictsWith is set when an equipped item already occupies the slot.
type LocationError struct {
	ItemType      types.ItemType
	Location      types.LocationTag
	ConflictsWith types.ItemType
}

func (e *LocationError) Error() string {
	if e.ConflictsWith != "" {
		return fmt.Sprintf("cannot wear %s on %s while wearing %s", e.ItemType, e.Location, e.ConflictsWith)
	}
	return fmt.Sprintf("%s cannot go to %q", e.ItemType, e.Location)
}

func (e *LocationError) Unwrap() error { return ErrInvalidItemLocation }
