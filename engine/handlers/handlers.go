// Package handlers resolves each action kind into the events it produces.
// A handler only reads the state and player it is given; it either returns
// a complete batch of events or an error and no events at all.
package handlers

import (
	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// RoomFactory returns the generator for a room entered through entrance.
type RoomFactory func(entrance uuid.NullUUID) generate.Generator[types.Room]

// Context carries the collaborators handlers draw on.
type Context struct {
	RNG   *rng.RNG
	Rooms RoomFactory
}

// discoveryTarget is the d6 roll an inspection needs to learn something.
const discoveryTarget = 4

func (ctx Context) discover() bool {
	return ctx.RNG.Roll(6) >= discoveryTarget
}

func findNpc(s *types.GameState, raw string) (*types.NonPlayer, error) {
	id, err := ids.Parse(raw)
	if err != nil {
		return nil, err
	}
	return lookupNpc(s, id)
}

func lookupNpc(s *types.GameState, id uuid.UUID) (*types.NonPlayer, error) {
	npc, ok := state.FindNpc(state.CurrentRoom(s), id)
	if !ok {
		return nil, &NotFoundError{Entity: EntityNpc, ID: id}
	}
	return npc, nil
}

func findFixture(s *types.GameState, raw string) (*types.Fixture, error) {
	id, err := ids.Parse(raw)
	if err != nil {
		return nil, err
	}
	f, ok := state.FindFixture(state.CurrentRoom(s), id)
	if !ok {
		return nil, &NotFoundError{Entity: EntityFixture, ID: id}
	}
	return f, nil
}

func lookupSpell(p *types.PlayerCharacter, id uuid.UUID) (*types.LearnedSpell, error) {
	ls, ok := state.FindSpell(&p.Character, id)
	if !ok {
		return nil, &NotFoundError{Entity: EntitySpell, ID: id}
	}
	return ls, nil
}

func liveNpc(npc *types.NonPlayer) error {
	if state.IsDead(&npc.Character) {
		return &NpcStateError{NpcID: npc.Identifier.ID, Err: ErrNpcAlreadyDead}
	}
	return nil
}

// lethal reports whether damage, less defense, empties health.
func lethal(h types.Health, damage, defense int) bool {
	return max(0, damage-defense) >= h.Current
}
