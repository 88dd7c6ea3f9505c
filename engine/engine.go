// Package engine runs a game session: it resolves each action into events,
// folds them into the authoritative state, and keeps the journal that lets
// a session be saved and replayed.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/handlers"
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// ErrPlayerDead is returned for any action but looking once the player has
// died.
var ErrPlayerDead = errors.New("you are dead")

// Resolve dispatches an action to its handler. It reads s and p but never
// modifies them.
func Resolve(a actions.Action, s *types.GameState, p *types.PlayerCharacter, ctx handlers.Context) ([]events.Event, error) {
	switch a := a.(type) {
	case actions.AttackNpc:
		return handlers.AttackNpc(a, s, p, ctx)
	case actions.CastSpellOnNpc:
		return handlers.CastSpellOnNpc(a, s, p, ctx)
	case actions.CastSpellOnPlayer:
		return handlers.CastSpellOnPlayer(a, s, p, ctx)
	case actions.InspectNpc:
		return handlers.InspectNpc(a, s, p, ctx)
	case actions.InspectFixture:
		return handlers.InspectFixture(a, s, p, ctx)
	case actions.LookAtCurrentRoom:
		return handlers.LookAtCurrentRoom(a, s, p, ctx)
	case actions.QuickLookRoom:
		return handlers.QuickLookRoom(a, s, p, ctx)
	case actions.LookAtNpc:
		return handlers.LookAtNpc(a, s, p, ctx)
	case actions.LookAtFixture:
		return handlers.LookAtFixture(a, s, p, ctx)
	case actions.LootFixture:
		return handlers.LootFixture(a, s, p, ctx)
	case actions.LootNpc:
		return handlers.LootNpc(a, s, p, ctx)
	case actions.MovePlayerItem:
		return handlers.MovePlayerItem(a, s, p, ctx)
	case actions.ExitRoom:
		return handlers.ExitRoom(a, s, p, ctx)
	}
	panic(fmt.Sprintf("engine: unhandled action %T", a))
}

// HandledAction is the outcome of one action: the events it produced and
// the state and player after applying them.
type HandledAction struct {
	Events []events.Event
	State  types.GameState
	Player types.PlayerCharacter
}

// Origin is a session as it stood before its first action. Folding the
// session's journal over it reproduces the current state.
type Origin struct {
	State  types.GameState       `json:"state"`
	Player types.PlayerCharacter `json:"player"`
}

// Engine holds one game session. It is not safe for concurrent use; a
// session handles one action at a time.
type Engine struct {
	State   types.GameState
	Player  types.PlayerCharacter
	RNG     *rng.RNG
	Rooms   handlers.RoomFactory
	Log     *slog.Logger
	Origin  *Origin
	Journal []events.Event
	Turn    int
}

// NewGame starts a session in a freshly generated seed room.
func NewGame(r *rng.RNG, player generate.Generator[types.PlayerCharacter], rooms handlers.RoomFactory, log *slog.Logger) *Engine {
	if log == nil {
		log = discard
	}
	seed := rooms(uuid.NullUUID{}).Generate(r)
	e := &Engine{
		State:  state.NewGameState(types.Identifier{ID: r.NewID()}, seed),
		Player: player.Generate(r),
		RNG:    r,
		Rooms:  rooms,
		Log:    log,
	}
	e.Origin = &Origin{State: state.Clone(e.State), Player: state.ClonePlayer(e.Player)}
	e.Log.Info("game started",
		"game", e.State.Identifier.ID,
		"seed", r.Seed(),
		"room", seed.Identifier.ID,
		"room_type", seed.RoomType,
	)
	return e
}

// Handle resolves a and, if it succeeds, commits its events. A failed
// action leaves the session untouched.
func (e *Engine) Handle(a actions.Action) (HandledAction, error) {
	if state.IsDead(&e.Player.Character) && !passive(a) {
		return HandledAction{State: e.State, Player: e.Player}, ErrPlayerDead
	}

	ctx := handlers.Context{RNG: e.RNG, Rooms: e.Rooms}
	evts, err := Resolve(a, &e.State, &e.Player, ctx)
	if err != nil {
		e.logger().Debug("action rejected", "action", a.Kind(), "turn", e.Turn, "err", err)
		return HandledAction{State: e.State, Player: e.Player}, err
	}

	e.State, e.Player = events.Apply(evts, e.State, e.Player)
	e.Journal = append(e.Journal, evts...)
	e.Turn++

	e.logger().Debug("action handled",
		"action", a.Kind(),
		"turn", e.Turn,
		"events", len(evts),
		"rng_position", e.RNG.Position(),
	)
	for _, evt := range evts {
		if _, ok := evt.(events.RoomGenerated); ok {
			e.logger().Info("room generated", "room", e.State.CurrentRoomID, "rooms", len(e.State.World.Rooms))
		}
	}

	return HandledAction{Events: evts, State: e.State, Player: e.Player}, nil
}

func (e *Engine) logger() *slog.Logger {
	if e.Log == nil {
		return discard
	}
	return e.Log
}

var discard = slog.New(slog.DiscardHandler)

// passive reports whether a only looks, which the dead may still do.
func passive(a actions.Action) bool {
	switch a.(type) {
	case actions.LookAtCurrentRoom, actions.QuickLookRoom, actions.LookAtNpc, actions.LookAtFixture:
		return true
	}
	return false
}
