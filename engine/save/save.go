// Package save implements JSON serialization and deserialization of game
// sessions.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// Version is the save format written by Save.
const Version = 1

// ErrUnsupportedVersion is wrapped by the error Load returns for a save
// written in another format.
var ErrUnsupportedVersion = errors.New("unsupported save version")

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     int                   `json:"version"`
	Turn        int                   `json:"turn"`
	State       types.GameState       `json:"state"`
	Player      types.PlayerCharacter `json:"player"`
	RNGSeed     int64                 `json:"rng_seed"`
	RNGPosition int64                 `json:"rng_position"`
	Origin      *engine.Origin        `json:"origin,omitempty"`
	Journal     json.RawMessage       `json:"journal,omitempty"`
}

// Save serializes a session to JSON bytes.
func Save(e *engine.Engine) ([]byte, error) {
	journal, err := events.EncodeAll(e.Journal)
	if err != nil {
		return nil, fmt.Errorf("encode journal: %w", err)
	}
	data := SaveData{
		Version:     Version,
		Turn:        e.Turn,
		State:       e.State,
		Player:      e.Player,
		RNGSeed:     e.RNG.Seed(),
		RNGPosition: e.RNG.Position(),
		Origin:      e.Origin,
		Journal:     journal,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, sd.Version)
	}
	// Ensure maps are never nil after load.
	if sd.State.NpcKnowledge == nil {
		sd.State.NpcKnowledge = map[uuid.UUID]types.NpcKnowledge{}
	}
	if sd.State.FixtureKnowledge == nil {
		sd.State.FixtureKnowledge = map[uuid.UUID]types.FixtureKnowledge{}
	}
	return &sd, nil
}

// ApplySave restores a loaded save onto a session. The RNG resumes at the
// exact position it was saved at.
func ApplySave(e *engine.Engine, sd *SaveData) error {
	journal, err := sd.events()
	if err != nil {
		return err
	}
	e.State = sd.State
	e.Player = sd.Player
	e.Turn = sd.Turn
	e.RNG = rng.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
	e.Origin = sd.Origin
	e.Journal = journal
	return nil
}

// Replay folds the saved journal over the saved origin. A save without an
// origin replays to its own snapshot.
func (sd *SaveData) Replay() (types.GameState, types.PlayerCharacter, error) {
	if sd.Origin == nil {
		return state.Clone(sd.State), state.ClonePlayer(sd.Player), nil
	}
	journal, err := sd.events()
	if err != nil {
		return types.GameState{}, types.PlayerCharacter{}, err
	}
	s, p := events.Apply(journal, sd.Origin.State, sd.Origin.Player)
	return s, p, nil
}

func (sd *SaveData) events() ([]events.Event, error) {
	if len(sd.Journal) == 0 {
		return nil, nil
	}
	journal, err := events.DecodeAll(sd.Journal)
	if err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	return journal, nil
}
