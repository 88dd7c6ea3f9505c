package events

import (
	"encoding/json"
	"fmt"
)

// envelope is the wire form of an event: its type tag and its payload.
type envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// UnknownTypeError reports an envelope whose type tag names no event.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown event type %q", e.Type)
}

// Encode marshals an event into its tagged envelope.
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", e.Type(), err)
	}
	return json.Marshal(envelope{Type: e.Type(), Data: data})
}

// Decode unmarshals a tagged envelope back into its event.
func Decode(b []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decoding event envelope: %w", err)
	}

	var e Event
	var err error
	switch env.Type {
	case TypeRoomGenerated:
		e, err = decodeAs[RoomGenerated](env.Data)
	case TypeRoomExited:
		e, err = decodeAs[RoomExited](env.Data)
	case TypeRoomViewed:
		e, err = decodeAs[RoomViewed](env.Data)
	case TypeNpcViewed:
		e, err = decodeAs[NpcViewed](env.Data)
	case TypeNpcHealthDiscovered:
		e, err = decodeAs[NpcHealthDiscovered](env.Data)
	case TypeNpcNameDiscovered:
		e, err = decodeAs[NpcNameDiscovered](env.Data)
	case TypeNpcPackedItemsDiscovered:
		e, err = decodeAs[NpcPackedItemsDiscovered](env.Data)
	case TypeNpcHiddenItemsDiscovered:
		e, err = decodeAs[NpcHiddenItemsDiscovered](env.Data)
	case TypeNpcHit:
		e, err = decodeAs[NpcHit](env.Data)
	case TypeNpcHealed:
		e, err = decodeAs[NpcHealed](env.Data)
	case TypeNpcKilled:
		e, err = decodeAs[NpcKilled](env.Data)
	case TypeFixtureViewed:
		e, err = decodeAs[FixtureViewed](env.Data)
	case TypeFixtureHiddenCompartmentDiscovered:
		e, err = decodeAs[FixtureHiddenCompartmentDiscovered](env.Data)
	case TypeItemTakenFromFixture:
		e, err = decodeAs[ItemTakenFromFixture](env.Data)
	case TypeItemTakenFromNpc:
		e, err = decodeAs[ItemTakenFromNpc](env.Data)
	case TypePlayerItemMoved:
		e, err = decodeAs[PlayerItemMoved](env.Data)
	case TypePlayerHit:
		e, err = decodeAs[PlayerHit](env.Data)
	case TypePlayerHealed:
		e, err = decodeAs[PlayerHealed](env.Data)
	case TypePlayerKilled:
		e, err = decodeAs[PlayerKilled](env.Data)
	case TypePlayerResurrected:
		e, err = decodeAs[PlayerResurrected](env.Data)
	case TypePlayerGainsResurrectionAura:
		e, err = decodeAs[PlayerGainsResurrectionAura](env.Data)
	case TypePlayerGainsRetributionAura:
		e, err = decodeAs[PlayerGainsRetributionAura](env.Data)
	case TypePlayerGainsShieldAura:
		e, err = decodeAs[PlayerGainsShieldAura](env.Data)
	case TypePlayerRetributionAuraDissipated:
		e, err = decodeAs[PlayerRetributionAuraDissipated](env.Data)
	case TypePlayerSpellUsed:
		e, err = decodeAs[PlayerSpellUsed](env.Data)
	case TypePlayerSpellForgotten:
		e, err = decodeAs[PlayerSpellForgotten](env.Data)
	default:
		return nil, &UnknownTypeError{Type: env.Type}
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", env.Type, err)
	}
	return e, nil
}

func decodeAs[T Event](data json.RawMessage) (Event, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeAll encodes a batch of events as a JSON array of envelopes.
func EncodeAll(evts []Event) ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(evts))
	for _, e := range evts {
		b, err := Encode(e)
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}
	return json.Marshal(raw)
}

// DecodeAll decodes a JSON array of envelopes.
func DecodeAll(b []byte) ([]Event, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decoding event list: %w", err)
	}
	out := make([]Event, 0, len(raw))
	for i, r := range raw {
		e, err := Decode(r)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
