// Package events defines the facts an action can produce and folds them into
// game state. Events are immutable and already decided: applying one never
// rolls dice or fails.
package events

import (
	"github.com/google/uuid"

	"github.com/nathoo/underworld/types"
)

// Type names an event variant on the wire.
type Type string

const (
	TypeRoomGenerated                      Type = "room_generated"
	TypeRoomExited                         Type = "room_exited"
	TypeRoomViewed                         Type = "room_viewed"
	TypeNpcViewed                          Type = "npc_viewed"
	TypeNpcHealthDiscovered                Type = "npc_health_discovered"
	TypeNpcNameDiscovered                  Type = "npc_name_discovered"
	TypeNpcPackedItemsDiscovered           Type = "npc_packed_items_discovered"
	TypeNpcHiddenItemsDiscovered           Type = "npc_hidden_items_discovered"
	TypeNpcHit                             Type = "npc_hit"
	TypeNpcHealed                          Type = "npc_healed"
	TypeNpcKilled                          Type = "npc_killed"
	TypeFixtureViewed                      Type = "fixture_viewed"
	TypeFixtureHiddenCompartmentDiscovered Type = "fixture_hidden_compartment_discovered"
	TypeItemTakenFromFixture               Type = "item_taken_from_fixture"
	TypeItemTakenFromNpc                   Type = "item_taken_from_npc"
	TypePlayerItemMoved                    Type = "player_item_moved"
	TypePlayerHit                          Type = "player_hit"
	TypePlayerHealed                       Type = "player_healed"
	TypePlayerKilled                       Type = "player_killed"
	TypePlayerResurrected                  Type = "player_resurrected"
	TypePlayerGainsResurrectionAura        Type = "player_gains_resurrection_aura"
	TypePlayerGainsRetributionAura         Type = "player_gains_retribution_aura"
	TypePlayerGainsShieldAura              Type = "player_gains_shield_aura"
	TypePlayerRetributionAuraDissipated    Type = "player_retribution_aura_dissipated"
	TypePlayerSpellUsed                    Type = "player_spell_used"
	TypePlayerSpellForgotten               Type = "player_spell_forgotten"
)

// Event is a committed fact. The set of variants is closed: every type in
// this package implements it and nothing else should.
type Event interface {
	Type() Type
	sealed()
}

// RoomGenerated adds a freshly generated room behind the exit EntranceID.
type RoomGenerated struct {
	Room       types.Room `json:"room"`
	EntranceID uuid.UUID  `json:"entrance_id"`
}

// RoomExited moves the player through an exit.
type RoomExited struct {
	ExitID    uuid.UUID `json:"exit_id"`
	OldRoomID uuid.UUID `json:"old_room_id"`
	NewRoomID uuid.UUID `json:"new_room_id"`
}

// RoomViewed records that the player looked around a room.
type RoomViewed struct {
	RoomID uuid.UUID `json:"room_id"`
}

// NpcViewed records that the player looked at an NPC.
type NpcViewed struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcHealthDiscovered reveals an NPC's health.
type NpcHealthDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcNameDiscovered reveals an NPC's name.
type NpcNameDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcPackedItemsDiscovered reveals what an NPC has packed away.
type NpcPackedItemsDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcHiddenItemsDiscovered reveals what an NPC has hidden on them.
type NpcHiddenItemsDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcHit deals Damage to an NPC before the NPC's defense is subtracted.
type NpcHit struct {
	NpcID      uuid.UUID `json:"npc_id"`
	AttackerID uuid.UUID `json:"attacker_id"`
	Damage     int       `json:"damage"`
}

// NpcHealed restores an NPC's health.
type NpcHealed struct {
	NpcID        uuid.UUID `json:"npc_id"`
	DamageHealed int       `json:"damage_healed"`
}

// NpcKilled kills an NPC.
type NpcKilled struct {
	NpcID    uuid.UUID `json:"npc_id"`
	KillerID uuid.UUID `json:"killer_id"`
}

// FixtureViewed records that the player looked at a fixture.
type FixtureViewed struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

// FixtureHiddenCompartmentDiscovered reveals a fixture's hidden compartment.
type FixtureHiddenCompartmentDiscovered struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

// ItemTakenFromFixture moves an item from a fixture into the player's pack.
type ItemTakenFromFixture struct {
	FixtureID uuid.UUID `json:"fixture_id"`
	ItemID    uuid.UUID `json:"item_id"`
}

// ItemTakenFromNpc moves an item from a dead NPC into the player's pack.
type ItemTakenFromNpc struct {
	NpcID  uuid.UUID `json:"npc_id"`
	ItemID uuid.UUID `json:"item_id"`
}

// PlayerItemMoved moves one of the player's items to a new location.
type PlayerItemMoved struct {
	ItemID        uuid.UUID         `json:"item_id"`
	Location      types.LocationTag `json:"location"`
	PutAtTheReady bool              `json:"put_at_the_ready,omitempty"`
}

// PlayerHit deals Damage to the player before defense is subtracted.
type PlayerHit struct {
	AttackerID uuid.UUID `json:"attacker_id"`
	Damage     int       `json:"damage"`
}

// PlayerHealed restores the player's health.
type PlayerHealed struct {
	DamageHealed int `json:"damage_healed"`
}

// PlayerKilled kills the player.
type PlayerKilled struct {
	KillerID uuid.UUID `json:"killer_id"`
}

// PlayerResurrected consumes the resurrection aura and restores full health.
type PlayerResurrected struct{}

// PlayerGainsResurrectionAura grants the resurrection aura.
type PlayerGainsResurrectionAura struct{}

// PlayerGainsRetributionAura grants an aura that strikes back at attackers.
type PlayerGainsRetributionAura struct {
	Attack types.Attack `json:"attack"`
}

// PlayerGainsShieldAura grants an aura that adds to the player's defense.
type PlayerGainsShieldAura struct {
	Defense types.Defense `json:"defense"`
}

// PlayerRetributionAuraDissipated removes the retribution aura.
type PlayerRetributionAuraDissipated struct{}

// PlayerSpellUsed spends one use of a learned spell.
type PlayerSpellUsed struct {
	SpellID uuid.UUID `json:"spell_id"`
}

// PlayerSpellForgotten removes a learned spell.
type PlayerSpellForgotten struct {
	SpellID uuid.UUID `json:"spell_id"`
}

func (RoomGenerated) Type() Type                      { return TypeRoomGenerated }
func (RoomExited) Type() Type                         { return TypeRoomExited }
func (RoomViewed) Type() Type                         { return TypeRoomViewed }
func (NpcViewed) Type() Type                          { return TypeNpcViewed }
func (NpcHealthDiscovered) Type() Type                { return TypeNpcHealthDiscovered }
func (NpcNameDiscovered) Type() Type                  { return TypeNpcNameDiscovered }
func (NpcPackedItemsDiscovered) Type() Type           { return TypeNpcPackedItemsDiscovered }
func (NpcHiddenItemsDiscovered) Type() Type           { return TypeNpcHiddenItemsDiscovered }
func (NpcHit) Type() Type                             { return TypeNpcHit }
func (NpcHealed) Type() Type                          { return TypeNpcHealed }
func (NpcKilled) Type() Type                          { return TypeNpcKilled }
func (FixtureViewed) Type() Type                      { return TypeFixtureViewed }
func (FixtureHiddenCompartmentDiscovered) Type() Type { return TypeFixtureHiddenCompartmentDiscovered }
func (ItemTakenFromFixture) Type() Type               { return TypeItemTakenFromFixture }
func (ItemTakenFromNpc) Type() Type                   { return TypeItemTakenFromNpc }
func (PlayerItemMoved) Type() Type                    { return TypePlayerItemMoved }
func (PlayerHit) Type() Type                          { return TypePlayerHit }
func (PlayerHealed) Type() Type                       { return TypePlayerHealed }
func (PlayerKilled) Type() Type                       { return TypePlayerKilled }
func (PlayerResurrected) Type() Type                  { return TypePlayerResurrected }
func (PlayerGainsResurrectionAura) Type() Type        { return TypePlayerGainsResurrectionAura }
func (PlayerGainsRetributionAura) Type() Type         { return TypePlayerGainsRetributionAura }
func (PlayerGainsShieldAura) Type() Type              { return TypePlayerGainsShieldAura }
func (PlayerRetributionAuraDissipated) Type() Type    { return TypePlayerRetributionAuraDissipated }
func (PlayerSpellUsed) Type() Type                    { return TypePlayerSpellUsed }
func (PlayerSpellForgotten) Type() Type               { return TypePlayerSpellForgotten }

func (RoomGenerated) sealed()                      {}
func (RoomExited) sealed()                         {}
func (RoomViewed) sealed()                         {}
func (NpcViewed) sealed()                          {}
func (NpcHealthDiscovered) sealed()                {}
func (NpcNameDiscovered) sealed()                  {}
func (NpcPackedItemsDiscovered) sealed()           {}
func (NpcHiddenItemsDiscovered) sealed()           {}
func (NpcHit) sealed()                             {}
func (NpcHealed) sealed()                          {}
func (NpcKilled) sealed()                          {}
func (FixtureViewed) sealed()                      {}
func (FixtureHiddenCompartmentDiscovered) sealed() {}
func (ItemTakenFromFixture) sealed()               {}
func (ItemTakenFromNpc) sealed()                   {}
func (PlayerItemMoved) sealed()                    {}
func (PlayerHit) sealed()                          {}
func (PlayerHealed) sealed()                       {}
func (PlayerKilled) sealed()                       {}
func (PlayerResurrected) sealed()                  {}
func (PlayerGainsResurrectionAura) sealed()        {}
func (PlayerGainsRetributionAura) sealed()         {}
func (PlayerGainsShieldAura) sealed()              {}
func (PlayerRetributionAuraDissipated) sealed()    {}
func (PlayerSpellUsed) sealed()                    {}
func (PlayerSpellForgotten) sealed()               {}
