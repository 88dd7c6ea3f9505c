// Package actions defines the player intents the engine resolves. Entity
// references are carried as wire-format id strings and parsed by the
// handler that consumes them.
package actions

// Kind names an action variant.
type Kind string

const (
	KindAttackNpc         Kind = "attack_npc"
	KindCastSpellOnNpc    Kind = "cast_spell_on_npc"
	KindCastSpellOnPlayer Kind = "cast_spell_on_player"
	KindInspectNpc        Kind = "inspect_npc"
	KindInspectFixture    Kind = "inspect_fixture"
	KindLookAtCurrentRoom Kind = "look_at_current_room"
	KindQuickLookRoom     Kind = "quick_look_room"
	KindLookAtNpc         Kind = "look_at_npc"
	KindLookAtFixture     Kind = "look_at_fixture"
	KindLootFixture       Kind = "loot_fixture"
	KindLootNpc           Kind = "loot_npc"
	KindMovePlayerItem    Kind = "move_player_item"
	KindExitRoom          Kind = "exit_room"
)

// Action is a player intent. The set of variants is closed.
type Action interface {
	Kind() Kind
	sealed()
}

// AttackNpc attacks an NPC in the current room with every readied weapon.
type AttackNpc struct {
	TargetID string `json:"target_id"`
}

// CastSpellOnNpc casts a learned spell at an NPC in the current room.
type CastSpellOnNpc struct {
	SpellID  string `json:"spell_id"`
	TargetID string `json:"target_id"`
}

// CastSpellOnPlayer casts a learned spell on the caster.
type CastSpellOnPlayer struct {
	SpellID string `json:"spell_id"`
}

// InspectNpc tries to learn the selected facts about an NPC.
type InspectNpc struct {
	TargetID            string `json:"target_id"`
	DiscoverHealth      bool   `json:"discover_health,omitempty"`
	DiscoverName        bool   `json:"discover_name,omitempty"`
	DiscoverPackedItems bool   `json:"discover_packed_items,omitempty"`
	DiscoverHiddenItems bool   `json:"discover_hidden_items,omitempty"`
}

// InspectFixture tries to find a fixture's hidden compartment.
type InspectFixture struct {
	TargetID                  string `json:"target_id"`
	DiscoverHiddenCompartment bool   `json:"discover_hidden_compartment,omitempty"`
}

// LookAtCurrentRoom takes in the whole room, noting everyone in it.
type LookAtCurrentRoom struct{}

// QuickLookRoom glances at the room without noting anything.
type QuickLookRoom struct{}

// LookAtNpc looks an NPC over.
type LookAtNpc struct {
	TargetID string `json:"target_id"`
}

// LookAtFixture looks into a fixture.
type LookAtFixture struct {
	TargetID string `json:"target_id"`
}

// LootFixture takes the listed items out of a fixture.
type LootFixture struct {
	FixtureID string   `json:"fixture_id"`
	ItemIDs   []string `json:"item_ids"`
}

// LootNpc takes the listed items from a dead NPC.
type LootNpc struct {
	NpcID   string   `json:"npc_id"`
	ItemIDs []string `json:"item_ids"`
}

// MovePlayerItem moves a carried item to a new location.
type MovePlayerItem struct {
	ItemID        string `json:"item_id"`
	LocationTag   string `json:"location_tag"`
	PutAtTheReady bool   `json:"put_at_the_ready,omitempty"`
}

// ExitRoom leaves the current room through an exit.
type ExitRoom struct {
	ExitID string `json:"exit_id"`
}

func (AttackNpc) Kind() Kind         { return KindAttackNpc }
func (CastSpellOnNpc) Kind() Kind    { return KindCastSpellOnNpc }
func (CastSpellOnPlayer) Kind() Kind { return KindCastSpellOnPlayer }
func (InspectNpc) Kind() Kind        { return KindInspectNpc }
func (InspectFixture) Kind() Kind    { return KindInspectFixture }
func (LookAtCurrentRoom) Kind() Kind { return KindLookAtCurrentRoom }
func (QuickLookRoom) Kind() Kind     { return KindQuickLookRoom }
func (LookAtNpc) Kind() Kind         { return KindLookAtNpc }
func (LookAtFixture) Kind() Kind     { return KindLookAtFixture }
func (LootFixture) Kind() Kind       { return KindLootFixture }
func (LootNpc) Kind() Kind           { return KindLootNpc }
func (MovePlayerItem) Kind() Kind    { return KindMovePlayerItem }
func (ExitRoom) Kind() Kind          { return KindExitRoom }

func (AttackNpc) sealed()         {}
func (CastSpellOnNpc) sealed()    {}
func (CastSpellOnPlayer) sealed() {}
func (InspectNpc) sealed()        {}
func (InspectFixture) sealed()    {}
func (LookAtCurrentRoom) sealed() {}
func (QuickLookRoom) sealed()     {}
func (LookAtNpc) sealed()         {}
func (LookAtFixture) sealed()     {}
func (LootFixture) sealed()       {}
func (LootNpc) sealed()           {}
func (MovePlayerItem) sealed()    {}
func (ExitRoom) sealed()          {}
