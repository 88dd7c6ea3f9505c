// Package types defines the shared data structures for the underworld engine.
// This package contains only type definitions — no logic, no methods.
package types

import "github.com/google/uuid"

// Identifier names a generated entity. The ID is assigned at generation time
// and never changes afterwards.
type Identifier struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// Health tracks current and maximum hit points.
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Stats holds a character's numeric attributes.
type Stats struct {
	Health Health `json:"health"`
	Height Size   `json:"height,omitempty"`
}

// Attack is a dice profile: NumRolls d6 plus Modifier.
type Attack struct {
	NumRolls int            `json:"num_rolls"`
	Modifier int            `json:"modifier"`
	Effects  []AttackEffect `json:"effects,omitempty"`
}

// Defense is a flat damage reduction.
type Defense struct {
	DamageResistance int `json:"damage_resistance"`
}

// Item is a generated weapon or wearable. Items are immutable once generated.
type Item struct {
	Identifier  Identifier         `json:"identifier"`
	ItemType    ItemType           `json:"item_type"`
	Tags        []ObjectTag        `json:"tags,omitempty"`
	Descriptors []ObjectDescriptor `json:"descriptors,omitempty"`
	Material    Material           `json:"material,omitempty"`
	Attack      *Attack            `json:"attack,omitempty"`
	Defense     *Defense           `json:"defense,omitempty"`
}

// CharacterItem is an item carried by a character together with where it is.
type CharacterItem struct {
	Item         Item          `json:"item"`
	LocationTags []LocationTag `json:"location_tags"`
	IsMultiple   bool          `json:"is_multiple,omitempty"`
	AtTheReady   bool          `json:"at_the_ready,omitempty"`
}

// Inventory is the ordered list of items a character carries.
type Inventory struct {
	Equipment []CharacterItem `json:"equipment,omitempty"`
}

// Spell is a castable effect.
type Spell struct {
	Name    SpellName `json:"name"`
	Damage  int       `json:"damage"`
	Uses    int       `json:"uses"`
	Attack  *Attack   `json:"attack,omitempty"`
	Defense *Defense  `json:"defense,omitempty"`
}

// LearnedSpell is a spell held in a character's memory.
type LearnedSpell struct {
	ID    uuid.UUID `json:"id"`
	Spell Spell     `json:"spell"`
}

// SpellMemory holds the spells a character has learned.
type SpellMemory struct {
	Spells []LearnedSpell `json:"spells,omitempty"`
}

// Effects are the auras currently active on a character.
type Effects struct {
	ShieldAura       *Defense `json:"shield_aura,omitempty"`
	RetributionAura  *Attack  `json:"retribution_aura,omitempty"`
	ResurrectionAura bool     `json:"resurrection_aura,omitempty"`
}

// Character is the shared body of NPCs and the player.
type Character struct {
	Stats          Stats        `json:"stats"`
	Species        Species      `json:"species"`
	LifeModifier   LifeModifier `json:"life_modifier,omitempty"`
	Inventory      Inventory    `json:"inventory"`
	CurrentEffects Effects      `json:"current_effects"`
	SpellMemory    SpellMemory  `json:"spell_memory"`
}

// NonPlayer is an NPC. NPCs are owned by the room they stand in.
type NonPlayer struct {
	Identifier Identifier `json:"identifier"`
	Character  Character  `json:"character"`
}

// PlayerCharacter is the player's character. It is owned by the game session.
type PlayerCharacter struct {
	Identifier Identifier `json:"identifier"`
	Character  Character  `json:"character"`
	KnowsAll   bool       `json:"knows_all,omitempty"` // debug: bypass view redaction
}

// FixtureItem is an item stored inside a fixture.
type FixtureItem struct {
	Item                  Item `json:"item"`
	IsInHiddenCompartment bool `json:"is_in_hidden_compartment,omitempty"`
}

// Fixture is a piece of room furniture that may hold items.
type Fixture struct {
	Identifier           Identifier         `json:"identifier"`
	FixtureType          FixtureType        `json:"fixture_type"`
	Material             Material           `json:"material,omitempty"`
	Size                 Size               `json:"size"`
	Descriptors          []ObjectDescriptor `json:"descriptors,omitempty"`
	Items                []FixtureItem      `json:"items,omitempty"`
	HasHiddenCompartment bool               `json:"has_hidden_compartment,omitempty"`
}

// FixturePosition groups fixtures that are described together.
type FixturePosition struct {
	GroupDescriptor     GroupDescriptor             `json:"group_descriptor,omitempty"`
	Fixtures            []Fixture                   `json:"fixtures"`
	PositionDescriptors []FixturePositionDescriptor `json:"position_descriptors,omitempty"`
}

// NpcPosition groups NPCs that are described together.
type NpcPosition struct {
	GroupDescriptor    GroupDescriptor       `json:"group_descriptor,omitempty"`
	NPCs               []NonPlayer           `json:"npcs"`
	PositionDescriptor NpcPositionDescriptor `json:"position_descriptor,omitempty"`
}

// Dimensions of a room in feet.
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Exit is a passage out of a room.
type Exit struct {
	Identifier Identifier `json:"identifier"`
	ExitType   ExitType   `json:"exit_type"`
	Material   Material   `json:"material,omitempty"`
}

// Room is a node of the world graph.
type Room struct {
	Identifier       Identifier        `json:"identifier"`
	RoomType         RoomType          `json:"room_type"`
	Descriptors      []RoomDescriptor  `json:"descriptors,omitempty"`
	Dimensions       Dimensions        `json:"dimensions"`
	FixturePositions []FixturePosition `json:"fixture_positions,omitempty"`
	NpcPositions     []NpcPosition     `json:"npc_positions,omitempty"`
	Exits            []Exit            `json:"exits,omitempty"`
	Flavour          string            `json:"flavour,omitempty"`
}

// ExitMap is one edge of the world graph. RightRoomID stays invalid until the
// exit is traversed for the first time.
type ExitMap struct {
	ExitID      uuid.UUID     `json:"exit_id"`
	LeftRoomID  uuid.UUID     `json:"left_room_id"`
	RightRoomID uuid.NullUUID `json:"right_room_id"`
}

// World is the room/exit graph.
type World struct {
	Rooms     []Room    `json:"rooms"`
	ExitGraph []ExitMap `json:"exit_graph"`
}

// NpcKnowledge records what the player has learned about one NPC.
type NpcKnowledge struct {
	KnowsName              bool `json:"knows_name,omitempty"`
	KnowsHealth            bool `json:"knows_health,omitempty"`
	KnowsSpecies           bool `json:"knows_species,omitempty"`
	KnowsLifeModifier      bool `json:"knows_life_modifier,omitempty"`
	KnowsInventory         bool `json:"knows_inventory,omitempty"`
	KnowsHiddenInInventory bool `json:"knows_hidden_in_inventory,omitempty"`
	KnowsPackedInInventory bool `json:"knows_packed_in_inventory,omitempty"`
}

// FixtureKnowledge records what the player has learned about one fixture.
type FixtureKnowledge struct {
	KnowsItems             bool `json:"knows_items,omitempty"`
	KnowsHiddenCompartment bool `json:"knows_hidden_compartment,omitempty"`
}

// GameState is the authoritative state of one game session.
type GameState struct {
	Identifier       Identifier                     `json:"identifier"`
	CurrentRoomID    uuid.UUID                      `json:"current_room_id"`
	World            World                          `json:"world"`
	NpcKnowledge     map[uuid.UUID]NpcKnowledge     `json:"npc_knowledge,omitempty"`
	FixtureKnowledge map[uuid.UUID]FixtureKnowledge `json:"fixture_knowledge,omitempty"`
	RoomsVisited     []uuid.UUID                    `json:"rooms_visited,omitempty"`
}
