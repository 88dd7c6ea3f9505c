package resolve

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/view"
	"github.com/nathoo/underworld/types"
)

var (
	goblinID  = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	snaggleID = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	orcID     = uuid.MustParse("00000000-0000-0000-0000-0000000000a3")
	chestID   = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	swordID   = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	crownID   = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	doorID    = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")
	stairsID  = uuid.MustParse("00000000-0000-0000-0000-0000000000d2")
)

func npc(id uuid.UUID, name string, species types.Species, hp int) types.NonPlayer {
	return types.NonPlayer{
		Identifier: types.Identifier{ID: id, Name: name},
		Character: types.Character{
			Species: species,
			Stats:   types.Stats{Health: types.Health{Current: hp, Max: 10}},
		},
	}
}

func testRoom() types.Room {
	return types.Room{
		Identifier: types.Identifier{ID: uuid.New()},
		RoomType:   types.RoomGuardRoom,
		FixturePositions: []types.FixturePosition{{
			Fixtures: []types.Fixture{{
				Identifier:           types.Identifier{ID: chestID},
				FixtureType:          types.FixtureChest,
				Material:             types.MaterialWood,
				Size:                 types.SizeSmall,
				HasHiddenCompartment: true,
				Items: []types.FixtureItem{
					{Item: types.Item{Identifier: types.Identifier{ID: swordID}, ItemType: types.ItemLongSword, Material: types.MaterialIron}},
					{Item: types.Item{Identifier: types.Identifier{ID: crownID}, ItemType: types.ItemCrown, Material: types.MaterialGold}, IsInHiddenCompartment: true},
				},
			}},
		}},
		NpcPositions: []types.NpcPosition{{
			NPCs: []types.NonPlayer{
				npc(goblinID, "Grub", types.SpeciesGoblin, 10),
				npc(snaggleID, "Snaggle", types.SpeciesGoblin, 10),
				npc(orcID, "Urk", types.SpeciesOrc, 0),
			},
		}},
		Exits: []types.Exit{
			{Identifier: types.Identifier{ID: doorID}, ExitType: types.ExitDoor, Material: types.MaterialWood},
			{Identifier: types.Identifier{ID: stairsID}, ExitType: types.ExitStaircase, Material: types.MaterialStone},
		},
	}
}

func testKnowledge() view.Knowledge {
	return view.Knowledge{Npcs: map[uuid.UUID]types.NpcKnowledge{
		goblinID:  {KnowsSpecies: true},
		snaggleID: {KnowsSpecies: true, KnowsName: true},
	}}
}

func TestPick(t *testing.T) {
	room := testRoom()
	npcs := Npcs(&room, testKnowledge(), false)

	tests := []struct {
		name string
		want uuid.UUID
	}{
		{"snaggle", snaggleID},
		{"SNAGGLE", snaggleID},
		{"goblin 1", goblinID},
		{"goblin 2", snaggleID},
		{"figure 3", orcID},
		{"corpse", orcID},
		{"dead figure", orcID},
		{orcID.String(), orcID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pick(tt.name, npcs)
			if err != nil {
				t.Fatalf("Pick(%q): %v", tt.name, err)
			}
			if got.ID != tt.want.String() {
				t.Errorf("Pick(%q) = %s (%s), want %s", tt.name, got.ID, got.Label, tt.want)
			}
		})
	}
}

func TestPick_UnknownNamesAreNotMatched(t *testing.T) {
	room := testRoom()
	npcs := Npcs(&room, testKnowledge(), false)

	// The first goblin's name has not been learned, and the corpse's species
	// is unknown.
	for _, name := range []string{"grub", "urk", "orc"} {
		_, err := Pick(name, npcs)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Pick(%q) err = %v, want NotFoundError", name, err)
		}
	}

	all := Npcs(&room, testKnowledge(), true)
	if got, err := Pick("urk", all); err != nil || got.ID != orcID.String() {
		t.Errorf("knows all: Pick(urk) = %v, %v", got.ID, err)
	}
}

func TestPick_Ambiguity(t *testing.T) {
	room := testRoom()
	_, err := Pick("goblin", Npcs(&room, testKnowledge(), false))

	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguityError, got %T: %v", err, err)
	}
	if len(amb.Candidates) != 2 {
		t.Errorf("candidates = %v, want 2", amb.Candidates)
	}
	if amb.Candidates[1] != "Snaggle, a goblin" {
		t.Errorf("second candidate = %q", amb.Candidates[1])
	}
}

func TestPick_OrdinalOutOfRange(t *testing.T) {
	room := testRoom()
	_, err := Pick("goblin 3", Npcs(&room, testKnowledge(), false))
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Name != "goblin 3" {
		t.Errorf("Name = %q", nf.Name)
	}
}

func TestPick_Empty(t *testing.T) {
	room := testRoom()
	if _, err := Pick("", Npcs(&room, testKnowledge(), false)); err == nil {
		t.Error("an empty name should match nothing")
	}
}

func TestFixturesAndExits(t *testing.T) {
	room := testRoom()
	fixtures := Fixtures(&room, view.Knowledge{}, false)
	exits := Exits(&room)

	tests := []struct {
		name  string
		cands []Candidate
		want  uuid.UUID
	}{
		{"chest", fixtures, chestID},
		{"wood chest", fixtures, chestID},
		{"small chest", fixtures, chestID},
		{"door", exits, doorID},
		{"wood door", exits, doorID},
		{"stairs", exits, stairsID},
		{"staircase", exits, stairsID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pick(tt.name, tt.cands)
			if err != nil {
				t.Fatalf("Pick(%q): %v", tt.name, err)
			}
			if got.ID != tt.want.String() {
				t.Errorf("Pick(%q) = %s, want %s", tt.name, got.Label, tt.want)
			}
		})
	}
}

func TestFixtureItems_HiddenCompartment(t *testing.T) {
	room := testRoom()
	chest := &room.FixturePositions[0].Fixtures[0]

	items := FixtureItems(chest, types.FixtureKnowledge{}, false)
	if len(items) != 1 || items[0].ID != swordID.String() {
		t.Fatalf("items = %+v, want just the sword", items)
	}
	if _, err := Pick("crown", items); err == nil {
		t.Error("the crown should stay out of reach until the compartment is found")
	}

	items = FixtureItems(chest, types.FixtureKnowledge{KnowsHiddenCompartment: true}, false)
	got, err := Pick("gold crown", items)
	if err != nil || got.ID != crownID.String() {
		t.Errorf("Pick(gold crown) = %v, %v", got.ID, err)
	}
	if got.Label != "a gold crown" {
		t.Errorf("Label = %q", got.Label)
	}
}

func TestItemsAndSpells(t *testing.T) {
	equipment := []types.CharacterItem{
		{Item: types.Item{Identifier: types.Identifier{ID: swordID}, ItemType: types.ItemLongSword, Material: types.MaterialIron}},
	}
	if got, err := Pick("long sword", Items(equipment)); err != nil || got.ID != swordID.String() {
		t.Errorf("Pick(long sword) = %v, %v", got.ID, err)
	}
	if got, err := Pick("iron sword", Items(equipment)); err != nil || got.ID != swordID.String() {
		t.Errorf("Pick(iron sword) = %v, %v", got.ID, err)
	}

	healID := uuid.New()
	memory := types.SpellMemory{Spells: []types.LearnedSpell{
		{ID: healID, Spell: types.Spell{Name: types.SpellQuickHeal}},
		{ID: uuid.New(), Spell: types.Spell{Name: types.SpellRagingFireball}},
	}}
	for _, name := range []string{"quick heal", "heal", "quick_heal"} {
		got, err := Pick(name, Spells(memory))
		if err != nil || got.ID != healID.String() {
			t.Errorf("Pick(%q) = %v, %v", name, got.ID, err)
		}
	}
}
