package state

import (
	"testing"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/types"
)

var (
	hallID   = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	cellarID = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	doorID   = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	stairsID = uuid.MustParse("00000000-0000-4000-8000-000000000004")
	goblinID = uuid.MustParse("00000000-0000-4000-8000-000000000005")
	chestID  = uuid.MustParse("00000000-0000-4000-8000-000000000006")
	swordID  = uuid.MustParse("00000000-0000-4000-8000-000000000007")
	spellID  = uuid.MustParse("00000000-0000-4000-8000-000000000008")
)

func testRoom() types.Room {
	return types.Room{
		Identifier: types.Identifier{ID: hallID},
		RoomType:   types.RoomGuardRoom,
		FixturePositions: []types.FixturePosition{{
			GroupDescriptor: types.GroupA,
			Fixtures: []types.Fixture{{
				Identifier:  types.Identifier{ID: chestID},
				FixtureType: types.FixtureChest,
				Items: []types.FixtureItem{{
					Item: types.Item{Identifier: types.Identifier{ID: swordID}, ItemType: types.ItemLongSword},
				}},
			}},
		}},
		NpcPositions: []types.NpcPosition{{
			GroupDescriptor: types.GroupA,
			NPCs: []types.NonPlayer{{
				Identifier: types.Identifier{ID: goblinID},
				Character: types.Character{
					Species: types.SpeciesGoblin,
					Stats:   types.Stats{Health: types.Health{Current: 8, Max: 8}},
				},
			}},
		}},
		Exits: []types.Exit{
			{Identifier: types.Identifier{ID: doorID}, ExitType: types.ExitDoor},
		},
	}
}

func TestNewGameState(t *testing.T) {
	s := NewGameState(types.Identifier{ID: uuid.New()}, testRoom())

	if s.CurrentRoomID != hallID {
		t.Errorf("current room = %s, want %s", s.CurrentRoomID, hallID)
	}
	if len(s.World.ExitGraph) != 1 || s.World.ExitGraph[0].ExitID != doorID || s.World.ExitGraph[0].RightRoomID.Valid {
		t.Errorf("expected one dangling exit, got %+v", s.World.ExitGraph)
	}
	if _, ok := s.NpcKnowledge[goblinID]; !ok {
		t.Error("expected knowledge record for goblin")
	}
	if k := NpcKnowledge(&s, goblinID); k != (types.NpcKnowledge{}) {
		t.Errorf("expected all-false knowledge, got %+v", k)
	}
	if _, ok := s.FixtureKnowledge[chestID]; !ok {
		t.Error("expected knowledge record for chest")
	}
	if len(s.RoomsVisited) != 1 || s.RoomsVisited[0] != hallID {
		t.Errorf("rooms visited = %v", s.RoomsVisited)
	}
}

func TestFindNpcAndFixture(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	room := CurrentRoom(&s)

	npc, ok := FindNpc(room, goblinID)
	if !ok || npc.Character.Species != types.SpeciesGoblin {
		t.Fatalf("FindNpc = %v, %v", npc, ok)
	}
	npc.Character.Stats.Health.Current = 1
	if again, _ := FindNpc(room, goblinID); again.Character.Stats.Health.Current != 1 {
		t.Error("FindNpc should return a pointer into the room")
	}

	if _, ok := FindNpc(room, uuid.New()); ok {
		t.Error("found a missing npc")
	}
	if _, ok := FindFixture(room, chestID); !ok {
		t.Error("chest not found")
	}
	if _, ok := FindFixture(room, goblinID); ok {
		t.Error("found an npc as a fixture")
	}
}

func TestRemoveFixtureItem(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	chest, _ := FindFixture(CurrentRoom(&s), chestID)

	it, ok := RemoveFixtureItem(chest, swordID)
	if !ok || it.Item.Identifier.ID != swordID {
		t.Fatalf("RemoveFixtureItem = %v, %v", it, ok)
	}
	if len(chest.Items) != 0 {
		t.Errorf("chest still holds %d items", len(chest.Items))
	}
	if _, ok := RemoveFixtureItem(chest, swordID); ok {
		t.Error("removed the same item twice")
	}
}

func TestAddRoom_ResolvesEntrance(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	cellar := types.Room{
		Identifier: types.Identifier{ID: cellarID},
		Exits: []types.Exit{
			{Identifier: types.Identifier{ID: doorID}},
			{Identifier: types.Identifier{ID: stairsID}},
		},
	}

	AddRoom(&s, cellar, doorID)

	m, ok := ExitMapFor(&s, doorID)
	if !ok || !m.RightRoomID.Valid || m.RightRoomID.UUID != cellarID {
		t.Fatalf("door exit map = %+v", m)
	}
	if got := OtherRoomID(*m, hallID); !got.Valid || got.UUID != cellarID {
		t.Errorf("other side from hall = %v", got)
	}
	if got := OtherRoomID(*m, cellarID); !got.Valid || got.UUID != hallID {
		t.Errorf("other side from cellar = %v", got)
	}
	stairs, ok := ExitMapFor(&s, stairsID)
	if !ok || stairs.LeftRoomID != cellarID || stairs.RightRoomID.Valid {
		t.Errorf("stairs should dangle from the cellar: %+v", stairs)
	}
	if len(s.World.ExitGraph) != 2 {
		t.Errorf("expected 2 exit maps, got %d", len(s.World.ExitGraph))
	}
}

func TestAddRoom_TwicePanics(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	AddRoom(&s, types.Room{Identifier: types.Identifier{ID: cellarID}}, doorID)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when resolving an exit twice")
		}
	}()
	AddRoom(&s, types.Room{Identifier: types.Identifier{ID: uuid.New()}}, doorID)
}

func TestOtherRoomID_Dangling(t *testing.T) {
	m := types.ExitMap{ExitID: doorID, LeftRoomID: hallID}
	if OtherRoomID(m, hallID).Valid {
		t.Error("dangling exit should have no far side")
	}
}

func TestEnterRoom_KeepsKnowledge(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	UpdateNpcKnowledge(&s, goblinID, func(k *types.NpcKnowledge) { k.KnowsName = true })

	EnterRoom(&s, hallID)

	if !NpcKnowledge(&s, goblinID).KnowsName {
		t.Error("re-entering a room downgraded knowledge")
	}
	if len(s.RoomsVisited) != 1 {
		t.Errorf("rooms visited = %v", s.RoomsVisited)
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewGameState(types.Identifier{}, testRoom())
	c := Clone(s)

	npc, _ := FindNpc(CurrentRoom(&c), goblinID)
	Damage(&npc.Character, 5)
	UpdateNpcKnowledge(&c, goblinID, func(k *types.NpcKnowledge) { k.KnowsHealth = true })
	chest, _ := FindFixture(CurrentRoom(&c), chestID)
	RemoveFixtureItem(chest, swordID)

	orig, _ := FindNpc(CurrentRoom(&s), goblinID)
	if orig.Character.Stats.Health.Current != 8 {
		t.Error("clone shares npc health with the original")
	}
	if NpcKnowledge(&s, goblinID).KnowsHealth {
		t.Error("clone shares knowledge with the original")
	}
	origChest, _ := FindFixture(CurrentRoom(&s), chestID)
	if len(origChest.Items) != 1 {
		t.Error("clone shares fixture items with the original")
	}
}

func testCharacter() types.Character {
	return types.Character{
		Stats: types.Stats{Health: types.Health{Current: 50, Max: 80}},
		Inventory: types.Inventory{Equipment: []types.CharacterItem{
			{
				Item: types.Item{
					Identifier: types.Identifier{ID: swordID},
					ItemType:   types.ItemMace,
					Attack:     &types.Attack{NumRolls: 2, Modifier: 1, Effects: []types.AttackEffect{types.AttackEffectCrushing}},
				},
				LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationHand},
				AtTheReady:   true,
			},
			{
				Item: types.Item{
					Identifier: types.Identifier{ID: uuid.New()},
					ItemType:   types.ItemBreastplate,
					Defense:    &types.Defense{DamageResistance: 4},
				},
				LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationBody},
			},
			{
				Item: types.Item{
					Identifier: types.Identifier{ID: uuid.New()},
					ItemType:   types.ItemPlateHelmet,
					Defense:    &types.Defense{DamageResistance: 2},
				},
				LocationTags: []types.LocationTag{types.LocationPacked},
			},
		}},
		SpellMemory: types.SpellMemory{Spells: []types.LearnedSpell{
			{ID: spellID, Spell: types.Spell{Name: types.SpellHeal, Damage: 10, Uses: 1}},
		}},
	}
}

func TestDamageAndHeal_Clamped(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *types.Character)
		want int
	}{
		{"heal", func(c *types.Character) { Heal(c, 10) }, 60},
		{"overheal", func(c *types.Character) { Heal(c, 100) }, 80},
		{"damage", func(c *types.Character) { Damage(c, 20) }, 30},
		{"overkill", func(c *types.Character) { Damage(c, 500) }, 0},
		{"negative damage ignored", func(c *types.Character) { Damage(c, -5) }, 50},
		{"negative heal ignored", func(c *types.Character) { Heal(c, -5) }, 50},
		{"heal to max", HealToMax, 80},
		{"kill", Kill, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCharacter()
			tt.fn(&c)
			if got := c.Stats.Health.Current; got != tt.want {
				t.Errorf("health = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsDead(t *testing.T) {
	c := testCharacter()
	if IsDead(&c) {
		t.Error("healthy character reported dead")
	}
	Kill(&c)
	if !IsDead(&c) {
		t.Error("killed character reported alive")
	}
}

func TestRollAttack_Crushing(t *testing.T) {
	attack := types.Attack{NumRolls: 2, Modifier: 1, Effects: []types.AttackEffect{types.AttackEffectCrushing}}

	for seed := int64(0); seed < 50; seed++ {
		plain := rng.NewRNG(seed).RollD6(2, 1)
		got := RollAttack(attack, rng.NewRNG(seed))
		if want := plain + plain/2; got != want {
			t.Fatalf("seed %d: crushing roll = %d, want %d", seed, got, want)
		}
	}
}

func TestAttackRoll_SumsReadiedWeapons(t *testing.T) {
	c := testCharacter()
	c.Inventory.Equipment = append(c.Inventory.Equipment, types.CharacterItem{
		Item: types.Item{
			Identifier: types.Identifier{ID: uuid.New()},
			ItemType:   types.ItemDagger,
			Attack:     &types.Attack{NumRolls: 1},
		},
		LocationTags: []types.LocationTag{types.LocationPacked},
	})

	for seed := int64(0); seed < 50; seed++ {
		r := rng.NewRNG(seed)
		want := RollAttack(*c.Inventory.Equipment[0].Item.Attack, rng.NewRNG(seed))
		if got := AttackRoll(&c, r); got != want {
			t.Fatalf("seed %d: attack = %d, want %d (packed dagger must not count)", seed, got, want)
		}
	}
}

func TestDefense_EquippedOnly(t *testing.T) {
	c := testCharacter()
	if got := Defense(&c); got != 4 {
		t.Errorf("defense = %d, want 4", got)
	}

	p := types.PlayerCharacter{Character: c}
	p.Character.CurrentEffects.ShieldAura = &types.Defense{DamageResistance: 6}
	if got := PlayerDefense(&p); got != 10 {
		t.Errorf("player defense with shield = %d, want 10", got)
	}
}

func TestItemsAndSpells(t *testing.T) {
	c := testCharacter()

	if _, ok := FindItem(&c, swordID); !ok {
		t.Fatal("sword not found")
	}
	ci, ok := RemoveItem(&c, swordID)
	if !ok || ci.Item.ItemType != types.ItemMace {
		t.Fatalf("RemoveItem = %v, %v", ci, ok)
	}
	if len(ReadiedWeapons(&c)) != 0 {
		t.Error("removed weapon still readied")
	}
	AddItem(&c, ci)
	AddItem(&c, ci)
	count := 0
	for _, it := range c.Inventory.Equipment {
		if it.Item.Identifier.ID == swordID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("item appears %d times, want 1", count)
	}

	if _, ok := FindSpell(&c, spellID); !ok {
		t.Fatal("spell not found")
	}
	ForgetSpell(&c, spellID)
	if _, ok := FindSpell(&c, spellID); ok {
		t.Error("forgotten spell still found")
	}
}
