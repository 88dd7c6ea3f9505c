package handlers

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

var (
	hallID     = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	doorID     = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	goblinID   = uuid.MustParse("00000000-0000-4000-8000-000000000005")
	chestID    = uuid.MustParse("00000000-0000-4000-8000-000000000006")
	swordID    = uuid.MustParse("00000000-0000-4000-8000-000000000007")
	healID     = uuid.MustParse("00000000-0000-4000-8000-000000000008")
	daggerID   = uuid.MustParse("00000000-0000-4000-8000-000000000009")
	plateID    = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	gemID      = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	maceID     = uuid.MustParse("00000000-0000-4000-8000-00000000000c")
	blastID    = uuid.MustParse("00000000-0000-4000-8000-00000000000d")
	shieldID   = uuid.MustParse("00000000-0000-4000-8000-00000000000e")
	vengeID    = uuid.MustParse("00000000-0000-4000-8000-00000000000f")
	phoenixID  = uuid.MustParse("00000000-0000-4000-8000-000000000010")
	playerID   = uuid.MustParse("00000000-0000-4000-8000-0000000000ff")
	bootsID    = uuid.MustParse("00000000-0000-4000-8000-0000000000fe")
	plateBoots = uuid.MustParse("00000000-0000-4000-8000-0000000000fd")
)

func testSetup() (types.GameState, types.PlayerCharacter) {
	hall := types.Room{
		Identifier: types.Identifier{ID: hallID},
		RoomType:   types.RoomGuardRoom,
		FixturePositions: []types.FixturePosition{{
			GroupDescriptor: types.GroupA,
			Fixtures: []types.Fixture{{
				Identifier:           types.Identifier{ID: chestID},
				FixtureType:          types.FixtureChest,
				HasHiddenCompartment: true,
				Items: []types.FixtureItem{
					{Item: types.Item{Identifier: types.Identifier{ID: maceID}, ItemType: types.ItemMace}},
					{Item: types.Item{Identifier: types.Identifier{ID: gemID}, ItemType: types.ItemCrown}, IsInHiddenCompartment: true},
				},
			}},
		}},
		NpcPositions: []types.NpcPosition{{
			GroupDescriptor: types.GroupA,
			NPCs: []types.NonPlayer{{
				Identifier: types.Identifier{ID: goblinID, Name: "Grub"},
				Character: types.Character{
					Species: types.SpeciesGoblin,
					Stats:   types.Stats{Health: types.Health{Current: 20, Max: 20}},
					Inventory: types.Inventory{Equipment: []types.CharacterItem{{
						Item: types.Item{
							Identifier: types.Identifier{ID: daggerID},
							ItemType:   types.ItemDagger,
							Attack:     &types.Attack{NumRolls: 1, Modifier: 2},
						},
						LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationHand},
						AtTheReady:   true,
					}, {
						Item: types.Item{
							Identifier: types.Identifier{ID: plateID},
							ItemType:   types.ItemBreastplate,
							Defense:    &types.Defense{DamageResistance: 4},
						},
						LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationBody},
					}}},
				},
			}},
		}},
		Exits: []types.Exit{{Identifier: types.Identifier{ID: doorID}, ExitType: types.ExitDoor}},
	}

	p := types.PlayerCharacter{
		Identifier: types.Identifier{ID: playerID, Name: "Rook"},
		Character: types.Character{
			Species: types.SpeciesHuman,
			Stats:   types.Stats{Health: types.Health{Current: 50, Max: 80}},
			Inventory: types.Inventory{Equipment: []types.CharacterItem{{
				Item: types.Item{
					Identifier: types.Identifier{ID: swordID},
					ItemType:   types.ItemLongSword,
					Attack:     &types.Attack{NumRolls: 2, Modifier: 1},
				},
				LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationHand},
				AtTheReady:   true,
			}, {
				Item: types.Item{
					Identifier: types.Identifier{ID: bootsID},
					ItemType:   types.ItemBoots,
					Defense:    &types.Defense{DamageResistance: 1},
				},
				LocationTags: []types.LocationTag{types.LocationEquipped, types.LocationFeet},
			}, {
				Item: types.Item{
					Identifier: types.Identifier{ID: plateBoots},
					ItemType:   types.ItemPlateBoots,
					Defense:    &types.Defense{DamageResistance: 1},
				},
				LocationTags: []types.LocationTag{types.LocationPacked},
			}}},
			SpellMemory: types.SpellMemory{Spells: []types.LearnedSpell{
				{ID: healID, Spell: types.Spell{Name: types.SpellHeal, Damage: 10, Uses: 2}},
				{ID: blastID, Spell: types.Spell{Name: types.SpellElectricBlast, Damage: 12, Uses: 1}},
				{ID: shieldID, Spell: types.Spell{Name: types.SpellTinyShield, Uses: 2}},
				{ID: vengeID, Spell: types.Spell{Name: types.SpellRetribution, Uses: 2}},
				{ID: phoenixID, Spell: types.Spell{Name: types.SpellPhoenix, Uses: 2}},
			}},
		},
	}
	return state.NewGameState(types.Identifier{ID: uuid.New()}, hall), p
}

func testContext(seed int64) Context {
	return Context{
		RNG: rng.NewRNG(seed),
		Rooms: func(entrance uuid.NullUUID) generate.Generator[types.Room] {
			return generate.RandomRoom(entrance)
		},
	}
}

func setGoblin(s *types.GameState, fn func(c *types.Character)) {
	npc, _ := state.FindNpc(state.CurrentRoom(s), goblinID)
	fn(&npc.Character)
}

func eventTypes(evts []events.Event) []events.Type {
	out := make([]events.Type, len(evts))
	for i, e := range evts {
		out[i] = e.Type()
	}
	return out
}

func sameTypes(got []events.Event, want ...events.Type) bool {
	gt := eventTypes(got)
	if len(gt) != len(want) {
		return false
	}
	for i := range gt {
		if gt[i] != want[i] {
			return false
		}
	}
	return true
}

func TestHandlers_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error)
	}{
		{"attack", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return AttackNpc(actions.AttackNpc{TargetID: "goblin"}, s, p, ctx)
		}},
		{"cast on npc bad spell", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: "x", TargetID: goblinID.String()}, s, p, ctx)
		}},
		{"cast on npc bad target", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: healID.String(), TargetID: "x"}, s, p, ctx)
		}},
		{"cast on player", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnPlayer(actions.CastSpellOnPlayer{SpellID: "123"}, s, p, ctx)
		}},
		{"inspect npc", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return InspectNpc(actions.InspectNpc{TargetID: ""}, s, p, ctx)
		}},
		{"inspect fixture", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return InspectFixture(actions.InspectFixture{TargetID: "chest"}, s, p, ctx)
		}},
		{"look at npc", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LookAtNpc(actions.LookAtNpc{TargetID: "nope"}, s, p, ctx)
		}},
		{"look at fixture", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LookAtFixture(actions.LookAtFixture{TargetID: "nope"}, s, p, ctx)
		}},
		{"loot fixture", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LootFixture(actions.LootFixture{FixtureID: "nope"}, s, p, ctx)
		}},
		{"loot npc", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LootNpc(actions.LootNpc{NpcID: "nope"}, s, p, ctx)
		}},
		{"move item", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return MovePlayerItem(actions.MovePlayerItem{ItemID: "nope", LocationTag: "hand"}, s, p, ctx)
		}},
		{"exit", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return ExitRoom(actions.ExitRoom{ExitID: "north"}, s, p, ctx)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSetup()
			evts, err := tt.run(&s, &p, testContext(1))
			if !errors.Is(err, ids.ErrInvalidIDFormat) {
				t.Errorf("expected ErrInvalidIDFormat, got %v", err)
			}
			if len(evts) != 0 {
				t.Errorf("expected no events on error, got %v", eventTypes(evts))
			}
		})
	}
}

func TestHandlers_NotFound(t *testing.T) {
	missing := uuid.MustParse("00000000-0000-4000-8000-00000000dead").String()
	tests := []struct {
		name   string
		run    func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error)
		want   error
		entity Entity
	}{
		{"attack", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return AttackNpc(actions.AttackNpc{TargetID: missing}, s, p, ctx)
		}, ErrNpcNotFound, EntityNpc},
		{"npc is not a fixture", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LookAtFixture(actions.LookAtFixture{TargetID: goblinID.String()}, s, p, ctx)
		}, ErrFixtureNotFound, EntityFixture},
		{"loot fixture", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return LootFixture(actions.LootFixture{FixtureID: missing, ItemIDs: []string{maceID.String()}}, s, p, ctx)
		}, ErrFixtureNotFound, EntityFixture},
		{"spell", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnPlayer(actions.CastSpellOnPlayer{SpellID: missing}, s, p, ctx)
		}, ErrSpellNotFound, EntitySpell},
		{"spell before npc", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: missing, TargetID: missing}, s, p, ctx)
		}, ErrSpellNotFound, EntitySpell},
		{"spell target", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: blastID.String(), TargetID: missing}, s, p, ctx)
		}, ErrNpcNotFound, EntityNpc},
		{"item", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return MovePlayerItem(actions.MovePlayerItem{ItemID: maceID.String(), LocationTag: "hand"}, s, p, ctx)
		}, ErrItemNotFound, EntityItem},
		{"exit", func(s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
			return ExitRoom(actions.ExitRoom{ExitID: missing}, s, p, ctx)
		}, ErrExitNotFound, EntityExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSetup()
			evts, err := tt.run(&s, &p, testContext(1))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var nf *NotFoundError
			if !errors.As(err, &nf) || nf.Entity != tt.entity {
				t.Errorf("expected NotFoundError for %s, got %v", tt.entity, err)
			}
			if len(evts) != 0 {
				t.Errorf("expected no events on error, got %v", eventTypes(evts))
			}
		})
	}
}

func TestAttackNpc_DamageLessDefense(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		s, p := testSetup()
		setGoblin(&s, func(c *types.Character) { c.Stats.Health = types.Health{Current: 1000, Max: 1000} })

		evts, err := AttackNpc(actions.AttackNpc{TargetID: goblinID.String()}, &s, &p, testContext(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		want := state.AttackRoll(&p.Character, rng.NewRNG(seed))
		hit, ok := evts[0].(events.NpcHit)
		if !ok || hit.Damage != want || hit.AttackerID != playerID {
			t.Fatalf("seed %d: first event = %+v, want NpcHit of %d", seed, evts[0], want)
		}

		s2, _ := events.Apply(evts[:1], s, p)
		npc, _ := state.FindNpc(state.CurrentRoom(&s2), goblinID)
		if got := npc.Character.Stats.Health.Current; got != 1000-max(0, want-4) {
			t.Fatalf("seed %d: goblin health = %d, want %d", seed, got, 1000-max(0, want-4))
		}
	}
}

func TestAttackNpc_Kill(t *testing.T) {
	s, p := testSetup()
	setGoblin(&s, func(c *types.Character) { c.Stats.Health.Current = 1 })
	p.Character.Inventory.Equipment[0].Item.Attack.Modifier = 10

	evts, err := AttackNpc(actions.AttackNpc{TargetID: goblinID.String()}, &s, &p, testContext(3))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(evts, events.TypeNpcHit, events.TypeNpcKilled) {
		t.Fatalf("events = %v", eventTypes(evts))
	}

	s, p = events.Apply(evts, s, p)
	if _, err := AttackNpc(actions.AttackNpc{TargetID: goblinID.String()}, &s, &p, testContext(3)); !errors.Is(err, ErrNpcAlreadyDead) {
		t.Errorf("attacking a corpse: expected ErrNpcAlreadyDead, got %v", err)
	}
}

func TestAttackNpc_Retaliation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *types.PlayerCharacter)
		want  []events.Type
	}{
		{
			"npc strikes back",
			func(p *types.PlayerCharacter) {},
			[]events.Type{events.TypeNpcHit, events.TypePlayerHit},
		},
		{
			"retribution answers",
			func(p *types.PlayerCharacter) {
				p.Character.CurrentEffects.RetributionAura = &types.Attack{NumRolls: 1}
			},
			[]events.Type{events.TypeNpcHit, events.TypePlayerHit, events.TypeNpcHit, events.TypePlayerRetributionAuraDissipated},
		},
		{
			"shield absorbs the blow",
			func(p *types.PlayerCharacter) {
				p.Character.CurrentEffects.RetributionAura = &types.Attack{NumRolls: 1}
				p.Character.CurrentEffects.ShieldAura = &types.Defense{DamageResistance: 100}
			},
			[]events.Type{events.TypeNpcHit, events.TypePlayerHit},
		},
		{
			"player dies",
			func(p *types.PlayerCharacter) { p.Character.Stats.Health.Current = 1 },
			[]events.Type{events.TypeNpcHit, events.TypePlayerHit, events.TypePlayerKilled},
		},
		{
			"player rises again",
			func(p *types.PlayerCharacter) {
				p.Character.Stats.Health.Current = 1
				p.Character.CurrentEffects.ResurrectionAura = true
			},
			[]events.Type{events.TypeNpcHit, events.TypePlayerHit, events.TypePlayerResurrected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSetup()
			setGoblin(&s, func(c *types.Character) {
				c.Stats.Health = types.Health{Current: 1000, Max: 1000}
				// 1d6+2 against one point of boots always lands.
			})
			tt.setup(&p)

			evts, err := AttackNpc(actions.AttackNpc{TargetID: goblinID.String()}, &s, &p, testContext(7))
			if err != nil {
				t.Fatal(err)
			}
			if !sameTypes(evts, tt.want...) {
				t.Errorf("events = %v, want %v", eventTypes(evts), tt.want)
			}
		})
	}
}

func TestCastSpellOnPlayer_Heal(t *testing.T) {
	s, p := testSetup()

	evts, err := CastSpellOnPlayer(actions.CastSpellOnPlayer{SpellID: healID.String()}, &s, &p, testContext(1))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(evts, events.TypePlayerHealed, events.TypePlayerSpellUsed) {
		t.Fatalf("events = %v", eventTypes(evts))
	}

	_, p = events.Apply(evts, s, p)
	if got := p.Character.Stats.Health.Current; got != 60 {
		t.Errorf("health = %d, want 60", got)
	}
	ls, _ := state.FindSpell(&p.Character, healID)
	if ls.Spell.Uses != 1 {
		t.Errorf("uses = %d, want 1", ls.Spell.Uses)
	}
}

func TestCastSpellOnPlayer_Families(t *testing.T) {
	tests := []struct {
		name  string
		spell uuid.UUID
		check func(t *testing.T, evts []events.Event)
	}{
		{"shield default", shieldID, func(t *testing.T, evts []events.Event) {
			e, ok := evts[0].(events.PlayerGainsShieldAura)
			if !ok || e.Defense.DamageResistance != 6 {
				t.Errorf("got %+v", evts[0])
			}
		}},
		{"retribution default", vengeID, func(t *testing.T, evts []events.Event) {
			e, ok := evts[0].(events.PlayerGainsRetributionAura)
			if !ok || e.Attack.NumRolls != 2 || e.Attack.Modifier != 0 {
				t.Errorf("got %+v", evts[0])
			}
		}},
		{"phoenix", phoenixID, func(t *testing.T, evts []events.Event) {
			if _, ok := evts[0].(events.PlayerGainsResurrectionAura); !ok {
				t.Errorf("got %+v", evts[0])
			}
		}},
		{"blast on self, last use", blastID, func(t *testing.T, evts []events.Event) {
			if !sameTypes(evts, events.TypePlayerHit, events.TypePlayerSpellUsed, events.TypePlayerSpellForgotten) {
				t.Errorf("events = %v", eventTypes(evts))
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSetup()
			evts, err := CastSpellOnPlayer(actions.CastSpellOnPlayer{SpellID: tt.spell.String()}, &s, &p, testContext(1))
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, evts)
		})
	}
}

func TestCastSpellOnNpc(t *testing.T) {
	s, p := testSetup()

	evts, err := CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: blastID.String(), TargetID: goblinID.String()}, &s, &p, testContext(1))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(evts, events.TypeNpcHit, events.TypePlayerSpellUsed, events.TypePlayerSpellForgotten) {
		t.Fatalf("events = %v", eventTypes(evts))
	}
	s, p = events.Apply(evts, s, p)
	npc, _ := state.FindNpc(state.CurrentRoom(&s), goblinID)
	if got := npc.Character.Stats.Health.Current; got != 12 {
		t.Errorf("goblin health = %d, want 12", got)
	}

	evts, err = CastSpellOnNpc(actions.CastSpellOnNpc{SpellID: shieldID.String(), TargetID: goblinID.String()}, &s, &p, testContext(1))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(evts, events.TypePlayerSpellUsed) {
		t.Errorf("aura at an npc should fizzle, got %v", eventTypes(evts))
	}
}

func TestInspectNpc(t *testing.T) {
	discovered := map[events.Type]bool{}
	for seed := int64(0); seed < 50; seed++ {
		s, p := testSetup()
		evts, err := InspectNpc(actions.InspectNpc{
			TargetID:       goblinID.String(),
			DiscoverHealth: true,
			DiscoverName:   true,
		}, &s, &p, testContext(seed))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range evts {
			switch e.(type) {
			case events.NpcHealthDiscovered, events.NpcNameDiscovered:
				discovered[e.Type()] = true
			default:
				t.Fatalf("seed %d: unrequested discovery %s", seed, e.Type())
			}
		}
	}
	if !discovered[events.TypeNpcHealthDiscovered] || !discovered[events.TypeNpcNameDiscovered] {
		t.Errorf("50 inspections never discovered everything: %v", discovered)
	}
}

func TestInspectNpc_KnownFactsNotRolled(t *testing.T) {
	s, p := testSetup()
	state.UpdateNpcKnowledge(&s, goblinID, func(k *types.NpcKnowledge) {
		k.KnowsHealth = true
		k.KnowsHiddenInInventory = true
	})

	ctx := testContext(1)
	evts, err := InspectNpc(actions.InspectNpc{TargetID: goblinID.String(), DiscoverHealth: true, DiscoverHiddenItems: true}, &s, &p, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(evts) != 0 || ctx.RNG.Position() != 0 {
		t.Errorf("expected no rolls and no events, got %v after %d draws", eventTypes(evts), ctx.RNG.Position())
	}
}

func TestInspectFixture_NoCompartment(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		s, p := testSetup()
		chest, _ := state.FindFixture(state.CurrentRoom(&s), chestID)
		chest.HasHiddenCompartment = false

		evts, err := InspectFixture(actions.InspectFixture{TargetID: chestID.String(), DiscoverHiddenCompartment: true}, &s, &p, testContext(seed))
		if err != nil {
			t.Fatal(err)
		}
		if len(evts) != 0 {
			t.Fatalf("seed %d: found a compartment that is not there", seed)
		}
	}
}

func TestLookHandlers(t *testing.T) {
	s, p := testSetup()
	ctx := testContext(1)

	evts, _ := LookAtCurrentRoom(actions.LookAtCurrentRoom{}, &s, &p, ctx)
	if rv, ok := evts[0].(events.RoomViewed); !ok || rv.RoomID != hallID {
		t.Errorf("look at room = %+v", evts)
	}
	if evts, _ := QuickLookRoom(actions.QuickLookRoom{}, &s, &p, ctx); len(evts) != 0 {
		t.Errorf("quick look should learn nothing, got %v", eventTypes(evts))
	}
	evts, _ = LookAtNpc(actions.LookAtNpc{TargetID: goblinID.String()}, &s, &p, ctx)
	if nv, ok := evts[0].(events.NpcViewed); !ok || nv.NpcID != goblinID {
		t.Errorf("look at npc = %+v", evts)
	}
	evts, _ = LookAtFixture(actions.LookAtFixture{TargetID: chestID.String()}, &s, &p, ctx)
	if fv, ok := evts[0].(events.FixtureViewed); !ok || fv.FixtureID != chestID {
		t.Errorf("look at fixture = %+v", evts)
	}
}

func TestLootFixture_Permissive(t *testing.T) {
	s, p := testSetup()
	a := actions.LootFixture{
		FixtureID: chestID.String(),
		ItemIDs:   []string{"not-an-id", maceID.String(), uuid.New().String(), gemID.String()},
	}

	evts, err := LootFixture(a, &s, &p, testContext(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(evts) != 1 || evts[0].(events.ItemTakenFromFixture).ItemID != maceID {
		t.Fatalf("expected only the mace, got %+v", evts)
	}

	state.UpdateFixtureKnowledge(&s, chestID, func(k *types.FixtureKnowledge) { k.KnowsHiddenCompartment = true })
	evts, _ = LootFixture(a, &s, &p, testContext(1))
	if len(evts) != 2 {
		t.Errorf("a known compartment should be lootable, got %+v", evts)
	}
}

func TestLootNpc(t *testing.T) {
	s, p := testSetup()
	a := actions.LootNpc{NpcID: goblinID.String(), ItemIDs: []string{daggerID.String(), "junk"}}

	if _, err := LootNpc(a, &s, &p, testContext(1)); !errors.Is(err, ErrNpcNotDead) {
		t.Fatalf("looting the living: expected ErrNpcNotDead, got %v", err)
	}

	setGoblin(&s, state.Kill)
	evts, err := LootNpc(a, &s, &p, testContext(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(evts) != 1 || evts[0].(events.ItemTakenFromNpc).ItemID != daggerID {
		t.Errorf("expected the dagger, got %+v", evts)
	}
}

func TestMovePlayerItem(t *testing.T) {
	tests := []struct {
		name     string
		action   actions.MovePlayerItem
		wantErr  error
		conflict types.ItemType
		ready    bool
	}{
		{"pack sword", actions.MovePlayerItem{ItemID: swordID.String(), LocationTag: "packed", PutAtTheReady: true}, nil, "", false},
		{"sword to hip ready", actions.MovePlayerItem{ItemID: swordID.String(), LocationTag: "hip", PutAtTheReady: true}, nil, "", true},
		{"sword cannot hide", actions.MovePlayerItem{ItemID: swordID.String(), LocationTag: "hidden"}, ErrInvalidItemLocation, "", false},
		{"sword not on head", actions.MovePlayerItem{ItemID: swordID.String(), LocationTag: "head"}, ErrInvalidItemLocation, "", false},
		{"equipped alone is no slot", actions.MovePlayerItem{ItemID: swordID.String(), LocationTag: "equipped"}, ErrInvalidItemLocation, "", false},
		{"two pairs of boots", actions.MovePlayerItem{ItemID: plateBoots.String(), LocationTag: "feet"}, ErrInvalidItemLocation, types.ItemBoots, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSetup()
			evts, err := MovePlayerItem(tt.action, &s, &p, testContext(1))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				var le *LocationError
				if errors.As(err, &le) && le.ConflictsWith != tt.conflict {
					t.Errorf("conflicts with %q, want %q", le.ConflictsWith, tt.conflict)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			moved := evts[0].(events.PlayerItemMoved)
			if moved.PutAtTheReady != tt.ready {
				t.Errorf("ready = %v, want %v", moved.PutAtTheReady, tt.ready)
			}
		})
	}
}

func TestExitRoom_GeneratesOnce(t *testing.T) {
	s, p := testSetup()
	exit := actions.ExitRoom{ExitID: doorID.String()}

	evts, err := ExitRoom(exit, &s, &p, testContext(5))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(evts, events.TypeRoomGenerated, events.TypeRoomExited) {
		t.Fatalf("events = %v", eventTypes(evts))
	}
	gen := evts[0].(events.RoomGenerated)
	exited := evts[1].(events.RoomExited)
	if gen.EntranceID != doorID || exited.ExitID != doorID || exited.OldRoomID != hallID || exited.NewRoomID != gen.Room.Identifier.ID {
		t.Fatalf("events = %+v", evts)
	}

	s, p = events.Apply(evts, s, p)
	if s.CurrentRoomID != gen.Room.Identifier.ID {
		t.Fatalf("current room = %s, want %s", s.CurrentRoomID, gen.Room.Identifier.ID)
	}

	// Back through the same door, then out again.
	back, err := ExitRoom(exit, &s, &p, testContext(6))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(back, events.TypeRoomExited) || back[0].(events.RoomExited).NewRoomID != hallID {
		t.Fatalf("going back = %+v", back)
	}
	s, p = events.Apply(back, s, p)

	again, err := ExitRoom(exit, &s, &p, testContext(7))
	if err != nil {
		t.Fatal(err)
	}
	if !sameTypes(again, events.TypeRoomExited) || again[0].(events.RoomExited).NewRoomID != gen.Room.Identifier.ID {
		t.Errorf("second traversal = %+v", again)
	}
}

func TestExitRoom_MissingFromGraphPanics(t *testing.T) {
	s, p := testSetup()
	s.World.ExitGraph = nil

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an exit the graph does not hold")
		}
	}()
	ExitRoom(actions.ExitRoom{ExitID: doorID.String()}, &s, &p, testContext(1))
}
