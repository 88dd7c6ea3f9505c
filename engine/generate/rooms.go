package generate

import (
	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// RoomPrototype generates a room. When Entrance is valid the room gets an
// exit with that id, which is how a freshly generated room is spliced into
// the exit graph behind the door the player walked through.
type RoomPrototype struct {
	Entrance         uuid.NullUUID
	RoomTypes        []types.RoomType // empty means every room type
	NumDescriptors   Range
	NumFixtureGroups Range
	FixturesPerGroup Range
	CompanionChance  int // chance a fixture group gets a second kind ("a table and chairs")
	NumNpcGroups     Range
	NpcsPerGroup     Range
	NumExits         Range // exits besides the entrance
	Spawns           map[types.RoomType][]Generator[types.NonPlayer]
	FixtureItems     []Generator[types.Item]
	Flavours         map[types.RoomType][]string
}

// RandomRoom is a room prototype with stock ranges and no content pack.
func RandomRoom(entrance uuid.NullUUID) RoomPrototype {
	return RoomPrototype{
		Entrance:         entrance,
		NumDescriptors:   Range{1, 2},
		NumFixtureGroups: Range{1, 3},
		FixturesPerGroup: Range{1, 3},
		CompanionChance:  30,
		NumNpcGroups:     Range{0, 2},
		NpcsPerGroup:     Range{1, 4},
		NumExits:         Range{1, 3},
	}
}

// Generate builds a room.
func (p RoomPrototype) Generate(r *rng.RNG) types.Room {
	roomTypes := p.RoomTypes
	if len(roomTypes) == 0 {
		roomTypes = tables.AllRoomTypes()
	}
	rt := rng.Pick(r, roomTypes)

	room := types.Room{
		Identifier:  types.Identifier{ID: r.NewID()},
		RoomType:    rt,
		Descriptors: pickN(r, tables.RoomDescriptors(rt), p.NumDescriptors.Roll(r)),
		Dimensions:  rollDimensions(r, rt),
	}

	room.FixturePositions = p.fixturePositions(r, rt)
	present := map[types.FixtureType]bool{}
	for _, fp := range room.FixturePositions {
		for _, f := range fp.Fixtures {
			present[f.FixtureType] = true
		}
	}
	room.NpcPositions = p.npcPositions(r, rt, present)
	room.Exits = p.exits(r, rt)

	if flavours := p.Flavours[rt]; len(flavours) > 0 {
		room.Flavour = rng.Pick(r, flavours)
	}
	return room
}

func rollDimensions(r *rng.RNG, rt types.RoomType) types.Dimensions {
	lo, hi := tables.RoomDimensions(rt)
	return types.Dimensions{
		Height: float64(r.Between(int(lo.Height), int(hi.Height))),
		Width:  float64(r.Between(int(lo.Width), int(hi.Width))),
		Length: float64(r.Between(int(lo.Length), int(hi.Length))),
	}
}

func (p RoomPrototype) fixturePositions(r *rng.RNG, rt types.RoomType) []types.FixturePosition {
	candidates := tables.RoomFixtures(rt)
	var out []types.FixturePosition

	n := p.NumFixtureGroups.Roll(r)
	for i := 0; i < n; i++ {
		ft := rng.Pick(r, candidates)
		count := p.FixturesPerGroup.Roll(r)
		if count < 1 {
			count = 1
		}
		var fixtures []types.Fixture
		for j := 0; j < count; j++ {
			fixtures = append(fixtures, p.fixture(ft).Generate(r))
		}
		if chance(r, p.CompanionChance) {
			companion := rng.Pick(r, candidates)
			if companion != ft {
				for j := r.Between(1, 3); j > 0; j-- {
					fixtures = append(fixtures, p.fixture(companion).Generate(r))
				}
			}
		}

		out = append(out, types.FixturePosition{
			GroupDescriptor:     fixtureGroup(r, ft, count),
			Fixtures:            fixtures,
			PositionDescriptors: fixtureDescriptors(r),
		})
	}
	return out
}

func (p RoomPrototype) fixture(ft types.FixtureType) FixturePrototype {
	return FixturePrototype{
		FixtureType:             ft,
		NumDescriptors:          Range{0, 1},
		HiddenCompartmentChance: 20,
		Items:                   p.FixtureItems,
		NumItems:                Range{0, 2},
		HiddenItemChance:        50,
	}
}

func fixtureGroup(r *rng.RNG, ft types.FixtureType, count int) types.GroupDescriptor {
	if count == 1 {
		return article(tables.FixtureName(ft))
	}
	var fits []types.GroupDescriptor
	for _, g := range []types.GroupDescriptor{types.GroupACoupleOf, types.GroupAFew, types.GroupAGroupOf, types.GroupSome} {
		if tables.GroupFits(g, count) {
			fits = append(fits, g)
		}
	}
	return rng.Pick(r, fits)
}

// fixtureDescriptors draws a descriptor and tries to add a second one,
// keeping it only if neither rules the other out.
func fixtureDescriptors(r *rng.RNG) []types.FixturePositionDescriptor {
	all := tables.AllFixturePositionDescriptors()
	first := rng.Pick(r, all)
	out := []types.FixturePositionDescriptor{first}

	second := rng.Pick(r, all)
	if second != first &&
		!tables.FixturePositionUnableToBeUsedWith(first, second) &&
		!tables.FixturePositionUnableToBeUsedWith(second, first) {
		out = append(out, second)
	}
	return out
}

func (p RoomPrototype) npcPositions(r *rng.RNG, rt types.RoomType, present map[types.FixtureType]bool) []types.NpcPosition {
	spawns := p.Spawns[rt]
	if len(spawns) == 0 {
		spawns = []Generator[types.NonPlayer]{NonPlayerPrototype{
			Character: CharacterPrototype{
				SpeciesPool:        tables.RoomSpecies(rt),
				LifeModifierChance: tables.RoomUndeadChance(rt),
				Inventory:          BasicInventory(),
			},
		}}
	}

	var out []types.NpcPosition
	var used []types.NpcPositionDescriptor

	n := p.NumNpcGroups.Roll(r)
	for i := 0; i < n; i++ {
		count := p.NpcsPerGroup.Roll(r)
		if count < 1 {
			count = 1
		}
		spawn := rng.Pick(r, spawns)
		var npcs []types.NonPlayer
		for j := 0; j < count; j++ {
			npcs = append(npcs, spawn.Generate(r))
		}

		pos := types.NpcPosition{
			GroupDescriptor: npcGroup(r, npcs),
			NPCs:            npcs,
		}
		if d, ok := npcDescriptor(r, count, present, used); ok {
			pos.PositionDescriptor = d
			used = append(used, d)
		}
		out = append(out, pos)
	}
	return out
}

func npcGroup(r *rng.RNG, npcs []types.NonPlayer) types.GroupDescriptor {
	if len(npcs) == 1 {
		return article(string(npcs[0].Character.Species))
	}
	var fits []types.GroupDescriptor
	for _, g := range []types.GroupDescriptor{
		types.GroupABunchOf, types.GroupACoupleOf, types.GroupAFew,
		types.GroupAGangOf, types.GroupAGroupOf, types.GroupSome,
	} {
		if tables.GroupFits(g, len(npcs)) {
			fits = append(fits, g)
		}
	}
	return rng.Pick(r, fits)
}

// npcDescriptor picks a position descriptor that agrees in number with the
// group, refers only to fixtures in the room, and is compatible with the
// descriptors already used by other groups.
func npcDescriptor(r *rng.RNG, count int, present map[types.FixtureType]bool, used []types.NpcPositionDescriptor) (types.NpcPositionDescriptor, bool) {
	number := tables.Singular
	if count > 1 {
		number = tables.Plural
	}

	var candidates []types.NpcPositionDescriptor
	for _, d := range tables.AllNpcPositionDescriptors() {
		if tables.NpcPositionNumber(d) != number {
			continue
		}
		if f, ok := tables.NpcPositionFixture(d); ok && !present[f] {
			continue
		}
		compatible := true
		for _, u := range used {
			if d == u || tables.NpcPositionUnableToBeUsedWith(d, u) || tables.NpcPositionUnableToBeUsedWith(u, d) {
				compatible = false
				break
			}
		}
		if compatible {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return rng.Pick(r, candidates), true
}

func (p RoomPrototype) exits(r *rng.RNG, rt types.RoomType) []types.Exit {
	var out []types.Exit
	if p.Entrance.Valid {
		out = append(out, newExit(r, rt, p.Entrance.UUID))
	}
	n := p.NumExits.Roll(r)
	for i := 0; i < n; i++ {
		out = append(out, newExit(r, rt, r.NewID()))
	}
	return out
}

func newExit(r *rng.RNG, rt types.RoomType, id uuid.UUID) types.Exit {
	et := rng.Pick(r, tables.RoomExitTypes(rt))
	exit := types.Exit{Identifier: types.Identifier{ID: id}, ExitType: et}
	if materials := tables.ExitMaterials(et); len(materials) > 0 {
		exit.Material = rng.Pick(r, materials)
	}
	return exit
}
