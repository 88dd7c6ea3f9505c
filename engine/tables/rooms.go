package tables

import "github.com/nathoo/underworld/types"

// RoomName is the display noun for a room type.
func RoomName(rt types.RoomType) string {
	switch rt {
	case types.RoomGuardRoom:
		return "guard room"
	case types.RoomPrisonCell:
		return "prison cell"
	case types.RoomTavernHall:
		return "tavern hall"
	case types.RoomTempleHall:
		return "temple hall"
	case types.RoomCave, types.RoomCavern, types.RoomCemetery, types.RoomEntryway,
		types.RoomMausoleum, types.RoomRoom:
		return string(rt)
	}
	panic(unknown("room name", rt))
}

// RoomDescriptorText is the display form of a room descriptor.
func RoomDescriptorText(d types.RoomDescriptor) string {
	switch d {
	case types.RoomDimlyLit:
		return "dimly lit"
	case types.RoomChilly, types.RoomDamp, types.RoomDark, types.RoomGrimy,
		types.RoomMusty, types.RoomSmelly, types.RoomStuffy:
		return string(d)
	}
	panic(unknown("room descriptor text", d))
}

// RoomFixtures lists the fixture types that may furnish a room type.
func RoomFixtures(rt types.RoomType) []types.FixtureType {
	switch rt {
	case types.RoomCave:
		return []types.FixtureType{types.FixtureBarrel, types.FixtureBucket, types.FixtureCrate, types.FixtureSleepingRoll}
	case types.RoomCavern:
		return []types.FixtureType{types.FixtureCrate, types.FixturePillar, types.FixtureStatue}
	case types.RoomCemetery:
		return []types.FixtureType{types.FixtureCoffin, types.FixtureStatue}
	case types.RoomEntryway:
		return []types.FixtureType{types.FixtureBench, types.FixtureChair, types.FixtureTable, types.FixtureWeaponRack}
	case types.RoomGuardRoom:
		return []types.FixtureType{
			types.FixtureChair, types.FixtureChest, types.FixtureCot, types.FixtureTable, types.FixtureWeaponRack,
		}
	case types.RoomMausoleum:
		return []types.FixtureType{types.FixtureCoffin, types.FixturePillar, types.FixtureStatue}
	case types.RoomPrisonCell:
		return []types.FixtureType{types.FixtureBucket, types.FixtureCot, types.FixtureSleepingRoll}
	case types.RoomRoom:
		return []types.FixtureType{types.FixtureBed, types.FixtureChair, types.FixtureChest, types.FixtureTable}
	case types.RoomTavernHall:
		return []types.FixtureType{types.FixtureBarrel, types.FixtureBench, types.FixtureChair, types.FixtureTable}
	case types.RoomTempleHall:
		return []types.FixtureType{types.FixtureBench, types.FixtureChest, types.FixturePillar, types.FixtureStatue}
	}
	panic(unknown("room fixtures", rt))
}

// RoomSpecies lists the species that may be found in a room type when no
// content pack says otherwise.
func RoomSpecies(rt types.RoomType) []types.Species {
	switch rt {
	case types.RoomCave, types.RoomCavern:
		return []types.Species{
			types.SpeciesFrogkin, types.SpeciesGoblin, types.SpeciesKobold,
			types.SpeciesLizardkin, types.SpeciesOgre, types.SpeciesRockoblin,
		}
	case types.RoomCemetery, types.RoomMausoleum:
		return []types.Species{types.SpeciesHuman, types.SpeciesOrc, types.SpeciesShadow}
	case types.RoomEntryway, types.RoomGuardRoom, types.RoomPrisonCell:
		return []types.Species{types.SpeciesBugbear, types.SpeciesGoblin, types.SpeciesHuman, types.SpeciesOrc}
	case types.RoomRoom, types.RoomTavernHall:
		return []types.Species{
			types.SpeciesBugbear, types.SpeciesGoblin, types.SpeciesHuman,
			types.SpeciesKobold, types.SpeciesOrc,
		}
	case types.RoomTempleHall:
		return []types.Species{types.SpeciesHuman, types.SpeciesLizardkin, types.SpeciesShadow}
	}
	panic(unknown("room species", rt))
}

// RoomUndeadChance is the percentage chance an NPC generated in a room type
// is undead.
func RoomUndeadChance(rt types.RoomType) int {
	switch rt {
	case types.RoomCemetery:
		return 60
	case types.RoomMausoleum:
		return 75
	case types.RoomTempleHall:
		return 15
	case types.RoomCave, types.RoomCavern, types.RoomEntryway, types.RoomGuardRoom,
		types.RoomPrisonCell, types.RoomRoom, types.RoomTavernHall:
		return 5
	}
	panic(unknown("room undead chance", rt))
}

// RoomDescriptors lists the descriptors that suit a room type.
func RoomDescriptors(rt types.RoomType) []types.RoomDescriptor {
	switch rt {
	case types.RoomCave, types.RoomCavern:
		return []types.RoomDescriptor{types.RoomChilly, types.RoomDamp, types.RoomDark, types.RoomMusty}
	case types.RoomCemetery, types.RoomMausoleum:
		return []types.RoomDescriptor{types.RoomChilly, types.RoomDark, types.RoomMusty, types.RoomSmelly}
	case types.RoomTavernHall:
		return []types.RoomDescriptor{types.RoomDimlyLit, types.RoomGrimy, types.RoomSmelly, types.RoomStuffy}
	case types.RoomPrisonCell:
		return []types.RoomDescriptor{types.RoomDamp, types.RoomDark, types.RoomGrimy, types.RoomSmelly}
	case types.RoomEntryway, types.RoomGuardRoom, types.RoomRoom, types.RoomTempleHall:
		return AllRoomDescriptors()
	}
	panic(unknown("room descriptors", rt))
}

// RoomExitTypes lists the exit types a room type may have.
func RoomExitTypes(rt types.RoomType) []types.ExitType {
	switch rt {
	case types.RoomCave, types.RoomCavern:
		return []types.ExitType{types.ExitHoleInTheWall, types.ExitOpening}
	case types.RoomCemetery:
		return []types.ExitType{types.ExitDoorway, types.ExitOpening, types.ExitStaircase}
	case types.RoomEntryway, types.RoomGuardRoom, types.RoomMausoleum, types.RoomPrisonCell,
		types.RoomRoom, types.RoomTavernHall, types.RoomTempleHall:
		return []types.ExitType{types.ExitDoor, types.ExitDoorway, types.ExitStaircase}
	}
	panic(unknown("room exit types", rt))
}

// RoomDimensions is the inclusive range of dimensions for a room type.
func RoomDimensions(rt types.RoomType) (lo, hi types.Dimensions) {
	switch rt {
	case types.RoomPrisonCell:
		return types.Dimensions{Height: 7, Width: 6, Length: 6}, types.Dimensions{Height: 9, Width: 10, Length: 12}
	case types.RoomEntryway, types.RoomRoom, types.RoomGuardRoom:
		return types.Dimensions{Height: 8, Width: 10, Length: 10}, types.Dimensions{Height: 12, Width: 25, Length: 30}
	case types.RoomCave, types.RoomCemetery, types.RoomTavernHall:
		return types.Dimensions{Height: 8, Width: 20, Length: 20}, types.Dimensions{Height: 20, Width: 40, Length: 50}
	case types.RoomCavern, types.RoomMausoleum, types.RoomTempleHall:
		return types.Dimensions{Height: 15, Width: 30, Length: 30}, types.Dimensions{Height: 40, Width: 60, Length: 80}
	}
	panic(unknown("room dimensions", rt))
}

// ExitName is the display noun for an exit type.
func ExitName(e types.ExitType) string {
	switch e {
	case types.ExitHoleInTheWall:
		return "hole in the wall"
	case types.ExitDoor, types.ExitDoorway, types.ExitOpening, types.ExitStaircase:
		return string(e)
	}
	panic(unknown("exit name", e))
}

// ExitMaterials lists the materials an exit type may be built from. An
// empty list means the exit has no material.
func ExitMaterials(e types.ExitType) []types.Material {
	switch e {
	case types.ExitDoor:
		return []types.Material{types.MaterialIron, types.MaterialSteel, types.MaterialWood}
	case types.ExitStaircase:
		return []types.Material{types.MaterialStone, types.MaterialWood}
	case types.ExitDoorway, types.ExitHoleInTheWall, types.ExitOpening:
		return nil
	}
	panic(unknown("exit materials", e))
}
