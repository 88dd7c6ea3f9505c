// Package tables holds the static rules that constrain generation and
// description: which materials a kind may be built from, where an item may
// be carried, which descriptors may be combined, and how things are named.
//
// Every table is an exhaustive switch over its enum. An unknown variant is a
// programming error and panics; TestTables_Exhaustive walks every All* list
// through every table so a new variant without an entry fails the suite.
package tables

import (
	"fmt"

	"github.com/nathoo/underworld/types"
)

// Placement says whether a position descriptor renders before or after the
// noun phrase it positions.
type Placement int

const (
	Pre Placement = iota
	Post
)

// Number is the grammatical number a descriptor agrees with.
type Number int

const (
	Singular Number = iota
	Plural
)

func unknown(table string, v any) string {
	return fmt.Sprintf("tables: %s: unknown variant %q", table, v)
}

// AllWeapons lists every weapon item type.
func AllWeapons() []types.ItemType {
	return []types.ItemType{
		types.ItemBuckler, types.ItemClub, types.ItemDagger, types.ItemDirk,
		types.ItemGladiusSword, types.ItemGreatSword, types.ItemHammer,
		types.ItemLongSword, types.ItemMace, types.ItemMorningstar,
		types.ItemShortSword, types.ItemWhip,
	}
}

// AllWearables lists every wearable item type.
func AllWearables() []types.ItemType {
	return []types.ItemType{
		types.ItemBoots, types.ItemBreastplate, types.ItemCloak, types.ItemCrown,
		types.ItemGloves, types.ItemLoinCloth, types.ItemMask, types.ItemPlateBoots,
		types.ItemPlateGauntlets, types.ItemPlateHelmet, types.ItemShackles,
		types.ItemShirt, types.ItemTrousers, types.ItemVest,
	}
}

// AllMaterials lists every material.
func AllMaterials() []types.Material {
	return []types.Material{
		types.MaterialBone, types.MaterialCeramic, types.MaterialCotton,
		types.MaterialFur, types.MaterialGold, types.MaterialHide,
		types.MaterialIron, types.MaterialLeather, types.MaterialLinen,
		types.MaterialSilk, types.MaterialSteel, types.MaterialStone,
		types.MaterialWood, types.MaterialWool,
	}
}

// AllObjectDescriptors lists every object descriptor.
func AllObjectDescriptors() []types.ObjectDescriptor {
	return []types.ObjectDescriptor{
		types.DescriptorBroken, types.DescriptorChipped, types.DescriptorCracked,
		types.DescriptorDingy, types.DescriptorDirty, types.DescriptorMothEaten,
		types.DescriptorRusty, types.DescriptorSetOf, types.DescriptorShiny,
		types.DescriptorSplintered, types.DescriptorStained, types.DescriptorTorn,
	}
}

// AllFixtures lists every fixture type.
func AllFixtures() []types.FixtureType {
	return []types.FixtureType{
		types.FixtureBarrel, types.FixtureBed, types.FixtureBench,
		types.FixtureBucket, types.FixtureChair, types.FixtureChest,
		types.FixtureCoffin, types.FixtureCot, types.FixtureCrate,
		types.FixturePillar, types.FixtureSleepingRoll, types.FixtureStatue,
		types.FixtureTable, types.FixtureWeaponRack,
	}
}

// AllSpecies lists every species.
func AllSpecies() []types.Species {
	return []types.Species{
		types.SpeciesBugbear, types.SpeciesFrogkin, types.SpeciesGoblin,
		types.SpeciesHuman, types.SpeciesKobold, types.SpeciesLizardkin,
		types.SpeciesOgre, types.SpeciesOrc, types.SpeciesRockoblin,
		types.SpeciesShadow,
	}
}

// AllLifeModifiers lists every undead life modifier. LifeModifierNone is
// not included.
func AllLifeModifiers() []types.LifeModifier {
	return []types.LifeModifier{
		types.LifeModifierSkeleton, types.LifeModifierVampire, types.LifeModifierZombie,
	}
}

// AllSpells lists every spell name.
func AllSpells() []types.SpellName {
	return []types.SpellName{
		types.SpellElectricBlast, types.SpellHeal, types.SpellPhoenix,
		types.SpellQuickHeal, types.SpellRagingFireball, types.SpellRetribution,
		types.SpellTinyShield,
	}
}

// AllSizes lists every size class, smallest first.
func AllSizes() []types.Size {
	return []types.Size{
		types.SizeTiny, types.SizeSmall, types.SizeAverage, types.SizeLarge, types.SizeHuge,
	}
}

// AllGroupDescriptors lists every group descriptor except GroupNone.
func AllGroupDescriptors() []types.GroupDescriptor {
	return []types.GroupDescriptor{
		types.GroupA, types.GroupABunchOf, types.GroupACoupleOf, types.GroupAFew,
		types.GroupAGangOf, types.GroupAGroupOf, types.GroupAn, types.GroupSome,
	}
}

// AllFixturePositionDescriptors lists every fixture position descriptor.
func AllFixturePositionDescriptors() []types.FixturePositionDescriptor {
	return []types.FixturePositionDescriptor{
		types.FixtureAgainstTheWallIs, types.FixtureInTheCenterOfTheRoomIs,
		types.FixtureInTheCornerIs, types.FixtureIsAgainstTheWall,
		types.FixtureIsInTheCenterOfTheRoom, types.FixtureIsInTheCorner,
		types.FixtureIsOffToTheSide, types.FixtureSitsAlongOneSide,
		types.FixtureStandsInTheBack,
	}
}

// AllNpcPositionDescriptors lists every NPC position descriptor.
func AllNpcPositionDescriptors() []types.NpcPositionDescriptor {
	return []types.NpcPositionDescriptor{
		types.NpcAreGlaringAtYou, types.NpcAreGlaringAtYouFromNearby,
		types.NpcAreInTheCorner, types.NpcAreLeaningAgainstTheTable,
		types.NpcAreLeaningOnACrate, types.NpcAreLoiteringAbout,
		types.NpcAreLookingAtTheWeaponRack, types.NpcAreSittingInChairs,
		types.NpcAreStandingAround, types.NpcAreStandingOnTheTable,
		types.NpcAreCrouchedInTheCenterOfRoom, types.NpcInCornerStands,
		types.NpcInTheCornerAre, types.NpcIsCrouchedInTheCenterOfRoom,
		types.NpcIsCrouchedOverChest, types.NpcIsGlaringAtYou,
		types.NpcIsGlaringAtYouFromNearby, types.NpcIsLeaningAgainstTheTable,
		types.NpcIsLeaningOnACrate, types.NpcIsLookingAtTheWeaponRack,
		types.NpcIsRummagingThroughAChest, types.NpcIsSittingAndDozingInCenterOfRoom,
		types.NpcIsSittingInAChair, types.NpcIsSleepingInACot,
		types.NpcIsSleepingInSleepingRoll, types.NpcIsSleepingInTheBed,
		types.NpcIsStandingAround, types.NpcIsStandingInABarrel,
		types.NpcIsStandingOnTheTable, types.NpcLeansAgainstTheTable,
		types.NpcSittingInAChairIs, types.NpcStandsOnTheTable,
	}
}

// AllRoomTypes lists every room type.
func AllRoomTypes() []types.RoomType {
	return []types.RoomType{
		types.RoomCave, types.RoomCavern, types.RoomCemetery, types.RoomEntryway,
		types.RoomGuardRoom, types.RoomMausoleum, types.RoomPrisonCell,
		types.RoomRoom, types.RoomTavernHall, types.RoomTempleHall,
	}
}

// AllRoomDescriptors lists every room descriptor.
func AllRoomDescriptors() []types.RoomDescriptor {
	return []types.RoomDescriptor{
		types.RoomChilly, types.RoomDamp, types.RoomDark, types.RoomDimlyLit,
		types.RoomGrimy, types.RoomMusty, types.RoomSmelly, types.RoomStuffy,
	}
}

// AllExitTypes lists every exit type.
func AllExitTypes() []types.ExitType {
	return []types.ExitType{
		types.ExitDoor, types.ExitDoorway, types.ExitHoleInTheWall,
		types.ExitOpening, types.ExitStaircase,
	}
}
