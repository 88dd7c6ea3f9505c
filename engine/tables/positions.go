package tables

import "github.com/nathoo/underworld/types"

// GroupText is the display form of a group descriptor.
func GroupText(g types.GroupDescriptor) string {
	switch g {
	case types.GroupA:
		return "a"
	case types.GroupABunchOf:
		return "a bunch of"
	case types.GroupACoupleOf:
		return "a couple of"
	case types.GroupAFew:
		return "a few"
	case types.GroupAGangOf:
		return "a gang of"
	case types.GroupAGroupOf:
		return "a group of"
	case types.GroupAn:
		return "an"
	case types.GroupSome:
		return "some"
	}
	panic(unknown("group text", g))
}

// GroupFits reports whether g can introduce a group of count members.
func GroupFits(g types.GroupDescriptor, count int) bool {
	switch g {
	case types.GroupA, types.GroupAn:
		return count == 1
	case types.GroupACoupleOf:
		return count == 2
	case types.GroupABunchOf, types.GroupAFew, types.GroupAGangOf, types.GroupAGroupOf,
		types.GroupSome:
		return count > 1
	}
	panic(unknown("group fits", g))
}

// FixturePositionText is the display form of a fixture position descriptor.
func FixturePositionText(d types.FixturePositionDescriptor) string {
	switch d {
	case types.FixtureAgainstTheWallIs:
		return "against the wall is"
	case types.FixtureInTheCenterOfTheRoomIs:
		return "in the center of the room is"
	case types.FixtureInTheCornerIs:
		return "in the corner is"
	case types.FixtureIsAgainstTheWall:
		return "is against the wall"
	case types.FixtureIsInTheCenterOfTheRoom:
		return "is in the center of the room"
	case types.FixtureIsInTheCorner:
		return "is in the corner"
	case types.FixtureIsOffToTheSide:
		return "is off to the side"
	case types.FixtureSitsAlongOneSide:
		return "sits along one side"
	case types.FixtureStandsInTheBack:
		return "stands in the back"
	}
	panic(unknown("fixture position text", d))
}

// FixturePositionPlacement says where a fixture position descriptor renders.
func FixturePositionPlacement(d types.FixturePositionDescriptor) Placement {
	switch d {
	case types.FixtureAgainstTheWallIs, types.FixtureInTheCenterOfTheRoomIs, types.FixtureInTheCornerIs:
		return Pre
	case types.FixtureIsAgainstTheWall, types.FixtureIsInTheCenterOfTheRoom, types.FixtureIsInTheCorner,
		types.FixtureIsOffToTheSide, types.FixtureSitsAlongOneSide, types.FixtureStandsInTheBack:
		return Post
	}
	panic(unknown("fixture position placement", d))
}

// FixturePositionUnableToBeUsedWith reports whether d rules out other in the
// same fixture position. A pre descriptor already carries the verb, so it
// stands alone; post descriptors exclude each other.
func FixturePositionUnableToBeUsedWith(d, other types.FixturePositionDescriptor) bool {
	switch FixturePositionPlacement(d) {
	case Pre:
		return true
	default:
		return FixturePositionPlacement(other) == Post
	}
}

// NpcPositionText is the display form of an NPC position descriptor.
func NpcPositionText(d types.NpcPositionDescriptor) string {
	switch d {
	case types.NpcAreGlaringAtYou:
		return "are glaring at you"
	case types.NpcAreGlaringAtYouFromNearby:
		return "are glaring at you from nearby"
	case types.NpcAreInTheCorner:
		return "are in the corner"
	case types.NpcAreLeaningAgainstTheTable:
		return "are leaning against the table"
	case types.NpcAreLeaningOnACrate:
		return "are leaning on a crate"
	case types.NpcAreLoiteringAbout:
		return "are loitering about"
	case types.NpcAreLookingAtTheWeaponRack:
		return "are looking at the weapon rack"
	case types.NpcAreSittingInChairs:
		return "are sitting in chairs"
	case types.NpcAreStandingAround:
		return "are standing around"
	case types.NpcAreStandingOnTheTable:
		return "are standing on the table"
	case types.NpcAreCrouchedInTheCenterOfRoom:
		return "are crouched in the center of the room"
	case types.NpcInCornerStands:
		return "in the corner stands"
	case types.NpcInTheCornerAre:
		return "in the corner are"
	case types.NpcIsCrouchedInTheCenterOfRoom:
		return "is crouched in the center of the room"
	case types.NpcIsCrouchedOverChest:
		return "is crouched over a chest"
	case types.NpcIsGlaringAtYou:
		return "is glaring at you"
	case types.NpcIsGlaringAtYouFromNearby:
		return "is glaring at you from nearby"
	case types.NpcIsLeaningAgainstTheTable:
		return "is leaning against the table"
	case types.NpcIsLeaningOnACrate:
		return "is leaning on a crate"
	case types.NpcIsLookingAtTheWeaponRack:
		return "is looking at the weapon rack"
	case types.NpcIsRummagingThroughAChest:
		return "is rummaging through a chest"
	case types.NpcIsSittingAndDozingInCenterOfRoom:
		return "is sitting and dozing in center of the room"
	case types.NpcIsSittingInAChair:
		return "is sitting in a chair"
	case types.NpcIsSleepingInACot:
		return "is sleeping in a cot"
	case types.NpcIsSleepingInSleepingRoll:
		return "is sleeping in a sleeping roll"
	case types.NpcIsSleepingInTheBed:
		return "is sleeping in the bed"
	case types.NpcIsStandingAround:
		return "is standing around"
	case types.NpcIsStandingInABarrel:
		return "is standing in a barrel"
	case types.NpcIsStandingOnTheTable:
		return "is standing on the table"
	case types.NpcLeansAgainstTheTable:
		return "leans against the table"
	case types.NpcSittingInAChairIs:
		return "sitting in a chair is"
	case types.NpcStandsOnTheTable:
		return "stands on the table"
	}
	panic(unknown("npc position text", d))
}

// NpcPositionPlacement says where an NPC position descriptor renders.
func NpcPositionPlacement(d types.NpcPositionDescriptor) Placement {
	switch d {
	case types.NpcInCornerStands, types.NpcInTheCornerAre, types.NpcSittingInAChairIs:
		return Pre
	}
	NpcPositionText(d)
	return Post
}

// NpcPositionNumber is the grammatical number a descriptor agrees with.
func NpcPositionNumber(d types.NpcPositionDescriptor) Number {
	switch d {
	case types.NpcAreGlaringAtYou, types.NpcAreGlaringAtYouFromNearby, types.NpcAreInTheCorner,
		types.NpcAreLeaningAgainstTheTable, types.NpcAreLeaningOnACrate, types.NpcAreLoiteringAbout,
		types.NpcAreLookingAtTheWeaponRack, types.NpcAreSittingInChairs, types.NpcAreStandingAround,
		types.NpcAreStandingOnTheTable, types.NpcAreCrouchedInTheCenterOfRoom, types.NpcInTheCornerAre:
		return Plural
	case types.NpcInCornerStands, types.NpcIsCrouchedInTheCenterOfRoom, types.NpcIsCrouchedOverChest,
		types.NpcIsGlaringAtYou, types.NpcIsGlaringAtYouFromNearby, types.NpcIsLeaningAgainstTheTable,
		types.NpcIsLeaningOnACrate, types.NpcIsLookingAtTheWeaponRack, types.NpcIsRummagingThroughAChest,
		types.NpcIsSittingAndDozingInCenterOfRoom, types.NpcIsSittingInAChair, types.NpcIsSleepingInACot,
		types.NpcIsSleepingInSleepingRoll, types.NpcIsSleepingInTheBed, types.NpcIsStandingAround,
		types.NpcIsStandingInABarrel, types.NpcIsStandingOnTheTable, types.NpcLeansAgainstTheTable,
		types.NpcSittingInAChairIs, types.NpcStandsOnTheTable:
		return Singular
	}
	panic(unknown("npc position number", d))
}

// NpcPositionFixture is the fixture that must be in the room for a
// descriptor to make sense. ok is false when any room will do.
func NpcPositionFixture(d types.NpcPositionDescriptor) (f types.FixtureType, ok bool) {
	switch d {
	case types.NpcAreLeaningAgainstTheTable, types.NpcAreStandingOnTheTable,
		types.NpcIsLeaningAgainstTheTable, types.NpcIsStandingOnTheTable,
		types.NpcLeansAgainstTheTable, types.NpcStandsOnTheTable:
		return types.FixtureTable, true
	case types.NpcAreSittingInChairs, types.NpcIsSittingInAChair, types.NpcSittingInAChairIs:
		return types.FixtureChair, true
	case types.NpcAreLeaningOnACrate, types.NpcIsLeaningOnACrate:
		return types.FixtureCrate, true
	case types.NpcAreLookingAtTheWeaponRack, types.NpcIsLookingAtTheWeaponRack:
		return types.FixtureWeaponRack, true
	case types.NpcIsCrouchedOverChest, types.NpcIsRummagingThroughAChest:
		return types.FixtureChest, true
	case types.NpcIsSleepingInACot:
		return types.FixtureCot, true
	case types.NpcIsSleepingInSleepingRoll:
		return types.FixtureSleepingRoll, true
	case types.NpcIsSleepingInTheBed:
		return types.FixtureBed, true
	case types.NpcIsStandingInABarrel:
		return types.FixtureBarrel, true
	}
	NpcPositionText(d)
	return "", false
}

// NpcPositionUnableToBeUsedWith reports whether a group placed with d rules
// out another group in the same room being placed with other.
func NpcPositionUnableToBeUsedWith(d, other types.NpcPositionDescriptor) bool {
	switch d {
	case types.NpcAreGlaringAtYou, types.NpcAreGlaringAtYouFromNearby, types.NpcAreLoiteringAbout,
		types.NpcAreStandingAround, types.NpcIsGlaringAtYou:
		return NpcPositionPlacement(other) == Post
	case types.NpcAreInTheCorner, types.NpcInCornerStands:
		return NpcPositionPlacement(other) == Pre
	}
	NpcPositionText(d)
	return false
}
