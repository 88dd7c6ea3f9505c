package types

// Species of a character.
type Species string

const (
	SpeciesBugbear   Species = "bugbear"
	SpeciesFrogkin   Species = "frogkin"
	SpeciesGoblin    Species = "goblin"
	SpeciesHuman     Species = "human"
	SpeciesKobold    Species = "kobold"
	SpeciesLizardkin Species = "lizardkin"
	SpeciesOgre      Species = "ogre"
	SpeciesOrc       Species = "orc"
	SpeciesRockoblin Species = "rockoblin"
	SpeciesShadow    Species = "shadow"
)

// LifeModifier marks an undead character. The empty value means alive.
type LifeModifier string

const (
	LifeModifierNone     LifeModifier = ""
	LifeModifierSkeleton LifeModifier = "skeleton"
	LifeModifierVampire  LifeModifier = "vampire"
	LifeModifierZombie   LifeModifier = "zombie"
)

// AttackEffect modifies how an attack lands.
type AttackEffect string

const (
	AttackEffectAcidic   AttackEffect = "acidic"
	AttackEffectCrushing AttackEffect = "crushing"
	AttackEffectSharp    AttackEffect = "sharp"
	AttackEffectToxic    AttackEffect = "toxic"
)

// Material an object is made of.
type Material string

const (
	MaterialBone    Material = "bone"
	MaterialCeramic Material = "ceramic"
	MaterialCotton  Material = "cotton"
	MaterialFur     Material = "fur"
	MaterialGold    Material = "gold"
	MaterialHide    Material = "hide"
	MaterialIron    Material = "iron"
	MaterialLeather Material = "leather"
	MaterialLinen   Material = "linen"
	MaterialSilk    Material = "silk"
	MaterialSteel   Material = "steel"
	MaterialStone   Material = "stone"
	MaterialWood    Material = "wood"
	MaterialWool    Material = "wool"
)

// ItemType is the kind of a weapon or wearable.
type ItemType string

// Weapons.
const (
	ItemBuckler      ItemType = "buckler"
	ItemClub         ItemType = "club"
	ItemDagger       ItemType = "dagger"
	ItemDirk         ItemType = "dirk"
	ItemGladiusSword ItemType = "gladius_sword"
	ItemGreatSword   ItemType = "great_sword"
	ItemHammer       ItemType = "hammer"
	ItemLongSword    ItemType = "long_sword"
	ItemMace         ItemType = "mace"
	ItemMorningstar  ItemType = "morningstar"
	ItemShortSword   ItemType = "short_sword"
	ItemWhip         ItemType = "whip"
)

// Wearables.
const (
	ItemBoots          ItemType = "boots"
	ItemBreastplate    ItemType = "breastplate"
	ItemCloak          ItemType = "cloak"
	ItemCrown          ItemType = "crown"
	ItemGloves         ItemType = "gloves"
	ItemLoinCloth      ItemType = "loin_cloth"
	ItemMask           ItemType = "mask"
	ItemPlateBoots     ItemType = "plate_boots"
	ItemPlateGauntlets ItemType = "plate_gauntlets"
	ItemPlateHelmet    ItemType = "plate_helmet"
	ItemShackles       ItemType = "shackles"
	ItemShirt          ItemType = "shirt"
	ItemTrousers       ItemType = "trousers"
	ItemVest           ItemType = "vest"
)

// ObjectTag classifies an item for rules and display.
type ObjectTag string

const (
	TagAccessory ObjectTag = "accessory"
	TagArmour    ObjectTag = "armour"
	TagBlade     ObjectTag = "blade"
	TagBlunt     ObjectTag = "blunt"
	TagClothing  ObjectTag = "clothing"
	TagRope      ObjectTag = "rope"
	TagShield    ObjectTag = "shield"
	TagWeapon    ObjectTag = "weapon"
	TagWearable  ObjectTag = "wearable"
)

// ObjectDescriptor is an adjective describing an object's condition.
type ObjectDescriptor string

const (
	DescriptorBroken     ObjectDescriptor = "broken"
	DescriptorChipped    ObjectDescriptor = "chipped"
	DescriptorCracked    ObjectDescriptor = "cracked"
	DescriptorDingy      ObjectDescriptor = "dingy"
	DescriptorDirty      ObjectDescriptor = "dirty"
	DescriptorMothEaten  ObjectDescriptor = "moth_eaten"
	DescriptorRusty      ObjectDescriptor = "rusty"
	DescriptorSetOf      ObjectDescriptor = "set_of"
	DescriptorShiny      ObjectDescriptor = "shiny"
	DescriptorSplintered ObjectDescriptor = "splintered"
	DescriptorStained    ObjectDescriptor = "stained"
	DescriptorTorn       ObjectDescriptor = "torn"
)

// LocationTag says where a carried item is.
type LocationTag string

const (
	LocationEquipped LocationTag = "equipped"
	LocationPacked   LocationTag = "packed"
	LocationHidden   LocationTag = "hidden"

	LocationAnkle    LocationTag = "ankle"
	LocationArm      LocationTag = "arm"
	LocationBack     LocationTag = "back"
	LocationBody     LocationTag = "body"
	LocationFeet     LocationTag = "feet"
	LocationHand     LocationTag = "hand"
	LocationHead     LocationTag = "head"
	LocationHip      LocationTag = "hip"
	LocationLeg      LocationTag = "leg"
	LocationShoulder LocationTag = "shoulder"
	LocationWaist    LocationTag = "waist"
	LocationWrist    LocationTag = "wrist"
)

// SpellName identifies a spell.
type SpellName string

const (
	SpellElectricBlast  SpellName = "electric_blast"
	SpellHeal           SpellName = "heal"
	SpellPhoenix        SpellName = "phoenix"
	SpellQuickHeal      SpellName = "quick_heal"
	SpellRagingFireball SpellName = "raging_fireball"
	SpellRetribution    SpellName = "retribution"
	SpellTinyShield     SpellName = "tiny_shield"
)

// FixtureType is the kind of a fixture.
type FixtureType string

const (
	FixtureBarrel       FixtureType = "barrel"
	FixtureBed          FixtureType = "bed"
	FixtureBench        FixtureType = "bench"
	FixtureBucket       FixtureType = "bucket"
	FixtureChair        FixtureType = "chair"
	FixtureChest        FixtureType = "chest"
	FixtureCoffin       FixtureType = "coffin"
	FixtureCot          FixtureType = "cot"
	FixtureCrate        FixtureType = "crate"
	FixturePillar       FixtureType = "pillar"
	FixtureSleepingRoll FixtureType = "sleeping_roll"
	FixtureStatue       FixtureType = "statue"
	FixtureTable        FixtureType = "table"
	FixtureWeaponRack   FixtureType = "weapon_rack"
)

// Size is a coarse size class.
type Size string

const (
	SizeTiny    Size = "tiny"
	SizeSmall   Size = "small"
	SizeAverage Size = "average"
	SizeLarge   Size = "large"
	SizeHuge    Size = "huge"
)

// GroupDescriptor introduces a group of fixtures or NPCs ("a gang of").
type GroupDescriptor string

const (
	GroupNone      GroupDescriptor = ""
	GroupA         GroupDescriptor = "a"
	GroupABunchOf  GroupDescriptor = "a_bunch_of"
	GroupACoupleOf GroupDescriptor = "a_couple_of"
	GroupAFew      GroupDescriptor = "a_few"
	GroupAGangOf   GroupDescriptor = "a_gang_of"
	GroupAGroupOf  GroupDescriptor = "a_group_of"
	GroupAn        GroupDescriptor = "an"
	GroupSome      GroupDescriptor = "some"
)

// FixturePositionDescriptor places a fixture group in the room.
type FixturePositionDescriptor string

const (
	FixtureAgainstTheWallIs       FixturePositionDescriptor = "against_the_wall_is"
	FixtureInTheCenterOfTheRoomIs FixturePositionDescriptor = "in_the_center_of_the_room_is"
	FixtureInTheCornerIs          FixturePositionDescriptor = "in_the_corner_is"
	FixtureIsAgainstTheWall       FixturePositionDescriptor = "is_against_the_wall"
	FixtureIsInTheCenterOfTheRoom FixturePositionDescriptor = "is_in_the_center_of_the_room"
	FixtureIsInTheCorner          FixturePositionDescriptor = "is_in_the_corner"
	FixtureIsOffToTheSide         FixturePositionDescriptor = "is_off_to_the_side"
	FixtureSitsAlongOneSide       FixturePositionDescriptor = "sits_along_one_side"
	FixtureStandsInTheBack        FixturePositionDescriptor = "stands_in_the_back"
)

// NpcPositionDescriptor places an NPC group in the room.
type NpcPositionDescriptor string

const (
	NpcAreGlaringAtYou                  NpcPositionDescriptor = "are_glaring_at_you"
	NpcAreGlaringAtYouFromNearby        NpcPositionDescriptor = "are_glaring_at_you_from_nearby"
	NpcAreInTheCorner                   NpcPositionDescriptor = "are_in_the_corner"
	NpcAreLeaningAgainstTheTable        NpcPositionDescriptor = "are_leaning_against_the_table"
	NpcAreLeaningOnACrate               NpcPositionDescriptor = "are_leaning_on_a_crate"
	NpcAreLoiteringAbout                NpcPositionDescriptor = "are_loitering_about"
	NpcAreLookingAtTheWeaponRack        NpcPositionDescriptor = "are_looking_at_the_weapon_rack"
	NpcAreSittingInChairs               NpcPositionDescriptor = "are_sitting_in_chairs"
	NpcAreStandingAround                NpcPositionDescriptor = "are_standing_around"
	NpcAreStandingOnTheTable            NpcPositionDescriptor = "are_standing_on_the_table"
	NpcAreCrouchedInTheCenterOfRoom     NpcPositionDescriptor = "are_crouched_in_the_center_of_room"
	NpcInCornerStands                   NpcPositionDescriptor = "in_corner_stands"
	NpcInTheCornerAre                   NpcPositionDescriptor = "in_the_corner_are"
	NpcIsCrouchedInTheCenterOfRoom      NpcPositionDescriptor = "is_crouched_in_the_center_of_room"
	NpcIsCrouchedOverChest              NpcPositionDescriptor = "is_crouched_over_chest"
	NpcIsGlaringAtYou                   NpcPositionDescriptor = "is_glaring_at_you"
	NpcIsGlaringAtYouFromNearby         NpcPositionDescriptor = "is_glaring_at_you_from_nearby"
	NpcIsLeaningAgainstTheTable         NpcPositionDescriptor = "is_leaning_against_the_table"
	NpcIsLeaningOnACrate                NpcPositionDescriptor = "is_leaning_on_a_crate"
	NpcIsLookingAtTheWeaponRack         NpcPositionDescriptor = "is_looking_at_the_weapon_rack"
	NpcIsRummagingThroughAChest         NpcPositionDescriptor = "is_rummaging_through_a_chest"
	NpcIsSittingAndDozingInCenterOfRoom NpcPositionDescriptor = "is_sitting_and_dozing_in_center_of_room"
	NpcIsSittingInAChair                NpcPositionDescriptor = "is_sitting_in_a_chair"
	NpcIsSleepingInACot                 NpcPositionDescriptor = "is_sleeping_in_a_cot"
	NpcIsSleepingInSleepingRoll         NpcPositionDescriptor = "is_sleeping_in_sleeping_roll"
	NpcIsSleepingInTheBed               NpcPositionDescriptor = "is_sleeping_in_the_bed"
	NpcIsStandingAround                 NpcPositionDescriptor = "is_standing_around"
	NpcIsStandingInABarrel              NpcPositionDescriptor = "is_standing_in_a_barrel"
	NpcIsStandingOnTheTable             NpcPositionDescriptor = "is_standing_on_the_table"
	NpcLeansAgainstTheTable             NpcPositionDescriptor = "leans_against_the_table"
	NpcSittingInAChairIs                NpcPositionDescriptor = "sitting_in_a_chair_is"
	NpcStandsOnTheTable                 NpcPositionDescriptor = "stands_on_the_table"
)

// RoomType is the kind of a room.
type RoomType string

const (
	RoomCave       RoomType = "cave"
	RoomCavern     RoomType = "cavern"
	RoomCemetery   RoomType = "cemetery"
	RoomEntryway   RoomType = "entryway"
	RoomGuardRoom  RoomType = "guard_room"
	RoomMausoleum  RoomType = "mausoleum"
	RoomPrisonCell RoomType = "prison_cell"
	RoomRoom       RoomType = "room"
	RoomTavernHall RoomType = "tavern_hall"
	RoomTempleHall RoomType = "temple_hall"
)

// RoomDescriptor is an adjective describing a room.
type RoomDescriptor string

const (
	RoomChilly   RoomDescriptor = "chilly"
	RoomDamp     RoomDescriptor = "damp"
	RoomDark     RoomDescriptor = "dark"
	RoomDimlyLit RoomDescriptor = "dimly_lit"
	RoomGrimy    RoomDescriptor = "grimy"
	RoomMusty    RoomDescriptor = "musty"
	RoomSmelly   RoomDescriptor = "smelly"
	RoomStuffy   RoomDescriptor = "stuffy"
)

// ExitType is the kind of passage an exit is.
type ExitType string

const (
	ExitDoor          ExitType = "door"
	ExitDoorway       ExitType = "doorway"
	ExitHoleInTheWall ExitType = "hole_in_the_wall"
	ExitOpening       ExitType = "opening"
	ExitStaircase     ExitType = "staircase"
)
