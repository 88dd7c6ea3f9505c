package tables

import "github.com/nathoo/underworld/types"

// IsWeapon reports whether t is a weapon kind.
func IsWeapon(t types.ItemType) bool {
	switch t {
	case types.ItemBuckler, types.ItemClub, types.ItemDagger, types.ItemDirk,
		types.ItemGladiusSword, types.ItemGreatSword, types.ItemHammer,
		types.ItemLongSword, types.ItemMace, types.ItemMorningstar,
		types.ItemShortSword, types.ItemWhip:
		return true
	}
	return false
}

// IsWearable reports whether t is a wearable kind.
func IsWearable(t types.ItemType) bool {
	switch t {
	case types.ItemBoots, types.ItemBreastplate, types.ItemCloak, types.ItemCrown,
		types.ItemGloves, types.ItemLoinCloth, types.ItemMask, types.ItemPlateBoots,
		types.ItemPlateGauntlets, types.ItemPlateHelmet, types.ItemShackles,
		types.ItemShirt, types.ItemTrousers, types.ItemVest:
		return true
	}
	return false
}

// ItemName is the display noun for an item kind.
func ItemName(t types.ItemType) string {
	switch t {
	case types.ItemBuckler:
		return "buckler"
	case types.ItemClub:
		return "club"
	case types.ItemDagger:
		return "dagger"
	case types.ItemDirk:
		return "dirk"
	case types.ItemGladiusSword:
		return "gladius"
	case types.ItemGreatSword:
		return "great sword"
	case types.ItemHammer:
		return "hammer"
	case types.ItemLongSword:
		return "long sword"
	case types.ItemMace:
		return "mace"
	case types.ItemMorningstar:
		return "morningstar"
	case types.ItemShortSword:
		return "short sword"
	case types.ItemWhip:
		return "whip"
	case types.ItemBoots:
		return "boots"
	case types.ItemBreastplate:
		return "armour"
	case types.ItemCloak:
		return "cloak"
	case types.ItemCrown:
		return "crown"
	case types.ItemGloves:
		return "gloves"
	case types.ItemLoinCloth:
		return "loin cloth"
	case types.ItemMask:
		return "mask"
	case types.ItemPlateBoots:
		return "plate boots"
	case types.ItemPlateGauntlets:
		return "plate gauntlets"
	case types.ItemPlateHelmet:
		return "plate helmet"
	case types.ItemShackles:
		return "shackles"
	case types.ItemShirt:
		return "shirt"
	case types.ItemTrousers:
		return "trousers"
	case types.ItemVest:
		return "vest"
	}
	panic(unknown("item name", t))
}

// Materials lists the materials an item kind may be built from.
func Materials(t types.ItemType) []types.Material {
	switch t {
	case types.ItemBuckler:
		return []types.Material{types.MaterialHide, types.MaterialIron, types.MaterialSteel, types.MaterialWood}
	case types.ItemClub:
		return []types.Material{types.MaterialBone, types.MaterialStone, types.MaterialWood}
	case types.ItemDagger:
		return []types.Material{types.MaterialBone, types.MaterialIron, types.MaterialSteel}
	case types.ItemDirk, types.ItemGladiusSword, types.ItemGreatSword,
		types.ItemLongSword, types.ItemMace, types.ItemMorningstar, types.ItemShortSword:
		return []types.Material{types.MaterialIron, types.MaterialSteel}
	case types.ItemHammer:
		return []types.Material{types.MaterialIron, types.MaterialSteel, types.MaterialStone, types.MaterialWood}
	case types.ItemWhip:
		return []types.Material{types.MaterialHide, types.MaterialLeather}
	case types.ItemBreastplate:
		return []types.Material{types.MaterialIron, types.MaterialLeather, types.MaterialSteel}
	case types.ItemMask:
		return []types.Material{types.MaterialBone, types.MaterialIron}
	case types.ItemCloak:
		return []types.Material{types.MaterialLinen, types.MaterialHide, types.MaterialWool}
	case types.ItemShirt:
		return []types.Material{types.MaterialWool, types.MaterialLinen, types.MaterialCotton, types.MaterialSilk}
	case types.ItemTrousers:
		return []types.Material{types.MaterialHide, types.MaterialLeather, types.MaterialWool, types.MaterialLinen}
	case types.ItemCrown:
		return []types.Material{types.MaterialBone, types.MaterialGold, types.MaterialStone}
	case types.ItemBoots:
		return []types.Material{types.MaterialHide, types.MaterialIron, types.MaterialLeather, types.MaterialSteel}
	case types.ItemGloves:
		return []types.Material{types.MaterialHide, types.MaterialLeather}
	case types.ItemLoinCloth:
		return []types.Material{
			types.MaterialHide, types.MaterialWool, types.MaterialLeather,
			types.MaterialSilk, types.MaterialLinen, types.MaterialCotton,
		}
	case types.ItemPlateBoots, types.ItemPlateGauntlets, types.ItemPlateHelmet:
		return []types.Material{types.MaterialIron, types.MaterialSteel}
	case types.ItemShackles:
		return []types.Material{types.MaterialIron, types.MaterialLeather, types.MaterialSteel}
	case types.ItemVest:
		return []types.Material{types.MaterialFur, types.MaterialHide, types.MaterialLeather}
	}
	panic(unknown("materials", t))
}

// Tags classifies an item kind.
func Tags(t types.ItemType) []types.ObjectTag {
	switch t {
	case types.ItemBuckler:
		return []types.ObjectTag{types.TagShield, types.TagWeapon}
	case types.ItemClub, types.ItemHammer, types.ItemMace, types.ItemMorningstar:
		return []types.ObjectTag{types.TagBlunt, types.TagWeapon}
	case types.ItemDagger, types.ItemDirk, types.ItemGladiusSword, types.ItemGreatSword,
		types.ItemLongSword, types.ItemShortSword:
		return []types.ObjectTag{types.TagBlade, types.TagWeapon}
	case types.ItemWhip:
		return []types.ObjectTag{types.TagRope, types.TagWeapon}
	case types.ItemBreastplate, types.ItemBoots, types.ItemPlateBoots,
		types.ItemPlateGauntlets, types.ItemPlateHelmet:
		return []types.ObjectTag{types.TagArmour, types.TagWearable}
	case types.ItemMask, types.ItemCrown:
		return []types.ObjectTag{types.TagAccessory, types.TagWearable}
	case types.ItemCloak, types.ItemShirt, types.ItemTrousers, types.ItemGloves,
		types.ItemLoinCloth, types.ItemVest:
		return []types.ObjectTag{types.TagClothing, types.TagWearable}
	case types.ItemShackles:
		return []types.ObjectTag{types.TagAccessory, types.TagRope, types.TagWearable}
	}
	panic(unknown("tags", t))
}

// PossibleLocations lists every location tag an item kind may carry.
// Hidden is only legal for blades small enough to conceal.
func PossibleLocations(t types.ItemType) []types.LocationTag {
	base := []types.LocationTag{types.LocationEquipped, types.LocationPacked}
	switch t {
	case types.ItemDagger, types.ItemDirk:
		return append(base, types.LocationHidden, types.LocationHand, types.LocationHip, types.LocationAnkle)
	case types.ItemBuckler,
		types.ItemClub, types.ItemGladiusSword, types.ItemGreatSword, types.ItemHammer,
		types.ItemLongSword, types.ItemMace, types.ItemMorningstar, types.ItemShortSword,
		types.ItemWhip,
		types.ItemBoots, types.ItemBreastplate, types.ItemCloak, types.ItemCrown,
		types.ItemGloves, types.ItemLoinCloth, types.ItemMask, types.ItemPlateBoots,
		types.ItemPlateGauntlets, types.ItemPlateHelmet, types.ItemShackles,
		types.ItemShirt, types.ItemTrousers, types.ItemVest:
		return append(base, BodyLocations(t)...)
	}
	panic(unknown("possible locations", t))
}

// BodyLocations lists the body slots an equipped item of kind t occupies.
func BodyLocations(t types.ItemType) []types.LocationTag {
	switch t {
	case types.ItemBuckler:
		return []types.LocationTag{types.LocationArm}
	case types.ItemClub, types.ItemMace, types.ItemWhip,
		types.ItemGladiusSword, types.ItemLongSword, types.ItemShortSword:
		return []types.LocationTag{types.LocationHand, types.LocationHip}
	case types.ItemGreatSword, types.ItemHammer, types.ItemMorningstar:
		return []types.LocationTag{types.LocationHand, types.LocationBack}
	case types.ItemDagger, types.ItemDirk:
		return []types.LocationTag{types.LocationHand, types.LocationHip, types.LocationAnkle}
	case types.ItemBreastplate, types.ItemShirt, types.ItemVest:
		return []types.LocationTag{types.LocationBody}
	case types.ItemMask, types.ItemCrown, types.ItemPlateHelmet:
		return []types.LocationTag{types.LocationHead}
	case types.ItemCloak:
		return []types.LocationTag{types.LocationShoulder}
	case types.ItemTrousers:
		return []types.LocationTag{types.LocationLeg}
	case types.ItemBoots, types.ItemPlateBoots:
		return []types.LocationTag{types.LocationFeet}
	case types.ItemGloves, types.ItemPlateGauntlets:
		return []types.LocationTag{types.LocationHand}
	case types.ItemLoinCloth:
		return []types.LocationTag{types.LocationWaist}
	case types.ItemShackles:
		return []types.LocationTag{types.LocationAnkle, types.LocationWrist}
	}
	panic(unknown("body locations", t))
}

// WeaponAttack is the default attack profile of a weapon kind.
func WeaponAttack(t types.ItemType) types.Attack {
	crushing := []types.AttackEffect{types.AttackEffectCrushing}
	sharp := []types.AttackEffect{types.AttackEffectSharp}
	switch t {
	case types.ItemBuckler:
		return types.Attack{NumRolls: 1, Modifier: -1, Effects: crushing}
	case types.ItemClub:
		return types.Attack{NumRolls: 1, Modifier: 0, Effects: crushing}
	case types.ItemDagger:
		return types.Attack{NumRolls: 1, Modifier: 0, Effects: sharp}
	case types.ItemDirk:
		return types.Attack{NumRolls: 1, Modifier: 1, Effects: sharp}
	case types.ItemGladiusSword:
		return types.Attack{NumRolls: 2, Modifier: 0, Effects: sharp}
	case types.ItemGreatSword:
		return types.Attack{NumRolls: 3, Modifier: 0, Effects: sharp}
	case types.ItemHammer:
		return types.Attack{NumRolls: 1, Modifier: 1, Effects: crushing}
	case types.ItemLongSword:
		return types.Attack{NumRolls: 2, Modifier: 1, Effects: sharp}
	case types.ItemMace:
		return types.Attack{NumRolls: 2, Modifier: 0, Effects: crushing}
	case types.ItemMorningstar:
		return types.Attack{NumRolls: 2, Modifier: 1, Effects: crushing}
	case types.ItemShortSword:
		return types.Attack{NumRolls: 1, Modifier: 2, Effects: sharp}
	case types.ItemWhip:
		return types.Attack{NumRolls: 1, Modifier: 0}
	}
	panic(unknown("weapon attack", t))
}

// DamageResistance is the default defense of an item kind. Zero means the
// item carries no defense profile.
func DamageResistance(t types.ItemType) int {
	switch t {
	case types.ItemBreastplate:
		return 4
	case types.ItemBuckler, types.ItemPlateHelmet:
		return 2
	case types.ItemBoots, types.ItemCloak, types.ItemMask, types.ItemPlateBoots,
		types.ItemPlateGauntlets, types.ItemVest:
		return 1
	case types.ItemClub, types.ItemDagger, types.ItemDirk, types.ItemGladiusSword,
		types.ItemGreatSword, types.ItemHammer, types.ItemLongSword, types.ItemMace,
		types.ItemMorningstar, types.ItemShortSword, types.ItemWhip,
		types.ItemCrown, types.ItemGloves, types.ItemLoinCloth, types.ItemShackles,
		types.ItemShirt, types.ItemTrousers:
		return 0
	}
	panic(unknown("damage resistance", t))
}

// IsMultiple reports whether a wearable comes as a pair or set
// ("a pair of boots").
func IsMultiple(t types.ItemType) bool {
	switch t {
	case types.ItemBreastplate, types.ItemTrousers, types.ItemBoots, types.ItemGloves,
		types.ItemPlateBoots, types.ItemPlateGauntlets:
		return true
	case types.ItemCloak, types.ItemShirt, types.ItemPlateHelmet, types.ItemShackles,
		types.ItemMask, types.ItemCrown, types.ItemLoinCloth, types.ItemVest:
		return false
	}
	if IsWeapon(t) {
		return false
	}
	panic(unknown("is multiple", t))
}

// NecessaryDescriptors are descriptors every item of kind t carries.
func NecessaryDescriptors(t types.ItemType) []types.ObjectDescriptor {
	if t == types.ItemShackles {
		return []types.ObjectDescriptor{types.DescriptorSetOf}
	}
	if IsWeapon(t) || IsWearable(t) {
		return nil
	}
	panic(unknown("necessary descriptors", t))
}

func isLowerBody(t types.ItemType) bool {
	return t == types.ItemLoinCloth || t == types.ItemTrousers
}

func isHeadgear(t types.ItemType) bool {
	return t == types.ItemCrown || t == types.ItemMask || t == types.ItemPlateHelmet
}

func isUpperBody(t types.ItemType) bool {
	return t == types.ItemBreastplate || t == types.ItemShirt || t == types.ItemVest
}

func isFootwear(t types.ItemType) bool {
	return t == types.ItemBoots || t == types.ItemPlateBoots
}

func isForHands(t types.ItemType) bool {
	return t == types.ItemGloves || t == types.ItemPlateGauntlets || t == types.ItemShackles
}

// UnableToBeUsedWith reports whether wearable a rules out wearing b at the
// same time. The relation is not symmetric as stated; use Conflicts.
func UnableToBeUsedWith(a, b types.ItemType) bool {
	switch a {
	case types.ItemBreastplate, types.ItemShirt, types.ItemVest:
		return isUpperBody(b)
	case types.ItemBoots, types.ItemPlateBoots:
		return isFootwear(b)
	case types.ItemCloak:
		return b == types.ItemCloak
	case types.ItemCrown, types.ItemMask, types.ItemPlateHelmet:
		return isHeadgear(b)
	case types.ItemGloves, types.ItemPlateGauntlets, types.ItemShackles:
		return isForHands(b)
	case types.ItemLoinCloth, types.ItemTrousers:
		return isLowerBody(b)
	}
	if IsWeapon(a) {
		return false
	}
	panic(unknown("unable to be used with", a))
}

// Conflicts applies UnableToBeUsedWith in both orderings.
func Conflicts(a, b types.ItemType) bool {
	return UnableToBeUsedWith(a, b) || UnableToBeUsedWith(b, a)
}

// MaterialName is the display adjective for a material.
func MaterialName(m types.Material) string {
	switch m {
	case types.MaterialBone, types.MaterialCeramic, types.MaterialCotton,
		types.MaterialFur, types.MaterialGold, types.MaterialHide, types.MaterialIron,
		types.MaterialLeather, types.MaterialLinen, types.MaterialSilk,
		types.MaterialSteel, types.MaterialStone, types.MaterialWood, types.MaterialWool:
		return string(m)
	}
	panic(unknown("material name", m))
}

// MaterialDescriptors lists the condition descriptors that make sense for
// an object built from m. Rust only shows on metals, moths only eat cloth.
func MaterialDescriptors(m types.Material) []types.ObjectDescriptor {
	switch m {
	case types.MaterialBone:
		return []types.ObjectDescriptor{types.DescriptorChipped, types.DescriptorCracked, types.DescriptorStained}
	case types.MaterialCeramic:
		return []types.ObjectDescriptor{types.DescriptorBroken, types.DescriptorChipped, types.DescriptorCracked}
	case types.MaterialCotton, types.MaterialLinen, types.MaterialWool:
		return []types.ObjectDescriptor{
			types.DescriptorDingy, types.DescriptorDirty, types.DescriptorMothEaten,
			types.DescriptorStained, types.DescriptorTorn,
		}
	case types.MaterialSilk:
		return []types.ObjectDescriptor{types.DescriptorDingy, types.DescriptorStained, types.DescriptorTorn}
	case types.MaterialFur, types.MaterialHide:
		return []types.ObjectDescriptor{types.DescriptorDirty, types.DescriptorStained, types.DescriptorTorn}
	case types.MaterialLeather:
		return []types.ObjectDescriptor{
			types.DescriptorCracked, types.DescriptorDirty, types.DescriptorStained, types.DescriptorTorn,
		}
	case types.MaterialGold:
		return []types.ObjectDescriptor{types.DescriptorDirty, types.DescriptorShiny}
	case types.MaterialIron:
		return []types.ObjectDescriptor{types.DescriptorDirty, types.DescriptorRusty}
	case types.MaterialSteel:
		return []types.ObjectDescriptor{types.DescriptorRusty, types.DescriptorShiny}
	case types.MaterialStone:
		return []types.ObjectDescriptor{types.DescriptorChipped, types.DescriptorCracked, types.DescriptorDirty}
	case types.MaterialWood:
		return []types.ObjectDescriptor{types.DescriptorBroken, types.DescriptorCracked, types.DescriptorSplintered}
	}
	panic(unknown("material descriptors", m))
}

// DescriptorText is the display form of an object descriptor.
func DescriptorText(d types.ObjectDescriptor) string {
	switch d {
	case types.DescriptorMothEaten:
		return "moth-eaten"
	case types.DescriptorSetOf:
		return "set of"
	case types.DescriptorBroken, types.DescriptorChipped, types.DescriptorCracked,
		types.DescriptorDingy, types.DescriptorDirty, types.DescriptorRusty,
		types.DescriptorShiny, types.DescriptorSplintered, types.DescriptorStained,
		types.DescriptorTorn:
		return string(d)
	}
	panic(unknown("descriptor text", d))
}
