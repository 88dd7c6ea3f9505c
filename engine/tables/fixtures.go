package tables

import "github.com/nathoo/underworld/types"

// FixtureName is the singular display noun for a fixture type.
func FixtureName(f types.FixtureType) string {
	switch f {
	case types.FixtureSleepingRoll:
		return "sleeping roll"
	case types.FixtureWeaponRack:
		return "weapon rack"
	case types.FixtureBarrel, types.FixtureBed, types.FixtureBench, types.FixtureBucket,
		types.FixtureChair, types.FixtureChest, types.FixtureCoffin, types.FixtureCot,
		types.FixtureCrate, types.FixturePillar, types.FixtureStatue, types.FixtureTable:
		return string(f)
	}
	panic(unknown("fixture name", f))
}

// FixturePlural is the plural display noun for a fixture type.
func FixturePlural(f types.FixtureType) string {
	switch f {
	case types.FixtureBench:
		return "benches"
	case types.FixtureSleepingRoll:
		return "sleeping rolls"
	case types.FixtureWeaponRack:
		return "weapon racks"
	case types.FixtureBarrel, types.FixtureBed, types.FixtureBucket, types.FixtureChair,
		types.FixtureChest, types.FixtureCoffin, types.FixtureCot, types.FixtureCrate,
		types.FixturePillar, types.FixtureStatue, types.FixtureTable:
		return string(f) + "s"
	}
	panic(unknown("fixture plural", f))
}

// DescribeFixtureCount renders count fixtures of type f ("table", "chairs").
func DescribeFixtureCount(f types.FixtureType, count int) string {
	if count == 1 {
		return FixtureName(f)
	}
	return FixturePlural(f)
}

// FixtureMaterials lists the materials a fixture type may be built from.
func FixtureMaterials(f types.FixtureType) []types.Material {
	switch f {
	case types.FixtureBarrel, types.FixtureCrate, types.FixtureBed:
		return []types.Material{types.MaterialWood}
	case types.FixtureBench, types.FixtureTable:
		return []types.Material{types.MaterialStone, types.MaterialWood}
	case types.FixtureBucket, types.FixtureWeaponRack:
		return []types.Material{types.MaterialIron, types.MaterialWood}
	case types.FixtureChair:
		return []types.Material{types.MaterialBone, types.MaterialWood}
	case types.FixtureChest:
		return []types.Material{types.MaterialIron, types.MaterialSteel, types.MaterialWood}
	case types.FixtureCoffin:
		return []types.Material{types.MaterialBone, types.MaterialStone, types.MaterialWood}
	case types.FixtureCot:
		return []types.Material{types.MaterialLinen, types.MaterialWood}
	case types.FixturePillar:
		return []types.Material{types.MaterialStone, types.MaterialWood}
	case types.FixtureSleepingRoll:
		return []types.Material{
			types.MaterialCotton, types.MaterialFur, types.MaterialHide,
			types.MaterialLinen, types.MaterialWool,
		}
	case types.FixtureStatue:
		return []types.Material{types.MaterialBone, types.MaterialCeramic, types.MaterialGold, types.MaterialStone}
	}
	panic(unknown("fixture materials", f))
}

// FixtureSizes lists the sizes a fixture type comes in.
func FixtureSizes(f types.FixtureType) []types.Size {
	switch f {
	case types.FixtureBucket:
		return []types.Size{types.SizeTiny, types.SizeSmall}
	case types.FixtureChair:
		return []types.Size{types.SizeSmall, types.SizeAverage}
	case types.FixtureChest, types.FixtureCrate:
		return []types.Size{types.SizeSmall, types.SizeAverage, types.SizeLarge}
	case types.FixtureBarrel, types.FixtureBench, types.FixtureCoffin, types.FixtureTable,
		types.FixtureWeaponRack:
		return []types.Size{types.SizeAverage, types.SizeLarge}
	case types.FixtureBed:
		return []types.Size{types.SizeAverage, types.SizeLarge, types.SizeHuge}
	case types.FixtureCot, types.FixtureSleepingRoll:
		return []types.Size{types.SizeAverage}
	case types.FixturePillar:
		return []types.Size{types.SizeLarge, types.SizeHuge}
	case types.FixtureStatue:
		return []types.Size{types.SizeAverage, types.SizeLarge, types.SizeHuge}
	}
	panic(unknown("fixture sizes", f))
}

// CanHoldItems reports whether items can be stored in or on a fixture type.
func CanHoldItems(f types.FixtureType) bool {
	switch f {
	case types.FixtureBarrel, types.FixtureBed, types.FixtureBucket, types.FixtureChest,
		types.FixtureCoffin, types.FixtureCrate, types.FixtureTable, types.FixtureWeaponRack:
		return true
	case types.FixtureBench, types.FixtureChair, types.FixtureCot, types.FixturePillar,
		types.FixtureSleepingRoll, types.FixtureStatue:
		return false
	}
	panic(unknown("can hold items", f))
}

// CanHaveHiddenCompartment reports whether a fixture type may be generated
// with a hidden compartment.
func CanHaveHiddenCompartment(f types.FixtureType) bool {
	switch f {
	case types.FixtureBed, types.FixtureChest, types.FixtureCoffin, types.FixtureCrate,
		types.FixtureTable:
		return true
	case types.FixtureBarrel, types.FixtureBench, types.FixtureBucket, types.FixtureChair,
		types.FixtureCot, types.FixturePillar, types.FixtureSleepingRoll, types.FixtureStatue,
		types.FixtureWeaponRack:
		return false
	}
	panic(unknown("can have hidden compartment", f))
}

// SizeName is the display adjective for a size class. Average renders empty.
func SizeName(s types.Size) string {
	switch s {
	case types.SizeAverage:
		return ""
	case types.SizeTiny, types.SizeSmall, types.SizeLarge, types.SizeHuge:
		return string(s)
	}
	panic(unknown("size name", s))
}
