package tables

import "github.com/nathoo/underworld/types"

// SpeciesName is the singular display noun for a species.
func SpeciesName(s types.Species) string {
	switch s {
	case types.SpeciesBugbear, types.SpeciesFrogkin, types.SpeciesGoblin, types.SpeciesHuman,
		types.SpeciesKobold, types.SpeciesLizardkin, types.SpeciesOgre, types.SpeciesOrc,
		types.SpeciesRockoblin, types.SpeciesShadow:
		return string(s)
	}
	panic(unknown("species name", s))
}

// SpeciesPlural is the plural display noun for a species.
func SpeciesPlural(s types.Species) string {
	switch s {
	case types.SpeciesFrogkin, types.SpeciesLizardkin:
		return string(s)
	case types.SpeciesBugbear, types.SpeciesGoblin, types.SpeciesHuman, types.SpeciesKobold,
		types.SpeciesOgre, types.SpeciesOrc, types.SpeciesRockoblin, types.SpeciesShadow:
		return string(s) + "s"
	}
	panic(unknown("species plural", s))
}

// DescribeSpeciesCount renders count characters of species s. An empty
// species stands for one the observer cannot make out.
func DescribeSpeciesCount(s types.Species, count int) string {
	if s == "" {
		if count == 1 {
			return "figure"
		}
		return "figures"
	}
	if count == 1 {
		return SpeciesName(s)
	}
	return SpeciesPlural(s)
}

// SpeciesHealth is the inclusive max-health range a species is generated with.
func SpeciesHealth(s types.Species) (lo, hi int) {
	switch s {
	case types.SpeciesBugbear:
		return 12, 20
	case types.SpeciesFrogkin, types.SpeciesGoblin:
		return 6, 10
	case types.SpeciesHuman, types.SpeciesLizardkin:
		return 8, 14
	case types.SpeciesKobold:
		return 4, 8
	case types.SpeciesOgre:
		return 18, 28
	case types.SpeciesOrc:
		return 10, 16
	case types.SpeciesRockoblin:
		return 8, 12
	case types.SpeciesShadow:
		return 6, 12
	}
	panic(unknown("species health", s))
}

// SpeciesHeight is the typical size class of a species.
func SpeciesHeight(s types.Species) types.Size {
	switch s {
	case types.SpeciesBugbear:
		return types.SizeLarge
	case types.SpeciesOgre:
		return types.SizeHuge
	case types.SpeciesFrogkin, types.SpeciesGoblin, types.SpeciesKobold, types.SpeciesRockoblin:
		return types.SizeSmall
	case types.SpeciesHuman, types.SpeciesLizardkin, types.SpeciesOrc, types.SpeciesShadow:
		return types.SizeAverage
	}
	panic(unknown("species height", s))
}

// LifeModifierNoun is the noun for an undead kind ("zombie").
func LifeModifierNoun(m types.LifeModifier) string {
	switch m {
	case types.LifeModifierSkeleton, types.LifeModifierVampire, types.LifeModifierZombie:
		return string(m)
	}
	panic(unknown("life modifier noun", m))
}

// LifeModifierAdjective is the adjective for an undead kind ("zombified").
func LifeModifierAdjective(m types.LifeModifier) string {
	switch m {
	case types.LifeModifierSkeleton:
		return "skeletal"
	case types.LifeModifierVampire:
		return "vampiric"
	case types.LifeModifierZombie:
		return "zombified"
	}
	panic(unknown("life modifier adjective", m))
}

// SpellFamily groups spells by the kind of effect they resolve to.
type SpellFamily int

const (
	FamilyDamage SpellFamily = iota
	FamilyHealing
	FamilyResurrection
	FamilyRetribution
	FamilyShield
)

// Family returns the effect family of a spell.
func Family(s types.SpellName) SpellFamily {
	switch s {
	case types.SpellElectricBlast, types.SpellRagingFireball:
		return FamilyDamage
	case types.SpellHeal, types.SpellQuickHeal:
		return FamilyHealing
	case types.SpellPhoenix:
		return FamilyResurrection
	case types.SpellRetribution:
		return FamilyRetribution
	case types.SpellTinyShield:
		return FamilyShield
	}
	panic(unknown("spell family", s))
}

// SpellDamage is the default damage or healing amount of a spell.
func SpellDamage(s types.SpellName) int {
	switch s {
	case types.SpellElectricBlast:
		return 12
	case types.SpellRagingFireball:
		return 16
	case types.SpellHeal:
		return 10
	case types.SpellQuickHeal:
		return 5
	case types.SpellPhoenix, types.SpellRetribution, types.SpellTinyShield:
		return 0
	}
	panic(unknown("spell damage", s))
}

// SpellUses is how many times a freshly learned spell can be cast.
func SpellUses(s types.SpellName) int {
	switch s {
	case types.SpellRagingFireball, types.SpellPhoenix, types.SpellRetribution:
		return 1
	case types.SpellElectricBlast, types.SpellHeal, types.SpellTinyShield:
		return 2
	case types.SpellQuickHeal:
		return 3
	}
	panic(unknown("spell uses", s))
}

// SpellDisplayName is the display form of a spell name.
func SpellDisplayName(s types.SpellName) string {
	switch s {
	case types.SpellElectricBlast:
		return "electric blast"
	case types.SpellHeal:
		return "heal"
	case types.SpellPhoenix:
		return "phoenix"
	case types.SpellQuickHeal:
		return "quick heal"
	case types.SpellRagingFireball:
		return "raging fireball"
	case types.SpellRetribution:
		return "retribution"
	case types.SpellTinyShield:
		return "tiny shield"
	}
	panic(unknown("spell display name", s))
}

// DefaultRetribution is the aura attack used when a retribution spell
// carries no attack profile of its own.
func DefaultRetribution() types.Attack {
	return types.Attack{NumRolls: 2, Modifier: 0}
}

// DefaultShield is the aura defense used when a shield spell carries no
// defense profile of its own.
func DefaultShield() types.Defense {
	return types.Defense{DamageResistance: 6}
}
