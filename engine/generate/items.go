package generate

import (
	"fmt"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// WeaponPrototype generates one weapon kind.
type WeaponPrototype struct {
	ItemType       types.ItemType
	Materials      []types.Material // narrows the kind's legal materials
	NumDescriptors Range
	Attack         *types.Attack // overrides the kind's default profile
}

// Generate builds a weapon.
func (p WeaponPrototype) Generate(r *rng.RNG) types.Item {
	item := newItem(r, p.ItemType, p.Materials, p.NumDescriptors)
	attack := tables.WeaponAttack(p.ItemType)
	if p.Attack != nil {
		attack = *p.Attack
	}
	item.Attack = &attack
	if dr := tables.DamageResistance(p.ItemType); dr > 0 {
		item.Defense = &types.Defense{DamageResistance: dr}
	}
	return item
}

// WearablePrototype generates one wearable kind.
type WearablePrototype struct {
	ItemType       types.ItemType
	Materials      []types.Material
	NumDescriptors Range
	Defense        *types.Defense
}

// Generate builds a wearable.
func (p WearablePrototype) Generate(r *rng.RNG) types.Item {
	item := newItem(r, p.ItemType, p.Materials, p.NumDescriptors)
	if p.Defense != nil {
		d := *p.Defense
		item.Defense = &d
	} else if dr := tables.DamageResistance(p.ItemType); dr > 0 {
		item.Defense = &types.Defense{DamageResistance: dr}
	}
	return item
}

func newItem(r *rng.RNG, t types.ItemType, materials []types.Material, numDescriptors Range) types.Item {
	material := pickMaterial(r, string(t), tables.Materials(t), materials)

	descriptors := append([]types.ObjectDescriptor(nil), tables.NecessaryDescriptors(t)...)
	descriptors = append(descriptors, pickN(r, tables.MaterialDescriptors(material), numDescriptors.Roll(r))...)

	return types.Item{
		Identifier:  types.Identifier{ID: r.NewID()},
		ItemType:    t,
		Tags:        tables.Tags(t),
		Descriptors: descriptors,
		Material:    material,
	}
}

// pickMaterial chooses from the kind's legal materials, narrowed by wanted.
// The tables are static, so an empty choice is a programming error.
func pickMaterial(r *rng.RNG, kind string, allowed, wanted []types.Material) types.Material {
	candidates := restrict(allowed, wanted)
	if len(candidates) == 0 {
		panic(fmt.Sprintf("generate: no legal material for %s among %v", kind, wanted))
	}
	return rng.Pick(r, candidates)
}
