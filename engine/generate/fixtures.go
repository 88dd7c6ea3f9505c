package generate

import (
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// FixturePrototype generates one fixture kind and whatever it holds.
type FixturePrototype struct {
	FixtureType             types.FixtureType
	Materials               []types.Material
	NumDescriptors          Range
	HiddenCompartmentChance int
	Items                   []Generator[types.Item]
	NumItems                Range
	HiddenItemChance        int
}

// Generate builds a fixture. Items are only placed in fixtures that can hold
// them, and only go in a hidden compartment the fixture actually has.
func (p FixturePrototype) Generate(r *rng.RNG) types.Fixture {
	ft := p.FixtureType
	f := types.Fixture{
		Identifier:  types.Identifier{ID: r.NewID()},
		FixtureType: ft,
		Size:        rng.Pick(r, tables.FixtureSizes(ft)),
	}
	f.Material = pickMaterial(r, string(ft), tables.FixtureMaterials(ft), p.Materials)
	f.Descriptors = pickN(r, tables.MaterialDescriptors(f.Material), p.NumDescriptors.Roll(r))

	if !tables.CanHoldItems(ft) {
		return f
	}
	f.HasHiddenCompartment = tables.CanHaveHiddenCompartment(ft) && chance(r, p.HiddenCompartmentChance)

	if len(p.Items) == 0 {
		return f
	}
	n := p.NumItems.Roll(r)
	for i := 0; i < n; i++ {
		item := rng.Pick(r, p.Items).Generate(r)
		f.Items = append(f.Items, types.FixtureItem{
			Item:                  item,
			IsInHiddenCompartment: f.HasHiddenCompartment && chance(r, p.HiddenItemChance),
		})
	}
	return f
}
