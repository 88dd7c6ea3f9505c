package view

import (
	"strings"

	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// FixtureView is a fixture as an observer sees it. Items are only listed
// once the fixture has been looked into, and the hidden compartment only
// once it has been found.
type FixtureView struct {
	Identifier             IdentifierView           `json:"identifier"`
	FixtureType            types.FixtureType        `json:"fixture_type"`
	Material               types.Material           `json:"material,omitempty"`
	Size                   types.Size               `json:"size"`
	Descriptors            []types.ObjectDescriptor `json:"descriptors,omitempty"`
	Items                  []types.FixtureItem      `json:"items,omitempty"`
	ItemsKnown             bool                     `json:"items_known"`
	HasHiddenCompartment   *bool                    `json:"has_hidden_compartment,omitempty"`
	HiddenCompartmentKnown bool                     `json:"hidden_compartment_known"`
}

// LookAtFixture projects a fixture through what the observer knows of it.
func LookAtFixture(f types.Fixture, k types.FixtureKnowledge, knowsAll bool) FixtureView {
	if knowsAll {
		k = types.FixtureKnowledge{KnowsItems: true, KnowsHiddenCompartment: true}
	}

	v := FixtureView{
		Identifier:  identifier(f.Identifier, true),
		FixtureType: f.FixtureType,
		Material:    f.Material,
		Size:        f.Size,
		Descriptors: f.Descriptors,
	}
	if k.KnowsHiddenCompartment {
		has := f.HasHiddenCompartment
		v.HasHiddenCompartment = &has
		v.HiddenCompartmentKnown = true
	}
	if k.KnowsItems {
		v.ItemsKnown = true
		for _, it := range f.Items {
			if it.IsInHiddenCompartment && !k.KnowsHiddenCompartment {
				continue
			}
			v.Items = append(v.Items, it)
		}
	}
	return v
}

// String describes the fixture itself: "a small wood chest".
func (v FixtureView) String() string {
	var words []string
	for _, d := range v.Descriptors {
		words = append(words, tables.DescriptorText(d))
	}
	if v.Size != "" {
		words = append(words, tables.SizeName(v.Size))
	}
	if v.Material != "" {
		words = append(words, tables.MaterialName(v.Material))
	}
	words = append(words, tables.FixtureName(v.FixtureType))
	return article(joinNonEmpty(words...))
}

// FixturePositionView is a group of fixtures placed together.
type FixturePositionView struct {
	GroupDescriptor     types.GroupDescriptor             `json:"group_descriptor,omitempty"`
	Fixtures            []FixtureView                     `json:"fixtures"`
	PositionDescriptors []types.FixturePositionDescriptor `json:"position_descriptors,omitempty"`
}

// LookAtFixturePosition projects every fixture of a position.
func LookAtFixturePosition(fp types.FixturePosition, know Knowledge, knowsAll bool) FixturePositionView {
	v := FixturePositionView{
		GroupDescriptor:     fp.GroupDescriptor,
		PositionDescriptors: fp.PositionDescriptors,
	}
	for _, f := range fp.Fixtures {
		v.Fixtures = append(v.Fixtures, LookAtFixture(f, know.Fixtures[f.Identifier.ID], knowsAll))
	}
	return v
}

// String composes the position: "a table and chairs is in the corner".
func (v FixturePositionView) String() string {
	var pre, post []string
	for _, d := range v.PositionDescriptors {
		if tables.FixturePositionPlacement(d) == tables.Pre {
			pre = append(pre, tables.FixturePositionText(d))
		} else {
			post = append(post, tables.FixturePositionText(d))
		}
	}

	kinds := make([]types.FixtureType, len(v.Fixtures))
	for i, f := range v.Fixtures {
		kinds[i] = f.FixtureType
	}
	var nouns []string
	for _, c := range frequencies(kinds) {
		nouns = append(nouns, tables.DescribeFixtureCount(c.key, c.n))
	}

	group := ""
	if v.GroupDescriptor != types.GroupNone {
		group = tables.GroupText(v.GroupDescriptor)
	}
	return joinNonEmpty(
		strings.Join(pre, " "),
		group,
		strings.Join(nouns, " and "),
		strings.Join(post, " "),
	)
}

// DisplayAsSentence renders the position as a sentence.
func (v FixturePositionView) DisplayAsSentence() string {
	return DisplayAsSentence(v.String())
}
