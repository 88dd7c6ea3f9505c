// Package resolve maps the names a player types to the ids of entities the
// player can see. Only what the player's view exposes can be named.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/engine/view"
	"github.com/nathoo/underworld/types"
)

// Candidate is one nameable entity in scope.
type Candidate struct {
	ID    string
	Label string
	Names []string
}

// AmbiguityError indicates multiple entities matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which %s? (%s) Try %q.", e.Name, names, e.Name+" 2")
}

// NotFoundError indicates no entity matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("you don't see %q here", e.Name)
}

// Pick resolves name against the candidates. A trailing number selects the
// nth match, counting from one, so "goblin 2" is the second goblin.
func Pick(name string, cands []Candidate) (Candidate, error) {
	query, nth := splitOrdinal(strings.ToLower(strings.TrimSpace(name)))

	var matches []Candidate
	for _, c := range cands {
		if c.ID == query || matchesName(c, query) {
			matches = append(matches, c)
		}
	}

	switch {
	case len(matches) == 0:
		return Candidate{}, &NotFoundError{Name: name}
	case nth > 0 && nth <= len(matches):
		return matches[nth-1], nil
	case nth > 0:
		return Candidate{}, &NotFoundError{Name: name}
	case len(matches) == 1:
		return matches[0], nil
	}
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.Label
	}
	return Candidate{}, &AmbiguityError{Name: query, Candidates: labels}
}

// splitOrdinal strips a trailing positive number from the query.
func splitOrdinal(query string) (string, int) {
	i := strings.LastIndexByte(query, ' ')
	if i < 0 {
		return query, 0
	}
	n, err := strconv.Atoi(query[i+1:])
	if err != nil || n < 1 {
		return query, 0
	}
	return strings.TrimSpace(query[:i]), n
}

// matchesName checks if any of a candidate's names matches the query.
// Supports exact match and word-based partial match: every word of the
// query must appear in the name, so "sword" and "long sword" both match
// "rusty long sword".
func matchesName(c Candidate, query string) bool {
	qwords := strings.Fields(query)
	if len(qwords) == 0 {
		return false
	}
	for _, name := range c.Names {
		name = strings.ToLower(name)
		if name == query {
			return true
		}
		words := map[string]bool{}
		for _, w := range strings.Fields(name) {
			words[w] = true
		}
		all := true
		for _, q := range qwords {
			if !words[q] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Npcs lists the NPCs of a room under the names the player knows them by.
// The dead can also be called a corpse or a body.
func Npcs(room *types.Room, know view.Knowledge, knowsAll bool) []Candidate {
	var out []Candidate
	for _, np := range room.NpcPositions {
		for _, npc := range np.NPCs {
			v := view.LookAtNpc(npc, know.Npcs[npc.Identifier.ID], knowsAll)
			names := []string{v.Noun(), "figure"}
			if v.Identifier.Name != nil && *v.Identifier.Name != "" {
				names = append(names, *v.Identifier.Name)
			}
			if state.IsDead(&npc.Character) {
				names = append(names, "corpse", "body", "dead "+v.Noun())
			}
			out = append(out, Candidate{ID: npc.Identifier.ID.String(), Label: v.String(), Names: names})
		}
	}
	return out
}

// Fixtures lists the fixtures of a room.
func Fixtures(room *types.Room, know view.Knowledge, knowsAll bool) []Candidate {
	var out []Candidate
	for _, fp := range room.FixturePositions {
		for _, f := range fp.Fixtures {
			v := view.LookAtFixture(f, know.Fixtures[f.Identifier.ID], knowsAll)
			out = append(out, Candidate{
				ID:    f.Identifier.ID.String(),
				Label: v.String(),
				Names: []string{v.String(), tables.FixtureName(f.FixtureType)},
			})
		}
	}
	return out
}

// Exits lists the ways out of a room.
func Exits(room *types.Room) []Candidate {
	var out []Candidate
	for _, e := range room.Exits {
		name := tables.ExitName(e.ExitType)
		names := []string{name}
		if e.Material != "" {
			names = append(names, tables.MaterialName(e.Material)+" "+name)
		}
		if e.ExitType == types.ExitStaircase {
			names = append(names, "stairs")
		}
		out = append(out, Candidate{ID: e.Identifier.ID.String(), Label: "the " + name, Names: names})
	}
	return out
}

// Items lists carried items.
func Items(equipment []types.CharacterItem) []Candidate {
	out := make([]Candidate, 0, len(equipment))
	for _, ci := range equipment {
		out = append(out, itemCandidate(ci.Item))
	}
	return out
}

// FixtureItems lists the items of a fixture the player could reach: the
// compartment's contents only once it has been found.
func FixtureItems(f *types.Fixture, k types.FixtureKnowledge, knowsAll bool) []Candidate {
	k.KnowsItems = true
	v := view.LookAtFixture(*f, k, knowsAll)
	out := make([]Candidate, 0, len(v.Items))
	for _, it := range v.Items {
		out = append(out, itemCandidate(it.Item))
	}
	return out
}

// Spells lists the spells a character remembers.
func Spells(memory types.SpellMemory) []Candidate {
	out := make([]Candidate, 0, len(memory.Spells))
	for _, ls := range memory.Spells {
		display := tables.SpellDisplayName(ls.Spell.Name)
		out = append(out, Candidate{
			ID:    ls.ID.String(),
			Label: display,
			Names: []string{display, string(ls.Spell.Name)},
		})
	}
	return out
}

func itemCandidate(item types.Item) Candidate {
	label := view.DescribeItem(item)
	return Candidate{
		ID:    item.Identifier.ID.String(),
		Label: label,
		Names: []string{label, tables.ItemName(item.ItemType)},
	}
}
