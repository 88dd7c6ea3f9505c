// Package view projects entities into what an observer can see of them.
// Every fact that depends on knowledge is a pointer, nil until known, with
// a companion Known flag where an empty value would also be meaningful.
// Views are derived on demand and never stored in state.
package view

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/types"
)

// Knowledge is what an observer has learned about the NPCs and fixtures of
// a world. Anything absent is unknown.
type Knowledge struct {
	Npcs     map[uuid.UUID]types.NpcKnowledge
	Fixtures map[uuid.UUID]types.FixtureKnowledge
}

// KnowledgeOf returns the player's knowledge held in s.
func KnowledgeOf(s *types.GameState) Knowledge {
	return Knowledge{Npcs: s.NpcKnowledge, Fixtures: s.FixtureKnowledge}
}

// IdentifierView is an identifier whose name may not be known yet.
type IdentifierView struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name,omitempty"`
}

func identifier(id types.Identifier, knowsName bool) IdentifierView {
	v := IdentifierView{ID: id.ID}
	if knowsName {
		name := id.Name
		v.Name = &name
	}
	return v
}

// count is one distinct key and how often it occurred.
type count[K comparable] struct {
	key K
	n   int
}

// frequencies counts keys, ordered by where each key first appears.
func frequencies[K comparable](keys []K) []count[K] {
	var out []count[K]
	index := map[K]int{}
	for _, k := range keys {
		if i, ok := index[k]; ok {
			out[i].n++
			continue
		}
		index[k] = len(out)
		out = append(out, count[K]{key: k, n: 1})
	}
	return out
}

// DisplayAsSentence capitalizes s and ends it with a period.
func DisplayAsSentence(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "."
}

// article picks "a" or "an" for phrase.
func article(phrase string) string {
	if phrase != "" && strings.ContainsRune("aeiou", rune(phrase[0])) {
		return "an " + phrase
	}
	return "a " + phrase
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
