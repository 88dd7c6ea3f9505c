package view

import (
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// NpcPositionView is a group of NPCs placed together.
type NpcPositionView struct {
	GroupDescriptor    types.GroupDescriptor       `json:"group_descriptor,omitempty"`
	NPCs               []NonPlayerView             `json:"npcs"`
	PositionDescriptor types.NpcPositionDescriptor `json:"position_descriptor,omitempty"`
}

// LookAtNpcPosition projects every NPC of a position.
func LookAtNpcPosition(np types.NpcPosition, know Knowledge, knowsAll bool) NpcPositionView {
	v := NpcPositionView{
		GroupDescriptor:    np.GroupDescriptor,
		PositionDescriptor: np.PositionDescriptor,
	}
	for _, npc := range np.NPCs {
		v.NPCs = append(v.NPCs, LookAtNpc(npc, know.Npcs[npc.Identifier.ID], knowsAll))
	}
	return v
}

// String composes the position: "in the corner stands a gang of goblins".
// NPCs whose species is unknown are counted as figures.
func (v NpcPositionView) String() string {
	species := make([]types.Species, len(v.NPCs))
	for i, npc := range v.NPCs {
		if npc.Character.Species != nil {
			species[i] = *npc.Character.Species
		}
	}
	var nouns []string
	for _, c := range frequencies(species) {
		nouns = append(nouns, tables.DescribeSpeciesCount(c.key, c.n))
	}

	var pre, post string
	if d := v.PositionDescriptor; d != "" {
		if tables.NpcPositionPlacement(d) == tables.Pre {
			pre = tables.NpcPositionText(d)
		} else {
			post = tables.NpcPositionText(d)
		}
	}

	noun := strings.Join(nouns, " and ")
	switch v.GroupDescriptor {
	case types.GroupNone:
	case types.GroupA, types.GroupAn:
		// The article follows the noun as rendered, not the true species.
		noun = article(noun)
	default:
		noun = joinNonEmpty(tables.GroupText(v.GroupDescriptor), noun)
	}
	return joinNonEmpty(pre, noun, post)
}

// DisplayAsSentence renders the position as a sentence.
func (v NpcPositionView) DisplayAsSentence() string {
	return DisplayAsSentence(v.String())
}

// RoomView is a room as an observer sees it.
type RoomView struct {
	Identifier       IdentifierView         `json:"identifier"`
	RoomType         types.RoomType         `json:"room_type"`
	Descriptors      []types.RoomDescriptor `json:"descriptors,omitempty"`
	Dimensions       types.Dimensions       `json:"dimensions"`
	FixturePositions []FixturePositionView  `json:"fixture_positions,omitempty"`
	NpcPositions     []NpcPositionView      `json:"npc_positions,omitempty"`
	Exits            []types.Exit           `json:"exits,omitempty"`
	Flavour          string                 `json:"flavour,omitempty"`
}

// LookAtRoom projects a room and everything in it through know.
func LookAtRoom(room types.Room, know Knowledge, knowsAll bool) RoomView {
	v := roomShell(room)
	for _, fp := range room.FixturePositions {
		v.FixturePositions = append(v.FixturePositions, LookAtFixturePosition(fp, know, knowsAll))
	}
	for _, np := range room.NpcPositions {
		v.NpcPositions = append(v.NpcPositions, LookAtNpcPosition(np, know, knowsAll))
	}
	return v
}

// QuickLookRoom is a glance: the layout, and of each NPC no more than what
// it is, if that is known. Fixture contents and NPC belongings stay out.
func QuickLookRoom(room types.Room, know Knowledge) RoomView {
	v := roomShell(room)
	for _, fp := range room.FixturePositions {
		v.FixturePositions = append(v.FixturePositions, LookAtFixturePosition(fp, Knowledge{}, false))
	}
	for _, np := range room.NpcPositions {
		glance := Knowledge{Npcs: map[uuid.UUID]types.NpcKnowledge{}}
		for _, npc := range np.NPCs {
			k := know.Npcs[npc.Identifier.ID]
			glance.Npcs[npc.Identifier.ID] = types.NpcKnowledge{
				KnowsSpecies:      k.KnowsSpecies,
				KnowsLifeModifier: k.KnowsLifeModifier,
			}
		}
		v.NpcPositions = append(v.NpcPositions, LookAtNpcPosition(np, glance, false))
	}
	return v
}

func roomShell(room types.Room) RoomView {
	return RoomView{
		Identifier:  identifier(room.Identifier, true),
		RoomType:    room.RoomType,
		Descriptors: room.Descriptors,
		Dimensions:  room.Dimensions,
		Exits:       room.Exits,
		Flavour:     room.Flavour,
	}
}

// Title renders the room kind with its descriptors: "a dark, musty cave".
func (v RoomView) Title() string {
	var adjectives []string
	for _, d := range v.Descriptors {
		adjectives = append(adjectives, tables.RoomDescriptorText(d))
	}
	name := tables.RoomName(v.RoomType)
	if len(adjectives) > 0 {
		name = strings.Join(adjectives, ", ") + " " + name
	}
	return article(name)
}

// Sentences renders the room as prose, one sentence per line of sight:
// the room, its flavour, its fixtures, its NPCs, then its exits.
func (v RoomView) Sentences() []string {
	out := []string{DisplayAsSentence("you are in " + v.Title())}
	if v.Flavour != "" {
		out = append(out, v.Flavour)
	}
	for _, fp := range v.FixturePositions {
		out = append(out, fp.DisplayAsSentence())
	}
	for _, np := range v.NpcPositions {
		out = append(out, np.DisplayAsSentence())
	}
	if len(v.Exits) > 0 {
		kinds := make([]types.ExitType, len(v.Exits))
		for i, e := range v.Exits {
			kinds[i] = e.ExitType
		}
		var nouns []string
		for _, c := range frequencies(kinds) {
			if c.n == 1 {
				nouns = append(nouns, article(tables.ExitName(c.key)))
			} else {
				nouns = append(nouns, countWord(c.n)+" "+exitPlural(c.key))
			}
		}
		verb := "there is "
		if len(v.Exits) > 1 {
			verb = "there are "
		}
		out = append(out, DisplayAsSentence(verb+strings.Join(nouns, " and ")+" leading out"))
	}
	return out
}

func exitPlural(e types.ExitType) string {
	if e == types.ExitHoleInTheWall {
		return "holes in the wall"
	}
	return tables.ExitName(e) + "s"
}

// String is the whole room description.
func (v RoomView) String() string {
	return strings.Join(v.Sentences(), " ")
}

func countWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six"}
	if n < len(words) {
		return words[n]
	}
	return "many"
}
