package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
)

var title = cases.Title(language.English)

// titleCase upper-cases the first letter of each word.
// "guard room" -> "Guard Room", "tavern hall" -> "Tavern Hall".
func titleCase(s string) string {
	return title.String(s)
}

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, the player's health and the turn count.
func (m Model) renderStatusBar() string {
	s := &m.engine.State
	room := state.CurrentRoom(s)
	p := &m.engine.Player

	var exits []string
	for _, ex := range room.Exits {
		exits = append(exits, tables.ExitName(ex.ExitType))
	}
	left := fmt.Sprintf(" %s | Exits: %d", titleCase(tables.RoomName(room.RoomType)), len(exits))
	if candidate := fmt.Sprintf(" %s | Exits: %s", titleCase(tables.RoomName(room.RoomType)), strings.Join(exits, ", ")); lipgloss.Width(candidate)+24 < m.width {
		left = candidate
	}

	h := p.Character.Stats.Health
	style := styleStatusBar
	right := fmt.Sprintf("HP %d/%d | T:%d ", h.Current, h.Max, m.engine.Turn)
	if state.IsDead(&p.Character) {
		style = styleStatusDead
		right = fmt.Sprintf("DEAD | T:%d ", m.engine.Turn)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return style.Width(m.width).Render(bar)
}
