package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusDead = styleStatusBar.
			Background(lipgloss.Color("52"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleLoot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleMagic = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindYouSee
	kindExits
	kindCombat
	kindLoot
	kindMagic
	kindDeath
	kindSystem
	kindError
	kindTrace
	kindInput // echoed player input
	kindMeta  // slash command output
)

var kindStyles = map[lineKind]lipgloss.Style{
	kindRoomDesc: styleRoomDesc,
	kindExits:    styleExits,
	kindCombat:   styleCombat,
	kindLoot:     styleLoot,
	kindMagic:    styleMagic,
	kindDeath:    styleDeath,
	kindSystem:   styleSystem,
	kindError:    styleError,
	kindTrace:    styleTrace,
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case line == "You die.", strings.HasPrefix(line, "You are dead"):
		return kindDeath
	case strings.HasPrefix(line, "You see "):
		return kindYouSee
	case strings.HasPrefix(line, "You leave through "):
		return kindExits
	case strings.HasPrefix(line, "You hit "),
		strings.Contains(line, " hits you for "),
		strings.HasSuffix(line, " dies."),
		strings.HasPrefix(line, "Your aura of retribution lashes "),
		strings.HasPrefix(line, "The spell turns on you"):
		return kindCombat
	case strings.HasPrefix(line, "You take "),
		strings.HasPrefix(line, "You find a hidden compartment"):
		return kindLoot
	case strings.Contains(line, "aura"),
		strings.Contains(line, "phoenix flame"),
		strings.Contains(line, "shield surrounds you"),
		strings.HasPrefix(line, "You are healed"),
		strings.HasSuffix(line, " fades from your memory."):
		return kindMagic
	case strings.HasPrefix(line, "You don't see"),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "I don't know how to"),
		strings.HasPrefix(line, "Which "),
		strings.HasPrefix(line, "It is already dead"),
		strings.HasSuffix(line, " what?"),
		strings.HasPrefix(line, "Go where?"),
		line == "What do you mean?":
		return kindError
	default:
		return kindRoomDesc
	}
}

// styledYouSee renders "You see a goblin." with the subject bold.
func styledYouSee(line string) string {
	const prefix = "You see "
	if !strings.HasPrefix(line, prefix) {
		return styleRoomDesc.Render(line)
	}
	return styleRoomDesc.Render(prefix) + styleYouSee.Render(line[len(prefix):])
}

// styledPlayerInput renders the echoed player input in green with "> " prefix.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
