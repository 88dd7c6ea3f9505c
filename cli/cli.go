// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the plain line interface.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/underworld/engine"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/save"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: DefaultSaveDir(),
	}
}

// DefaultSaveDir is where saves go when no directory is configured.
func DefaultSaveDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".underworld", "saves")
}

// Run starts the game loop. It describes the starting room, then loops:
// prompt, input, dispatch, output.
func (c *CLI) Run() {
	c.printResult(c.Engine.Step("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		if msg, err := SaveGame(c.Engine, c.SaveDir, arg); err != nil {
			c.printSystem(fmt.Sprintf("Save failed: %v", err))
		} else {
			c.printSystem(msg)
		}

	case "/load":
		msg, err := LoadGame(c.Engine, c.SaveDir, arg)
		if err != nil {
			c.printSystem(fmt.Sprintf("Load failed: %v", err))
			return false
		}
		c.printSystem(msg)
		c.printResult(c.Engine.Step("look"))

	case "/help":
		c.cmdHelp()

	case "/state":
		for _, line := range StateLines(c.Engine) {
			c.printSystem(line)
		}

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

// SaveGame writes the session to dir/name.json and returns a confirmation.
func SaveGame(eng *engine.Engine, dir, name string) (string, error) {
	if name == "" {
		name = "quicksave"
	}
	data, err := save.Save(eng)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("Game saved to %s.", name), nil
}

// LoadGame restores the session from dir/name.json and returns a
// confirmation.
func LoadGame(eng *engine.Engine, dir, name string) (string, error) {
	if name == "" {
		name = "quicksave"
	}
	data, err := os.ReadFile(filepath.Join(dir, name+".json"))
	if err != nil {
		return "", err
	}
	sd, err := save.Load(data)
	if err != nil {
		return "", err
	}
	if err := save.ApplySave(eng, sd); err != nil {
		return "", err
	}
	return fmt.Sprintf("Game loaded from %s (turn %d).", name, sd.Turn), nil
}

// MetaHelp lists the meta-commands shared by both interfaces.
var MetaHelp = []string{
	"System:",
	"  /save [name]  Save game (default: quicksave)",
	"  /load [name]  Load game (default: quicksave)",
	"  /quit         Exit game",
	"  /help         Show this help",
	"  /state        Debug: dump current state",
	"  /trace        Toggle debug trace output",
}

func (c *CLI) cmdHelp() {
	for _, line := range MetaHelp {
		c.printLine(line)
	}
	c.printLine("")
	c.printLine("Game commands:")
	for _, line := range c.Engine.Step("help").Output {
		c.printLine("  " + line)
	}
	c.printLine("  again (g)                 Repeat your last command")
}

// StateLines summarises the session for debugging.
func StateLines(eng *engine.Engine) []string {
	s := &eng.State
	lines := []string{
		fmt.Sprintf("Turn: %d", eng.Turn),
		fmt.Sprintf("Seed: %d (rng position %d)", eng.RNG.Seed(), eng.RNG.Position()),
	}
	if room, ok := state.FindRoom(s, s.CurrentRoomID); ok {
		lines = append(lines, fmt.Sprintf("Room: %s (%s)", s.CurrentRoomID, tables.RoomName(room.RoomType)))
	}
	health := eng.Player.Character.Stats.Health
	lines = append(lines,
		fmt.Sprintf("Health: %d/%d", health.Current, health.Max),
		fmt.Sprintf("Rooms generated: %d, visited: %d", len(s.World.Rooms), len(s.RoomsVisited)),
		fmt.Sprintf("Journal: %d events", len(eng.Journal)),
	)
	return lines
}

// TraceLines renders each event as its type and JSON payload.
func TraceLines(evts []events.Event) []string {
	if len(evts) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(evts))}
	for _, e := range evts {
		data, err := events.Encode(e)
		if err != nil {
			lines = append(lines, fmt.Sprintf("[trace]   %s (%v)", e.Type(), err))
			continue
		}
		lines = append(lines, fmt.Sprintf("[trace]   %s", data))
	}
	return lines
}

func (c *CLI) printTrace(result engine.Result) {
	for _, line := range TraceLines(result.Events) {
		c.printLine(line)
	}
}

func (c *CLI) printResult(result engine.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
