package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/underworld/cli"
	"github.com/nathoo/underworld/engine"
)

// Options configures a TUI session.
type Options struct {
	SaveDir string
	Trace   bool
}

// entry is one unstyled line of the transcript. Styling happens on every
// refresh so the transcript can be re-wrapped when the terminal resizes.
type entry struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the game TUI.
type Model struct {
	engine  *engine.Engine
	saveDir string

	viewport viewport.Model
	input    textinput.Model
	history  *History

	transcript []entry

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// turnMsg carries one exchange with the engine into the Update loop.
type turnMsg struct {
	input string
	lines []string
	meta  bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		engine:  eng,
		saveDir: opts.SaveDir,
		input:   ti,
		history: NewHistory(100),
		trace:   opts.Trace,
	}
	if m.saveDir == "" {
		m.saveDir = cli.DefaultSaveDir()
	}
	return m
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(eng *engine.Engine, opts Options) error {
	_, err := tea.NewProgram(New(eng, opts), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Init looks around the starting room.
func (m Model) Init() tea.Cmd {
	eng := m.engine
	return tea.Batch(textinput.Blink, func() tea.Msg {
		lines := append([]string{"You descend into the underworld.", ""}, eng.Step("look").Output...)
		return turnMsg{lines: lines}
	})
}

// Update handles key presses, resizes and engine output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case turnMsg:
		m.record(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	// One row each for the status bar and the prompt.
	vpHeight := max(height-2, 1)
	if m.ready {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	} else {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	}
	m.refreshViewport()
}

// handleKey reports whether the key was consumed. Keys it passes on go to
// the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit, true
	case "enter":
		next, cmd := m.submit()
		return next, cmd, true
	case "tab":
		if done, ok := m.history.Complete(m.input.Value()); ok {
			m.setInput(done)
		}
		return m, nil, true
	case "up":
		if prev, ok := m.history.Prev(); ok {
			m.setInput(prev)
		}
		return m, nil, true
	case "down":
		next, ok := m.history.Next()
		if !ok {
			m.history.ResetCursor()
		}
		m.setInput(next)
		return m, nil, true
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// submit runs the line in the prompt as a game or meta command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		m.record(turnMsg{input: input, lines: lines, meta: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	command := input
	switch strings.ToLower(input) {
	case "again", "g":
		if m.lastCmd == "" {
			m.record(turnMsg{input: input, lines: []string{"Nothing to repeat."}, meta: true})
			return m, nil
		}
		command = m.lastCmd
	default:
		m.lastCmd = input
	}

	result := m.engine.Step(command)
	lines := result.Output
	if m.trace {
		lines = append(lines, cli.TraceLines(result.Events)...)
	}
	m.record(turnMsg{input: input, lines: lines})
	return m, nil
}

// record appends an exchange to the transcript, followed by a blank
// separator line.
func (m *Model) record(msg turnMsg) {
	if msg.input != "" {
		m.transcript = append(m.transcript, entry{text: msg.input, kind: kindInput})
	}
	for _, line := range msg.lines {
		kind := kindMeta
		if !msg.meta {
			kind = classifyLine(line)
		}
		m.transcript = append(m.transcript, entry{text: line, kind: kind})
	}
	m.transcript = append(m.transcript, entry{})
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles the transcript at the current
// width and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	styled := make([]string, 0, len(m.transcript))
	for _, e := range m.transcript {
		switch {
		case e.text == "":
			styled = append(styled, "")
		case e.kind == kindInput:
			styled = append(styled, styledPlayerInput(wordWrap(e.text, width-2)))
		case e.kind == kindMeta:
			styled = append(styled, styledSystemMsg(wordWrap(e.text, width-2)))
		default:
			styled = append(styled, render(wordWrap(e.text, width), e.kind))
		}
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// render styles a narrative line by its kind.
func render(line string, kind lineKind) string {
	if kind == kindYouSee {
		return styledYouSee(line)
	}
	if style, ok := kindStyles[kind]; ok {
		return style.Render(line)
	}
	return styleRoomDesc.Render(line)
}

// wordWrap breaks text at spaces so no line is longer than width. A single
// word longer than width stays on its own line.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	return strings.Join(append(lines, line), "\n")
}

// View renders the transcript, status bar and prompt.
func (m Model) View() string {
	switch {
	case m.quitting:
		return ""
	case !m.ready:
		return "Loading..."
	}
	return strings.Join([]string{m.viewport.View(), m.renderStatusBar(), m.input.View()}, "\n")
}

// metaCommand handles one slash command. It returns output lines and
// whether the session should end.
type metaCommand func(m *Model, arg string) ([]string, bool)

var metaCommands = map[string]metaCommand{
	"/quit":  metaQuit,
	"/exit":  metaQuit,
	"/save":  metaSave,
	"/load":  metaLoad,
	"/help":  metaHelp,
	"/state": metaState,
	"/trace": metaTrace,
}

// handleMeta dispatches a slash command.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}
	cmd, ok := metaCommands[parts[0]]
	if !ok {
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", parts[0])}, false
	}
	return cmd(m, arg)
}

func metaQuit(*Model, string) ([]string, bool) {
	return []string{"Goodbye."}, true
}

func metaSave(m *Model, name string) ([]string, bool) {
	msg, err := cli.SaveGame(m.engine, m.saveDir, name)
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}, false
	}
	return []string{msg}, false
}

func metaLoad(m *Model, name string) ([]string, bool) {
	msg, err := cli.LoadGame(m.engine, m.saveDir, name)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}, false
	}
	return append([]string{msg}, m.engine.Step("look").Output...), false
}

func metaHelp(m *Model, _ string) ([]string, bool) {
	out := append([]string{}, cli.MetaHelp...)
	out = append(out, "", "Game commands:")
	for _, line := range m.engine.Step("help").Output {
		out = append(out, "  "+line)
	}
	return append(out,
		"  again (g)                 Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for history, Tab to complete",
	), false
}

func metaState(m *Model, _ string) ([]string, bool) {
	return cli.StateLines(m.engine), false
}

func metaTrace(m *Model, _ string) ([]string, bool) {
	m.trace = !m.trace
	if m.trace {
		return []string{"Trace output enabled."}, false
	}
	return []string{"Trace output disabled."}, false
}

// viewportKeyMap leaves Up/Down to the input history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
