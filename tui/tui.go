package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarlsen/roomforge/cli"
	"github.com/mkarlsen/roomforge/planfile"
	"github.com/mkarlsen/roomforge/planner"
	"github.com/mkarlsen/roomforge/world"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // true for echoed operator input
	isMeta  bool // true for meta-command output
}

// Model is the Bubble Tea model for the RoomForge console.
type Model struct {
	console *cli.CLI
	defs    *world.Defs
	grid    *world.Grid

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated console output (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
	lastCmd  string
}

// consoleOutputMsg carries command output into the Update loop.
type consoleOutputMsg struct {
	input  string   // echoed operator input (empty for intro)
	lines  []string // output lines
	isMeta bool     // true for meta-command output
}

// New creates a TUI model wired to the given planner.
func New(p *planner.Planner, defs *world.Defs, grid *world.Grid) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		console: cli.New(p, defs, grid),
		defs:    defs,
		grid:    grid,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(p *planner.Planner, defs *world.Defs, grid *world.Grid) error {
	m := New(p, defs, grid)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}

// Init returns the initial command that produces the intro text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []string{
			m.defs.Catalog.Title,
			"",
			fmt.Sprintf("%d room types loaded on a %dx%d grid. Type /help for commands.",
				len(m.defs.RoomTypes), m.grid.Width, m.grid.Height),
		}
		return consoleOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, command output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case consoleOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Handle "again" / "g".
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(consoleOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isMeta: true,
			})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(consoleOutputMsg{input: input, lines: output, isMeta: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Planning command.
	output := m.console.Dispatch(input)
	m = m.appendOutput(consoleOutputMsg{input: input, lines: output})
	return m, nil
}

// appendOutput adds lines to the transcript and refreshes the viewport.
func (m Model) appendOutput(msg consoleOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isMeta: msg.isMeta}
		if !msg.isMeta {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content. Map lines are never wrapped.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		switch {
		case rl.isInput:
			styled = append(styled, styledOperatorInput(rl.text))
		case rl.isMeta:
			styled = append(styled, styledSystemMsg(wordWrap(rl.text, width)))
		case rl.kind == kindMap:
			styled = append(styled, styleMap.Render(rl.text))
		default:
			styled = append(styled, renderLineKind(wordWrap(rl.text, width), rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSummary:
		return styleSummary.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return stylePlain.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/export":
		return m.cmdExport(arg), false

	case "/import":
		return m.cmdImport(arg), false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.console.Trace = !m.console.Trace
		if m.console.Trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdExport(path string) []string {
	plan := m.console.Plan()
	if plan == nil {
		return []string{"No plan to export."}
	}
	if path == "" {
		path = "plan.json"
	}

	data, err := planfile.Save(plan)
	if err != nil {
		return []string{fmt.Sprintf("Export failed: %v", err)}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return []string{fmt.Sprintf("Export failed: %v", err)}
	}
	return []string{fmt.Sprintf("Plan exported to %s.", path)}
}

func (m *Model) cmdImport(path string) []string {
	if path == "" {
		path = "plan.json"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Import failed: %v", err)}
	}
	plan, err := planfile.Load(data)
	if err != nil {
		return []string{fmt.Sprintf("Import failed: %v", err)}
	}
	m.console.SetPlan(plan)
	return []string{fmt.Sprintf("Plan imported from %s (%s).", path, plan.RoomType)}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /export [file]  — Export the working plan as JSON (default: plan.json)",
		"  /import [file]  — Import a plan JSON (default: plan.json)",
		"  /quit           — Exit the console",
		"  /help           — Show this help",
		"  /state          — Debug: dump world and plan state",
		"  /trace          — Toggle debug trace output",
		"",
		"Planning commands:",
		"  plan <type> <x> <y> <w> <h> [side] [material]",
		"  plan irregular <type> <x,y> <x,y> ...",
		"  hint <x> <y>  |  hint clear",
		"  show / commit",
		"  rooms / materials / records",
		"  map [x y w h]",
		"  block/clear <x> <y> <w> <h>",
		"  again (g)             — Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	output := []string{
		fmt.Sprintf("World: %dx%d, %d construction(s), %d live reservation(s)",
			m.grid.Width, m.grid.Height, len(m.grid.Records()), m.grid.Reservations()),
	}
	if plan := m.console.Plan(); plan != nil {
		output = append(output, fmt.Sprintf("Plan: %s, %d placement(s), %d wall tile(s)",
			plan.RoomType, len(plan.Placements), len(plan.WallTiles)))
	} else {
		output = append(output, "Plan: none")
	}
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
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
