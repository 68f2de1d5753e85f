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

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlain = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleMap = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleSummary = lipgloss.NewStyle().
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleOperatorInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindPlain lineKind = iota
	kindMap
	kindSummary
	kindSystem
	kindError
	kindTrace
)

// mapRunes is the set of tiles the renderer emits. A line made entirely of
// these is part of a rendered map and must not be word-wrapped.
const mapRunes = "#+F.~o "

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case isMapLine(line):
		return kindMap
	case strings.HasPrefix(line, "Planning failed"),
		strings.HasPrefix(line, "Commit failed"),
		strings.HasPrefix(line, "Warning:"),
		strings.HasPrefix(line, "Usage:"),
		strings.HasPrefix(line, "Unknown command"),
		strings.HasPrefix(line, "not a "):
		return kindError
	case strings.HasPrefix(line, "Planned "),
		strings.HasPrefix(line, "Committed "),
		strings.HasPrefix(line, "Door at "):
		return kindSummary
	default:
		return kindPlain
	}
}

// isMapLine reports whether a line consists only of map tile runes.
func isMapLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	for _, r := range line {
		if !strings.ContainsRune(mapRunes, r) {
			return false
		}
	}
	return true
}

// styledOperatorInput renders the echoed input in green with "> " prefix.
func styledOperatorInput(input string) string {
	return styleOperatorInput.Render("> " + input)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
