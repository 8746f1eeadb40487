package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module paths, asset names.
	ColorCyan = lipgloss.Color("14")

	// ColorMagenta is used for generated class tokens and virtual ids.
	ColorMagenta = lipgloss.Color("213")

	// ColorGreen is used for the "transformed" module status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and the "warned" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module paths, asset names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleToken styles generated class tokens and virtual module ids.
	StyleToken = lipgloss.NewStyle().Foreground(ColorMagenta)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status constants.
const (
	StatusTransformed = "transformed"
	StatusUnchanged   = "unchanged"
	StatusWarned      = "warned"
	StatusFailed      = "failed"
)

// StatusStyle returns the lipgloss style for a given module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusTransformed:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusWarned:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module path column
// before the status suffix, so status words align.
const minModuleColumnWidth = 48

// FormatModuleLine renders a module path with a right-aligned, color-coded
// status suffix: m:<path>  <status>
func FormatModuleLine(path, status string) string {
	padding := minModuleColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("m:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// vetCheckLabelWidth aligns the detail column of vet check lines.
const vetCheckLabelWidth = 34

// FormatVetCheck renders a passed validation check with an optional dim
// detail aligned after the label.
func FormatVetCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := vetCheckLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}
