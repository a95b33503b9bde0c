// Package style holds the colors and icons shared by the logger, the
// progress renderer and the catalog views.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Teal   = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Branch  = "└─"
	Arrow   = "→"
)

// Heading renders section titles in catalog and overview output.
var Heading = lipgloss.NewStyle().Bold(true).Foreground(Iris)

// Faint renders secondary columns such as sizes and locators.
var Faint = lipgloss.NewStyle().Foreground(Slate)
