// Package detector picks the progress renderer for the current terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for import progress.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive progress view.
	ModeTUI
	// ModeLinear forces line-oriented output.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode. Progress is drawn on
// stderr, so a redirected stderr or a CI environment selects linear output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the --output flag to the detected mode.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
