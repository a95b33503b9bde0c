package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/onto/internal/ui/style"
)

var (
	jobRunningStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	jobDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	jobErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	durationStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(lipgloss.Color("#FFFFFF"))

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(lipgloss.Color("#FFFFFF"))
)
