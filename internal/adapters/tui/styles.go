package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/slicer/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Italic(true)

	flagOnStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	flagOffStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
