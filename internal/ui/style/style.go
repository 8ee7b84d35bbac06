// Package style provides shared UI styling primitives including colors
// and icons for the tree views and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross     = "✗"
	Warning   = "!"
	Duplicate = "~"
	Expanded  = "▾"
	Collapsed = "▸"
	Leaf      = "•"
	Link      = "⇄"
)

// Tree styles shared by the interactive and linear views.
var (
	Usage     = lipgloss.NewStyle().Foreground(White)
	Location  = lipgloss.NewStyle().Foreground(Slate)
	Dup       = lipgloss.NewStyle().Foreground(Yellow)
	Cursor    = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	Header    = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	Preview   = lipgloss.NewStyle().Foreground(Mist).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Slate).PaddingLeft(1)
	Highlight = lipgloss.NewStyle().Foreground(Green)
	Linked    = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
)
