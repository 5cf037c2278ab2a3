package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Equation = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Sequence types
var (
	Matched = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Unmatched = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Extrapolated = lipgloss.NewStyle().
			Foreground(Secondary)
)
