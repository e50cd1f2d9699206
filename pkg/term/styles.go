// Package term renders dashboard views as styled terminal text.
package term

import "github.com/charmbracelet/lipgloss"

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	StyleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	StyleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	StyleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green"))

	StyleToday = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	StyleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

const (
	barRune   = "█"
	emptyRune = "·"
	noData    = "Sin datos para la selección"
)
