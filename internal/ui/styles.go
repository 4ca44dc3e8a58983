package ui

import "github.com/charmbracelet/lipgloss"

var (
	bannerBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)

	importanceColors = map[string]lipgloss.Color{
		"info":    lipgloss.Color("39"),  // blue
		"warning": lipgloss.Color("214"), // orange
		"update":  lipgloss.Color("42"),  // green
		"alert":   lipgloss.Color("196"), // red
	}
)

// bannerStyle maps the style class set by the manager to a lipgloss style.
// An unknown or empty class keeps the neutral base style.
func bannerStyle(class string) lipgloss.Style {
	c, ok := importanceColors[class]
	if !ok {
		return bannerBase
	}
	return bannerBase.Foreground(c).BorderForeground(c)
}
