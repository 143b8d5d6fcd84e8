package cmd

import "github.com/charmbracelet/lipgloss"

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sharpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	flatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func styled(style lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return style.Render(s)
}
