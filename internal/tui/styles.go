package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

var (
	// Colors
	tintColor  = lipgloss.Color(pokemon.TintColor)
	mutedColor = lipgloss.Color("245")
	whiteColor = lipgloss.Color("#FFFFFF")
	shinyColor = lipgloss.Color("#FFD700")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(whiteColor).
			Background(tintColor).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			MarginBottom(1)

	searchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	searchFocusedStyle = searchStyle.
				BorderForeground(tintColor)

	controlStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tintColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	activeControlStyle = controlStyle.
				BorderForeground(tintColor)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(tintColor).
			Padding(1, 2)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tintColor).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(tintColor)

	bodyStyle = lipgloss.NewStyle().
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// colorStyle builds a header style on the pokemon's main colour.
func colorStyle(hex string) lipgloss.Style {
	return titleStyle.Background(lipgloss.Color(hex))
}
