package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

var badgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Padding(0, 1)

// Badge renders a type name on its palette colour.
func Badge(typeName string) string {
	color, ok := pokemon.TypeColor(typeName)
	if !ok {
		color = pokemon.TintColor
	}
	return badgeStyle.Background(lipgloss.Color(color)).Render(pokemon.DisplayName(typeName))
}

// Badges renders several badges separated by a space.
func Badges(typeNames []string) string {
	parts := make([]string, 0, len(typeNames)*2)
	for i, name := range typeNames {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, Badge(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
