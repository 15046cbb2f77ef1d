package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color(pokemon.TintColor)).
				Bold(true)

	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Card renders one grid cell: the padded number above the name.
func Card(item pokemon.ListItem, selected bool, width int) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	number := numberStyle.Render(pokemon.PaddedNumber(strconv.Itoa(item.ID)))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, number, pokemon.DisplayName(item.Name)))
}

// Grid lays cards out in rows of columns cells.
func Grid(cells []string, columns int) string {
	if columns < 1 {
		columns = 1
	}
	rows := make([]string, 0, (len(cells)+columns-1)/columns)
	for start := 0; start < len(cells); start += columns {
		end := start + columns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
