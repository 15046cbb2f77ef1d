package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// MaxStatValue is the base-stat value that fills a bar completely.
const MaxStatValue = 255

// StatBar renders one base-stat row: short label, value and a bar filled
// in the pokemon's main colour.
type StatBar struct {
	bar   progress.Model
	color lipgloss.Color
}

// NewStatBar creates a bar of the given width in the given hex colour.
func NewStatBar(color string, width int) StatBar {
	if width < 4 {
		width = 4
	}
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return StatBar{bar: bar, color: lipgloss.Color(color)}
}

// Ratio clamps value/MaxStatValue into [0, 1].
func Ratio(value int) float64 {
	return math.Max(0, math.Min(1.0, float64(value)/MaxStatValue))
}

// View renders the row.
func (s StatBar) View(label string, value int) string {
	name := lipgloss.NewStyle().Bold(true).Foreground(s.color).Width(5).Render(label)
	number := lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Render(fmt.Sprintf("%03d", value))
	return lipgloss.JoinHorizontal(lipgloss.Left, name, "│", number, " ", s.bar.ViewAs(Ratio(value)))
}
