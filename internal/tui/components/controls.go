package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC0A2D"))
	plainStyle    = lipgloss.NewStyle()
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 2)
)

func cursor(focused bool) string {
	if focused {
		return "› "
	}
	return "  "
}

func line(focused bool, s string) string {
	if focused {
		return focusStyle.Render(cursor(true) + s)
	}
	return plainStyle.Render(cursor(false) + s)
}

// Checkbox renders a "[x] label" row.
func Checkbox(label string, checked, focused bool) string {
	box := "[ ] "
	if checked {
		box = "[x] "
	}
	return line(focused, box+label)
}

// Radio renders a "(•) label" row.
func Radio(label string, selected, focused bool) string {
	dot := "( ) "
	if selected {
		dot = "(•) "
	}
	return line(focused, dot+label)
}

// Button renders a pill in the given colour. Disabled buttons are dimmed.
func Button(label, color string, enabled, focused bool) string {
	style := buttonStyle.Background(lipgloss.Color(color))
	if !enabled {
		style = style.Background(lipgloss.Color("240")).Faint(true)
	}
	if focused {
		style = style.Underline(true)
	}
	return style.Render(label)
}

// Dim renders secondary text.
func Dim(s string) string {
	return disabledStyle.Render(s)
}
