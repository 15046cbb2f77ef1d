package tui

// View renders the current screen.
func (m Model) View() string {
	if m.detail != nil {
		return m.detail.view()
	}
	return m.list.view()
}
