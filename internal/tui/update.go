package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list = m.list.setSize(msg.Width, msg.Height)
		if m.detail != nil {
			d := m.detail.setSize(msg.Width, msg.Height)
			m.detail = &d
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.String() == "q" && !m.capturing() {
			return m, tea.Quit
		}
		return m.updateScreen(msg)

	case NavigateMsg:
		return m.navigate(msg)

	case BackMsg:
		route, ok := m.stack.Pop()
		if !ok {
			return m, nil
		}
		m.log.With("route", route.Path()).Debug("back")
		if route.Screen == router.ScreenList {
			m.detail = nil
		}
		return m, nil

	case PokemonLoadedMsg, SpeciesLoadedMsg:
		if m.detail == nil {
			return m, nil
		}
		d, cmd := m.detail.update(msg)
		m.detail = &d
		return m, cmd

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.update(msg)
		return m, cmd
	}
}

func (m Model) capturing() bool {
	return m.detail == nil && m.list.capturing()
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		d, cmd := m.detail.update(msg)
		m.detail = &d
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.update(msg)
	return m, cmd
}

func (m Model) navigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	if msg.Replace {
		m.stack.Replace(msg.Route)
	} else {
		m.stack.Push(msg.Route)
	}
	m.log.WithFields(map[string]any{
		"route":   msg.Route.Path(),
		"replace": msg.Replace,
	}).Debug("navigate")

	if msg.Route.Screen != router.ScreenDetail {
		m.detail = nil
		return m, nil
	}

	d := newDetailModel(msg.Route.ID, m.deps.Options, m.width, m.height, m.log)
	m.detail = &d
	return m, d.init(m.ctx, m.deps.API)
}
