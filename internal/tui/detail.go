package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/components"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

const detailChrome = 4

type detailModel struct {
	id      string
	pokemon *pokeapi.Pokemon
	species *pokeapi.Species
	shiny   bool

	opts     pokedex.Options
	viewport viewport.Model
	help     help.Model
	log      *logger.Logger

	width  int
	height int
}

func newDetailModel(id string, opts pokedex.Options, width, height int, log *logger.Logger) detailModel {
	m := detailModel{
		id:       id,
		opts:     opts,
		viewport: viewport.New(width, max(1, height-detailChrome)),
		help:     help.New(),
		log:      log.With("id", id),
	}
	return m.setSize(width, height)
}

// init issues both resource fetches at once.
func (m detailModel) init(ctx context.Context, api ResourceFetcher) tea.Cmd {
	return tea.Batch(
		fetchPokemonCmd(ctx, api, m.id),
		fetchSpeciesCmd(ctx, api, m.id),
	)
}

func (m detailModel) detail() pokedex.Detail {
	return pokedex.BuildDetail(m.id, m.pokemon, m.species, m.shiny, m.opts)
}

func (m detailModel) setSize(width, height int) detailModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(1, height-detailChrome)
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case PokemonLoadedMsg:
		if msg.ID != m.id {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Error(msg.Err, "pokemon fetch failed")
			return m, nil
		}
		m.pokemon = msg.Pokemon

	case SpeciesLoadedMsg:
		if msg.ID != m.id {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Error(msg.Err, "species fetch failed")
			return m, nil
		}
		m.species = msg.Species

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, detailKeys.Back):
			return m, backCmd
		case key.Matches(msg, detailKeys.Shiny):
			m.shiny = !m.shiny
		case key.Matches(msg, detailKeys.Previous):
			if prev, ok := pokedex.PreviousID(m.id); ok {
				return m, navigateCmd(router.Detail(prev), true)
			}
			return m, nil
		case key.Matches(msg, detailKeys.Next):
			if next, ok := pokedex.NextID(m.id); ok {
				return m, navigateCmd(router.Detail(next), true)
			}
			return m, nil
		case key.Matches(msg, detailKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	default:
		return m, nil
	}

	m.viewport.SetContent(m.renderBody())
	return m, nil
}

func (m detailModel) view() string {
	d := m.detail()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(d),
		m.viewport.View(),
		footerStyle.Render(m.help.View(detailKeys)),
	)
}

func (m detailModel) renderHeader(d pokedex.Detail) string {
	name := d.Name
	if name == "" {
		name = "..."
	}
	left := colorStyle(d.Color).Render("← " + name)
	right := colorStyle(d.Color).Render(d.Number)
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m detailModel) renderBody() string {
	d := m.detail()

	shinyLabel, buttonColor := "Shiny Version", d.Color
	if d.Shiny {
		shinyLabel, buttonColor = "Normal Version", string(shinyColor)
	}
	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Color)).MarginTop(1)

	moves := strings.Join(d.Moves, ", ")
	if moves == "" {
		moves = "--"
	}
	about := lipgloss.JoinHorizontal(lipgloss.Top,
		m.fact("Weight", d.Weight),
		"  │  ",
		m.fact("Height", d.Height),
		"  │  ",
		m.fact("Moves", moves),
	)

	rows := []string{
		labelStyle.Render("Artwork: ") + d.ArtworkURL,
		"",
		components.Button(shinyLabel, buttonColor, true, false),
		"",
		components.Badges(d.Types),
		section.Render("About"),
		about,
	}
	if d.HasBio {
		rows = append(rows, "", lipgloss.NewStyle().Width(max(20, m.width-4)).Render(d.Bio))
	}

	rows = append(rows, section.Render("Base stats"))
	barWidth := max(10, m.width-20)
	for _, st := range d.Stats {
		rows = append(rows, components.NewStatBar(d.Color, barWidth).View(st.Label, st.Value))
	}

	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Center,
		components.Button("Previous", d.Color, d.HasPrevious(), false),
		"   ",
		components.Button("Next", d.Color, d.HasNext(), false),
	))

	return bodyStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m detailModel) fact(title, value string) string {
	return lipgloss.JoinVertical(lipgloss.Center, value, labelStyle.Render(title))
}
