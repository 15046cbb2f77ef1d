package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/components"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

// listFocus says which part of the list screen receives key presses.
type listFocus int

const (
	focusGrid listFocus = iota
	focusSearch
	focusSort
	focusFilter
)

const (
	cardHeight = 4
	listChrome = 10
)

// Filter modal rows: every type, every generation, then Reset and Apply.
var (
	filterTypeRows  = len(pokemon.Types())
	filterResetRow  = filterTypeRows + pokemon.GenerationCount
	filterApplyRow  = filterResetRow + 1
	filterRowsTotal = filterApplyRow + 1
)

type listModel struct {
	ctx   context.Context
	pager Pager
	log   *logger.Logger

	search  textinput.Model
	spinner spinner.Model
	help    help.Model

	items   []pokemon.ListItem
	visible []pokemon.ListItem

	// filters is committed state; draft only lives while the modal is open.
	filters pokemon.Filters
	draft   pokemon.Filters
	sortKey pokemon.SortKey

	focus        listFocus
	cursor       int
	offsetRow    int
	sortCursor   int
	filterCursor int
	columns      int
	loading      bool

	width  int
	height int
}

func newListModel(ctx context.Context, pager Pager, columns int, log *logger.Logger) listModel {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "🔍 "
	search.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	if columns < 1 {
		columns = 3
	}

	return listModel{
		ctx:     ctx,
		pager:   pager,
		log:     log,
		search:  search,
		spinner: s,
		help:    help.New(),
		sortKey: pokemon.SortIDAsc,
		columns: columns,
		loading: true,
		width:   80,
		height:  24,
	}
}

func (m listModel) init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchNextPageCmd(m.ctx, m.pager))
}

// capturing reports whether printable keys belong to a widget rather than
// to the global shortcuts.
func (m listModel) capturing() bool {
	return m.focus != focusGrid
}

func (m listModel) setSize(width, height int) listModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.search.Width = max(10, width-8)
	m.ensureVisible()
	return m
}

func (m listModel) update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.log.Error(msg.Err, "list page fetch failed")
			return m, nil
		}
		m.items = m.pager.Items()
		m.refresh()
		if !msg.Fetched {
			return m, nil
		}
		m.log.With("items", len(m.items)).Debug("list page loaded")
		return m, m.maybeFetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.focus {
		case focusSearch:
			return m.handleSearchKeys(msg)
		case focusSort:
			return m.handleSortKeys(msg)
		case focusFilter:
			return m.handleFilterKeys(msg)
		default:
			return m.handleGridKeys(msg)
		}
	}

	return m, nil
}

func (m listModel) handleGridKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Up):
		m.moveCursor(-m.columns)
	case key.Matches(msg, listKeys.Down):
		m.moveCursor(m.columns)
	case key.Matches(msg, listKeys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, listKeys.Right):
		m.moveCursor(1)

	case key.Matches(msg, listKeys.Open):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, navigateCmd(router.Detail(strconv.Itoa(item.ID)), false)

	case key.Matches(msg, listKeys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, listKeys.Sort):
		m.focus = focusSort
		m.sortCursor = max(0, slices.Index(pokemon.SortKeys(), m.sortKey))
		return m, nil

	case key.Matches(msg, listKeys.Filter):
		m.focus = focusFilter
		m.draft = m.filters.Clone()
		m.filterCursor = 0
		return m, nil

	case key.Matches(msg, listKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		return m, nil
	}

	return m, m.maybeFetch()
}

func (m listModel) handleSearchKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyDown:
		m.focus = focusGrid
		m.search.Blur()
		return m, m.maybeFetch()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.offsetRow = 0
		m.refresh()
	}
	return m, cmd
}

func (m listModel) handleSortKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	keys := pokemon.SortKeys()
	switch {
	case key.Matches(msg, popupKeys.Cancel):
		m.focus = focusGrid
	case key.Matches(msg, popupKeys.Up):
		m.sortCursor = (m.sortCursor - 1 + len(keys)) % len(keys)
	case key.Matches(msg, popupKeys.Down):
		m.sortCursor = (m.sortCursor + 1) % len(keys)
	case key.Matches(msg, popupKeys.Toggle):
		m.sortKey = keys[m.sortCursor]
		m.focus = focusGrid
		m.refresh()
		m.log.With("sort", string(m.sortKey)).Debug("sort changed")
	}
	return m, nil
}

func (m listModel) handleFilterKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, popupKeys.Cancel):
		m.focus = focusGrid
		m.draft = pokemon.Filters{}
		return m, nil
	case key.Matches(msg, popupKeys.Up):
		m.filterCursor = (m.filterCursor - 1 + filterRowsTotal) % filterRowsTotal
	case key.Matches(msg, popupKeys.Down):
		m.filterCursor = (m.filterCursor + 1) % filterRowsTotal
	case key.Matches(msg, popupKeys.Reset):
		m.draft = pokemon.Filters{}
	case key.Matches(msg, popupKeys.Apply):
		return m.applyFilters()
	case key.Matches(msg, popupKeys.Toggle):
		switch row := m.filterCursor; {
		case row < filterTypeRows:
			m.draft = m.draft.ToggleType(pokemon.Types()[row])
		case row < filterResetRow:
			m.draft = m.draft.WithGeneration(row - filterTypeRows)
		case row == filterResetRow:
			m.draft = pokemon.Filters{}
		default:
			return m.applyFilters()
		}
	}
	return m, nil
}

func (m listModel) applyFilters() (listModel, tea.Cmd) {
	m.filters = m.draft.Clone()
	m.draft = pokemon.Filters{}
	m.focus = focusGrid
	m.cursor = 0
	m.offsetRow = 0
	m.refresh()
	m.log.WithFields(map[string]any{
		"types":      m.filters.Types,
		"generation": m.filters.Generation,
	}).Debug("filters applied")
	return m, m.maybeFetch()
}

func (m *listModel) refresh() {
	m.visible = pokemon.Filter(m.items, m.search.Value(), m.filters, m.sortKey)
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.ensureVisible()
}

func (m *listModel) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.cursor + delta
	last := len(m.visible) - 1
	// Moving down into a partial last row lands on its last card.
	if next > last && delta == m.columns && last/m.columns > m.cursor/m.columns {
		next = last
	}
	if next < 0 || next > last {
		return
	}
	m.cursor = next
	m.ensureVisible()
}

func (m listModel) visibleRows() int {
	return max(1, (m.height-listChrome)/cardHeight)
}

func (m listModel) totalRows() int {
	return (len(m.visible) + m.columns - 1) / m.columns
}

func (m *listModel) ensureVisible() {
	row := m.cursor / m.columns
	rows := m.visibleRows()
	if row < m.offsetRow {
		m.offsetRow = row
	}
	if row >= m.offsetRow+rows {
		m.offsetRow = row - rows + 1
	}
}

// atEnd reports whether the user reached the end of the grid: the cursor
// sits on the last row, or the whole list fits on screen.
func (m listModel) atEnd() bool {
	if m.totalRows() <= m.visibleRows() {
		return true
	}
	return m.cursor/m.columns >= m.totalRows()-1
}

// maybeFetch requests the next page when the end of the grid is reached
// and the search box is empty.
func (m *listModel) maybeFetch() tea.Cmd {
	if m.loading || m.search.Value() != "" || !m.pager.HasNextPage() || !m.atEnd() {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, fetchNextPageCmd(m.ctx, m.pager))
}

func (m listModel) selected() (pokemon.ListItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return pokemon.ListItem{}, false
	}
	return m.visible[m.cursor], true
}

func (m listModel) view() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	switch m.focus {
	case focusSort:
		content.WriteString(m.renderSortPopup())
	case focusFilter:
		content.WriteString(m.renderFilterModal())
	default:
		content.WriteString(m.renderGrid())
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter())
	return content.String()
}

func (m listModel) renderHeader() string {
	title := titleStyle.Render("Pokédex")

	sortLabel := "A"
	if m.sortKey.ByNumber() {
		sortLabel = "#"
	}
	sortButton := controlStyle.Render(sortLabel)
	if m.focus == focusSort {
		sortButton = activeControlStyle.Render(sortLabel)
	}

	filterLabel := "Filters"
	if m.filters.Active() {
		filterLabel += " ●"
	}
	filterButton := controlStyle.Render(filterLabel)
	if m.focus == focusFilter {
		filterButton = activeControlStyle.Render(filterLabel)
	}

	box := searchStyle
	if m.focus == focusSearch {
		box = searchFocusedStyle
	}
	searchBox := box.Render(m.search.View())

	controls := lipgloss.JoinHorizontal(lipgloss.Center, searchBox, " ", sortButton, " ", filterButton)
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, controls))
}

func (m listModel) renderGrid() string {
	if len(m.visible) == 0 {
		if m.loading {
			return emptyStateStyle.Render("Loading Pokémon...")
		}
		return emptyStateStyle.Render("No Pokémon match the current search and filters.")
	}

	cardWidth := max(12, (m.width-2)/m.columns)
	start := m.offsetRow * m.columns
	end := min(len(m.visible), start+m.visibleRows()*m.columns)

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cells = append(cells, components.Card(m.visible[i], i == m.cursor, cardWidth))
	}
	return bodyStyle.Render(components.Grid(cells, m.columns))
}

func (m listModel) renderSortPopup() string {
	rows := []string{popupTitleStyle.Render("Sort by:")}
	for i, k := range pokemon.SortKeys() {
		rows = append(rows, components.Radio(k.Label(), k == m.sortKey, i == m.sortCursor))
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m listModel) renderFilterModal() string {
	types := pokemon.Types()
	typeRows := make([]string, 0, len(types))
	for i, name := range types {
		typeRows = append(typeRows, components.Checkbox(pokemon.DisplayName(name), m.draft.HasType(name), i == m.filterCursor))
	}

	genRows := make([]string, 0, pokemon.GenerationCount)
	for gen := 0; gen < pokemon.GenerationCount; gen++ {
		genRows = append(genRows, components.Radio(pokemon.GenerationLabel(gen), m.draft.Generation == gen, filterTypeRows+gen == m.filterCursor))
	}

	half := (len(typeRows) + 1) / 2
	typeColumns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, typeRows[:half]...),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, typeRows[half:]...),
	)

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.Button("Reset", "240", true, m.filterCursor == filterResetRow),
		"  ",
		components.Button("Apply", pokemon.TintColor, true, m.filterCursor == filterApplyRow),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		popupTitleStyle.Render("Filters"),
		sectionStyle.Render("Type"),
		typeColumns,
		sectionStyle.Render("Generation"),
		lipgloss.JoinVertical(lipgloss.Left, genRows...),
		"",
		buttons,
	)
	return popupStyle.Render(body)
}

func (m listModel) renderFooter() string {
	var parts []string
	if m.loading {
		parts = append(parts, fmt.Sprintf("%s Loading more...", m.spinner.View()))
	} else {
		parts = append(parts, labelStyle.Render(fmt.Sprintf("%d shown · %d loaded", len(m.visible), len(m.items))))
	}

	switch m.focus {
	case focusSort, focusFilter:
		parts = append(parts, m.help.View(popupKeys))
	case focusSearch:
		parts = append(parts, labelStyle.Render("type to search · enter/esc to finish"))
	default:
		parts = append(parts, m.help.View(listKeys))
	}
	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
