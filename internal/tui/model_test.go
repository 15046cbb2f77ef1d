package tui

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

type fakePager struct {
	mu      sync.Mutex
	items   []pokemon.ListItem
	hasNext bool
	calls   int
}

func (p *fakePager) FetchNextPage(context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return true, nil
}

func (p *fakePager) Items() []pokemon.ListItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]pokemon.ListItem, len(p.items))
	copy(out, p.items)
	return out
}

func (p *fakePager) IsFetching() bool  { return false }
func (p *fakePager) HasNextPage() bool { return p.hasNext }

type fakeAPI struct{}

func (fakeAPI) Pokemon(_ context.Context, id string) (*pokeapi.Pokemon, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return &pokeapi.Pokemon{ID: n, Name: "pokemon-" + id}, nil
}

func (fakeAPI) Species(context.Context, string) (*pokeapi.Species, error) {
	return nil, errors.New("species unavailable")
}

var starters = []pokemon.ListItem{
	{ID: 1, Name: "bulbasaur"},
	{ID: 4, Name: "charmander"},
	{ID: 7, Name: "squirtle"},
	{ID: 152, Name: "chikorita"},
	{ID: 155, Name: "cyndaquil"},
}

func newTestModel(t *testing.T, pager *fakePager, start router.Route) Model {
	t.Helper()
	return NewModel(context.Background(), Deps{
		Pager:   pager,
		API:     fakeAPI{},
		Options: pokedex.Options{ArtworkBaseURL: "https://art.test"},
		Columns: 3,
	}, start)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, hasNext bool) Model {
	t.Helper()
	m := newTestModel(t, &fakePager{items: starters, hasNext: hasNext}, router.List())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = step(t, m, PageLoadedMsg{Fetched: true})
	return m
}

func TestNewModelStartsOnList(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.List())

	assert.Equal(t, router.List(), m.Route())
	assert.Equal(t, 1, m.Depth())
	assert.True(t, m.list.loading)
	assert.NotNil(t, m.Init())
}

func TestNewModelOnDetailRoute(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.Detail("25"))

	assert.Equal(t, router.Detail("25"), m.Route())
	assert.Equal(t, 2, m.Depth())
	require.NotNil(t, m.detail)
	assert.Equal(t, "25", m.detail.id)
}

func TestPageLoadedPopulatesGrid(t *testing.T) {
	m := newTestModel(t, &fakePager{items: starters, hasNext: true}, router.List())

	m, cmd := step(t, m, PageLoadedMsg{Fetched: true})
	assert.Len(t, m.list.visible, len(starters))
	assert.NotNil(t, cmd, "a list shorter than the screen asks for more")
	assert.True(t, m.list.loading)
}

func TestPageLoadedStopsWhenExhausted(t *testing.T) {
	m := loadedModel(t, false)

	assert.False(t, m.list.loading)
	_, cmd := step(t, m, PageLoadedMsg{Fetched: true})
	assert.Nil(t, cmd)
}

func TestPageLoadedErrorIsOnlyLogged(t *testing.T) {
	m := newTestModel(t, &fakePager{hasNext: true}, router.List())

	m, cmd := step(t, m, PageLoadedMsg{Err: errors.New("offline")})
	assert.Nil(t, cmd)
	assert.False(t, m.list.loading)
	assert.Empty(t, m.list.visible)
}

func TestDownIntoPartialLastRowReachesEnd(t *testing.T) {
	items := make([]pokemon.ListItem, 22)
	for i := range items {
		items[i] = pokemon.ListItem{ID: i + 1, Name: "pokemon-" + strconv.Itoa(i+1)}
	}
	pager := &fakePager{items: items, hasNext: true}
	m := newTestModel(t, pager, router.List())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: listChrome + 3*cardHeight})
	m, cmd := step(t, m, PageLoadedMsg{Fetched: true})
	require.Nil(t, cmd, "the first rows do not reach the end")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 6 {
		m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
		require.Nil(t, cmd)
	}
	require.Equal(t, 20, m.list.cursor)

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 21, m.list.cursor)
	assert.NotNil(t, cmd)
	assert.True(t, m.list.loading)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 21, m.list.cursor)
}

func TestSearchSuppressesPagination(t *testing.T) {
	m := loadedModel(t, false)
	m.list.pager.(*fakePager).hasNext = true

	m, _ = step(t, m, keyRunes("/"))
	require.Equal(t, focusSearch, m.list.focus)
	m, _ = step(t, m, keyRunes("char"))

	assert.Equal(t, "char", m.list.search.Value())
	assert.Equal(t, []pokemon.ListItem{{ID: 4, Name: "charmander"}}, m.list.visible)

	m, cmd := step(t, m, PageLoadedMsg{Fetched: true})
	assert.Nil(t, cmd)
	assert.False(t, m.list.loading)
}

func TestQuitKeyIsTypedWhileSearching(t *testing.T) {
	m := loadedModel(t, false)

	m, _ = step(t, m, keyRunes("/"))
	m, cmd := step(t, m, keyRunes("q"))
	assert.Equal(t, "q", m.list.search.Value())
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = step(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSortPopupSelectsKey(t *testing.T) {
	m := loadedModel(t, false)

	m, _ = step(t, m, keyRunes("s"))
	require.Equal(t, focusSort, m.list.focus)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, focusGrid, m.list.focus)
	assert.Equal(t, pokemon.SortNameAsc, m.list.sortKey)
	assert.Equal(t, "bulbasaur", m.list.visible[0].Name)
	assert.Equal(t, "squirtle", m.list.visible[len(m.list.visible)-1].Name)
}

func TestFilterModalEscDiscardsDraft(t *testing.T) {
	m := loadedModel(t, false)

	m, _ = step(t, m, keyRunes("f"))
	require.Equal(t, focusFilter, m.list.focus)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, m.list.draft.HasType("normal"))

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusGrid, m.list.focus)
	assert.False(t, m.list.filters.Active())
}

func TestFilterModalApplyCommitsGeneration(t *testing.T) {
	m := loadedModel(t, false)

	m, _ = step(t, m, keyRunes("f"))
	m.list.filterCursor = filterTypeRows + 2
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, 2, m.list.draft.Generation)
	assert.Equal(t, 0, m.list.filters.Generation, "draft must not leak before apply")

	m, _ = step(t, m, keyRunes("a"))
	assert.Equal(t, focusGrid, m.list.focus)
	assert.Equal(t, 2, m.list.filters.Generation)
	assert.Equal(t, []pokemon.ListItem{{ID: 152, Name: "chikorita"}, {ID: 155, Name: "cyndaquil"}}, m.list.visible)
}

func TestFilterModalResetRow(t *testing.T) {
	m := loadedModel(t, false)
	m.list.filters = pokemon.Filters{Generation: 1}

	m, _ = step(t, m, keyRunes("f"))
	require.Equal(t, 1, m.list.draft.Generation)
	m.list.filterCursor = filterResetRow
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, pokemon.Filters{}, m.list.draft)

	m.list.filterCursor = filterApplyRow
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.list.filters.Active())
	assert.Len(t, m.list.visible, len(starters))
}

func TestOpenDetailPushesRoute(t *testing.T) {
	m := loadedModel(t, false)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, router.Detail("4"), nav.Route)
	assert.False(t, nav.Replace)

	m, cmd = step(t, m, nav)
	assert.NotNil(t, cmd)
	assert.Equal(t, router.Detail("4"), m.Route())
	assert.Equal(t, 2, m.Depth())
	require.NotNil(t, m.detail)
}

func TestDetailDropsStaleResults(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.Detail("1"))

	m, _ = step(t, m, PokemonLoadedMsg{ID: "2", Pokemon: &pokeapi.Pokemon{Name: "ivysaur"}})
	assert.Nil(t, m.detail.pokemon)

	m, _ = step(t, m, PokemonLoadedMsg{ID: "1", Pokemon: &pokeapi.Pokemon{Name: "bulbasaur"}})
	require.NotNil(t, m.detail.pokemon)
	assert.Equal(t, "Bulbasaur", m.detail.detail().Name)
}

func TestDetailFetchFailureLeavesPlaceholders(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.Detail("1"))

	m, _ = step(t, m, SpeciesLoadedMsg{ID: "1", Err: errors.New("boom")})
	d := m.detail.detail()
	assert.False(t, d.HasBio)
	assert.Equal(t, pokemon.Placeholder, d.Weight)
}

func TestDetailNextReplacesRoute(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.Detail("1"))

	_, cmd := step(t, m, keyRunes("n"))
	require.NotNil(t, cmd)
	nav := cmd().(NavigateMsg)
	assert.Equal(t, NavigateMsg{Route: router.Detail("2"), Replace: true}, nav)

	m, _ = step(t, m, nav)
	assert.Equal(t, router.Detail("2"), m.Route())
	assert.Equal(t, 2, m.Depth())
	assert.False(t, m.detail.shiny)

	m, _ = step(t, m, BackMsg{})
	assert.Equal(t, router.List(), m.Route())
	assert.Nil(t, m.detail)
}

func TestDetailNavigationBounds(t *testing.T) {
	first := newTestModel(t, &fakePager{}, router.Detail("1"))
	_, cmd := step(t, first, keyRunes("p"))
	assert.Nil(t, cmd)

	last := newTestModel(t, &fakePager{}, router.Detail("1008"))
	_, cmd = step(t, last, keyRunes("n"))
	assert.Nil(t, cmd)

	_, cmd = step(t, last, keyRunes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, router.Detail("1007"), cmd().(NavigateMsg).Route)
}

func TestDetailShinyToggle(t *testing.T) {
	m := newTestModel(t, &fakePager{}, router.Detail("6"))

	m, _ = step(t, m, keyRunes("s"))
	assert.True(t, m.detail.shiny)
	assert.Equal(t, "https://art.test/shiny/6.png", m.detail.detail().ArtworkURL)
	assert.Contains(t, m.View(), "Normal Version")

	m, _ = step(t, m, keyRunes("s"))
	assert.Equal(t, "https://art.test/6.png", m.detail.detail().ArtworkURL)
	assert.Contains(t, m.View(), "Shiny Version")
}

func TestBackOnListIsNoop(t *testing.T) {
	m := loadedModel(t, false)
	m, cmd := step(t, m, BackMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, router.List(), m.Route())
}

func TestBackPreservesListState(t *testing.T) {
	m := loadedModel(t, false)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 3, m.list.cursor)

	m, _ = step(t, m, NavigateMsg{Route: router.Detail("152")})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, BackMsg{})

	assert.Equal(t, router.List(), m.Route())
	assert.Equal(t, 3, m.list.cursor)
}

func TestListView(t *testing.T) {
	m := loadedModel(t, false)

	view := m.View()
	assert.Contains(t, view, "Pokédex")
	assert.Contains(t, view, "#001")
	assert.Contains(t, view, "Bulbasaur")

	m, _ = step(t, m, keyRunes("f"))
	view = m.View()
	assert.Contains(t, view, "Generation 9")
	assert.Contains(t, view, "Apply")
}
