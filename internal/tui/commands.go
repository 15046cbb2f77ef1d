package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

// Pager is the paginated list source. *pokeapi.Paginator satisfies it.
type Pager interface {
	FetchNextPage(ctx context.Context) (bool, error)
	Items() []pokemon.ListItem
	IsFetching() bool
	HasNextPage() bool
}

// ResourceFetcher loads the two detail resources. *pokeapi.Client satisfies it.
type ResourceFetcher interface {
	Pokemon(ctx context.Context, id string) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, id string) (*pokeapi.Species, error)
}

func fetchNextPageCmd(ctx context.Context, pager Pager) tea.Cmd {
	return func() tea.Msg {
		fetched, err := pager.FetchNextPage(ctx)
		return PageLoadedMsg{Fetched: fetched, Err: err}
	}
}

func fetchPokemonCmd(ctx context.Context, api ResourceFetcher, id string) tea.Cmd {
	return func() tea.Msg {
		p, err := api.Pokemon(ctx, id)
		return PokemonLoadedMsg{ID: id, Pokemon: p, Err: err}
	}
}

func fetchSpeciesCmd(ctx context.Context, api ResourceFetcher, id string) tea.Cmd {
	return func() tea.Msg {
		s, err := api.Species(ctx, id)
		return SpeciesLoadedMsg{ID: id, Species: s, Err: err}
	}
}

func navigateCmd(route router.Route, replace bool) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route, Replace: replace}
	}
}

func backCmd() tea.Msg {
	return BackMsg{}
}
