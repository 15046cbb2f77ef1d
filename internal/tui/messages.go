package tui

import (
	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

// PageLoadedMsg reports the outcome of a list page fetch.
type PageLoadedMsg struct {
	Fetched bool
	Err     error
}

// PokemonLoadedMsg carries the pokemon resource for a detail id.
type PokemonLoadedMsg struct {
	ID      string
	Pokemon *pokeapi.Pokemon
	Err     error
}

// SpeciesLoadedMsg carries the species resource for a detail id.
type SpeciesLoadedMsg struct {
	ID      string
	Species *pokeapi.Species
	Err     error
}

// NavigateMsg moves to a route. Replace swaps the current history entry
// instead of pushing a new one.
type NavigateMsg struct {
	Route   router.Route
	Replace bool
}

// BackMsg returns to the previous route.
type BackMsg struct{}
