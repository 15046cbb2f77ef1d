package pokeapi

import (
	"sort"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

// NamedResource is the {name, url} pair the API uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListPage is one page of GET /pokemon?limit=N&offset=M.
type ListPage struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// HasNext reports whether the upstream advertised a following page.
func (p *ListPage) HasNext() bool {
	return p != nil && p.Next != nil && *p.Next != ""
}

// Items converts the page results into list items. Entries whose URL does
// not end in a numeric id are skipped.
func (p *ListPage) Items() []pokemon.ListItem {
	if p == nil {
		return nil
	}
	items := make([]pokemon.ListItem, 0, len(p.Results))
	for _, r := range p.Results {
		id, err := pokemon.IDFromURL(r.URL)
		if err != nil {
			continue
		}
		items = append(items, pokemon.ListItem{ID: id, Name: r.Name})
	}
	return items
}

// Pokemon is the subset of GET /pokemon/{id} the screens read.
type Pokemon struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Weight *int        `json:"weight"`
	Height *int        `json:"height"`
	Types  []TypeSlot  `json:"types"`
	Stats  []StatEntry `json:"stats"`
	Moves  []MoveEntry `json:"moves"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type MoveEntry struct {
	Move NamedResource `json:"move"`
}

// TypeNames returns the type names ordered by slot.
func (p *Pokemon) TypeNames() []string {
	if p == nil {
		return nil
	}
	slots := make([]TypeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	names := make([]string, 0, len(slots))
	for _, s := range slots {
		names = append(names, s.Type.Name)
	}
	return names
}

// Species is the subset of GET /pokemon-species/{id}/ the screens read.
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}
