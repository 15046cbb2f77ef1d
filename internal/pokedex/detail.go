// Package pokedex derives the screen-ready projections of list and detail
// data from raw API resources.
package pokedex

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

// Options holds the knobs BuildDetail reads from configuration.
type Options struct {
	ArtworkBaseURL string
	Language       string
}

// Stat is one base-stat row.
type Stat struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Detail is everything the detail screen renders for one route id.
// Fields derived from a resource that failed to load keep their
// placeholder values.
type Detail struct {
	ID            string   `json:"id"`
	Number        string   `json:"number"`
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	Types         []string `json:"types"`
	Weight        string   `json:"weight"`
	Height        string   `json:"height"`
	Moves         []string `json:"moves"`
	Bio           string   `json:"bio,omitempty"`
	HasBio        bool     `json:"has_bio"`
	Stats         []Stat   `json:"stats"`
	Shiny         bool     `json:"shiny"`
	ArtworkURL    string   `json:"artwork_url"`
	PreviousID    string   `json:"previous_id,omitempty"`
	NextID        string   `json:"next_id,omitempty"`
	PokemonLoaded bool     `json:"-"`
	SpeciesLoaded bool     `json:"-"`
}

// HasPrevious reports whether the previous action is enabled.
func (d Detail) HasPrevious() bool { return d.PreviousID != "" }

// HasNext reports whether the next action is enabled.
func (d Detail) HasNext() bool { return d.NextID != "" }

const movesShown = 2

// BuildDetail derives the detail projection for route id from whichever
// of the two resources are available. Either may be nil.
func BuildDetail(id string, p *pokeapi.Pokemon, s *pokeapi.Species, shiny bool, opts Options) Detail {
	d := Detail{
		ID:         id,
		Number:     pokemon.PaddedNumber(id),
		Color:      pokemon.TintColor,
		Types:      []string{},
		Weight:     pokemon.Placeholder,
		Height:     pokemon.Placeholder,
		Moves:      []string{},
		Stats:      []Stat{},
		Shiny:      shiny,
		ArtworkURL: ArtworkURL(opts.ArtworkBaseURL, id, shiny),
	}
	d.PreviousID, _ = PreviousID(id)
	d.NextID, _ = NextID(id)

	if p != nil {
		d.PokemonLoaded = true
		d.Name = pokemon.DisplayName(p.Name)
		d.Types = p.TypeNames()
		d.Color = pokemon.MainColor(d.Types)
		d.Weight = pokemon.FormatWeight(p.Weight)
		d.Height = pokemon.FormatHeight(p.Height)

		for i := 0; i < len(p.Moves) && i < movesShown; i++ {
			d.Moves = append(d.Moves, p.Moves[i].Move.Name)
		}
		for _, st := range p.Stats {
			d.Stats = append(d.Stats, Stat{
				Name:  st.Stat.Name,
				Label: pokemon.StatLabel(st.Stat.Name),
				Value: st.BaseStat,
			})
		}
	}

	if s != nil {
		d.SpeciesLoaded = true
		d.Bio, d.HasBio = Bio(s, opts.Language)
	}

	return d
}

// Bio returns the first flavor text written in lang with line and form
// feeds flattened to spaces. An empty lang means "en".
func Bio(s *pokeapi.Species, lang string) (string, bool) {
	if s == nil {
		return "", false
	}
	if lang == "" {
		lang = "en"
	}
	for _, entry := range s.FlavorTextEntries {
		if strings.EqualFold(entry.Language.Name, lang) {
			return pokemon.FlattenFlavorText(entry.FlavorText), true
		}
	}
	return "", false
}

// ArtworkURL templates the official artwork URL from the route id.
func ArtworkURL(base, id string, shiny bool) string {
	base = strings.TrimRight(base, "/")
	if shiny {
		return base + "/shiny/" + id + ".png"
	}
	return base + "/" + id + ".png"
}

// PreviousID returns id-1, or false when id is not numeric or already
// at the lower bound.
func PreviousID(id string) (string, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= pokemon.MinID {
		return "", false
	}
	return strconv.Itoa(n - 1), true
}

// NextID returns id+1, or false when id is not numeric or already at the
// upper bound.
func NextID(id string) (string, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n >= pokemon.MaxID {
		return "", false
	}
	return strconv.Itoa(n + 1), true
}
